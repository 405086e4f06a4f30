// Package ent holds the generated Ent client for CrewDeck Notifier.
//
// Generated code is not committed; run `go generate ./ent` after changing
// anything under ent/schema.
package ent

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate ./schema
