// Code generated by ent, DO NOT EDIT.

package preference

import (
	"time"

	"crewdeck.io/notifier/ent/predicate"
	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Preference {
	return predicate.Preference(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Preference {
	return predicate.Preference(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Preference {
	return predicate.Preference(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Preference {
	return predicate.Preference(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Preference {
	return predicate.Preference(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Preference {
	return predicate.Preference(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Preference {
	return predicate.Preference(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Preference {
	return predicate.Preference(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Preference {
	return predicate.Preference(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Preference {
	return predicate.Preference(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Preference {
	return predicate.Preference(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Preference {
	return predicate.Preference(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Preference {
	return predicate.Preference(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Preference {
	return predicate.Preference(sql.FieldEQ(FieldUserID, v))
}

// Sound applies equality check predicate on the "sound" field. It's identical to SoundEQ.
func Sound(v bool) predicate.Preference {
	return predicate.Preference(sql.FieldEQ(FieldSound, v))
}

// Vibration applies equality check predicate on the "vibration" field. It's identical to VibrationEQ.
func Vibration(v bool) predicate.Preference {
	return predicate.Preference(sql.FieldEQ(FieldVibration, v))
}

// QuietStart applies equality check predicate on the "quiet_start" field. It's identical to QuietStartEQ.
func QuietStart(v string) predicate.Preference {
	return predicate.Preference(sql.FieldEQ(FieldQuietStart, v))
}

// QuietEnd applies equality check predicate on the "quiet_end" field. It's identical to QuietEndEQ.
func QuietEnd(v string) predicate.Preference {
	return predicate.Preference(sql.FieldEQ(FieldQuietEnd, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Preference {
	return predicate.Preference(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Preference {
	return predicate.Preference(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Preference {
	return predicate.Preference(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Preference {
	return predicate.Preference(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Preference {
	return predicate.Preference(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Preference {
	return predicate.Preference(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Preference {
	return predicate.Preference(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Preference {
	return predicate.Preference(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Preference {
	return predicate.Preference(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Preference {
	return predicate.Preference(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Preference {
	return predicate.Preference(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Preference {
	return predicate.Preference(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Preference {
	return predicate.Preference(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Preference {
	return predicate.Preference(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Preference {
	return predicate.Preference(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Preference {
	return predicate.Preference(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Preference {
	return predicate.Preference(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Preference {
	return predicate.Preference(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Preference {
	return predicate.Preference(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Preference {
	return predicate.Preference(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Preference {
	return predicate.Preference(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Preference {
	return predicate.Preference(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Preference {
	return predicate.Preference(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Preference {
	return predicate.Preference(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Preference {
	return predicate.Preference(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Preference {
	return predicate.Preference(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Preference {
	return predicate.Preference(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Preference {
	return predicate.Preference(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Preference {
	return predicate.Preference(sql.FieldContainsFold(FieldUserID, v))
}

// SoundEQ applies the EQ predicate on the "sound" field.
func SoundEQ(v bool) predicate.Preference {
	return predicate.Preference(sql.FieldEQ(FieldSound, v))
}

// SoundNEQ applies the NEQ predicate on the "sound" field.
func SoundNEQ(v bool) predicate.Preference {
	return predicate.Preference(sql.FieldNEQ(FieldSound, v))
}

// VibrationEQ applies the EQ predicate on the "vibration" field.
func VibrationEQ(v bool) predicate.Preference {
	return predicate.Preference(sql.FieldEQ(FieldVibration, v))
}

// VibrationNEQ applies the NEQ predicate on the "vibration" field.
func VibrationNEQ(v bool) predicate.Preference {
	return predicate.Preference(sql.FieldNEQ(FieldVibration, v))
}

// DigestEQ applies the EQ predicate on the "digest" field.
func DigestEQ(v Digest) predicate.Preference {
	return predicate.Preference(sql.FieldEQ(FieldDigest, v))
}

// DigestNEQ applies the NEQ predicate on the "digest" field.
func DigestNEQ(v Digest) predicate.Preference {
	return predicate.Preference(sql.FieldNEQ(FieldDigest, v))
}

// DigestIn applies the In predicate on the "digest" field.
func DigestIn(vs ...Digest) predicate.Preference {
	return predicate.Preference(sql.FieldIn(FieldDigest, vs...))
}

// DigestNotIn applies the NotIn predicate on the "digest" field.
func DigestNotIn(vs ...Digest) predicate.Preference {
	return predicate.Preference(sql.FieldNotIn(FieldDigest, vs...))
}

// QuietStartEQ applies the EQ predicate on the "quiet_start" field.
func QuietStartEQ(v string) predicate.Preference {
	return predicate.Preference(sql.FieldEQ(FieldQuietStart, v))
}

// QuietStartNEQ applies the NEQ predicate on the "quiet_start" field.
func QuietStartNEQ(v string) predicate.Preference {
	return predicate.Preference(sql.FieldNEQ(FieldQuietStart, v))
}

// QuietStartIn applies the In predicate on the "quiet_start" field.
func QuietStartIn(vs ...string) predicate.Preference {
	return predicate.Preference(sql.FieldIn(FieldQuietStart, vs...))
}

// QuietStartNotIn applies the NotIn predicate on the "quiet_start" field.
func QuietStartNotIn(vs ...string) predicate.Preference {
	return predicate.Preference(sql.FieldNotIn(FieldQuietStart, vs...))
}

// QuietStartGT applies the GT predicate on the "quiet_start" field.
func QuietStartGT(v string) predicate.Preference {
	return predicate.Preference(sql.FieldGT(FieldQuietStart, v))
}

// QuietStartGTE applies the GTE predicate on the "quiet_start" field.
func QuietStartGTE(v string) predicate.Preference {
	return predicate.Preference(sql.FieldGTE(FieldQuietStart, v))
}

// QuietStartLT applies the LT predicate on the "quiet_start" field.
func QuietStartLT(v string) predicate.Preference {
	return predicate.Preference(sql.FieldLT(FieldQuietStart, v))
}

// QuietStartLTE applies the LTE predicate on the "quiet_start" field.
func QuietStartLTE(v string) predicate.Preference {
	return predicate.Preference(sql.FieldLTE(FieldQuietStart, v))
}

// QuietStartContains applies the Contains predicate on the "quiet_start" field.
func QuietStartContains(v string) predicate.Preference {
	return predicate.Preference(sql.FieldContains(FieldQuietStart, v))
}

// QuietStartHasPrefix applies the HasPrefix predicate on the "quiet_start" field.
func QuietStartHasPrefix(v string) predicate.Preference {
	return predicate.Preference(sql.FieldHasPrefix(FieldQuietStart, v))
}

// QuietStartHasSuffix applies the HasSuffix predicate on the "quiet_start" field.
func QuietStartHasSuffix(v string) predicate.Preference {
	return predicate.Preference(sql.FieldHasSuffix(FieldQuietStart, v))
}

// QuietStartIsNil applies the IsNil predicate on the "quiet_start" field.
func QuietStartIsNil() predicate.Preference {
	return predicate.Preference(sql.FieldIsNull(FieldQuietStart))
}

// QuietStartNotNil applies the NotNil predicate on the "quiet_start" field.
func QuietStartNotNil() predicate.Preference {
	return predicate.Preference(sql.FieldNotNull(FieldQuietStart))
}

// QuietStartEqualFold applies the EqualFold predicate on the "quiet_start" field.
func QuietStartEqualFold(v string) predicate.Preference {
	return predicate.Preference(sql.FieldEqualFold(FieldQuietStart, v))
}

// QuietStartContainsFold applies the ContainsFold predicate on the "quiet_start" field.
func QuietStartContainsFold(v string) predicate.Preference {
	return predicate.Preference(sql.FieldContainsFold(FieldQuietStart, v))
}

// QuietEndEQ applies the EQ predicate on the "quiet_end" field.
func QuietEndEQ(v string) predicate.Preference {
	return predicate.Preference(sql.FieldEQ(FieldQuietEnd, v))
}

// QuietEndNEQ applies the NEQ predicate on the "quiet_end" field.
func QuietEndNEQ(v string) predicate.Preference {
	return predicate.Preference(sql.FieldNEQ(FieldQuietEnd, v))
}

// QuietEndIn applies the In predicate on the "quiet_end" field.
func QuietEndIn(vs ...string) predicate.Preference {
	return predicate.Preference(sql.FieldIn(FieldQuietEnd, vs...))
}

// QuietEndNotIn applies the NotIn predicate on the "quiet_end" field.
func QuietEndNotIn(vs ...string) predicate.Preference {
	return predicate.Preference(sql.FieldNotIn(FieldQuietEnd, vs...))
}

// QuietEndGT applies the GT predicate on the "quiet_end" field.
func QuietEndGT(v string) predicate.Preference {
	return predicate.Preference(sql.FieldGT(FieldQuietEnd, v))
}

// QuietEndGTE applies the GTE predicate on the "quiet_end" field.
func QuietEndGTE(v string) predicate.Preference {
	return predicate.Preference(sql.FieldGTE(FieldQuietEnd, v))
}

// QuietEndLT applies the LT predicate on the "quiet_end" field.
func QuietEndLT(v string) predicate.Preference {
	return predicate.Preference(sql.FieldLT(FieldQuietEnd, v))
}

// QuietEndLTE applies the LTE predicate on the "quiet_end" field.
func QuietEndLTE(v string) predicate.Preference {
	return predicate.Preference(sql.FieldLTE(FieldQuietEnd, v))
}

// QuietEndContains applies the Contains predicate on the "quiet_end" field.
func QuietEndContains(v string) predicate.Preference {
	return predicate.Preference(sql.FieldContains(FieldQuietEnd, v))
}

// QuietEndHasPrefix applies the HasPrefix predicate on the "quiet_end" field.
func QuietEndHasPrefix(v string) predicate.Preference {
	return predicate.Preference(sql.FieldHasPrefix(FieldQuietEnd, v))
}

// QuietEndHasSuffix applies the HasSuffix predicate on the "quiet_end" field.
func QuietEndHasSuffix(v string) predicate.Preference {
	return predicate.Preference(sql.FieldHasSuffix(FieldQuietEnd, v))
}

// QuietEndIsNil applies the IsNil predicate on the "quiet_end" field.
func QuietEndIsNil() predicate.Preference {
	return predicate.Preference(sql.FieldIsNull(FieldQuietEnd))
}

// QuietEndNotNil applies the NotNil predicate on the "quiet_end" field.
func QuietEndNotNil() predicate.Preference {
	return predicate.Preference(sql.FieldNotNull(FieldQuietEnd))
}

// QuietEndEqualFold applies the EqualFold predicate on the "quiet_end" field.
func QuietEndEqualFold(v string) predicate.Preference {
	return predicate.Preference(sql.FieldEqualFold(FieldQuietEnd, v))
}

// QuietEndContainsFold applies the ContainsFold predicate on the "quiet_end" field.
func QuietEndContainsFold(v string) predicate.Preference {
	return predicate.Preference(sql.FieldContainsFold(FieldQuietEnd, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Preference) predicate.Preference {
	return predicate.Preference(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Preference) predicate.Preference {
	return predicate.Preference(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Preference) predicate.Preference {
	return predicate.Preference(sql.NotPredicates(p))
}
