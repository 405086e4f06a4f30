// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crewdeck.io/notifier/ent/preference"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// PreferenceCreate is the builder for creating a Preference entity.
type PreferenceCreate struct {
	config
	mutation *PreferenceMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *PreferenceCreate) SetCreatedAt(v time.Time) *PreferenceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PreferenceCreate) SetNillableCreatedAt(v *time.Time) *PreferenceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PreferenceCreate) SetUpdatedAt(v time.Time) *PreferenceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PreferenceCreate) SetNillableUpdatedAt(v *time.Time) *PreferenceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *PreferenceCreate) SetUserID(v string) *PreferenceCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetEnabledCategories sets the "enabled_categories" field.
func (_c *PreferenceCreate) SetEnabledCategories(v []string) *PreferenceCreate {
	_c.mutation.SetEnabledCategories(v)
	return _c
}

// SetSound sets the "sound" field.
func (_c *PreferenceCreate) SetSound(v bool) *PreferenceCreate {
	_c.mutation.SetSound(v)
	return _c
}

// SetNillableSound sets the "sound" field if the given value is not nil.
func (_c *PreferenceCreate) SetNillableSound(v *bool) *PreferenceCreate {
	if v != nil {
		_c.SetSound(*v)
	}
	return _c
}

// SetVibration sets the "vibration" field.
func (_c *PreferenceCreate) SetVibration(v bool) *PreferenceCreate {
	_c.mutation.SetVibration(v)
	return _c
}

// SetNillableVibration sets the "vibration" field if the given value is not nil.
func (_c *PreferenceCreate) SetNillableVibration(v *bool) *PreferenceCreate {
	if v != nil {
		_c.SetVibration(*v)
	}
	return _c
}

// SetDigest sets the "digest" field.
func (_c *PreferenceCreate) SetDigest(v preference.Digest) *PreferenceCreate {
	_c.mutation.SetDigest(v)
	return _c
}

// SetNillableDigest sets the "digest" field if the given value is not nil.
func (_c *PreferenceCreate) SetNillableDigest(v *preference.Digest) *PreferenceCreate {
	if v != nil {
		_c.SetDigest(*v)
	}
	return _c
}

// SetQuietStart sets the "quiet_start" field.
func (_c *PreferenceCreate) SetQuietStart(v string) *PreferenceCreate {
	_c.mutation.SetQuietStart(v)
	return _c
}

// SetNillableQuietStart sets the "quiet_start" field if the given value is not nil.
func (_c *PreferenceCreate) SetNillableQuietStart(v *string) *PreferenceCreate {
	if v != nil {
		_c.SetQuietStart(*v)
	}
	return _c
}

// SetQuietEnd sets the "quiet_end" field.
func (_c *PreferenceCreate) SetQuietEnd(v string) *PreferenceCreate {
	_c.mutation.SetQuietEnd(v)
	return _c
}

// SetNillableQuietEnd sets the "quiet_end" field if the given value is not nil.
func (_c *PreferenceCreate) SetNillableQuietEnd(v *string) *PreferenceCreate {
	if v != nil {
		_c.SetQuietEnd(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PreferenceCreate) SetID(v string) *PreferenceCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PreferenceMutation object of the builder.
func (_c *PreferenceCreate) Mutation() *PreferenceMutation {
	return _c.mutation
}

// Save creates the Preference in the database.
func (_c *PreferenceCreate) Save(ctx context.Context) (*Preference, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PreferenceCreate) SaveX(ctx context.Context) *Preference {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PreferenceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PreferenceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PreferenceCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := preference.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := preference.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Sound(); !ok {
		v := preference.DefaultSound
		_c.mutation.SetSound(v)
	}
	if _, ok := _c.mutation.Vibration(); !ok {
		v := preference.DefaultVibration
		_c.mutation.SetVibration(v)
	}
	if _, ok := _c.mutation.Digest(); !ok {
		v := preference.DefaultDigest
		_c.mutation.SetDigest(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PreferenceCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Preference.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Preference.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Preference.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := preference.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Preference.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EnabledCategories(); !ok {
		return &ValidationError{Name: "enabled_categories", err: errors.New(`ent: missing required field "Preference.enabled_categories"`)}
	}
	if _, ok := _c.mutation.Sound(); !ok {
		return &ValidationError{Name: "sound", err: errors.New(`ent: missing required field "Preference.sound"`)}
	}
	if _, ok := _c.mutation.Vibration(); !ok {
		return &ValidationError{Name: "vibration", err: errors.New(`ent: missing required field "Preference.vibration"`)}
	}
	if _, ok := _c.mutation.Digest(); !ok {
		return &ValidationError{Name: "digest", err: errors.New(`ent: missing required field "Preference.digest"`)}
	}
	if v, ok := _c.mutation.Digest(); ok {
		if err := preference.DigestValidator(v); err != nil {
			return &ValidationError{Name: "digest", err: fmt.Errorf(`ent: validator failed for field "Preference.digest": %w`, err)}
		}
	}
	return nil
}

func (_c *PreferenceCreate) sqlSave(ctx context.Context) (*Preference, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Preference.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PreferenceCreate) createSpec() (*Preference, *sqlgraph.CreateSpec) {
	var (
		_node = &Preference{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(preference.Table, sqlgraph.NewFieldSpec(preference.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(preference.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(preference.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(preference.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.EnabledCategories(); ok {
		_spec.SetField(preference.FieldEnabledCategories, field.TypeJSON, value)
		_node.EnabledCategories = value
	}
	if value, ok := _c.mutation.Sound(); ok {
		_spec.SetField(preference.FieldSound, field.TypeBool, value)
		_node.Sound = value
	}
	if value, ok := _c.mutation.Vibration(); ok {
		_spec.SetField(preference.FieldVibration, field.TypeBool, value)
		_node.Vibration = value
	}
	if value, ok := _c.mutation.Digest(); ok {
		_spec.SetField(preference.FieldDigest, field.TypeEnum, value)
		_node.Digest = value
	}
	if value, ok := _c.mutation.QuietStart(); ok {
		_spec.SetField(preference.FieldQuietStart, field.TypeString, value)
		_node.QuietStart = value
	}
	if value, ok := _c.mutation.QuietEnd(); ok {
		_spec.SetField(preference.FieldQuietEnd, field.TypeString, value)
		_node.QuietEnd = value
	}
	return _node, _spec
}

// PreferenceCreateBulk is the builder for creating many Preference entities in bulk.
type PreferenceCreateBulk struct {
	config
	err      error
	builders []*PreferenceCreate
}

// Save creates the Preference entities in the database.
func (_c *PreferenceCreateBulk) Save(ctx context.Context) ([]*Preference, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Preference, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PreferenceMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PreferenceCreateBulk) SaveX(ctx context.Context) []*Preference {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PreferenceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PreferenceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
