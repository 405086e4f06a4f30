// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crewdeck.io/notifier/ent/predicate"
	"crewdeck.io/notifier/ent/preference"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
)

// PreferenceUpdate is the builder for updating Preference entities.
type PreferenceUpdate struct {
	config
	hooks    []Hook
	mutation *PreferenceMutation
}

// Where appends a list predicates to the PreferenceUpdate builder.
func (_u *PreferenceUpdate) Where(ps ...predicate.Preference) *PreferenceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PreferenceUpdate) SetUpdatedAt(v time.Time) *PreferenceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PreferenceUpdate) SetUserID(v string) *PreferenceUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PreferenceUpdate) SetNillableUserID(v *string) *PreferenceUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetEnabledCategories sets the "enabled_categories" field.
func (_u *PreferenceUpdate) SetEnabledCategories(v []string) *PreferenceUpdate {
	_u.mutation.SetEnabledCategories(v)
	return _u
}

// AppendEnabledCategories appends value to the "enabled_categories" field.
func (_u *PreferenceUpdate) AppendEnabledCategories(v []string) *PreferenceUpdate {
	_u.mutation.AppendEnabledCategories(v)
	return _u
}

// SetSound sets the "sound" field.
func (_u *PreferenceUpdate) SetSound(v bool) *PreferenceUpdate {
	_u.mutation.SetSound(v)
	return _u
}

// SetNillableSound sets the "sound" field if the given value is not nil.
func (_u *PreferenceUpdate) SetNillableSound(v *bool) *PreferenceUpdate {
	if v != nil {
		_u.SetSound(*v)
	}
	return _u
}

// SetVibration sets the "vibration" field.
func (_u *PreferenceUpdate) SetVibration(v bool) *PreferenceUpdate {
	_u.mutation.SetVibration(v)
	return _u
}

// SetNillableVibration sets the "vibration" field if the given value is not nil.
func (_u *PreferenceUpdate) SetNillableVibration(v *bool) *PreferenceUpdate {
	if v != nil {
		_u.SetVibration(*v)
	}
	return _u
}

// SetDigest sets the "digest" field.
func (_u *PreferenceUpdate) SetDigest(v preference.Digest) *PreferenceUpdate {
	_u.mutation.SetDigest(v)
	return _u
}

// SetNillableDigest sets the "digest" field if the given value is not nil.
func (_u *PreferenceUpdate) SetNillableDigest(v *preference.Digest) *PreferenceUpdate {
	if v != nil {
		_u.SetDigest(*v)
	}
	return _u
}

// SetQuietStart sets the "quiet_start" field.
func (_u *PreferenceUpdate) SetQuietStart(v string) *PreferenceUpdate {
	_u.mutation.SetQuietStart(v)
	return _u
}

// SetNillableQuietStart sets the "quiet_start" field if the given value is not nil.
func (_u *PreferenceUpdate) SetNillableQuietStart(v *string) *PreferenceUpdate {
	if v != nil {
		_u.SetQuietStart(*v)
	}
	return _u
}

// ClearQuietStart clears the value of the "quiet_start" field.
func (_u *PreferenceUpdate) ClearQuietStart() *PreferenceUpdate {
	_u.mutation.ClearQuietStart()
	return _u
}

// SetQuietEnd sets the "quiet_end" field.
func (_u *PreferenceUpdate) SetQuietEnd(v string) *PreferenceUpdate {
	_u.mutation.SetQuietEnd(v)
	return _u
}

// SetNillableQuietEnd sets the "quiet_end" field if the given value is not nil.
func (_u *PreferenceUpdate) SetNillableQuietEnd(v *string) *PreferenceUpdate {
	if v != nil {
		_u.SetQuietEnd(*v)
	}
	return _u
}

// ClearQuietEnd clears the value of the "quiet_end" field.
func (_u *PreferenceUpdate) ClearQuietEnd() *PreferenceUpdate {
	_u.mutation.ClearQuietEnd()
	return _u
}

// Mutation returns the PreferenceMutation object of the builder.
func (_u *PreferenceUpdate) Mutation() *PreferenceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PreferenceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PreferenceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PreferenceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PreferenceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PreferenceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := preference.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PreferenceUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := preference.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Preference.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Digest(); ok {
		if err := preference.DigestValidator(v); err != nil {
			return &ValidationError{Name: "digest", err: fmt.Errorf(`ent: validator failed for field "Preference.digest": %w`, err)}
		}
	}
	return nil
}

func (_u *PreferenceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(preference.Table, preference.Columns, sqlgraph.NewFieldSpec(preference.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(preference.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(preference.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EnabledCategories(); ok {
		_spec.SetField(preference.FieldEnabledCategories, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEnabledCategories(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, preference.FieldEnabledCategories, value)
		})
	}
	if value, ok := _u.mutation.Sound(); ok {
		_spec.SetField(preference.FieldSound, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Vibration(); ok {
		_spec.SetField(preference.FieldVibration, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Digest(); ok {
		_spec.SetField(preference.FieldDigest, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.QuietStart(); ok {
		_spec.SetField(preference.FieldQuietStart, field.TypeString, value)
	}
	if _u.mutation.QuietStartCleared() {
		_spec.ClearField(preference.FieldQuietStart, field.TypeString)
	}
	if value, ok := _u.mutation.QuietEnd(); ok {
		_spec.SetField(preference.FieldQuietEnd, field.TypeString, value)
	}
	if _u.mutation.QuietEndCleared() {
		_spec.ClearField(preference.FieldQuietEnd, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{preference.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PreferenceUpdateOne is the builder for updating a single Preference entity.
type PreferenceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PreferenceMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PreferenceUpdateOne) SetUpdatedAt(v time.Time) *PreferenceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PreferenceUpdateOne) SetUserID(v string) *PreferenceUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PreferenceUpdateOne) SetNillableUserID(v *string) *PreferenceUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetEnabledCategories sets the "enabled_categories" field.
func (_u *PreferenceUpdateOne) SetEnabledCategories(v []string) *PreferenceUpdateOne {
	_u.mutation.SetEnabledCategories(v)
	return _u
}

// AppendEnabledCategories appends value to the "enabled_categories" field.
func (_u *PreferenceUpdateOne) AppendEnabledCategories(v []string) *PreferenceUpdateOne {
	_u.mutation.AppendEnabledCategories(v)
	return _u
}

// SetSound sets the "sound" field.
func (_u *PreferenceUpdateOne) SetSound(v bool) *PreferenceUpdateOne {
	_u.mutation.SetSound(v)
	return _u
}

// SetNillableSound sets the "sound" field if the given value is not nil.
func (_u *PreferenceUpdateOne) SetNillableSound(v *bool) *PreferenceUpdateOne {
	if v != nil {
		_u.SetSound(*v)
	}
	return _u
}

// SetVibration sets the "vibration" field.
func (_u *PreferenceUpdateOne) SetVibration(v bool) *PreferenceUpdateOne {
	_u.mutation.SetVibration(v)
	return _u
}

// SetNillableVibration sets the "vibration" field if the given value is not nil.
func (_u *PreferenceUpdateOne) SetNillableVibration(v *bool) *PreferenceUpdateOne {
	if v != nil {
		_u.SetVibration(*v)
	}
	return _u
}

// SetDigest sets the "digest" field.
func (_u *PreferenceUpdateOne) SetDigest(v preference.Digest) *PreferenceUpdateOne {
	_u.mutation.SetDigest(v)
	return _u
}

// SetNillableDigest sets the "digest" field if the given value is not nil.
func (_u *PreferenceUpdateOne) SetNillableDigest(v *preference.Digest) *PreferenceUpdateOne {
	if v != nil {
		_u.SetDigest(*v)
	}
	return _u
}

// SetQuietStart sets the "quiet_start" field.
func (_u *PreferenceUpdateOne) SetQuietStart(v string) *PreferenceUpdateOne {
	_u.mutation.SetQuietStart(v)
	return _u
}

// SetNillableQuietStart sets the "quiet_start" field if the given value is not nil.
func (_u *PreferenceUpdateOne) SetNillableQuietStart(v *string) *PreferenceUpdateOne {
	if v != nil {
		_u.SetQuietStart(*v)
	}
	return _u
}

// ClearQuietStart clears the value of the "quiet_start" field.
func (_u *PreferenceUpdateOne) ClearQuietStart() *PreferenceUpdateOne {
	_u.mutation.ClearQuietStart()
	return _u
}

// SetQuietEnd sets the "quiet_end" field.
func (_u *PreferenceUpdateOne) SetQuietEnd(v string) *PreferenceUpdateOne {
	_u.mutation.SetQuietEnd(v)
	return _u
}

// SetNillableQuietEnd sets the "quiet_end" field if the given value is not nil.
func (_u *PreferenceUpdateOne) SetNillableQuietEnd(v *string) *PreferenceUpdateOne {
	if v != nil {
		_u.SetQuietEnd(*v)
	}
	return _u
}

// ClearQuietEnd clears the value of the "quiet_end" field.
func (_u *PreferenceUpdateOne) ClearQuietEnd() *PreferenceUpdateOne {
	_u.mutation.ClearQuietEnd()
	return _u
}

// Mutation returns the PreferenceMutation object of the builder.
func (_u *PreferenceUpdateOne) Mutation() *PreferenceMutation {
	return _u.mutation
}

// Where appends a list predicates to the PreferenceUpdate builder.
func (_u *PreferenceUpdateOne) Where(ps ...predicate.Preference) *PreferenceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PreferenceUpdateOne) Select(field string, fields ...string) *PreferenceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Preference entity.
func (_u *PreferenceUpdateOne) Save(ctx context.Context) (*Preference, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PreferenceUpdateOne) SaveX(ctx context.Context) *Preference {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PreferenceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PreferenceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PreferenceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := preference.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PreferenceUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := preference.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Preference.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Digest(); ok {
		if err := preference.DigestValidator(v); err != nil {
			return &ValidationError{Name: "digest", err: fmt.Errorf(`ent: validator failed for field "Preference.digest": %w`, err)}
		}
	}
	return nil
}

func (_u *PreferenceUpdateOne) sqlSave(ctx context.Context) (_node *Preference, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(preference.Table, preference.Columns, sqlgraph.NewFieldSpec(preference.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Preference.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, preference.FieldID)
		for _, f := range fields {
			if !preference.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != preference.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(preference.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(preference.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EnabledCategories(); ok {
		_spec.SetField(preference.FieldEnabledCategories, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEnabledCategories(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, preference.FieldEnabledCategories, value)
		})
	}
	if value, ok := _u.mutation.Sound(); ok {
		_spec.SetField(preference.FieldSound, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Vibration(); ok {
		_spec.SetField(preference.FieldVibration, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Digest(); ok {
		_spec.SetField(preference.FieldDigest, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.QuietStart(); ok {
		_spec.SetField(preference.FieldQuietStart, field.TypeString, value)
	}
	if _u.mutation.QuietStartCleared() {
		_spec.ClearField(preference.FieldQuietStart, field.TypeString)
	}
	if value, ok := _u.mutation.QuietEnd(); ok {
		_spec.SetField(preference.FieldQuietEnd, field.TypeString, value)
	}
	if _u.mutation.QuietEndCleared() {
		_spec.ClearField(preference.FieldQuietEnd, field.TypeString)
	}
	_node = &Preference{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{preference.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
