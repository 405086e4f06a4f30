// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crewdeck.io/notifier/ent/predicate"
	"crewdeck.io/notifier/ent/reminder"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// ReminderUpdate is the builder for updating Reminder entities.
type ReminderUpdate struct {
	config
	hooks    []Hook
	mutation *ReminderMutation
}

// Where appends a list predicates to the ReminderUpdate builder.
func (_u *ReminderUpdate) Where(ps ...predicate.Reminder) *ReminderUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMessage sets the "message" field.
func (_u *ReminderUpdate) SetMessage(v string) *ReminderUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *ReminderUpdate) SetNillableMessage(v *string) *ReminderUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetSent sets the "sent" field.
func (_u *ReminderUpdate) SetSent(v bool) *ReminderUpdate {
	_u.mutation.SetSent(v)
	return _u
}

// SetNillableSent sets the "sent" field if the given value is not nil.
func (_u *ReminderUpdate) SetNillableSent(v *bool) *ReminderUpdate {
	if v != nil {
		_u.SetSent(*v)
	}
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *ReminderUpdate) SetSentAt(v time.Time) *ReminderUpdate {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *ReminderUpdate) SetNillableSentAt(v *time.Time) *ReminderUpdate {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *ReminderUpdate) ClearSentAt() *ReminderUpdate {
	_u.mutation.ClearSentAt()
	return _u
}

// Mutation returns the ReminderMutation object of the builder.
func (_u *ReminderUpdate) Mutation() *ReminderMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReminderUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReminderUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReminderUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReminderUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReminderUpdate) check() error {
	if v, ok := _u.mutation.Message(); ok {
		if err := reminder.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "Reminder.message": %w`, err)}
		}
	}
	return nil
}

func (_u *ReminderUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reminder.Table, reminder.Columns, sqlgraph.NewFieldSpec(reminder.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(reminder.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sent(); ok {
		_spec.SetField(reminder.FieldSent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(reminder.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(reminder.FieldSentAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reminder.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReminderUpdateOne is the builder for updating a single Reminder entity.
type ReminderUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReminderMutation
}

// SetMessage sets the "message" field.
func (_u *ReminderUpdateOne) SetMessage(v string) *ReminderUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *ReminderUpdateOne) SetNillableMessage(v *string) *ReminderUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetSent sets the "sent" field.
func (_u *ReminderUpdateOne) SetSent(v bool) *ReminderUpdateOne {
	_u.mutation.SetSent(v)
	return _u
}

// SetNillableSent sets the "sent" field if the given value is not nil.
func (_u *ReminderUpdateOne) SetNillableSent(v *bool) *ReminderUpdateOne {
	if v != nil {
		_u.SetSent(*v)
	}
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *ReminderUpdateOne) SetSentAt(v time.Time) *ReminderUpdateOne {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *ReminderUpdateOne) SetNillableSentAt(v *time.Time) *ReminderUpdateOne {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *ReminderUpdateOne) ClearSentAt() *ReminderUpdateOne {
	_u.mutation.ClearSentAt()
	return _u
}

// Mutation returns the ReminderMutation object of the builder.
func (_u *ReminderUpdateOne) Mutation() *ReminderMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReminderUpdate builder.
func (_u *ReminderUpdateOne) Where(ps ...predicate.Reminder) *ReminderUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReminderUpdateOne) Select(field string, fields ...string) *ReminderUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Reminder entity.
func (_u *ReminderUpdateOne) Save(ctx context.Context) (*Reminder, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReminderUpdateOne) SaveX(ctx context.Context) *Reminder {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReminderUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReminderUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReminderUpdateOne) check() error {
	if v, ok := _u.mutation.Message(); ok {
		if err := reminder.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "Reminder.message": %w`, err)}
		}
	}
	return nil
}

func (_u *ReminderUpdateOne) sqlSave(ctx context.Context) (_node *Reminder, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reminder.Table, reminder.Columns, sqlgraph.NewFieldSpec(reminder.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Reminder.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reminder.FieldID)
		for _, f := range fields {
			if !reminder.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reminder.FieldID {
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
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(reminder.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sent(); ok {
		_spec.SetField(reminder.FieldSent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(reminder.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(reminder.FieldSentAt, field.TypeTime)
	}
	_node = &Reminder{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reminder.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
