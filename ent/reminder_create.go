// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crewdeck.io/notifier/ent/reminder"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// ReminderCreate is the builder for creating a Reminder entity.
type ReminderCreate struct {
	config
	mutation *ReminderMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReminderCreate) SetCreatedAt(v time.Time) *ReminderCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReminderCreate) SetNillableCreatedAt(v *time.Time) *ReminderCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetReferenceID sets the "reference_id" field.
func (_c *ReminderCreate) SetReferenceID(v string) *ReminderCreate {
	_c.mutation.SetReferenceID(v)
	return _c
}

// SetOffset sets the "offset" field.
func (_c *ReminderCreate) SetOffset(v reminder.Offset) *ReminderCreate {
	_c.mutation.SetOffset(v)
	return _c
}

// SetTriggerAt sets the "trigger_at" field.
func (_c *ReminderCreate) SetTriggerAt(v time.Time) *ReminderCreate {
	_c.mutation.SetTriggerAt(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *ReminderCreate) SetMessage(v string) *ReminderCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetSent sets the "sent" field.
func (_c *ReminderCreate) SetSent(v bool) *ReminderCreate {
	_c.mutation.SetSent(v)
	return _c
}

// SetNillableSent sets the "sent" field if the given value is not nil.
func (_c *ReminderCreate) SetNillableSent(v *bool) *ReminderCreate {
	if v != nil {
		_c.SetSent(*v)
	}
	return _c
}

// SetSentAt sets the "sent_at" field.
func (_c *ReminderCreate) SetSentAt(v time.Time) *ReminderCreate {
	_c.mutation.SetSentAt(v)
	return _c
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_c *ReminderCreate) SetNillableSentAt(v *time.Time) *ReminderCreate {
	if v != nil {
		_c.SetSentAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReminderCreate) SetID(v string) *ReminderCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ReminderMutation object of the builder.
func (_c *ReminderCreate) Mutation() *ReminderMutation {
	return _c.mutation
}

// Save creates the Reminder in the database.
func (_c *ReminderCreate) Save(ctx context.Context) (*Reminder, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReminderCreate) SaveX(ctx context.Context) *Reminder {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReminderCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReminderCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReminderCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := reminder.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.Sent(); !ok {
		v := reminder.DefaultSent
		_c.mutation.SetSent(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReminderCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Reminder.created_at"`)}
	}
	if _, ok := _c.mutation.ReferenceID(); !ok {
		return &ValidationError{Name: "reference_id", err: errors.New(`ent: missing required field "Reminder.reference_id"`)}
	}
	if v, ok := _c.mutation.ReferenceID(); ok {
		if err := reminder.ReferenceIDValidator(v); err != nil {
			return &ValidationError{Name: "reference_id", err: fmt.Errorf(`ent: validator failed for field "Reminder.reference_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Offset(); !ok {
		return &ValidationError{Name: "offset", err: errors.New(`ent: missing required field "Reminder.offset"`)}
	}
	if v, ok := _c.mutation.Offset(); ok {
		if err := reminder.OffsetValidator(v); err != nil {
			return &ValidationError{Name: "offset", err: fmt.Errorf(`ent: validator failed for field "Reminder.offset": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TriggerAt(); !ok {
		return &ValidationError{Name: "trigger_at", err: errors.New(`ent: missing required field "Reminder.trigger_at"`)}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "Reminder.message"`)}
	}
	if v, ok := _c.mutation.Message(); ok {
		if err := reminder.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "Reminder.message": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Sent(); !ok {
		return &ValidationError{Name: "sent", err: errors.New(`ent: missing required field "Reminder.sent"`)}
	}
	return nil
}

func (_c *ReminderCreate) sqlSave(ctx context.Context) (*Reminder, error) {
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
			return nil, fmt.Errorf("unexpected Reminder.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReminderCreate) createSpec() (*Reminder, *sqlgraph.CreateSpec) {
	var (
		_node = &Reminder{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reminder.Table, sqlgraph.NewFieldSpec(reminder.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(reminder.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ReferenceID(); ok {
		_spec.SetField(reminder.FieldReferenceID, field.TypeString, value)
		_node.ReferenceID = value
	}
	if value, ok := _c.mutation.Offset(); ok {
		_spec.SetField(reminder.FieldOffset, field.TypeEnum, value)
		_node.Offset = value
	}
	if value, ok := _c.mutation.TriggerAt(); ok {
		_spec.SetField(reminder.FieldTriggerAt, field.TypeTime, value)
		_node.TriggerAt = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(reminder.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.Sent(); ok {
		_spec.SetField(reminder.FieldSent, field.TypeBool, value)
		_node.Sent = value
	}
	if value, ok := _c.mutation.SentAt(); ok {
		_spec.SetField(reminder.FieldSentAt, field.TypeTime, value)
		_node.SentAt = &value
	}
	return _node, _spec
}

// ReminderCreateBulk is the builder for creating many Reminder entities in bulk.
type ReminderCreateBulk struct {
	config
	err      error
	builders []*ReminderCreate
}

// Save creates the Reminder entities in the database.
func (_c *ReminderCreateBulk) Save(ctx context.Context) ([]*Reminder, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Reminder, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReminderMutation)
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
func (_c *ReminderCreateBulk) SaveX(ctx context.Context) []*Reminder {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReminderCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReminderCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
