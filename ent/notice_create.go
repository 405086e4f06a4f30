// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crewdeck.io/notifier/ent/notice"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// NoticeCreate is the builder for creating a Notice entity.
type NoticeCreate struct {
	config
	mutation *NoticeMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *NoticeCreate) SetCreatedAt(v time.Time) *NoticeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *NoticeCreate) SetNillableCreatedAt(v *time.Time) *NoticeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *NoticeCreate) SetUserID(v string) *NoticeCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *NoticeCreate) SetCategory(v notice.Category) *NoticeCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *NoticeCreate) SetTitle(v string) *NoticeCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *NoticeCreate) SetMessage(v string) *NoticeCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *NoticeCreate) SetPriority(v notice.Priority) *NoticeCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *NoticeCreate) SetNillablePriority(v *notice.Priority) *NoticeCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetActionTarget sets the "action_target" field.
func (_c *NoticeCreate) SetActionTarget(v string) *NoticeCreate {
	_c.mutation.SetActionTarget(v)
	return _c
}

// SetNillableActionTarget sets the "action_target" field if the given value is not nil.
func (_c *NoticeCreate) SetNillableActionTarget(v *string) *NoticeCreate {
	if v != nil {
		_c.SetActionTarget(*v)
	}
	return _c
}

// SetActionLabel sets the "action_label" field.
func (_c *NoticeCreate) SetActionLabel(v string) *NoticeCreate {
	_c.mutation.SetActionLabel(v)
	return _c
}

// SetNillableActionLabel sets the "action_label" field if the given value is not nil.
func (_c *NoticeCreate) SetNillableActionLabel(v *string) *NoticeCreate {
	if v != nil {
		_c.SetActionLabel(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *NoticeCreate) SetMetadata(v map[string]string) *NoticeCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetRead sets the "read" field.
func (_c *NoticeCreate) SetRead(v bool) *NoticeCreate {
	_c.mutation.SetRead(v)
	return _c
}

// SetNillableRead sets the "read" field if the given value is not nil.
func (_c *NoticeCreate) SetNillableRead(v *bool) *NoticeCreate {
	if v != nil {
		_c.SetRead(*v)
	}
	return _c
}

// SetReadAt sets the "read_at" field.
func (_c *NoticeCreate) SetReadAt(v time.Time) *NoticeCreate {
	_c.mutation.SetReadAt(v)
	return _c
}

// SetNillableReadAt sets the "read_at" field if the given value is not nil.
func (_c *NoticeCreate) SetNillableReadAt(v *time.Time) *NoticeCreate {
	if v != nil {
		_c.SetReadAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *NoticeCreate) SetExpiresAt(v time.Time) *NoticeCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_c *NoticeCreate) SetNillableExpiresAt(v *time.Time) *NoticeCreate {
	if v != nil {
		_c.SetExpiresAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *NoticeCreate) SetID(v string) *NoticeCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the NoticeMutation object of the builder.
func (_c *NoticeCreate) Mutation() *NoticeMutation {
	return _c.mutation
}

// Save creates the Notice in the database.
func (_c *NoticeCreate) Save(ctx context.Context) (*Notice, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NoticeCreate) SaveX(ctx context.Context) *Notice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NoticeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NoticeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NoticeCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := notice.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := notice.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Read(); !ok {
		v := notice.DefaultRead
		_c.mutation.SetRead(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NoticeCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Notice.created_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Notice.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := notice.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Notice.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "Notice.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := notice.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Notice.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Notice.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := notice.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Notice.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "Notice.message"`)}
	}
	if v, ok := _c.mutation.Message(); ok {
		if err := notice.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "Notice.message": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Notice.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := notice.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Notice.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Read(); !ok {
		return &ValidationError{Name: "read", err: errors.New(`ent: missing required field "Notice.read"`)}
	}
	return nil
}

func (_c *NoticeCreate) sqlSave(ctx context.Context) (*Notice, error) {
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
			return nil, fmt.Errorf("unexpected Notice.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *NoticeCreate) createSpec() (*Notice, *sqlgraph.CreateSpec) {
	var (
		_node = &Notice{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(notice.Table, sqlgraph.NewFieldSpec(notice.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(notice.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(notice.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(notice.FieldCategory, field.TypeEnum, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(notice.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(notice.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(notice.FieldPriority, field.TypeEnum, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.ActionTarget(); ok {
		_spec.SetField(notice.FieldActionTarget, field.TypeString, value)
		_node.ActionTarget = value
	}
	if value, ok := _c.mutation.ActionLabel(); ok {
		_spec.SetField(notice.FieldActionLabel, field.TypeString, value)
		_node.ActionLabel = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(notice.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.Read(); ok {
		_spec.SetField(notice.FieldRead, field.TypeBool, value)
		_node.Read = value
	}
	if value, ok := _c.mutation.ReadAt(); ok {
		_spec.SetField(notice.FieldReadAt, field.TypeTime, value)
		_node.ReadAt = &value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(notice.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = &value
	}
	return _node, _spec
}

// NoticeCreateBulk is the builder for creating many Notice entities in bulk.
type NoticeCreateBulk struct {
	config
	err      error
	builders []*NoticeCreate
}

// Save creates the Notice entities in the database.
func (_c *NoticeCreateBulk) Save(ctx context.Context) ([]*Notice, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Notice, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NoticeMutation)
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
func (_c *NoticeCreateBulk) SaveX(ctx context.Context) []*Notice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NoticeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NoticeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
