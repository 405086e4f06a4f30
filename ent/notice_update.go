// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crewdeck.io/notifier/ent/notice"
	"crewdeck.io/notifier/ent/predicate"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// NoticeUpdate is the builder for updating Notice entities.
type NoticeUpdate struct {
	config
	hooks    []Hook
	mutation *NoticeMutation
}

// Where appends a list predicates to the NoticeUpdate builder.
func (_u *NoticeUpdate) Where(ps ...predicate.Notice) *NoticeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCategory sets the "category" field.
func (_u *NoticeUpdate) SetCategory(v notice.Category) *NoticeUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *NoticeUpdate) SetNillableCategory(v *notice.Category) *NoticeUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *NoticeUpdate) SetTitle(v string) *NoticeUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *NoticeUpdate) SetNillableTitle(v *string) *NoticeUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *NoticeUpdate) SetMessage(v string) *NoticeUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *NoticeUpdate) SetNillableMessage(v *string) *NoticeUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *NoticeUpdate) SetPriority(v notice.Priority) *NoticeUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *NoticeUpdate) SetNillablePriority(v *notice.Priority) *NoticeUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetActionTarget sets the "action_target" field.
func (_u *NoticeUpdate) SetActionTarget(v string) *NoticeUpdate {
	_u.mutation.SetActionTarget(v)
	return _u
}

// SetNillableActionTarget sets the "action_target" field if the given value is not nil.
func (_u *NoticeUpdate) SetNillableActionTarget(v *string) *NoticeUpdate {
	if v != nil {
		_u.SetActionTarget(*v)
	}
	return _u
}

// ClearActionTarget clears the value of the "action_target" field.
func (_u *NoticeUpdate) ClearActionTarget() *NoticeUpdate {
	_u.mutation.ClearActionTarget()
	return _u
}

// SetActionLabel sets the "action_label" field.
func (_u *NoticeUpdate) SetActionLabel(v string) *NoticeUpdate {
	_u.mutation.SetActionLabel(v)
	return _u
}

// SetNillableActionLabel sets the "action_label" field if the given value is not nil.
func (_u *NoticeUpdate) SetNillableActionLabel(v *string) *NoticeUpdate {
	if v != nil {
		_u.SetActionLabel(*v)
	}
	return _u
}

// ClearActionLabel clears the value of the "action_label" field.
func (_u *NoticeUpdate) ClearActionLabel() *NoticeUpdate {
	_u.mutation.ClearActionLabel()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *NoticeUpdate) SetMetadata(v map[string]string) *NoticeUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *NoticeUpdate) ClearMetadata() *NoticeUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetRead sets the "read" field.
func (_u *NoticeUpdate) SetRead(v bool) *NoticeUpdate {
	_u.mutation.SetRead(v)
	return _u
}

// SetNillableRead sets the "read" field if the given value is not nil.
func (_u *NoticeUpdate) SetNillableRead(v *bool) *NoticeUpdate {
	if v != nil {
		_u.SetRead(*v)
	}
	return _u
}

// SetReadAt sets the "read_at" field.
func (_u *NoticeUpdate) SetReadAt(v time.Time) *NoticeUpdate {
	_u.mutation.SetReadAt(v)
	return _u
}

// SetNillableReadAt sets the "read_at" field if the given value is not nil.
func (_u *NoticeUpdate) SetNillableReadAt(v *time.Time) *NoticeUpdate {
	if v != nil {
		_u.SetReadAt(*v)
	}
	return _u
}

// ClearReadAt clears the value of the "read_at" field.
func (_u *NoticeUpdate) ClearReadAt() *NoticeUpdate {
	_u.mutation.ClearReadAt()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *NoticeUpdate) SetExpiresAt(v time.Time) *NoticeUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *NoticeUpdate) SetNillableExpiresAt(v *time.Time) *NoticeUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *NoticeUpdate) ClearExpiresAt() *NoticeUpdate {
	_u.mutation.ClearExpiresAt()
	return _u
}

// Mutation returns the NoticeMutation object of the builder.
func (_u *NoticeUpdate) Mutation() *NoticeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NoticeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NoticeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NoticeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NoticeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NoticeUpdate) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := notice.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Notice.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := notice.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Notice.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Message(); ok {
		if err := notice.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "Notice.message": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := notice.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Notice.priority": %w`, err)}
		}
	}
	return nil
}

func (_u *NoticeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(notice.Table, notice.Columns, sqlgraph.NewFieldSpec(notice.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(notice.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(notice.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(notice.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(notice.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ActionTarget(); ok {
		_spec.SetField(notice.FieldActionTarget, field.TypeString, value)
	}
	if _u.mutation.ActionTargetCleared() {
		_spec.ClearField(notice.FieldActionTarget, field.TypeString)
	}
	if value, ok := _u.mutation.ActionLabel(); ok {
		_spec.SetField(notice.FieldActionLabel, field.TypeString, value)
	}
	if _u.mutation.ActionLabelCleared() {
		_spec.ClearField(notice.FieldActionLabel, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(notice.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(notice.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Read(); ok {
		_spec.SetField(notice.FieldRead, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReadAt(); ok {
		_spec.SetField(notice.FieldReadAt, field.TypeTime, value)
	}
	if _u.mutation.ReadAtCleared() {
		_spec.ClearField(notice.FieldReadAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(notice.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(notice.FieldExpiresAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NoticeUpdateOne is the builder for updating a single Notice entity.
type NoticeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NoticeMutation
}

// SetCategory sets the "category" field.
func (_u *NoticeUpdateOne) SetCategory(v notice.Category) *NoticeUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *NoticeUpdateOne) SetNillableCategory(v *notice.Category) *NoticeUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *NoticeUpdateOne) SetTitle(v string) *NoticeUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *NoticeUpdateOne) SetNillableTitle(v *string) *NoticeUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *NoticeUpdateOne) SetMessage(v string) *NoticeUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *NoticeUpdateOne) SetNillableMessage(v *string) *NoticeUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *NoticeUpdateOne) SetPriority(v notice.Priority) *NoticeUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *NoticeUpdateOne) SetNillablePriority(v *notice.Priority) *NoticeUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetActionTarget sets the "action_target" field.
func (_u *NoticeUpdateOne) SetActionTarget(v string) *NoticeUpdateOne {
	_u.mutation.SetActionTarget(v)
	return _u
}

// SetNillableActionTarget sets the "action_target" field if the given value is not nil.
func (_u *NoticeUpdateOne) SetNillableActionTarget(v *string) *NoticeUpdateOne {
	if v != nil {
		_u.SetActionTarget(*v)
	}
	return _u
}

// ClearActionTarget clears the value of the "action_target" field.
func (_u *NoticeUpdateOne) ClearActionTarget() *NoticeUpdateOne {
	_u.mutation.ClearActionTarget()
	return _u
}

// SetActionLabel sets the "action_label" field.
func (_u *NoticeUpdateOne) SetActionLabel(v string) *NoticeUpdateOne {
	_u.mutation.SetActionLabel(v)
	return _u
}

// SetNillableActionLabel sets the "action_label" field if the given value is not nil.
func (_u *NoticeUpdateOne) SetNillableActionLabel(v *string) *NoticeUpdateOne {
	if v != nil {
		_u.SetActionLabel(*v)
	}
	return _u
}

// ClearActionLabel clears the value of the "action_label" field.
func (_u *NoticeUpdateOne) ClearActionLabel() *NoticeUpdateOne {
	_u.mutation.ClearActionLabel()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *NoticeUpdateOne) SetMetadata(v map[string]string) *NoticeUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *NoticeUpdateOne) ClearMetadata() *NoticeUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetRead sets the "read" field.
func (_u *NoticeUpdateOne) SetRead(v bool) *NoticeUpdateOne {
	_u.mutation.SetRead(v)
	return _u
}

// SetNillableRead sets the "read" field if the given value is not nil.
func (_u *NoticeUpdateOne) SetNillableRead(v *bool) *NoticeUpdateOne {
	if v != nil {
		_u.SetRead(*v)
	}
	return _u
}

// SetReadAt sets the "read_at" field.
func (_u *NoticeUpdateOne) SetReadAt(v time.Time) *NoticeUpdateOne {
	_u.mutation.SetReadAt(v)
	return _u
}

// SetNillableReadAt sets the "read_at" field if the given value is not nil.
func (_u *NoticeUpdateOne) SetNillableReadAt(v *time.Time) *NoticeUpdateOne {
	if v != nil {
		_u.SetReadAt(*v)
	}
	return _u
}

// ClearReadAt clears the value of the "read_at" field.
func (_u *NoticeUpdateOne) ClearReadAt() *NoticeUpdateOne {
	_u.mutation.ClearReadAt()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *NoticeUpdateOne) SetExpiresAt(v time.Time) *NoticeUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *NoticeUpdateOne) SetNillableExpiresAt(v *time.Time) *NoticeUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *NoticeUpdateOne) ClearExpiresAt() *NoticeUpdateOne {
	_u.mutation.ClearExpiresAt()
	return _u
}

// Mutation returns the NoticeMutation object of the builder.
func (_u *NoticeUpdateOne) Mutation() *NoticeMutation {
	return _u.mutation
}

// Where appends a list predicates to the NoticeUpdate builder.
func (_u *NoticeUpdateOne) Where(ps ...predicate.Notice) *NoticeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NoticeUpdateOne) Select(field string, fields ...string) *NoticeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Notice entity.
func (_u *NoticeUpdateOne) Save(ctx context.Context) (*Notice, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NoticeUpdateOne) SaveX(ctx context.Context) *Notice {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NoticeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NoticeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NoticeUpdateOne) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := notice.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Notice.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := notice.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Notice.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Message(); ok {
		if err := notice.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "Notice.message": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := notice.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Notice.priority": %w`, err)}
		}
	}
	return nil
}

func (_u *NoticeUpdateOne) sqlSave(ctx context.Context) (_node *Notice, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(notice.Table, notice.Columns, sqlgraph.NewFieldSpec(notice.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Notice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, notice.FieldID)
		for _, f := range fields {
			if !notice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != notice.FieldID {
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
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(notice.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(notice.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(notice.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(notice.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ActionTarget(); ok {
		_spec.SetField(notice.FieldActionTarget, field.TypeString, value)
	}
	if _u.mutation.ActionTargetCleared() {
		_spec.ClearField(notice.FieldActionTarget, field.TypeString)
	}
	if value, ok := _u.mutation.ActionLabel(); ok {
		_spec.SetField(notice.FieldActionLabel, field.TypeString, value)
	}
	if _u.mutation.ActionLabelCleared() {
		_spec.ClearField(notice.FieldActionLabel, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(notice.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(notice.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Read(); ok {
		_spec.SetField(notice.FieldRead, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReadAt(); ok {
		_spec.SetField(notice.FieldReadAt, field.TypeTime, value)
	}
	if _u.mutation.ReadAtCleared() {
		_spec.ClearField(notice.FieldReadAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(notice.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(notice.FieldExpiresAt, field.TypeTime)
	}
	_node = &Notice{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
