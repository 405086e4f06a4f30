// Code generated by ent, DO NOT EDIT.

package notice

import (
	"time"

	"crewdeck.io/notifier/ent/predicate"
	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Notice {
	return predicate.Notice(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Notice {
	return predicate.Notice(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Notice {
	return predicate.Notice(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Notice {
	return predicate.Notice(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Notice {
	return predicate.Notice(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Notice {
	return predicate.Notice(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Notice {
	return predicate.Notice(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Notice {
	return predicate.Notice(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Notice {
	return predicate.Notice(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldCreatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldUserID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldTitle, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldMessage, v))
}

// ActionTarget applies equality check predicate on the "action_target" field. It's identical to ActionTargetEQ.
func ActionTarget(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldActionTarget, v))
}

// ActionLabel applies equality check predicate on the "action_label" field. It's identical to ActionLabelEQ.
func ActionLabel(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldActionLabel, v))
}

// Read applies equality check predicate on the "read" field. It's identical to ReadEQ.
func Read(v bool) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldRead, v))
}

// ReadAt applies equality check predicate on the "read_at" field. It's identical to ReadAtEQ.
func ReadAt(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldReadAt, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldExpiresAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldLTE(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Notice {
	return predicate.Notice(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Notice {
	return predicate.Notice(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Notice {
	return predicate.Notice(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Notice {
	return predicate.Notice(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Notice {
	return predicate.Notice(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Notice {
	return predicate.Notice(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Notice {
	return predicate.Notice(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Notice {
	return predicate.Notice(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Notice {
	return predicate.Notice(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Notice {
	return predicate.Notice(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Notice {
	return predicate.Notice(sql.FieldContainsFold(FieldUserID, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v Category) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v Category) predicate.Notice {
	return predicate.Notice(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...Category) predicate.Notice {
	return predicate.Notice(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...Category) predicate.Notice {
	return predicate.Notice(sql.FieldNotIn(FieldCategory, vs...))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Notice {
	return predicate.Notice(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Notice {
	return predicate.Notice(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Notice {
	return predicate.Notice(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Notice {
	return predicate.Notice(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Notice {
	return predicate.Notice(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Notice {
	return predicate.Notice(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Notice {
	return predicate.Notice(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Notice {
	return predicate.Notice(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Notice {
	return predicate.Notice(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Notice {
	return predicate.Notice(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Notice {
	return predicate.Notice(sql.FieldContainsFold(FieldTitle, v))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.Notice {
	return predicate.Notice(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.Notice {
	return predicate.Notice(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.Notice {
	return predicate.Notice(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.Notice {
	return predicate.Notice(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.Notice {
	return predicate.Notice(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.Notice {
	return predicate.Notice(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.Notice {
	return predicate.Notice(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.Notice {
	return predicate.Notice(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.Notice {
	return predicate.Notice(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.Notice {
	return predicate.Notice(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.Notice {
	return predicate.Notice(sql.FieldContainsFold(FieldMessage, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v Priority) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v Priority) predicate.Notice {
	return predicate.Notice(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...Priority) predicate.Notice {
	return predicate.Notice(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...Priority) predicate.Notice {
	return predicate.Notice(sql.FieldNotIn(FieldPriority, vs...))
}

// ActionTargetEQ applies the EQ predicate on the "action_target" field.
func ActionTargetEQ(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldActionTarget, v))
}

// ActionTargetNEQ applies the NEQ predicate on the "action_target" field.
func ActionTargetNEQ(v string) predicate.Notice {
	return predicate.Notice(sql.FieldNEQ(FieldActionTarget, v))
}

// ActionTargetIn applies the In predicate on the "action_target" field.
func ActionTargetIn(vs ...string) predicate.Notice {
	return predicate.Notice(sql.FieldIn(FieldActionTarget, vs...))
}

// ActionTargetNotIn applies the NotIn predicate on the "action_target" field.
func ActionTargetNotIn(vs ...string) predicate.Notice {
	return predicate.Notice(sql.FieldNotIn(FieldActionTarget, vs...))
}

// ActionTargetGT applies the GT predicate on the "action_target" field.
func ActionTargetGT(v string) predicate.Notice {
	return predicate.Notice(sql.FieldGT(FieldActionTarget, v))
}

// ActionTargetGTE applies the GTE predicate on the "action_target" field.
func ActionTargetGTE(v string) predicate.Notice {
	return predicate.Notice(sql.FieldGTE(FieldActionTarget, v))
}

// ActionTargetLT applies the LT predicate on the "action_target" field.
func ActionTargetLT(v string) predicate.Notice {
	return predicate.Notice(sql.FieldLT(FieldActionTarget, v))
}

// ActionTargetLTE applies the LTE predicate on the "action_target" field.
func ActionTargetLTE(v string) predicate.Notice {
	return predicate.Notice(sql.FieldLTE(FieldActionTarget, v))
}

// ActionTargetContains applies the Contains predicate on the "action_target" field.
func ActionTargetContains(v string) predicate.Notice {
	return predicate.Notice(sql.FieldContains(FieldActionTarget, v))
}

// ActionTargetHasPrefix applies the HasPrefix predicate on the "action_target" field.
func ActionTargetHasPrefix(v string) predicate.Notice {
	return predicate.Notice(sql.FieldHasPrefix(FieldActionTarget, v))
}

// ActionTargetHasSuffix applies the HasSuffix predicate on the "action_target" field.
func ActionTargetHasSuffix(v string) predicate.Notice {
	return predicate.Notice(sql.FieldHasSuffix(FieldActionTarget, v))
}

// ActionTargetIsNil applies the IsNil predicate on the "action_target" field.
func ActionTargetIsNil() predicate.Notice {
	return predicate.Notice(sql.FieldIsNull(FieldActionTarget))
}

// ActionTargetNotNil applies the NotNil predicate on the "action_target" field.
func ActionTargetNotNil() predicate.Notice {
	return predicate.Notice(sql.FieldNotNull(FieldActionTarget))
}

// ActionTargetEqualFold applies the EqualFold predicate on the "action_target" field.
func ActionTargetEqualFold(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEqualFold(FieldActionTarget, v))
}

// ActionTargetContainsFold applies the ContainsFold predicate on the "action_target" field.
func ActionTargetContainsFold(v string) predicate.Notice {
	return predicate.Notice(sql.FieldContainsFold(FieldActionTarget, v))
}

// ActionLabelEQ applies the EQ predicate on the "action_label" field.
func ActionLabelEQ(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldActionLabel, v))
}

// ActionLabelNEQ applies the NEQ predicate on the "action_label" field.
func ActionLabelNEQ(v string) predicate.Notice {
	return predicate.Notice(sql.FieldNEQ(FieldActionLabel, v))
}

// ActionLabelIn applies the In predicate on the "action_label" field.
func ActionLabelIn(vs ...string) predicate.Notice {
	return predicate.Notice(sql.FieldIn(FieldActionLabel, vs...))
}

// ActionLabelNotIn applies the NotIn predicate on the "action_label" field.
func ActionLabelNotIn(vs ...string) predicate.Notice {
	return predicate.Notice(sql.FieldNotIn(FieldActionLabel, vs...))
}

// ActionLabelGT applies the GT predicate on the "action_label" field.
func ActionLabelGT(v string) predicate.Notice {
	return predicate.Notice(sql.FieldGT(FieldActionLabel, v))
}

// ActionLabelGTE applies the GTE predicate on the "action_label" field.
func ActionLabelGTE(v string) predicate.Notice {
	return predicate.Notice(sql.FieldGTE(FieldActionLabel, v))
}

// ActionLabelLT applies the LT predicate on the "action_label" field.
func ActionLabelLT(v string) predicate.Notice {
	return predicate.Notice(sql.FieldLT(FieldActionLabel, v))
}

// ActionLabelLTE applies the LTE predicate on the "action_label" field.
func ActionLabelLTE(v string) predicate.Notice {
	return predicate.Notice(sql.FieldLTE(FieldActionLabel, v))
}

// ActionLabelContains applies the Contains predicate on the "action_label" field.
func ActionLabelContains(v string) predicate.Notice {
	return predicate.Notice(sql.FieldContains(FieldActionLabel, v))
}

// ActionLabelHasPrefix applies the HasPrefix predicate on the "action_label" field.
func ActionLabelHasPrefix(v string) predicate.Notice {
	return predicate.Notice(sql.FieldHasPrefix(FieldActionLabel, v))
}

// ActionLabelHasSuffix applies the HasSuffix predicate on the "action_label" field.
func ActionLabelHasSuffix(v string) predicate.Notice {
	return predicate.Notice(sql.FieldHasSuffix(FieldActionLabel, v))
}

// ActionLabelIsNil applies the IsNil predicate on the "action_label" field.
func ActionLabelIsNil() predicate.Notice {
	return predicate.Notice(sql.FieldIsNull(FieldActionLabel))
}

// ActionLabelNotNil applies the NotNil predicate on the "action_label" field.
func ActionLabelNotNil() predicate.Notice {
	return predicate.Notice(sql.FieldNotNull(FieldActionLabel))
}

// ActionLabelEqualFold applies the EqualFold predicate on the "action_label" field.
func ActionLabelEqualFold(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEqualFold(FieldActionLabel, v))
}

// ActionLabelContainsFold applies the ContainsFold predicate on the "action_label" field.
func ActionLabelContainsFold(v string) predicate.Notice {
	return predicate.Notice(sql.FieldContainsFold(FieldActionLabel, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.Notice {
	return predicate.Notice(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.Notice {
	return predicate.Notice(sql.FieldNotNull(FieldMetadata))
}

// ReadEQ applies the EQ predicate on the "read" field.
func ReadEQ(v bool) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldRead, v))
}

// ReadNEQ applies the NEQ predicate on the "read" field.
func ReadNEQ(v bool) predicate.Notice {
	return predicate.Notice(sql.FieldNEQ(FieldRead, v))
}

// ReadAtEQ applies the EQ predicate on the "read_at" field.
func ReadAtEQ(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldReadAt, v))
}

// ReadAtNEQ applies the NEQ predicate on the "read_at" field.
func ReadAtNEQ(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldNEQ(FieldReadAt, v))
}

// ReadAtIn applies the In predicate on the "read_at" field.
func ReadAtIn(vs ...time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldIn(FieldReadAt, vs...))
}

// ReadAtNotIn applies the NotIn predicate on the "read_at" field.
func ReadAtNotIn(vs ...time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldNotIn(FieldReadAt, vs...))
}

// ReadAtGT applies the GT predicate on the "read_at" field.
func ReadAtGT(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldGT(FieldReadAt, v))
}

// ReadAtGTE applies the GTE predicate on the "read_at" field.
func ReadAtGTE(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldGTE(FieldReadAt, v))
}

// ReadAtLT applies the LT predicate on the "read_at" field.
func ReadAtLT(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldLT(FieldReadAt, v))
}

// ReadAtLTE applies the LTE predicate on the "read_at" field.
func ReadAtLTE(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldLTE(FieldReadAt, v))
}

// ReadAtIsNil applies the IsNil predicate on the "read_at" field.
func ReadAtIsNil() predicate.Notice {
	return predicate.Notice(sql.FieldIsNull(FieldReadAt))
}

// ReadAtNotNil applies the NotNil predicate on the "read_at" field.
func ReadAtNotNil() predicate.Notice {
	return predicate.Notice(sql.FieldNotNull(FieldReadAt))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldLTE(FieldExpiresAt, v))
}

// ExpiresAtIsNil applies the IsNil predicate on the "expires_at" field.
func ExpiresAtIsNil() predicate.Notice {
	return predicate.Notice(sql.FieldIsNull(FieldExpiresAt))
}

// ExpiresAtNotNil applies the NotNil predicate on the "expires_at" field.
func ExpiresAtNotNil() predicate.Notice {
	return predicate.Notice(sql.FieldNotNull(FieldExpiresAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Notice) predicate.Notice {
	return predicate.Notice(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Notice) predicate.Notice {
	return predicate.Notice(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Notice) predicate.Notice {
	return predicate.Notice(sql.NotPredicates(p))
}
