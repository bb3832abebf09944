// Code generated by ent, DO NOT EDIT.

package progressevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/drillwise/drillwise/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLTE(FieldID, id))
}

// ClientCompletionID applies equality check predicate on the "client_completion_id" field. It's identical to ClientCompletionIDEQ.
func ClientCompletionID(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldClientCompletionID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldUserID, v))
}

// Niche applies equality check predicate on the "niche" field. It's identical to NicheEQ.
func Niche(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldNiche, v))
}

// CustomNiche applies equality check predicate on the "custom_niche" field. It's identical to CustomNicheEQ.
func CustomNiche(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldCustomNiche, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldTimestamp, v))
}

// ClientCompletionIDEQ applies the EQ predicate on the "client_completion_id" field.
func ClientCompletionIDEQ(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldClientCompletionID, v))
}

// ClientCompletionIDNEQ applies the NEQ predicate on the "client_completion_id" field.
func ClientCompletionIDNEQ(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNEQ(FieldClientCompletionID, v))
}

// ClientCompletionIDIn applies the In predicate on the "client_completion_id" field.
func ClientCompletionIDIn(vs ...string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldIn(FieldClientCompletionID, vs...))
}

// ClientCompletionIDNotIn applies the NotIn predicate on the "client_completion_id" field.
func ClientCompletionIDNotIn(vs ...string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNotIn(FieldClientCompletionID, vs...))
}

// ClientCompletionIDGT applies the GT predicate on the "client_completion_id" field.
func ClientCompletionIDGT(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGT(FieldClientCompletionID, v))
}

// ClientCompletionIDGTE applies the GTE predicate on the "client_completion_id" field.
func ClientCompletionIDGTE(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGTE(FieldClientCompletionID, v))
}

// ClientCompletionIDLT applies the LT predicate on the "client_completion_id" field.
func ClientCompletionIDLT(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLT(FieldClientCompletionID, v))
}

// ClientCompletionIDLTE applies the LTE predicate on the "client_completion_id" field.
func ClientCompletionIDLTE(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLTE(FieldClientCompletionID, v))
}

// ClientCompletionIDContains applies the Contains predicate on the "client_completion_id" field.
func ClientCompletionIDContains(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldContains(FieldClientCompletionID, v))
}

// ClientCompletionIDHasPrefix applies the HasPrefix predicate on the "client_completion_id" field.
func ClientCompletionIDHasPrefix(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldHasPrefix(FieldClientCompletionID, v))
}

// ClientCompletionIDHasSuffix applies the HasSuffix predicate on the "client_completion_id" field.
func ClientCompletionIDHasSuffix(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldHasSuffix(FieldClientCompletionID, v))
}

// ClientCompletionIDEqualFold applies the EqualFold predicate on the "client_completion_id" field.
func ClientCompletionIDEqualFold(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEqualFold(FieldClientCompletionID, v))
}

// ClientCompletionIDContainsFold applies the ContainsFold predicate on the "client_completion_id" field.
func ClientCompletionIDContainsFold(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldContainsFold(FieldClientCompletionID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldContainsFold(FieldUserID, v))
}

// NicheEQ applies the EQ predicate on the "niche" field.
func NicheEQ(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldNiche, v))
}

// NicheNEQ applies the NEQ predicate on the "niche" field.
func NicheNEQ(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNEQ(FieldNiche, v))
}

// NicheIn applies the In predicate on the "niche" field.
func NicheIn(vs ...string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldIn(FieldNiche, vs...))
}

// NicheNotIn applies the NotIn predicate on the "niche" field.
func NicheNotIn(vs ...string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNotIn(FieldNiche, vs...))
}

// NicheGT applies the GT predicate on the "niche" field.
func NicheGT(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGT(FieldNiche, v))
}

// NicheGTE applies the GTE predicate on the "niche" field.
func NicheGTE(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGTE(FieldNiche, v))
}

// NicheLT applies the LT predicate on the "niche" field.
func NicheLT(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLT(FieldNiche, v))
}

// NicheLTE applies the LTE predicate on the "niche" field.
func NicheLTE(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLTE(FieldNiche, v))
}

// NicheContains applies the Contains predicate on the "niche" field.
func NicheContains(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldContains(FieldNiche, v))
}

// NicheHasPrefix applies the HasPrefix predicate on the "niche" field.
func NicheHasPrefix(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldHasPrefix(FieldNiche, v))
}

// NicheHasSuffix applies the HasSuffix predicate on the "niche" field.
func NicheHasSuffix(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldHasSuffix(FieldNiche, v))
}

// NicheEqualFold applies the EqualFold predicate on the "niche" field.
func NicheEqualFold(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEqualFold(FieldNiche, v))
}

// NicheContainsFold applies the ContainsFold predicate on the "niche" field.
func NicheContainsFold(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldContainsFold(FieldNiche, v))
}

// CustomNicheEQ applies the EQ predicate on the "custom_niche" field.
func CustomNicheEQ(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldCustomNiche, v))
}

// CustomNicheNEQ applies the NEQ predicate on the "custom_niche" field.
func CustomNicheNEQ(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNEQ(FieldCustomNiche, v))
}

// CustomNicheIn applies the In predicate on the "custom_niche" field.
func CustomNicheIn(vs ...string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldIn(FieldCustomNiche, vs...))
}

// CustomNicheNotIn applies the NotIn predicate on the "custom_niche" field.
func CustomNicheNotIn(vs ...string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNotIn(FieldCustomNiche, vs...))
}

// CustomNicheGT applies the GT predicate on the "custom_niche" field.
func CustomNicheGT(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGT(FieldCustomNiche, v))
}

// CustomNicheGTE applies the GTE predicate on the "custom_niche" field.
func CustomNicheGTE(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGTE(FieldCustomNiche, v))
}

// CustomNicheLT applies the LT predicate on the "custom_niche" field.
func CustomNicheLT(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLT(FieldCustomNiche, v))
}

// CustomNicheLTE applies the LTE predicate on the "custom_niche" field.
func CustomNicheLTE(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLTE(FieldCustomNiche, v))
}

// CustomNicheContains applies the Contains predicate on the "custom_niche" field.
func CustomNicheContains(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldContains(FieldCustomNiche, v))
}

// CustomNicheHasPrefix applies the HasPrefix predicate on the "custom_niche" field.
func CustomNicheHasPrefix(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldHasPrefix(FieldCustomNiche, v))
}

// CustomNicheHasSuffix applies the HasSuffix predicate on the "custom_niche" field.
func CustomNicheHasSuffix(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldHasSuffix(FieldCustomNiche, v))
}

// CustomNicheEqualFold applies the EqualFold predicate on the "custom_niche" field.
func CustomNicheEqualFold(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEqualFold(FieldCustomNiche, v))
}

// CustomNicheContainsFold applies the ContainsFold predicate on the "custom_niche" field.
func CustomNicheContainsFold(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldContainsFold(FieldCustomNiche, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLTE(FieldTimestamp, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProgressEvent) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProgressEvent) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProgressEvent) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.NotPredicates(p))
}
