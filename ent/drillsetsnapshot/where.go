// Code generated by ent, DO NOT EDIT.

package drillsetsnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/drillwise/drillwise/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldEQ(FieldUserID, v))
}

// NicheKey applies equality check predicate on the "niche_key" field. It's identical to NicheKeyEQ.
func NicheKey(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldEQ(FieldNicheKey, v))
}

// Struggle applies equality check predicate on the "struggle" field. It's identical to StruggleEQ.
func Struggle(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldEQ(FieldStruggle, v))
}

// Objective applies equality check predicate on the "objective" field. It's identical to ObjectiveEQ.
func Objective(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldEQ(FieldObjective, v))
}

// Mode applies equality check predicate on the "mode" field. It's identical to ModeEQ.
func Mode(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldEQ(FieldMode, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldContainsFold(FieldUserID, v))
}

// NicheKeyEQ applies the EQ predicate on the "niche_key" field.
func NicheKeyEQ(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldEQ(FieldNicheKey, v))
}

// NicheKeyNEQ applies the NEQ predicate on the "niche_key" field.
func NicheKeyNEQ(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldNEQ(FieldNicheKey, v))
}

// NicheKeyIn applies the In predicate on the "niche_key" field.
func NicheKeyIn(vs ...string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldIn(FieldNicheKey, vs...))
}

// NicheKeyNotIn applies the NotIn predicate on the "niche_key" field.
func NicheKeyNotIn(vs ...string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldNotIn(FieldNicheKey, vs...))
}

// NicheKeyGT applies the GT predicate on the "niche_key" field.
func NicheKeyGT(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldGT(FieldNicheKey, v))
}

// NicheKeyGTE applies the GTE predicate on the "niche_key" field.
func NicheKeyGTE(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldGTE(FieldNicheKey, v))
}

// NicheKeyLT applies the LT predicate on the "niche_key" field.
func NicheKeyLT(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldLT(FieldNicheKey, v))
}

// NicheKeyLTE applies the LTE predicate on the "niche_key" field.
func NicheKeyLTE(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldLTE(FieldNicheKey, v))
}

// NicheKeyContains applies the Contains predicate on the "niche_key" field.
func NicheKeyContains(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldContains(FieldNicheKey, v))
}

// NicheKeyHasPrefix applies the HasPrefix predicate on the "niche_key" field.
func NicheKeyHasPrefix(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldHasPrefix(FieldNicheKey, v))
}

// NicheKeyHasSuffix applies the HasSuffix predicate on the "niche_key" field.
func NicheKeyHasSuffix(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldHasSuffix(FieldNicheKey, v))
}

// NicheKeyEqualFold applies the EqualFold predicate on the "niche_key" field.
func NicheKeyEqualFold(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldEqualFold(FieldNicheKey, v))
}

// NicheKeyContainsFold applies the ContainsFold predicate on the "niche_key" field.
func NicheKeyContainsFold(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldContainsFold(FieldNicheKey, v))
}

// StruggleEQ applies the EQ predicate on the "struggle" field.
func StruggleEQ(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldEQ(FieldStruggle, v))
}

// StruggleNEQ applies the NEQ predicate on the "struggle" field.
func StruggleNEQ(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldNEQ(FieldStruggle, v))
}

// StruggleIn applies the In predicate on the "struggle" field.
func StruggleIn(vs ...string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldIn(FieldStruggle, vs...))
}

// StruggleNotIn applies the NotIn predicate on the "struggle" field.
func StruggleNotIn(vs ...string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldNotIn(FieldStruggle, vs...))
}

// StruggleGT applies the GT predicate on the "struggle" field.
func StruggleGT(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldGT(FieldStruggle, v))
}

// StruggleGTE applies the GTE predicate on the "struggle" field.
func StruggleGTE(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldGTE(FieldStruggle, v))
}

// StruggleLT applies the LT predicate on the "struggle" field.
func StruggleLT(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldLT(FieldStruggle, v))
}

// StruggleLTE applies the LTE predicate on the "struggle" field.
func StruggleLTE(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldLTE(FieldStruggle, v))
}

// StruggleContains applies the Contains predicate on the "struggle" field.
func StruggleContains(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldContains(FieldStruggle, v))
}

// StruggleHasPrefix applies the HasPrefix predicate on the "struggle" field.
func StruggleHasPrefix(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldHasPrefix(FieldStruggle, v))
}

// StruggleHasSuffix applies the HasSuffix predicate on the "struggle" field.
func StruggleHasSuffix(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldHasSuffix(FieldStruggle, v))
}

// StruggleEqualFold applies the EqualFold predicate on the "struggle" field.
func StruggleEqualFold(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldEqualFold(FieldStruggle, v))
}

// StruggleContainsFold applies the ContainsFold predicate on the "struggle" field.
func StruggleContainsFold(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldContainsFold(FieldStruggle, v))
}

// ObjectiveEQ applies the EQ predicate on the "objective" field.
func ObjectiveEQ(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldEQ(FieldObjective, v))
}

// ObjectiveNEQ applies the NEQ predicate on the "objective" field.
func ObjectiveNEQ(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldNEQ(FieldObjective, v))
}

// ObjectiveIn applies the In predicate on the "objective" field.
func ObjectiveIn(vs ...string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldIn(FieldObjective, vs...))
}

// ObjectiveNotIn applies the NotIn predicate on the "objective" field.
func ObjectiveNotIn(vs ...string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldNotIn(FieldObjective, vs...))
}

// ObjectiveGT applies the GT predicate on the "objective" field.
func ObjectiveGT(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldGT(FieldObjective, v))
}

// ObjectiveGTE applies the GTE predicate on the "objective" field.
func ObjectiveGTE(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldGTE(FieldObjective, v))
}

// ObjectiveLT applies the LT predicate on the "objective" field.
func ObjectiveLT(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldLT(FieldObjective, v))
}

// ObjectiveLTE applies the LTE predicate on the "objective" field.
func ObjectiveLTE(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldLTE(FieldObjective, v))
}

// ObjectiveContains applies the Contains predicate on the "objective" field.
func ObjectiveContains(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldContains(FieldObjective, v))
}

// ObjectiveHasPrefix applies the HasPrefix predicate on the "objective" field.
func ObjectiveHasPrefix(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldHasPrefix(FieldObjective, v))
}

// ObjectiveHasSuffix applies the HasSuffix predicate on the "objective" field.
func ObjectiveHasSuffix(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldHasSuffix(FieldObjective, v))
}

// ObjectiveEqualFold applies the EqualFold predicate on the "objective" field.
func ObjectiveEqualFold(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldEqualFold(FieldObjective, v))
}

// ObjectiveContainsFold applies the ContainsFold predicate on the "objective" field.
func ObjectiveContainsFold(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldContainsFold(FieldObjective, v))
}

// ModeEQ applies the EQ predicate on the "mode" field.
func ModeEQ(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldEQ(FieldMode, v))
}

// ModeNEQ applies the NEQ predicate on the "mode" field.
func ModeNEQ(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldNEQ(FieldMode, v))
}

// ModeIn applies the In predicate on the "mode" field.
func ModeIn(vs ...string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldIn(FieldMode, vs...))
}

// ModeNotIn applies the NotIn predicate on the "mode" field.
func ModeNotIn(vs ...string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldNotIn(FieldMode, vs...))
}

// ModeGT applies the GT predicate on the "mode" field.
func ModeGT(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldGT(FieldMode, v))
}

// ModeGTE applies the GTE predicate on the "mode" field.
func ModeGTE(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldGTE(FieldMode, v))
}

// ModeLT applies the LT predicate on the "mode" field.
func ModeLT(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldLT(FieldMode, v))
}

// ModeLTE applies the LTE predicate on the "mode" field.
func ModeLTE(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldLTE(FieldMode, v))
}

// ModeContains applies the Contains predicate on the "mode" field.
func ModeContains(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldContains(FieldMode, v))
}

// ModeHasPrefix applies the HasPrefix predicate on the "mode" field.
func ModeHasPrefix(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldHasPrefix(FieldMode, v))
}

// ModeHasSuffix applies the HasSuffix predicate on the "mode" field.
func ModeHasSuffix(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldHasSuffix(FieldMode, v))
}

// ModeEqualFold applies the EqualFold predicate on the "mode" field.
func ModeEqualFold(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldEqualFold(FieldMode, v))
}

// ModeContainsFold applies the ContainsFold predicate on the "mode" field.
func ModeContainsFold(v string) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldContainsFold(FieldMode, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DrillSetSnapshot) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DrillSetSnapshot) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DrillSetSnapshot) predicate.DrillSetSnapshot {
	return predicate.DrillSetSnapshot(sql.NotPredicates(p))
}
