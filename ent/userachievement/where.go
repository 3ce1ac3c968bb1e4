// Code generated by ent, DO NOT EDIT.

package userachievement

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/benkyo/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.UserAchievement {
	return predicate.UserAchievement(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.UserAchievement {
	return predicate.UserAchievement(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.UserAchievement {
	return predicate.UserAchievement(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.UserAchievement {
	return predicate.UserAchievement(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.UserAchievement {
	return predicate.UserAchievement(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.UserAchievement {
	return predicate.UserAchievement(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.UserAchievement {
	return predicate.UserAchievement(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.UserAchievement {
	return predicate.UserAchievement(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.UserAchievement {
	return predicate.UserAchievement(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.UserAchievement {
	return predicate.UserAchievement(sql.FieldEQ(FieldUserID, v))
}

// AchievementKey applies equality check predicate on the "achievement_key" field. It's identical to AchievementKeyEQ.
func AchievementKey(v string) predicate.UserAchievement {
	return predicate.UserAchievement(sql.FieldEQ(FieldAchievementKey, v))
}

// EarnedAt applies equality check predicate on the "earned_at" field. It's identical to EarnedAtEQ.
func EarnedAt(v time.Time) predicate.UserAchievement {
	return predicate.UserAchievement(sql.FieldEQ(FieldEarnedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.UserAchievement {
	return predicate.UserAchievement(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.UserAchievement {
	return predicate.UserAchievement(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.UserAchievement {
	return predicate.UserAchievement(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.UserAchievement {
	return predicate.UserAchievement(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.UserAchievement {
	return predicate.UserAchievement(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.UserAchievement {
	return predicate.UserAchievement(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.UserAchievement {
	return predicate.UserAchievement(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.UserAchievement {
	return predicate.UserAchievement(sql.FieldLTE(FieldUserID, v))
}

// AchievementKeyEQ applies the EQ predicate on the "achievement_key" field.
func AchievementKeyEQ(v string) predicate.UserAchievement {
	return predicate.UserAchievement(sql.FieldEQ(FieldAchievementKey, v))
}

// AchievementKeyNEQ applies the NEQ predicate on the "achievement_key" field.
func AchievementKeyNEQ(v string) predicate.UserAchievement {
	return predicate.UserAchievement(sql.FieldNEQ(FieldAchievementKey, v))
}

// AchievementKeyIn applies the In predicate on the "achievement_key" field.
func AchievementKeyIn(vs ...string) predicate.UserAchievement {
	return predicate.UserAchievement(sql.FieldIn(FieldAchievementKey, vs...))
}

// AchievementKeyNotIn applies the NotIn predicate on the "achievement_key" field.
func AchievementKeyNotIn(vs ...string) predicate.UserAchievement {
	return predicate.UserAchievement(sql.FieldNotIn(FieldAchievementKey, vs...))
}

// AchievementKeyGT applies the GT predicate on the "achievement_key" field.
func AchievementKeyGT(v string) predicate.UserAchievement {
	return predicate.UserAchievement(sql.FieldGT(FieldAchievementKey, v))
}

// AchievementKeyGTE applies the GTE predicate on the "achievement_key" field.
func AchievementKeyGTE(v string) predicate.UserAchievement {
	return predicate.UserAchievement(sql.FieldGTE(FieldAchievementKey, v))
}

// AchievementKeyLT applies the LT predicate on the "achievement_key" field.
func AchievementKeyLT(v string) predicate.UserAchievement {
	return predicate.UserAchievement(sql.FieldLT(FieldAchievementKey, v))
}

// AchievementKeyLTE applies the LTE predicate on the "achievement_key" field.
func AchievementKeyLTE(v string) predicate.UserAchievement {
	return predicate.UserAchievement(sql.FieldLTE(FieldAchievementKey, v))
}

// AchievementKeyContains applies the Contains predicate on the "achievement_key" field.
func AchievementKeyContains(v string) predicate.UserAchievement {
	return predicate.UserAchievement(sql.FieldContains(FieldAchievementKey, v))
}

// AchievementKeyHasPrefix applies the HasPrefix predicate on the "achievement_key" field.
func AchievementKeyHasPrefix(v string) predicate.UserAchievement {
	return predicate.UserAchievement(sql.FieldHasPrefix(FieldAchievementKey, v))
}

// AchievementKeyHasSuffix applies the HasSuffix predicate on the "achievement_key" field.
func AchievementKeyHasSuffix(v string) predicate.UserAchievement {
	return predicate.UserAchievement(sql.FieldHasSuffix(FieldAchievementKey, v))
}

// AchievementKeyEqualFold applies the EqualFold predicate on the "achievement_key" field.
func AchievementKeyEqualFold(v string) predicate.UserAchievement {
	return predicate.UserAchievement(sql.FieldEqualFold(FieldAchievementKey, v))
}

// AchievementKeyContainsFold applies the ContainsFold predicate on the "achievement_key" field.
func AchievementKeyContainsFold(v string) predicate.UserAchievement {
	return predicate.UserAchievement(sql.FieldContainsFold(FieldAchievementKey, v))
}

// EarnedAtEQ applies the EQ predicate on the "earned_at" field.
func EarnedAtEQ(v time.Time) predicate.UserAchievement {
	return predicate.UserAchievement(sql.FieldEQ(FieldEarnedAt, v))
}

// EarnedAtNEQ applies the NEQ predicate on the "earned_at" field.
func EarnedAtNEQ(v time.Time) predicate.UserAchievement {
	return predicate.UserAchievement(sql.FieldNEQ(FieldEarnedAt, v))
}

// EarnedAtIn applies the In predicate on the "earned_at" field.
func EarnedAtIn(vs ...time.Time) predicate.UserAchievement {
	return predicate.UserAchievement(sql.FieldIn(FieldEarnedAt, vs...))
}

// EarnedAtNotIn applies the NotIn predicate on the "earned_at" field.
func EarnedAtNotIn(vs ...time.Time) predicate.UserAchievement {
	return predicate.UserAchievement(sql.FieldNotIn(FieldEarnedAt, vs...))
}

// EarnedAtGT applies the GT predicate on the "earned_at" field.
func EarnedAtGT(v time.Time) predicate.UserAchievement {
	return predicate.UserAchievement(sql.FieldGT(FieldEarnedAt, v))
}

// EarnedAtGTE applies the GTE predicate on the "earned_at" field.
func EarnedAtGTE(v time.Time) predicate.UserAchievement {
	return predicate.UserAchievement(sql.FieldGTE(FieldEarnedAt, v))
}

// EarnedAtLT applies the LT predicate on the "earned_at" field.
func EarnedAtLT(v time.Time) predicate.UserAchievement {
	return predicate.UserAchievement(sql.FieldLT(FieldEarnedAt, v))
}

// EarnedAtLTE applies the LTE predicate on the "earned_at" field.
func EarnedAtLTE(v time.Time) predicate.UserAchievement {
	return predicate.UserAchievement(sql.FieldLTE(FieldEarnedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserAchievement) predicate.UserAchievement {
	return predicate.UserAchievement(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserAchievement) predicate.UserAchievement {
	return predicate.UserAchievement(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserAchievement) predicate.UserAchievement {
	return predicate.UserAchievement(sql.NotPredicates(p))
}
