// Code generated by ent, DO NOT EDIT.

package userachievement

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the userachievement type in the database.
	Label = "user_achievement"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldAchievementKey holds the string denoting the achievement_key field in the database.
	FieldAchievementKey = "achievement_key"
	// FieldEarnedAt holds the string denoting the earned_at field in the database.
	FieldEarnedAt = "earned_at"
	// Table holds the table name of the userachievement in the database.
	Table = "user_achievements"
)

// Columns holds all SQL columns for userachievement fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldAchievementKey,
	FieldEarnedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// AchievementKeyValidator is a validator for the "achievement_key" field. It is called by the builders before save.
	AchievementKeyValidator func(string) error
	// DefaultEarnedAt holds the default value on creation for the "earned_at" field.
	DefaultEarnedAt func() time.Time
)

// OrderOption defines the ordering options for the UserAchievement queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByAchievementKey orders the results by the achievement_key field.
func ByAchievementKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAchievementKey, opts...).ToFunc()
}

// ByEarnedAt orders the results by the earned_at field.
func ByEarnedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEarnedAt, opts...).ToFunc()
}
