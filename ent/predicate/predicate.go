// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// FlashcardReview is the predicate function for flashcardreview builders.
type FlashcardReview func(*sql.Selector)

// QuizResult is the predicate function for quizresult builders.
type QuizResult func(*sql.Selector)

// StudySession is the predicate function for studysession builders.
type StudySession func(*sql.Selector)

// TopicProgress is the predicate function for topicprogress builders.
type TopicProgress func(*sql.Selector)

// UserAchievement is the predicate function for userachievement builders.
type UserAchievement func(*sql.Selector)
