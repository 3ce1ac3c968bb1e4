// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// FlashcardReviewsColumns holds the columns for the "flashcard_reviews" table.
	FlashcardReviewsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "flashcard_id", Type: field.TypeString},
		{Name: "confidence_level", Type: field.TypeInt},
		{Name: "easiness_factor", Type: field.TypeFloat64},
		{Name: "interval_days", Type: field.TypeInt},
		{Name: "next_review_date", Type: field.TypeTime},
	}
	// FlashcardReviewsTable holds the schema information for the "flashcard_reviews" table.
	FlashcardReviewsTable = &schema.Table{
		Name:       "flashcard_reviews",
		Columns:    FlashcardReviewsColumns,
		PrimaryKey: []*schema.Column{FlashcardReviewsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "flashcardreview_sequence",
				Unique:  false,
				Columns: []*schema.Column{FlashcardReviewsColumns[1]},
			},
			{
				Name:    "flashcardreview_timestamp",
				Unique:  false,
				Columns: []*schema.Column{FlashcardReviewsColumns[2]},
			},
			{
				Name:    "flashcardreview_user_id_flashcard_id",
				Unique:  false,
				Columns: []*schema.Column{FlashcardReviewsColumns[3], FlashcardReviewsColumns[5]},
			},
			{
				Name:    "flashcardreview_user_id_topic_id",
				Unique:  false,
				Columns: []*schema.Column{FlashcardReviewsColumns[3], FlashcardReviewsColumns[4]},
			},
		},
	}
	// QuizResultsColumns holds the columns for the "quiz_results" table.
	QuizResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt},
		{Name: "total_questions", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
	}
	// QuizResultsTable holds the schema information for the "quiz_results" table.
	QuizResultsTable = &schema.Table{
		Name:       "quiz_results",
		Columns:    QuizResultsColumns,
		PrimaryKey: []*schema.Column{QuizResultsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizresult_sequence",
				Unique:  false,
				Columns: []*schema.Column{QuizResultsColumns[1]},
			},
			{
				Name:    "quizresult_timestamp",
				Unique:  false,
				Columns: []*schema.Column{QuizResultsColumns[2]},
			},
			{
				Name:    "quizresult_user_id_topic_id",
				Unique:  false,
				Columns: []*schema.Column{QuizResultsColumns[3], QuizResultsColumns[4]},
			},
			{
				Name:    "quizresult_user_id_score",
				Unique:  false,
				Columns: []*schema.Column{QuizResultsColumns[3], QuizResultsColumns[5]},
			},
		},
	}
	// StudySessionsColumns holds the columns for the "study_sessions" table.
	StudySessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "session_id", Type: field.TypeUUID},
		{Name: "session_date", Type: field.TypeString},
		{Name: "duration_seconds", Type: field.TypeInt, Default: 0},
	}
	// StudySessionsTable holds the schema information for the "study_sessions" table.
	StudySessionsTable = &schema.Table{
		Name:       "study_sessions",
		Columns:    StudySessionsColumns,
		PrimaryKey: []*schema.Column{StudySessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "studysession_sequence",
				Unique:  false,
				Columns: []*schema.Column{StudySessionsColumns[1]},
			},
			{
				Name:    "studysession_timestamp",
				Unique:  false,
				Columns: []*schema.Column{StudySessionsColumns[2]},
			},
			{
				Name:    "studysession_user_id_session_date",
				Unique:  false,
				Columns: []*schema.Column{StudySessionsColumns[3], StudySessionsColumns[5]},
			},
		},
	}
	// TopicProgressesColumns holds the columns for the "topic_progresses" table.
	TopicProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "explanation_completed", Type: field.TypeBool, Default: false},
		{Name: "flashcard_completed", Type: field.TypeBool, Default: false},
		{Name: "quiz_completed", Type: field.TypeBool, Default: false},
		{Name: "explanation_completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "flashcard_completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "quiz_completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "latest_score", Type: field.TypeInt, Default: 0},
		{Name: "best_score", Type: field.TypeInt, Default: 0},
		{Name: "average_score", Type: field.TypeFloat64, Default: 0},
		{Name: "total_tests_taken", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TopicProgressesTable holds the schema information for the "topic_progresses" table.
	TopicProgressesTable = &schema.Table{
		Name:       "topic_progresses",
		Columns:    TopicProgressesColumns,
		PrimaryKey: []*schema.Column{TopicProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "topicprogress_user_id_topic_id",
				Unique:  true,
				Columns: []*schema.Column{TopicProgressesColumns[1], TopicProgressesColumns[2]},
			},
			{
				Name:    "topicprogress_user_id",
				Unique:  false,
				Columns: []*schema.Column{TopicProgressesColumns[1]},
			},
		},
	}
	// UserAchievementsColumns holds the columns for the "user_achievements" table.
	UserAchievementsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "achievement_key", Type: field.TypeString},
		{Name: "earned_at", Type: field.TypeTime},
	}
	// UserAchievementsTable holds the schema information for the "user_achievements" table.
	UserAchievementsTable = &schema.Table{
		Name:       "user_achievements",
		Columns:    UserAchievementsColumns,
		PrimaryKey: []*schema.Column{UserAchievementsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "userachievement_user_id_achievement_key",
				Unique:  true,
				Columns: []*schema.Column{UserAchievementsColumns[1], UserAchievementsColumns[2]},
			},
			{
				Name:    "userachievement_user_id",
				Unique:  false,
				Columns: []*schema.Column{UserAchievementsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		FlashcardReviewsTable,
		QuizResultsTable,
		StudySessionsTable,
		TopicProgressesTable,
		UserAchievementsTable,
	}
)

func init() {
}
