// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/benkyo/ent/flashcardreview"
	"github.com/abhisek/benkyo/ent/quizresult"
	"github.com/abhisek/benkyo/ent/schema"
	"github.com/abhisek/benkyo/ent/studysession"
	"github.com/abhisek/benkyo/ent/topicprogress"
	"github.com/abhisek/benkyo/ent/userachievement"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	flashcardreviewMixin := schema.FlashcardReview{}.Mixin()
	flashcardreviewMixinFields0 := flashcardreviewMixin[0].Fields()
	_ = flashcardreviewMixinFields0
	flashcardreviewFields := schema.FlashcardReview{}.Fields()
	_ = flashcardreviewFields
	// flashcardreviewDescTimestamp is the schema descriptor for timestamp field.
	flashcardreviewDescTimestamp := flashcardreviewMixinFields0[1].Descriptor()
	// flashcardreview.DefaultTimestamp holds the default value on creation for the timestamp field.
	flashcardreview.DefaultTimestamp = flashcardreviewDescTimestamp.Default.(func() time.Time)
	// flashcardreviewDescTopicID is the schema descriptor for topic_id field.
	flashcardreviewDescTopicID := flashcardreviewFields[1].Descriptor()
	// flashcardreview.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	flashcardreview.TopicIDValidator = flashcardreviewDescTopicID.Validators[0].(func(string) error)
	// flashcardreviewDescFlashcardID is the schema descriptor for flashcard_id field.
	flashcardreviewDescFlashcardID := flashcardreviewFields[2].Descriptor()
	// flashcardreview.FlashcardIDValidator is a validator for the "flashcard_id" field. It is called by the builders before save.
	flashcardreview.FlashcardIDValidator = flashcardreviewDescFlashcardID.Validators[0].(func(string) error)
	// flashcardreviewDescConfidenceLevel is the schema descriptor for confidence_level field.
	flashcardreviewDescConfidenceLevel := flashcardreviewFields[3].Descriptor()
	// flashcardreview.ConfidenceLevelValidator is a validator for the "confidence_level" field. It is called by the builders before save.
	flashcardreview.ConfidenceLevelValidator = flashcardreviewDescConfidenceLevel.Validators[0].(func(int) error)
	quizresultMixin := schema.QuizResult{}.Mixin()
	quizresultMixinFields0 := quizresultMixin[0].Fields()
	_ = quizresultMixinFields0
	quizresultFields := schema.QuizResult{}.Fields()
	_ = quizresultFields
	// quizresultDescTimestamp is the schema descriptor for timestamp field.
	quizresultDescTimestamp := quizresultMixinFields0[1].Descriptor()
	// quizresult.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizresult.DefaultTimestamp = quizresultDescTimestamp.Default.(func() time.Time)
	// quizresultDescTopicID is the schema descriptor for topic_id field.
	quizresultDescTopicID := quizresultFields[1].Descriptor()
	// quizresult.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	quizresult.TopicIDValidator = quizresultDescTopicID.Validators[0].(func(string) error)
	// quizresultDescScore is the schema descriptor for score field.
	quizresultDescScore := quizresultFields[2].Descriptor()
	// quizresult.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	quizresult.ScoreValidator = quizresultDescScore.Validators[0].(func(int) error)
	// quizresultDescTotalQuestions is the schema descriptor for total_questions field.
	quizresultDescTotalQuestions := quizresultFields[3].Descriptor()
	// quizresult.DefaultTotalQuestions holds the default value on creation for the total_questions field.
	quizresult.DefaultTotalQuestions = quizresultDescTotalQuestions.Default.(int)
	// quizresultDescCorrectAnswers is the schema descriptor for correct_answers field.
	quizresultDescCorrectAnswers := quizresultFields[4].Descriptor()
	// quizresult.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	quizresult.DefaultCorrectAnswers = quizresultDescCorrectAnswers.Default.(int)
	studysessionMixin := schema.StudySession{}.Mixin()
	studysessionMixinFields0 := studysessionMixin[0].Fields()
	_ = studysessionMixinFields0
	studysessionFields := schema.StudySession{}.Fields()
	_ = studysessionFields
	// studysessionDescTimestamp is the schema descriptor for timestamp field.
	studysessionDescTimestamp := studysessionMixinFields0[1].Descriptor()
	// studysession.DefaultTimestamp holds the default value on creation for the timestamp field.
	studysession.DefaultTimestamp = studysessionDescTimestamp.Default.(func() time.Time)
	// studysessionDescSessionDate is the schema descriptor for session_date field.
	studysessionDescSessionDate := studysessionFields[2].Descriptor()
	// studysession.SessionDateValidator is a validator for the "session_date" field. It is called by the builders before save.
	studysession.SessionDateValidator = studysessionDescSessionDate.Validators[0].(func(string) error)
	// studysessionDescDurationSeconds is the schema descriptor for duration_seconds field.
	studysessionDescDurationSeconds := studysessionFields[3].Descriptor()
	// studysession.DefaultDurationSeconds holds the default value on creation for the duration_seconds field.
	studysession.DefaultDurationSeconds = studysessionDescDurationSeconds.Default.(int)
	topicprogressFields := schema.TopicProgress{}.Fields()
	_ = topicprogressFields
	// topicprogressDescTopicID is the schema descriptor for topic_id field.
	topicprogressDescTopicID := topicprogressFields[1].Descriptor()
	// topicprogress.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	topicprogress.TopicIDValidator = topicprogressDescTopicID.Validators[0].(func(string) error)
	// topicprogressDescExplanationCompleted is the schema descriptor for explanation_completed field.
	topicprogressDescExplanationCompleted := topicprogressFields[2].Descriptor()
	// topicprogress.DefaultExplanationCompleted holds the default value on creation for the explanation_completed field.
	topicprogress.DefaultExplanationCompleted = topicprogressDescExplanationCompleted.Default.(bool)
	// topicprogressDescFlashcardCompleted is the schema descriptor for flashcard_completed field.
	topicprogressDescFlashcardCompleted := topicprogressFields[3].Descriptor()
	// topicprogress.DefaultFlashcardCompleted holds the default value on creation for the flashcard_completed field.
	topicprogress.DefaultFlashcardCompleted = topicprogressDescFlashcardCompleted.Default.(bool)
	// topicprogressDescQuizCompleted is the schema descriptor for quiz_completed field.
	topicprogressDescQuizCompleted := topicprogressFields[4].Descriptor()
	// topicprogress.DefaultQuizCompleted holds the default value on creation for the quiz_completed field.
	topicprogress.DefaultQuizCompleted = topicprogressDescQuizCompleted.Default.(bool)
	// topicprogressDescLatestScore is the schema descriptor for latest_score field.
	topicprogressDescLatestScore := topicprogressFields[8].Descriptor()
	// topicprogress.DefaultLatestScore holds the default value on creation for the latest_score field.
	topicprogress.DefaultLatestScore = topicprogressDescLatestScore.Default.(int)
	// topicprogressDescBestScore is the schema descriptor for best_score field.
	topicprogressDescBestScore := topicprogressFields[9].Descriptor()
	// topicprogress.DefaultBestScore holds the default value on creation for the best_score field.
	topicprogress.DefaultBestScore = topicprogressDescBestScore.Default.(int)
	// topicprogressDescAverageScore is the schema descriptor for average_score field.
	topicprogressDescAverageScore := topicprogressFields[10].Descriptor()
	// topicprogress.DefaultAverageScore holds the default value on creation for the average_score field.
	topicprogress.DefaultAverageScore = topicprogressDescAverageScore.Default.(float64)
	// topicprogressDescTotalTestsTaken is the schema descriptor for total_tests_taken field.
	topicprogressDescTotalTestsTaken := topicprogressFields[11].Descriptor()
	// topicprogress.DefaultTotalTestsTaken holds the default value on creation for the total_tests_taken field.
	topicprogress.DefaultTotalTestsTaken = topicprogressDescTotalTestsTaken.Default.(int)
	// topicprogressDescCreatedAt is the schema descriptor for created_at field.
	topicprogressDescCreatedAt := topicprogressFields[12].Descriptor()
	// topicprogress.DefaultCreatedAt holds the default value on creation for the created_at field.
	topicprogress.DefaultCreatedAt = topicprogressDescCreatedAt.Default.(func() time.Time)
	// topicprogressDescUpdatedAt is the schema descriptor for updated_at field.
	topicprogressDescUpdatedAt := topicprogressFields[13].Descriptor()
	// topicprogress.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	topicprogress.DefaultUpdatedAt = topicprogressDescUpdatedAt.Default.(func() time.Time)
	// topicprogress.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	topicprogress.UpdateDefaultUpdatedAt = topicprogressDescUpdatedAt.UpdateDefault.(func() time.Time)
	userachievementFields := schema.UserAchievement{}.Fields()
	_ = userachievementFields
	// userachievementDescAchievementKey is the schema descriptor for achievement_key field.
	userachievementDescAchievementKey := userachievementFields[1].Descriptor()
	// userachievement.AchievementKeyValidator is a validator for the "achievement_key" field. It is called by the builders before save.
	userachievement.AchievementKeyValidator = userachievementDescAchievementKey.Validators[0].(func(string) error)
	// userachievementDescEarnedAt is the schema descriptor for earned_at field.
	userachievementDescEarnedAt := userachievementFields[2].Descriptor()
	// userachievement.DefaultEarnedAt holds the default value on creation for the earned_at field.
	userachievement.DefaultEarnedAt = userachievementDescEarnedAt.Default.(func() time.Time)
}
