package progress

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

// memoryRepo is an in-memory Repo for tests. Safe for concurrent use.
type memoryRepo struct {
	mu      sync.Mutex
	records map[string]*Progress
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{records: make(map[string]*Progress)}
}

func key(userID uuid.UUID, topicID string) string {
	return userID.String() + "/" + topicID
}

func (m *memoryRepo) Get(_ context.Context, userID uuid.UUID, topicID string) (*Progress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.records[key(userID, topicID)]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memoryRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*Progress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*Progress
	for _, p := range m.records {
		if p.UserID == userID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memoryRepo) Upsert(_ context.Context, p *Progress) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *p
	m.records[key(p.UserID, p.TopicID)] = &cp
	return nil
}

func TestSubmitQuiz_Aggregates(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo, nil, nil, nil)
	userID := uuid.New()
	ctx := context.Background()

	var p *Progress
	var err error
	for _, score := range []int{70, 80, 90} {
		p, err = svc.SubmitQuiz(ctx, userID, "geo-earth-overview", score, 10, score/10)
		if err != nil {
			t.Fatalf("submit %d: %v", score, err)
		}
	}

	if p.TotalTestsTaken != 3 {
		t.Errorf("got %d tests taken, want 3", p.TotalTestsTaken)
	}
	if p.BestScore != 90 {
		t.Errorf("got best %d, want 90", p.BestScore)
	}
	if p.LatestScore != 90 {
		t.Errorf("got latest %d, want 90", p.LatestScore)
	}
	if math.Abs(p.AverageScore-80) > 1e-9 {
		t.Errorf("got average %v, want 80", p.AverageScore)
	}
	if !p.QuizCompleted {
		t.Error("quiz flag not set after passing score")
	}
}

func TestSubmitQuiz_BestScoreNeverDrops(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo, nil, nil, nil)
	userID := uuid.New()
	ctx := context.Background()

	if _, err := svc.SubmitQuiz(ctx, userID, "t", 95, 10, 9); err != nil {
		t.Fatal(err)
	}
	p, err := svc.SubmitQuiz(ctx, userID, "t", 40, 10, 4)
	if err != nil {
		t.Fatal(err)
	}
	if p.BestScore != 95 {
		t.Errorf("got best %d after lower score, want 95", p.BestScore)
	}
	if p.LatestScore != 40 {
		t.Errorf("got latest %d, want 40", p.LatestScore)
	}
	// The flag latches: a later failing score does not clear it.
	if !p.QuizCompleted {
		t.Error("quiz flag cleared by a later failing score")
	}
}

func TestSubmitQuiz_InvalidScore(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo, nil, nil, nil)
	userID := uuid.New()
	ctx := context.Background()

	for _, score := range []int{-1, 101} {
		_, err := svc.SubmitQuiz(ctx, userID, "t", score, 10, 0)
		if err == nil {
			t.Fatalf("score %d: expected error, got nil", score)
		}
		var inv *ErrInvalidScore
		if !errors.As(err, &inv) {
			t.Fatalf("score %d: got %T, want *ErrInvalidScore", score, err)
		}
	}

	// Rejected before write: no record created.
	p, err := repo.Get(ctx, userID, "t")
	if err != nil {
		t.Fatal(err)
	}
	if p != nil {
		t.Error("record created despite invalid score")
	}
}

func TestSubmitQuiz_FailingScoreDoesNotComplete(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo, nil, nil, nil)
	userID := uuid.New()

	p, err := svc.SubmitQuiz(context.Background(), userID, "t", 69, 10, 6)
	if err != nil {
		t.Fatal(err)
	}
	if p.QuizCompleted {
		t.Error("quiz flag set below passing score")
	}
	if p.QuizCompletedAt != nil {
		t.Error("quiz completion timestamp set below passing score")
	}
}

func TestMarkExplanation_Idempotent(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo, nil, nil, nil)
	userID := uuid.New()
	ctx := context.Background()

	first, err := svc.MarkExplanation(ctx, userID, "t")
	if err != nil {
		t.Fatal(err)
	}
	if !first.ExplanationCompleted || first.ExplanationCompletedAt == nil {
		t.Fatal("first mark did not set flag and timestamp")
	}

	svc.now = func() time.Time { return time.Now().Add(time.Hour) }
	second, err := svc.MarkExplanation(ctx, userID, "t")
	if err != nil {
		t.Fatal(err)
	}
	if !second.ExplanationCompletedAt.Equal(*first.ExplanationCompletedAt) {
		t.Error("re-marking moved the completion timestamp")
	}
	if !second.UpdatedAt.After(first.UpdatedAt) {
		t.Error("re-marking did not move updated_at")
	}
}

func TestSubmitQuiz_Concurrent(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo, nil, nil, nil)
	userID := uuid.New()
	ctx := context.Background()

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			if _, err := svc.SubmitQuiz(ctx, userID, "t", score, 10, 0); err != nil {
				t.Errorf("concurrent submit: %v", err)
			}
		}(50 + i)
	}
	wg.Wait()

	p, err := repo.Get(ctx, userID, "t")
	if err != nil {
		t.Fatal(err)
	}
	if p.TotalTestsTaken != n {
		t.Errorf("got %d tests taken, want %d (lost update)", p.TotalTestsTaken, n)
	}
	if p.BestScore != 50+n-1 {
		t.Errorf("got best %d, want %d", p.BestScore, 50+n-1)
	}
}

func TestSubmitQuiz_AppendsResult(t *testing.T) {
	repo := newMemoryRepo()
	log := &recordingResultLog{}
	svc := NewService(repo, log, nil, nil)
	userID := uuid.New()

	if _, err := svc.SubmitQuiz(context.Background(), userID, "t", 85, 10, 8); err != nil {
		t.Fatal(err)
	}
	if len(log.results) != 1 {
		t.Fatalf("got %d logged results, want 1", len(log.results))
	}
	r := log.results[0]
	if r.Score != 85 || r.TotalQuestions != 10 || r.CorrectAnswers != 8 {
		t.Errorf("logged result %+v does not match submission", r)
	}
}

func TestSubmitQuiz_ResultLogFailureDoesNotFailSubmission(t *testing.T) {
	repo := newMemoryRepo()
	log := &failingResultLog{}
	svc := NewService(repo, log, nil, nil)
	userID := uuid.New()

	p, err := svc.SubmitQuiz(context.Background(), userID, "t", 85, 10, 8)
	if err != nil {
		t.Fatalf("submit with failing result log: %v", err)
	}
	if p == nil || p.TotalTestsTaken != 1 {
		t.Fatalf("got %+v, want one recorded test", p)
	}

	stored, err := repo.Get(context.Background(), userID, "t")
	if err != nil {
		t.Fatal(err)
	}
	if stored == nil || stored.BestScore != 85 {
		t.Errorf("aggregates not persisted: got %+v", stored)
	}
}

type recordingResultLog struct {
	results []QuizResult
}

func (l *recordingResultLog) AppendQuizResult(_ context.Context, r QuizResult) error {
	l.results = append(l.results, r)
	return nil
}

type failingResultLog struct{}

func (failingResultLog) AppendQuizResult(context.Context, QuizResult) error {
	return errors.New("result log unavailable")
}

func TestCompleted(t *testing.T) {
	tests := []struct {
		name string
		p    *Progress
		want bool
	}{
		{"nil", nil, false},
		{
			"all flags passing best",
			&Progress{ExplanationCompleted: true, FlashcardCompleted: true, QuizCompleted: true, BestScore: 70},
			true,
		},
		{
			"all flags best below passing",
			&Progress{ExplanationCompleted: true, FlashcardCompleted: true, QuizCompleted: true, BestScore: 69},
			false,
		},
		{
			"missing flag",
			&Progress{ExplanationCompleted: true, QuizCompleted: true, BestScore: 100},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Completed(); got != tt.want {
				t.Errorf("Completed() = %v, want %v", got, tt.want)
			}
		})
	}
}
