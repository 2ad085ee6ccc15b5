package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dsaprep/backend/internal/domain/sheet"
	"github.com/dsaprep/backend/internal/tutor"
)

var ErrInterviewNotFound = errors.New("interview not found")

// InterviewSession is one mock-interview run: a generated question
// awaiting (or holding) its evaluation. Sessions live in memory only;
// they are scoped to the server process like the original UI kept them
// scoped to the page.
type InterviewSession struct {
	ID         string
	Topic      string
	Difficulty sheet.Difficulty
	Question   string
	StartedAt  time.Time
	Evaluation *tutor.Evaluation
}

// InterviewService runs mock interviews against the tutor collaborator.
type InterviewService struct {
	tutor  tutor.Tutor
	logger *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*InterviewSession
}

func NewInterviewService(t tutor.Tutor, logger *slog.Logger) *InterviewService {
	return &InterviewService{
		tutor:    t,
		logger:   logger,
		sessions: make(map[string]*InterviewSession),
	}
}

// Start generates a question for (topic, difficulty) and registers a
// session for it.
func (is *InterviewService) Start(ctx context.Context, topic string, difficulty sheet.Difficulty) (*InterviewSession, error) {
	question, err := is.tutor.GenerateQuestion(ctx, topic, difficulty)
	if err != nil {
		is.logger.Error("interview question generation failed",
			"topic", topic,
			"difficulty", difficulty,
			"error", err,
		)
		return nil, err
	}

	session := &InterviewSession{
		ID:         uuid.NewString(),
		Topic:      topic,
		Difficulty: difficulty,
		Question:   question,
		StartedAt:  time.Now().UTC(),
	}

	is.mu.Lock()
	is.sessions[session.ID] = session
	is.mu.Unlock()

	return session, nil
}

// Get returns a registered session.
func (is *InterviewService) Get(interviewID string) (*InterviewSession, error) {
	is.mu.RLock()
	defer is.mu.RUnlock()
	session, ok := is.sessions[interviewID]
	if !ok {
		return nil, ErrInterviewNotFound
	}
	return session, nil
}

// Evaluate judges a submitted solution against the session's question
// and stores the verdict on the session. Re-submitting overwrites the
// previous verdict.
func (is *InterviewService) Evaluate(ctx context.Context, interviewID, code string) (*tutor.Evaluation, error) {
	session, err := is.Get(interviewID)
	if err != nil {
		return nil, err
	}

	eval, err := is.tutor.EvaluateSolution(ctx, session.Question, code)
	if err != nil {
		is.logger.Error("interview evaluation failed",
			"interview_id", interviewID,
			"error", err,
		)
		return nil, err
	}

	is.mu.Lock()
	session.Evaluation = eval
	is.mu.Unlock()

	return eval, nil
}
