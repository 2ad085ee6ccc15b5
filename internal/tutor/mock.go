package tutor

import (
	"context"
	"sync"

	"github.com/dsaprep/backend/internal/domain/sheet"
)

// MockTutor is a deterministic Tutor for testing. It returns canned
// results and records every call.
type MockTutor struct {
	mu sync.Mutex

	ChatReply  string
	Question   string
	Evaluation *Evaluation
	Err        error

	ChatCalls     [][]Message
	QuestionCalls []string
	EvaluateCalls []string
}

// Compile-time check: *MockTutor satisfies the Tutor interface.
var _ Tutor = (*MockTutor)(nil)

func (m *MockTutor) Chat(_ context.Context, messages []Message) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ChatCalls = append(m.ChatCalls, messages)
	if m.Err != nil {
		return "", m.Err
	}
	return m.ChatReply, nil
}

func (m *MockTutor) GenerateQuestion(_ context.Context, topic string, _ sheet.Difficulty) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.QuestionCalls = append(m.QuestionCalls, topic)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Question, nil
}

func (m *MockTutor) EvaluateSolution(_ context.Context, question, _ string) (*Evaluation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EvaluateCalls = append(m.EvaluateCalls, question)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Evaluation, nil
}
