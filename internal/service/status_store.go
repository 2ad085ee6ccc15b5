package service

import (
	"sync"

	"github.com/dsaprep/backend/internal/domain/progress"
)

// StatusStore caches per-user status records in memory. It is populated
// by ProgressService.EnsureLoaded and written by ProgressService.SetStatus
// after the remote store confirms a change; nothing else writes to it.
type StatusStore struct {
	mu     sync.RWMutex
	users  map[string]map[string]progress.StatusRecord // userID → questionID → record
	loaded map[string]bool                             // only ReplaceUser marks a user loaded
}

func NewStatusStore() *StatusStore {
	return &StatusStore{
		users:  make(map[string]map[string]progress.StatusRecord),
		loaded: make(map[string]bool),
	}
}

// Loaded reports whether records for this user have been fetched yet.
// Only a full ReplaceUser counts: a confirmed write via Set does not,
// so a failed initial fetch is retried on the next request even if a
// mutation landed in between. An anonymous user (empty ID) is always
// considered loaded: everything defaults to todo.
func (s *StatusStore) Loaded(userID string) bool {
	if userID == "" {
		return true
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded[userID]
}

// ReplaceUser swaps in a freshly fetched record set for a user.
func (s *StatusStore) ReplaceUser(userID string, records map[string]progress.StatusRecord) {
	if records == nil {
		records = make(map[string]progress.StatusRecord)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[userID] = records
	s.loaded[userID] = true
}

// Get returns the user's record for a question, or the todo default
// when no record exists.
func (s *StatusStore) Get(userID, questionID string) progress.StatusRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if rec, ok := s.users[userID][questionID]; ok {
		return rec
	}
	return progress.Default()
}

// Set stores a server-confirmed record. Last confirmed write wins.
func (s *StatusStore) Set(userID, questionID string, rec progress.StatusRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	records, ok := s.users[userID]
	if !ok {
		records = make(map[string]progress.StatusRecord)
		s.users[userID] = records
	}
	records[questionID] = rec
}

// UserRecords returns a copy of the user's record map.
func (s *StatusStore) UserRecords(userID string) map[string]progress.StatusRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make(map[string]progress.StatusRecord, len(s.users[userID]))
	for qid, rec := range s.users[userID] {
		records[qid] = rec
	}
	return records
}
