package passwordreset

import (
	"context"
	"sync"
	"time"
)

// Challenge is one live OTP for an email address. At most one exists
// per address; issuing a new one replaces any prior entry.
type Challenge struct {
	Code    string    `json:"code"`
	Expires time.Time `json:"expires"`
}

// ChallengeStore holds live challenges keyed by email. Expiry is the
// service's concern, checked lazily on read; the store never sweeps.
//
//go:generate mockgen -source=otp_store.go -destination=mock/otp_store_mock.go -package=mock
type ChallengeStore interface {
	Put(ctx context.Context, email string, ch Challenge) error
	// Get returns nil without error when no challenge exists.
	Get(ctx context.Context, email string) (*Challenge, error)
	Delete(ctx context.Context, email string) error
}

// MemoryStore is the single-process store. It is handed to the service
// as a constructor dependency so tests can run isolated instances.
type MemoryStore struct {
	mu         sync.Mutex
	challenges map[string]Challenge
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{challenges: make(map[string]Challenge)}
}

func (s *MemoryStore) Put(ctx context.Context, email string, ch Challenge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.challenges[email] = ch
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, email string) (*Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch, ok := s.challenges[email]
	if !ok {
		return nil, nil
	}
	return &ch, nil
}

func (s *MemoryStore) Delete(ctx context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.challenges, email)
	return nil
}
