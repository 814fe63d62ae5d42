package stubapi

import (
	"errors"
	"strings"
	"sync"
	"time"
)

var ErrDuplicate = errors.New("already subscribed")

// Subscription is one notify-me request held by the stub.
type Subscription struct {
	Domain    string    `json:"domain"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// SubscriptionStore keeps subscriptions in memory; the stub has no
// persistence and none is wanted.
type SubscriptionStore struct {
	mu   sync.RWMutex
	subs map[string]Subscription
}

func NewSubscriptionStore() *SubscriptionStore {
	return &SubscriptionStore{subs: make(map[string]Subscription)}
}

func key(domain, email string) string {
	return strings.ToLower(domain) + "|" + strings.ToLower(email)
}

func (s *SubscriptionStore) Add(domain, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := key(domain, email)
	if _, ok := s.subs[k]; ok {
		return ErrDuplicate
	}
	s.subs[k] = Subscription{
		Domain:    domain,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	return nil
}

func (s *SubscriptionStore) List() []Subscription {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Subscription, 0, len(s.subs))
	for _, sub := range s.subs {
		out = append(out, sub)
	}
	return out
}
