package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/ib-77/results/internal/tenant"
)

type Store struct {
	mu    sync.RWMutex
	users map[int]tenant.User
}

func NewStore() *Store {
	return &Store{users: make(map[int]tenant.User)}
}

func (s *Store) User(_ context.Context, id int) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	return u.Name, ok, nil
}

func (s *Store) SetUser(_ context.Context, id int, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return false, nil
	}
	u.Name = name
	s.users[id] = u
	return true, nil
}

func (s *Store) UsersAtAddress(_ context.Context, zip, nr string) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var ids []int
	for id, u := range s.users {
		if u.Zip == zip && u.HouseNr == nr {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids, nil
}

func (s *Store) Seed(_ context.Context, users []tenant.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range users {
		if _, ok := s.users[u.ID]; !ok {
			s.users[u.ID] = u
		}
	}
	return nil
}
