package service

import (
	"errors"
	"sync"

	"github.com/sabron12/Sabron/internal/models"
	"github.com/sabron12/Sabron/internal/repository"
)

var ErrEmailRequired = errors.New("email is required")

// BlocklistService keeps an in-memory mirror of the blocked_users table so
// every submission can be checked without a database round trip. The mirror
// is mutated only after the persisted write succeeds; a storage failure
// leaves it untouched.
type BlocklistService struct {
	repo *repository.BlocklistRepo

	mu      sync.RWMutex
	blocked map[string]struct{}
}

func NewBlocklistService(repo *repository.BlocklistRepo) *BlocklistService {
	return &BlocklistService{
		repo:    repo,
		blocked: make(map[string]struct{}),
	}
}

// Load seeds the mirror from the store. Called once at startup.
func (s *BlocklistService) Load() error {
	users, err := s.repo.All()
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blocked = make(map[string]struct{}, len(users))
	for _, u := range users {
		s.blocked[u.Email] = struct{}{}
	}
	return nil
}

// List returns the persisted blocklist, ordered by email.
func (s *BlocklistService) List() ([]models.BlockedUser, error) {
	return s.repo.All()
}

func (s *BlocklistService) Block(email string) error {
	if email == "" {
		return ErrEmailRequired
	}
	if err := s.repo.Add(email); err != nil {
		return err
	}
	s.mu.Lock()
	s.blocked[email] = struct{}{}
	s.mu.Unlock()
	return nil
}

func (s *BlocklistService) Unblock(email string) error {
	if email == "" {
		return ErrEmailRequired
	}
	if err := s.repo.Remove(email); err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.blocked, email)
	s.mu.Unlock()
	return nil
}

func (s *BlocklistService) IsBlocked(email string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.blocked[email]
	return ok
}

func (s *BlocklistService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.blocked)
}
