package store

import (
	"errors"
	"strings"
	"sync"
)

// Profile is the single user profile backing the profile page and the
// investment-profile hint passed to report summaries.
type Profile struct {
	Name        string
	Email       string
	RiskProfile string // conservative | moderate | aggressive
}

var ErrInvalidRiskProfile = errors.New("invalid risk profile")

func (p Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("empty profile name")
	}
	switch p.RiskProfile {
	case "conservative", "moderate", "aggressive":
		return nil
	}
	return ErrInvalidRiskProfile
}

// ProfileStore holds the session's single profile.
type ProfileStore struct {
	mu      sync.RWMutex
	profile Profile
}

func NewProfileStore() *ProfileStore {
	return &ProfileStore{
		profile: Profile{
			Name:        "Investor",
			Email:       "investor@example.com",
			RiskProfile: "moderate",
		},
	}
}

func (s *ProfileStore) Get() Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

func (s *ProfileStore) Set(p Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = p
	return nil
}
