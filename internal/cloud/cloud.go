// Package cloud simulates a remote backup backend. Nothing leaves the
// process: documents live in an in-memory map, the login returns a
// canned profile, and a configurable delay stands in for network
// latency. No planning computation depends on it.
package cloud

import (
	"context"
	"sync"
	"time"

	"cutiplan/internal/domain/planner"
)

type Profile struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

type Service struct {
	secret  string
	latency time.Duration

	mu   sync.Mutex
	docs map[string]planner.UserData
}

func New(secret string, latency time.Duration) *Service {
	return &Service{
		secret:  secret,
		latency: latency,
		docs:    make(map[string]planner.UserData),
	}
}

// Login simulates a Google OAuth sign-in and returns the canned
// profile with a signed session token.
func (s *Service) Login(ctx context.Context) (Profile, string, error) {
	if err := s.wait(ctx); err != nil {
		return Profile{}, "", err
	}
	profile := Profile{
		ID:     "google_user_9921",
		Name:   "Azlan Ibrahim",
		Email:  "azlan.dev@gmail.com",
		Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Azlan",
	}
	token, err := GenerateToken(s.secret, profile.ID, 24*time.Hour)
	if err != nil {
		return Profile{}, "", err
	}
	return profile, token, nil
}

// Fetch returns the stored document for userID; ok is false when the
// user has never pushed.
func (s *Service) Fetch(ctx context.Context, userID string) (planner.UserData, bool, error) {
	if err := s.wait(ctx); err != nil {
		return planner.UserData{}, false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.docs[userID]
	return data, ok, nil
}

// Save stores the full document for userID, stamping lastUpdated.
func (s *Service) Save(ctx context.Context, userID string, data planner.UserData) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	data.LastUpdated = time.Now().UnixMilli()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[userID] = data
	return nil
}

func (s *Service) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
