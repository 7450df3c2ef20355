package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"learnhub/internal/model"
	"learnhub/internal/repository"
)

// ClassService adds the live-class queries to the class CRUD contract.
type ClassService struct {
	CRUDService[model.Class]
	repo repository.Repository[model.Class]
	now  func() time.Time
}

// NewClassService builds a ClassService. now defaults to time.Now.
func NewClassService(repo repository.Repository[model.Class], opts Options[model.Class], now func() time.Time) *ClassService {
	if now == nil {
		now = time.Now
	}
	s := &ClassService{repo: repo, now: now}
	opts.Hooks.AfterLoad = s.markLive
	s.CRUDService = NewCRUDService(repo, opts)
	return s
}

// Live returns the active classes of a course whose window contains the current instant.
func (s *ClassService) Live(ctx context.Context, courseID uuid.UUID) ([]model.Class, error) {
	at := s.now()
	items, _, err := s.List(ctx, repository.Query{
		Scopes: []repository.Scope{repository.LiveAt(courseID, at)},
	})
	if err != nil {
		return nil, fmt.Errorf("live classes: %w", err)
	}
	return items, nil
}

func (s *ClassService) markLive(_ context.Context, c *model.Class) error {
	c.IsLive = c.Status == model.StatusActive && c.LiveAt(s.now())
	return nil
}
