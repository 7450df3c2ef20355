package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnhub/internal/cache"
	apperrors "learnhub/internal/errors"
	"learnhub/internal/repository"
)

const defaultCacheTTL = 5 * time.Minute

// Hooks customise the generic CRUD flow for one resource. Every hook is optional.
type Hooks[T any] struct {
	// BeforeCreate may fill generated or derived fields.
	BeforeCreate func(ctx context.Context, entity *T) error
	// AfterCreate runs once the entity is persisted and reloaded.
	AfterCreate func(ctx context.Context, entity *T)
	// BeforeUpdate may rewrite the change set using the stored entity.
	BeforeUpdate func(ctx context.Context, current *T, changes map[string]interface{}) error
	// AfterLoad computes transient fields on every entity returned to callers.
	AfterLoad func(ctx context.Context, entity *T) error
}

// Options configure a CRUDService.
type Options[T any] struct {
	Resource string
	Preloads []repository.Preload
	Cache    *cache.Client
	CacheTTL time.Duration
	Hooks    Hooks[T]
}

// CRUDService implements the list/get/create/update/delete contract of a resource.
type CRUDService[T any] interface {
	List(ctx context.Context, q repository.Query) ([]T, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*T, error)
	Create(ctx context.Context, entity *T) (*T, error)
	Update(ctx context.Context, id uuid.UUID, changes map[string]interface{}) (*T, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Resource() string
}

type crudService[T any] struct {
	repo repository.Repository[T]
	opts Options[T]
}

// NewCRUDService builds a CRUDService over repo.
func NewCRUDService[T any](repo repository.Repository[T], opts Options[T]) CRUDService[T] {
	if opts.CacheTTL == 0 {
		opts.CacheTTL = defaultCacheTTL
	}
	return &crudService[T]{repo: repo, opts: opts}
}

func (s *crudService[T]) Resource() string {
	return s.opts.Resource
}

func (s *crudService[T]) cached() bool {
	return s.opts.Cache != nil && len(s.opts.Preloads) == 0
}

func (s *crudService[T]) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("%s:%s", s.opts.Resource, id.String())
}

// List returns matching entities with references populated.
func (s *crudService[T]) List(ctx context.Context, q repository.Query) ([]T, int64, error) {
	if q.Preloads == nil {
		q.Preloads = s.opts.Preloads
	}
	items, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("list %s: %w", s.opts.Resource, err)
	}
	for i := range items {
		if err := s.afterLoad(ctx, &items[i]); err != nil {
			return nil, 0, err
		}
	}
	return items, total, nil
}

// Get retrieves an entity by ID. Only resources without populated references are cached,
// since a write to a referenced parent never evicts its children.
func (s *crudService[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	var cached T
	if s.cached() && s.opts.Cache.GetJSON(ctx, s.cacheKey(id), &cached) {
		if err := s.afterLoad(ctx, &cached); err != nil {
			return nil, err
		}
		return &cached, nil
	}

	entity, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.cached() {
		s.opts.Cache.SetJSON(ctx, s.cacheKey(id), entity, s.opts.CacheTTL)
	}

	if err := s.afterLoad(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

// Create persists entity and returns it reloaded with references populated.
func (s *crudService[T]) Create(ctx context.Context, entity *T) (*T, error) {
	if h := s.opts.Hooks.BeforeCreate; h != nil {
		if err := h(ctx, entity); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Create(ctx, entity); err != nil {
		return nil, fmt.Errorf("create %s: %w", s.opts.Resource, err)
	}

	created, err := s.load(ctx, idOf(entity))
	if err != nil {
		return nil, err
	}
	if err := s.afterLoad(ctx, created); err != nil {
		return nil, err
	}
	if h := s.opts.Hooks.AfterCreate; h != nil {
		h(ctx, created)
	}
	return created, nil
}

// Update writes only the supplied columns and returns the full entity afterwards.
func (s *crudService[T]) Update(ctx context.Context, id uuid.UUID, changes map[string]interface{}) (*T, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapErr(err)
	}
	delete(changes, "id")
	if h := s.opts.Hooks.BeforeUpdate; h != nil {
		if err := h(ctx, current, changes); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Update(ctx, id, changes); err != nil {
		return nil, fmt.Errorf("update %s: %w", s.opts.Resource, err)
	}
	_ = s.opts.Cache.Delete(ctx, s.cacheKey(id))

	updated, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.afterLoad(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the entity. Unknown IDs yield a not-found error.
func (s *crudService[T]) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.mapErr(err)
	}
	_ = s.opts.Cache.Delete(ctx, s.cacheKey(id))
	return nil
}

func (s *crudService[T]) load(ctx context.Context, id uuid.UUID) (*T, error) {
	entity, err := s.repo.FindByID(ctx, id, s.opts.Preloads...)
	if err != nil {
		return nil, s.mapErr(err)
	}
	return entity, nil
}

func (s *crudService[T]) afterLoad(ctx context.Context, entity *T) error {
	if h := s.opts.Hooks.AfterLoad; h != nil {
		return h(ctx, entity)
	}
	return nil
}

func (s *crudService[T]) mapErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound(s.opts.Resource)
	}
	return fmt.Errorf("%s: %w", s.opts.Resource, err)
}

type identified interface {
	GetID() uuid.UUID
}

func idOf(entity interface{}) uuid.UUID {
	if e, ok := entity.(identified); ok {
		return e.GetID()
	}
	return uuid.Nil
}
