package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

// DefaultOrder sorts lists newest first.
const DefaultOrder = "created_at DESC"

// Scope narrows a query. Scopes are plain gorm scopes so they compose with Scopes().
type Scope = func(*gorm.DB) *gorm.DB

// Preload resolves a relation at read time. An empty Columns list loads every column.
type Preload struct {
	Field   string
	Columns []string
}

// Query describes a list request.
type Query struct {
	Scopes   []Scope
	Preloads []Preload
	Order    string
	// Page is 1-based; zero disables paging.
	Page     int
	PageSize int
}

// Repository defines the persistence operations shared by every resource.
type Repository[T any] interface {
	Create(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, id uuid.UUID, preloads ...Preload) (*T, error)
	FindOne(ctx context.Context, scopes ...Scope) (*T, error)
	List(ctx context.Context, q Query) ([]T, int64, error)
	Update(ctx context.Context, id uuid.UUID, changes map[string]interface{}) error
	UpdateWhere(ctx context.Context, changes map[string]interface{}, scopes ...Scope) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type gormRepository[T any] struct {
	db *gorm.DB
}

// New creates a gorm backed repository for T.
func New[T any](db *gorm.DB) Repository[T] {
	return &gormRepository[T]{db: db}
}

// Create inserts a new row.
func (r *gormRepository[T]) Create(ctx context.Context, entity *T) error {
	return wrap(r.db.WithContext(ctx).Create(entity).Error)
}

// FindByID finds a row by primary key. It returns gorm.ErrRecordNotFound when no row matches.
func (r *gormRepository[T]) FindByID(ctx context.Context, id uuid.UUID, preloads ...Preload) (*T, error) {
	var entity T
	tx := withPreloads(r.db.WithContext(ctx), preloads)
	if err := tx.Where("id = ?", id).First(&entity).Error; err != nil {
		return nil, wrap(err)
	}
	return &entity, nil
}

// FindOne returns the first row matching every scope.
func (r *gormRepository[T]) FindOne(ctx context.Context, scopes ...Scope) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).Scopes(scopes...).First(&entity).Error; err != nil {
		return nil, wrap(err)
	}
	return &entity, nil
}

// List returns the rows matching the query and the total count before paging.
func (r *gormRepository[T]) List(ctx context.Context, q Query) ([]T, int64, error) {
	base := r.db.WithContext(ctx).Model(new(T)).Scopes(q.Scopes...)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, wrap(err)
	}

	order := q.Order
	if order == "" {
		order = DefaultOrder
	}
	tx := withPreloads(base.Session(&gorm.Session{}), q.Preloads).Order(order)
	if q.Page > 0 && q.PageSize > 0 {
		tx = tx.Offset((q.Page - 1) * q.PageSize).Limit(q.PageSize)
	}

	items := make([]T, 0)
	if err := tx.Find(&items).Error; err != nil {
		return nil, 0, wrap(err)
	}
	return items, total, nil
}

// Update writes only the given columns of one row.
func (r *gormRepository[T]) Update(ctx context.Context, id uuid.UUID, changes map[string]interface{}) error {
	if len(changes) == 0 {
		return nil
	}
	return wrap(r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(changes).Error)
}

// UpdateWhere writes the given columns on every row matching the scopes.
func (r *gormRepository[T]) UpdateWhere(ctx context.Context, changes map[string]interface{}, scopes ...Scope) (int64, error) {
	res := r.db.WithContext(ctx).Model(new(T)).Scopes(scopes...).Updates(changes)
	return res.RowsAffected, wrap(res.Error)
}

// Delete hard-deletes one row. It returns gorm.ErrRecordNotFound when nothing was removed.
func (r *gormRepository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return wrap(res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func withPreloads(tx *gorm.DB, preloads []Preload) *gorm.DB {
	for _, p := range preloads {
		if len(p.Columns) == 0 {
			tx = tx.Preload(p.Field)
			continue
		}
		cols := p.Columns
		tx = tx.Preload(p.Field, func(db *gorm.DB) *gorm.DB {
			return db.Select(cols)
		})
	}
	return tx
}

// wrap records a stack on unexpected errors. Not-found stays a bare sentinel.
func wrap(err error) error {
	if err == nil || errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return pkgerrors.WithStack(err)
}
