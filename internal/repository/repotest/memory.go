// Package repotest provides an in-memory repository.Repository for tests.
package repotest

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnhub/internal/repository"
)

// Memory stores entities as JSON documents keyed by id. Column names are the JSON names.
// Scopes cannot run without SQL, so List applies Filter instead and records the last query.
type Memory[T any] struct {
	mu     sync.Mutex
	table  string
	unique []string
	rows   map[uuid.UUID]map[string]interface{}
	seq    int

	// Filter, when set, replaces scope evaluation in List.
	Filter func(T) bool
	// LastQuery is the most recent query passed to List.
	LastQuery repository.Query
}

// NewMemory creates an empty store. unique lists columns that reject duplicate values.
func NewMemory[T any](table string, unique ...string) *Memory[T] {
	return &Memory[T]{table: table, unique: unique, rows: map[uuid.UUID]map[string]interface{}{}}
}

var _ repository.Repository[struct{}] = (*Memory[struct{}])(nil)

// Create stores entity, assigning id and timestamps.
func (m *Memory[T]) Create(_ context.Context, entity *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, err := toDoc(entity)
	if err != nil {
		return err
	}
	id, _ := uuid.Parse(fmt.Sprint(doc["id"]))
	if id == uuid.Nil {
		id = uuid.New()
	}
	// created_at must be strictly increasing for newest-first ordering
	m.seq++
	now := time.Now().UTC().Add(time.Duration(m.seq) * time.Millisecond)
	doc["id"] = id.String()
	doc["created_at"] = now
	doc["updated_at"] = now
	if err := m.checkUnique(id, doc); err != nil {
		return err
	}

	if err := fromDoc(doc, entity); err != nil {
		return err
	}
	stored, err := toDoc(entity)
	if err != nil {
		return err
	}
	m.rows[id] = stored
	return nil
}

// FindByID returns a copy of the stored entity. Preloads are ignored.
func (m *Memory[T]) FindByID(_ context.Context, id uuid.UUID, _ ...repository.Preload) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	var out T
	if err := fromDoc(doc, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindOne returns the first entity accepted by Filter.
func (m *Memory[T]) FindOne(ctx context.Context, _ ...repository.Scope) (*T, error) {
	items, _, err := m.List(ctx, repository.Query{})
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &items[0], nil
}

// List returns entities newest first, paged when the query asks for it.
func (m *Memory[T]) List(_ context.Context, q repository.Query) ([]T, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastQuery = q

	type row struct {
		created time.Time
		item    T
	}
	rows := make([]row, 0, len(m.rows))
	for _, doc := range m.rows {
		var item T
		if err := fromDoc(doc, &item); err != nil {
			return nil, 0, err
		}
		if m.Filter != nil && !m.Filter(item) {
			continue
		}
		created, _ := time.Parse(time.RFC3339Nano, fmt.Sprint(doc["created_at"]))
		rows = append(rows, row{created: created, item: item})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].created.After(rows[j].created) })

	total := int64(len(rows))
	if q.Page > 0 && q.PageSize > 0 {
		start := (q.Page - 1) * q.PageSize
		if start > len(rows) {
			start = len(rows)
		}
		end := start + q.PageSize
		if end > len(rows) {
			end = len(rows)
		}
		rows = rows[start:end]
	}

	items := make([]T, 0, len(rows))
	for _, r := range rows {
		items = append(items, r.item)
	}
	return items, total, nil
}

// Update overlays changes on the stored document.
func (m *Memory[T]) Update(_ context.Context, id uuid.UUID, changes map[string]interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.rows[id]
	if !ok {
		return nil
	}
	next, err := overlay(doc, changes)
	if err != nil {
		return err
	}
	next["updated_at"] = time.Now().UTC()
	if err := m.checkUnique(id, next); err != nil {
		return err
	}
	var entity T
	if err := fromDoc(next, &entity); err != nil {
		return err
	}
	stored, err := toDoc(&entity)
	if err != nil {
		return err
	}
	m.rows[id] = stored
	return nil
}

// UpdateWhere overlays changes on every entity accepted by Filter.
func (m *Memory[T]) UpdateWhere(ctx context.Context, changes map[string]interface{}, _ ...repository.Scope) (int64, error) {
	items, _, err := m.List(ctx, repository.Query{})
	if err != nil {
		return 0, err
	}
	for _, item := range items {
		doc, err := toDoc(&item)
		if err != nil {
			return 0, err
		}
		id, _ := uuid.Parse(fmt.Sprint(doc["id"]))
		if err := m.Update(ctx, id, changes); err != nil {
			return 0, err
		}
	}
	return int64(len(items)), nil
}

// Delete removes the entity or reports gorm.ErrRecordNotFound.
func (m *Memory[T]) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.rows, id)
	return nil
}

// Len reports the number of stored entities.
func (m *Memory[T]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

func (m *Memory[T]) checkUnique(id uuid.UUID, doc map[string]interface{}) error {
	for _, col := range m.unique {
		for otherID, other := range m.rows {
			if otherID != id && reflect.DeepEqual(other[col], doc[col]) {
				return &mysql.MySQLError{
					Number:  1062,
					Message: fmt.Sprintf("Duplicate entry '%v' for key '%s.uniq_%s'", doc[col], m.table, col),
				}
			}
		}
	}
	return nil
}

func toDoc(v interface{}) (map[string]interface{}, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	doc := map[string]interface{}{}
	return doc, json.Unmarshal(data, &doc)
}

func fromDoc(doc map[string]interface{}, dst interface{}) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}

func overlay(doc, changes map[string]interface{}) (map[string]interface{}, error) {
	patch, err := toDoc(changes)
	if err != nil {
		return nil, err
	}
	next := make(map[string]interface{}, len(doc))
	for k, v := range doc {
		next[k] = v
	}
	for k, v := range patch {
		next[k] = v
	}
	return next, nil
}
