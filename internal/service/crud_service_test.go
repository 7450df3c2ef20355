package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnhub/internal/cache/cachetest"
	apperrors "learnhub/internal/errors"
	"learnhub/internal/model"
	"learnhub/internal/repository"
	"learnhub/internal/repository/repotest"
)

func newCourseService() (CRUDService[model.Course], *repotest.Memory[model.Course]) {
	repo := repotest.NewMemory[model.Course]("courses", "title")
	return NewCRUDService[model.Course](repo, Options[model.Course]{Resource: "course", Hooks: CourseHooks()}), repo
}

func TestCRUDService_CreateThenGetRoundTrips(t *testing.T) {
	svc, _ := newCourseService()
	ctx := context.Background()
	categoryID := uuid.New()

	created, err := svc.Create(ctx, &model.Course{
		Title:      "Go for Backend Engineers",
		CategoryID: categoryID,
		Price:      decimal.RequireFromString("49.99"),
		Language:   "en",
		Status:     model.StatusActive,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, "go-for-backend-engineers", created.Slug)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, got.Title)
	assert.Equal(t, categoryID, got.CategoryID)
	assert.True(t, created.Price.Equal(got.Price))
	assert.Equal(t, created.Language, got.Language)
	assert.Equal(t, created.ID, got.ID)
}

func TestCRUDService_DuplicateUniqueField(t *testing.T) {
	svc, repo := newCourseService()
	ctx := context.Background()

	first, err := svc.Create(ctx, &model.Course{Title: "Kubernetes", Price: decimal.NewFromInt(10)})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &model.Course{Title: "Kubernetes", Price: decimal.NewFromInt(99)})
	require.Error(t, err)

	httpErr := apperrors.MapErrorToHTTP(err)
	assert.Equal(t, 409, httpErr.StatusCode)
	assert.Equal(t, "DUPLICATE_KEY", httpErr.Code)
	assert.Equal(t, "title already exists", httpErr.Message)

	assert.Equal(t, 1, repo.Len())
	stored, err := svc.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, stored.Price.Equal(decimal.NewFromInt(10)))
}

func TestCRUDService_PartialUpdate(t *testing.T) {
	svc, _ := newCourseService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &model.Course{
		Title:       "Rust Basics",
		Description: "ownership and borrowing",
		Price:       decimal.NewFromInt(30),
		Language:    "en",
		Status:      model.StatusActive,
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, map[string]interface{}{"price": decimal.NewFromInt(25)})
	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(decimal.NewFromInt(25)))

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, got.Price.Equal(decimal.NewFromInt(25)))
	assert.Equal(t, "Rust Basics", got.Title)
	assert.Equal(t, "ownership and borrowing", got.Description)
	assert.Equal(t, "en", got.Language)
	assert.Equal(t, model.StatusActive, got.Status)
	assert.Equal(t, created.ID, got.ID)
}

func TestCRUDService_UpdateIgnoresIdentity(t *testing.T) {
	svc, _ := newCourseService()
	ctx := context.Background()
	created, err := svc.Create(ctx, &model.Course{Title: "Elixir"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, map[string]interface{}{"id": uuid.New(), "title": "Elixir 2"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "elixir-2", updated.Slug)
}

func TestCRUDService_NotFound(t *testing.T) {
	svc, _ := newCourseService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &model.Course{Title: "Haskell"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, created.ID))

	tests := []struct {
		name string
		call func() error
	}{
		{"get after delete", func() error { _, err := svc.Get(ctx, created.ID); return err }},
		{"delete twice", func() error { return svc.Delete(ctx, created.ID) }},
		{"delete unknown", func() error { return svc.Delete(ctx, uuid.New()) }},
		{"update unknown", func() error {
			_, err := svc.Update(ctx, uuid.New(), map[string]interface{}{"title": "x"})
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			assert.True(t, errors.Is(err, apperrors.ErrNotFound))
			httpErr := apperrors.MapErrorToHTTP(err)
			assert.Equal(t, 404, httpErr.StatusCode)
			assert.Equal(t, "course not found", httpErr.Message)
		})
	}
}

func TestCRUDService_ListNewestFirstAndPaged(t *testing.T) {
	svc, _ := newCourseService()
	ctx := context.Background()
	for _, title := range []string{"first", "second", "third"} {
		_, err := svc.Create(ctx, &model.Course{Title: title})
		require.NoError(t, err)
	}

	items, total, err := svc.List(ctx, repository.Query{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, items, 3)
	assert.Equal(t, "third", items[0].Title)
	assert.Equal(t, "first", items[2].Title)

	page, total, err := svc.List(ctx, repository.Query{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page, 1)
	assert.Equal(t, "first", page[0].Title)
}

func TestCRUDService_AfterCreateSeesPersistedEntity(t *testing.T) {
	b := &recordingBroadcaster{}
	repo := repotest.NewMemory[model.Notification]("notifications")
	svc := NewCRUDService[model.Notification](repo, Options[model.Notification]{
		Resource: "notification",
		Hooks:    NotificationHooks(b),
	})

	n, err := svc.Create(context.Background(), &model.Notification{Title: "Exam", Message: "Friday", Status: model.StatusActive})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), &model.Notification{Title: "Draft", Message: "later", Status: model.StatusInactive})
	require.NoError(t, err)

	require.Len(t, b.events, 1)
	assert.Equal(t, EventNotificationCreated, b.events[0])
	assert.Equal(t, n.ID, b.payloads[0].(*model.Notification).ID)
}

type recordingBroadcaster struct {
	events   []string
	payloads []interface{}
}

func (r *recordingBroadcaster) Broadcast(event string, payload interface{}) {
	r.events = append(r.events, event)
	r.payloads = append(r.payloads, payload)
}

func TestCRUDService_CachesOnlyRowsWithoutReferences(t *testing.T) {
	c, store := cachetest.New()
	ctx := context.Background()

	categoryRepo := repotest.NewMemory[model.Category]("categories", "name")
	categories := NewCRUDService[model.Category](categoryRepo, Options[model.Category]{Resource: "category", Cache: c})
	category, err := categories.Create(ctx, &model.Category{Name: "Design", Status: model.StatusActive})
	require.NoError(t, err)

	_, err = categories.Get(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"category:" + category.ID.String()}, store.Keys())

	require.NoError(t, categoryRepo.Update(ctx, category.ID, map[string]interface{}{"name": "Art"}))
	got, err := categories.Get(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Design", got.Name, "second read is served from the cache")

	_, err = categories.Update(ctx, category.ID, map[string]interface{}{"description": "Visual"})
	require.NoError(t, err)
	assert.Empty(t, store.Keys())
	got, err = categories.Get(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Art", got.Name)

	topics := NewCRUDService[model.Topic](repotest.NewMemory[model.Topic]("topics"), Options[model.Topic]{
		Resource: "topic",
		Cache:    c,
		Preloads: []repository.Preload{{Field: "Course", Columns: model.CourseSummary}},
	})
	topic, err := topics.Create(ctx, &model.Topic{Name: "Ownership", CourseID: uuid.New(), Status: model.StatusActive})
	require.NoError(t, err)
	_, err = topics.Get(ctx, topic.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"category:" + category.ID.String()}, store.Keys())
}
