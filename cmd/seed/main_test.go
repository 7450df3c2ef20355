package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"learnhub/internal/config"
	"learnhub/internal/model"
	"learnhub/internal/repository"
	"learnhub/internal/repository/repotest"
)

const categoriesJSON = `[
	{"name": "Programming", "description": "Code", "active": true},
	{"name": "Design", "active": false},
	{"name": "x"}
]`

func TestLoadCategories(t *testing.T) {
	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "categories.json")
		require.NoError(t, os.WriteFile(path, []byte(categoriesJSON), 0o600))

		items, err := loadCategories(context.Background(), path)
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, "Programming", items[0].Name)
		assert.False(t, *items[1].Active)
		assert.Nil(t, items[2].Active)
	})

	t.Run("from url", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(categoriesJSON))
		}))
		defer srv.Close()

		items, err := loadCategories(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Len(t, items, 3)
	})

	t.Run("bad status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		_, err := loadCategories(context.Background(), srv.URL)
		assert.ErrorContains(t, err, "502")
	})
}

func TestSeedCategories(t *testing.T) {
	ctx := context.Background()
	repo := repotest.NewMemory[model.Category]("categories", "name")
	repo.Filter = func(model.Category) bool { return false }

	items, err := loadCategoriesFromString(t, categoriesJSON)
	require.NoError(t, err)

	seeded, updated, skipped, err := seedCategories(ctx, repo, items)
	require.NoError(t, err)
	assert.Equal(t, 2, seeded)
	assert.Equal(t, 0, updated)
	assert.Equal(t, 1, skipped)
	assert.Equal(t, 2, repo.Len())

	// a second run matches the existing row and updates it in place
	repo.Filter = func(c model.Category) bool { return c.Name == "Design" }
	seeded, updated, _, err = seedCategories(ctx, repo, []SeedCategoryData{{Name: "Design", Description: "Visual"}})
	require.NoError(t, err)
	assert.Equal(t, 0, seeded)
	assert.Equal(t, 1, updated)

	design, err := repo.FindOne(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Visual", design.Description)
	assert.Equal(t, model.StatusActive, design.Status)
}

func TestSeedSuperAdmin(t *testing.T) {
	ctx := context.Background()
	cfg := config.SeedConfig{SuperAdminName: "Root", SuperAdminEmail: "root@example.com", SuperAdminPassword: "secret1"}

	t.Run("creates once", func(t *testing.T) {
		users := &passwordKeepingRepo{Memory: repotest.NewMemory[model.User]("users", "email")}
		users.Filter = func(u model.User) bool { return u.Email == cfg.SuperAdminEmail }

		created, err := seedSuperAdmin(ctx, users, cfg)
		require.NoError(t, err)
		assert.True(t, created)
		require.NotNil(t, users.created)
		assert.Equal(t, model.RoleSuperAdmin, users.created.Role)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(users.created.PasswordHash), []byte("secret1")))

		created, err = seedSuperAdmin(ctx, users, cfg)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, 1, users.Len())
	})

	t.Run("rejects a short password", func(t *testing.T) {
		users := repotest.NewMemory[model.User]("users", "email")
		short := cfg
		short.SuperAdminPassword = "123"
		_, err := seedSuperAdmin(ctx, users, short)
		assert.Error(t, err)
		assert.Equal(t, 0, users.Len())
	})
}

// passwordKeepingRepo remembers the created user; the JSON backed store drops the hash.
type passwordKeepingRepo struct {
	*repotest.Memory[model.User]
	created *model.User
}

func (r *passwordKeepingRepo) Create(ctx context.Context, u *model.User) error {
	copied := *u
	r.created = &copied
	return r.Memory.Create(ctx, u)
}

var _ repository.Repository[model.User] = (*passwordKeepingRepo)(nil)

func loadCategoriesFromString(t *testing.T, raw string) ([]SeedCategoryData, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "categories.json")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))
	return loadCategories(context.Background(), path)
}
