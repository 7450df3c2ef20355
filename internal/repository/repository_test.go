package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"learnhub/internal/model"
)

// dryRunDB renders SQL without a server.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       "user:pass@tcp(127.0.0.1:3306)/learnhub?parseTime=true",
		SkipInitializeWithVersion: true,
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true, Logger: logger.Discard})
	require.NoError(t, err)
	return db
}

func TestScopes_RenderExpectedSQL(t *testing.T) {
	db := dryRunDB(t)
	courseID := uuid.New()
	at := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		model interface{}
		scope Scope
		want  []string
	}{
		{
			name:  "live classes",
			model: &[]model.Class{},
			scope: LiveAt(courseID, at),
			want:  []string{"course_id = ", "start_date <= ", "end_date >= ", "status = 'active'"},
		},
		{
			name:  "series name filter",
			model: &[]model.Instruction{},
			scope: SeriesNameContains("Alpha"),
			want:  []string{"series_id IN (SELECT", "FROM `series`", "LOWER(name) LIKE '%alpha%'"},
		},
		{
			name:  "case insensitive contains",
			model: &[]model.Category{},
			scope: Contains("name", "Web_Dev"),
			want:  []string{`LOWER(name) LIKE '%web\_dev%'`},
		},
		{
			name:  "search across columns",
			model: &[]model.Book{},
			scope: AnyContains("go", "title", "author"),
			want:  []string{"LOWER(title) LIKE '%go%' OR LOWER(author) LIKE '%go%'"},
		},
		{
			name:  "expired coupons",
			model: &[]model.Coupon{},
			scope: ExpiredCoupons(at),
			want:  []string{"expires_at IS NOT NULL AND expires_at < ", "status = 'active'"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
				return tx.Scopes(tt.scope).Find(tt.model)
			})
			for _, fragment := range tt.want {
				assert.Contains(t, sql, fragment)
			}
		})
	}
}

func TestWithPreloads_ProjectsColumns(t *testing.T) {
	db := dryRunDB(t)

	tx := withPreloads(db.Model(&model.Course{}), []Preload{
		{Field: "Category", Columns: model.CategorySummary},
	})

	require.Contains(t, tx.Statement.Preloads, "Category")
	assert.Len(t, tx.Statement.Preloads["Category"], 1)
}

func TestLikePattern_EscapesWildcards(t *testing.T) {
	assert.Equal(t, "%alpha%", likePattern("ALPHA"))
	assert.Equal(t, `%50\%%`, likePattern("50%"))
}
