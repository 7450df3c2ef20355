package repository

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnhub/internal/model"
)

// Equal filters on column = value.
func Equal(column string, value interface{}) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", value)
	}
}

// Contains filters rows whose column contains term, ignoring case.
func Contains(column, term string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("LOWER("+column+") LIKE ?", likePattern(term))
	}
}

// AnyContains matches term against any of the columns, ignoring case.
func AnyContains(term string, columns ...string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		pattern := likePattern(term)
		clauses := make([]string, len(columns))
		args := make([]interface{}, len(columns))
		for i, c := range columns {
			clauses[i] = "LOWER(" + c + ") LIKE ?"
			args[i] = pattern
		}
		return db.Where("("+strings.Join(clauses, " OR ")+")", args...)
	}
}

// SeriesNameContains keeps rows whose series name contains term, ignoring case.
func SeriesNameContains(term string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		sub := db.Session(&gorm.Session{NewDB: true}).
			Model(&model.Series{}).
			Select("id").
			Where("LOWER(name) LIKE ?", likePattern(term))
		return db.Where("series_id IN (?)", sub)
	}
}

// LiveAt keeps active classes of a course whose window contains at, bounds included.
func LiveAt(courseID uuid.UUID, at time.Time) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("course_id = ?", courseID).
			Where("start_date <= ? AND end_date >= ?", at, at).
			Where("status = ?", model.StatusActive)
	}
}

// EndedBefore keeps rows in status whose end_date is before at.
func EndedBefore(at time.Time, status interface{}) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("end_date < ?", at).Where("status = ?", status)
	}
}

// ExpiredCoupons keeps active coupons whose expiry passed.
func ExpiredCoupons(at time.Time) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("expires_at IS NOT NULL AND expires_at < ?", at).
			Where("status = ?", model.StatusActive)
	}
}

func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(term)) + "%"
}
