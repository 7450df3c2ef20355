package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"learnhub/internal/config"
	"learnhub/internal/db"
	"learnhub/internal/logger"
	"learnhub/internal/model"
	"learnhub/internal/repository"
	"learnhub/internal/service"
)

const fetchTimeout = 30 * time.Second

// SeedCategoryData represents one category of the import source.
type SeedCategoryData struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Active      *bool  `json:"active"`
}

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.IsProduction())
	log.Info().Msg("starting seed")

	gormDB, err := db.NewMySQL(cfg.MySQLDSN, false)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}
	defer func() { _ = db.Close(gormDB) }()

	if err := db.Migrate(gormDB, model.All()...); err != nil {
		log.Fatal().Err(err).Msg("run migrations")
	}

	ctx := context.Background()
	users := repository.New[model.User](gormDB)
	created, err := seedSuperAdmin(ctx, users, cfg.Seed)
	if err != nil {
		log.Fatal().Err(err).Msg("seed superadmin")
	}
	log.Info().Bool("created", created).Str("email", cfg.Seed.SuperAdminEmail).Msg("superadmin ready")

	if cfg.Seed.CategoriesSource == "" {
		log.Info().Msg("SEED_CATEGORIES_SOURCE not set, skipping categories")
		return
	}
	items, err := loadCategories(ctx, cfg.Seed.CategoriesSource)
	if err != nil {
		log.Fatal().Err(err).Str("source", cfg.Seed.CategoriesSource).Msg("load categories")
	}
	seeded, updated, skipped, err := seedCategories(ctx, repository.New[model.Category](gormDB), items)
	if err != nil {
		log.Fatal().Err(err).Msg("seed categories")
	}
	log.Info().
		Int("created", seeded).
		Int("updated", updated).
		Int("skipped", skipped).
		Msg("categories seeded")
}

// seedSuperAdmin creates the superadmin unless a user with that email exists.
func seedSuperAdmin(ctx context.Context, users repository.Repository[model.User], cfg config.SeedConfig) (bool, error) {
	_, err := users.FindOne(ctx, repository.Equal("email", cfg.SuperAdminEmail))
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("find superadmin: %w", err)
	}
	if len(cfg.SuperAdminPassword) < 6 {
		return false, fmt.Errorf("SEED_SUPERADMIN_PASSWORD must be at least 6 characters")
	}

	hashed, err := service.HashPassword(cfg.SuperAdminPassword)
	if err != nil {
		return false, err
	}
	user := &model.User{
		Name:         cfg.SuperAdminName,
		Email:        cfg.SuperAdminEmail,
		PasswordHash: hashed,
		Role:         model.RoleSuperAdmin,
		Status:       model.StatusActive,
	}
	if err := users.Create(ctx, user); err != nil {
		return false, fmt.Errorf("create superadmin: %w", err)
	}
	return true, nil
}

// loadCategories reads the import source, an http(s) URL or a local JSON file.
func loadCategories(ctx context.Context, source string) ([]SeedCategoryData, error) {
	var body io.ReadCloser
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
		defer cancel()
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetch categories: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("source returned status code: %d", resp.StatusCode)
		}
		body = resp.Body
	} else {
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("open categories file: %w", err)
		}
		body = f
	}
	defer body.Close()

	var items []SeedCategoryData
	if err := json.NewDecoder(body).Decode(&items); err != nil {
		return nil, fmt.Errorf("parse categories: %w", err)
	}
	return items, nil
}

// seedCategories creates new categories and updates existing ones matched by name.
func seedCategories(ctx context.Context, repo repository.Repository[model.Category], items []SeedCategoryData) (seeded, updated, skipped int, err error) {
	for _, item := range items {
		name := strings.TrimSpace(item.Name)
		if len(name) < 2 || len(name) > 100 {
			log.Warn().Str("name", item.Name).Msg("skipping category with invalid name")
			skipped++
			continue
		}
		status := model.StatusActive
		if item.Active != nil && !*item.Active {
			status = model.StatusInactive
		}

		existing, err := repo.FindOne(ctx, repository.Equal("name", name))
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return seeded, updated, skipped, fmt.Errorf("check category %q: %w", name, err)
		}

		if existing != nil {
			changes := map[string]interface{}{
				"description": item.Description,
				"image":       item.Image,
				"status":      status,
			}
			if err := repo.Update(ctx, existing.ID, changes); err != nil {
				return seeded, updated, skipped, fmt.Errorf("update category %q: %w", name, err)
			}
			updated++
			continue
		}

		category := &model.Category{Name: name, Description: item.Description, Image: item.Image, Status: status}
		if err := repo.Create(ctx, category); err != nil {
			return seeded, updated, skipped, fmt.Errorf("create category %q: %w", name, err)
		}
		seeded++
	}
	return seeded, updated, skipped, nil
}
