package handler

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	apperrors "learnhub/internal/errors"
	"learnhub/internal/repository"
	"learnhub/internal/service"
	"learnhub/internal/upload"
)

const defaultPageSize = 10

// CreateRequest is a validated create body that builds the entity to persist.
// files maps each uploaded file field to its public URL.
type CreateRequest[T any] interface {
	Model(files map[string]string) *T
}

// UpdateRequest is a validated partial update body.
// Changes returns only the supplied columns.
type UpdateRequest interface {
	Changes(files map[string]string) map[string]interface{}
}

// Filter turns one query parameter into a query scope.
type Filter struct {
	Param string
	Scope func(value string) (repository.Scope, error)
}

// ResourceConfig describes how a resource is exposed over HTTP.
type ResourceConfig[T any] struct {
	NewCreate func() CreateRequest[T]
	NewUpdate func() UpdateRequest
	Filters   []Filter
	// Paged resources read page and search and answer with page metadata.
	Paged    bool
	PageSize int
	Search   []string
	Order    string
	// Files lists the accepted file fields; empty means JSON only.
	Files  []upload.Field
	Folder string
	// Statuses enables PATCH /:id/status with the allowed values.
	Statuses []string
}

// Uploads bundles what file-bearing resources need.
type Uploads struct {
	Storage upload.Storage
	Limits  upload.Limits
}

// ResourceHandler exposes the CRUD contract of one resource.
type ResourceHandler[T any] struct {
	svc     service.CRUDService[T]
	cfg     ResourceConfig[T]
	uploads Uploads
}

// NewResourceHandler creates a handler for svc.
func NewResourceHandler[T any](svc service.CRUDService[T], cfg ResourceConfig[T], uploads Uploads) *ResourceHandler[T] {
	if cfg.PageSize == 0 {
		cfg.PageSize = defaultPageSize
	}
	return &ResourceHandler[T]{svc: svc, cfg: cfg, uploads: uploads}
}

// Register mounts the standard routes on g. read guards GETs and write guards mutations.
func (h *ResourceHandler[T]) Register(g *echo.Group, read, write []echo.MiddlewareFunc) {
	g.GET("", h.List, read...)
	g.GET("/:id", h.Get, read...)
	g.POST("", h.Create, write...)
	g.PUT("/:id", h.Update, write...)
	g.PATCH("/:id", h.Update, write...)
	g.DELETE("/:id", h.Delete, write...)
	if len(h.cfg.Statuses) > 0 {
		g.PATCH("/:id/status", h.UpdateStatus, write...)
	}
}

// List returns every matching entity, newest first.
func (h *ResourceHandler[T]) List(c echo.Context) error {
	scopes, err := h.scopes(c)
	if err != nil {
		return err
	}
	q := repository.Query{Scopes: scopes, Order: h.cfg.Order}

	if !h.cfg.Paged {
		items, _, err := h.svc.List(c.Request().Context(), q)
		if err != nil {
			return err
		}
		return respond(c, http.StatusOK, items)
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	if term := strings.TrimSpace(c.QueryParam("search")); term != "" && len(h.cfg.Search) > 0 {
		q.Scopes = append(q.Scopes, repository.AnyContains(term, h.cfg.Search...))
	}
	q.Page, q.PageSize = page, h.cfg.PageSize

	items, total, err := h.svc.List(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return respondPage(c, http.StatusOK, items, page, h.cfg.PageSize, total)
}

// ListBy returns a handler listing entities whose column equals the UUID path param.
func (h *ResourceHandler[T]) ListBy(param, column string) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseUUID(c.Param(param))
		if err != nil {
			return err
		}
		items, _, err := h.svc.List(c.Request().Context(), repository.Query{
			Scopes: []repository.Scope{repository.Equal(column, id)},
			Order:  h.cfg.Order,
		})
		if err != nil {
			return err
		}
		return respond(c, http.StatusOK, items)
	}
}

// Get returns one entity.
func (h *ResourceHandler[T]) Get(c echo.Context) error {
	id, err := parseUUID(c.Param("id"))
	if err != nil {
		return err
	}
	entity, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, entity)
}

// Create validates the body, stores uploaded files and persists the entity.
func (h *ResourceHandler[T]) Create(c echo.Context) error {
	req := h.cfg.NewCreate()
	form, err := h.bind(c, req)
	if err != nil {
		return err
	}

	files, err := h.storeFiles(c, form)
	if err != nil {
		return err
	}

	entity, err := h.svc.Create(c.Request().Context(), req.Model(files))
	if err != nil {
		h.discardFiles(c, files)
		return err
	}
	return respond(c, http.StatusCreated, entity)
}

// Update applies a partial update and returns the full entity.
func (h *ResourceHandler[T]) Update(c echo.Context) error {
	id, err := parseUUID(c.Param("id"))
	if err != nil {
		return err
	}
	req := h.cfg.NewUpdate()
	form, err := h.bind(c, req)
	if err != nil {
		return err
	}

	files, err := h.storeFiles(c, form)
	if err != nil {
		return err
	}

	entity, err := h.svc.Update(c.Request().Context(), id, req.Changes(files))
	if err != nil {
		h.discardFiles(c, files)
		return err
	}
	return respond(c, http.StatusOK, entity)
}

// StatusRequest is the body of PATCH /:id/status.
type StatusRequest struct {
	Status string `json:"status" form:"status" validate:"required"`
}

// UpdateStatus changes only the status column.
func (h *ResourceHandler[T]) UpdateStatus(c echo.Context) error {
	id, err := parseUUID(c.Param("id"))
	if err != nil {
		return err
	}
	var req StatusRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrInvalidRequest
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if !contains(h.cfg.Statuses, req.Status) {
		return apperrors.NewValidationError(fmt.Sprintf("status must be one of [%s]", strings.Join(h.cfg.Statuses, " ")))
	}

	entity, err := h.svc.Update(c.Request().Context(), id, map[string]interface{}{"status": req.Status})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, entity)
}

// Delete hard-deletes one entity.
func (h *ResourceHandler[T]) Delete(c echo.Context) error {
	id, err := parseUUID(c.Param("id"))
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, h.svc.Resource()+" deleted")
}

// bind parses the body into req and validates it. Multipart bodies are limit checked first.
func (h *ResourceHandler[T]) bind(c echo.Context, req interface{}) (*multipart.Form, error) {
	var form *multipart.Form
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		var err error
		if form, err = c.MultipartForm(); err != nil {
			return nil, err
		}
		if err := upload.Check(form, h.uploads.Limits, h.cfg.Files); err != nil {
			return nil, err
		}
	}
	if err := c.Bind(req); err != nil {
		return nil, bindError(err)
	}
	if err := c.Validate(req); err != nil {
		return nil, err
	}
	return form, nil
}

func (h *ResourceHandler[T]) storeFiles(c echo.Context, form *multipart.Form) (map[string]string, error) {
	files := map[string]string{}
	if form == nil || h.uploads.Storage == nil {
		return files, nil
	}
	for _, f := range h.cfg.Files {
		headers := form.File[f.Name]
		if len(headers) == 0 {
			continue
		}
		url, err := upload.Store(c.Request().Context(), h.uploads.Storage, h.cfg.Folder, headers[0])
		if err != nil {
			h.discardFiles(c, files)
			return nil, err
		}
		files[f.Name] = url
	}
	return files, nil
}

// discardFiles removes files stored for a request that failed afterwards.
func (h *ResourceHandler[T]) discardFiles(c echo.Context, files map[string]string) {
	for field, url := range files {
		if err := h.uploads.Storage.Delete(c.Request().Context(), upload.KeyFromURL(url, h.cfg.Folder)); err != nil {
			log.Warn().Err(err).Str("field", field).Str("url", url).Msg("discard upload")
		}
	}
}

func (h *ResourceHandler[T]) scopes(c echo.Context) ([]repository.Scope, error) {
	var scopes []repository.Scope
	for _, f := range h.cfg.Filters {
		v := strings.TrimSpace(c.QueryParam(f.Param))
		if v == "" {
			continue
		}
		s, err := f.Scope(v)
		if err != nil {
			return nil, err
		}
		scopes = append(scopes, s)
	}
	return scopes, nil
}

func parseUUID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperrors.ErrInvalidID
	}
	return id, nil
}

// bindError keeps body-limit errors intact and reports everything else as a bad body.
func bindError(err error) error {
	var he *echo.HTTPError
	if errors.As(err, &he) && he.Code == http.StatusRequestEntityTooLarge {
		return err
	}
	return fmt.Errorf("%w: %v", apperrors.ErrInvalidRequest, err)
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
