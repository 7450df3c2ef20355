package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"learnhub/internal/service"
)

// ClassHandler serves the live-class query on top of the class CRUD routes.
type ClassHandler struct {
	svc *service.ClassService
}

// NewClassHandler creates a class handler.
func NewClassHandler(svc *service.ClassService) *ClassHandler {
	return &ClassHandler{svc: svc}
}

// Live lists the classes of :courseId running right now.
func (h *ClassHandler) Live(c echo.Context) error {
	courseID, err := parseUUID(c.Param("courseId"))
	if err != nil {
		return err
	}
	classes, err := h.svc.Live(c.Request().Context(), courseID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, classes)
}
