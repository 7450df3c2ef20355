package handler

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// reportWindow flags an end date that is not after the start date when both are supplied.
func reportWindow(sl validator.StructLevel, start, end *time.Time) {
	if start == nil || end == nil {
		return
	}
	if !end.After(*start) {
		sl.ReportError(*end, "end_date", "EndDate", "gtfield", "start_date")
	}
}
