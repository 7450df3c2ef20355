package handler

import "learnhub/internal/model"

// set records *v under column when the field was supplied.
func set[V any](changes map[string]interface{}, column string, v *V) {
	if v != nil {
		changes[column] = *v
	}
}

// setFile records an uploaded file URL, or the supplied string otherwise.
func setFile(changes map[string]interface{}, column string, v *string, files map[string]string, field string) {
	if url, ok := files[field]; ok {
		changes[column] = url
		return
	}
	set(changes, column, v)
}

// fileOr returns the uploaded file URL for field, falling back to v.
func fileOr(v string, files map[string]string, field string) string {
	if url, ok := files[field]; ok {
		return url
	}
	return v
}

func deref[V any](v *V) V {
	var zero V
	if v == nil {
		return zero
	}
	return *v
}

func orActive(s model.Status) model.Status {
	if s == "" {
		return model.StatusActive
	}
	return s
}
