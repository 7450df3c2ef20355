package upload

import (
	"fmt"
	"mime/multipart"
	"sort"

	"github.com/gabriel-vasile/mimetype"

	apperrors "learnhub/internal/errors"
)

// Limits bound a multipart request.
type Limits struct {
	MaxFileSize      int64
	MaxFiles         int
	MaxParts         int
	MaxFields        int
	MaxFieldNameSize int
	MaxFieldSize     int64
}

// Field declares a file field a resource accepts and the MIME types allowed in it.
type Field struct {
	Name  string
	Types []string
}

// Common allow-lists.
var (
	ImageTypes    = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}
	DocumentTypes = []string{"application/pdf", "application/epub+zip"}
)

// Check enforces limits on an already parsed form and sniffs every file's content type.
// Text fields are checked before files, so the first breach reported is deterministic.
func Check(form *multipart.Form, limits Limits, fields []Field) error {
	if form == nil {
		return nil
	}

	files := 0
	for _, headers := range form.File {
		files += len(headers)
	}
	values := 0
	for _, v := range form.Value {
		values += len(v)
	}

	if limits.MaxParts > 0 && values+files > limits.MaxParts {
		return &apperrors.LimitError{Kind: apperrors.LimitPartCount}
	}
	if limits.MaxFields > 0 && values > limits.MaxFields {
		return &apperrors.LimitError{Kind: apperrors.LimitFieldCount}
	}
	for _, key := range sortedKeys(form.Value) {
		if limits.MaxFieldNameSize > 0 && len(key) > limits.MaxFieldNameSize {
			return &apperrors.LimitError{Kind: apperrors.LimitFieldKey}
		}
		for _, v := range form.Value[key] {
			if limits.MaxFieldSize > 0 && int64(len(v)) > limits.MaxFieldSize {
				return &apperrors.LimitError{Kind: apperrors.LimitFieldValue, Field: key}
			}
		}
	}

	allowed := make(map[string]Field, len(fields))
	for _, f := range fields {
		allowed[f.Name] = f
	}
	for _, key := range sortedKeys(form.File) {
		if _, ok := allowed[key]; !ok || len(form.File[key]) > 1 {
			return &apperrors.LimitError{Kind: apperrors.LimitUnexpectedFile, Field: key}
		}
	}
	if limits.MaxFiles > 0 && files > limits.MaxFiles {
		return &apperrors.LimitError{Kind: apperrors.LimitFileCount}
	}

	for _, key := range sortedKeys(form.File) {
		fh := form.File[key][0]
		if limits.MaxFileSize > 0 && fh.Size > limits.MaxFileSize {
			return &apperrors.LimitError{Kind: apperrors.LimitFileSize, Field: key}
		}
		if _, err := DetectType(fh, allowed[key].Types); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

// DetectType sniffs the file content and checks it against allowed.
// An empty allow-list accepts any type.
func DetectType(fh *multipart.FileHeader, allowed []string) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return "", fmt.Errorf("detect upload type: %w", err)
	}
	if len(allowed) > 0 && !mimetype.EqualsAny(mtype.String(), allowed...) {
		return "", fmt.Errorf("%w: %s", apperrors.ErrInvalidFileType, mtype.String())
	}
	return mtype.String(), nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
