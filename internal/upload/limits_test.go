package upload

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "learnhub/internal/errors"
)

// pngHeader is enough for content sniffing to report image/png.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00\x1f\x15\xc4\x89")

type part struct {
	name, filename string
	body           []byte
}

func buildForm(t *testing.T, parts ...part) *multipart.Form {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, p := range parts {
		if p.filename == "" {
			require.NoError(t, w.WriteField(p.name, string(p.body)))
			continue
		}
		fw, err := w.CreateFormFile(p.name, p.filename)
		require.NoError(t, err)
		_, err = fw.Write(p.body)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form
}

func TestCheck(t *testing.T) {
	limits := Limits{
		MaxFileSize:      64,
		MaxFiles:         1,
		MaxParts:         4,
		MaxFields:        3,
		MaxFieldNameSize: 10,
		MaxFieldSize:     16,
	}
	fields := []Field{{Name: "image", Types: ImageTypes}, {Name: "file", Types: DocumentTypes}}
	image := part{"image", "a.png", pngHeader}

	tests := []struct {
		name     string
		parts    []part
		wantKind apperrors.LimitKind
		wantType bool
	}{
		{name: "valid", parts: []part{{"name", "", []byte("Design")}, image}},
		{name: "too many parts", parts: []part{{"a", "", nil}, {"b", "", nil}, {"c", "", nil}, {"d", "", nil}, image}, wantKind: apperrors.LimitPartCount},
		{name: "too many fields", parts: []part{{"a", "", nil}, {"b", "", nil}, {"c", "", nil}, {"d", "", nil}}, wantKind: apperrors.LimitFieldCount},
		{name: "field name too long", parts: []part{{"description", "", []byte("x")}}, wantKind: apperrors.LimitFieldKey},
		{name: "field value too long", parts: []part{{"name", "", []byte(strings.Repeat("x", 17))}}, wantKind: apperrors.LimitFieldValue},
		{name: "unexpected file field", parts: []part{{"avatar", "a.png", pngHeader}}, wantKind: apperrors.LimitUnexpectedFile},
		{name: "two files in one field", parts: []part{image, image}, wantKind: apperrors.LimitUnexpectedFile},
		{name: "too many files", parts: []part{image, {"file", "a.pdf", []byte("%PDF-1.4\n")}}, wantKind: apperrors.LimitFileCount},
		{name: "file too large", parts: []part{{"image", "a.png", append(append([]byte{}, pngHeader...), make([]byte, 64)...)}}, wantKind: apperrors.LimitFileSize},
		{name: "wrong content type", parts: []part{{"image", "a.png", []byte("just text, not an image")}}, wantType: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(buildForm(t, tt.parts...), limits, fields)
			switch {
			case tt.wantKind != "":
				var le *apperrors.LimitError
				require.True(t, errors.As(err, &le), "got %v", err)
				assert.Equal(t, tt.wantKind, le.Kind)
			case tt.wantType:
				assert.ErrorIs(t, err, apperrors.ErrInvalidFileType)
				assert.Equal(t, "INVALID_FILE_TYPE", apperrors.MapErrorToHTTP(err).Code)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheck_LimitStatusCodes(t *testing.T) {
	assert.Equal(t, 413, apperrors.MapErrorToHTTP(&apperrors.LimitError{Kind: apperrors.LimitFileSize}).StatusCode)
	assert.Equal(t, 400, apperrors.MapErrorToHTTP(&apperrors.LimitError{Kind: apperrors.LimitFileCount}).StatusCode)
}

func TestLocalStorage_StoreAndDelete(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(dir, "/uploads/")
	require.NoError(t, err)

	form := buildForm(t, part{"image", "Cover.PNG", pngHeader})
	url, err := Store(context.Background(), s, "categories", form.File["image"][0])
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/uploads/categories/"), url)
	assert.True(t, strings.HasSuffix(url, ".png"), url)

	key := strings.TrimPrefix(url, "/uploads/")
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(key)))
	require.NoError(t, err)
	assert.Equal(t, pngHeader, data)

	require.NoError(t, s.Delete(context.Background(), key))
	require.NoError(t, s.Delete(context.Background(), key))
	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(key)))
	assert.True(t, os.IsNotExist(err))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk vanished") }

func TestLocalStorage_FailedWriteLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(dir, "/uploads")
	require.NoError(t, err)

	url, err := s.Save(context.Background(), "books/broken.png", "image/png", io.MultiReader(bytes.NewReader(pngHeader), failingReader{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk vanished")
	assert.Empty(t, url)

	_, err = os.Stat(filepath.Join(dir, "books", "broken.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestObjectKey_FallsBackToSniffedExtension(t *testing.T) {
	key := ObjectKey("ebooks", "book", ".pdf")
	assert.True(t, strings.HasPrefix(key, "ebooks/"))
	assert.True(t, strings.HasSuffix(key, ".pdf"))
}
