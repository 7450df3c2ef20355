package upload

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	storage "github.com/supabase-community/storage-go"
)

// Storage persists uploaded files and returns the URL they are served from.
type Storage interface {
	Save(ctx context.Context, key, contentType string, r io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}

// Store saves a checked multipart file under folder and returns its public URL.
func Store(ctx context.Context, s Storage, folder string, fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return "", fmt.Errorf("detect upload type: %w", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind upload: %w", err)
	}
	return s.Save(ctx, ObjectKey(folder, fh.Filename, mtype.Extension()), mtype.String(), f)
}

// ObjectKey builds a collision free key such as "courses/2026/01/<uuid>.png".
func ObjectKey(folder, filename, fallbackExt string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = fallbackExt
	}
	return path.Join(folder, time.Now().UTC().Format("2006/01"), uuid.NewString()+ext)
}

// LocalStorage writes files below Dir and serves them under PublicPrefix.
type LocalStorage struct {
	Dir          string
	PublicPrefix string
}

// NewLocalStorage creates dir if needed.
func NewLocalStorage(dir, publicPrefix string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStorage{Dir: dir, PublicPrefix: strings.TrimRight(publicPrefix, "/")}, nil
}

// Save writes r to Dir/key.
func (s *LocalStorage) Save(_ context.Context, key, _ string, r io.Reader) (string, error) {
	dst := filepath.Join(s.Dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	_, err = io.Copy(out, r)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return s.PublicPrefix + "/" + key, nil
}

// Delete removes Dir/key; a missing file is not an error.
func (s *LocalStorage) Delete(_ context.Context, key string) error {
	err := os.Remove(filepath.Join(s.Dir, filepath.FromSlash(key)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// SupabaseStorage stores files in a Supabase storage bucket.
type SupabaseStorage struct {
	client  *storage.Client
	baseURL string
	bucket  string
}

// NewSupabaseStorage creates a client for the bucket of the project at baseURL.
func NewSupabaseStorage(baseURL, key, bucket string) *SupabaseStorage {
	baseURL = strings.TrimRight(baseURL, "/")
	return &SupabaseStorage{
		client:  storage.NewClient(baseURL+"/storage/v1", key, nil),
		baseURL: baseURL,
		bucket:  bucket,
	}
}

// Save uploads r and returns its public object URL.
func (s *SupabaseStorage) Save(_ context.Context, key, contentType string, r io.Reader) (string, error) {
	options := storage.FileOptions{
		ContentType: &contentType,
	}
	if _, err := s.client.UploadFile(s.bucket, key, r, options); err != nil {
		return "", fmt.Errorf("supabase upload: %w", err)
	}
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, key), nil
}

// Delete removes the object.
func (s *SupabaseStorage) Delete(_ context.Context, key string) error {
	if _, err := s.client.RemoveFile(s.bucket, []string{key}); err != nil {
		return fmt.Errorf("supabase delete: %w", err)
	}
	return nil
}

// KeyFromURL recovers the object key of a URL returned by Save for a file stored under folder.
func KeyFromURL(url, folder string) string {
	if i := strings.LastIndex(url, "/"+folder+"/"); i >= 0 {
		return url[i+1:]
	}
	return path.Base(url)
}
