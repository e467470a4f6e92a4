// Package uploads stores image parts of multipart request bodies on disk
// under randomly generated names.
package uploads

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-app-catalog/internal/apperrors"
	"github.com/sbilibin2017/gw-app-catalog/internal/logger"
)

const (
	// DefaultRoot is the directory images are stored under.
	DefaultRoot = "./media/images"
	// ImageField is the only multipart field that gets stored.
	ImageField = "image"
)

// mimeExtensions is searched in order; the first match wins.
var mimeExtensions = []struct {
	mime string
	ext  string
}{
	{"image/png", ".png"},
	{"image/jpeg", ".jpg"},
	{"image/jpg", ".jpg"},
	{"image/pjpeg", ".jpg"},
	{"image/gif", ".gif"},
	{"image/webp", ".webp"},
	{"image/avif", ".avif"},
	{"image/svg+xml", ".svg"},
	{"image/bmp", ".bmp"},
	{"image/tiff", ".tiff"},
	{"image/x-icon", ".ico"},
	{"image/vnd.microsoft.icon", ".ico"},
	{"image/heic", ".heic"},
}

// ExtensionForMIME maps a Content-Type value to a file extension.
// Parameters are ignored. Unknown types map to "".
func ExtensionForMIME(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.TrimSpace(contentType)
	}
	mediaType = strings.ToLower(mediaType)

	for _, m := range mimeExtensions {
		if m.mime == mediaType {
			return m.ext
		}
	}
	return ""
}

// Saver writes uploaded images below a root directory.
type Saver struct {
	root    string
	newName func() string
}

// NewSaver creates a Saver rooted at root, or DefaultRoot when root is empty.
func NewSaver(root string) *Saver {
	if root == "" {
		root = DefaultRoot
	}
	return &Saver{
		root:    root,
		newName: uuid.NewString,
	}
}

// Dir returns the root directory.
func (s *Saver) Dir() string {
	return s.root
}

// SaveStream consumes mr and stores the first part named "image" as
// <root>/<category>/<random name><ext>. Other parts are skipped.
// It returns the stored file name, or "" when the stream has no image part.
// A partially written file is removed before an error is returned.
func (s *Saver) SaveStream(ctx context.Context, mr *multipart.Reader, category string) (string, error) {
	if err := checkCategory(category); err != nil {
		return "", err
	}

	var saved string
	for {
		part, err := mr.NextPart()
		// a clean end of stream is reported as a bare io.EOF; a body cut
		// short before the closing boundary wraps it
		if err == io.EOF {
			break
		}
		if err != nil {
			s.cleanup(category, saved)
			return "", apperrors.Wrap(apperrors.ErrUpload, err, "read multipart stream")
		}

		if part.Header.Get("Content-Disposition") == "" {
			part.Close()
			s.cleanup(category, saved)
			return "", fmt.Errorf("%w: part without content-disposition header", apperrors.ErrUpload)
		}

		if part.FormName() != ImageField || saved != "" {
			_, err := io.Copy(io.Discard, part)
			part.Close()
			if err != nil {
				s.cleanup(category, saved)
				return "", apperrors.Wrap(apperrors.ErrUpload, err, "skip multipart part")
			}
			continue
		}

		contentType := part.Header.Get("Content-Type")
		if contentType == "" {
			part.Close()
			return "", fmt.Errorf("%w: image part without content-type header", apperrors.ErrUpload)
		}

		name := s.newName() + ExtensionForMIME(contentType)
		err = s.writeFile(ctx, category, name, part)
		part.Close()
		if err != nil {
			return "", err
		}
		saved = name

		logger.Log.Infow("image stored", "category", category, "file", name, "content_type", contentType)
	}

	return saved, nil
}

func (s *Saver) writeFile(ctx context.Context, category, name string, src io.Reader) (err error) {
	dir := filepath.Join(s.root, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return apperrors.Wrap(apperrors.ErrUpload, err, "create image directory")
	}

	path := filepath.Join(dir, name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrUpload, err, "create image file")
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = apperrors.Wrap(apperrors.ErrUpload, closeErr, "close image file")
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	if _, err := io.Copy(f, &ctxReader{ctx: ctx, r: src}); err != nil {
		return apperrors.Wrap(apperrors.ErrUpload, err, "write image file")
	}
	return nil
}

// Remove deletes a previously stored image. Missing files are ignored.
func (s *Saver) Remove(category, name string) error {
	if name == "" {
		return nil
	}
	if err := checkCategory(category); err != nil {
		return err
	}
	if filepath.Base(name) != name {
		return fmt.Errorf("%w: invalid file name %q", apperrors.ErrUpload, name)
	}

	err := os.Remove(filepath.Join(s.root, category, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return apperrors.Wrap(apperrors.ErrUpload, err, "remove image file")
	}
	return nil
}

func (s *Saver) cleanup(category, name string) {
	if err := s.Remove(category, name); err != nil {
		logger.Log.Errorw("failed to remove image", "category", category, "file", name, "error", err)
	}
}

func checkCategory(category string) error {
	if category == "" || category == "." || category == ".." || strings.ContainsAny(category, `/\`) {
		return fmt.Errorf("%w: invalid category %q", apperrors.ErrUpload, category)
	}
	return nil
}

// ctxReader stops reading once ctx is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
