package uploads

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sbilibin2017/gw-app-catalog/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type part struct {
	field       string
	contentType string
	body        string
}

func buildBody(t *testing.T, parts ...part) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for _, p := range parts {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", `form-data; name="`+p.field+`"; filename="upload"`)
		if p.contentType != "" {
			h.Set("Content-Type", p.contentType)
		}
		pw, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = pw.Write([]byte(p.body))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return buf, w.Boundary()
}

func newTestSaver(t *testing.T) *Saver {
	t.Helper()
	s := NewSaver(t.TempDir())
	s.newName = func() string { return "fixed" }
	return s
}

func TestExtensionForMIME(t *testing.T) {
	tests := []struct {
		contentType string
		want        string
	}{
		{"image/png", ".png"},
		{"IMAGE/PNG", ".png"},
		{"image/jpeg", ".jpg"},
		{"image/svg+xml; charset=utf-8", ".svg"},
		{"image/webp", ".webp"},
		{"application/octet-stream", ""},
		{"text/plain", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtensionForMIME(tt.contentType))
		})
	}
}

func TestSaver_SaveStream_PNG(t *testing.T) {
	s := newTestSaver(t)
	body, boundary := buildBody(t,
		part{field: "name", contentType: "text/plain", body: "ignored"},
		part{field: "image", contentType: "image/png", body: "\x89PNG data"},
	)

	name, err := s.SaveStream(context.Background(), multipart.NewReader(body, boundary), "app")
	require.NoError(t, err)
	assert.Equal(t, "fixed.png", name)
	assert.True(t, strings.HasSuffix(name, ".png"))

	data, err := os.ReadFile(filepath.Join(s.Dir(), "app", name))
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG data", string(data))
}

func TestSaver_SaveStream_UnknownTypeHasNoExtension(t *testing.T) {
	s := newTestSaver(t)
	body, boundary := buildBody(t, part{field: "image", contentType: "application/x-unknown", body: "raw"})

	name, err := s.SaveStream(context.Background(), multipart.NewReader(body, boundary), "app")
	require.NoError(t, err)
	assert.Equal(t, "fixed", name)
	assert.Equal(t, "", filepath.Ext(name))
}

func TestSaver_SaveStream_RandomNames(t *testing.T) {
	s := NewSaver(t.TempDir())

	names := map[string]bool{}
	for i := 0; i < 3; i++ {
		body, boundary := buildBody(t, part{field: "image", contentType: "image/gif", body: "GIF89a"})
		name, err := s.SaveStream(context.Background(), multipart.NewReader(body, boundary), "app")
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(name, ".gif"))
		names[name] = true
	}
	assert.Len(t, names, 3)
}

func TestSaver_SaveStream_NoImagePart(t *testing.T) {
	s := newTestSaver(t)
	body, boundary := buildBody(t, part{field: "avatar", contentType: "image/png", body: "data"})

	name, err := s.SaveStream(context.Background(), multipart.NewReader(body, boundary), "app")
	require.NoError(t, err)
	assert.Empty(t, name)

	_, err = os.Stat(filepath.Join(s.Dir(), "app"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestSaver_SaveStream_OnlyFirstImageStored(t *testing.T) {
	s := NewSaver(t.TempDir())
	body, boundary := buildBody(t,
		part{field: "image", contentType: "image/png", body: "first"},
		part{field: "image", contentType: "image/png", body: "second"},
	)

	name, err := s.SaveStream(context.Background(), multipart.NewReader(body, boundary), "app")
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Join(s.Dir(), "app"))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(s.Dir(), "app", name))
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))
}

func TestSaver_SaveStream_MissingContentType(t *testing.T) {
	s := newTestSaver(t)
	body, boundary := buildBody(t, part{field: "image", body: "data"})

	_, err := s.SaveStream(context.Background(), multipart.NewReader(body, boundary), "app")
	assert.ErrorIs(t, err, apperrors.ErrUpload)
}

func TestSaver_SaveStream_MissingContentDisposition(t *testing.T) {
	s := newTestSaver(t)

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	pw, err := w.CreatePart(textproto.MIMEHeader{"Content-Type": {"image/png"}})
	require.NoError(t, err)
	_, _ = pw.Write([]byte("data"))
	require.NoError(t, w.Close())

	_, err = s.SaveStream(context.Background(), multipart.NewReader(buf, w.Boundary()), "app")
	assert.ErrorIs(t, err, apperrors.ErrUpload)
}

func TestSaver_SaveStream_Malformed(t *testing.T) {
	s := newTestSaver(t)

	_, err := s.SaveStream(context.Background(), multipart.NewReader(strings.NewReader("not a multipart body"), "xyz"), "app")
	assert.ErrorIs(t, err, apperrors.ErrUpload)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestSaver_SaveStream_TruncatedFileRemoved(t *testing.T) {
	s := newTestSaver(t)

	head := "--b\r\n" +
		"Content-Disposition: form-data; name=\"image\"; filename=\"a.png\"\r\n" +
		"Content-Type: image/png\r\n\r\n" +
		strings.Repeat("x", 64*1024)
	body := io.MultiReader(strings.NewReader(head), failingReader{})

	_, err := s.SaveStream(context.Background(), multipart.NewReader(body, "b"), "app")
	require.ErrorIs(t, err, apperrors.ErrUpload)

	entries, err := os.ReadDir(filepath.Join(s.Dir(), "app"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaver_SaveStream_CanceledContext(t *testing.T) {
	s := newTestSaver(t)
	body, boundary := buildBody(t, part{field: "image", contentType: "image/png", body: "data"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.SaveStream(ctx, multipart.NewReader(body, boundary), "app")
	assert.ErrorIs(t, err, apperrors.ErrUpload)
	assert.ErrorIs(t, err, context.Canceled)

	entries, err := os.ReadDir(filepath.Join(s.Dir(), "app"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaver_SaveStream_UnwritableRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(root, []byte("not a dir"), 0o644))

	s := NewSaver(root)
	body, boundary := buildBody(t, part{field: "image", contentType: "image/png", body: "data"})

	_, err := s.SaveStream(context.Background(), multipart.NewReader(body, boundary), "app")
	assert.ErrorIs(t, err, apperrors.ErrUpload)
}

func TestSaver_SaveStream_InvalidCategory(t *testing.T) {
	s := newTestSaver(t)

	for _, category := range []string{"", "..", "a/b", `a\b`} {
		body, boundary := buildBody(t, part{field: "image", contentType: "image/png", body: "data"})
		_, err := s.SaveStream(context.Background(), multipart.NewReader(body, boundary), category)
		assert.ErrorIs(t, err, apperrors.ErrUpload, category)
	}
}

func TestSaver_Remove(t *testing.T) {
	s := newTestSaver(t)
	body, boundary := buildBody(t, part{field: "image", contentType: "image/png", body: "data"})

	name, err := s.SaveStream(context.Background(), multipart.NewReader(body, boundary), "app")
	require.NoError(t, err)

	require.NoError(t, s.Remove("app", name))
	_, err = os.Stat(filepath.Join(s.Dir(), "app", name))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	assert.NoError(t, s.Remove("app", name))
	assert.NoError(t, s.Remove("app", ""))
	assert.ErrorIs(t, s.Remove("app", "../secret"), apperrors.ErrUpload)
}

func TestNewSaver_DefaultRoot(t *testing.T) {
	assert.Equal(t, DefaultRoot, NewSaver("").Dir())
}
