package services_test

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-app-catalog/internal/apperrors"
	"github.com/sbilibin2017/gw-app-catalog/internal/models"
	"github.com/sbilibin2017/gw-app-catalog/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type appMocks struct {
	reader *services.MockAppReader
	writer *services.MockAppWriter
	cache  *services.MockAppCache
	images *services.MockImageSaver
	kafka  *services.MockKafkaWriter
}

func newAppMocks(ctrl *gomock.Controller) appMocks {
	return appMocks{
		reader: services.NewMockAppReader(ctrl),
		writer: services.NewMockAppWriter(ctrl),
		cache:  services.NewMockAppCache(ctrl),
		images: services.NewMockImageSaver(ctrl),
		kafka:  services.NewMockKafkaWriter(ctrl),
	}
}

func emptyMultipart(t *testing.T) *multipart.Reader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.Close())
	return multipart.NewReader(&buf, w.Boundary())
}

func TestAppService_Get(t *testing.T) {
	id := uuid.New()
	app := &models.App{ID: id, Name: "demo"}

	t.Run("cache hit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newAppMocks(ctrl)
		svc := services.NewAppService(m.reader, m.writer, m.cache, m.images, nil)

		m.cache.EXPECT().Get(gomock.Any(), id).Return(app, nil)

		got, err := svc.Get(context.Background(), id)
		assert.NoError(t, err)
		assert.Equal(t, app, got)
	})

	t.Run("cache miss falls back to store and warms cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newAppMocks(ctrl)
		svc := services.NewAppService(m.reader, m.writer, m.cache, m.images, nil)

		gomock.InOrder(
			m.cache.EXPECT().Get(gomock.Any(), id).Return(nil, errors.New("cache miss")),
			m.reader.EXPECT().GetByID(gomock.Any(), id).Return(app, nil),
			m.cache.EXPECT().Set(gomock.Any(), app).Return(errors.New("redis down")),
		)

		got, err := svc.Get(context.Background(), id)
		assert.NoError(t, err)
		assert.Equal(t, app, got)
	})

	t.Run("not found without cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newAppMocks(ctrl)
		svc := services.NewAppService(m.reader, m.writer, nil, m.images, nil)

		m.reader.EXPECT().GetByID(gomock.Any(), id).Return(nil, apperrors.ErrNotFound)

		got, err := svc.Get(context.Background(), id)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.Nil(t, got)
	})
}

func TestAppService_ListByOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newAppMocks(ctrl)
	svc := services.NewAppService(m.reader, m.writer, nil, m.images, nil)

	owner := uuid.New()
	apps := []models.App{{ID: uuid.New(), UserID: owner}, {ID: uuid.New(), UserID: owner}}

	m.reader.EXPECT().GetByUserID(gomock.Any(), owner).Return(apps, nil)
	got, err := svc.ListByOwner(context.Background(), owner)
	assert.NoError(t, err)
	assert.Len(t, got, 2)

	m.reader.EXPECT().GetByUserID(gomock.Any(), owner).Return(nil, apperrors.ErrDatabase)
	_, err = svc.ListByOwner(context.Background(), owner)
	assert.ErrorIs(t, err, apperrors.ErrDatabase)
}

func TestAppService_Create(t *testing.T) {
	owner := uuid.New()

	t.Run("with image", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newAppMocks(ctrl)
		svc := services.NewAppService(m.reader, m.writer, m.cache, m.images, m.kafka)

		saved := &models.App{ID: uuid.New(), Name: "demo", ImageName: "abc.png", UserID: owner}

		m.images.EXPECT().SaveStream(gomock.Any(), gomock.Any(), services.AppImageCategory).Return("abc.png", nil)
		m.writer.EXPECT().
			Save(gomock.Any(), "demo", "a demo", gomock.Any(), "abc.png", owner).
			DoAndReturn(func(_ context.Context, _, _ string, githubURL *string, _ string, _ uuid.UUID) (*models.App, error) {
				require.NotNil(t, githubURL)
				assert.Equal(t, "https://github.com/alice/demo", *githubURL)
				return saved, nil
			})
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
		m.cache.EXPECT().Set(gomock.Any(), saved).Return(nil)

		input := models.NewApp{Name: " demo ", Description: "a demo", GithubURL: "https://github.com/alice/demo"}
		got, err := svc.Create(context.Background(), owner, input, emptyMultipart(t))
		assert.NoError(t, err)
		assert.Equal(t, saved, got)
	})

	t.Run("without body stores no image and no url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newAppMocks(ctrl)
		svc := services.NewAppService(m.reader, m.writer, nil, m.images, nil)

		saved := &models.App{ID: uuid.New(), Name: "demo", UserID: owner}
		m.writer.EXPECT().Save(gomock.Any(), "demo", "", (*string)(nil), "", owner).Return(saved, nil)

		got, err := svc.Create(context.Background(), owner, models.NewApp{Name: "demo"}, nil)
		assert.NoError(t, err)
		assert.Equal(t, saved, got)
	})

	t.Run("validation errors do not touch the stream", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newAppMocks(ctrl)
		svc := services.NewAppService(m.reader, m.writer, nil, m.images, nil)

		for _, input := range []models.NewApp{
			{Name: "   "},
			{Name: strings.Repeat("a", 256)},
			{Name: "demo", GithubURL: "github.com/alice/demo"},
			{Name: "demo", GithubURL: "https://github.com/" + strings.Repeat("a", 300)},
		} {
			_, err := svc.Create(context.Background(), owner, input, emptyMultipart(t))
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		}
	})

	t.Run("upload failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newAppMocks(ctrl)
		svc := services.NewAppService(m.reader, m.writer, nil, m.images, nil)

		m.images.EXPECT().SaveStream(gomock.Any(), gomock.Any(), services.AppImageCategory).Return("", apperrors.ErrUpload)

		_, err := svc.Create(context.Background(), owner, models.NewApp{Name: "demo"}, emptyMultipart(t))
		assert.ErrorIs(t, err, apperrors.ErrUpload)
	})

	t.Run("save failure removes image", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newAppMocks(ctrl)
		svc := services.NewAppService(m.reader, m.writer, m.cache, m.images, m.kafka)

		gomock.InOrder(
			m.images.EXPECT().SaveStream(gomock.Any(), gomock.Any(), services.AppImageCategory).Return("abc.png", nil),
			m.writer.EXPECT().Save(gomock.Any(), "demo", "", gomock.Any(), "abc.png", owner).Return(nil, apperrors.ErrDatabase),
			m.images.EXPECT().Remove(services.AppImageCategory, "abc.png").Return(nil),
		)

		got, err := svc.Create(context.Background(), owner, models.NewApp{Name: "demo"}, emptyMultipart(t))
		assert.ErrorIs(t, err, apperrors.ErrDatabase)
		assert.Nil(t, got)
	})
}
