package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Ycine_Go/internal/domain"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) ListVideos(ctx context.Context) ([]domain.Video, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Video), args.Error(1)
}

func (m *mockRepo) GetVideo(ctx context.Context, id string) (*domain.Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Video), args.Error(1)
}

func TestGetVideo_CachesHits(t *testing.T) {
	repo := new(mockRepo)
	svc := NewService(repo, CacheConfig{Size: 10, TTL: time.Minute})
	ctx := context.Background()

	vid := DefaultVideos()[0]
	repo.On("GetVideo", ctx, "VID1").Return(&vid, nil).Once()

	first, err := svc.GetVideo(ctx, "VID1")
	require.NoError(t, err)
	second, err := svc.GetVideo(ctx, "VID1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	repo.AssertNumberOfCalls(t, "GetVideo", 1)

	stats := svc.GetCacheStats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
}

func TestGetVideo_NotFoundIsNotCached(t *testing.T) {
	repo := new(mockRepo)
	svc := NewService(repo, CacheConfig{Size: 10, TTL: time.Minute})
	ctx := context.Background()

	repo.On("GetVideo", ctx, "VID9").Return(nil, domain.ErrVideoNotFound).Twice()

	_, err := svc.GetVideo(ctx, "VID9")
	assert.ErrorIs(t, err, domain.ErrVideoNotFound)
	_, err = svc.GetVideo(ctx, "VID9")
	assert.ErrorIs(t, err, domain.ErrVideoNotFound)

	repo.AssertExpectations(t)
}

func TestListVideos_WarmsVideoEntries(t *testing.T) {
	repo := new(mockRepo)
	svc := NewService(repo, CacheConfig{Size: 10, TTL: time.Minute})
	ctx := context.Background()

	repo.On("ListVideos", ctx).Return(DefaultVideos(), nil).Once()

	videos, err := svc.ListVideos(ctx)
	require.NoError(t, err)
	assert.Len(t, videos, 3)

	again, err := svc.ListVideos(ctx)
	require.NoError(t, err)
	assert.Equal(t, videos, again)

	v, err := svc.GetVideo(ctx, "VID2")
	require.NoError(t, err)
	assert.Equal(t, "800", v.Value.String())

	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "GetVideo", mock.Anything, mock.Anything)
}

func TestInvalidateCache(t *testing.T) {
	repo := new(mockRepo)
	svc := NewService(repo, CacheConfig{Size: 10, TTL: time.Minute})
	ctx := context.Background()

	repo.On("ListVideos", ctx).Return(DefaultVideos(), nil).Twice()

	_, err := svc.ListVideos(ctx)
	require.NoError(t, err)
	svc.InvalidateCache()
	assert.Equal(t, 0, svc.GetCacheStats().Size)
	_, err = svc.ListVideos(ctx)
	require.NoError(t, err)

	repo.AssertExpectations(t)
}

func TestDefaultVideos(t *testing.T) {
	videos := DefaultVideos()
	require.Len(t, videos, 3)

	want := map[string]string{"VID1": "1000", "VID2": "800", "VID3": "600"}
	for _, v := range videos {
		assert.Equal(t, want[v.ID], v.Value.String())
		assert.NotEmpty(t, v.Src)
	}
}
