package facades

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsCacheFacade_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := NewMockStatsSource(ctrl)
	cache := NewMockCache(ctrl)
	facade := NewStatsCacheFacade(source, cache, 30*time.Second)

	userID := uuid.New()
	ctx := context.Background()

	cache.EXPECT().Get(ctx, "stats:"+userID.String()).Return(`{"applied":3}`, nil)

	counts, err := facade.CountByStatus(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"applied": 3}, counts)
}

func TestStatsCacheFacade_CacheMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := NewMockStatsSource(ctrl)
	cache := NewMockCache(ctrl)
	facade := NewStatsCacheFacade(source, cache, 30*time.Second)

	userID := uuid.New()
	ctx := context.Background()
	key := "stats:" + userID.String()

	cache.EXPECT().Get(ctx, key).Return("", ErrCacheMiss)
	source.EXPECT().CountByStatus(ctx, userID).Return(map[string]int64{"applied": 2, "offer": 1}, nil)
	cache.EXPECT().Set(ctx, key, gomock.Any(), 30*time.Second).Return(nil)

	counts, err := facade.CountByStatus(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"applied": 2, "offer": 1}, counts)
}

func TestStatsCacheFacade_CacheErrorsDegrade(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := NewMockStatsSource(ctrl)
	cache := NewMockCache(ctrl)
	facade := NewStatsCacheFacade(source, cache, 30*time.Second)

	userID := uuid.New()
	ctx := context.Background()

	// Broken cache on both sides must not fail the request.
	cache.EXPECT().Get(ctx, gomock.Any()).Return("", errors.New("redis down"))
	source.EXPECT().CountByStatus(ctx, userID).Return(map[string]int64{"applied": 1}, nil)
	cache.EXPECT().Set(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	counts, err := facade.CountByStatus(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"applied": 1}, counts)
}

func TestStatsCacheFacade_CorruptCacheEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := NewMockStatsSource(ctrl)
	cache := NewMockCache(ctrl)
	facade := NewStatsCacheFacade(source, cache, 30*time.Second)

	userID := uuid.New()
	ctx := context.Background()

	cache.EXPECT().Get(ctx, gomock.Any()).Return("not json", nil)
	source.EXPECT().CountByStatus(ctx, userID).Return(map[string]int64{"applied": 5}, nil)
	cache.EXPECT().Set(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	counts, err := facade.CountByStatus(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"applied": 5}, counts)
}

func TestStatsCacheFacade_SourceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := NewMockStatsSource(ctrl)
	cache := NewMockCache(ctrl)
	facade := NewStatsCacheFacade(source, cache, 30*time.Second)

	userID := uuid.New()
	ctx := context.Background()

	dbErr := errors.New("db down")
	cache.EXPECT().Get(ctx, gomock.Any()).Return("", ErrCacheMiss)
	source.EXPECT().CountByStatus(ctx, userID).Return(nil, dbErr)

	counts, err := facade.CountByStatus(ctx, userID)
	assert.ErrorIs(t, err, dbErr)
	assert.Nil(t, counts)
}
