package cachemanager_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/vimwizard/internal/cachemanager"
	"github.com/zjrosen/vimwizard/internal/mocks"
)

type levelRequest struct {
	Index int
}

type cachedLevel struct {
	ID    int
	Title string
}

func produce(calls *int) func(context.Context, levelRequest) (cachedLevel, error) {
	return func(_ context.Context, in levelRequest) (cachedLevel, error) {
		*calls++
		return cachedLevel{ID: in.Index + 1}, nil
	}
}

func TestReadThroughCache_Bypass(t *testing.T) {
	managerMock := mocks.NewMockCacheManager[string, cachedLevel](t)
	calls := 0
	rtc := cachemanager.NewReadThroughCache[string, cachedLevel, levelRequest](managerMock, produce(&calls), true)

	got, err := rtc.Get(context.Background(), "level:3", levelRequest{Index: 3}, time.Minute)
	require.NoError(t, err)
	require.Equal(t, cachedLevel{ID: 4}, got)

	_, err = rtc.GetWithRefresh(context.Background(), "level:3", levelRequest{Index: 3}, time.Minute)
	require.NoError(t, err)
	require.Equal(t, 2, calls)
}

func TestReadThroughCache_Hit(t *testing.T) {
	managerMock := mocks.NewMockCacheManager[string, cachedLevel](t)
	managerMock.EXPECT().Get(mock.Anything, "level:3").Return(cachedLevel{ID: 4, Title: "cached"}, true)
	calls := 0
	rtc := cachemanager.NewReadThroughCache[string, cachedLevel, levelRequest](managerMock, produce(&calls), false)

	got, err := rtc.Get(context.Background(), "level:3", levelRequest{Index: 3}, time.Minute)
	require.NoError(t, err)
	require.Equal(t, "cached", got.Title)
	require.Zero(t, calls)
}

func TestReadThroughCache_MissStoresValue(t *testing.T) {
	managerMock := mocks.NewMockCacheManager[string, cachedLevel](t)
	managerMock.EXPECT().Get(mock.Anything, "level:3").Return(cachedLevel{}, false)
	managerMock.EXPECT().Set(mock.Anything, "level:3", cachedLevel{ID: 4}, time.Minute).Return()
	calls := 0
	rtc := cachemanager.NewReadThroughCache[string, cachedLevel, levelRequest](managerMock, produce(&calls), false)

	got, err := rtc.Get(context.Background(), "level:3", levelRequest{Index: 3}, time.Minute)
	require.NoError(t, err)
	require.Equal(t, cachedLevel{ID: 4}, got)
	require.Equal(t, 1, calls)
}

func TestReadThroughCache_ErrorIsNotCached(t *testing.T) {
	managerMock := mocks.NewMockCacheManager[string, cachedLevel](t)
	managerMock.EXPECT().Get(mock.Anything, "level:3").Return(cachedLevel{}, false)
	rtc := cachemanager.NewReadThroughCache[string, cachedLevel, levelRequest](
		managerMock,
		func(context.Context, levelRequest) (cachedLevel, error) {
			return cachedLevel{}, errors.New("generator offline")
		},
		false,
	)

	_, err := rtc.Get(context.Background(), "level:3", levelRequest{Index: 3}, time.Minute)
	require.EqualError(t, err, "generator offline")
}

func TestReadThroughCache_GetWithRefresh(t *testing.T) {
	managerMock := mocks.NewMockCacheManager[string, cachedLevel](t)
	managerMock.EXPECT().GetWithRefresh(mock.Anything, "level:3", time.Minute).Return(cachedLevel{ID: 4}, true)
	calls := 0
	rtc := cachemanager.NewReadThroughCache[string, cachedLevel, levelRequest](managerMock, produce(&calls), false)

	got, err := rtc.GetWithRefresh(context.Background(), "level:3", levelRequest{Index: 3}, time.Minute)
	require.NoError(t, err)
	require.Equal(t, 4, got.ID)
	require.Zero(t, calls)
}

func TestReadThroughCache_Invalidate(t *testing.T) {
	cache := cachemanager.NewInMemoryCacheManager[string, cachedLevel]("levels", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval)
	calls := 0
	rtc := cachemanager.NewReadThroughCache[string, cachedLevel, levelRequest](cache, produce(&calls), false)

	_, _ = rtc.Get(context.Background(), "level:3", levelRequest{Index: 3}, time.Minute)
	_, _ = rtc.Get(context.Background(), "level:3", levelRequest{Index: 3}, time.Minute)
	require.Equal(t, 1, calls)

	require.NoError(t, rtc.Invalidate(context.Background()))
	_, _ = rtc.Get(context.Background(), "level:3", levelRequest{Index: 3}, time.Minute)
	require.Equal(t, 2, calls)
}
