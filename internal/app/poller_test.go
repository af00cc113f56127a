package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/bayaz-archive/bayaz/internal/remote"
	"github.com/bayaz-archive/bayaz/internal/state"
)

func TestCalculateBackoff(t *testing.T) {
	baseInterval := 60 * time.Second

	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"zero failures", 0, 60 * time.Second},
		{"negative failures", -1, 60 * time.Second},
		{"one failure", 1, 2 * time.Minute},
		{"two failures", 2, 4 * time.Minute},
		{"three failures", 3, 8 * time.Minute},
		{"four failures capped", 4, 10 * time.Minute}, // Would be 16m, capped to 10m
		{"many failures capped", 40, 10 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateBackoff(tt.failures, baseInterval)
			if got != tt.want {
				t.Errorf("calculateBackoff(%d, %v) = %v, want %v", tt.failures, baseInterval, got, tt.want)
			}
		})
	}
}

func TestCalculateBackoff_MaxCap(t *testing.T) {
	baseInterval := 2 * time.Second
	for failures := 0; failures <= 64; failures++ {
		got := calculateBackoff(failures, baseInterval)
		if got > maxBackoff {
			t.Errorf("calculateBackoff(%d, %v) = %v, exceeds maxBackoff %v", failures, baseInterval, got, maxBackoff)
		}
	}
}

type fakeTrending struct {
	calls atomic.Int32
	err   error
}

func (f *fakeTrending) FetchTrending(context.Context) (remote.Trending, error) {
	f.calls.Add(1)
	if f.err != nil {
		return remote.Trending{}, f.err
	}
	return remote.Trending{
		Songs:   []remote.TopSong{{SongID: 1, Title: "Dil Dil Pakistan", Likes: 12}},
		Writers: []remote.TopWriter{{WriterID: 1, Name: "Nisar Nasik", TotalLikes: 40}},
	}, nil
}

func TestStartPollerUpdatesStore(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	store := &state.Store{}
	fetcher := &fakeTrending{}

	done := StartPoller(ctx, store, fetcher, time.Hour, nil)
	require.Eventually(t, func() bool { return store.Snapshot().HasTrending }, 2*time.Second, 10*time.Millisecond)

	snap := store.Snapshot()
	require.Len(t, snap.Trending.Songs, 1)
	require.Equal(t, "Dil Dil Pakistan", snap.Trending.Songs[0].Title)
	require.NoError(t, snap.LastError)

	cancel()
	<-done
	require.EqualValues(t, 1, fetcher.calls.Load())
}

func TestStartPollerRecordsFailures(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	store := &state.Store{}
	fetcher := &fakeTrending{err: errors.New("connection refused")}

	done := StartPoller(ctx, store, fetcher, time.Hour, nil)
	require.Eventually(t, func() bool { return store.Snapshot().ConsecutiveFailures == 1 }, 2*time.Second, 10*time.Millisecond)
	require.False(t, store.Snapshot().HasTrending)
	require.EqualError(t, store.Snapshot().LastError, "connection refused")

	cancel()
	<-done
}
