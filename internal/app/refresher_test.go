package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type countingSource struct {
	calls atomic.Int32
	err   error
}

func (s *countingSource) RefreshCatalog(ctx context.Context) error {
	s.calls.Add(1)
	return s.err
}

func TestCatalogRefresherRunsImmediatelyAndPeriodically(t *testing.T) {
	source := &countingSource{err: errors.New("backend down")}
	r := NewCatalogRefresher(source, 10*time.Millisecond, zap.NewNop())

	r.Start(context.Background())
	assert.Eventually(t, func() bool { return source.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)

	r.Stop()
	r.Stop()
}

func TestCatalogRefresherWithoutInterval(t *testing.T) {
	source := &countingSource{}
	r := NewCatalogRefresher(source, 0, zap.NewNop())

	r.Start(context.Background())
	r.Stop()

	assert.Equal(t, int32(1), source.calls.Load())
}

func TestCatalogRefresherContextCancel(t *testing.T) {
	source := &countingSource{}
	r := NewCatalogRefresher(source, time.Hour, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	r.Start(ctx)
	cancel()

	select {
	case <-r.done:
	case <-time.After(time.Second):
		t.Fatal("refresher did not stop after context cancel")
	}
}
