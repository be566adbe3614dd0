package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunOnce(t *testing.T) {
	s := NewScheduler()

	var ran, failed atomic.Int32
	s.AddJob("counts", time.Hour, func(context.Context) error {
		ran.Add(1)
		return nil
	})
	s.AddJob("fails", time.Hour, func(context.Context) error {
		failed.Add(1)
		return errors.New("boom")
	})

	s.RunOnce(context.Background())

	// A failing job never stops the others.
	assert.Equal(t, int32(1), ran.Load())
	assert.Equal(t, int32(1), failed.Load())
}

func TestScheduler_StartRunsImmediately(t *testing.T) {
	s := NewScheduler()

	done := make(chan struct{})
	s.AddJob("immediate", time.Hour, func(context.Context) error {
		close(done)
		return nil
	})

	s.Start()
	defer s.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		require.Fail(t, "job did not run at startup")
	}
}

func TestScheduler_StopWaitsForJobs(t *testing.T) {
	s := NewScheduler()

	var finished atomic.Bool
	s.AddJob("slow", time.Hour, func(context.Context) error {
		time.Sleep(50 * time.Millisecond)
		finished.Store(true)
		return nil
	})

	s.Start()
	s.Stop()

	assert.True(t, finished.Load(), "Stop returned before the in-flight run finished")
}
