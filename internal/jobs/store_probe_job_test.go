package jobs

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	err   error
	calls int
}

func (s *stubPinger) Ping(_ context.Context) error {
	s.calls++
	return s.err
}

func Test_StoreProbeJob_ProbesImmediatelyOnStart(t *testing.T) {
	// Arrange
	pinger := &stubPinger{}
	job := NewStoreProbeJob(pinger, slog.Default())

	// Act
	err := job.Start()
	defer job.Stop()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, pinger.calls)
	assert.NoError(t, job.LastResult())
}

func Test_StoreProbeJob_CachesProbeFailure(t *testing.T) {
	// Arrange
	pinger := &stubPinger{err: errors.New("store unreachable")}
	job := NewStoreProbeJob(pinger, slog.Default())

	// Act
	require.NoError(t, job.Start())
	defer job.Stop()

	// Assert
	assert.EqualError(t, job.LastResult(), "store unreachable")
}

func Test_StoreProbeJob_HealthyBeforeFirstProbe(t *testing.T) {
	// Arrange
	job := NewStoreProbeJob(&stubPinger{}, slog.Default())

	// Assert
	assert.NoError(t, job.LastResult())
}
