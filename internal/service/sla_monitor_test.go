package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/quyennt2020/device-repair-management-system-sub005/config"
	"github.com/quyennt2020/device-repair-management-system-sub005/internal/domain/model"
	"github.com/quyennt2020/device-repair-management-system-sub005/internal/mocks"
)

// newMonitor creates a monitor wired to a mock evaluator with a fast tick for
// cadence tests.
func newMonitor(t *testing.T, enabled bool) (*mocks.MockSLAEvaluator, *SLAMonitorService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	evaluator := mocks.NewMockSLAEvaluator(ctrl)
	monitor, err := NewSLAMonitorService(SLAMonitorServiceOptions{
		Evaluator: evaluator,
		Config:    config.SLAMonitorConfig{CheckIntervalMinutes: 5, EscalationConcurrency: 2},
		Enabled:   enabled,
	})
	require.NoError(t, err)
	monitor.interval = 10 * time.Millisecond

	t.Cleanup(monitor.Stop)
	return evaluator, monitor
}

func TestSLAMonitorService_RequiresEvaluator(t *testing.T) {
	t.Parallel()
	_, err := NewSLAMonitorService(SLAMonitorServiceOptions{})
	require.Error(t, err)
}

func TestSLAMonitorService_StopBeforeStartIsSafe(t *testing.T) {
	t.Parallel()
	_, monitor := newMonitor(t, true)

	// Stop must be idempotent and safe before Start.
	monitor.Stop()
	monitor.Stop()

	assert.False(t, monitor.Status().Running)
}

func TestSLAMonitorService_StartRunsImmediately(t *testing.T) {
	t.Parallel()
	evaluator, monitor := newMonitor(t, true)
	monitor.interval = time.Hour // only the startup cycle can fire

	evaluator.EXPECT().
		Evaluate(gomock.Any()).
		Return([]model.CaseSLAResult{{CaseID: "case-1", Status: model.SLAStatusOnTrack}}, nil).
		Times(1)

	require.NoError(t, monitor.Start(context.Background()))
	assert.True(t, monitor.Status().Running)

	require.Eventually(t, func() bool {
		return monitor.LastRun() != nil
	}, 2*time.Second, 5*time.Millisecond)

	last := monitor.LastRun()
	assert.Equal(t, 1, last.Checked)
	assert.Equal(t, 1, last.OnTrack)
}

func TestSLAMonitorService_StartWhileRunningIsNoop(t *testing.T) {
	t.Parallel()
	evaluator, monitor := newMonitor(t, true)
	monitor.interval = time.Hour

	evaluator.EXPECT().Evaluate(gomock.Any()).Return(nil, nil).Times(1)

	ctx := context.Background()
	require.NoError(t, monitor.Start(ctx))
	require.NoError(t, monitor.Start(ctx))

	require.Eventually(t, func() bool {
		return monitor.LastRun() != nil
	}, 2*time.Second, 5*time.Millisecond)
	assert.True(t, monitor.Status().Running)
}

func TestSLAMonitorService_DisabledStartIsNoop(t *testing.T) {
	t.Parallel()
	_, monitor := newMonitor(t, false)

	require.NoError(t, monitor.Start(context.Background()))

	status := monitor.Status()
	assert.False(t, status.Enabled)
	assert.False(t, status.Running)
	assert.Nil(t, monitor.LastRun())
}

func TestSLAMonitorService_TicksAtInterval(t *testing.T) {
	t.Parallel()
	evaluator, monitor := newMonitor(t, true)

	evaluator.EXPECT().
		Evaluate(gomock.Any()).
		Return([]model.CaseSLAResult{}, nil).
		MinTimes(3)

	require.NoError(t, monitor.Start(context.Background()))

	// Startup cycle plus at least two timer cycles at the 10ms interval.
	require.Eventually(t, func() bool {
		return monitor.LastRun() != nil
	}, 2*time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)

	monitor.Stop()
	assert.False(t, monitor.Status().Running)
}

func TestSLAMonitorService_TimerErrorsAreContained(t *testing.T) {
	t.Parallel()
	evaluator, monitor := newMonitor(t, true)

	boom := errors.New("database unreachable")
	gomock.InOrder(
		evaluator.EXPECT().Evaluate(gomock.Any()).Return(nil, boom).Times(1),
		evaluator.EXPECT().
			Evaluate(gomock.Any()).
			Return([]model.CaseSLAResult{{CaseID: "case-1", Status: model.SLAStatusBreached}}, nil).
			MinTimes(1),
	)

	require.NoError(t, monitor.Start(context.Background()))

	// A failed cycle must not disarm the ticker; a later cycle succeeds.
	require.Eventually(t, func() bool {
		last := monitor.LastRun()
		return last != nil && last.Breached == 1
	}, 2*time.Second, 5*time.Millisecond)
	assert.True(t, monitor.Status().Running)
}

func TestSLAMonitorService_RunNowReturnsReport(t *testing.T) {
	t.Parallel()
	evaluator, monitor := newMonitor(t, true)

	results := []model.CaseSLAResult{
		{CaseID: "case-1", Status: model.SLAStatusOnTrack},
		{CaseID: "case-2", Status: model.SLAStatusBreached, ResponseBreached: true, Escalated: true},
	}
	evaluator.EXPECT().Evaluate(gomock.Any()).Return(results, nil).Times(1)

	report, err := monitor.RunNow(context.Background())
	require.NoError(t, err)
	assert.Equal(t, results, report.Results)
	assert.Equal(t, 2, report.Summary.Checked)
	assert.Equal(t, 1, report.Summary.Breached)
	assert.Equal(t, 1, report.Summary.Escalated)

	// Manual runs update the last-run record too.
	last := monitor.LastRun()
	require.NotNil(t, last)
	assert.Equal(t, report.Summary, *last)
}

func TestSLAMonitorService_RunNowCachesReport(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	evaluator := mocks.NewMockSLAEvaluator(ctrl)
	cache := mocks.NewMockCacheRepository(ctrl)
	monitor, err := NewSLAMonitorService(SLAMonitorServiceOptions{
		Evaluator: evaluator,
		Config:    config.SLAMonitorConfig{CheckIntervalMinutes: 5, ReportTTL: time.Hour},
		Enabled:   true,
		Cache:     cache,
	})
	require.NoError(t, err)

	evaluator.EXPECT().Evaluate(gomock.Any()).Return(nil, nil).Times(1)
	cache.EXPECT().Set(gomock.Any(), monitorReportCacheKey, gomock.Any(), time.Hour).Return(nil).Times(1)

	_, err = monitor.RunNow(context.Background())
	require.NoError(t, err)
}

func TestSLAMonitorService_RunNowPropagatesFailure(t *testing.T) {
	t.Parallel()
	evaluator, monitor := newMonitor(t, true)

	boom := errors.New("evaluation failed")
	evaluator.EXPECT().Evaluate(gomock.Any()).Return(nil, boom).Times(1)

	report, err := monitor.RunNow(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, boom)
	assert.Nil(t, report)
	assert.Nil(t, monitor.LastRun())
}

func TestSLAMonitorService_StatusReflectsLifecycle(t *testing.T) {
	t.Parallel()
	evaluator, monitor := newMonitor(t, true)
	monitor.interval = time.Hour

	evaluator.EXPECT().Evaluate(gomock.Any()).Return(nil, nil).AnyTimes()

	status := monitor.Status()
	assert.True(t, status.Enabled)
	assert.False(t, status.Running)
	assert.Equal(t, 5, status.IntervalMinutes)

	require.NoError(t, monitor.Start(context.Background()))
	assert.True(t, monitor.Status().Running)

	monitor.Stop()
	assert.False(t, monitor.Status().Running)
}
