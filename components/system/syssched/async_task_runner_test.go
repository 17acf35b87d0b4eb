package syssched

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/open-control-systems/cast-hub/components/status"
)

type testAsyncTaskRunnerTask struct {
	mu        sync.Mutex
	err       error
	callCount int
}

func (t *testAsyncTaskRunnerTask) Run() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.callCount++

	return t.err
}

func (t *testAsyncTaskRunnerTask) getCallCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.callCount
}

type testAsyncTaskRunnerErrorHandler struct {
	mu   sync.Mutex
	errs []error
}

func (h *testAsyncTaskRunnerErrorHandler) HandleError(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.errs = append(h.errs, err)
}

func (h *testAsyncTaskRunnerErrorHandler) getErrorCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.errs)
}

func TestAsyncTaskRunnerRunPeriodically(t *testing.T) {
	task := &testAsyncTaskRunnerTask{}

	ctx, cancel := context.WithCancel(context.Background())

	runner := NewAsyncTaskRunner(ctx, task, nil, time.Millisecond*20)
	runner.Start()

	for task.getCallCount() < 3 {
		time.Sleep(time.Millisecond * 10)
	}

	cancel()
	require.Nil(t, runner.Close())

	callCount := task.getCallCount()
	time.Sleep(time.Millisecond * 50)
	require.Equal(t, callCount, task.getCallCount())
}

func TestAsyncTaskRunnerHandleError(t *testing.T) {
	task := &testAsyncTaskRunnerTask{err: status.StatusNoData}
	handler := &testAsyncTaskRunnerErrorHandler{}

	ctx, cancel := context.WithCancel(context.Background())

	runner := NewAsyncTaskRunner(ctx, task, handler, time.Millisecond*20)
	runner.Start()

	for handler.getErrorCount() < 2 {
		time.Sleep(time.Millisecond * 10)
	}

	cancel()
	require.Nil(t, runner.Close())

	handler.mu.Lock()
	defer handler.mu.Unlock()

	for _, err := range handler.errs {
		require.Equal(t, status.StatusNoData, err)
	}
}

func TestAsyncTaskRunnerRunImmediately(t *testing.T) {
	task := &testAsyncTaskRunnerTask{}

	ctx, cancel := context.WithCancel(context.Background())

	runner := NewAsyncTaskRunner(ctx, task, nil, time.Hour)
	runner.Start()

	for task.getCallCount() < 1 {
		time.Sleep(time.Millisecond * 10)
	}

	cancel()
	require.Nil(t, runner.Close())
	require.Equal(t, 1, task.getCallCount())
}

type testStarter struct {
	started bool
}

func (s *testStarter) Start() {
	s.started = true
}

func TestFanoutStarter(t *testing.T) {
	a := &testStarter{}
	b := &testStarter{}

	starter := &FanoutStarter{}
	starter.Add(a)
	starter.Add(b)
	starter.Start()

	require.True(t, a.started)
	require.True(t, b.started)
}

func TestAsyncTaskRunnerCloseNotStarted(t *testing.T) {
	task := &testAsyncTaskRunnerTask{}

	runner := NewAsyncTaskRunner(context.Background(), task, nil, time.Millisecond*20)
	require.Nil(t, runner.Close())
	require.Equal(t, 0, task.getCallCount())
}
