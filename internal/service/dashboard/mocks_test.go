package dashboard

import (
	"context"
	"sync"
	"time"
)

var _ kolRepo = &kolRepoMock{}

type kolRepoMock struct {
	CountFunc                 func(ctx context.Context) (int, error)
	CountCreatedBeforeFunc    func(ctx context.Context, cutoff time.Time) (int, error)
	AvgLevelFunc              func(ctx context.Context) (float64, error)
	AvgLevelCreatedBeforeFunc func(ctx context.Context, cutoff time.Time) (float64, error)
	LevelHistogramFunc        func(ctx context.Context) (map[int]int, error)

	calls struct {
		CountCreatedBefore []struct {
			Cutoff time.Time
		}
		AvgLevelCreatedBefore []struct {
			Cutoff time.Time
		}
	}
	lock sync.RWMutex
}

func (mock *kolRepoMock) Count(ctx context.Context) (int, error) {
	if mock.CountFunc == nil {
		panic("kolRepoMock.CountFunc: method is nil but kolRepo.Count was just called")
	}
	return mock.CountFunc(ctx)
}

func (mock *kolRepoMock) CountCreatedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	if mock.CountCreatedBeforeFunc == nil {
		panic("kolRepoMock.CountCreatedBeforeFunc: method is nil but kolRepo.CountCreatedBefore was just called")
	}
	mock.lock.Lock()
	mock.calls.CountCreatedBefore = append(mock.calls.CountCreatedBefore, struct{ Cutoff time.Time }{Cutoff: cutoff})
	mock.lock.Unlock()
	return mock.CountCreatedBeforeFunc(ctx, cutoff)
}

func (mock *kolRepoMock) CountCreatedBeforeCalls() []struct{ Cutoff time.Time } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CountCreatedBefore
}

func (mock *kolRepoMock) AvgLevel(ctx context.Context) (float64, error) {
	if mock.AvgLevelFunc == nil {
		panic("kolRepoMock.AvgLevelFunc: method is nil but kolRepo.AvgLevel was just called")
	}
	return mock.AvgLevelFunc(ctx)
}

func (mock *kolRepoMock) AvgLevelCreatedBefore(ctx context.Context, cutoff time.Time) (float64, error) {
	if mock.AvgLevelCreatedBeforeFunc == nil {
		panic("kolRepoMock.AvgLevelCreatedBeforeFunc: method is nil but kolRepo.AvgLevelCreatedBefore was just called")
	}
	mock.lock.Lock()
	mock.calls.AvgLevelCreatedBefore = append(mock.calls.AvgLevelCreatedBefore, struct{ Cutoff time.Time }{Cutoff: cutoff})
	mock.lock.Unlock()
	return mock.AvgLevelCreatedBeforeFunc(ctx, cutoff)
}

func (mock *kolRepoMock) LevelHistogram(ctx context.Context) (map[int]int, error) {
	if mock.LevelHistogramFunc == nil {
		panic("kolRepoMock.LevelHistogramFunc: method is nil but kolRepo.LevelHistogram was just called")
	}
	return mock.LevelHistogramFunc(ctx)
}

var _ visitRepo = &visitRepoMock{}

type visitRepoMock struct {
	CountScheduledFunc                  func(ctx context.Context) (int, error)
	CountScheduledCreatedBeforeFunc     func(ctx context.Context, cutoff time.Time) (int, error)
	CountCompletedWithReportBetweenFunc func(ctx context.Context, start, end time.Time) (int, error)

	calls struct {
		CountCompletedWithReportBetween []struct {
			Start time.Time
			End   time.Time
		}
	}
	lock sync.RWMutex
}

func (mock *visitRepoMock) CountScheduled(ctx context.Context) (int, error) {
	if mock.CountScheduledFunc == nil {
		panic("visitRepoMock.CountScheduledFunc: method is nil but visitRepo.CountScheduled was just called")
	}
	return mock.CountScheduledFunc(ctx)
}

func (mock *visitRepoMock) CountScheduledCreatedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	if mock.CountScheduledCreatedBeforeFunc == nil {
		panic("visitRepoMock.CountScheduledCreatedBeforeFunc: method is nil but visitRepo.CountScheduledCreatedBefore was just called")
	}
	return mock.CountScheduledCreatedBeforeFunc(ctx, cutoff)
}

func (mock *visitRepoMock) CountCompletedWithReportBetween(ctx context.Context, start, end time.Time) (int, error) {
	if mock.CountCompletedWithReportBetweenFunc == nil {
		panic("visitRepoMock.CountCompletedWithReportBetweenFunc: method is nil but visitRepo.CountCompletedWithReportBetween was just called")
	}
	mock.lock.Lock()
	mock.calls.CountCompletedWithReportBetween = append(mock.calls.CountCompletedWithReportBetween, struct {
		Start time.Time
		End   time.Time
	}{Start: start, End: end})
	mock.lock.Unlock()
	return mock.CountCompletedWithReportBetweenFunc(ctx, start, end)
}

func (mock *visitRepoMock) CountCompletedWithReportBetweenCalls() []struct {
	Start time.Time
	End   time.Time
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CountCompletedWithReportBetween
}
