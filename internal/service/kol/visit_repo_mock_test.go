package kol

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/medfield/msl-backend/internal/domain"
)

var _ visitRepo = &visitRepoMock{}

type visitRepoMock struct {
	LastCompletedWithReportFunc func(ctx context.Context, kolID uuid.UUID) (*domain.Visit, error)
	NextScheduledFunc           func(ctx context.Context, kolID uuid.UUID, from time.Time) (*domain.Visit, error)
	DeleteByKOLFunc             func(ctx context.Context, kolID uuid.UUID) (int, error)
	UpdateKOLSnapshotFunc       func(ctx context.Context, kolID uuid.UUID, name, specialty string) error

	calls struct {
		LastCompletedWithReport []struct {
			KOLID uuid.UUID
		}
		NextScheduled []struct {
			KOLID uuid.UUID
			From  time.Time
		}
		DeleteByKOL []struct {
			KOLID uuid.UUID
		}
		UpdateKOLSnapshot []struct {
			KOLID     uuid.UUID
			Name      string
			Specialty string
		}
	}
	lock sync.RWMutex
}

func (mock *visitRepoMock) LastCompletedWithReport(ctx context.Context, kolID uuid.UUID) (*domain.Visit, error) {
	if mock.LastCompletedWithReportFunc == nil {
		panic("visitRepoMock.LastCompletedWithReportFunc: method is nil but visitRepo.LastCompletedWithReport was just called")
	}
	mock.lock.Lock()
	mock.calls.LastCompletedWithReport = append(mock.calls.LastCompletedWithReport, struct{ KOLID uuid.UUID }{KOLID: kolID})
	mock.lock.Unlock()
	return mock.LastCompletedWithReportFunc(ctx, kolID)
}

func (mock *visitRepoMock) LastCompletedWithReportCalls() []struct{ KOLID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.LastCompletedWithReport
}

func (mock *visitRepoMock) NextScheduled(ctx context.Context, kolID uuid.UUID, from time.Time) (*domain.Visit, error) {
	if mock.NextScheduledFunc == nil {
		panic("visitRepoMock.NextScheduledFunc: method is nil but visitRepo.NextScheduled was just called")
	}
	mock.lock.Lock()
	mock.calls.NextScheduled = append(mock.calls.NextScheduled, struct {
		KOLID uuid.UUID
		From  time.Time
	}{KOLID: kolID, From: from})
	mock.lock.Unlock()
	return mock.NextScheduledFunc(ctx, kolID, from)
}

func (mock *visitRepoMock) NextScheduledCalls() []struct {
	KOLID uuid.UUID
	From  time.Time
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.NextScheduled
}

func (mock *visitRepoMock) DeleteByKOL(ctx context.Context, kolID uuid.UUID) (int, error) {
	if mock.DeleteByKOLFunc == nil {
		panic("visitRepoMock.DeleteByKOLFunc: method is nil but visitRepo.DeleteByKOL was just called")
	}
	mock.lock.Lock()
	mock.calls.DeleteByKOL = append(mock.calls.DeleteByKOL, struct{ KOLID uuid.UUID }{KOLID: kolID})
	mock.lock.Unlock()
	return mock.DeleteByKOLFunc(ctx, kolID)
}

func (mock *visitRepoMock) DeleteByKOLCalls() []struct{ KOLID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.DeleteByKOL
}

func (mock *visitRepoMock) UpdateKOLSnapshot(ctx context.Context, kolID uuid.UUID, name, specialty string) error {
	if mock.UpdateKOLSnapshotFunc == nil {
		panic("visitRepoMock.UpdateKOLSnapshotFunc: method is nil but visitRepo.UpdateKOLSnapshot was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateKOLSnapshot = append(mock.calls.UpdateKOLSnapshot, struct {
		KOLID     uuid.UUID
		Name      string
		Specialty string
	}{KOLID: kolID, Name: name, Specialty: specialty})
	mock.lock.Unlock()
	return mock.UpdateKOLSnapshotFunc(ctx, kolID, name, specialty)
}

func (mock *visitRepoMock) UpdateKOLSnapshotCalls() []struct {
	KOLID     uuid.UUID
	Name      string
	Specialty string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdateKOLSnapshot
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	return mock.RunInTxFunc(ctx, fn)
}
