package briefing

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/medfield/msl-backend/internal/domain"
)

var _ kolRepo = &kolRepoMock{}

type kolRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.KOL, error)
}

func (mock *kolRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.KOL, error) {
	if mock.GetByIDFunc == nil {
		panic("kolRepoMock.GetByIDFunc: method is nil but kolRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

var _ visitRepo = &visitRepoMock{}

type visitRepoMock struct {
	GetByIDFunc                 func(ctx context.Context, id uuid.UUID) (*domain.Visit, error)
	FirstScheduledInWindowFunc  func(ctx context.Context, kolID uuid.UUID, from, to time.Time) (*domain.Visit, error)
	LastCompletedWithReportFunc func(ctx context.Context, kolID uuid.UUID) (*domain.Visit, error)

	calls struct {
		FirstScheduledInWindow []struct {
			KOLID uuid.UUID
			From  time.Time
			To    time.Time
		}
	}
	lock sync.RWMutex
}

func (mock *visitRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Visit, error) {
	if mock.GetByIDFunc == nil {
		panic("visitRepoMock.GetByIDFunc: method is nil but visitRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *visitRepoMock) FirstScheduledInWindow(ctx context.Context, kolID uuid.UUID, from, to time.Time) (*domain.Visit, error) {
	if mock.FirstScheduledInWindowFunc == nil {
		panic("visitRepoMock.FirstScheduledInWindowFunc: method is nil but visitRepo.FirstScheduledInWindow was just called")
	}
	mock.lock.Lock()
	mock.calls.FirstScheduledInWindow = append(mock.calls.FirstScheduledInWindow, struct {
		KOLID uuid.UUID
		From  time.Time
		To    time.Time
	}{KOLID: kolID, From: from, To: to})
	mock.lock.Unlock()
	return mock.FirstScheduledInWindowFunc(ctx, kolID, from, to)
}

func (mock *visitRepoMock) FirstScheduledInWindowCalls() []struct {
	KOLID uuid.UUID
	From  time.Time
	To    time.Time
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.FirstScheduledInWindow
}

func (mock *visitRepoMock) LastCompletedWithReport(ctx context.Context, kolID uuid.UUID) (*domain.Visit, error) {
	if mock.LastCompletedWithReportFunc == nil {
		panic("visitRepoMock.LastCompletedWithReportFunc: method is nil but visitRepo.LastCompletedWithReport was just called")
	}
	return mock.LastCompletedWithReportFunc(ctx, kolID)
}
