package visit

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/medfield/msl-backend/internal/domain"
)

var _ visitRepo = &visitRepoMock{}

type visitRepoMock struct {
	GetByIDFunc              func(ctx context.Context, id uuid.UUID) (*domain.Visit, error)
	ListFunc                 func(ctx context.Context, filter domain.VisitFilter) ([]*domain.Visit, int, error)
	CreateFunc               func(ctx context.Context, v *domain.Visit) (*domain.Visit, error)
	UpdateFunc               func(ctx context.Context, v *domain.Visit) (*domain.Visit, error)
	DeleteFunc               func(ctx context.Context, id uuid.UUID) error
	FindScheduledSlotFunc    func(ctx context.Context, kolID uuid.UUID, date domain.Date, timeOfDay string) (*domain.Visit, error)
	MarkOverdueCompletedFunc func(ctx context.Context, today domain.Date) (int, error)

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
		List []struct {
			Filter domain.VisitFilter
		}
		Create []struct {
			Visit *domain.Visit
		}
		Update []struct {
			Visit *domain.Visit
		}
		Delete []struct {
			ID uuid.UUID
		}
		FindScheduledSlot []struct {
			KOLID     uuid.UUID
			Date      domain.Date
			TimeOfDay string
		}
		MarkOverdueCompleted []struct {
			Today domain.Date
		}
	}
	lock sync.RWMutex
}

func (mock *visitRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Visit, error) {
	if mock.GetByIDFunc == nil {
		panic("visitRepoMock.GetByIDFunc: method is nil but visitRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *visitRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

func (mock *visitRepoMock) List(ctx context.Context, filter domain.VisitFilter) ([]*domain.Visit, int, error) {
	if mock.ListFunc == nil {
		panic("visitRepoMock.ListFunc: method is nil but visitRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct{ Filter domain.VisitFilter }{Filter: filter})
	mock.lock.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *visitRepoMock) ListCalls() []struct{ Filter domain.VisitFilter } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

func (mock *visitRepoMock) Create(ctx context.Context, v *domain.Visit) (*domain.Visit, error) {
	if mock.CreateFunc == nil {
		panic("visitRepoMock.CreateFunc: method is nil but visitRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Visit *domain.Visit }{Visit: v})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, v)
}

func (mock *visitRepoMock) CreateCalls() []struct{ Visit *domain.Visit } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *visitRepoMock) Update(ctx context.Context, v *domain.Visit) (*domain.Visit, error) {
	if mock.UpdateFunc == nil {
		panic("visitRepoMock.UpdateFunc: method is nil but visitRepo.Update was just called")
	}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, struct{ Visit *domain.Visit }{Visit: v})
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, v)
}

func (mock *visitRepoMock) UpdateCalls() []struct{ Visit *domain.Visit } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Update
}

func (mock *visitRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("visitRepoMock.DeleteFunc: method is nil but visitRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *visitRepoMock) DeleteCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}

func (mock *visitRepoMock) FindScheduledSlot(ctx context.Context, kolID uuid.UUID, date domain.Date, timeOfDay string) (*domain.Visit, error) {
	if mock.FindScheduledSlotFunc == nil {
		panic("visitRepoMock.FindScheduledSlotFunc: method is nil but visitRepo.FindScheduledSlot was just called")
	}
	mock.lock.Lock()
	mock.calls.FindScheduledSlot = append(mock.calls.FindScheduledSlot, struct {
		KOLID     uuid.UUID
		Date      domain.Date
		TimeOfDay string
	}{KOLID: kolID, Date: date, TimeOfDay: timeOfDay})
	mock.lock.Unlock()
	return mock.FindScheduledSlotFunc(ctx, kolID, date, timeOfDay)
}

func (mock *visitRepoMock) FindScheduledSlotCalls() []struct {
	KOLID     uuid.UUID
	Date      domain.Date
	TimeOfDay string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.FindScheduledSlot
}

func (mock *visitRepoMock) MarkOverdueCompleted(ctx context.Context, today domain.Date) (int, error) {
	if mock.MarkOverdueCompletedFunc == nil {
		panic("visitRepoMock.MarkOverdueCompletedFunc: method is nil but visitRepo.MarkOverdueCompleted was just called")
	}
	mock.lock.Lock()
	mock.calls.MarkOverdueCompleted = append(mock.calls.MarkOverdueCompleted, struct{ Today domain.Date }{Today: today})
	mock.lock.Unlock()
	return mock.MarkOverdueCompletedFunc(ctx, today)
}

func (mock *visitRepoMock) MarkOverdueCompletedCalls() []struct{ Today domain.Date } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.MarkOverdueCompleted
}

var _ kolRepo = &kolRepoMock{}

type kolRepoMock struct {
	GetByIDFunc  func(ctx context.Context, id uuid.UUID) (*domain.KOL, error)
	SetLevelFunc func(ctx context.Context, id uuid.UUID, level int) error

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
		SetLevel []struct {
			ID    uuid.UUID
			Level int
		}
	}
	lock sync.RWMutex
}

func (mock *kolRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.KOL, error) {
	if mock.GetByIDFunc == nil {
		panic("kolRepoMock.GetByIDFunc: method is nil but kolRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *kolRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

func (mock *kolRepoMock) SetLevel(ctx context.Context, id uuid.UUID, level int) error {
	if mock.SetLevelFunc == nil {
		panic("kolRepoMock.SetLevelFunc: method is nil but kolRepo.SetLevel was just called")
	}
	mock.lock.Lock()
	mock.calls.SetLevel = append(mock.calls.SetLevel, struct {
		ID    uuid.UUID
		Level int
	}{ID: id, Level: level})
	mock.lock.Unlock()
	return mock.SetLevelFunc(ctx, id, level)
}

func (mock *kolRepoMock) SetLevelCalls() []struct {
	ID    uuid.UUID
	Level int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.SetLevel
}

var _ recalculator = &recalculatorMock{}

type recalculatorMock struct {
	RecomputeFunc func(ctx context.Context, kolID uuid.UUID) error

	calls struct {
		Recompute []struct {
			KOLID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *recalculatorMock) Recompute(ctx context.Context, kolID uuid.UUID) error {
	if mock.RecomputeFunc == nil {
		panic("recalculatorMock.RecomputeFunc: method is nil but recalculator.Recompute was just called")
	}
	mock.lock.Lock()
	mock.calls.Recompute = append(mock.calls.Recompute, struct{ KOLID uuid.UUID }{KOLID: kolID})
	mock.lock.Unlock()
	return mock.RecomputeFunc(ctx, kolID)
}

func (mock *recalculatorMock) RecomputeCalls() []struct{ KOLID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Recompute
}
