package kol

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/medfield/msl-backend/internal/domain"
)

var _ kolRepo = &kolRepoMock{}

type kolRepoMock struct {
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.KOL, error)
	ListFunc          func(ctx context.Context, filter domain.KOLFilter) ([]*domain.KOL, int, error)
	CreateFunc        func(ctx context.Context, k *domain.KOL) (*domain.KOL, error)
	UpdateFunc        func(ctx context.Context, id uuid.UUID, params domain.KOLUpdateParams) (*domain.KOL, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
	UpdateDerivedFunc func(ctx context.Context, id uuid.UUID, lastVisit, nextVisit *domain.Date) error

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
		List []struct {
			Filter domain.KOLFilter
		}
		Create []struct {
			KOL *domain.KOL
		}
		Update []struct {
			ID     uuid.UUID
			Params domain.KOLUpdateParams
		}
		Delete []struct {
			ID uuid.UUID
		}
		UpdateDerived []struct {
			ID        uuid.UUID
			LastVisit *domain.Date
			NextVisit *domain.Date
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

func (mock *kolRepoMock) List(ctx context.Context, filter domain.KOLFilter) ([]*domain.KOL, int, error) {
	if mock.ListFunc == nil {
		panic("kolRepoMock.ListFunc: method is nil but kolRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct{ Filter domain.KOLFilter }{Filter: filter})
	mock.lock.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *kolRepoMock) ListCalls() []struct{ Filter domain.KOLFilter } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

func (mock *kolRepoMock) Create(ctx context.Context, k *domain.KOL) (*domain.KOL, error) {
	if mock.CreateFunc == nil {
		panic("kolRepoMock.CreateFunc: method is nil but kolRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ KOL *domain.KOL }{KOL: k})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, k)
}

func (mock *kolRepoMock) CreateCalls() []struct{ KOL *domain.KOL } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *kolRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.KOLUpdateParams) (*domain.KOL, error) {
	if mock.UpdateFunc == nil {
		panic("kolRepoMock.UpdateFunc: method is nil but kolRepo.Update was just called")
	}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		ID     uuid.UUID
		Params domain.KOLUpdateParams
	}{ID: id, Params: params})
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *kolRepoMock) UpdateCalls() []struct {
	ID     uuid.UUID
	Params domain.KOLUpdateParams
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Update
}

func (mock *kolRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("kolRepoMock.DeleteFunc: method is nil but kolRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *kolRepoMock) DeleteCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}

func (mock *kolRepoMock) UpdateDerived(ctx context.Context, id uuid.UUID, lastVisit, nextVisit *domain.Date) error {
	if mock.UpdateDerivedFunc == nil {
		panic("kolRepoMock.UpdateDerivedFunc: method is nil but kolRepo.UpdateDerived was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateDerived = append(mock.calls.UpdateDerived, struct {
		ID        uuid.UUID
		LastVisit *domain.Date
		NextVisit *domain.Date
	}{ID: id, LastVisit: lastVisit, NextVisit: nextVisit})
	mock.lock.Unlock()
	return mock.UpdateDerivedFunc(ctx, id, lastVisit, nextVisit)
}

func (mock *kolRepoMock) UpdateDerivedCalls() []struct {
	ID        uuid.UUID
	LastVisit *domain.Date
	NextVisit *domain.Date
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdateDerived
}
