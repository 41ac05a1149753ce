package storefront

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/storefront-backend/internal/domain"
)

var _ pageRepo = &pageRepoMock{}

type pageRepoMock struct {
	GetByCreatorFunc func(ctx context.Context, creatorID uuid.UUID) (*domain.PageConfig, error)
	UpsertFunc       func(ctx context.Context, page *domain.PageConfig) (*domain.PageConfig, error)

	calls struct {
		GetByCreator []struct {
			Ctx       context.Context
			CreatorID uuid.UUID
		}
		Upsert []struct {
			Ctx  context.Context
			Page *domain.PageConfig
		}
	}
	lockGetByCreator sync.RWMutex
	lockUpsert       sync.RWMutex
}

func (mock *pageRepoMock) GetByCreator(ctx context.Context, creatorID uuid.UUID) (*domain.PageConfig, error) {
	if mock.GetByCreatorFunc == nil {
		panic("pageRepoMock.GetByCreatorFunc: method is nil but pageRepo.GetByCreator was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		CreatorID uuid.UUID
	}{Ctx: ctx, CreatorID: creatorID}
	mock.lockGetByCreator.Lock()
	mock.calls.GetByCreator = append(mock.calls.GetByCreator, callInfo)
	mock.lockGetByCreator.Unlock()
	return mock.GetByCreatorFunc(ctx, creatorID)
}

func (mock *pageRepoMock) GetByCreatorCalls() []struct {
	Ctx       context.Context
	CreatorID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		CreatorID uuid.UUID
	}
	mock.lockGetByCreator.RLock()
	calls = mock.calls.GetByCreator
	mock.lockGetByCreator.RUnlock()
	return calls
}

func (mock *pageRepoMock) Upsert(ctx context.Context, page *domain.PageConfig) (*domain.PageConfig, error) {
	if mock.UpsertFunc == nil {
		panic("pageRepoMock.UpsertFunc: method is nil but pageRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Page *domain.PageConfig
	}{Ctx: ctx, Page: page}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, page)
}

func (mock *pageRepoMock) UpsertCalls() []struct {
	Ctx  context.Context
	Page *domain.PageConfig
} {
	var calls []struct {
		Ctx  context.Context
		Page *domain.PageConfig
	}
	mock.lockUpsert.RLock()
	calls = mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}
