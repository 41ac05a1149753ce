package roadmap

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/storefront-backend/internal/domain"
)

var _ versionRepo = &versionRepoMock{}

type versionRepoMock struct {
	ListByCreatorFunc  func(ctx context.Context, creatorID uuid.UUID, productID *uuid.UUID) ([]domain.Version, error)
	GetByIDFunc        func(ctx context.Context, versionID uuid.UUID) (*domain.Version, error)
	ShiftSortOrderFunc func(ctx context.Context, creatorID uuid.UUID, delta int) error
	CreateFunc         func(ctx context.Context, v *domain.Version) (*domain.Version, error)
	UpdateFunc         func(ctx context.Context, versionID uuid.UUID, params domain.VersionUpdateParams) (*domain.Version, error)
	DeleteFunc         func(ctx context.Context, versionID uuid.UUID) error

	calls struct {
		ListByCreator []struct {
			Ctx       context.Context
			CreatorID uuid.UUID
			ProductID *uuid.UUID
		}
		GetByID []struct {
			Ctx       context.Context
			VersionID uuid.UUID
		}
		ShiftSortOrder []struct {
			Ctx       context.Context
			CreatorID uuid.UUID
			Delta     int
		}
		Create []struct {
			Ctx context.Context
			V   *domain.Version
		}
		Update []struct {
			Ctx       context.Context
			VersionID uuid.UUID
			Params    domain.VersionUpdateParams
		}
		Delete []struct {
			Ctx       context.Context
			VersionID uuid.UUID
		}
	}
	lockListByCreator  sync.RWMutex
	lockGetByID        sync.RWMutex
	lockShiftSortOrder sync.RWMutex
	lockCreate         sync.RWMutex
	lockUpdate         sync.RWMutex
	lockDelete         sync.RWMutex
}

func (mock *versionRepoMock) ListByCreator(ctx context.Context, creatorID uuid.UUID, productID *uuid.UUID) ([]domain.Version, error) {
	if mock.ListByCreatorFunc == nil {
		panic("versionRepoMock.ListByCreatorFunc: method is nil but versionRepo.ListByCreator was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		CreatorID uuid.UUID
		ProductID *uuid.UUID
	}{Ctx: ctx, CreatorID: creatorID, ProductID: productID}
	mock.lockListByCreator.Lock()
	mock.calls.ListByCreator = append(mock.calls.ListByCreator, callInfo)
	mock.lockListByCreator.Unlock()
	return mock.ListByCreatorFunc(ctx, creatorID, productID)
}

func (mock *versionRepoMock) ListByCreatorCalls() []struct {
	Ctx       context.Context
	CreatorID uuid.UUID
	ProductID *uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		CreatorID uuid.UUID
		ProductID *uuid.UUID
	}
	mock.lockListByCreator.RLock()
	calls = mock.calls.ListByCreator
	mock.lockListByCreator.RUnlock()
	return calls
}

func (mock *versionRepoMock) GetByID(ctx context.Context, versionID uuid.UUID) (*domain.Version, error) {
	if mock.GetByIDFunc == nil {
		panic("versionRepoMock.GetByIDFunc: method is nil but versionRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		VersionID uuid.UUID
	}{Ctx: ctx, VersionID: versionID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, versionID)
}

func (mock *versionRepoMock) GetByIDCalls() []struct {
	Ctx       context.Context
	VersionID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		VersionID uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *versionRepoMock) ShiftSortOrder(ctx context.Context, creatorID uuid.UUID, delta int) error {
	if mock.ShiftSortOrderFunc == nil {
		panic("versionRepoMock.ShiftSortOrderFunc: method is nil but versionRepo.ShiftSortOrder was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		CreatorID uuid.UUID
		Delta     int
	}{Ctx: ctx, CreatorID: creatorID, Delta: delta}
	mock.lockShiftSortOrder.Lock()
	mock.calls.ShiftSortOrder = append(mock.calls.ShiftSortOrder, callInfo)
	mock.lockShiftSortOrder.Unlock()
	return mock.ShiftSortOrderFunc(ctx, creatorID, delta)
}

func (mock *versionRepoMock) ShiftSortOrderCalls() []struct {
	Ctx       context.Context
	CreatorID uuid.UUID
	Delta     int
} {
	var calls []struct {
		Ctx       context.Context
		CreatorID uuid.UUID
		Delta     int
	}
	mock.lockShiftSortOrder.RLock()
	calls = mock.calls.ShiftSortOrder
	mock.lockShiftSortOrder.RUnlock()
	return calls
}

func (mock *versionRepoMock) Create(ctx context.Context, v *domain.Version) (*domain.Version, error) {
	if mock.CreateFunc == nil {
		panic("versionRepoMock.CreateFunc: method is nil but versionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		V   *domain.Version
	}{Ctx: ctx, V: v}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, v)
}

func (mock *versionRepoMock) CreateCalls() []struct {
	Ctx context.Context
	V   *domain.Version
} {
	var calls []struct {
		Ctx context.Context
		V   *domain.Version
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *versionRepoMock) Update(ctx context.Context, versionID uuid.UUID, params domain.VersionUpdateParams) (*domain.Version, error) {
	if mock.UpdateFunc == nil {
		panic("versionRepoMock.UpdateFunc: method is nil but versionRepo.Update was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		VersionID uuid.UUID
		Params    domain.VersionUpdateParams
	}{Ctx: ctx, VersionID: versionID, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, versionID, params)
}

func (mock *versionRepoMock) UpdateCalls() []struct {
	Ctx       context.Context
	VersionID uuid.UUID
	Params    domain.VersionUpdateParams
} {
	var calls []struct {
		Ctx       context.Context
		VersionID uuid.UUID
		Params    domain.VersionUpdateParams
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *versionRepoMock) Delete(ctx context.Context, versionID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("versionRepoMock.DeleteFunc: method is nil but versionRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		VersionID uuid.UUID
	}{Ctx: ctx, VersionID: versionID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, versionID)
}

func (mock *versionRepoMock) DeleteCalls() []struct {
	Ctx       context.Context
	VersionID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		VersionID uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	ListByVersionIDsFunc func(ctx context.Context, versionIDs []uuid.UUID) ([]domain.Item, error)
	GetByIDFunc          func(ctx context.Context, itemID uuid.UUID) (*domain.Item, error)
	CountByVersionFunc   func(ctx context.Context, versionID uuid.UUID) (int, error)
	CreateFunc           func(ctx context.Context, item *domain.Item) (*domain.Item, error)
	UpdateFunc           func(ctx context.Context, itemID uuid.UUID, params domain.ItemUpdateParams) (*domain.Item, error)
	DeleteFunc           func(ctx context.Context, itemID uuid.UUID) error

	calls struct {
		ListByVersionIDs []struct {
			Ctx        context.Context
			VersionIDs []uuid.UUID
		}
		GetByID []struct {
			Ctx    context.Context
			ItemID uuid.UUID
		}
		CountByVersion []struct {
			Ctx       context.Context
			VersionID uuid.UUID
		}
		Create []struct {
			Ctx  context.Context
			Item *domain.Item
		}
		Update []struct {
			Ctx    context.Context
			ItemID uuid.UUID
			Params domain.ItemUpdateParams
		}
		Delete []struct {
			Ctx    context.Context
			ItemID uuid.UUID
		}
	}
	lockListByVersionIDs sync.RWMutex
	lockGetByID          sync.RWMutex
	lockCountByVersion   sync.RWMutex
	lockCreate           sync.RWMutex
	lockUpdate           sync.RWMutex
	lockDelete           sync.RWMutex
}

func (mock *itemRepoMock) ListByVersionIDs(ctx context.Context, versionIDs []uuid.UUID) ([]domain.Item, error) {
	if mock.ListByVersionIDsFunc == nil {
		panic("itemRepoMock.ListByVersionIDsFunc: method is nil but itemRepo.ListByVersionIDs was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		VersionIDs []uuid.UUID
	}{Ctx: ctx, VersionIDs: versionIDs}
	mock.lockListByVersionIDs.Lock()
	mock.calls.ListByVersionIDs = append(mock.calls.ListByVersionIDs, callInfo)
	mock.lockListByVersionIDs.Unlock()
	return mock.ListByVersionIDsFunc(ctx, versionIDs)
}

func (mock *itemRepoMock) ListByVersionIDsCalls() []struct {
	Ctx        context.Context
	VersionIDs []uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		VersionIDs []uuid.UUID
	}
	mock.lockListByVersionIDs.RLock()
	calls = mock.calls.ListByVersionIDs
	mock.lockListByVersionIDs.RUnlock()
	return calls
}

func (mock *itemRepoMock) GetByID(ctx context.Context, itemID uuid.UUID) (*domain.Item, error) {
	if mock.GetByIDFunc == nil {
		panic("itemRepoMock.GetByIDFunc: method is nil but itemRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID uuid.UUID
	}{Ctx: ctx, ItemID: itemID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, itemID)
}

func (mock *itemRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	ItemID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		ItemID uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *itemRepoMock) CountByVersion(ctx context.Context, versionID uuid.UUID) (int, error) {
	if mock.CountByVersionFunc == nil {
		panic("itemRepoMock.CountByVersionFunc: method is nil but itemRepo.CountByVersion was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		VersionID uuid.UUID
	}{Ctx: ctx, VersionID: versionID}
	mock.lockCountByVersion.Lock()
	mock.calls.CountByVersion = append(mock.calls.CountByVersion, callInfo)
	mock.lockCountByVersion.Unlock()
	return mock.CountByVersionFunc(ctx, versionID)
}

func (mock *itemRepoMock) CountByVersionCalls() []struct {
	Ctx       context.Context
	VersionID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		VersionID uuid.UUID
	}
	mock.lockCountByVersion.RLock()
	calls = mock.calls.CountByVersion
	mock.lockCountByVersion.RUnlock()
	return calls
}

func (mock *itemRepoMock) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	if mock.CreateFunc == nil {
		panic("itemRepoMock.CreateFunc: method is nil but itemRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Item *domain.Item
	}{Ctx: ctx, Item: item}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, item)
}

func (mock *itemRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Item *domain.Item
} {
	var calls []struct {
		Ctx  context.Context
		Item *domain.Item
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *itemRepoMock) Update(ctx context.Context, itemID uuid.UUID, params domain.ItemUpdateParams) (*domain.Item, error) {
	if mock.UpdateFunc == nil {
		panic("itemRepoMock.UpdateFunc: method is nil but itemRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID uuid.UUID
		Params domain.ItemUpdateParams
	}{Ctx: ctx, ItemID: itemID, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, itemID, params)
}

func (mock *itemRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	ItemID uuid.UUID
	Params domain.ItemUpdateParams
} {
	var calls []struct {
		Ctx    context.Context
		ItemID uuid.UUID
		Params domain.ItemUpdateParams
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *itemRepoMock) Delete(ctx context.Context, itemID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("itemRepoMock.DeleteFunc: method is nil but itemRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID uuid.UUID
	}{Ctx: ctx, ItemID: itemID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, itemID)
}

func (mock *itemRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	ItemID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		ItemID uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ voteRepo = &voteRepoMock{}

type voteRepoMock struct {
	TallyFunc  func(ctx context.Context, itemIDs []uuid.UUID, userID uuid.UUID) (map[uuid.UUID]domain.VoteTally, error)
	AddFunc    func(ctx context.Context, itemID uuid.UUID, userID uuid.UUID) error
	RemoveFunc func(ctx context.Context, itemID uuid.UUID, userID uuid.UUID) error

	calls struct {
		Tally []struct {
			Ctx     context.Context
			ItemIDs []uuid.UUID
			UserID  uuid.UUID
		}
		Add []struct {
			Ctx    context.Context
			ItemID uuid.UUID
			UserID uuid.UUID
		}
		Remove []struct {
			Ctx    context.Context
			ItemID uuid.UUID
			UserID uuid.UUID
		}
	}
	lockTally  sync.RWMutex
	lockAdd    sync.RWMutex
	lockRemove sync.RWMutex
}

func (mock *voteRepoMock) Tally(ctx context.Context, itemIDs []uuid.UUID, userID uuid.UUID) (map[uuid.UUID]domain.VoteTally, error) {
	if mock.TallyFunc == nil {
		panic("voteRepoMock.TallyFunc: method is nil but voteRepo.Tally was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ItemIDs []uuid.UUID
		UserID  uuid.UUID
	}{Ctx: ctx, ItemIDs: itemIDs, UserID: userID}
	mock.lockTally.Lock()
	mock.calls.Tally = append(mock.calls.Tally, callInfo)
	mock.lockTally.Unlock()
	return mock.TallyFunc(ctx, itemIDs, userID)
}

func (mock *voteRepoMock) TallyCalls() []struct {
	Ctx     context.Context
	ItemIDs []uuid.UUID
	UserID  uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		ItemIDs []uuid.UUID
		UserID  uuid.UUID
	}
	mock.lockTally.RLock()
	calls = mock.calls.Tally
	mock.lockTally.RUnlock()
	return calls
}

func (mock *voteRepoMock) Add(ctx context.Context, itemID uuid.UUID, userID uuid.UUID) error {
	if mock.AddFunc == nil {
		panic("voteRepoMock.AddFunc: method is nil but voteRepo.Add was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID uuid.UUID
		UserID uuid.UUID
	}{Ctx: ctx, ItemID: itemID, UserID: userID}
	mock.lockAdd.Lock()
	mock.calls.Add = append(mock.calls.Add, callInfo)
	mock.lockAdd.Unlock()
	return mock.AddFunc(ctx, itemID, userID)
}

func (mock *voteRepoMock) AddCalls() []struct {
	Ctx    context.Context
	ItemID uuid.UUID
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		ItemID uuid.UUID
		UserID uuid.UUID
	}
	mock.lockAdd.RLock()
	calls = mock.calls.Add
	mock.lockAdd.RUnlock()
	return calls
}

func (mock *voteRepoMock) Remove(ctx context.Context, itemID uuid.UUID, userID uuid.UUID) error {
	if mock.RemoveFunc == nil {
		panic("voteRepoMock.RemoveFunc: method is nil but voteRepo.Remove was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID uuid.UUID
		UserID uuid.UUID
	}{Ctx: ctx, ItemID: itemID, UserID: userID}
	mock.lockRemove.Lock()
	mock.calls.Remove = append(mock.calls.Remove, callInfo)
	mock.lockRemove.Unlock()
	return mock.RemoveFunc(ctx, itemID, userID)
}

func (mock *voteRepoMock) RemoveCalls() []struct {
	Ctx    context.Context
	ItemID uuid.UUID
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		ItemID uuid.UUID
		UserID uuid.UUID
	}
	mock.lockRemove.RLock()
	calls = mock.calls.Remove
	mock.lockRemove.RUnlock()
	return calls
}

var _ suggestionRepo = &suggestionRepoMock{}

type suggestionRepoMock struct {
	GetByIDFunc      func(ctx context.Context, suggestionID uuid.UUID) (*domain.Suggestion, error)
	UpdateStatusFunc func(ctx context.Context, suggestionID uuid.UUID, status domain.ForumStatus, changedAt time.Time) error

	calls struct {
		GetByID []struct {
			Ctx          context.Context
			SuggestionID uuid.UUID
		}
		UpdateStatus []struct {
			Ctx          context.Context
			SuggestionID uuid.UUID
			Status       domain.ForumStatus
			ChangedAt    time.Time
		}
	}
	lockGetByID      sync.RWMutex
	lockUpdateStatus sync.RWMutex
}

func (mock *suggestionRepoMock) GetByID(ctx context.Context, suggestionID uuid.UUID) (*domain.Suggestion, error) {
	if mock.GetByIDFunc == nil {
		panic("suggestionRepoMock.GetByIDFunc: method is nil but suggestionRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		SuggestionID uuid.UUID
	}{Ctx: ctx, SuggestionID: suggestionID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, suggestionID)
}

func (mock *suggestionRepoMock) GetByIDCalls() []struct {
	Ctx          context.Context
	SuggestionID uuid.UUID
} {
	var calls []struct {
		Ctx          context.Context
		SuggestionID uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *suggestionRepoMock) UpdateStatus(ctx context.Context, suggestionID uuid.UUID, status domain.ForumStatus, changedAt time.Time) error {
	if mock.UpdateStatusFunc == nil {
		panic("suggestionRepoMock.UpdateStatusFunc: method is nil but suggestionRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		SuggestionID uuid.UUID
		Status       domain.ForumStatus
		ChangedAt    time.Time
	}{Ctx: ctx, SuggestionID: suggestionID, Status: status, ChangedAt: changedAt}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, suggestionID, status, changedAt)
}

func (mock *suggestionRepoMock) UpdateStatusCalls() []struct {
	Ctx          context.Context
	SuggestionID uuid.UUID
	Status       domain.ForumStatus
	ChangedAt    time.Time
} {
	var calls []struct {
		Ctx          context.Context
		SuggestionID uuid.UUID
		Status       domain.ForumStatus
		ChangedAt    time.Time
	}
	mock.lockUpdateStatus.RLock()
	calls = mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	var calls []struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}
	mock.lockRunInTx.RLock()
	calls = mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
