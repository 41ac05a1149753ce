package forum

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/storefront-backend/internal/domain"
)

var _ suggestionRepo = &suggestionRepoMock{}

type suggestionRepoMock struct {
	ListByCreatorFunc func(ctx context.Context, creatorID uuid.UUID) ([]domain.Suggestion, error)
	GetByIDFunc       func(ctx context.Context, suggestionID uuid.UUID) (*domain.Suggestion, error)
	TallyFunc         func(ctx context.Context, suggestionIDs []uuid.UUID, userID uuid.UUID) (map[uuid.UUID]domain.SuggestionTally, error)
	CreateFunc        func(ctx context.Context, s *domain.Suggestion) (*domain.Suggestion, error)
	UpdateStatusFunc  func(ctx context.Context, suggestionID uuid.UUID, status domain.ForumStatus, changedAt time.Time) error
	DeleteFunc        func(ctx context.Context, suggestionID uuid.UUID) error

	calls struct {
		ListByCreator []struct {
			Ctx       context.Context
			CreatorID uuid.UUID
		}
		GetByID []struct {
			Ctx          context.Context
			SuggestionID uuid.UUID
		}
		Tally []struct {
			Ctx           context.Context
			SuggestionIDs []uuid.UUID
			UserID        uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			S   *domain.Suggestion
		}
		UpdateStatus []struct {
			Ctx          context.Context
			SuggestionID uuid.UUID
			Status       domain.ForumStatus
			ChangedAt    time.Time
		}
		Delete []struct {
			Ctx          context.Context
			SuggestionID uuid.UUID
		}
	}
	lockListByCreator sync.RWMutex
	lockGetByID       sync.RWMutex
	lockTally         sync.RWMutex
	lockCreate        sync.RWMutex
	lockUpdateStatus  sync.RWMutex
	lockDelete        sync.RWMutex
}

func (mock *suggestionRepoMock) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]domain.Suggestion, error) {
	if mock.ListByCreatorFunc == nil {
		panic("suggestionRepoMock.ListByCreatorFunc: method is nil but suggestionRepo.ListByCreator was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		CreatorID uuid.UUID
	}{Ctx: ctx, CreatorID: creatorID}
	mock.lockListByCreator.Lock()
	mock.calls.ListByCreator = append(mock.calls.ListByCreator, callInfo)
	mock.lockListByCreator.Unlock()
	return mock.ListByCreatorFunc(ctx, creatorID)
}

func (mock *suggestionRepoMock) ListByCreatorCalls() []struct {
	Ctx       context.Context
	CreatorID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		CreatorID uuid.UUID
	}
	mock.lockListByCreator.RLock()
	calls = mock.calls.ListByCreator
	mock.lockListByCreator.RUnlock()
	return calls
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

func (mock *suggestionRepoMock) Tally(ctx context.Context, suggestionIDs []uuid.UUID, userID uuid.UUID) (map[uuid.UUID]domain.SuggestionTally, error) {
	if mock.TallyFunc == nil {
		panic("suggestionRepoMock.TallyFunc: method is nil but suggestionRepo.Tally was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		SuggestionIDs []uuid.UUID
		UserID        uuid.UUID
	}{Ctx: ctx, SuggestionIDs: suggestionIDs, UserID: userID}
	mock.lockTally.Lock()
	mock.calls.Tally = append(mock.calls.Tally, callInfo)
	mock.lockTally.Unlock()
	return mock.TallyFunc(ctx, suggestionIDs, userID)
}

func (mock *suggestionRepoMock) TallyCalls() []struct {
	Ctx           context.Context
	SuggestionIDs []uuid.UUID
	UserID        uuid.UUID
} {
	var calls []struct {
		Ctx           context.Context
		SuggestionIDs []uuid.UUID
		UserID        uuid.UUID
	}
	mock.lockTally.RLock()
	calls = mock.calls.Tally
	mock.lockTally.RUnlock()
	return calls
}

func (mock *suggestionRepoMock) Create(ctx context.Context, s *domain.Suggestion) (*domain.Suggestion, error) {
	if mock.CreateFunc == nil {
		panic("suggestionRepoMock.CreateFunc: method is nil but suggestionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.Suggestion
	}{Ctx: ctx, S: s}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *suggestionRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   *domain.Suggestion
} {
	var calls []struct {
		Ctx context.Context
		S   *domain.Suggestion
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
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

func (mock *suggestionRepoMock) Delete(ctx context.Context, suggestionID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("suggestionRepoMock.DeleteFunc: method is nil but suggestionRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		SuggestionID uuid.UUID
	}{Ctx: ctx, SuggestionID: suggestionID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, suggestionID)
}

func (mock *suggestionRepoMock) DeleteCalls() []struct {
	Ctx          context.Context
	SuggestionID uuid.UUID
} {
	var calls []struct {
		Ctx          context.Context
		SuggestionID uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ replyRepo = &replyRepoMock{}

type replyRepoMock struct {
	ListBySuggestionFunc   func(ctx context.Context, suggestionID uuid.UUID) ([]domain.Reply, error)
	CreateFunc             func(ctx context.Context, r *domain.Reply) (*domain.Reply, error)
	DeleteBySuggestionFunc func(ctx context.Context, suggestionID uuid.UUID) error

	calls struct {
		ListBySuggestion []struct {
			Ctx          context.Context
			SuggestionID uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			R   *domain.Reply
		}
		DeleteBySuggestion []struct {
			Ctx          context.Context
			SuggestionID uuid.UUID
		}
	}
	lockListBySuggestion   sync.RWMutex
	lockCreate             sync.RWMutex
	lockDeleteBySuggestion sync.RWMutex
}

func (mock *replyRepoMock) ListBySuggestion(ctx context.Context, suggestionID uuid.UUID) ([]domain.Reply, error) {
	if mock.ListBySuggestionFunc == nil {
		panic("replyRepoMock.ListBySuggestionFunc: method is nil but replyRepo.ListBySuggestion was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		SuggestionID uuid.UUID
	}{Ctx: ctx, SuggestionID: suggestionID}
	mock.lockListBySuggestion.Lock()
	mock.calls.ListBySuggestion = append(mock.calls.ListBySuggestion, callInfo)
	mock.lockListBySuggestion.Unlock()
	return mock.ListBySuggestionFunc(ctx, suggestionID)
}

func (mock *replyRepoMock) ListBySuggestionCalls() []struct {
	Ctx          context.Context
	SuggestionID uuid.UUID
} {
	var calls []struct {
		Ctx          context.Context
		SuggestionID uuid.UUID
	}
	mock.lockListBySuggestion.RLock()
	calls = mock.calls.ListBySuggestion
	mock.lockListBySuggestion.RUnlock()
	return calls
}

func (mock *replyRepoMock) Create(ctx context.Context, r *domain.Reply) (*domain.Reply, error) {
	if mock.CreateFunc == nil {
		panic("replyRepoMock.CreateFunc: method is nil but replyRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		R   *domain.Reply
	}{Ctx: ctx, R: r}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, r)
}

func (mock *replyRepoMock) CreateCalls() []struct {
	Ctx context.Context
	R   *domain.Reply
} {
	var calls []struct {
		Ctx context.Context
		R   *domain.Reply
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *replyRepoMock) DeleteBySuggestion(ctx context.Context, suggestionID uuid.UUID) error {
	if mock.DeleteBySuggestionFunc == nil {
		panic("replyRepoMock.DeleteBySuggestionFunc: method is nil but replyRepo.DeleteBySuggestion was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		SuggestionID uuid.UUID
	}{Ctx: ctx, SuggestionID: suggestionID}
	mock.lockDeleteBySuggestion.Lock()
	mock.calls.DeleteBySuggestion = append(mock.calls.DeleteBySuggestion, callInfo)
	mock.lockDeleteBySuggestion.Unlock()
	return mock.DeleteBySuggestionFunc(ctx, suggestionID)
}

func (mock *replyRepoMock) DeleteBySuggestionCalls() []struct {
	Ctx          context.Context
	SuggestionID uuid.UUID
} {
	var calls []struct {
		Ctx          context.Context
		SuggestionID uuid.UUID
	}
	mock.lockDeleteBySuggestion.RLock()
	calls = mock.calls.DeleteBySuggestion
	mock.lockDeleteBySuggestion.RUnlock()
	return calls
}

var _ upvoteRepo = &upvoteRepoMock{}

type upvoteRepoMock struct {
	AddFunc                func(ctx context.Context, suggestionID uuid.UUID, userID uuid.UUID) error
	RemoveFunc             func(ctx context.Context, suggestionID uuid.UUID, userID uuid.UUID) error
	DeleteBySuggestionFunc func(ctx context.Context, suggestionID uuid.UUID) error

	calls struct {
		Add []struct {
			Ctx          context.Context
			SuggestionID uuid.UUID
			UserID       uuid.UUID
		}
		Remove []struct {
			Ctx          context.Context
			SuggestionID uuid.UUID
			UserID       uuid.UUID
		}
		DeleteBySuggestion []struct {
			Ctx          context.Context
			SuggestionID uuid.UUID
		}
	}
	lockAdd                sync.RWMutex
	lockRemove             sync.RWMutex
	lockDeleteBySuggestion sync.RWMutex
}

func (mock *upvoteRepoMock) Add(ctx context.Context, suggestionID uuid.UUID, userID uuid.UUID) error {
	if mock.AddFunc == nil {
		panic("upvoteRepoMock.AddFunc: method is nil but upvoteRepo.Add was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		SuggestionID uuid.UUID
		UserID       uuid.UUID
	}{Ctx: ctx, SuggestionID: suggestionID, UserID: userID}
	mock.lockAdd.Lock()
	mock.calls.Add = append(mock.calls.Add, callInfo)
	mock.lockAdd.Unlock()
	return mock.AddFunc(ctx, suggestionID, userID)
}

func (mock *upvoteRepoMock) AddCalls() []struct {
	Ctx          context.Context
	SuggestionID uuid.UUID
	UserID       uuid.UUID
} {
	var calls []struct {
		Ctx          context.Context
		SuggestionID uuid.UUID
		UserID       uuid.UUID
	}
	mock.lockAdd.RLock()
	calls = mock.calls.Add
	mock.lockAdd.RUnlock()
	return calls
}

func (mock *upvoteRepoMock) Remove(ctx context.Context, suggestionID uuid.UUID, userID uuid.UUID) error {
	if mock.RemoveFunc == nil {
		panic("upvoteRepoMock.RemoveFunc: method is nil but upvoteRepo.Remove was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		SuggestionID uuid.UUID
		UserID       uuid.UUID
	}{Ctx: ctx, SuggestionID: suggestionID, UserID: userID}
	mock.lockRemove.Lock()
	mock.calls.Remove = append(mock.calls.Remove, callInfo)
	mock.lockRemove.Unlock()
	return mock.RemoveFunc(ctx, suggestionID, userID)
}

func (mock *upvoteRepoMock) RemoveCalls() []struct {
	Ctx          context.Context
	SuggestionID uuid.UUID
	UserID       uuid.UUID
} {
	var calls []struct {
		Ctx          context.Context
		SuggestionID uuid.UUID
		UserID       uuid.UUID
	}
	mock.lockRemove.RLock()
	calls = mock.calls.Remove
	mock.lockRemove.RUnlock()
	return calls
}

func (mock *upvoteRepoMock) DeleteBySuggestion(ctx context.Context, suggestionID uuid.UUID) error {
	if mock.DeleteBySuggestionFunc == nil {
		panic("upvoteRepoMock.DeleteBySuggestionFunc: method is nil but upvoteRepo.DeleteBySuggestion was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		SuggestionID uuid.UUID
	}{Ctx: ctx, SuggestionID: suggestionID}
	mock.lockDeleteBySuggestion.Lock()
	mock.calls.DeleteBySuggestion = append(mock.calls.DeleteBySuggestion, callInfo)
	mock.lockDeleteBySuggestion.Unlock()
	return mock.DeleteBySuggestionFunc(ctx, suggestionID)
}

func (mock *upvoteRepoMock) DeleteBySuggestionCalls() []struct {
	Ctx          context.Context
	SuggestionID uuid.UUID
} {
	var calls []struct {
		Ctx          context.Context
		SuggestionID uuid.UUID
	}
	mock.lockDeleteBySuggestion.RLock()
	calls = mock.calls.DeleteBySuggestion
	mock.lockDeleteBySuggestion.RUnlock()
	return calls
}

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	GetByUserIDsFunc func(ctx context.Context, userIDs []uuid.UUID) ([]domain.Profile, error)

	calls struct {
		GetByUserIDs []struct {
			Ctx     context.Context
			UserIDs []uuid.UUID
		}
	}
	lockGetByUserIDs sync.RWMutex
}

func (mock *profileRepoMock) GetByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]domain.Profile, error) {
	if mock.GetByUserIDsFunc == nil {
		panic("profileRepoMock.GetByUserIDsFunc: method is nil but profileRepo.GetByUserIDs was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserIDs []uuid.UUID
	}{Ctx: ctx, UserIDs: userIDs}
	mock.lockGetByUserIDs.Lock()
	mock.calls.GetByUserIDs = append(mock.calls.GetByUserIDs, callInfo)
	mock.lockGetByUserIDs.Unlock()
	return mock.GetByUserIDsFunc(ctx, userIDs)
}

func (mock *profileRepoMock) GetByUserIDsCalls() []struct {
	Ctx     context.Context
	UserIDs []uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		UserIDs []uuid.UUID
	}
	mock.lockGetByUserIDs.RLock()
	calls = mock.calls.GetByUserIDs
	mock.lockGetByUserIDs.RUnlock()
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
