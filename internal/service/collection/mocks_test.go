package collection

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

var _ collectionRepo = &collectionRepoMock{}

type collectionRepoMock struct {
	CreateFunc           func(ctx context.Context, c *domain.Collection) (*domain.Collection, error)
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Collection, error)
	GetByIDForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.Collection, error)
	ListByUserFunc       func(ctx context.Context, userID uuid.UUID) ([]domain.Collection, error)
	CountByUserFunc      func(ctx context.Context, userID uuid.UUID) (int, error)
	ListIDsFunc          func(ctx context.Context) ([]uuid.UUID, error)
	UpdateFunc           func(ctx context.Context, id uuid.UUID, p domain.CollectionPatch) (*domain.Collection, error)
	DeleteFunc           func(ctx context.Context, id uuid.UUID) error
	DeleteByUserFunc     func(ctx context.Context, userID uuid.UUID) (int, error)
	AdjustProgressFunc   func(ctx context.Context, id uuid.UUID, d domain.ProgressDelta) (*domain.Collection, error)
	SetProgressFunc      func(ctx context.Context, id uuid.UUID, c domain.LevelCounts) (*domain.Collection, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			C   *domain.Collection
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByIDForUpdate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		CountByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		ListIDs []struct {
			Ctx context.Context
		}
		Update []struct {
			Ctx context.Context
			ID  uuid.UUID
			P   domain.CollectionPatch
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		DeleteByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		AdjustProgress []struct {
			Ctx context.Context
			ID  uuid.UUID
			D   domain.ProgressDelta
		}
		SetProgress []struct {
			Ctx context.Context
			ID  uuid.UUID
			C   domain.LevelCounts
		}
	}
	lockCreate           sync.RWMutex
	lockGetByID          sync.RWMutex
	lockGetByIDForUpdate sync.RWMutex
	lockListByUser       sync.RWMutex
	lockCountByUser      sync.RWMutex
	lockListIDs          sync.RWMutex
	lockUpdate           sync.RWMutex
	lockDelete           sync.RWMutex
	lockDeleteByUser     sync.RWMutex
	lockAdjustProgress   sync.RWMutex
	lockSetProgress      sync.RWMutex
}

func (mock *collectionRepoMock) Create(ctx context.Context, c *domain.Collection) (*domain.Collection, error) {
	if mock.CreateFunc == nil {
		panic("collectionRepoMock.CreateFunc: method is nil but collectionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Collection
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *collectionRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Collection
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *collectionRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Collection, error) {
	if mock.GetByIDFunc == nil {
		panic("collectionRepoMock.GetByIDFunc: method is nil but collectionRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *collectionRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *collectionRepoMock) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Collection, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("collectionRepoMock.GetByIDForUpdateFunc: method is nil but collectionRepo.GetByIDForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByIDForUpdate.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, callInfo)
	mock.lockGetByIDForUpdate.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, id)
}

func (mock *collectionRepoMock) GetByIDForUpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByIDForUpdate.RLock()
	calls := mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
	return calls
}

func (mock *collectionRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Collection, error) {
	if mock.ListByUserFunc == nil {
		panic("collectionRepoMock.ListByUserFunc: method is nil but collectionRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *collectionRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *collectionRepoMock) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.CountByUserFunc == nil {
		panic("collectionRepoMock.CountByUserFunc: method is nil but collectionRepo.CountByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockCountByUser.Lock()
	mock.calls.CountByUser = append(mock.calls.CountByUser, callInfo)
	mock.lockCountByUser.Unlock()
	return mock.CountByUserFunc(ctx, userID)
}

func (mock *collectionRepoMock) CountByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockCountByUser.RLock()
	calls := mock.calls.CountByUser
	mock.lockCountByUser.RUnlock()
	return calls
}

func (mock *collectionRepoMock) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	if mock.ListIDsFunc == nil {
		panic("collectionRepoMock.ListIDsFunc: method is nil but collectionRepo.ListIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListIDs.Lock()
	mock.calls.ListIDs = append(mock.calls.ListIDs, callInfo)
	mock.lockListIDs.Unlock()
	return mock.ListIDsFunc(ctx)
}

func (mock *collectionRepoMock) ListIDsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListIDs.RLock()
	calls := mock.calls.ListIDs
	mock.lockListIDs.RUnlock()
	return calls
}

func (mock *collectionRepoMock) Update(ctx context.Context, id uuid.UUID, p domain.CollectionPatch) (*domain.Collection, error) {
	if mock.UpdateFunc == nil {
		panic("collectionRepoMock.UpdateFunc: method is nil but collectionRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		P   domain.CollectionPatch
	}{Ctx: ctx, ID: id, P: p}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, p)
}

func (mock *collectionRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	P   domain.CollectionPatch
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *collectionRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("collectionRepoMock.DeleteFunc: method is nil but collectionRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *collectionRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *collectionRepoMock) DeleteByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.DeleteByUserFunc == nil {
		panic("collectionRepoMock.DeleteByUserFunc: method is nil but collectionRepo.DeleteByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockDeleteByUser.Lock()
	mock.calls.DeleteByUser = append(mock.calls.DeleteByUser, callInfo)
	mock.lockDeleteByUser.Unlock()
	return mock.DeleteByUserFunc(ctx, userID)
}

func (mock *collectionRepoMock) DeleteByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockDeleteByUser.RLock()
	calls := mock.calls.DeleteByUser
	mock.lockDeleteByUser.RUnlock()
	return calls
}

func (mock *collectionRepoMock) AdjustProgress(ctx context.Context, id uuid.UUID, d domain.ProgressDelta) (*domain.Collection, error) {
	if mock.AdjustProgressFunc == nil {
		panic("collectionRepoMock.AdjustProgressFunc: method is nil but collectionRepo.AdjustProgress was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		D   domain.ProgressDelta
	}{Ctx: ctx, ID: id, D: d}
	mock.lockAdjustProgress.Lock()
	mock.calls.AdjustProgress = append(mock.calls.AdjustProgress, callInfo)
	mock.lockAdjustProgress.Unlock()
	return mock.AdjustProgressFunc(ctx, id, d)
}

func (mock *collectionRepoMock) AdjustProgressCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	D   domain.ProgressDelta
} {
	mock.lockAdjustProgress.RLock()
	calls := mock.calls.AdjustProgress
	mock.lockAdjustProgress.RUnlock()
	return calls
}

func (mock *collectionRepoMock) SetProgress(ctx context.Context, id uuid.UUID, c domain.LevelCounts) (*domain.Collection, error) {
	if mock.SetProgressFunc == nil {
		panic("collectionRepoMock.SetProgressFunc: method is nil but collectionRepo.SetProgress was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		C   domain.LevelCounts
	}{Ctx: ctx, ID: id, C: c}
	mock.lockSetProgress.Lock()
	mock.calls.SetProgress = append(mock.calls.SetProgress, callInfo)
	mock.lockSetProgress.Unlock()
	return mock.SetProgressFunc(ctx, id, c)
}

func (mock *collectionRepoMock) SetProgressCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	C   domain.LevelCounts
} {
	mock.lockSetProgress.RLock()
	calls := mock.calls.SetProgress
	mock.lockSetProgress.RUnlock()
	return calls
}

var _ wordRepo = &wordRepoMock{}

type wordRepoMock struct {
	CreateFunc             func(ctx context.Context, w *domain.Word) (*domain.Word, error)
	GetByIDFunc            func(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	ExistsByTermFunc       func(ctx context.Context, collectionID uuid.UUID, normalized string) (bool, error)
	ListByCollectionFunc   func(ctx context.Context, collectionID uuid.UUID) ([]domain.Word, error)
	ListByUserFunc         func(ctx context.Context, userID uuid.UUID) ([]domain.Word, error)
	DeleteFunc             func(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	DeleteByCollectionFunc func(ctx context.Context, collectionID uuid.UUID) (int, error)
	DeleteByUserFunc       func(ctx context.Context, userID uuid.UUID) (int, error)
	UpdateLevelFunc        func(ctx context.Context, id uuid.UUID, level domain.Level, review *domain.Review) (domain.Level, *domain.Word, error)
	CountByLevelFunc       func(ctx context.Context, collectionID uuid.UUID) (domain.LevelCounts, error)
	BulkCreateFunc         func(ctx context.Context, words []domain.Word) (int, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			W   *domain.Word
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ExistsByTerm []struct {
			Ctx          context.Context
			CollectionID uuid.UUID
			Normalized   string
		}
		ListByCollection []struct {
			Ctx          context.Context
			CollectionID uuid.UUID
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		DeleteByCollection []struct {
			Ctx          context.Context
			CollectionID uuid.UUID
		}
		DeleteByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		UpdateLevel []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Level  domain.Level
			Review *domain.Review
		}
		CountByLevel []struct {
			Ctx          context.Context
			CollectionID uuid.UUID
		}
		BulkCreate []struct {
			Ctx   context.Context
			Words []domain.Word
		}
	}
	lockCreate             sync.RWMutex
	lockGetByID            sync.RWMutex
	lockExistsByTerm       sync.RWMutex
	lockListByCollection   sync.RWMutex
	lockListByUser         sync.RWMutex
	lockDelete             sync.RWMutex
	lockDeleteByCollection sync.RWMutex
	lockDeleteByUser       sync.RWMutex
	lockUpdateLevel        sync.RWMutex
	lockCountByLevel       sync.RWMutex
	lockBulkCreate         sync.RWMutex
}

func (mock *wordRepoMock) Create(ctx context.Context, w *domain.Word) (*domain.Word, error) {
	if mock.CreateFunc == nil {
		panic("wordRepoMock.CreateFunc: method is nil but wordRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		W   *domain.Word
	}{Ctx: ctx, W: w}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, w)
}

func (mock *wordRepoMock) CreateCalls() []struct {
	Ctx context.Context
	W   *domain.Word
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *wordRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	if mock.GetByIDFunc == nil {
		panic("wordRepoMock.GetByIDFunc: method is nil but wordRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *wordRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *wordRepoMock) ExistsByTerm(ctx context.Context, collectionID uuid.UUID, normalized string) (bool, error) {
	if mock.ExistsByTermFunc == nil {
		panic("wordRepoMock.ExistsByTermFunc: method is nil but wordRepo.ExistsByTerm was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		CollectionID uuid.UUID
		Normalized   string
	}{Ctx: ctx, CollectionID: collectionID, Normalized: normalized}
	mock.lockExistsByTerm.Lock()
	mock.calls.ExistsByTerm = append(mock.calls.ExistsByTerm, callInfo)
	mock.lockExistsByTerm.Unlock()
	return mock.ExistsByTermFunc(ctx, collectionID, normalized)
}

func (mock *wordRepoMock) ExistsByTermCalls() []struct {
	Ctx          context.Context
	CollectionID uuid.UUID
	Normalized   string
} {
	mock.lockExistsByTerm.RLock()
	calls := mock.calls.ExistsByTerm
	mock.lockExistsByTerm.RUnlock()
	return calls
}

func (mock *wordRepoMock) ListByCollection(ctx context.Context, collectionID uuid.UUID) ([]domain.Word, error) {
	if mock.ListByCollectionFunc == nil {
		panic("wordRepoMock.ListByCollectionFunc: method is nil but wordRepo.ListByCollection was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		CollectionID uuid.UUID
	}{Ctx: ctx, CollectionID: collectionID}
	mock.lockListByCollection.Lock()
	mock.calls.ListByCollection = append(mock.calls.ListByCollection, callInfo)
	mock.lockListByCollection.Unlock()
	return mock.ListByCollectionFunc(ctx, collectionID)
}

func (mock *wordRepoMock) ListByCollectionCalls() []struct {
	Ctx          context.Context
	CollectionID uuid.UUID
} {
	mock.lockListByCollection.RLock()
	calls := mock.calls.ListByCollection
	mock.lockListByCollection.RUnlock()
	return calls
}

func (mock *wordRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Word, error) {
	if mock.ListByUserFunc == nil {
		panic("wordRepoMock.ListByUserFunc: method is nil but wordRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *wordRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *wordRepoMock) Delete(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	if mock.DeleteFunc == nil {
		panic("wordRepoMock.DeleteFunc: method is nil but wordRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *wordRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *wordRepoMock) DeleteByCollection(ctx context.Context, collectionID uuid.UUID) (int, error) {
	if mock.DeleteByCollectionFunc == nil {
		panic("wordRepoMock.DeleteByCollectionFunc: method is nil but wordRepo.DeleteByCollection was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		CollectionID uuid.UUID
	}{Ctx: ctx, CollectionID: collectionID}
	mock.lockDeleteByCollection.Lock()
	mock.calls.DeleteByCollection = append(mock.calls.DeleteByCollection, callInfo)
	mock.lockDeleteByCollection.Unlock()
	return mock.DeleteByCollectionFunc(ctx, collectionID)
}

func (mock *wordRepoMock) DeleteByCollectionCalls() []struct {
	Ctx          context.Context
	CollectionID uuid.UUID
} {
	mock.lockDeleteByCollection.RLock()
	calls := mock.calls.DeleteByCollection
	mock.lockDeleteByCollection.RUnlock()
	return calls
}

func (mock *wordRepoMock) DeleteByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.DeleteByUserFunc == nil {
		panic("wordRepoMock.DeleteByUserFunc: method is nil but wordRepo.DeleteByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockDeleteByUser.Lock()
	mock.calls.DeleteByUser = append(mock.calls.DeleteByUser, callInfo)
	mock.lockDeleteByUser.Unlock()
	return mock.DeleteByUserFunc(ctx, userID)
}

func (mock *wordRepoMock) DeleteByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockDeleteByUser.RLock()
	calls := mock.calls.DeleteByUser
	mock.lockDeleteByUser.RUnlock()
	return calls
}

func (mock *wordRepoMock) UpdateLevel(ctx context.Context, id uuid.UUID, level domain.Level, review *domain.Review) (domain.Level, *domain.Word, error) {
	if mock.UpdateLevelFunc == nil {
		panic("wordRepoMock.UpdateLevelFunc: method is nil but wordRepo.UpdateLevel was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Level  domain.Level
		Review *domain.Review
	}{Ctx: ctx, ID: id, Level: level, Review: review}
	mock.lockUpdateLevel.Lock()
	mock.calls.UpdateLevel = append(mock.calls.UpdateLevel, callInfo)
	mock.lockUpdateLevel.Unlock()
	return mock.UpdateLevelFunc(ctx, id, level, review)
}

func (mock *wordRepoMock) UpdateLevelCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Level  domain.Level
	Review *domain.Review
} {
	mock.lockUpdateLevel.RLock()
	calls := mock.calls.UpdateLevel
	mock.lockUpdateLevel.RUnlock()
	return calls
}

func (mock *wordRepoMock) CountByLevel(ctx context.Context, collectionID uuid.UUID) (domain.LevelCounts, error) {
	if mock.CountByLevelFunc == nil {
		panic("wordRepoMock.CountByLevelFunc: method is nil but wordRepo.CountByLevel was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		CollectionID uuid.UUID
	}{Ctx: ctx, CollectionID: collectionID}
	mock.lockCountByLevel.Lock()
	mock.calls.CountByLevel = append(mock.calls.CountByLevel, callInfo)
	mock.lockCountByLevel.Unlock()
	return mock.CountByLevelFunc(ctx, collectionID)
}

func (mock *wordRepoMock) CountByLevelCalls() []struct {
	Ctx          context.Context
	CollectionID uuid.UUID
} {
	mock.lockCountByLevel.RLock()
	calls := mock.calls.CountByLevel
	mock.lockCountByLevel.RUnlock()
	return calls
}

func (mock *wordRepoMock) BulkCreate(ctx context.Context, words []domain.Word) (int, error) {
	if mock.BulkCreateFunc == nil {
		panic("wordRepoMock.BulkCreateFunc: method is nil but wordRepo.BulkCreate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Words []domain.Word
	}{Ctx: ctx, Words: words}
	mock.lockBulkCreate.Lock()
	mock.calls.BulkCreate = append(mock.calls.BulkCreate, callInfo)
	mock.lockBulkCreate.Unlock()
	return mock.BulkCreateFunc(ctx, words)
}

func (mock *wordRepoMock) BulkCreateCalls() []struct {
	Ctx   context.Context
	Words []domain.Word
} {
	mock.lockBulkCreate.RLock()
	calls := mock.calls.BulkCreate
	mock.lockBulkCreate.RUnlock()
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
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
