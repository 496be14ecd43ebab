package study

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
	"github.com/heartmarshall/wortschatz-backend/internal/service/collection"
)

var _ collectionStore = &collectionStoreMock{}

type collectionStoreMock struct {
	ListWordsFunc       func(ctx context.Context, collectionID uuid.UUID) ([]domain.Word, error)
	GetWordFunc         func(ctx context.Context, wordID uuid.UUID) (*domain.Word, error)
	UpdateWordLevelFunc func(ctx context.Context, input collection.UpdateWordLevelInput) (*collection.LevelChange, error)

	calls struct {
		ListWords []struct {
			Ctx          context.Context
			CollectionID uuid.UUID
		}
		GetWord []struct {
			Ctx    context.Context
			WordID uuid.UUID
		}
		UpdateWordLevel []struct {
			Ctx   context.Context
			Input collection.UpdateWordLevelInput
		}
	}
	lockListWords       sync.RWMutex
	lockGetWord         sync.RWMutex
	lockUpdateWordLevel sync.RWMutex
}

func (mock *collectionStoreMock) ListWords(ctx context.Context, collectionID uuid.UUID) ([]domain.Word, error) {
	if mock.ListWordsFunc == nil {
		panic("collectionStoreMock.ListWordsFunc: method is nil but collectionStore.ListWords was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		CollectionID uuid.UUID
	}{Ctx: ctx, CollectionID: collectionID}
	mock.lockListWords.Lock()
	mock.calls.ListWords = append(mock.calls.ListWords, callInfo)
	mock.lockListWords.Unlock()
	return mock.ListWordsFunc(ctx, collectionID)
}

func (mock *collectionStoreMock) ListWordsCalls() []struct {
	Ctx          context.Context
	CollectionID uuid.UUID
} {
	mock.lockListWords.RLock()
	calls := mock.calls.ListWords
	mock.lockListWords.RUnlock()
	return calls
}

func (mock *collectionStoreMock) GetWord(ctx context.Context, wordID uuid.UUID) (*domain.Word, error) {
	if mock.GetWordFunc == nil {
		panic("collectionStoreMock.GetWordFunc: method is nil but collectionStore.GetWord was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		WordID uuid.UUID
	}{Ctx: ctx, WordID: wordID}
	mock.lockGetWord.Lock()
	mock.calls.GetWord = append(mock.calls.GetWord, callInfo)
	mock.lockGetWord.Unlock()
	return mock.GetWordFunc(ctx, wordID)
}

func (mock *collectionStoreMock) GetWordCalls() []struct {
	Ctx    context.Context
	WordID uuid.UUID
} {
	mock.lockGetWord.RLock()
	calls := mock.calls.GetWord
	mock.lockGetWord.RUnlock()
	return calls
}

func (mock *collectionStoreMock) UpdateWordLevel(ctx context.Context, input collection.UpdateWordLevelInput) (*collection.LevelChange, error) {
	if mock.UpdateWordLevelFunc == nil {
		panic("collectionStoreMock.UpdateWordLevelFunc: method is nil but collectionStore.UpdateWordLevel was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input collection.UpdateWordLevelInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateWordLevel.Lock()
	mock.calls.UpdateWordLevel = append(mock.calls.UpdateWordLevel, callInfo)
	mock.lockUpdateWordLevel.Unlock()
	return mock.UpdateWordLevelFunc(ctx, input)
}

func (mock *collectionStoreMock) UpdateWordLevelCalls() []struct {
	Ctx   context.Context
	Input collection.UpdateWordLevelInput
} {
	mock.lockUpdateWordLevel.RLock()
	calls := mock.calls.UpdateWordLevel
	mock.lockUpdateWordLevel.RUnlock()
	return calls
}
