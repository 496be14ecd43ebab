package study_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wortschatz-backend/internal/adapter/memory"
	"github.com/heartmarshall/wortschatz-backend/internal/domain"
	"github.com/heartmarshall/wortschatz-backend/internal/service/collection"
	"github.com/heartmarshall/wortschatz-backend/internal/service/study"
	"github.com/heartmarshall/wortschatz-backend/pkg/ctxutil"
)

func TestStudySession_UpdatesCollectionAggregates(t *testing.T) {
	t.Parallel()

	store := memory.New()
	collections := collection.NewService(slog.Default(), store.Collections(), store.Words(), store)
	svc := study.NewService(slog.Default(), collections, study.Options{DefaultSize: 10, MaxSize: 50})
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	c, err := collections.CreateCollection(ctx, collection.CreateCollectionInput{Name: "Basics"})
	require.NoError(t, err)
	for _, term := range []string{"Hallo", "Danke", "Bitte"} {
		_, err := collections.AddWord(ctx, collection.AddWordInput{CollectionID: c.ID, Term: term, Translation: "x"})
		require.NoError(t, err)
	}

	var done *study.Summary
	session, err := svc.BuildSession(ctx, study.BuildSessionInput{
		CollectionID: c.ID,
		OnComplete:   func(s study.Summary) { done = &s },
	})
	require.NoError(t, err)
	require.Equal(t, 3, session.Len())

	answers := []bool{true, false, true}
	for i, correct := range answers {
		out := session.Answer(ctx, correct)
		require.NoError(t, out.Err)
		more := session.Next()
		assert.Equal(t, i < len(answers)-1, more)
	}

	require.NotNil(t, done)
	assert.Equal(t, study.Summary{Correct: 2, Incorrect: 1, Total: 3, Percentage: 67}, *done)
	assert.Equal(t, study.StateCompleted, session.State())

	got, err := collections.GetCollection(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.Progress{Total: 3, New: 1, Learning: 2}, got.Progress)

	words, err := collections.ListWords(ctx, c.ID)
	require.NoError(t, err)
	var correct, incorrect int
	for _, w := range words {
		correct += w.CorrectCount
		incorrect += w.IncorrectCount
		assert.NotNil(t, w.LastReviewed)
	}
	assert.Equal(t, 2, correct)
	assert.Equal(t, 1, incorrect)
}

func TestStudySession_WordDeletedMidSession(t *testing.T) {
	t.Parallel()

	store := memory.New()
	collections := collection.NewService(slog.Default(), store.Collections(), store.Words(), store)
	svc := study.NewService(slog.Default(), collections, study.Options{})
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	c, err := collections.CreateCollection(ctx, collection.CreateCollectionInput{Name: "Basics"})
	require.NoError(t, err)
	first, err := collections.AddWord(ctx, collection.AddWordInput{CollectionID: c.ID, Term: "Hallo", Translation: "hello"})
	require.NoError(t, err)
	_, err = collections.AddWord(ctx, collection.AddWordInput{CollectionID: c.ID, Term: "Tschüss", Translation: "bye"})
	require.NoError(t, err)

	session, err := svc.BuildSession(ctx, study.BuildSessionInput{CollectionID: c.ID})
	require.NoError(t, err)

	removed, err := collections.RemoveWord(ctx, collection.RemoveWordInput{WordID: first.ID})
	require.NoError(t, err)
	require.True(t, removed)

	out := session.Answer(ctx, true)
	assert.ErrorIs(t, out.Err, domain.ErrNotFound)
	assert.True(t, session.Next())
	assert.NoError(t, session.Answer(ctx, true).Err)

	got, err := collections.GetCollection(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.Progress{Total: 1, Learning: 1}, got.Progress)
}
