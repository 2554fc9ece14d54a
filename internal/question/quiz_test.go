package question

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextQuizQuestionSkipsSeen(t *testing.T) {
	store := &stubStore{questions: bankOf(10), nextID: 10}
	svc := newTestService(store)

	seen := []int{1, 2, 3, 4, 5}
	for range 20 {
		picked, err := svc.NextQuizQuestion(context.Background(), QuizRequest{SeenIDs: seen})
		require.NoError(t, err)
		require.NotNil(t, picked)
		assert.NotContains(t, seen, picked.ID)
	}
}

func TestNextQuizQuestionCategoryScope(t *testing.T) {
	store := &stubStore{questions: bankOf(24), nextID: 24}
	svc := newTestService(store)

	external := 0 // Science, store id 1
	for range 20 {
		picked, err := svc.NextQuizQuestion(context.Background(), QuizRequest{CategoryID: &external})
		require.NoError(t, err)
		require.NotNil(t, picked)
		assert.Equal(t, 1, picked.CategoryID)
	}
}

func TestNextQuizQuestionExhaustsPool(t *testing.T) {
	store := &stubStore{questions: bankOf(24), nextID: 24}
	svc := newTestService(store)

	external := 2 // Geography, store id 3: questions 3, 9, 15, 21
	var seen []int
	for draws := 0; ; draws++ {
		require.Less(t, draws, 10, "selector must exhaust the pool")

		picked, err := svc.NextQuizQuestion(context.Background(), QuizRequest{CategoryID: &external, SeenIDs: seen})
		require.NoError(t, err)
		if picked == nil {
			assert.Len(t, seen, 4)
			assert.ElementsMatch(t, []int{3, 9, 15, 21}, seen)
			return
		}
		assert.NotContains(t, seen, picked.ID)
		seen = append(seen, picked.ID)
	}
}

func TestNextQuizQuestionEmptyBank(t *testing.T) {
	svc := newTestService(&stubStore{})

	picked, err := svc.NextQuizQuestion(context.Background(), QuizRequest{})
	require.NoError(t, err)
	assert.Nil(t, picked)
}

func TestNextQuizQuestionDoesNotMutateSeen(t *testing.T) {
	store := &stubStore{questions: bankOf(10), nextID: 10}
	svc := newTestService(store)

	seen := []int{1, 2, 3}
	_, err := svc.NextQuizQuestion(context.Background(), QuizRequest{SeenIDs: seen})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, seen)
}

func TestNextQuizQuestionCoversWholePool(t *testing.T) {
	// with no seen ids every question should eventually come up
	store := &stubStore{questions: bankOf(6), nextID: 6}
	svc := newTestService(store)

	hits := map[int]int{}
	for range 300 {
		picked, err := svc.NextQuizQuestion(context.Background(), QuizRequest{})
		require.NoError(t, err)
		require.NotNil(t, picked)
		hits[picked.ID]++
	}
	assert.Len(t, hits, 6, "every question should be drawn at least once over 300 draws")
}
