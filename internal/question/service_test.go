package question

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	questions []Question
	nextID    int
	insertErr error
	listErr   error
}

func (s *stubStore) ListAll(_ context.Context) ([]Question, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return append([]Question(nil), s.questions...), nil
}

func (s *stubStore) GetByID(_ context.Context, id int) (*Question, error) {
	for _, q := range s.questions {
		if q.ID == id {
			found := q
			return &found, nil
		}
	}
	return nil, nil
}

func (s *stubStore) FilterByCategory(_ context.Context, categoryID int) ([]Question, error) {
	var out []Question
	for _, q := range s.questions {
		if q.CategoryID == categoryID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (s *stubStore) SearchText(_ context.Context, term string) ([]Question, error) {
	var out []Question
	for _, q := range s.questions {
		if strings.Contains(strings.ToLower(q.Text), strings.ToLower(term)) {
			out = append(out, q)
		}
	}
	return out, nil
}

func (s *stubStore) Insert(_ context.Context, q Question) (Question, error) {
	if s.insertErr != nil {
		return Question{}, s.insertErr
	}
	s.nextID++
	q.ID = s.nextID
	s.questions = append(s.questions, q)
	return q, nil
}

func (s *stubStore) Delete(_ context.Context, id int) (bool, error) {
	for i, q := range s.questions {
		if q.ID == id {
			s.questions = append(s.questions[:i], s.questions[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type stubDirectory struct {
	categories []Category
}

func (d *stubDirectory) All(_ context.Context) ([]Category, error) {
	return append([]Category(nil), d.categories...), nil
}

func (d *stubDirectory) Get(_ context.Context, id int) (*Category, error) {
	for _, c := range d.categories {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	return nil, nil
}

func fixedDirectory() *stubDirectory {
	return &stubDirectory{categories: []Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
		{ID: 3, Type: "Geography"},
		{ID: 4, Type: "History"},
		{ID: 5, Type: "Entertainment"},
		{ID: 6, Type: "Sports"},
	}}
}

// bankOf builds n questions spread round-robin over the six categories.
func bankOf(n int) []Question {
	questions := make([]Question, 0, n)
	for i := 1; i <= n; i++ {
		questions = append(questions, Question{
			ID:         i,
			Text:       fmt.Sprintf("Question %02d", i),
			Answer:     fmt.Sprintf("Answer %02d", i),
			CategoryID: (i-1)%6 + 1,
			Difficulty: (i-1)%5 + 1,
		})
	}
	return questions
}

func newTestService(store *stubStore) *Service {
	return NewService(store, fixedDirectory(), zerolog.Nop())
}

func TestListQuestionsFirstPage(t *testing.T) {
	store := &stubStore{questions: bankOf(25), nextID: 25}
	svc := newTestService(store)

	page, err := svc.ListQuestions(context.Background(), 1)
	require.NoError(t, err)

	assert.Len(t, page.Questions, 10)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 25, page.TotalQuestions)
	assert.Equal(t, []string{"Science", "Art", "Geography", "History", "Entertainment", "Sports"}, page.Categories)
	assert.Nil(t, page.CurrentCategory)
	assert.Equal(t, 1, page.Questions[0].ID)
	assert.Equal(t, 10, page.Questions[9].ID)
}

func TestListQuestionsLastPageIsPartial(t *testing.T) {
	store := &stubStore{questions: bankOf(25), nextID: 25}
	svc := newTestService(store)

	page, err := svc.ListQuestions(context.Background(), 3)
	require.NoError(t, err)

	assert.Len(t, page.Questions, 5)
	assert.Equal(t, 25, page.TotalQuestions)
	assert.Equal(t, 21, page.Questions[0].ID)
}

func TestListQuestionsPageOutOfRange(t *testing.T) {
	store := &stubStore{questions: bankOf(25), nextID: 25}
	svc := newTestService(store)

	_, err := svc.ListQuestions(context.Background(), 66)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "66")
}

func TestListQuestionsEmptyBank(t *testing.T) {
	svc := newTestService(&stubStore{})

	_, err := svc.ListQuestions(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListQuestionsStoreFailure(t *testing.T) {
	store := &stubStore{listErr: errors.New("connection reset")}
	svc := newTestService(store)

	_, err := svc.ListQuestions(context.Background(), 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestSearchQuestionsCaseInsensitive(t *testing.T) {
	store := &stubStore{questions: []Question{
		{ID: 1, Text: "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", Answer: "Maya Angelou", CategoryID: 4, Difficulty: 2},
		{ID: 2, Text: "What movie title won Best Picture in 1996?", Answer: "Braveheart", CategoryID: 5, Difficulty: 3},
		{ID: 3, Text: "Who discovered penicillin?", Answer: "Alexander Fleming", CategoryID: 1, Difficulty: 3},
	}, nextID: 3}
	svc := newTestService(store)

	page, err := svc.SearchQuestions(context.Background(), 1, "TITLE")
	require.NoError(t, err)

	assert.Equal(t, 2, page.TotalQuestions)
	assert.Len(t, page.Questions, 2)
	assert.Nil(t, page.CurrentCategory)
	for _, q := range page.Questions {
		assert.Contains(t, strings.ToLower(q.Text), "title")
	}
}

func TestSearchQuestionsTotalCountsAllMatches(t *testing.T) {
	store := &stubStore{questions: bankOf(25), nextID: 25}
	svc := newTestService(store)

	// every generated question matches "question"
	page, err := svc.SearchQuestions(context.Background(), 2, "question")
	require.NoError(t, err)

	assert.Equal(t, 25, page.TotalQuestions)
	assert.Len(t, page.Questions, 10)
	assert.Equal(t, 11, page.Questions[0].ID)
}

func TestSearchQuestionsPagePastMatchesIsEmptyNotError(t *testing.T) {
	store := &stubStore{questions: bankOf(5), nextID: 5}
	svc := newTestService(store)

	page, err := svc.SearchQuestions(context.Background(), 4, "question")
	require.NoError(t, err)

	assert.Empty(t, page.Questions)
	assert.NotNil(t, page.Questions)
	assert.Equal(t, 5, page.TotalQuestions)
}

func TestSearchQuestionsNoMatches(t *testing.T) {
	store := &stubStore{questions: bankOf(5), nextID: 5}
	svc := newTestService(store)

	_, err := svc.SearchQuestions(context.Background(), 1, "flux capacitor")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "flux capacitor")
}

func TestListQuestionsByCategoryTranslatesID(t *testing.T) {
	store := &stubStore{questions: bankOf(25), nextID: 25}
	svc := newTestService(store)

	// external id 0 is the store's category 1 (Science)
	page, err := svc.ListQuestionsByCategory(context.Background(), 0, 1)
	require.NoError(t, err)

	require.NotNil(t, page.CurrentCategory)
	assert.Equal(t, "Science", *page.CurrentCategory)
	for _, q := range page.Questions {
		assert.Equal(t, 1, q.CategoryID)
	}
	assert.Equal(t, 5, page.TotalQuestions)
}

func TestListQuestionsByCategoryUnknownCategory(t *testing.T) {
	store := &stubStore{questions: bankOf(25), nextID: 25}
	svc := newTestService(store)

	_, err := svc.ListQuestionsByCategory(context.Background(), 42, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "42")
}

func TestListQuestionsByCategoryEmptyCategory(t *testing.T) {
	// Sports exists in the directory but holds no questions
	store := &stubStore{questions: bankOf(5), nextID: 5}
	svc := newTestService(store)

	_, err := svc.ListQuestionsByCategory(context.Background(), 5, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}
