package question

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// QuestionStore is the narrow persistence interface the engine reads and
// writes through. Implementations must return questions in ascending id
// order so pagination stays deterministic, and must materialize full result
// sets (no lazy cursors).
type QuestionStore interface {
	ListAll(ctx context.Context) ([]Question, error)
	GetByID(ctx context.Context, id int) (*Question, error)
	FilterByCategory(ctx context.Context, categoryID int) ([]Question, error)
	SearchText(ctx context.Context, term string) ([]Question, error)
	Insert(ctx context.Context, q Question) (Question, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// CategoryDirectory is the read-only view of the fixed category table.
// Get returns (nil, nil) when the id is unknown.
type CategoryDirectory interface {
	All(ctx context.Context) ([]Category, error)
	Get(ctx context.Context, id int) (*Category, error)
}

// Service owns the query, mutation, and quiz-selection logic over the bank.
type Service struct {
	store      QuestionStore
	categories CategoryDirectory
	logger     zerolog.Logger
}

// NewService wires the engine to its store and category directory.
func NewService(store QuestionStore, categories CategoryDirectory, logger zerolog.Logger) *Service {
	return &Service{
		store:      store,
		categories: categories,
		logger:     logger.With().Str("component", "question_service").Logger(),
	}
}

// storeCategoryID translates the zero-based category id used by external
// callers into the store's one-based id. Every category-scoped read path
// goes through here; do not inline the offset anywhere else.
func storeCategoryID(external int) int {
	return external + 1
}

// Categories returns the full category table in display order.
func (s *Service) Categories(ctx context.Context) ([]Category, error) {
	return s.categories.All(ctx)
}

// ListQuestions returns one page of the whole bank.
func (s *Service) ListQuestions(ctx context.Context, page int) (Page, error) {
	all, err := s.store.ListAll(ctx)
	if err != nil {
		return Page{}, fmt.Errorf("list questions: %w", err)
	}

	items := pageWindow(all, page)
	if len(items) == 0 {
		return Page{}, fmt.Errorf("page %d is out of range, no questions found: %w", page, ErrNotFound)
	}

	names, err := s.categoryNames(ctx)
	if err != nil {
		return Page{}, err
	}

	return Page{
		Questions:      items,
		Page:           page,
		TotalQuestions: len(all),
		Categories:     names,
	}, nil
}

// SearchQuestions returns one page of the questions whose text contains term,
// matched case-insensitively. TotalQuestions counts every match, not just the
// requested window; a page past the last match yields an empty Questions
// slice rather than an error, so clients can page off the end of a live
// search the same way the listing UI does.
func (s *Service) SearchQuestions(ctx context.Context, page int, term string) (Page, error) {
	matches, err := s.store.SearchText(ctx, term)
	if err != nil {
		return Page{}, fmt.Errorf("search questions: %w", err)
	}
	if len(matches) == 0 {
		return Page{}, fmt.Errorf("no questions matching %q: %w", term, ErrNotFound)
	}

	items := pageWindow(matches, page)
	if items == nil {
		items = []Question{}
	}

	names, err := s.categoryNames(ctx)
	if err != nil {
		return Page{}, err
	}

	return Page{
		Questions:      items,
		Page:           page,
		TotalQuestions: len(matches),
		Categories:     names,
	}, nil
}

// ListQuestionsByCategory returns one page of a single category's questions.
// The id is the external zero-based form. An unknown category and a known
// category with no questions both come back as ErrNotFound, differing only
// in message.
func (s *Service) ListQuestionsByCategory(ctx context.Context, categoryID, page int) (Page, error) {
	cat, err := s.categories.Get(ctx, storeCategoryID(categoryID))
	if err != nil {
		return Page{}, fmt.Errorf("resolve category: %w", err)
	}
	if cat == nil {
		return Page{}, fmt.Errorf("category %d cannot be found: %w", categoryID, ErrNotFound)
	}

	questions, err := s.store.FilterByCategory(ctx, storeCategoryID(categoryID))
	if err != nil {
		return Page{}, fmt.Errorf("list category questions: %w", err)
	}
	if len(questions) == 0 {
		return Page{}, fmt.Errorf("no questions in category %d: %w", categoryID, ErrNotFound)
	}

	items := pageWindow(questions, page)
	if len(items) == 0 {
		return Page{}, fmt.Errorf("no questions in category %d on page %d: %w", categoryID, page, ErrNotFound)
	}

	names, err := s.categoryNames(ctx)
	if err != nil {
		return Page{}, err
	}

	current := cat.Type
	return Page{
		Questions:       items,
		Page:            page,
		TotalQuestions:  len(questions),
		Categories:      names,
		CurrentCategory: &current,
	}, nil
}

func (s *Service) categoryNames(ctx context.Context) ([]string, error) {
	categories, err := s.categories.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Type)
	}
	return names, nil
}
