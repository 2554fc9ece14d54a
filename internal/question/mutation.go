package question

import (
	"context"
	"fmt"
	"math"
	"strconv"
)

// unprocessableReason is the fixed reason reported for every rejected create.
const unprocessableReason = "error when adding question"

// The only fields a create payload may carry. Anything else rejects the
// request outright; the original API contract treats unknown fields as
// malformed input, and clients depend on that.
var createFields = map[string]struct{}{
	"question":   {},
	"answer":     {},
	"category":   {},
	"difficulty": {},
}

// CreateQuestion validates a raw create payload and inserts the question.
// fields is the decoded JSON object as-is, so the strict field check sees
// exactly what the caller sent. On any failure the store is untouched and
// the result wraps ErrUnprocessable.
func (s *Service) CreateQuestion(ctx context.Context, fields map[string]any) (Question, error) {
	candidate, err := s.validateCreate(ctx, fields)
	if err != nil {
		s.logger.Warn().Err(err).Msg("create rejected")
		return Question{}, fmt.Errorf("%s: %w", unprocessableReason, ErrUnprocessable)
	}

	created, err := s.store.Insert(ctx, candidate)
	if err != nil {
		s.logger.Error().Err(err).Msg("question insert failed")
		return Question{}, fmt.Errorf("%s: %w", unprocessableReason, ErrUnprocessable)
	}

	s.logger.Info().Int("question_id", created.ID).Msg("question added")
	return created, nil
}

// DeleteQuestion removes the question with the given id. The store confirms
// the row is gone before the id is reported back.
func (s *Service) DeleteQuestion(ctx context.Context, id int) (int, error) {
	existed, err := s.store.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("delete question %d: %w", id, err)
	}
	if !existed {
		return 0, fmt.Errorf("question %d cannot be found, delete failed: %w", id, ErrNotFound)
	}

	s.logger.Info().Int("question_id", id).Msg("question deleted")
	return id, nil
}

func (s *Service) validateCreate(ctx context.Context, fields map[string]any) (Question, error) {
	for name := range fields {
		if _, ok := createFields[name]; !ok {
			return Question{}, fmt.Errorf("unrecognized field %q", name)
		}
	}

	text, err := stringField(fields, "question")
	if err != nil {
		return Question{}, err
	}
	answer, err := stringField(fields, "answer")
	if err != nil {
		return Question{}, err
	}
	categoryID, err := intField(fields, "category")
	if err != nil {
		return Question{}, err
	}
	difficulty, err := intField(fields, "difficulty")
	if err != nil {
		return Question{}, err
	}
	if difficulty < DifficultyMin || difficulty > DifficultyMax {
		return Question{}, fmt.Errorf("difficulty %d outside %d..%d", difficulty, DifficultyMin, DifficultyMax)
	}

	// category in the payload is the store's native one-based id
	cat, err := s.categories.Get(ctx, categoryID)
	if err != nil {
		return Question{}, fmt.Errorf("resolve category: %w", err)
	}
	if cat == nil {
		return Question{}, fmt.Errorf("category %d does not exist", categoryID)
	}

	return Question{
		Text:       text,
		Answer:     answer,
		CategoryID: categoryID,
		Difficulty: difficulty,
	}, nil
}

func stringField(fields map[string]any, name string) (string, error) {
	raw, ok := fields[name]
	if !ok {
		return "", fmt.Errorf("missing field %q", name)
	}
	value, ok := raw.(string)
	if !ok || value == "" {
		return "", fmt.Errorf("field %q must be a non-empty string", name)
	}
	return value, nil
}

func intField(fields map[string]any, name string) (int, error) {
	raw, ok := fields[name]
	if !ok {
		return 0, fmt.Errorf("missing field %q", name)
	}
	switch value := raw.(type) {
	case int:
		return value, nil
	case float64:
		// encoding/json decodes every number into a float64
		if value != math.Trunc(value) {
			return 0, fmt.Errorf("field %q must be an integer", name)
		}
		return int(value), nil
	case string:
		// the original form UI submits numeric fields as strings
		n, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("field %q must be an integer", name)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("field %q must be an integer", name)
	}
}
