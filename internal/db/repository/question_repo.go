package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/triviabank/trivia-api/internal/db/postgres"
	"github.com/triviabank/trivia-api/internal/question"
)

// QuestionRepo is the pgx-backed question store. Listing queries order by id
// ascending so pagination over repeated calls stays stable.
type QuestionRepo struct {
	db postgres.DBTX
}

var _ question.QuestionStore = (*QuestionRepo)(nil)

// NewQuestionRepo creates a question repository over the given pool or
// transaction.
func NewQuestionRepo(db postgres.DBTX) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// ListAll returns every question in the bank in id order.
func (r *QuestionRepo) ListAll(ctx context.Context) ([]question.Question, error) {
	query := `
		SELECT id, question, answer, category_id, difficulty
		FROM questions
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()

	return scanQuestions(rows)
}

// GetByID returns one question, or (nil, nil) when the id is unknown.
func (r *QuestionRepo) GetByID(ctx context.Context, id int) (*question.Question, error) {
	query := `
		SELECT id, question, answer, category_id, difficulty
		FROM questions
		WHERE id = $1
	`

	var q question.Question
	err := r.db.QueryRow(ctx, query, id).Scan(
		&q.ID,
		&q.Text,
		&q.Answer,
		&q.CategoryID,
		&q.Difficulty,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get question: %w", err)
	}

	return &q, nil
}

// FilterByCategory returns a category's questions in id order.
func (r *QuestionRepo) FilterByCategory(ctx context.Context, categoryID int) ([]question.Question, error) {
	query := `
		SELECT id, question, answer, category_id, difficulty
		FROM questions
		WHERE category_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("filter questions by category: %w", err)
	}
	defer rows.Close()

	return scanQuestions(rows)
}

// SearchText returns, in id order, the questions whose text contains term
// case-insensitively.
func (r *QuestionRepo) SearchText(ctx context.Context, term string) ([]question.Question, error) {
	query := `
		SELECT id, question, answer, category_id, difficulty
		FROM questions
		WHERE question ILIKE '%' || $1 || '%'
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, term)
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	defer rows.Close()

	return scanQuestions(rows)
}

// Insert stores a new question and returns it with the assigned id.
func (r *QuestionRepo) Insert(ctx context.Context, q question.Question) (question.Question, error) {
	query := `
		INSERT INTO questions (question, answer, category_id, difficulty)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, q.Text, q.Answer, q.CategoryID, q.Difficulty).Scan(&q.ID)
	if err != nil {
		return question.Question{}, fmt.Errorf("insert question: %w", err)
	}

	return q, nil
}

// Delete removes a question by id and reports whether it existed.
func (r *QuestionRepo) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete question: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanQuestions(rows pgx.Rows) ([]question.Question, error) {
	var questions []question.Question
	for rows.Next() {
		var q question.Question
		if err := rows.Scan(&q.ID, &q.Text, &q.Answer, &q.CategoryID, &q.Difficulty); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}
	return questions, nil
}
