package question

// Difficulty bounds for the bank.
const (
	DifficultyMin = 1
	DifficultyMax = 5
)

// Question is a single trivia entry in the bank. CategoryID is the store's
// native one-based category id, which is what the write API accepts; read
// paths that take a category from the outside use the zero-based form and
// go through storeCategoryID.
type Question struct {
	ID         int    `json:"id"`
	Text       string `json:"question"`
	Answer     string `json:"answer"`
	CategoryID int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Category is one row of the fixed lookup table seeded at provisioning time.
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// Page is one window of a listing result. TotalQuestions counts the full
// filtered set, not just the window. CurrentCategory is nil unless the
// listing was scoped to a single category.
type Page struct {
	Questions       []Question `json:"questions"`
	Page            int        `json:"page"`
	TotalQuestions  int        `json:"total_questions"`
	Categories      []string   `json:"categories"`
	CurrentCategory *string    `json:"current_category"`
}

// QuizRequest carries the caller-held session state for one quiz draw.
// CategoryID is the external zero-based id; nil means all categories.
// SeenIDs is never mutated by the engine.
type QuizRequest struct {
	CategoryID *int
	SeenIDs    []int
}
