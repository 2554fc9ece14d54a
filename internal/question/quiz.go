package question

import (
	"context"
	"fmt"
	"math/rand/v2"
)

// NextQuizQuestion draws one unseen question uniformly at random from the
// requested scope. A nil question with a nil error means the pool is
// exhausted; that ends the quiz session on the caller's side and is not an
// error. The engine keeps no session state of its own, so repeated draws
// only converge because the caller grows req.SeenIDs between calls.
func (s *Service) NextQuizQuestion(ctx context.Context, req QuizRequest) (*Question, error) {
	var (
		scope []Question
		err   error
	)
	if req.CategoryID != nil {
		scope, err = s.store.FilterByCategory(ctx, storeCategoryID(*req.CategoryID))
	} else {
		scope, err = s.store.ListAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("load quiz pool: %w", err)
	}

	seen := make(map[int]struct{}, len(req.SeenIDs))
	for _, id := range req.SeenIDs {
		seen[id] = struct{}{}
	}

	pool := make([]Question, 0, len(scope))
	for _, q := range scope {
		if _, ok := seen[q.ID]; !ok {
			pool = append(pool, q)
		}
	}
	if len(pool) == 0 {
		return nil, nil
	}

	picked := pool[rand.IntN(len(pool))]
	return &picked, nil
}
