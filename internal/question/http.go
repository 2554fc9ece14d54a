package question

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/triviabank/trivia-api/internal/logging"
	httperrors "github.com/triviabank/trivia-api/pkg/http/errors"
)

// HTTPHandlers exposes the question bank over REST. It is a thin translation
// layer: parse the request, call the service, serialize the outcome.
type HTTPHandlers struct {
	svc    *Service
	logger zerolog.Logger
}

// NewHTTPHandlers creates HTTP handlers for the question endpoints.
func NewHTTPHandlers(svc *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		svc:    svc,
		logger: logger.With().Str("component", "question_http").Logger(),
	}
}

// Categories handles GET /categories.
func (h *HTTPHandlers) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.Categories(r.Context())
	if err != nil {
		logger := h.requestLogger(r)
		logger.Error().Err(err).Msg("category listing failed")
		httperrors.RespondInternalError(w, "could not load categories")
		return
	}

	byID := make(map[int]string, len(categories))
	for _, c := range categories {
		byID[c.ID] = c.Type
	}
	h.respondJSON(w, http.StatusOK, byID)
}

// ListQuestions handles GET /questions?page=N.
func (h *HTTPHandlers) ListQuestions(w http.ResponseWriter, r *http.Request) {
	page := ParsePage(r.URL.Query().Get("page"))

	result, err := h.svc.ListQuestions(r.Context(), page)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, result)
}

// SearchQuestions handles POST /questions/search with {"searchTerm": ...}.
func (h *HTTPHandlers) SearchQuestions(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SearchTerm string `json:"searchTerm"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "Invalid JSON payload")
		return
	}
	page := ParsePage(r.URL.Query().Get("page"))

	result, err := h.svc.SearchQuestions(r.Context(), page, req.SearchTerm)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, result)
}

// CategoryQuestions handles GET /categories/{id}/questions. The path id is
// the external zero-based category id.
func (h *HTTPHandlers) CategoryQuestions(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "category id must be an integer")
		return
	}
	page := ParsePage(r.URL.Query().Get("page"))

	result, err := h.svc.ListQuestionsByCategory(r.Context(), categoryID, page)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, result)
}

// CreateQuestion handles POST /questions. The payload is decoded into a raw
// map so the service can apply its strict field validation to exactly what
// the client sent.
func (h *HTTPHandlers) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "Invalid JSON payload")
		return
	}

	created, err := h.svc.CreateQuestion(r.Context(), fields)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, map[string]any{
		"question_added": created,
		"success":        true,
	})
}

// DeleteQuestion handles DELETE /questions/{id}.
func (h *HTTPHandlers) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "question id must be an integer")
		return
	}

	deleted, err := h.svc.DeleteQuestion(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]any{
		"question_id_deleted": deleted,
		"success":             true,
	})
}

// Quiz handles POST /quizzes. The body carries the caller-held session
// state: previously served question ids plus an optional category. The
// category id is the external zero-based form; a missing category object or
// the sentinel "all" means no restriction.
func (h *HTTPHandlers) Quiz(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PreviousQuestions []int `json:"previous_questions"`
		QuizCategory      *struct {
			ID json.RawMessage `json:"id"`
		} `json:"quiz_category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "Invalid JSON payload")
		return
	}

	quizReq := QuizRequest{SeenIDs: req.PreviousQuestions}
	if req.QuizCategory != nil {
		var id int
		if err := json.Unmarshal(req.QuizCategory.ID, &id); err == nil {
			quizReq.CategoryID = &id
		}
		// any non-integer id ("all", "click", null) selects all categories
	}

	picked, err := h.svc.NextQuizQuestion(r.Context(), quizReq)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	// picked == nil serializes as {"question": null}: pool exhausted
	h.respondJSON(w, http.StatusOK, map[string]any{"question": picked})
}

func (h *HTTPHandlers) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httperrors.RespondNotFound(w, httperrors.ErrCodeNotFound, err.Error())
	case errors.Is(err, ErrUnprocessable):
		httperrors.RespondError(w, http.StatusUnprocessableEntity, httperrors.ErrCodeUnprocessable, err.Error())
	default:
		logger := h.requestLogger(r)
		logger.Error().Err(err).Msg("question request failed")
		httperrors.RespondInternalError(w, "internal error")
	}
}

// requestLogger prefers the request-scoped logger (it carries the request
// id) and falls back to the component logger outside the middleware chain.
func (h *HTTPHandlers) requestLogger(r *http.Request) zerolog.Logger {
	if logger := logging.FromContext(r.Context()); logger.GetLevel() != zerolog.Disabled {
		return logger
	}
	return h.logger
}

func (h *HTTPHandlers) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error().Err(err).Msg("response encode failed")
	}
}
