package editorial

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"newsdesk/internal/reviews"
	"newsdesk/pkg/handlers"
	"newsdesk/pkg/routes"
)

// Handler provides HTTP endpoints for workflow operations and reply intake.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// BatchRequest selects the articles for a batch review run.
type BatchRequest struct {
	ArticleIDs []uuid.UUID `json:"article_ids"`
}

// ReplyRequest carries an interview reply delivered by a channel
// integration. Handle is the tracking identifier issued at dispatch:
// the email Message-ID or the call SID.
type ReplyRequest struct {
	Handle  string `json:"handle"`
	Content string `json:"content"`
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "editorial"),
	}
}

// Routes returns the route group definition for editorial endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/editorial",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/articles/{id}/review", Handler: h.Process},
			{Method: "POST", Pattern: "/articles/{id}/verdict", Handler: h.Submit},
			{Method: "POST", Pattern: "/batch", Handler: h.Batch},
			{Method: "POST", Pattern: "/replies/email", Handler: h.Reply},
			{Method: "POST", Pattern: "/replies/phone", Handler: h.Reply},
		},
	}
}

// Process runs the full review workflow for the article path parameter.
func (h *Handler) Process(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Process(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Submit routes an externally produced verdict for the article path parameter.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	var verdict reviews.Verdict
	if err := json.NewDecoder(r.Body).Decode(&verdict); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Submit(r.Context(), id, &verdict)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Batch runs the workflow for every article in the request body.
func (h *Handler) Batch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}
	if len(req.ArticleIDs) == 0 {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errors.New("article_ids required"))
		return
	}

	items := h.sys.Batch(r.Context(), req.ArticleIDs)
	handlers.RespondJSON(w, http.StatusOK, items)
}

// Reply accepts an interview reply and resumes the article's workflow.
func (h *Handler) Reply(w http.ResponseWriter, r *http.Request) {
	var req ReplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}
	if strings.TrimSpace(req.Handle) == "" || strings.TrimSpace(req.Content) == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errors.New("handle and content required"))
		return
	}

	result, err := h.sys.Resume(r.Context(), req.Handle, req.Content)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
