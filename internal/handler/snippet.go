package handler

import (
	"log/slog"
	"net/http"

	"snipvault/internal/domain/models"
	"snipvault/internal/domain/services"
	"snipvault/internal/httputil"
)

// SnippetHandler handles snippet HTTP requests
type SnippetHandler struct {
	snippetService services.SnippetService
	binService     services.RecycleBinService
	logger         *slog.Logger
}

// NewSnippetHandler creates a new snippet handler
func NewSnippetHandler(
	snippetService services.SnippetService,
	binService services.RecycleBinService,
	logger *slog.Logger,
) *SnippetHandler {
	return &SnippetHandler{
		snippetService: snippetService,
		binService:     binService,
		logger:         logger,
	}
}

// CreateSnippet creates a new snippet
// POST /api/snippets
func (h *SnippetHandler) CreateSnippet(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req services.CreateSnippetRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.UserID = userID

	snippet, err := h.snippetService.CreateSnippet(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, snippet)
}

// ListSnippets retrieves the user's active snippets
// GET /api/snippets
func (h *SnippetHandler) ListSnippets(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	snippets, err := h.snippetService.ListSnippets(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, snippets)
}

// GetSnippet retrieves a snippet by ID
// GET /api/snippets/{id}
func (h *SnippetHandler) GetSnippet(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "snippet ID is required")
		return
	}

	snippet, err := h.snippetService.GetSnippet(r.Context(), id, userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, snippet)
}

// UpdateSnippet updates a snippet
// PATCH /api/snippets/{id}
func (h *SnippetHandler) UpdateSnippet(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "snippet ID is required")
		return
	}

	var req services.UpdateSnippetRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	snippet, err := h.snippetService.UpdateSnippet(r.Context(), id, userID, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, snippet)
}

// DeleteSnippet soft-deletes a snippet into the recycle bin
// DELETE /api/snippets/{id}
func (h *SnippetHandler) DeleteSnippet(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "snippet ID is required")
		return
	}

	if err := h.binService.SoftDelete(r.Context(), userID, models.KindSnippet, id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
