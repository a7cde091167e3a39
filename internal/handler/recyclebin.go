package handler

import (
	"log/slog"
	"net/http"

	"snipvault/internal/domain/models"
	"snipvault/internal/domain/services"
	"snipvault/internal/httputil"
)

// RecycleBinHandler handles recycle-bin HTTP requests
type RecycleBinHandler struct {
	binService services.RecycleBinService
	logger     *slog.Logger
}

// NewRecycleBinHandler creates a new recycle-bin handler
func NewRecycleBinHandler(binService services.RecycleBinService, logger *slog.Logger) *RecycleBinHandler {
	return &RecycleBinHandler{
		binService: binService,
		logger:     logger,
	}
}

// GetRecycleBin lists everything in the snippet-side bin
// GET /api/recycle-bin
func (h *RecycleBinHandler) GetRecycleBin(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	bin, err := h.binService.ListRecycleBin(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, bin)
}

// GetMediaRecycleBin lists everything in the media bin
// GET /api/media/recycle-bin
func (h *RecycleBinHandler) GetMediaRecycleBin(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	bin, err := h.binService.ListMediaRecycleBin(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, bin)
}

// RestoreEntity moves one entity out of the bin
// POST /api/recycle-bin/{kind}/{id}/restore
func (h *RecycleBinHandler) RestoreEntity(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	kind, id, ok := h.pathTarget(w, r)
	if !ok {
		return
	}

	if err := h.binService.Restore(r.Context(), userID, kind, id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// PurgeEntity permanently deletes one entity from the bin
// DELETE /api/recycle-bin/{kind}/{id}
func (h *RecycleBinHandler) PurgeEntity(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	kind, id, ok := h.pathTarget(w, r)
	if !ok {
		return
	}

	if err := h.binService.Purge(r.Context(), userID, kind, id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Batch applies restore or permanent-delete to a selected set
// POST /api/recycle-bin/batch
func (h *RecycleBinHandler) Batch(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req services.BatchRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.binService.Batch(r.Context(), userID, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, result)
}

// EmptyBin purges everything currently in the snippet-side bin
// DELETE /api/recycle-bin
func (h *RecycleBinHandler) EmptyBin(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	result, err := h.binService.EmptyBin(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, result)
}

// EmptyMediaBin purges everything currently in the media bin
// DELETE /api/media/recycle-bin
func (h *RecycleBinHandler) EmptyMediaBin(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	result, err := h.binService.EmptyMediaBin(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, result)
}

// HealthCheck is a simple liveness endpoint
// GET /health
func (h *RecycleBinHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// pathTarget parses the {kind} and {id} path values.
func (h *RecycleBinHandler) pathTarget(w http.ResponseWriter, r *http.Request) (models.Kind, string, bool) {
	kind, err := models.ParseKind(r.PathValue("kind"))
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return "", "", false
	}

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "id is required")
		return "", "", false
	}

	return kind, id, true
}
