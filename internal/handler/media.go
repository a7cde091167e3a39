package handler

import (
	"log/slog"
	"net/http"

	"snipvault/internal/domain/models"
	"snipvault/internal/domain/services"
	"snipvault/internal/httputil"
)

// MediaHandler handles media library HTTP requests
type MediaHandler struct {
	mediaService services.MediaService
	binService   services.RecycleBinService
	logger       *slog.Logger
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(
	mediaService services.MediaService,
	binService services.RecycleBinService,
	logger *slog.Logger,
) *MediaHandler {
	return &MediaHandler{
		mediaService: mediaService,
		binService:   binService,
		logger:       logger,
	}
}

// CreateFile registers a media file's metadata
// POST /api/media/files
func (h *MediaHandler) CreateFile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req services.CreateMediaFileRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.UserID = userID

	file, err := h.mediaService.CreateFile(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, file)
}

// ListFiles retrieves the user's active media files
// GET /api/media/files
func (h *MediaHandler) ListFiles(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	files, err := h.mediaService.ListFiles(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, files)
}

// GetFile retrieves a media file by ID
// GET /api/media/files/{id}
func (h *MediaHandler) GetFile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "file ID is required")
		return
	}

	file, err := h.mediaService.GetFile(r.Context(), id, userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, file)
}

// DeleteFile soft-deletes a media file into the media recycle bin
// DELETE /api/media/files/{id}
func (h *MediaHandler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "file ID is required")
		return
	}

	if err := h.binService.SoftDelete(r.Context(), userID, models.KindMediaFile, id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateFolder creates a new media folder
// POST /api/media/folders
func (h *MediaHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req services.CreateMediaFolderRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.UserID = userID

	folder, err := h.mediaService.CreateFolder(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, folder)
}

// ListFolders retrieves the user's active media folders
// GET /api/media/folders
func (h *MediaHandler) ListFolders(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	folders, err := h.mediaService.ListFolders(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, folders)
}

// DeleteFolder soft-deletes a media folder into the media recycle bin
// DELETE /api/media/folders/{id}
func (h *MediaHandler) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "folder ID is required")
		return
	}

	if err := h.binService.SoftDelete(r.Context(), userID, models.KindMediaFolder, id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateCategory creates a new media category
// POST /api/media/categories
func (h *MediaHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req services.CreateMediaCategoryRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.UserID = userID

	category, err := h.mediaService.CreateCategory(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, category)
}

// ListCategories retrieves the user's active media categories
// GET /api/media/categories
func (h *MediaHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	categories, err := h.mediaService.ListCategories(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, categories)
}

// DeleteCategory soft-deletes a media category into the media recycle bin
// DELETE /api/media/categories/{id}
func (h *MediaHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "category ID is required")
		return
	}

	if err := h.binService.SoftDelete(r.Context(), userID, models.KindMediaCategory, id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
