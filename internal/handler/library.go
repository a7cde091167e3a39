package handler

import (
	"log/slog"
	"net/http"

	"snipvault/internal/domain/models"
	"snipvault/internal/domain/services"
	"snipvault/internal/httputil"
)

// LibraryHandler handles folder and category HTTP requests
type LibraryHandler struct {
	folderService   services.FolderService
	categoryService services.CategoryService
	binService      services.RecycleBinService
	logger          *slog.Logger
}

// NewLibraryHandler creates a new library handler
func NewLibraryHandler(
	folderService services.FolderService,
	categoryService services.CategoryService,
	binService services.RecycleBinService,
	logger *slog.Logger,
) *LibraryHandler {
	return &LibraryHandler{
		folderService:   folderService,
		categoryService: categoryService,
		binService:      binService,
		logger:          logger,
	}
}

// CreateFolder creates a new folder
// POST /api/folders
func (h *LibraryHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req services.CreateFolderRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.UserID = userID

	folder, err := h.folderService.CreateFolder(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, folder)
}

// ListFolders retrieves the user's active folders
// GET /api/folders
func (h *LibraryHandler) ListFolders(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	folders, err := h.folderService.ListFolders(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, folders)
}

// DeleteFolder soft-deletes a folder into the recycle bin
// DELETE /api/folders/{id}
func (h *LibraryHandler) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "folder ID is required")
		return
	}

	if err := h.binService.SoftDelete(r.Context(), userID, models.KindFolder, id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateCategory creates a new category
// POST /api/categories
func (h *LibraryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req services.CreateCategoryRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.UserID = userID

	category, err := h.categoryService.CreateCategory(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, category)
}

// ListCategories retrieves the user's active categories
// GET /api/categories
func (h *LibraryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	categories, err := h.categoryService.ListCategories(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, categories)
}

// DeleteCategory soft-deletes a category into the recycle bin
// DELETE /api/categories/{id}
func (h *LibraryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "category ID is required")
		return
	}

	if err := h.binService.SoftDelete(r.Context(), userID, models.KindCategory, id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
