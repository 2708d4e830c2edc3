package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bookrack.backend/internal/domain/entities"
	domainerrors "bookrack.backend/internal/domain/errors"
	"bookrack.backend/internal/interfaces/http/response"
	"bookrack.backend/internal/usecases"
)

// AuthorHandler handles author endpoints
type AuthorHandler struct {
	authorUsecase *usecases.AuthorUsecase
}

// NewAuthorHandler creates a new author handler
func NewAuthorHandler(authorUsecase *usecases.AuthorUsecase) *AuthorHandler {
	return &AuthorHandler{authorUsecase: authorUsecase}
}

// Create handles author creation
// POST /api/v1/authors/
func (h *AuthorHandler) Create(c *gin.Context) {
	var input entities.CreateAuthorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.UnprocessableEntity(err.Error()))
		return
	}

	author, err := h.authorUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "author created", gin.H{"author": author})
}

// List handles listing all authors
// GET /api/v1/authors/
func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.authorUsecase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "authors retrieved", gin.H{"authors": authors})
}

// Get handles fetching a single author
// GET /api/v1/authors/:id/
func (h *AuthorHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	author, err := h.authorUsecase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "author retrieved", gin.H{"author": author})
}

// Update handles a full replace of the name fields
// PUT /api/v1/authors/:id/
func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input entities.UpdateAuthorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.UnprocessableEntity(err.Error()))
		return
	}

	author, err := h.authorUsecase.Update(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "author updated", gin.H{"author": author})
}

// Patch handles a partial update
// PATCH /api/v1/authors/:id/
func (h *AuthorHandler) Patch(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input entities.PatchAuthorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.UnprocessableEntity(err.Error()))
		return
	}

	author, err := h.authorUsecase.Patch(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "author updated", gin.H{"author": author})
}

// Delete handles author deletion, cascading to owned books
// DELETE /api/v1/authors/:id/
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.authorUsecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UpsertAvatar handles avatar upload
// POST /api/v1/authors/avatar/:id
func (h *AuthorHandler) UpsertAvatar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		response.Error(c, domainerrors.UnprocessableEntity("avatar file is required"))
		return
	}

	src, err := file.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer src.Close()

	author, err := h.authorUsecase.UpsertAvatar(c.Request.Context(), id, src, file.Filename)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "avatar uploaded", gin.H{"author": author})
}

// DeleteAvatar handles avatar removal
// DELETE /api/v1/authors/avatar/:id
func (h *AuthorHandler) DeleteAvatar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	author, hadAvatar, err := h.authorUsecase.DeleteAvatar(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	message := "avatar deleted"
	if !hadAvatar {
		message = "nothing to delete"
	}
	response.Success(c, http.StatusOK, message, gin.H{"author": author})
}

// ServeAvatar serves a stored avatar file
// GET /api/v1/authors/uploads/:filename
func (h *AuthorHandler) ServeAvatar(c *gin.Context) {
	path, err := h.authorUsecase.AvatarPath(c.Param("filename"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.File(path)
}

// parseID reads the numeric id path parameter; a non-numeric id maps to
// NotFound like any other unknown resource.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Error(c, domainerrors.NotFound("resource not found"))
		return 0, false
	}
	return uint(id), true
}
