package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"bookrack.backend/internal/domain/entities"
	domainerrors "bookrack.backend/internal/domain/errors"
	"bookrack.backend/internal/interfaces/http/response"
	"bookrack.backend/internal/usecases"
)

// BookHandler handles book endpoints
type BookHandler struct {
	bookUsecase *usecases.BookUsecase
}

// NewBookHandler creates a new book handler
func NewBookHandler(bookUsecase *usecases.BookUsecase) *BookHandler {
	return &BookHandler{bookUsecase: bookUsecase}
}

// Create handles book creation. Accepts JSON or form fields.
// POST /api/v1/books/
func (h *BookHandler) Create(c *gin.Context) {
	input, err := bindCreateBookInput(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	book, err := h.bookUsecase.Create(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "book created", gin.H{"book": book})
}

// List handles listing all books
// GET /api/v1/books/
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.bookUsecase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "books retrieved", gin.H{"books": books})
}

// Get handles fetching a single book
// GET /api/v1/books/:id/
func (h *BookHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	book, err := h.bookUsecase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "book retrieved", gin.H{"book": book})
}

// Update handles a full replace of title and year
// PUT /api/v1/books/:id/
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input entities.UpdateBookInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.UnprocessableEntity(err.Error()))
		return
	}

	book, err := h.bookUsecase.Update(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "book updated", gin.H{"book": book})
}

// Patch handles a partial update
// PATCH /api/v1/books/:id/
func (h *BookHandler) Patch(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input entities.PatchBookInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.UnprocessableEntity(err.Error()))
		return
	}

	book, err := h.bookUsecase.Patch(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "book updated", gin.H{"book": book})
}

// Delete handles book deletion
// DELETE /api/v1/books/:id/
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.bookUsecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// bindCreateBookInput reads creation fields from a JSON body or, for
// form submissions, from the title/year/author_id form values.
func bindCreateBookInput(c *gin.Context) (*entities.CreateBookInput, error) {
	if strings.HasPrefix(c.ContentType(), "application/json") {
		var input entities.CreateBookInput
		if err := c.ShouldBindJSON(&input); err != nil {
			return nil, domainerrors.UnprocessableEntity(err.Error())
		}
		return &input, nil
	}

	year, err := strconv.Atoi(c.PostForm("year"))
	if err != nil {
		return nil, domainerrors.UnprocessableEntity("year must be an integer")
	}
	authorID, err := strconv.ParseUint(c.PostForm("author_id"), 10, 32)
	if err != nil {
		return nil, domainerrors.UnprocessableEntity("author_id must be an integer")
	}

	return &entities.CreateBookInput{
		Title:    c.PostForm("title"),
		Year:     year,
		AuthorID: uint(authorID),
	}, nil
}
