package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookrack.backend/internal/domain/entities"
	domainerrors "bookrack.backend/internal/domain/errors"
	"bookrack.backend/internal/interfaces/http/response"
	"bookrack.backend/internal/usecases"
)

// UserHandler handles account endpoints
type UserHandler struct {
	userUsecase *usecases.UserUsecase
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUsecase *usecases.UserUsecase) *UserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

// Register handles account registration
// POST /api/v1/users/
func (h *UserHandler) Register(c *gin.Context) {
	var input entities.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.UnprocessableEntity(err.Error()))
		return
	}

	user, err := h.userUsecase.Register(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "registration successful, check your email to confirm the account", gin.H{"user": user})
}

// Login handles credential exchange for an access token
// POST /api/v1/users/login
func (h *UserHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.UnprocessableEntity(err.Error()))
		return
	}

	user, token, err := h.userUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	message := fmt.Sprintf("Logged in as %s", user.Username)
	response.Success(c, http.StatusOK, message, gin.H{"access_token": token})
}

// Confirm handles the emailed verification link
// GET /api/v1/users/confirm/:token
func (h *UserHandler) Confirm(c *gin.Context) {
	user, err := h.userUsecase.ConfirmEmail(c.Request.Context(), c.Param("token"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "email verified", gin.H{"user": user})
}
