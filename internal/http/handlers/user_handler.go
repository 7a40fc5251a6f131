package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/prospera/internal/domain"
	"github.com/saradorri/prospera/internal/infrastructure/logger"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	userUseCase domain.UserUseCase
	logger      *logger.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUseCase domain.UserUseCase, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// CreateUserRequest represents the registration request body
type CreateUserRequest struct {
	PhoneNumber string  `json:"phone_number" binding:"required,max=32" example:"+919876543210"`
	Name        *string `json:"name" binding:"omitempty,max=128" example:"Priya"`
	Email       *string `json:"email" binding:"omitempty,max=255" example:"priya@example.com"`
	Language    string  `json:"language" binding:"omitempty,max=8" example:"hi"`
}

// UpdateUserRequest represents a partial user update. Omitted and null fields are left unchanged.
type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=128" example:"Priya S"`
	Email    *string `json:"email" binding:"omitempty,max=255" example:"priya.s@example.com"`
	Language *string `json:"language" binding:"omitempty,max=8" example:"ta"`
}

// AddCoinsQuery carries the coins to credit, bounded to the 32-bit coins column
type AddCoinsQuery struct {
	Coins *int `form:"coins" binding:"required,min=-2147483648,max=2147483647" example:"10"`
}

// Create handles user registration
// @Summary Register a user
// @Description Create a user and its progress record
// @Tags users
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "User details"
// @Success 201 {object} domain.User
// @Failure 409 {object} domain.ErrorResponse
// @Failure 422 {object} domain.ErrorResponse
// @Router /api/users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindingError(err))
		return
	}

	user, err := h.userUseCase.Create(c.Request.Context(), domain.CreateUserInput{
		PhoneNumber: req.PhoneNumber,
		Name:        req.Name,
		Email:       req.Email,
		Language:    req.Language,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Get handles fetching a user
// @Summary Get a user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} domain.User
// @Failure 404 {object} domain.ErrorResponse
// @Router /api/users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := h.userUseCase.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// List handles listing users
// @Summary List users
// @Tags users
// @Produce json
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Page size" default(100)
// @Success 200 {array} domain.User
// @Router /api/users [get]
func (h *UserHandler) List(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}

	users, err := h.userUseCase.List(c.Request.Context(), page.Skip, page.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, nonNil(users))
}

// Update handles partial user updates
// @Summary Update a user
// @Description Only supplied fields are written; an empty name or email clears it
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body UpdateUserRequest true "Fields to update"
// @Success 200 {object} domain.User
// @Failure 404 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Failure 422 {object} domain.ErrorResponse
// @Router /api/users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindingError(err))
		return
	}

	user, err := h.userUseCase.Update(c.Request.Context(), id, domain.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Language: req.Language,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetProgress handles fetching a user's progress
// @Summary Get user progress
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} domain.UserProgress
// @Failure 404 {object} domain.ErrorResponse
// @Router /api/users/{id}/progress [get]
func (h *UserHandler) GetProgress(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	progress, err := h.userUseCase.GetProgress(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, progress)
}

// AddCoins handles crediting coins
// @Summary Add coins
// @Description Atomically add coins to a user's progress; negative values subtract
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Param coins query int true "Coins to add"
// @Success 200 {object} domain.AddCoinsResult
// @Failure 404 {object} domain.ErrorResponse
// @Failure 422 {object} domain.ErrorResponse
// @Router /api/users/{id}/progress/add-coins [post]
func (h *UserHandler) AddCoins(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var query AddCoinsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, bindingError(err))
		return
	}

	result, err := h.userUseCase.AddCoins(c.Request.Context(), id, *query.Coins)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// nonNil keeps empty lists serialised as [] rather than null
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
