package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"soulverse/internal/domain"
	"soulverse/internal/service"
)

// UserHandler mantiene dependencias para endpoints de usuarios.
type UserHandler struct {
	logger   *zap.Logger
	userServ *service.UserService
}

// NewUserHandler crea una instancia de UserHandler.
func NewUserHandler(logger *zap.Logger, userServ *service.UserService) *UserHandler {
	return &UserHandler{logger: logger, userServ: userServ}
}

// CreateUser maneja POST /api/users.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	user, err := h.userServ.Create(c.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, service.ErrNameRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}
		h.logger.Error("create user failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create user"})
		return
	}

	c.JSON(http.StatusCreated, user)
}

// ListUsers maneja GET /api/users.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userServ.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list users failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list users"})
		return
	}

	if users == nil {
		users = []domain.User{}
	}
	c.JSON(http.StatusOK, users)
}

// GetUser maneja GET /api/users/:id.
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userServ.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		default:
			h.logger.Error("get user failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not get user"})
		}
		return
	}

	c.JSON(http.StatusOK, user)
}
