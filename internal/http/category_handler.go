package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"soulverse/internal/domain"
	"soulverse/internal/service"
)

// CategoryHandler mantiene dependencias para endpoints de categorías.
type CategoryHandler struct {
	logger       *zap.Logger
	categoryServ *service.CategoryService
}

// NewCategoryHandler crea una instancia de CategoryHandler.
func NewCategoryHandler(logger *zap.Logger, categoryServ *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{logger: logger, categoryServ: categoryServ}
}

// ListCategories maneja GET /api/categories.
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryServ.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list categories failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list categories"})
		return
	}

	if categories == nil {
		categories = []domain.Category{}
	}
	c.JSON(http.StatusOK, categories)
}

// GetCategory maneja GET /api/categories/:id.
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	category, err := h.categoryServ.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
		case errors.Is(err, service.ErrCategoryNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		default:
			h.logger.Error("get category failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not get category"})
		}
		return
	}

	c.JSON(http.StatusOK, category)
}

// CreateCategory maneja POST /api/categories.
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req struct {
		Name  string `json:"name" binding:"required"`
		URL   string `json:"url"`
		Order int    `json:"order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	category, err := h.categoryServ.Create(c.Request.Context(), service.CategoryInput{
		Name:  req.Name,
		URL:   req.URL,
		Order: req.Order,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNameRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		case errors.Is(err, service.ErrCategoryExists):
			c.JSON(http.StatusBadRequest, gin.H{"error": "category already exists"})
		default:
			h.logger.Error("create category failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create category"})
		}
		return
	}

	c.JSON(http.StatusCreated, category)
}

// UpdateCategory maneja PUT /api/categories/:id.
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	var req struct {
		Name  string `json:"name" binding:"required"`
		URL   string `json:"url"`
		Order int    `json:"order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	category, err := h.categoryServ.Update(c.Request.Context(), c.Param("id"), service.CategoryInput{
		Name:  req.Name,
		URL:   req.URL,
		Order: req.Order,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
		case errors.Is(err, service.ErrNameRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		case errors.Is(err, service.ErrCategoryExists):
			c.JSON(http.StatusBadRequest, gin.H{"error": "category already exists"})
		case errors.Is(err, service.ErrCategoryNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		default:
			h.logger.Error("update category failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update category"})
		}
		return
	}

	c.JSON(http.StatusOK, category)
}

// DeleteCategory maneja DELETE /api/categories/:id.
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	err := h.categoryServ.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
		case errors.Is(err, service.ErrCategoryNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		default:
			h.logger.Error("delete category failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete category"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}

// SeedCategories maneja POST /api/categories/seed de forma idempotente.
func (h *CategoryHandler) SeedCategories(c *gin.Context) {
	count, seeded, err := h.categoryServ.Seed(c.Request.Context())
	if err != nil {
		h.logger.Error("seed categories failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not seed categories"})
		return
	}

	if !seeded {
		c.JSON(http.StatusOK, gin.H{"message": "categories already seeded", "count": count})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "categories seeded", "count": count})
}
