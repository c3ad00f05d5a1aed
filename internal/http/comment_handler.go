package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"soulverse/internal/domain"
	"soulverse/internal/service"
)

// CommentHandler mantiene dependencias para endpoints de comentarios y likes.
type CommentHandler struct {
	logger      *zap.Logger
	commentServ *service.CommentService
	likeServ    *service.LikeService
}

// NewCommentHandler crea una instancia de CommentHandler.
func NewCommentHandler(logger *zap.Logger, commentServ *service.CommentService, likeServ *service.LikeService) *CommentHandler {
	return &CommentHandler{
		logger:      logger,
		commentServ: commentServ,
		likeServ:    likeServ,
	}
}

// CreateComment maneja POST /api/profiles/:profileId/comments.
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req struct {
		UserID        string `json:"user_id" binding:"required"`
		Title         string `json:"title" binding:"required"`
		Content       string `json:"content" binding:"required"`
		MBTIVote      string `json:"mbti_vote"`
		EnneagramVote string `json:"enneagram_vote"`
		ZodiacVote    string `json:"zodiac_vote"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id, title, and content are required"})
		return
	}

	comment, err := h.commentServ.Create(c.Request.Context(), service.CreateCommentInput{
		ProfileID:     c.Param("profileId"),
		UserID:        req.UserID,
		Title:         req.Title,
		Content:       req.Content,
		MBTIVote:      req.MBTIVote,
		EnneagramVote: req.EnneagramVote,
		ZodiacVote:    req.ZodiacVote,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id format"})
		case errors.Is(err, service.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id, title, and content are required"})
		case errors.Is(err, service.ErrInvalidVote):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		default:
			h.logger.Error("create comment failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create comment"})
		}
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// ListComments maneja GET /api/profiles/:profileId/comments.
func (h *CommentHandler) ListComments(c *gin.Context) {
	requestingUser := c.Query("user_id")
	if requestingUser == "" {
		// Alias de compatibilidad con clientes viejos.
		requestingUser = c.Query("userId")
	}

	comments, err := h.commentServ.ListByProfile(c.Request.Context(),
		c.Param("profileId"),
		c.Query("sort"),
		c.Query("filter"),
		requestingUser,
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile id"})
		case errors.Is(err, service.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		default:
			h.logger.Error("list comments failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list comments"})
		}
		return
	}

	if comments == nil {
		comments = []domain.Comment{}
	}
	c.JSON(http.StatusOK, comments)
}

// GetComment maneja GET /api/comments/:id.
func (h *CommentHandler) GetComment(c *gin.Context) {
	comment, err := h.commentServ.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment id"})
		case errors.Is(err, service.ErrCommentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
		default:
			h.logger.Error("get comment failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not get comment"})
		}
		return
	}

	c.JSON(http.StatusOK, comment)
}

// LikeComment maneja POST /api/comments/:id/like.
func (h *CommentHandler) LikeComment(c *gin.Context) {
	var req struct {
		UserID string `json:"user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	likes, err := h.likeServ.Like(c.Request.Context(), c.Param("id"), req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id format"})
		case errors.Is(err, service.ErrAlreadyLiked):
			c.JSON(http.StatusBadRequest, gin.H{"error": "already liked this comment"})
		case errors.Is(err, service.ErrCommentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		default:
			h.logger.Error("like comment failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not like comment"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "comment liked", "likes_count": likes})
}

// UnlikeComment maneja DELETE /api/comments/:id/like.
func (h *CommentHandler) UnlikeComment(c *gin.Context) {
	var req struct {
		UserID string `json:"user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	likes, err := h.likeServ.Unlike(c.Request.Context(), c.Param("id"), req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id format"})
		case errors.Is(err, service.ErrLikeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "like not found"})
		default:
			h.logger.Error("unlike comment failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not unlike comment"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "comment unliked", "likes_count": likes})
}
