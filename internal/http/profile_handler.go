package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"soulverse/internal/domain"
	"soulverse/internal/service"
)

// ProfileHandler mantiene dependencias para endpoints de perfiles.
type ProfileHandler struct {
	logger      *zap.Logger
	profileServ *service.ProfileService
}

// NewProfileHandler crea una instancia de ProfileHandler.
func NewProfileHandler(logger *zap.Logger, profileServ *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{logger: logger, profileServ: profileServ}
}

type profileRequest struct {
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description"`
	MBTI         string   `json:"mbti"`
	Enneagram    string   `json:"enneagram"`
	Variant      string   `json:"variant"`
	Tritype      *int     `json:"tritype"`
	Socionics    string   `json:"socionics"`
	Sloan        string   `json:"sloan"`
	Psyche       string   `json:"psyche"`
	Temperaments string   `json:"temperaments"`
	ProfileTags  []string `json:"profile_tags"`
	Image        string   `json:"image"`
}

func (r profileRequest) toInput() service.ProfileInput {
	return service.ProfileInput{
		Name:         r.Name,
		Description:  r.Description,
		MBTI:         r.MBTI,
		Enneagram:    r.Enneagram,
		Variant:      r.Variant,
		Tritype:      r.Tritype,
		Socionics:    r.Socionics,
		Sloan:        r.Sloan,
		Psyche:       r.Psyche,
		Temperaments: r.Temperaments,
		ProfileTags:  r.ProfileTags,
		Image:        r.Image,
	}
}

// CreateProfile maneja POST /api/profile.
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	profile, err := h.profileServ.Create(c.Request.Context(), req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrNameRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}
		h.logger.Error("create profile failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create profile"})
		return
	}

	c.JSON(http.StatusCreated, profile)
}

// UpdateProfile maneja PUT /api/profile/:id con reemplazo completo.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	profile, err := h.profileServ.Update(c.Request.Context(), c.Param("id"), req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile id"})
		case errors.Is(err, service.ErrNameRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		case errors.Is(err, service.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		default:
			h.logger.Error("update profile failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update profile"})
		}
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetProfile maneja GET /api/profile/:id.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileServ.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile id"})
		case errors.Is(err, service.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		default:
			h.logger.Error("get profile failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not get profile"})
		}
		return
	}

	c.JSON(http.StatusOK, profile)
}

// ListProfiles maneja GET /api/profile.
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.profileServ.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list profiles failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list profiles"})
		return
	}

	if profiles == nil {
		profiles = []domain.Profile{}
	}
	c.JSON(http.StatusOK, profiles)
}

// DeleteProfile maneja DELETE /api/profile/:id. El borrado cascadea a
// comentarios y likes del perfil.
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	err := h.profileServ.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile id"})
		case errors.Is(err, service.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		default:
			h.logger.Error("delete profile failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete profile"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "profile deleted successfully"})
}
