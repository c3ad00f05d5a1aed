package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"soulverse/internal/domain"
	"soulverse/internal/service"
)

// PageHandler rinde las páginas HTML del sitio.
type PageHandler struct {
	logger       *zap.Logger
	profileServ  *service.ProfileService
	categoryServ *service.CategoryService
}

// NewPageHandler crea una instancia de PageHandler.
func NewPageHandler(logger *zap.Logger, profileServ *service.ProfileService, categoryServ *service.CategoryService) *PageHandler {
	return &PageHandler{
		logger:       logger,
		profileServ:  profileServ,
		categoryServ: categoryServ,
	}
}

// Home maneja GET / mostrando el primer perfil creado.
func (h *PageHandler) Home(c *gin.Context) {
	profile, err := h.profileServ.Oldest(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	h.renderProfile(c, profile)
}

// ProfilePage maneja GET /profile/:id.
func (h *PageHandler) ProfilePage(c *gin.Context) {
	profile, err := h.profileServ.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	h.renderProfile(c, profile)
}

func (h *PageHandler) renderProfile(c *gin.Context, profile domain.Profile) {
	ctx := c.Request.Context()

	categories, err := h.categoryServ.List(ctx)
	if err != nil {
		h.renderError(c, err)
		return
	}
	profiles, err := h.profileServ.Index(ctx)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "profile.html", gin.H{
		"Profile":    profile,
		"Categories": categories,
		"Profiles":   profiles,
	})
}

func (h *PageHandler) renderError(c *gin.Context, err error) {
	// Un id malformado en la URL de página se trata como perfil inexistente.
	if errors.Is(err, service.ErrProfileNotFound) || errors.Is(err, service.ErrInvalidID) {
		c.HTML(http.StatusNotFound, "error.html", gin.H{
			"Message": "Profile not found",
			"Status":  http.StatusNotFound,
		})
		return
	}

	h.logger.Error("render profile page failed", zap.Error(err))
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{
		"Message": "Server error",
		"Status":  http.StatusInternalServerError,
	})
}
