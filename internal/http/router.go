package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"soulverse/internal/web"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	userH *UserHandler,
	profileH *ProfileHandler,
	categoryH *CategoryHandler,
	commentH *CommentHandler,
	pageH *PageHandler,
) (*gin.Engine, error) {
	r := gin.New()

	// Middlewares básicos: logging, recovery y CORS.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}))

	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)

	api := r.Group("/api")

	users := api.Group("/users")
	users.POST("", userH.CreateUser)
	users.GET("", userH.ListUsers)
	users.GET("/:id", userH.GetUser)

	profile := api.Group("/profile")
	profile.POST("", profileH.CreateProfile)
	profile.GET("", profileH.ListProfiles)
	profile.GET("/:id", profileH.GetProfile)
	profile.PUT("/:id", profileH.UpdateProfile)
	profile.DELETE("/:id", profileH.DeleteProfile)

	categories := api.Group("/categories")
	categories.GET("", categoryH.ListCategories)
	categories.GET("/:id", categoryH.GetCategory)
	categories.POST("", categoryH.CreateCategory)
	categories.PUT("/:id", categoryH.UpdateCategory)
	categories.DELETE("/:id", categoryH.DeleteCategory)
	categories.POST("/seed", categoryH.SeedCategories)

	api.POST("/profiles/:profileId/comments", commentH.CreateComment)
	api.GET("/profiles/:profileId/comments", commentH.ListComments)
	api.GET("/comments/:id", commentH.GetComment)
	api.POST("/comments/:id/like", commentH.LikeComment)
	api.DELETE("/comments/:id/like", commentH.UnlikeComment)

	// Páginas renderizadas en servidor.
	r.GET("/", pageH.Home)
	r.GET("/profile/:id", pageH.ProfilePage)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	return r, nil
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
