package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/loci-maps/internal/app/domain/explore"
	"github.com/FACorreiaa/loci-maps/internal/app/domain/recents"
)

// AppHandlers groups every HTTP handler set the router mounts.
type AppHandlers struct {
	Explore *explore.Handlers
}

// Setup wires services and mounts all routes on the router.
func Setup(r *gin.Engine, aiClient explore.AIClient, log *zap.Logger) {
	handlers := setupDependencies(aiClient, log)
	setupRouter(r, handlers)
}

func setupDependencies(aiClient explore.AIClient, log *zap.Logger) *AppHandlers {
	recentsService := recents.NewService(log)
	exploreService := explore.NewService(aiClient, log)

	return &AppHandlers{
		Explore: explore.NewHandlers(exploreService, recentsService, log),
	}
}

func setupRouter(r *gin.Engine, h *AppHandlers) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	exploreGroup := r.Group("/explore")
	{
		exploreGroup.GET("/stream", h.Explore.HandleExploreStream)
		exploreGroup.GET("/plan/export", h.Explore.HandleExportPlan)
	}

	r.GET("/recents", h.Explore.HandleRecents)
	r.POST("/recents", h.Explore.HandleAddRecent)

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/assets/index.html")
	})
}
