package router

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"retail-ledger/internal/config"
	"retail-ledger/internal/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Setup wires the Gin engine: CORS for the dev frontend, the /api route
// table, and the static fallback. API routes are registered first, so a path
// collision always resolves to the API.
func Setup(cfg *config.Config) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.Server.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.Health(cfg.Server.Env, cfg.Server.Port))

		api.GET("/settings", handlers.GetSettings)
		api.PUT("/settings", handlers.UpdateSettings)

		api.GET("/branches", handlers.GetBranches)
		api.POST("/branches", handlers.CreateBranch)
		api.PUT("/branches/:id", handlers.UpdateBranch)
		api.DELETE("/branches/:id", handlers.DeleteBranch)

		api.GET("/categories", handlers.GetCategories)
		api.POST("/categories", handlers.CreateCategory)
		api.PUT("/categories/:id", handlers.UpdateCategory)
		api.DELETE("/categories/:id", handlers.DeleteCategory)

		api.GET("/sales", handlers.GetSales)
		api.POST("/sales", handlers.CreateSale)
	}

	// Unmatched /api paths get a structured 404; everything else falls
	// through to the SPA assets.
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Not found",
				"path":  c.Request.URL.Path,
			})
			return
		}
		serveStatic(c, cfg.Static.Dir)
	})

	return r
}

// serveStatic serves the requested file from dir, falling back to index.html
// so a browser refresh on a frontend route still loads the SPA.
func serveStatic(c *gin.Context, dir string) {
	requested := filepath.Join(dir, filepath.Clean("/"+c.Request.URL.Path))
	if info, err := os.Stat(requested); err == nil && !info.IsDir() {
		c.File(requested)
		return
	}

	index := filepath.Join(dir, "index.html")
	if _, err := os.Stat(index); err == nil {
		c.File(index)
		return
	}

	c.Status(http.StatusNotFound)
}
