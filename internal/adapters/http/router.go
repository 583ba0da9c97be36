package httpadapter

import (
	"net/http"
	"sync"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"svw.info/brainbreak/internal/domain"
	"svw.info/brainbreak/internal/platform/logger"
)

var registerOnce sync.Once

// registerValidations installs the custom "difficulty" binding rule on gin's
// shared validator engine.
func registerValidations() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("difficulty", func(fl validator.FieldLevel) bool {
				_, err := domain.ParseDifficulty(fl.Field().String())
				return err == nil
			})
		}
	})
}

// RouterConfig carries the wired handler and the observability plumbing.
type RouterConfig struct {
	Handler  *Handler
	Log      *logger.Logger
	Registry *prometheus.Registry
}

// NewRouter builds the gin engine with logging, recovery, CORS, the API
// routes, and the health and metrics endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	registerValidations()

	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.Log != nil {
		r.Use(RequestLogger(cfg.Log))
	}
	r.Use(cors.Default())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if cfg.Registry != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(cfg.Registry, promhttp.HandlerOpts{})))
	}

	api := r.Group("/api")
	{
		api.POST("/puzzles", cfg.Handler.Generate)
		api.GET("/puzzles", cfg.Handler.ListPuzzles)
		api.GET("/puzzles/:id", cfg.Handler.GetPuzzle)
		api.POST("/placements/check", cfg.Handler.CheckPlacement)
		api.POST("/grids/win", cfg.Handler.CheckWin)
		api.POST("/grids/conflicts", cfg.Handler.Conflicts)
		api.POST("/grids/solve", cfg.Handler.Solve)
		api.POST("/hints", cfg.Handler.Hint)
	}

	return r
}
