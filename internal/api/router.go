package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"natal-chart-service/internal/api/handlers"
	"natal-chart-service/internal/domain"
	"natal-chart-service/internal/platform/obs"
	"natal-chart-service/internal/ports"
)

// RouterDeps carries everything the HTTP layer needs from the composition
// root.
type RouterDeps struct {
	ServiceName   string
	Version       string
	Ephemeris     ports.EphemerisProvider
	ZoneLookup    ports.ZoneLookup
	DefaultSystem domain.HouseSystem
	Metrics       *obs.Metrics
}

// NewRouter wires HTTP handlers with their dependencies and returns the gin
// engine. This is the API composition root; handlers stay unaware of
// concrete adapters.
func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	// Browser clients call the API directly from other origins.
	r.Use(cors.Default())
	r.Use(RequestID())

	health := &handlers.HealthHandler{
		ServiceName: deps.ServiceName,
		Version:     deps.Version,
	}
	chart := &handlers.ChartHandler{
		Ephemeris:     deps.Ephemeris,
		ZoneLookup:    deps.ZoneLookup,
		DefaultSystem: deps.DefaultSystem,
		Metrics:       deps.Metrics,
	}

	r.GET("/", health.Root)
	r.GET("/health", health.Status)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.POST("/chart/natal", chart.Natal)

	return r
}
