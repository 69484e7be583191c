package bootstrap

import (
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpapi "github.com/sofia-hackathon/registration/internal/api/http"
	"github.com/sofia-hackathon/registration/internal/api/http/middleware"
	reghttp "github.com/sofia-hackathon/registration/internal/registration/http"
	"github.com/sofia-hackathon/registration/internal/registration/relay"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	AllowedOrigins []string
	Relay          *relay.Relay
	Gatherer       prometheus.Gatherer
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(corsConfig(dep.AllowedOrigins)))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Relay.Configured())
	healthHandler.RegisterRoutes(r)

	if dep.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(dep.Gatherer, promhttp.HandlerOpts{})))
	}

	api := r.Group("/api")
	api.Use(middleware.RequestIDMiddleware())

	reghttp.New(dep.Relay).Register(api)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
