package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"barbershop/config"
	"barbershop/internal/metrics"
	"barbershop/internal/service"
	"barbershop/internal/transport/websocket"
	"barbershop/pkg/ratelimit"
)

type Handler struct {
	services *service.Services
	logger   *zap.Logger
	config   *config.Config
	hub      *websocket.Hub
	limiter  ratelimit.Limiter
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer
	checks   []readinessCheck
}

type readinessCheck struct {
	name  string
	check func(ctx context.Context) error
}

func NewHandler(services *service.Services, logger *zap.Logger, config *config.Config, hub *websocket.Hub, limiter ratelimit.Limiter, m *metrics.Metrics) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
		config:   config,
		hub:      hub,
		limiter:  limiter,
		metrics:  m,
		gatherer: prometheus.DefaultGatherer,
	}
}

// AddReadinessCheck registers a dependency checked by /readyz.
func (h *Handler) AddReadinessCheck(name string, check func(ctx context.Context) error) {
	h.checks = append(h.checks, readinessCheck{name: name, check: check})
}

// SetGatherer replaces the registry served at /metrics.
func (h *Handler) SetGatherer(g prometheus.Gatherer) {
	h.gatherer = g
}

func (h *Handler) InitRoutes(router *gin.Engine) {
	router.Use(h.loggerMiddleware())

	router.Use(h.errorMiddleware())

	router.Use(h.corsMiddleware())

	if h.metrics != nil {
		router.Use(h.metricsMiddleware())
	}

	router.GET("/healthz", h.healthz)
	router.GET("/readyz", h.readyz)
	if h.config.Metrics.Enabled {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{})))
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	if h.config.S3.Endpoint == "" {
		router.Static(h.config.Uploads.URLPrefix, h.config.Uploads.Dir)
	}

	api := router.Group("/api")
	{
		api.GET("/services", h.getServices)
		api.GET("/gallery", h.getGallery)
		api.GET("/staff", h.getStaff)

		blog := api.Group("/blog")
		{
			blog.GET("", h.getBlogPosts)
			blog.GET("/category/:category", h.getBlogPostsByCategory)
			blog.GET("/:slug", h.getBlogPostBySlug)
		}

		reviews := api.Group("/reviews")
		{
			reviews.GET("", h.getReviews)
			reviews.POST("", h.rateLimitMiddleware(), h.submitReview)
		}

		api.GET("/site-config", h.getSiteConfig)
		api.GET("/company", h.getCompanyInfo)
		api.GET("/working-hours", h.getWorkingHours)
		api.GET("/service-hours", h.getServiceHours)

		api.GET("/currencies", h.getCurrencies)
		languages := api.Group("/languages")
		{
			languages.GET("", h.getLanguages)
			languages.GET("/default", h.getDefaultLanguage)
		}

		appointments := api.Group("/appointments")
		{
			appointments.POST("", h.rateLimitMiddleware(), h.createAppointment)
			appointments.GET("/date/:date", h.getAppointmentsByDate)
			appointments.PATCH("/:id/status", h.updateAppointmentStatus)
		}

		api.GET("/availability/:date", h.getAvailability)
		api.POST("/contact", h.rateLimitMiddleware(), h.sendContactMessage)

		h.initAdminRoutes(api)
	}
}

func (h *Handler) initAdminRoutes(api *gin.RouterGroup) {
	admin := api.Group("/admin")
	admin.POST("/login", h.rateLimitMiddleware(), h.login)

	// The live feed authenticates through ?token= since browsers cannot set
	// headers on WebSocket requests.
	admin.GET("/ws", h.liveFeed)

	auth := admin.Group("", h.authMiddleware())
	{
		auth.POST("/logout", h.logout)
		auth.GET("/me", h.me)

		upload := auth.Group("/upload")
		{
			upload.POST("", h.uploadImage)
			upload.DELETE("", h.deleteImage)
		}

		appointments := auth.Group("/appointments")
		{
			appointments.GET("", h.getAppointments)
			appointments.GET("/export", h.exportAppointments)
			appointments.GET("/:id", h.getAppointmentByID)
			appointments.PUT("/:id", h.updateAppointment)
			appointments.PATCH("/:id/status", h.updateAppointmentStatus)
			appointments.DELETE("/:id", h.deleteAppointment)
		}

		services := auth.Group("/services")
		{
			services.GET("", h.adminGetServices)
			services.POST("", h.createService)
			services.GET("/:id", h.getServiceByID)
			services.PUT("/:id", h.updateService)
			services.DELETE("/:id", h.deleteService)
		}

		gallery := auth.Group("/gallery")
		{
			gallery.GET("", h.adminGetGallery)
			gallery.POST("", h.createGalleryImage)
			gallery.GET("/:id", h.getGalleryImageByID)
			gallery.PUT("/:id", h.updateGalleryImage)
			gallery.DELETE("/:id", h.deleteGalleryImage)
		}

		staff := auth.Group("/staff")
		{
			staff.GET("", h.adminGetStaff)
			staff.POST("", h.createStaffMember)
			staff.GET("/:id", h.getStaffMemberByID)
			staff.PUT("/:id", h.updateStaffMember)
			staff.DELETE("/:id", h.deleteStaffMember)
		}

		blog := auth.Group("/blog")
		{
			blog.GET("", h.adminGetBlogPosts)
			blog.POST("", h.createBlogPost)
			blog.GET("/:id", h.getBlogPostByID)
			blog.PUT("/:id", h.updateBlogPost)
			blog.DELETE("/:id", h.deleteBlogPost)
		}

		reviews := auth.Group("/reviews")
		{
			reviews.GET("", h.adminGetReviews)
			reviews.POST("", h.createReview)
			reviews.GET("/:id", h.getReviewByID)
			reviews.PUT("/:id", h.updateReview)
			reviews.PATCH("/:id/approve", h.approveReview)
			reviews.DELETE("/:id", h.deleteReview)
		}

		company := auth.Group("/company")
		{
			company.GET("", h.getCompanyInfo)
			company.POST("", h.upsertCompanyInfo)
			company.PUT("/:section", h.updateCompanySection)
			company.DELETE("/:section", h.deleteCompanySection)
		}

		siteConfig := auth.Group("/config")
		{
			siteConfig.GET("", h.adminGetSiteConfig)
			siteConfig.POST("", h.setSiteConfig)
			siteConfig.DELETE("/:key", h.deleteSiteConfig)
		}

		serviceHours := auth.Group("/service-hours")
		{
			serviceHours.GET("", h.getServiceHours)
			serviceHours.PUT("/:id", h.updateServiceHours)
		}

		workingHours := auth.Group("/working-hours")
		{
			workingHours.GET("", h.getWorkingHours)
			workingHours.PUT("/:id", h.updateWorkingHours)
		}
	}
}

// @Summary Estado del proceso
// @Tags Operación
// @Produce json
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func (h *Handler) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary Disponibilidad de dependencias
// @Tags Operación
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /readyz [get]
func (h *Handler) readyz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	results := make(map[string]string, len(h.checks))
	for _, rc := range h.checks {
		if err := rc.check(ctx); err != nil {
			h.logger.Warn("dependencia no disponible", zap.String("check", rc.name), zap.Error(err))
			results[rc.name] = "down"
			status = http.StatusServiceUnavailable
			continue
		}
		results[rc.name] = "up"
	}

	c.JSON(status, gin.H{"status": http.StatusText(status), "checks": results})
}
