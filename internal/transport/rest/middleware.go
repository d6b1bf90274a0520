package rest

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"barbershop/internal/domain"
)

const (
	authorizationHeader = "Authorization"
	sessionCtx          = "admin_session"
)

func (h *Handler) loggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		path := c.Request.URL.Path
		method := c.Request.Method
		ip := c.ClientIP()
		userAgent := c.Request.UserAgent()

		logger := h.logger.With(
			zap.String("path", path),
			zap.String("method", method),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("ip", ip),
			zap.String("user-agent", userAgent),
		)

		if status >= 500 {
			logger.Error("error del servidor")
		} else if status >= 400 {
			logger.Warn("error del cliente")
		} else {
			logger.Info("solicitud procesada")
		}
	}
}

func (h *Handler) errorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, err := range c.Errors {
			h.logger.Error("error en la solicitud",
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
				zap.Error(err.Err))
		}
	}
}

func (h *Handler) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		h.metrics.ObserveRequest(route, c.Request.Method, strconv.Itoa(c.Writer.Status()), time.Since(start).Seconds())
	}
}

func (h *Handler) corsMiddleware() gin.HandlerFunc {
	allowAll := false
	allowed := make(map[string]struct{}, len(h.config.HTTP.AllowedOrigins))
	for _, origin := range h.config.HTTP.AllowedOrigins {
		if origin == "*" {
			allowAll = true
		}
		allowed[origin] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if allowAll {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		} else if _, ok := allowed[origin]; ok {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Add("Vary", "Origin")
		}
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Content-Length, Accept-Encoding, Origin, Accept, User-Agent, X-Requested-With, Cache-Control")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length, Content-Disposition, Content-Type")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400") // 24 horas

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func (h *Handler) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(authorizationHeader)
		if header == "" {
			unauthorizedResponse(c, "encabezado de autorización vacío")
			return
		}

		headerParts := strings.Split(header, " ")
		if len(headerParts) != 2 || headerParts[0] != "Bearer" || headerParts[1] == "" {
			unauthorizedResponse(c, "formato de encabezado de autorización inválido")
			return
		}

		session, err := h.services.Auth.Authenticate(c.Request.Context(), headerParts[1])
		if err != nil {
			handleError(c, err, "sesión no encontrada")
			return
		}

		c.Set(sessionCtx, session)
		c.Request = c.Request.WithContext(domain.WithAdminSession(c.Request.Context(), session))

		c.Next()
	}
}

// rateLimitMiddleware limits public write endpoints per client IP. When the
// limiter backend fails the request is let through if FailOpen is set.
func (h *Handler) rateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.limiter == nil || !h.config.RateLimit.Enabled {
			c.Next()
			return
		}

		allowed, err := h.limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			h.logger.Warn("error del limitador de solicitudes", zap.Error(err))
			if !h.config.RateLimit.FailOpen {
				errorResponse(c, http.StatusServiceUnavailable, "servicio no disponible temporalmente")
				return
			}
			c.Next()
			return
		}

		if !allowed {
			h.metrics.RequestRateLimited()
			c.Header("Retry-After", strconv.Itoa(int(h.config.RateLimit.Window.Seconds())))
			errorResponse(c, http.StatusTooManyRequests, "demasiadas solicitudes, intente más tarde")
			return
		}

		c.Next()
	}
}

func currentSession(c *gin.Context) (*domain.AdminSession, bool) {
	value, exists := c.Get(sessionCtx)
	if !exists {
		return nil, false
	}
	session, ok := value.(*domain.AdminSession)
	return session, ok && session != nil
}
