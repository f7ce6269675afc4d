package server

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const userIDKey = "user_id"

// requestLogger logs one line per request
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		s.logger.Log(c.Request.Context(), level, "http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", time.Since(start),
			"user_id", c.GetString(userIDKey),
		)
	}
}

// requireAuth rejects requests without a valid bearer token
func (s *Server) requireAuth(c *gin.Context) {
	header := c.GetHeader("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		abort(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	userID, err := s.tokens.parse(token)
	if err != nil {
		s.logger.Debug("rejected token", "error", err)
		abort(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	c.Set(userIDKey, userID)
	c.Next()
}

func currentUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
