package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"donor-booking/internal/handler/httperr"
	"donor-booking/internal/pkg/config"
)

// HeaderRequesterID carries the numeric identity of the caller, e.g. a chat user id
// forwarded by a bot front-end.
const HeaderRequesterID = "X-Requester-ID"

const (
	ctxRequesterIDKey = "requester_id"
	ctxIsAdminKey     = "is_admin"
)

type RequesterMiddleware struct {
	admins config.AdminConfig
}

func NewRequesterMiddleware(cfg config.Config) *RequesterMiddleware {
	return &RequesterMiddleware{
		admins: cfg.Admin,
	}
}

func (m *RequesterMiddleware) RequireRequester() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(HeaderRequesterID))
		if raw == "" {
			httperr.AbortWithMessage(c, http.StatusUnauthorized, "Requester id required")
			return
		}

		id, err := parseRequesterID(raw)
		if err != nil {
			slog.Warn("Invalid requester id header", "value", raw)
			httperr.AbortWithMessage(c, http.StatusUnauthorized, "Invalid requester id")
			return
		}

		m.setRequester(c, id)
		c.Next()
	}
}

// OptionalRequester records the requester when the header is valid and never aborts.
func (m *RequesterMiddleware) OptionalRequester() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, err := parseRequesterID(c.GetHeader(HeaderRequesterID)); err == nil {
			m.setRequester(c, id)
		}
		c.Next()
	}
}

// RequireAdmin must run after RequireRequester.
func (m *RequesterMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetRequesterID(c); !ok {
			// Unexpected error: should be used after RequireRequester()
			httperr.AbortWithMessage(c, http.StatusInternalServerError, "Internal server error")
			return
		}

		if !IsAdmin(c) {
			httperr.AbortWithMessage(c, http.StatusForbidden, "Insufficient permissions")
			return
		}

		c.Next()
	}
}

func (m *RequesterMiddleware) setRequester(c *gin.Context, id int64) {
	c.Set(ctxRequesterIDKey, id)
	c.Set(ctxIsAdminKey, m.admins.IsAdmin(id))
}

func parseRequesterID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, strconv.ErrRange
	}
	return id, nil
}

func GetRequesterID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ctxRequesterIDKey)
	if !exists {
		return 0, false
	}

	id, ok := v.(int64)
	return id, ok
}

func IsAdmin(c *gin.Context) bool {
	return c.GetBool(ctxIsAdminKey)
}
