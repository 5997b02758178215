package middleware

import (
	"strings"

	"lensboard/config"
	"lensboard/internal/core"
	cErr "lensboard/internal/pkg/error"
	"lensboard/internal/pkg/response"
	"lensboard/internal/service"
	"lensboard/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Auth struct {
	logger      *zap.Logger
	trace       *telemetry.Trace
	conf        *config.Configuration
	authService *service.AuthService
}

func NewAuth(
	logger *zap.Logger,
	trace *telemetry.Trace,
	conf *config.Configuration,
	authService *service.AuthService,
) *Auth {
	return &Auth{
		logger:      logger,
		trace:       trace,
		conf:        conf,
		authService: authService,
	}
}

func (middleware *Auth) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span, end := middleware.trace.WithSpan(c.Request.Context(), string(core.SpanAuthMiddleware))

		token, from := middleware.readToken(c)
		meta := core.TraceAuthMeta{
			Where:    from,
			ClientIP: c.ClientIP(),
		}

		if token == "" {
			meta.Status = "missing_token"
			middleware.trace.ApplyTraceAttributes(span, meta)
			cause := cErr.Unauthorized("No token provided")
			middleware.logger.Warn("authentication failed: no token",
				zap.String("clientIP", c.ClientIP()),
				zap.String("path", c.Request.URL.Path),
			)
			response.AbortWithError(c, cause)
			end(cause)
			return
		}

		identity, err := middleware.authService.VerifyToken(ctx, token)
		if err != nil {
			meta.Status = "invalid_token"
			middleware.trace.ApplyTraceAttributes(span, meta)
			response.AbortWithError(c, err)
			end(err)
			return
		}

		meta.UserID = identity.ID
		meta.Email = identity.Email
		meta.Status = "success"
		middleware.trace.ApplyTraceAttributes(span, meta)
		middleware.logger.Info("[Auth] user authenticated",
			zap.String("email", identity.Email),
			zap.Int64("userID", identity.ID),
			zap.String("from", from),
		)
		end(nil)

		// 設定給下游 handler
		c.Set(core.ContextIdentityKey, identity)
		c.Next()
	}
}

// readToken 依序嘗試 session cookie、Authorization: Bearer
func (middleware *Auth) readToken(c *gin.Context) (token string, from string) {
	if cookie, err := c.Cookie(middleware.conf.Auth.CookieName); err == nil && cookie != "" {
		return cookie, "cookie"
	}

	if auth := strings.TrimSpace(c.GetHeader("Authorization")); auth != "" {
		if strings.HasPrefix(strings.ToLower(auth), "bearer ") {
			return strings.TrimSpace(auth[len("Bearer "):]), "bearer"
		}
	}
	return "", ""
}

// IdentityFrom 取出 auth middleware 放進 context 的身份
func IdentityFrom(c *gin.Context) (*core.Identity, bool) {
	raw, ok := c.Get(core.ContextIdentityKey)
	if !ok {
		return nil, false
	}
	identity, ok := raw.(*core.Identity)
	return identity, ok
}
