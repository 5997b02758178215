package handler

import (
	"net/http"

	"lensboard/config"
	"lensboard/internal/dto"
	"lensboard/internal/pkg/request"
	"lensboard/internal/pkg/response"
	"lensboard/internal/service"
	"lensboard/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	conf        *config.Configuration
	logger      *zap.Logger
	trace       *telemetry.Trace
	authService *service.AuthService
}

func NewAuthHandler(
	conf *config.Configuration,
	logger *zap.Logger,
	trace *telemetry.Trace,
	authService *service.AuthService,
) *AuthHandler {
	return &AuthHandler{conf: conf, logger: logger, trace: trace, authService: authService}
}

// Login 登入交接：收下外部 auth service 簽發的 token，驗過後塞進 session cookie。
// 這是唯一會設定 cookie 的路徑。
func (h *AuthHandler) Login(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.LoginDto
	if err := c.ShouldBind(&req); err != nil {
		cause := request.GetError(&req, err)
		end(cause)
		response.AbortWithError(c, cause)
		return
	}

	identity, err := h.authService.Handoff(ctx, req.Token, req.UserID)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}

	auth := h.conf.Auth
	c.SetSameSite(auth.SameSite())
	// 無 max-age：session cookie，本服務不負責續期或撤銷
	c.SetCookie(auth.CookieName, req.Token, 0, "/", auth.CookieDomain, auth.CookieSecure, true)

	h.logger.Info("session cookie set",
		zap.Int64("userID", identity.ID),
		zap.String("cookie", auth.CookieName),
		zap.String("domain", auth.CookieDomain),
	)
	c.Redirect(http.StatusSeeOther, "/")
}
