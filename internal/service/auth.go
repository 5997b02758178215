package service

import (
	"context"
	"fmt"

	"lensboard/config"
	"lensboard/internal/core"
	cErr "lensboard/internal/pkg/error"
	"lensboard/internal/telemetry"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

type AuthService struct {
	conf   *config.Configuration
	logger *zap.Logger
	trace  *telemetry.Trace
}

func NewAuthService(
	conf *config.Configuration,
	logger *zap.Logger,
	trace *telemetry.Trace,
) *AuthService {
	return &AuthService{conf: conf, logger: logger, trace: trace}
}

// VerifyToken 以共享金鑰驗證 token 並取出身份。
// 演算法鎖定在設定值，sub（email）與 id 兩個 claim 缺一即拒絕。
func (s *AuthService) VerifyToken(ctx context.Context, tokenString string) (*core.Identity, error) {
	_, _, end := s.trace.WithSpan(ctx, "auth.verify_token")

	claims := &core.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != s.conf.Auth.Algorithm {
			return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
		}
		return []byte(s.conf.Auth.SecretKey), nil
	})
	if err != nil {
		end(err)
		s.logger.Warn("jwt validation failed", zap.Error(err))
		return nil, cErr.Unauthorized("Invalid or expired token: " + err.Error())
	}

	if claims.Subject == "" || claims.UserID == 0 {
		cause := cErr.Unauthorized("Invalid token payload")
		end(cause)
		s.logger.Warn("token payload missing claims",
			zap.String("email", claims.Subject),
			zap.Int64("userID", claims.UserID),
		)
		return nil, cause
	}

	end(nil)
	return &core.Identity{Email: claims.Subject, ID: claims.UserID}, nil
}

// Handoff 登入交接：重驗 token，再比對表單宣稱的 user id 與 token 內的 id claim。
// cookie 的值就是 token 本身，表單的 user_id 只作為不一致檢查。
func (s *AuthService) Handoff(ctx context.Context, tokenString string, claimedUserID int64) (*core.Identity, error) {
	ctx, _, end := s.trace.WithSpan(ctx, "auth.handoff")

	identity, err := s.VerifyToken(ctx, tokenString)
	if err != nil {
		end(err)
		return nil, err
	}

	if identity.ID != claimedUserID {
		cause := cErr.BadRequestBody("User ID mismatch")
		end(cause)
		s.logger.Warn("handoff user id mismatch",
			zap.Int64("claimed", claimedUserID),
			zap.Int64("decoded", identity.ID),
		)
		return nil, cause
	}

	end(nil)
	s.logger.Info("user authenticated via handoff",
		zap.String("email", identity.Email),
		zap.Int64("userID", identity.ID),
	)
	return identity, nil
}
