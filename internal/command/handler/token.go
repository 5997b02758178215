package command

import (
	"strconv"
	"time"

	"lensboard/config"
	"lensboard/internal/core"

	"github.com/golang-jwt/jwt/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type TokenHandler struct {
	conf   *config.Configuration
	logger *zap.Logger
}

func NewTokenHandler(conf *config.Configuration, logger *zap.Logger) *TokenHandler {
	return &TokenHandler{
		conf:   conf,
		logger: logger,
	}
}

// Mint 用設定的 SECRET_KEY 簽出一顆可直接貼進 cookie 的 token
func (handler *TokenHandler) Mint(cmd *cobra.Command, args []string) {
	userID, _ := cmd.Flags().GetInt64("user-id")
	email, _ := cmd.Flags().GetString("email")
	ttl, _ := cmd.Flags().GetDuration("ttl")

	claims := core.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  email,
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(ttl))
	}

	method := jwt.GetSigningMethod(handler.conf.Auth.Algorithm)
	if method == nil {
		handler.logger.Error("不支援的簽章演算法", zap.String("algorithm", handler.conf.Auth.Algorithm))
		return
	}

	signed, err := jwt.NewWithClaims(method, claims).SignedString([]byte(handler.conf.Auth.SecretKey))
	if err != nil {
		handler.logger.Error("token 簽發失敗", zap.Error(err))
		return
	}

	cmd.Println("user_id:", strconv.FormatInt(userID, 10))
	cmd.Println("email:  ", email)
	cmd.Println(signed)
}
