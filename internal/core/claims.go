package core

import "github.com/golang-jwt/jwt/v4"

// Claims 由外部 auth service 簽發；email 放在標準 sub claim，id 為自訂 claim。
// 本服務只驗證 token，從不簽發（dev CLI 的 token 子命令除外）。
type Claims struct {
	UserID int64 `json:"id"`
	jwt.RegisteredClaims
}
