package config

import (
	"net/http"
	"strings"
)

// Auth 的 token 由外部 auth service 簽發，這裡只保存驗證所需的共享金鑰與
// session cookie 屬性。欄位名稱對應扁平環境變數（SECRET_KEY、ALGORITHM...）。
type Auth struct {
	SecretKey      string `mapstructure:"SECRET_KEY" json:"-" yaml:"secret_key"`
	Algorithm      string `mapstructure:"ALGORITHM" json:"algorithm" yaml:"algorithm"`
	CookieName     string `mapstructure:"ACCESS_TOKEN" json:"cookie_name" yaml:"cookie_name"`
	CookieDomain   string `mapstructure:"COOKIE_DOMAIN" json:"cookie_domain" yaml:"cookie_domain"`
	CookieSecure   bool   `mapstructure:"COOKIE_SECURE" json:"cookie_secure" yaml:"cookie_secure"`
	CookieSameSite string `mapstructure:"COOKIE_SAMESITE" json:"cookie_samesite" yaml:"cookie_samesite"`
}

func (a *Auth) applyDefaults() {
	if a.Algorithm == "" {
		a.Algorithm = "HS256"
	}
	if a.CookieName == "" {
		a.CookieName = "access_token"
	}
	if a.CookieSameSite == "" {
		a.CookieSameSite = "lax"
	}
}

func (a *Auth) SameSite() http.SameSite {
	switch strings.ToLower(a.CookieSameSite) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
