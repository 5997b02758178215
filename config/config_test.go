package config

import (
	"net/http"
	"testing"
)

func TestNormalizeDefaults(t *testing.T) {
	t.Parallel()

	conf := &Configuration{}
	conf.Normalize()

	if conf.App.Port != 8000 {
		t.Errorf("App.Port = %d, want 8000", conf.App.Port)
	}
	if conf.Auth.Algorithm != "HS256" {
		t.Errorf("Auth.Algorithm = %q, want HS256", conf.Auth.Algorithm)
	}
	if conf.Auth.CookieName != "access_token" {
		t.Errorf("Auth.CookieName = %q, want access_token", conf.Auth.CookieName)
	}
	if conf.Auth.CookieSameSite != "lax" {
		t.Errorf("Auth.CookieSameSite = %q, want lax", conf.Auth.CookieSameSite)
	}
}

func TestNormalizeKeepsExplicitValues(t *testing.T) {
	t.Parallel()

	conf := &Configuration{}
	conf.App.Port = 9000
	conf.Auth.CookieName = "session"
	conf.Normalize()

	if conf.App.Port != 9000 {
		t.Errorf("App.Port = %d, want 9000", conf.App.Port)
	}
	if conf.Auth.CookieName != "session" {
		t.Errorf("Auth.CookieName = %q, want session", conf.Auth.CookieName)
	}
}

func TestValidateRequiresSecretKey(t *testing.T) {
	t.Parallel()

	conf := &Configuration{}
	if err := conf.Validate(); err == nil {
		t.Error("expected error for missing SECRET_KEY")
	}

	conf.Auth.SecretKey = "s"
	if err := conf.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestSameSite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  http.SameSite
	}{
		{"lax", http.SameSiteLaxMode},
		{"Strict", http.SameSiteStrictMode},
		{"none", http.SameSiteNoneMode},
		{"", http.SameSiteLaxMode},
		{"bogus", http.SameSiteLaxMode},
	}
	for _, tt := range tests {
		a := Auth{CookieSameSite: tt.value}
		if got := a.SameSite(); got != tt.want {
			t.Errorf("SameSite(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestLangfuseConfigured(t *testing.T) {
	t.Parallel()

	tests := []struct {
		host, pk, sk string
		want         bool
	}{
		{"https://cloud.langfuse.com", "pk", "sk", true},
		{"", "pk", "sk", false},
		{"https://cloud.langfuse.com", "", "sk", false},
		{"https://cloud.langfuse.com", "pk", "", false},
	}
	for _, tt := range tests {
		lf := Langfuse{Host: tt.host, PublicKey: tt.pk, SecretKey: tt.sk}
		if got := lf.Configured(); got != tt.want {
			t.Errorf("Configured(%q,%q,%q) = %v, want %v", tt.host, tt.pk, tt.sk, got, tt.want)
		}
	}
}
