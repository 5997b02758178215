package validate

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestClampIntQuery(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"missing uses default", "", 20},
		{"not a number uses default", "limit=abc", 20},
		{"in range passes through", "limit=50", 50},
		{"below min clamps up", "limit=0", 1},
		{"negative clamps up", "limit=-5", 1},
		{"above max clamps down", "limit=500", 200},
		{"min boundary", "limit=1", 1},
		{"max boundary", "limit=200", 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/api/traces?"+tt.query, nil)

			got := ClampIntQuery(c, "limit", 20, 1, 200)
			if got != tt.want {
				t.Errorf("ClampIntQuery(%q) = %d, want %d", tt.query, got, tt.want)
			}
		})
	}
}
