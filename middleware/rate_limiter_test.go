package middleware

import (
	"net/http/httptest"
	"testing"

	"medicalkz/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func TestGetLimiterHonorsConfiguredLimit(t *testing.T) {
	orig := config.AppConfig.MaxRequestsPerMin
	config.AppConfig.MaxRequestsPerMin = 2
	defer func() { config.AppConfig.MaxRequestsPerMin = orig }()

	store := &rateLimiterStore{limiters: make(map[string]*rate.Limiter)}
	limiter := store.getLimiter("10.0.0.1")

	if !limiter.Allow() || !limiter.Allow() {
		t.Fatal("requests within the configured burst rejected")
	}
	if limiter.Allow() {
		t.Error("third immediate request allowed beyond the configured burst")
	}
}

func TestGetLimiterDefaultsWhenUnconfigured(t *testing.T) {
	orig := config.AppConfig.MaxRequestsPerMin
	config.AppConfig.MaxRequestsPerMin = 0
	defer func() { config.AppConfig.MaxRequestsPerMin = orig }()

	if got := requestsPerMinute(); got != defaultRequestsPerMinute {
		t.Errorf("requestsPerMinute() = %d, want %d", got, defaultRequestsPerMinute)
	}
}

func TestGetLimiterReusesPerIP(t *testing.T) {
	store := &rateLimiterStore{limiters: make(map[string]*rate.Limiter)}
	a := store.getLimiter("10.0.0.1")
	b := store.getLimiter("10.0.0.1")
	other := store.getLimiter("10.0.0.2")
	if a != b {
		t.Error("same IP got distinct limiters")
	}
	if a == other {
		t.Error("distinct IPs share a limiter")
	}
}

func TestGetClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{"forwarded-for chain", map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"}, "10.0.0.2:1234", "203.0.113.7"},
		{"real-ip fallback", map[string]string{"X-Real-IP": "203.0.113.9"}, "10.0.0.2:1234", "203.0.113.9"},
		{"remote addr with port", nil, "192.0.2.4:5678", "192.0.2.4"},
		{"remote addr without port", nil, "192.0.2.4", "192.0.2.4"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/", nil)
			c.Request.RemoteAddr = tc.remoteAddr
			for k, v := range tc.headers {
				c.Request.Header.Set(k, v)
			}
			if got := getClientIP(c); got != tc.want {
				t.Errorf("getClientIP() = %s, want %s", got, tc.want)
			}
		})
	}
}
