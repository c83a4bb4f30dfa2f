package middlewares

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"HospitalManagement/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubVerifier map[string]*utils.TokenClaims

func (s stubVerifier) VerifyToken(token string) (*utils.TokenClaims, error) {
	if claims, ok := s[token]; ok {
		return claims, nil
	}
	return nil, utils.ErrInvalidToken
}

var testVerifier = stubVerifier{
	"admin-token":   {UserID: 1, Role: utils.RoleAdmin},
	"patient-token": {UserID: 2, Role: utils.RolePatient},
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func guardedRouter(reached *bool) *gin.Engine {
	router := gin.New()
	router.GET("/admin",
		TokenAuthMiddleware(testVerifier),
		RoleAuthMiddleware(utils.RoleAdmin),
		func(c *gin.Context) {
			*reached = true
			claims, err := ExtractClaimsFromContext(c.Request.Context())
			if err != nil {
				HttpError(c, http.StatusInternalServerError, err.Error())
				return
			}
			RespondJSON(c, http.StatusOK, MessageOK, gin.H{"userId": claims.UserID})
		})
	return router
}

func TestTokenAndRoleAuth(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantReach  bool
	}{
		{"missing header", "", http.StatusUnauthorized, false},
		{"wrong scheme", "Basic admin-token", http.StatusUnauthorized, false},
		{"empty bearer", "Bearer ", http.StatusUnauthorized, false},
		{"invalid token", "Bearer forged", http.StatusUnauthorized, false},
		{"wrong role", "Bearer patient-token", http.StatusForbidden, false},
		{"allowed role", "Bearer admin-token", http.StatusOK, true},
		{"scheme is case insensitive", "bearer admin-token", http.StatusOK, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reached := false
			router := guardedRouter(&reached)

			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantReach, reached)
			body := decodeResponse(t, rec)
			assert.Equal(t, tt.wantStatus == http.StatusOK, body.Success)
		})
	}
}

func TestRoleAuthWithoutClaims(t *testing.T) {
	router := gin.New()
	router.GET("/x", RoleAuthMiddleware(utils.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestExtractClaimsFromContext_Missing(t *testing.T) {
	_, err := ExtractClaimsFromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.Error(t, err)
}

func TestRateLimiter(t *testing.T) {
	router := gin.New()
	router.Use(NewRateLimiterMiddleware(RateLimiterConfig{RequestsPerSecond: 0.001, Burst: 2}))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimiter_PerClient(t *testing.T) {
	router := gin.New()
	router.Use(NewRateLimiterMiddleware(RateLimiterConfig{RequestsPerSecond: 0.001, Burst: 2}))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(remoteAddr string) int {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = remoteAddr
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("198.51.100.7:5000"))
	assert.Equal(t, http.StatusOK, send("198.51.100.7:5001"))
	assert.Equal(t, http.StatusTooManyRequests, send("198.51.100.7:5002"))

	// Another client still has its full burst.
	assert.Equal(t, http.StatusOK, send("203.0.113.9:6000"))
	assert.Equal(t, http.StatusOK, send("203.0.113.9:6001"))
	assert.Equal(t, http.StatusTooManyRequests, send("203.0.113.9:6002"))
}

func TestClientLimiters_EvictsIdleClients(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	limiters := newClientLimiters(RateLimiterConfig{RequestsPerSecond: 0.001, Burst: 1})
	limiters.now = func() time.Time { return now }

	assert.True(t, limiters.allow("198.51.100.7"))
	assert.False(t, limiters.allow("198.51.100.7"))
	assert.Len(t, limiters.buckets, 1)

	now = now.Add(clientIdleTTL)
	assert.True(t, limiters.allow("203.0.113.9"))
	assert.NotContains(t, limiters.buckets, "198.51.100.7")
	assert.Contains(t, limiters.buckets, "203.0.113.9")
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	router := gin.New()
	router.Use(LoggingMiddleware(log))
	router.GET("/ping", func(c *gin.Context) {
		Logger(c).Info("handled")
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	generated := rec.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(generated)
	require.NoError(t, err)

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	for _, entry := range entries {
		assert.Equal(t, generated, entry.Data["request_id"])
	}
	assert.Equal(t, http.StatusOK, hook.LastEntry().Data["status"])

	// A caller-supplied uuid is propagated.
	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, incoming)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, incoming, rec.Header().Get(RequestIDHeader))
}

func TestMetricsMiddleware(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	router := gin.New()
	router.Use(metrics.Middleware())
	router.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/items/1", "/items/2", "/missing"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	counts := requestCounts(t, reg)
	assert.Equal(t, 2.0, counts["GET /items/:id 200"])
	assert.Equal(t, 1.0, counts["GET unmatched 404"])
}

// requestCounts flattens the request counter into "method route status" -> value.
func requestCounts(t *testing.T, reg *prometheus.Registry) map[string]float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)

	counts := map[string]float64{}
	for _, family := range families {
		if family.GetName() != "hospital_http_requests_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			labels := map[string]string{}
			for _, pair := range metric.GetLabel() {
				labels[pair.GetName()] = pair.GetValue()
			}
			key := labels["method"] + " " + labels["route"] + " " + labels["status"]
			counts[key] = metric.GetCounter().GetValue()
		}
	}
	return counts
}

func TestCorsMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(CorsMiddleware([]string{"http://localhost:3000"}))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRespondHelpers(t *testing.T) {
	router := gin.New()
	router.POST("/things", func(c *gin.Context) {
		RespondCreated(c, "/things/5", gin.H{"id": 5})
	})
	router.POST("/invalid", func(c *gin.Context) {
		RespondValidation(c, map[string][]string{"name": {"cannot be blank"}})
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/things", nil))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/things/5", rec.Header().Get("Location"))
	assert.True(t, decodeResponse(t, rec).Success)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/invalid", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeResponse(t, rec)
	assert.False(t, body.Success)
	assert.Equal(t, MessageValidationFailed, body.Message)
	assert.Equal(t, []string{"cannot be blank"}, body.Errors["name"])
}

