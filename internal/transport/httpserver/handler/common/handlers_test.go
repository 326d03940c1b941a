package common

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"onlyflans/internal/transport/httpserver/middleware"
	"onlyflans/pkg/logger"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error {
	return f(ctx)
}

func TestHealth(t *testing.T) {
	healthy := New(pingerFunc(func(context.Context) error { return nil }), logger.Discard())
	rec := httptest.NewRecorder()
	healthy.Health(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	broken := New(pingerFunc(func(context.Context) error { return errors.New("down") }), logger.Discard())
	rec = httptest.NewRecorder()
	broken.Health(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"error":{"code":"db_unavailable","message":"database unavailable"}}`, rec.Body.String())
}

func TestAuthMe(t *testing.T) {
	h := New(nil, logger.Discard())

	rec := httptest.NewRecorder()
	h.AuthMe(rec, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req = req.WithContext(middleware.WithUser(req.Context(), middleware.User{ID: 3, Username: "chef", Email: "c@example.com", Name: "Chef"}))
	rec = httptest.NewRecorder()
	h.AuthMe(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":3,"username":"chef","email":"c@example.com","name":"Chef"}`, rec.Body.String())
}

func TestParseHelpers(t *testing.T) {
	value, err := ParseIntParam("", 12)
	assert.NoError(t, err)
	assert.Equal(t, 12, value)

	_, err = ParseIntParam("-1", 12)
	assert.Error(t, err)

	id, err := ParseID("42")
	assert.NoError(t, err)
	assert.Equal(t, uint(42), id)

	_, err = ParseID("0")
	assert.Error(t, err)
	_, err = ParseID("abc")
	assert.Error(t, err)
}
