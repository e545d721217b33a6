package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name string
		opts []HealthOption
		want int
	}{
		{name: "no checks", want: http.StatusOK},
		{name: "redis up", opts: []HealthOption{WithRedis(pinger{})}, want: http.StatusOK},
		{name: "redis down", opts: []HealthOption{WithRedis(pinger{err: errors.New("refused")})}, want: http.StatusServiceUnavailable},
		{
			name: "optional check down",
			opts: []HealthOption{WithCheck("users-rpc", func(context.Context) error { return errors.New("down") })},
			want: http.StatusOK,
		},
		{name: "nil postgres is skipped", opts: []HealthOption{WithPostgres(nil)}, want: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			//Arrange
			h, err := NewHealthHandler("goslices", "test", tt.opts...)
			require.NoError(t, err)
			rec := httptest.NewRecorder()

			//Act
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			//Assert
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
