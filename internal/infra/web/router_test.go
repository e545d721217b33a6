package web_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DioGolang/GoSlices/internal/application/modules"
	"github.com/DioGolang/GoSlices/internal/application/port/outbound"
	"github.com/DioGolang/GoSlices/internal/infra/database"
	"github.com/DioGolang/GoSlices/internal/infra/web"
	"github.com/DioGolang/GoSlices/internal/infra/web/middleware"
	"github.com/DioGolang/GoSlices/pkg/apperr"
	"github.com/DioGolang/GoSlices/pkg/logger"
	"github.com/DioGolang/GoSlices/pkg/metrics"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type directory struct {
	answer outbound.UserValidation
	err    error
}

func (d directory) ValidateUser(context.Context, string) (outbound.UserValidation, error) {
	return d.answer, d.err
}

func (d directory) UserExists(context.Context, string) (bool, error) {
	return d.answer.IsValid, d.err
}

func newRouter(t *testing.T, dir outbound.UserDirectory, limiter *middleware.IPRateLimiter) http.Handler {
	t.Helper()
	log := logger.NewNop()
	slices := database.NewMemorySlices(nil, log, metrics.Nop{})
	d, err := modules.NewDispatcher(modules.Deps{
		Users:         slices.Users,
		Products:      slices.Products,
		Customers:     slices.Customers,
		Estruturas:    slices.Estruturas,
		UserDirectory: dir,
		Logger:        log,
		Metrics:       metrics.Nop{},
	})
	require.NoError(t, err)
	return web.NewRouter(d, log, metrics.Nop{}, web.RouterConfig{ServiceName: "test", Limiter: limiter})
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestRouter_UserLifecycle(t *testing.T) {
	h := newRouter(t, directory{}, nil)

	created := do(t, h, http.MethodPost, "/api/users", `{"name":"Ana","email":"ana@example.com"}`)
	require.Equal(t, http.StatusCreated, created.Code)
	id := decodeBody(t, created)["id"].(string)
	assert.Equal(t, "/api/users/"+id, created.Header().Get("Location"))

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{name: "get existing", method: http.MethodGet, path: "/api/users/" + id, want: http.StatusOK},
		{name: "get unknown", method: http.MethodGet, path: "/api/users/" + uuid.NewString(), want: http.StatusNotFound},
		{name: "get malformed id", method: http.MethodGet, path: "/api/users/nope", want: http.StatusBadRequest},
		{name: "duplicate email", method: http.MethodPost, path: "/api/users", body: `{"name":"Bia","email":"ana@example.com"}`, want: http.StatusConflict},
		{name: "invalid body", method: http.MethodPost, path: "/api/users", body: `{"name":`, want: http.StatusBadRequest},
		{name: "missing name", method: http.MethodPost, path: "/api/users", body: `{"email":"x@example.com"}`, want: http.StatusBadRequest},
		{name: "deactivate", method: http.MethodPost, path: "/api/users/" + id + "/deactivate", want: http.StatusOK},
		{name: "list", method: http.MethodGet, path: "/api/users?page=1&page_size=5", want: http.StatusOK},
		{name: "list bad page", method: http.MethodGet, path: "/api/users?page=x", want: http.StatusBadRequest},
		{name: "list far past the end", method: http.MethodGet, path: "/api/users?page=1844674407370955161&page_size=10", want: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			//Act
			rec := do(t, h, tt.method, tt.path, tt.body)

			//Assert
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestRouter_ValidationErrorsNameFields(t *testing.T) {
	//Arrange
	h := newRouter(t, directory{}, nil)

	//Act
	rec := do(t, h, http.MethodPost, "/api/products", `{"name":"","price":-1,"stock_quantity":1}`)

	//Assert
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	violations := body["violations"].([]any)
	var fields []string
	for _, v := range violations {
		fields = append(fields, v.(map[string]any)["field"].(string))
	}
	assert.ElementsMatch(t, []string{"name", "price"}, fields)
}

func TestRouter_ProductCreatorValidation(t *testing.T) {
	tests := []struct {
		name string
		dir  directory
		want int
	}{
		{name: "valid creator", dir: directory{answer: outbound.UserValidation{IsValid: true}}, want: http.StatusCreated},
		{name: "inactive creator", dir: directory{answer: outbound.UserValidation{Reason: "User is not active"}}, want: http.StatusBadRequest},
		{name: "users module down", dir: directory{err: apperr.Unavailable("users", "ValidateUser", nil)}, want: http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			//Arrange
			h := newRouter(t, tt.dir, nil)
			body := `{"name":"Desk","price":10,"stock_quantity":2,"created_by_user_id":"` + uuid.NewString() + `"}`

			//Act
			rec := do(t, h, http.MethodPost, "/api/products", body)

			//Assert
			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusServiceUnavailable {
				assert.NotContains(t, rec.Body.String(), "ValidateUser")
			}
		})
	}
}

func TestRouter_ProductStockAndAvailability(t *testing.T) {
	//Arrange
	h := newRouter(t, directory{}, nil)
	created := do(t, h, http.MethodPost, "/api/products", `{"name":"Lamp","price":20,"stock_quantity":1}`)
	require.Equal(t, http.StatusCreated, created.Code)
	id := decodeBody(t, created)["id"].(string)

	//Act
	stock := do(t, h, http.MethodPut, "/api/products/"+id+"/stock", `{"quantity":8}`)
	avail := do(t, h, http.MethodGet, "/api/products/"+id+"/availability?quantity=8", "")
	badRange := do(t, h, http.MethodGet, "/api/products?min_price=10&max_price=5", "")

	//Assert
	require.Equal(t, http.StatusOK, stock.Code)
	assert.EqualValues(t, 8, decodeBody(t, stock)["stock_quantity"])
	require.Equal(t, http.StatusOK, avail.Code)
	assert.Equal(t, true, decodeBody(t, avail)["is_available"])
	assert.Equal(t, http.StatusBadRequest, badRange.Code)
}

func TestRouter_EstruturaDelete(t *testing.T) {
	//Arrange
	h := newRouter(t, directory{}, nil)
	body := `{"name":"Root","type_code":3,"valid_from":"2026-01-01T00:00:00Z","valid_until":"2027-01-01T00:00:00Z","status":1}`
	created := do(t, h, http.MethodPost, "/api/estruturas", body)
	require.Equal(t, http.StatusCreated, created.Code, created.Body.String())
	id := decodeBody(t, created)["id"].(string)

	//Act
	first := do(t, h, http.MethodDelete, "/api/estruturas/"+id, "")
	second := do(t, h, http.MethodDelete, "/api/estruturas/"+id, "")

	//Assert
	assert.Equal(t, http.StatusNoContent, first.Code)
	assert.Equal(t, http.StatusNotFound, second.Code)
}

func TestRouter_CustomersListFiltersInactive(t *testing.T) {
	//Arrange
	h := newRouter(t, directory{}, nil)
	a := do(t, h, http.MethodPost, "/api/customers", `{"name":"A","email":"a@example.com"}`)
	require.Equal(t, http.StatusCreated, a.Code)
	b := do(t, h, http.MethodPost, "/api/customers", `{"name":"B","email":"b@example.com","phone_number":"555"}`)
	require.Equal(t, http.StatusCreated, b.Code)
	bID := decodeBody(t, b)["id"].(string)
	require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/api/customers/"+bID+"/deactivate", "").Code)

	//Act
	rec := do(t, h, http.MethodGet, "/api/customers?active_only=true", "")

	//Assert
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, decodeBody(t, rec)["total_count"])
}

func TestRouter_RateLimit(t *testing.T) {
	//Arrange
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	limiter := middleware.NewRateLimiter(ctx, middleware.RateLimiterConfig{RequestsPerSecond: 0.001, Burst: 2})
	h := newRouter(t, directory{}, limiter)

	//Act
	var codes []int
	for range 3 {
		codes = append(codes, do(t, h, http.MethodGet, "/api/users", "").Code)
	}

	//Assert
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRouter_UnknownRoute(t *testing.T) {
	//Arrange
	h := newRouter(t, directory{}, nil)

	//Act
	rec := do(t, h, http.MethodGet, "/api/orders", "")

	//Assert
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
