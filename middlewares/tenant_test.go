package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/yunus-I/Hotel-App/pkg/messenger"
)

func tenantRouter(capture *string, guest *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/probe", TenantMiddleware(), func(c *gin.Context) {
		if capture != nil {
			*capture = c.GetString("hotelId")
		}
		if guest != nil {
			*guest = messenger.GuestNameFromContext(c.Request.Context())
		}
		c.Status(http.StatusOK)
	})
	return r
}

func TestTenantMiddlewareValid(t *testing.T) {
	var hotelID string
	r := tenantRouter(&hotelID, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe?hotel_id=hotel_001", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	if hotelID != "hotel_001" {
		t.Fatalf("want hotel_001 in context, got %q", hotelID)
	}
}

func TestTenantMiddlewareRejects(t *testing.T) {
	r := tenantRouter(nil, nil)

	cases := []struct {
		name string
		url  string
	}{
		{"missing", "/probe"},
		{"empty", "/probe?hotel_id="},
		{"space", "/probe?hotel_id=bad%20id"},
		{"symbol", "/probe?hotel_id=h%24tel"},
		{"path traversal", "/probe?hotel_id=..%2F.."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			r.ServeHTTP(w, req)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("want 400, got %d", w.Code)
			}
		})
	}
}

func TestTenantMiddlewareGuestName(t *testing.T) {
	var guest string
	r := tenantRouter(nil, &guest)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe?hotel_id=h", nil)
	req.Header.Set("X-Guest-Name", "Alice")
	r.ServeHTTP(w, req)

	if guest != "Alice" {
		t.Fatalf("want guest name Alice, got %q", guest)
	}
}

func TestTenantMiddlewareGuestNameDefault(t *testing.T) {
	var guest string
	r := tenantRouter(nil, &guest)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe?hotel_id=h", nil)
	r.ServeHTTP(w, req)

	if guest != "Guest" {
		t.Fatalf("want default guest name, got %q", guest)
	}
}
