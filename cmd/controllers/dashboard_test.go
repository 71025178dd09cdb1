package controllers

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jn607/UK-power-market-dashboard/internal/services"

	"github.com/gin-gonic/gin"
)

type stubPageRenderer struct {
	html string
	err  error
}

func (s *stubPageRenderer) RenderPage(snapshot services.Snapshot, w io.Writer) error {
	if s.err != nil {
		return s.err
	}
	_, err := io.WriteString(w, s.html)
	return err
}

func TestDashboardControllerGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	renderer := &stubPageRenderer{html: "<html><body>UK Power Market Dashboard</body></html>"}
	controller, err := NewDashboardController(renderer, services.Snapshot{})
	if err != nil {
		t.Fatalf("NewDashboardController: %v", err)
	}

	router := gin.New()
	if err := controller.RegisterRoutes(router); err != nil {
		t.Fatalf("register dashboard routes: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
	}
	if contentType := recorder.Header().Get("Content-Type"); !strings.HasPrefix(contentType, "text/html") {
		t.Fatalf("content type = %q, want text/html", contentType)
	}
	if !strings.Contains(recorder.Body.String(), "UK Power Market Dashboard") {
		t.Fatalf("body does not contain dashboard page")
	}
}

func TestDashboardControllerRenderFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)

	renderer := &stubPageRenderer{err: errors.New("boom")}
	controller, err := NewDashboardController(renderer, services.Snapshot{})
	if err != nil {
		t.Fatalf("NewDashboardController: %v", err)
	}

	router := gin.New()
	if err := controller.RegisterRoutes(router); err != nil {
		t.Fatalf("register dashboard routes: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, recorder.Code)
	}
}

func TestNewDashboardControllerNilRenderer(t *testing.T) {
	if _, err := NewDashboardController(nil, services.Snapshot{}); err == nil {
		t.Fatalf("expected error for nil renderer")
	}
}
