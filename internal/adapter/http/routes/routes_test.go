package routes

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"fieldservice/internal/app"
	"fieldservice/internal/config"
	mock_interfaces "fieldservice/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPingRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	conn := mock_interfaces.NewMockIConnectivity(ctrl)
	conn.EXPECT().IsOnline().Return(false)

	r := gin.New()
	addPingRoutes(r.Group("/v1"), conn)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body pingResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Message != "pong" || body.Online {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestEntityRoutes_OfflineFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg, err := config.LoadFrom(map[string]string{
		"DYNAMODB_ENDPOINT": "http://127.0.0.1:1",
		"MIRROR_PATH":       filepath.Join(t.TempDir(), "mirror.db"),
	})
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	a, err := app.New(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("app: %v", err)
	}
	defer a.Close()
	a.Monitor.Set(false)

	r := gin.New()
	v1 := r.Group("/v1")
	addEntityRoutes(v1, newEntityHandlers(a.Registry))

	create := httptest.NewRequest(http.MethodPost, "/v1/customers", strings.NewReader(`{"name":"Ada","needs_estimate":true}`))
	create.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, create)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/customers", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var list struct {
		Count  int    `json:"count"`
		Notice string `json:"notice"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if list.Count != 1 || list.Notice == "" {
		t.Fatalf("unexpected list: %+v", list)
	}
}
