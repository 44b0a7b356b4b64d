package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"retail-ledger/internal/config"
	"retail-ledger/internal/database"
	"retail-ledger/internal/router"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestRouter gives each test a fresh in-memory database behind the real
// route table.
func newTestRouter(t *testing.T) *gin.Engine {
	return newTestRouterStatic(t, t.TempDir())
}

func newTestRouterStatic(t *testing.T, staticDir string) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), database.Options(false))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	// a single connection keeps every query on the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	database.DB = db

	cfg := &config.Config{
		Server: config.ServerConfig{
			Env:        "test",
			Port:       8080,
			Mode:       gin.TestMode,
			CORSOrigin: "http://localhost:5173",
		},
		Static: config.StaticConfig{Dir: staticDir},
	}
	return router.Setup(cfg)
}

// doRequest runs one request through the engine and returns the recorder.
func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeObject(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode object from %q: %v", w.Body.String(), err)
	}
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode list from %q: %v", w.Body.String(), err)
	}
	return out
}

// createBranch makes a branch through the API and returns its id.
func createBranch(t *testing.T, r *gin.Engine, name string) string {
	t.Helper()
	w := doRequest(t, r, "POST", "/api/branches", map[string]interface{}{"name": name})
	if w.Code != 201 {
		t.Fatalf("create branch %q: status %d, body %s", name, w.Code, w.Body.String())
	}
	id, _ := decodeObject(t, w)["id"].(string)
	if id == "" {
		t.Fatalf("create branch %q: no id in response", name)
	}
	return id
}

// createSale records a sale through the API and returns its id.
func createSale(t *testing.T, r *gin.Engine, branchID, date string, total float64) string {
	t.Helper()
	w := doRequest(t, r, "POST", "/api/sales", map[string]interface{}{
		"branchId": branchID,
		"date":     date,
		"total":    total,
	})
	if w.Code != 201 {
		t.Fatalf("create sale for %s on %s: status %d, body %s", branchID, date, w.Code, w.Body.String())
	}
	id, _ := decodeObject(t, w)["id"].(string)
	return id
}
