package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"bidding-marketplace/internal/catalog"
	"bidding-marketplace/internal/directory"
	"bidding-marketplace/internal/ledger"
	"bidding-marketplace/internal/repository"
	"bidding-marketplace/internal/server"
	"bidding-marketplace/services/marketplace/helpers"

	"github.com/gin-gonic/gin"
)

// SetupTestRouter initializes the full router backed by file stores in a
// per-test temp directory.
func SetupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dataDir := t.TempDir()
	bidStore, err := repository.OpenBidStore(dataDir)
	if err != nil {
		t.Fatalf("failed to open bid store: %v", err)
	}
	collectionStore, err := repository.OpenCollectionStore(dataDir)
	if err != nil {
		t.Fatalf("failed to open collection store: %v", err)
	}
	userStore, err := repository.OpenUserStore(dataDir)
	if err != nil {
		t.Fatalf("failed to open user store: %v", err)
	}

	ledgerSvc := ledger.NewService(bidStore, collectionStore, userStore)
	catalogSvc := catalog.NewService(collectionStore, bidStore)
	directorySvc := directory.NewService(userStore)

	return server.SetupRouter(ledgerSvc, catalogSvc, directorySvc)
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
// The caller argument, when non-empty, is sent as the X-User-ID header.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body any, caller string) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody []byte
	var err error
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if caller != "" {
		req.Header.Set(helpers.CallerHeader, caller)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request and parses the JSON
// response into a map.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any, caller string) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	w := ExecuteRequest(t, router, method, url, body, caller)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// ExecuteRequestAndParseList is like ExecuteRequestAndParse for endpoints
// returning a JSON array.
func ExecuteRequestAndParseList(t *testing.T, router *gin.Engine, method, url string, caller string) ([]map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	w := ExecuteRequest(t, router, method, url, nil, caller)

	var resp []map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}
