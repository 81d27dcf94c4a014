package repositories

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"stargaze-api/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.NewZapLogger("test-app", io.Discard)
}

// jsonServer answers every request with status and body, recording the last request.
func jsonServer(t *testing.T, status int, body string, last **http.Request) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if last != nil {
			*last = r
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}
