package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/futbolpath/futbolpath/internal/httputil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.ErrorLevel)

	return l
}

// newTestRouter creates a bare gin engine for mounting single handlers.
func newTestRouter() *gin.Engine {
	return gin.New()
}

// doRequest performs a GET against the test router and returns the recorder.
func doRequest(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
	req.RemoteAddr = "192.0.2.1:4321"

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) httputil.ErrorBody {
	t.Helper()

	var body httputil.ErrorBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error JSON %q: %v", w.Body.String(), err)
	}

	return body
}
