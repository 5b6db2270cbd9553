// filepath: internal/metrics/metrics_test.go
package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_StoreOps(t *testing.T) {
	c, err := NewCollector(nil)
	require.NoError(t, err)

	c.ObserveStoreOp("check_item", "ok", 2*time.Millisecond)
	c.ObserveStoreOp("check_item", "ok", 3*time.Millisecond)
	c.ObserveStoreOp("check_item", "StoreUnavailable", time.Second)

	assert.Equal(t, float64(2), testutil.ToFloat64(c.storeOpsTotal.WithLabelValues("check_item", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.storeOpsTotal.WithLabelValues("check_item", "StoreUnavailable")))
}

func TestCollector_Handler(t *testing.T) {
	c, err := NewCollector(nil)
	require.NoError(t, err)
	c.ObserveRequest("/todos", http.MethodGet, http.StatusOK, 5*time.Millisecond)

	rr := httptest.NewRecorder()
	c.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	body, _ := io.ReadAll(rr.Body)
	assert.Contains(t, string(body), `todohub_http_requests_total{method="GET",route="/todos",status="200"} 1`)
	assert.Contains(t, string(body), "todohub_http_request_duration_seconds")
}

func TestCollector_Registry(t *testing.T) {
	c, err := NewCollector(nil)
	require.NoError(t, err)

	c.ObserveStoreOp("list_items", "ok", time.Millisecond)
	c.ObserveStoreOp("create_todo_item", "NotFound", time.Millisecond)

	count, err := testutil.GatherAndCount(c.Registry(), "todohub_store_ops_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// A second collector has its own registry
	other, err := NewCollector(nil)
	require.NoError(t, err)
	count, err = testutil.GatherAndCount(other.Registry(), "todohub_store_ops_total")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
