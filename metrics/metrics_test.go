package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareCountsMatchedRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/ping/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	before := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/ping/:id", "204"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping/42", nil))
	require.Equal(t, http.StatusNoContent, w.Code)

	after := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/ping/:id", "204"))
	assert.Equal(t, before+1, after)
}

func TestCacheLookupLabels(t *testing.T) {
	hits := testutil.ToFloat64(cacheLookups.WithLabelValues("hit"))
	misses := testutil.ToFloat64(cacheLookups.WithLabelValues("miss"))

	ObserveCacheLookup(true)
	ObserveCacheLookup(false)
	ObserveCacheLookup(false)

	assert.Equal(t, hits+1, testutil.ToFloat64(cacheLookups.WithLabelValues("hit")))
	assert.Equal(t, misses+2, testutil.ToFloat64(cacheLookups.WithLabelValues("miss")))
}

func TestHandlerServesRegistry(t *testing.T) {
	IncReviewCreated()
	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "sevagram_reviews_created_total")
}
