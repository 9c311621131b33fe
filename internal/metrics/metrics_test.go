package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordRequest_EmptyRouteIsUnmatched(t *testing.T) {
	before := testutil.ToFloat64(RequestTotal.WithLabelValues("PUT", UnmatchedRoute, "404"))
	RecordRequest("PUT", "", 404, 0.01)
	assert.Equal(t, before+1, testutil.ToFloat64(RequestTotal.WithLabelValues("PUT", UnmatchedRoute, "404")))
}

func TestRecordStoreOp(t *testing.T) {
	errMissing := errors.New("missing")

	RecordStoreOp("user", "get", nil, errMissing)
	RecordStoreOp("user", "get", errMissing, errMissing)
	RecordStoreOp("user", "get", errors.New("boom"), errMissing)

	assert.Equal(t, 1.0, testutil.ToFloat64(StoreOperations.WithLabelValues("user", "get", ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(StoreOperations.WithLabelValues("user", "get", ResultNotFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(StoreOperations.WithLabelValues("user", "get", ResultError)))
}
