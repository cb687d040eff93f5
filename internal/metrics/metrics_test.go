package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/api/projects/{projectID}", "200"))

	ObserveHTTPRequest("GET", "/api/projects/{projectID}", 200, 15*time.Millisecond)
	ObserveHTTPRequest("GET", "/api/projects/{projectID}", 200, 5*time.Millisecond)

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/api/projects/{projectID}", "200"))
	assert.Equal(t, 2.0, after-before)
}

func TestObserveAICall(t *testing.T) {
	tokens := 120
	calls := aiCallsTotal.WithLabelValues("analyze_document", OutcomeSuccess)
	spent := aiTokensTotal.WithLabelValues("analyze_document")

	callsBefore := testutil.ToFloat64(calls)
	tokensBefore := testutil.ToFloat64(spent)

	ObserveAICall("analyze_document", OutcomeSuccess, time.Second, &tokens)
	ObserveAICall("analyze_document", OutcomeSuccess, time.Second, nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(calls)-callsBefore)
	assert.Equal(t, 120.0, testutil.ToFloat64(spent)-tokensBefore)
}

func TestObserveAICall_FailureOutcome(t *testing.T) {
	failed := aiCallsTotal.WithLabelValues("standardize_names", OutcomeParseFailed)
	before := testutil.ToFloat64(failed)

	ObserveAICall("standardize_names", OutcomeParseFailed, 0, nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(failed)-before)
}
