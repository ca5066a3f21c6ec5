// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestInstrumentHandler_LabelsByPattern(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /polls/{id}/{$}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	handler := InstrumentHandler(mux)

	counter := httpRequests.WithLabelValues("GET", "GET /polls/{id}/{$}", "404")
	before := promtest.ToFloat64(counter)

	for _, path := range []string{"/polls/1/", "/polls/2/"} {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	}

	assert.Equal(t, before+2, promtest.ToFloat64(counter))
}

func TestInstrumentHandler_Unmatched(t *testing.T) {
	handler := InstrumentHandler(http.NewServeMux())

	counter := httpRequests.WithLabelValues("GET", "unmatched", "404")
	before := promtest.ToFloat64(counter)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/nowhere", nil))

	assert.Equal(t, before+1, promtest.ToFloat64(counter))
}

func TestRecordVote(t *testing.T) {
	before := promtest.ToFloat64(votesCast)
	RecordVote()
	assert.Equal(t, before+1, promtest.ToFloat64(votesCast))
}

func TestHandler(t *testing.T) {
	RecordVote()

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "polls_votes_total")
}
