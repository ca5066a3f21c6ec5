// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/danielhkuo/polls/models"
	"github.com/danielhkuo/polls/testutil"
)

var jsonAccept = map[string]string{"Accept": "application/json"}

// withID sets the {id} path value the router would normally fill in
func withID(req *http.Request, id int64) *http.Request {
	req.SetPathValue("id", strconv.FormatInt(id, 10))
	return req
}

// formRequest builds a urlencoded POST like a browser form submit
func formRequest(path, body string) *http.Request {
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// getIndexContext fetches the index view's context as JSON
func getIndexContext(t *testing.T, h *PollHandler) models.IndexContext {
	t.Helper()

	w := httptest.NewRecorder()
	h.Index(w, testutil.MakeRequest("GET", IndexURL, nil, jsonAccept))
	testutil.AssertStatus(t, w, http.StatusOK)

	var ctx models.IndexContext
	testutil.AssertJSON(t, w, &ctx)
	return ctx
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
