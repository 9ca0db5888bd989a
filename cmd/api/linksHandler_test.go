package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"shuvoedward/Theology_project/internal/links"
	"strings"
	"testing"
)

func postResolve(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()

	testRouter := testApp.routes(testHandlers)

	rr := httptest.NewRecorder()

	req, err := http.NewRequest("POST", "/v1/links/resolve", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")

	testRouter.ServeHTTP(rr, req)
	return rr
}

func TestResolveLinkHandler(t *testing.T) {
	rr := postResolve(t, `{"token": "[[ST:Ch32]]"}`)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	var actual struct {
		Link links.Presentation `json:"link"`
	}
	err := json.Unmarshal(rr.Body.Bytes(), &actual)
	if err != nil {
		t.Fatalf("failed to unmarshal response body: %v", err)
	}

	if !actual.Link.Resolved {
		t.Errorf("expected a resolved link, got %+v", actual.Link)
	}
	if actual.Link.Display != "Election and Reprobation" {
		t.Errorf("unexpected display text %q", actual.Link.Display)
	}
}

func TestResolveLinkHandlerNoFallback(t *testing.T) {
	// Chapter 32 exists but has no section Z. The link must come back
	// unresolved rather than falling back to the chapter.
	rr := postResolve(t, `{"token": "[[ST:Ch32:Z]]"}`)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	var actual struct {
		Link links.Presentation `json:"link"`
	}
	err := json.Unmarshal(rr.Body.Bytes(), &actual)
	if err != nil {
		t.Fatalf("failed to unmarshal response body: %v", err)
	}

	if actual.Link.Resolved {
		t.Errorf("dangling token must not resolve: %+v", actual.Link)
	}
}

func TestResolveLinkHandlerMalformed(t *testing.T) {
	rr := postResolve(t, `{"token": "[[ST:32]]"}`)

	if status := rr.Code; status != http.StatusUnprocessableEntity {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusUnprocessableEntity)
	}
}
