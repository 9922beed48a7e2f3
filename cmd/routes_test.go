package main

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// A bare application is enough to exercise routing: the admin middleware
// rejects unauthenticated requests before any handler runs, so a matched
// admin route answers 401 while an unregistered path answers 404.
func testApp() *application {
	return &application{
		infoLog:  log.New(io.Discard, "", 0),
		errorLog: log.New(io.Discard, "", 0),
	}
}

func TestRequestStatusRoutedAtBareID(t *testing.T) {
	app := testApp()
	mux := app.routes()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/requests/7", strings.NewReader(`{"status":"contacted"}`))
	mux.ServeHTTP(rec, req)

	if rec.Code == http.StatusNotFound {
		t.Fatalf("PATCH /api/requests/:id is not registered")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 from the admin middleware, got %d", rec.Code)
	}
}

func TestListingStatusRoutes(t *testing.T) {
	app := testApp()
	mux := app.routes()

	for _, path := range []string{"/api/cars/7/status", "/api/properties/7/status"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPatch, path, strings.NewReader(`{"status":"sold"}`))
			mux.ServeHTTP(rec, req)

			if rec.Code == http.StatusNotFound {
				t.Fatalf("PATCH %s is not registered", path)
			}
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401 from the admin middleware, got %d", rec.Code)
			}
		})
	}
}
