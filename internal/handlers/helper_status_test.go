package handlers

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clutchzone/internal/models"
)

func TestRespondErrorLogsUnrecognizedErrors(t *testing.T) {
	var buf bytes.Buffer
	old := errorLog
	errorLog = log.New(&buf, "", 0)
	defer func() { errorLog = old }()

	rec := httptest.NewRecorder()
	respondError(rec, errors.New("pq: connection refused"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	if body := rec.Body.String(); !strings.Contains(body, "internal server error") {
		t.Fatalf("expected generic body, got %q", body)
	}
	if !strings.Contains(buf.String(), "pq: connection refused") {
		t.Fatalf("expected the underlying error in the log, got %q", buf.String())
	}
}

func TestRespondErrorDoesNotLogDomainSentinels(t *testing.T) {
	var buf bytes.Buffer
	old := errorLog
	errorLog = log.New(&buf, "", 0)
	defer func() { errorLog = old }()

	rec := httptest.NewRecorder()
	respondError(rec, models.ErrCarNotFound)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
	if buf.Len() != 0 {
		t.Fatalf("domain sentinel should not be logged, got %q", buf.String())
	}
}
