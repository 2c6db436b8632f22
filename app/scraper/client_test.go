package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClientFetch(t *testing.T) {
	var gotUserAgent, gotAcceptLanguage string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotAcceptLanguage = r.Header.Get("Accept-Language")
		w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer server.Close()

	client := NewClient(10*time.Second, "Test Agent/1.0")

	data, err := client.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatal(err)
	}

	if string(data) != "<html><body>ok</body></html>" {
		t.Errorf("Unexpected body: %s", data)
	}
	if gotUserAgent != "Test Agent/1.0" {
		t.Errorf("Expected configured User-Agent, got '%s'", gotUserAgent)
	}
	if gotAcceptLanguage != "en-US,en;q=0.9" {
		t.Errorf("Expected Accept-Language header, got '%s'", gotAcceptLanguage)
	}
}

func TestClientFetchNon2xxStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(10*time.Second, "Test Agent/1.0")

	if _, err := client.Fetch(context.Background(), server.URL); err == nil {
		t.Error("Expected error for 404 response")
	}
}

func TestClientFetchConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // immediately, so the port refuses connections

	client := NewClient(time.Second, "Test Agent/1.0")

	if _, err := client.Fetch(context.Background(), server.URL); err == nil {
		t.Error("Expected error for refused connection")
	}
}
