package weather

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestFetchMissingKeyNoNetworkCall(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", time.Second)
	got := client.Fetch("Chennai", "en")
	if !strings.HasPrefix(got, ErrorTag) {
		t.Fatalf("expected tagged error, got %q", got)
	}
	if calls.Load() != 0 {
		t.Fatalf("expected no network call, got %d", calls.Load())
	}
}

func TestFetchPlaceholderKeyNoNetworkCall(t *testing.T) {
	client := NewClient("http://127.0.0.1:0", "YOUR_ACTUAL_WEATHER_API_KEY", time.Second)
	got := client.Fetch("Chennai", "en")
	if !strings.HasPrefix(got, ErrorTag) {
		t.Fatalf("expected tagged error, got %q", got)
	}
}

func TestFetchSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "Pune" {
			t.Fatalf("unexpected q param: %q", got)
		}
		if got := r.URL.Query().Get("aqi"); got != "no" {
			t.Fatalf("unexpected aqi param: %q", got)
		}
		if got := r.URL.Query().Get("lang"); got != "hi" {
			t.Fatalf("unexpected lang param: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"current":{"condition":{"text":"Sunny"},"temp_c":31.5,"humidity":40}}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "key123", time.Second)
	got := client.Fetch("Pune", "hi")
	want := DataTag + " Location: Pune, Condition: Sunny, Temperature: 31.5°C, Humidity: 40%."
	if got != want {
		t.Fatalf("unexpected fact string:\n got: %q\nwant: %q", got, want)
	}
}

func TestFetchMissingFieldsDefaultToNA(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"current":{}}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "key123", time.Second)
	got := client.Fetch("Pune", "en")
	if !strings.Contains(got, "Condition: N/A") || !strings.Contains(got, "Temperature: N/A") {
		t.Fatalf("expected N/A defaults, got %q", got)
	}
}

func TestFetchTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(server.URL, "key123", 20*time.Millisecond)
	got := client.Fetch("Delhi", "en")
	if !strings.HasPrefix(got, ErrorTag) {
		t.Fatalf("expected tagged error, got %q", got)
	}
	if !strings.Contains(got, "Delhi") || !strings.Contains(got, "in time") {
		t.Fatalf("expected timeout wording naming the location, got %q", got)
	}
}

func TestFetchConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client := NewClient(server.URL, "key123", time.Second)
	got := client.Fetch("Delhi", "en")
	if !strings.HasPrefix(got, ErrorTag) {
		t.Fatalf("expected tagged error, got %q", got)
	}
	if !strings.Contains(got, "unable to connect") {
		t.Fatalf("expected connection wording, got %q", got)
	}
}

func TestFetchHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"error":{"message":"API key has been disabled."}}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "key123", time.Second)
	got := client.Fetch("Delhi", "en")
	if !strings.HasPrefix(got, ErrorTag) {
		t.Fatalf("expected tagged error, got %q", got)
	}
	if !strings.Contains(got, "HTTP Status: 403") {
		t.Fatalf("expected upstream status in error, got %q", got)
	}
}

func TestFetchMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `not json`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "key123", time.Second)
	got := client.Fetch("Delhi", "en")
	if !strings.HasPrefix(got, ErrorTag) {
		t.Fatalf("expected tagged error, got %q", got)
	}
	if !strings.Contains(got, "unexpected error") {
		t.Fatalf("expected unexpected-error wording, got %q", got)
	}
}
