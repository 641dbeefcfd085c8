package oura

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/emily-flambe/naptime/internal/domain"
)

const sleepPage = `{
	"data": [
		{
			"id": "sleep-1",
			"day": "2024-03-14",
			"type": "long_sleep",
			"bedtime_start": "2024-03-13T23:04:00-07:00",
			"bedtime_end": "2024-03-14T06:12:00-07:00",
			"total_sleep_duration": 24180,
			"efficiency": 91,
			"deep_sleep_duration": 4800,
			"rem_sleep_duration": 5700,
			"light_sleep_duration": 13680,
			"readiness": {"score": 82}
		},
		{
			"id": "nap-1",
			"day": "2024-03-14",
			"type": "late_nap",
			"bedtime_start": "2024-03-14T14:30:00-07:00",
			"bedtime_end": "2024-03-14T15:05:00-07:00",
			"total_sleep_duration": 1800
		}
	],
	"next_token": ""
}`

func TestFetchSessions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/usercollection/sleep" {
			t.Errorf("path = %s, want /v2/usercollection/sleep", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q, want bearer token", got)
		}
		if got := r.URL.Query().Get("start_date"); got != "2024-03-11" {
			t.Errorf("start_date = %s, want 2024-03-11", got)
		}
		if got := r.URL.Query().Get("end_date"); got != "2024-03-14" {
			t.Errorf("end_date = %s, want 2024-03-14", got)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, sleepPage)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	sessions, err := client.FetchSessions(context.Background(), "2024-03-11", "2024-03-14")
	if err != nil {
		t.Fatalf("FetchSessions() error = %v", err)
	}

	if len(sessions) != 2 {
		t.Fatalf("len(sessions) = %d, want 2", len(sessions))
	}

	main := sessions[0]
	if main.ProviderID != "sleep-1" {
		t.Errorf("ProviderID = %s, want sleep-1", main.ProviderID)
	}
	if main.Type != domain.SessionTypeMain {
		t.Errorf("Type = %s, want MAIN", main.Type)
	}
	if main.Day != "2024-03-14" {
		t.Errorf("Day = %s, want 2024-03-14", main.Day)
	}
	if main.TotalSleepSeconds != 24180 {
		t.Errorf("TotalSleepSeconds = %d, want 24180", main.TotalSleepSeconds)
	}
	if main.EfficiencyPercent == nil || *main.EfficiencyPercent != 91 {
		t.Errorf("EfficiencyPercent = %v, want 91", main.EfficiencyPercent)
	}
	if main.QualityScore == nil || *main.QualityScore != 82 {
		t.Errorf("QualityScore = %v, want 82 from readiness.score", main.QualityScore)
	}
	if main.StartAt.IsZero() || main.EndAt.IsZero() {
		t.Error("bedtime instants must be parsed")
	}

	nap := sessions[1]
	if nap.Type != domain.SessionTypeNap {
		t.Errorf("Type = %s, want NAP", nap.Type)
	}
	if nap.EfficiencyPercent != nil || nap.QualityScore != nil {
		t.Error("unreported optionals must stay nil")
	}
}

func TestFetchSessions_Pagination(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("next_token") {
		case "":
			fmt.Fprint(w, `{"data": [{"id": "a", "day": "2024-03-13", "type": "long_sleep"}], "next_token": "page2"}`)
		case "page2":
			fmt.Fprint(w, `{"data": [{"id": "b", "day": "2024-03-14", "type": "long_sleep"}], "next_token": ""}`)
		default:
			t.Errorf("unexpected next_token %q", r.URL.Query().Get("next_token"))
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, "token")
	sessions, err := client.FetchSessions(context.Background(), "2024-03-11", "2024-03-14")
	if err != nil {
		t.Fatalf("FetchSessions() error = %v", err)
	}

	if requests != 2 {
		t.Errorf("requests = %d, want 2", requests)
	}
	if len(sessions) != 2 {
		t.Fatalf("len(sessions) = %d, want 2", len(sessions))
	}
	if sessions[0].ProviderID != "a" || sessions[1].ProviderID != "b" {
		t.Errorf("sessions out of page order: %s, %s", sessions[0].ProviderID, sessions[1].ProviderID)
	}
}

func TestFetchSessions_ErrorTranslation(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"401 is auth failure", http.StatusUnauthorized, domain.ErrAuthFailed},
		{"403 is auth failure", http.StatusForbidden, domain.ErrAuthFailed},
		{"429 is rate limit", http.StatusTooManyRequests, domain.ErrRateLimited},
		{"404 is provider unavailable", http.StatusNotFound, domain.ErrProviderUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client := NewClient(server.URL, "token")
			_, err := client.FetchSessions(context.Background(), "2024-03-11", "2024-03-14")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("FetchSessions() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFetchSessions_RetriesServerErrors(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests++
		if requests == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"data": [], "next_token": ""}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "token")
	sessions, err := client.FetchSessions(context.Background(), "2024-03-11", "2024-03-14")
	if err != nil {
		t.Fatalf("FetchSessions() error = %v, want retry to succeed", err)
	}
	if requests != 2 {
		t.Errorf("requests = %d, want 2 (one retry)", requests)
	}
	if len(sessions) != 0 {
		t.Errorf("len(sessions) = %d, want 0", len(sessions))
	}
}

func TestFetchSessions_ZeroDurationPassesThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"data": [{"id": "unsynced", "day": "2024-03-14", "type": "long_sleep", "total_sleep_duration": 0}], "next_token": ""}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "token")
	sessions, err := client.FetchSessions(context.Background(), "2024-03-11", "2024-03-14")
	if err != nil {
		t.Fatalf("FetchSessions() error = %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("len(sessions) = %d, want 1 (zero duration is not an error)", len(sessions))
	}
	if sessions[0].TotalSleepSeconds != 0 {
		t.Errorf("TotalSleepSeconds = %d, want 0", sessions[0].TotalSleepSeconds)
	}
}

func TestMapSessionType(t *testing.T) {
	tests := []struct {
		in   string
		want domain.SessionType
	}{
		{"long_sleep", domain.SessionTypeMain},
		{"nap", domain.SessionTypeNap},
		{"late_nap", domain.SessionTypeNap},
		{"sleep", domain.SessionTypeOther},
		{"rest", domain.SessionTypeOther},
		{"", domain.SessionTypeOther},
	}

	for _, tt := range tests {
		if got := mapSessionType(tt.in); got != tt.want {
			t.Errorf("mapSessionType(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
