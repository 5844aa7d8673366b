package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

var team = []string{"아리", "럭스", "가렌", "징크스", "레오나"}

// TestTeamComp_SendsCredentials tests that both credential headers and the
// team reach the endpoint and the first choice is returned verbatim.
func TestTeamComp_SendsCredentials(t *testing.T) {
	var got ChatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer secret" {
			t.Errorf("Expected bearer token, got %q", auth)
		}
		if gw := r.Header.Get("X-Gateway-Key"); gw != "gw-secret" {
			t.Errorf("Expected gateway key, got %q", gw)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("Failed to decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"  한타가 강한 조합  "}},{"message":{"content":"ignored"}}]}`))
	}))
	defer server.Close()

	c := NewClient(Config{
		URL:           server.URL,
		APIKey:        "secret",
		Model:         "test-model",
		GatewayHeader: "X-Gateway-Key",
		GatewayKey:    "gw-secret",
	})

	out, err := c.TeamComp(context.Background(), team)
	if err != nil {
		t.Fatalf("TeamComp error: %v", err)
	}
	if out != "  한타가 강한 조합  " {
		t.Errorf("Expected verbatim content, got %q", out)
	}
	if got.Model != "test-model" || len(got.Messages) != 2 {
		t.Fatalf("Unexpected request %+v", got)
	}
	if got.Messages[0].Role != "system" || !strings.Contains(got.Messages[1].Content, "5. 레오나") {
		t.Errorf("Unexpected messages %+v", got.Messages)
	}
}

func TestTeamComp_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{"http status", http.StatusUnauthorized, `{"error":{"message":"bad key"}}`, "API error 401"},
		{"api error body", http.StatusOK, `{"error":{"message":"quota exceeded"}}`, "quota exceeded"},
		{"no choices", http.StatusOK, `{"choices":[]}`, "no choices"},
		{"malformed", http.StatusOK, `not json`, "failed to parse response"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c := NewClient(Config{URL: server.URL, APIKey: "k"})
			_, err := c.TeamComp(context.Background(), team)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestTeamComp_NotConfigured(t *testing.T) {
	c := NewClient(Config{URL: "http://unused"})
	if _, err := c.TeamComp(context.Background(), team); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("Expected ErrNotConfigured, got %v", err)
	}
	var nilClient *Client
	if nilClient.Enabled() {
		t.Fatal("Expected nil client to be disabled")
	}
}

func TestTeamComp_WrongSize(t *testing.T) {
	c := NewClient(Config{URL: "http://unused", APIKey: "k"})
	if _, err := c.TeamComp(context.Background(), team[:4]); !errors.Is(err, ErrTeamSize) {
		t.Fatalf("Expected ErrTeamSize, got %v", err)
	}
}

func TestTeamComp_ContextTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	c := NewClient(Config{URL: server.URL, APIKey: "k"})
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := c.TeamComp(ctx, team); err == nil {
		t.Fatal("Expected timeout error")
	}
}

func TestParseTeam(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"아리, 럭스, 가렌, 징크스, 레오나", 5, false},
		{"아리,럭스,가렌,징크스,레오나,", 5, false},
		{"아리，럭스，가렌，징크스，레오나", 5, false},
		{"아리, 럭스, 가렌, 징크스", 0, true},
		{"a,b,c,d,e,f", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseTeam(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrTeamSize) {
				t.Errorf("ParseTeam(%q) expected ErrTeamSize, got %v", tt.in, err)
			}
			continue
		}
		if err != nil || len(got) != tt.want {
			t.Errorf("ParseTeam(%q) = %v, %v", tt.in, got, err)
		}
	}
	got, _ := ParseTeam(" 아리 , 럭스,가렌 ,징크스, 레오나 ")
	if got[0] != "아리" || got[4] != "레오나" {
		t.Errorf("Expected trimmed labels, got %v", got)
	}
}
