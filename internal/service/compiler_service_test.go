package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"guru_learn_backend/internal/config"
)

func newFakeJudge0(t *testing.T, result judge0Result, capture *map[string]interface{}) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/submissions" {
			http.NotFound(w, r)
			return
		}
		var payload map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, "bad payload", http.StatusBadRequest)
			return
		}
		if capture != nil {
			*capture = payload
		}
		json.NewEncoder(w).Encode(result)
	}))
}

func TestCompilerRun(t *testing.T) {
	var captured map[string]interface{}
	srv := newFakeJudge0(t, judge0Result{Stdout: "hello\n"}, &captured)
	defer srv.Close()

	svc := NewCompilerService(config.Judge0Config{URL: srv.URL, APIKey: "k", Host: "h"})
	output, err := svc.Run(context.Background(), "python", "print('hello')")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if output != "hello\n" {
		t.Errorf("output = %q", output)
	}
	if got := captured["language_id"]; got != float64(71) {
		t.Errorf("language_id = %v, want 71", got)
	}
}

func TestCompilerLanguageMap(t *testing.T) {
	tests := []struct {
		language string
		wantID   float64
	}{
		{"python", 71},
		{"java", 62},
		{"c", 50},
		{"ruby", 72},
		{"cobol", 71}, // unknown languages fall back to python
	}

	for _, tt := range tests {
		t.Run(tt.language, func(t *testing.T) {
			var captured map[string]interface{}
			srv := newFakeJudge0(t, judge0Result{Stdout: "ok"}, &captured)
			defer srv.Close()

			svc := NewCompilerService(config.Judge0Config{URL: srv.URL})
			if _, err := svc.Run(context.Background(), tt.language, "code"); err != nil {
				t.Fatal(err)
			}
			if got := captured["language_id"]; got != tt.wantID {
				t.Errorf("language_id = %v, want %v", got, tt.wantID)
			}
		})
	}
}

func TestCompilerOutputPrecedence(t *testing.T) {
	tests := []struct {
		name   string
		result judge0Result
		want   string
	}{
		{"stdout wins", judge0Result{Stdout: "out", Stderr: "err"}, "out"},
		{"stderr next", judge0Result{Stderr: "err", CompileOutput: "cc"}, "err"},
		{"compile output next", judge0Result{CompileOutput: "cc"}, "cc"},
		{"nothing", judge0Result{}, "No output"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newFakeJudge0(t, tt.result, nil)
			defer srv.Close()

			svc := NewCompilerService(config.Judge0Config{URL: srv.URL})
			output, err := svc.Run(context.Background(), "python", "x")
			if err != nil {
				t.Fatal(err)
			}
			if output != tt.want {
				t.Errorf("output = %q, want %q", output, tt.want)
			}
		})
	}
}

func TestCompilerUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	svc := NewCompilerService(config.Judge0Config{URL: srv.URL})
	if _, err := svc.Run(context.Background(), "python", "x"); err == nil {
		t.Error("expected error on upstream failure")
	}
}
