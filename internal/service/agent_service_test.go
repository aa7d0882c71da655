package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"guru_learn_backend/internal/config"
)

func newFakeAgentServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/generate_quiz", func(w http.ResponseWriter, r *http.Request) {
		if topic := r.URL.Query().Get("topic"); topic == "" {
			http.Error(w, `{"detail":"topic required"}`, http.StatusBadRequest)
			return
		}
		fmt.Fprint(w, `[{"question":"What is a goroutine?","options":["A thread","A coroutine","A process","A channel"],"correctAnswer":"A coroutine"}]`)
	})

	mux.HandleFunc("/chatbot_query", func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			UserMessage string `json:"user_message"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.UserMessage == "" {
			http.Error(w, `{"detail":"user_message required"}`, http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"response": "Hello " + in.UserMessage})
	})

	mux.HandleFunc("/process_voice_command", func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			CommandText string `json:"command_text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, `{"detail":"bad payload"}`, http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(VoiceAction{Action: "navigate", Target: "/courses"})
	})

	return httptest.NewServer(mux)
}

func TestAgentGenerateQuiz(t *testing.T) {
	srv := newFakeAgentServer(t)
	defer srv.Close()

	agent := NewAIAgentService(config.AgentConfig{BaseURL: srv.URL})
	questions, err := agent.GenerateQuiz(context.Background(), "goroutines & channels")
	if err != nil {
		t.Fatalf("GenerateQuiz: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("questions = %d, want 1", len(questions))
	}
	if questions[0].CorrectAnswer != "A coroutine" {
		t.Errorf("correct answer = %q", questions[0].CorrectAnswer)
	}
	if len(questions[0].Options) != 4 {
		t.Errorf("options = %d, want 4", len(questions[0].Options))
	}
}

func TestAgentChat(t *testing.T) {
	srv := newFakeAgentServer(t)
	defer srv.Close()

	agent := NewAIAgentService(config.AgentConfig{BaseURL: srv.URL})
	reply, err := agent.Chat(context.Background(), "world")
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if reply != "Hello world" {
		t.Errorf("reply = %q", reply)
	}
}

func TestAgentInterpretVoiceCommand(t *testing.T) {
	srv := newFakeAgentServer(t)
	defer srv.Close()

	agent := NewAIAgentService(config.AgentConfig{BaseURL: srv.URL})
	action, err := agent.InterpretVoiceCommand(context.Background(), "open my courses")
	if err != nil {
		t.Fatalf("InterpretVoiceCommand: %v", err)
	}
	if action.Action != "navigate" || action.Target != "/courses" {
		t.Errorf("action = %+v", action)
	}
}

func TestAgentUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	agent := NewAIAgentService(config.AgentConfig{BaseURL: srv.URL})
	if _, err := agent.GenerateQuiz(context.Background(), "anything"); err == nil {
		t.Error("expected error on upstream 500")
	}
	if _, err := agent.Chat(context.Background(), "hi"); err == nil {
		t.Error("expected error on upstream 500")
	}
}

func TestAgentMalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html>not json</html>")
	}))
	defer srv.Close()

	agent := NewAIAgentService(config.AgentConfig{BaseURL: srv.URL})
	if _, err := agent.GenerateQuiz(context.Background(), "anything"); err == nil {
		t.Error("expected error on malformed payload")
	}
}
