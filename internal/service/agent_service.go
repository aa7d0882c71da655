package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"guru_learn_backend/internal/config"
	"guru_learn_backend/pkg/monitoring"
)

// QuizQuestion is the agent's quiz format, relayed verbatim to clients.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// VoiceAction is the structured result of a voice command. Action is one of
// navigate, respond, enroll or list_courses.
type VoiceAction struct {
	Action      string `json:"action"`
	Target      string `json:"target,omitempty"`
	CourseTitle string `json:"courseTitle,omitempty"`
	Response    string `json:"response,omitempty"`
}

// AgentClient is the narrow surface the rest of the backend sees of the
// external AI agent service. Its internals are out of scope; tests substitute
// a fake.
type AgentClient interface {
	GenerateQuiz(ctx context.Context, topic string) ([]QuizQuestion, error)
	Chat(ctx context.Context, message string) (string, error)
	InterpretVoiceCommand(ctx context.Context, command string) (*VoiceAction, error)
}

// AIAgentService talks to the agent's HTTP API.
type AIAgentService struct {
	cfg    config.AgentConfig
	client *http.Client
}

func NewAIAgentService(cfg config.AgentConfig) *AIAgentService {
	return &AIAgentService{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

func (s *AIAgentService) GenerateQuiz(ctx context.Context, topic string) ([]QuizQuestion, error) {
	endpoint := fmt.Sprintf("%s/generate_quiz?topic=%s", s.cfg.BaseURL, url.QueryEscape(topic))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var questions []QuizQuestion
	if err := s.do(req, "generate_quiz", &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *AIAgentService) Chat(ctx context.Context, message string) (string, error) {
	payload, err := json.Marshal(map[string]string{"user_message": message})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.cfg.BaseURL+"/chatbot_query", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	var out struct {
		Response string `json:"response"`
	}
	if err := s.do(req, "chatbot_query", &out); err != nil {
		return "", err
	}
	return out.Response, nil
}

func (s *AIAgentService) InterpretVoiceCommand(ctx context.Context, command string) (*VoiceAction, error) {
	payload, err := json.Marshal(map[string]string{"command_text": command})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.cfg.BaseURL+"/process_voice_command", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var action VoiceAction
	if err := s.do(req, "process_voice_command", &action); err != nil {
		return nil, err
	}
	return &action, nil
}

func (s *AIAgentService) do(req *http.Request, operation string, out interface{}) error {
	resp, err := s.client.Do(req)
	if err != nil {
		monitoring.AgentRequestCounter.WithLabelValues(operation, "error").Inc()
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		monitoring.AgentRequestCounter.WithLabelValues(operation, "error").Inc()
		return err
	}
	if resp.StatusCode != http.StatusOK {
		monitoring.AgentRequestCounter.WithLabelValues(operation, "error").Inc()
		return fmt.Errorf("agent %s failed (status %d): %s", operation, resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		monitoring.AgentRequestCounter.WithLabelValues(operation, "error").Inc()
		return fmt.Errorf("agent %s returned malformed payload: %w", operation, err)
	}

	monitoring.AgentRequestCounter.WithLabelValues(operation, "ok").Inc()
	return nil
}
