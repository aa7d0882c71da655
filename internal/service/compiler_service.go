package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"guru_learn_backend/internal/config"
)

// Judge0 language ids for the languages the frontend offers.
var judge0Languages = map[string]int{
	"python": 71,
	"java":   62,
	"c":      50,
	"ruby":   72,
}

type CompilerService struct {
	cfg    config.Judge0Config
	client *http.Client
}

func NewCompilerService(cfg config.Judge0Config) *CompilerService {
	return &CompilerService{
		cfg:    cfg,
		client: http.DefaultClient,
	}
}

type judge0Result struct {
	Stdout        string `json:"stdout"`
	Stderr        string `json:"stderr"`
	CompileOutput string `json:"compile_output"`
}

// Run submits the source to Judge0 and waits for the result. Unknown
// languages fall back to Python, matching the frontend's default.
func (s *CompilerService) Run(ctx context.Context, language, code string) (string, error) {
	languageID, ok := judge0Languages[language]
	if !ok {
		languageID = judge0Languages["python"]
	}

	payload, err := json.Marshal(map[string]interface{}{
		"source_code": code,
		"language_id": languageID,
		"stdin":       "",
	})
	if err != nil {
		return "", err
	}

	endpoint := s.cfg.URL + "/submissions?base64_encoded=false&wait=true"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-RapidAPI-Key", s.cfg.APIKey)
	req.Header.Set("X-RapidAPI-Host", s.cfg.Host)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("judge0 submission failed (status %d): %s", resp.StatusCode, string(body))
	}

	var result judge0Result
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}

	switch {
	case result.Stdout != "":
		return result.Stdout, nil
	case result.Stderr != "":
		return result.Stderr, nil
	case result.CompileOutput != "":
		return result.CompileOutput, nil
	default:
		return "No output", nil
	}
}
