package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/Adiiii-i/travara/pkg/utils"
)

const (
	// DefaultOllamaBaseURL is the default endpoint of a local Ollama server.
	DefaultOllamaBaseURL = "http://localhost:11434"
	// DefaultOllamaModel is used when no model override is configured.
	DefaultOllamaModel = "llama3.2"

	probeTimeout = 5 * time.Second
	// Local inference is slow; generation gets a much longer budget than the
	// liveness probe.
	chatTimeout = 120 * time.Second
)

// Ollama is the local-model provider, speaking the Ollama /api/chat protocol.
type Ollama struct {
	baseURL string
	model   string
	client  *http.Client
}

// NewOllama probes the server's /api/tags route before accepting the endpoint,
// so an Ollama that is not running fails at construction rather than on the
// first generation request.
func NewOllama(baseURL, model string) (*Ollama, error) {
	baseURL = strings.TrimSuffix(baseURL, "/")
	if baseURL == "" {
		baseURL = DefaultOllamaBaseURL
	}
	if model == "" {
		model = DefaultOllamaModel
	}

	probe := &http.Client{Timeout: probeTimeout}
	resp, err := probe.Get(baseURL + "/api/tags")
	if err != nil {
		return nil, &utils.ConfigurationError{
			Service: "ollama",
			Reason:  fmt.Sprintf("cannot connect to Ollama at %s, make sure Ollama is running: %v", baseURL, err),
		}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, &utils.ConfigurationError{
			Service: "ollama",
			Reason:  fmt.Sprintf("Ollama server not responding at %s (status %d)", baseURL, resp.StatusCode),
		}
	}

	return &Ollama{
		baseURL: baseURL,
		model:   model,
		client:  &http.Client{Timeout: chatTimeout},
	}, nil
}

func (p *Ollama) Name() string { return "ollama" }

type ollamaChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaChatRequest struct {
	Model    string              `json:"model"`
	Messages []ollamaChatMessage `json:"messages"`
	Stream   bool                `json:"stream"`
	Options  ollamaOptions       `json:"options"`
}

type ollamaOptions struct {
	Temperature float32 `json:"temperature"`
	// NumPredict caps the output length, equivalent to max_tokens.
	NumPredict int `json:"num_predict"`
}

type ollamaChatResponse struct {
	Message ollamaChatMessage `json:"message"`
}

func (p *Ollama) GenerateItinerary(ctx context.Context, trip Trip) (string, error) {
	body, err := json.Marshal(ollamaChatRequest{
		Model: p.model,
		Messages: []ollamaChatMessage{
			{Role: "system", Content: SystemPrompt},
			{Role: "user", Content: BuildPrompt(trip)},
		},
		Stream: false,
		Options: ollamaOptions{
			Temperature: generationTemperature,
			NumPredict:  generationMaxTokens,
		},
	})
	if err != nil {
		return "", &utils.GenerationError{Provider: p.Name(), Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", &utils.GenerationError{Provider: p.Name(), Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
			return "", &utils.GenerationError{
				Provider: p.Name(),
				Err:      errors.New("request timed out, the model may be too slow or not responding"),
			}
		}
		return "", &utils.GenerationError{
			Provider: p.Name(),
			Err:      fmt.Errorf("cannot reach Ollama at %s: %w", p.baseURL, err),
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", &utils.GenerationError{
			Provider: p.Name(),
			Err:      fmt.Errorf("Ollama API error: %d - %s", resp.StatusCode, strings.TrimSpace(string(detail))),
		}
	}

	var out ollamaChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", &utils.GenerationError{Provider: p.Name(), Err: fmt.Errorf("malformed response: %w", err)}
	}
	return strings.TrimSpace(out.Message.Content), nil
}
