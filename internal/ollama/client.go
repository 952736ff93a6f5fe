package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"
)

const promptLogLimit = 100

// SamplingConfig задает параметры генерации для одной операции.
type SamplingConfig struct {
	Temperature float64
	NumPredict  int
}

type Client interface {
	Generate(ctx context.Context, prompt string, sampling SamplingConfig) (string, error)
}

// HTTPClient вызывает endpoint /api/generate локального Ollama.
type HTTPClient struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict"`
}

type generateResponse struct {
	Response string `json:"response"`
	Thinking string `json:"thinking"`
}

// NewHTTPClient создает клиент Ollama с заданными параметрами.
func NewHTTPClient(baseURL, model string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Generate отправляет промпт в Ollama и возвращает текст ответа.
// Ответ ожидается целиком, без стриминга; повторов нет.
func (c *HTTPClient) Generate(ctx context.Context, prompt string, sampling SamplingConfig) (string, error) {
	payload, err := json.Marshal(generateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
		Options: generateOptions{
			Temperature: sampling.Temperature,
			NumPredict:  sampling.NumPredict,
		},
	})
	if err != nil {
		return "", err
	}

	slog.Debug("calling ollama",
		slog.String("model", c.model),
		slog.String("prompt_prefix", prefix(prompt, promptLogLimit)))

	endpoint := fmt.Sprintf("%s/api/generate", c.baseURL)
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}

	request.Header.Set("Content-Type", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return "", classifyTransportError(err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return "", &RequestError{Detail: err.Error()}
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return "", &RequestError{StatusCode: response.StatusCode, Detail: strings.TrimSpace(string(body))}
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", &RequestError{StatusCode: response.StatusCode, Detail: err.Error()}
	}

	// Reasoning-модели оставляют "response" пустым и пишут текст в "thinking".
	answer := strings.TrimSpace(parsed.Response)
	if answer == "" {
		answer = strings.TrimSpace(parsed.Thinking)
	}

	if answer == "" {
		return "", ErrEmptyResponse
	}

	slog.Debug("ollama responded", slog.String("answer_prefix", prefix(answer, promptLogLimit)))

	return answer, nil
}

func classifyTransportError(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %s", ErrTimeout, err.Error())
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s", ErrTimeout, err.Error())
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return fmt.Errorf("%w: %s", ErrUnreachable, err.Error())
	}

	return &RequestError{Detail: err.Error()}
}

func prefix(value string, limit int) string {
	if len(value) <= limit {
		return value
	}

	return value[:limit] + "..."
}
