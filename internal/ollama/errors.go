package ollama

import (
	"errors"
	"fmt"
)

var (
	// ErrUnreachable — соединение с Ollama отклонено или недоступно.
	ErrUnreachable = errors.New("ollama service is unreachable")
	// ErrTimeout — Ollama не ответил в отведенное время.
	ErrTimeout = errors.New("ollama request timed out")
	// ErrEmptyResponse — Ollama ответил, но без текста ни в одном поле.
	ErrEmptyResponse = errors.New("empty response from ollama")
)

// RequestError — транспортная ошибка бекенда с деталями для диагностики.
type RequestError struct {
	StatusCode int
	Detail     string
}

func (e *RequestError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("ollama request failed: %s", e.Detail)
	}

	return fmt.Sprintf("ollama request failed with status %d: %s", e.StatusCode, e.Detail)
}
