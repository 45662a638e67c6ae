package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// DefaultTimeout таймаут HTTP запросов по умолчанию
const DefaultTimeout = 10 * time.Second

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client типизированный клиент API сервиса бронирования.
// Безопасен для конкурентного использования
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger

	mu    sync.RWMutex
	token string
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SetToken устанавливает сессионный токен для последующих запросов.
// Пустая строка сбрасывает авторизацию
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// HasToken сообщает, установлен ли сессионный токен
func (c *Client) HasToken() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token != ""
}

// do выполняет запрос и декодирует успешный ответ в out (если out != nil).
// Неуспешные статусы превращаются в *APIError, транспортные сбои в ErrNetwork
func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request body: %v", ErrNetwork, err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrNetwork, err)
	}

	req.Header.Set("Content-Type", "application/json")

	c.mu.RLock()
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	c.mu.RUnlock()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.apiError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		// Битое тело успешного ответа считаем ошибкой API, не паникуем
		// и не отдаём частично заполненный результат
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("failed to decode response: %v", err),
		}
	}

	return nil
}

// apiError строит *APIError из неуспешного ответа.
// Сообщение берётся из поля error тела, если тело распарсилось
func (c *Client) apiError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(resp.Body)
	if err == nil && len(body) > 0 {
		var parsed struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &parsed) == nil && parsed.Error != "" {
			apiErr.Message = parsed.Error
		}
	}

	return apiErr
}
