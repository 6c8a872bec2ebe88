package slotservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-CalendarGateway/internal/domain"
	"github.com/m04kA/SMC-CalendarGateway/pkg/requestid"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder фиксирует вызовы бэкенда, может быть nil
type MetricsRecorder interface {
	ObserveBackendRequest(endpoint, status string, duration time.Duration)
}

// Client клиент для работы с бэкендом слотов
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    MetricsRecorder
}

// NewClient создает новый экземпляр клиента бэкенда слотов
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// WithMetrics включает запись метрик вызовов бэкенда
func (c *Client) WithMetrics(m MetricsRecorder) *Client {
	c.metrics = m
	return c
}

// GetSlots получает все слоты, видимые владельцу токена
func (c *Client) GetSlots(ctx context.Context, token string) ([]domain.Slot, error) {
	resp, err := c.do(ctx, http.MethodGet, pathGetSlots, EndpointGetSlots, token, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		c.log.Warn("GetSlots: backend rejected request: %v", err)
		return nil, err
	}

	// Парсим ответ
	var slots []domain.Slot
	if err := json.NewDecoder(resp.Body).Decode(&slots); err != nil {
		return nil, fmt.Errorf("%w: failed to decode slots: %v", ErrInvalidResponse, err)
	}

	for i := range slots {
		if slots[i].StartTime == "" {
			return nil, fmt.Errorf("%w: slot #%d has no start_time", ErrInvalidResponse, i)
		}
	}

	if slots == nil {
		slots = []domain.Slot{}
	}

	c.log.Info("GetSlots: fetched %d slots", len(slots))
	return slots, nil
}

// OpenCreateSlotModal просит бэкенд начать создание слота на дату
func (c *Client) OpenCreateSlotModal(ctx context.Context, token, date string) error {
	return c.beginFlow(ctx, pathOpenCreateSlotModal, EndpointCreateSlotModal, token, CreateSlotModalRequest{Date: date})
}

// OpenCreateMeetingModal просит бэкенд начать бронирование одного из переданных слотов
func (c *Client) OpenCreateMeetingModal(ctx context.Context, token string, slots []domain.Slot) error {
	return c.beginFlow(ctx, pathOpenCreateMeetingModal, EndpointCreateMeetingModal, token, CreateMeetingModalRequest{Slots: slots})
}

// beginFlow отправляет POST, тело ответа не используется
func (c *Client) beginFlow(ctx context.Context, path, endpoint, token string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	resp, err := c.do(ctx, http.MethodPost, path, endpoint, token, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		c.log.Warn("%s: backend rejected request: %v", endpoint, err)
		return err
	}

	c.log.Info("%s: request accepted with status %d", endpoint, resp.StatusCode)
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *Client) do(ctx context.Context, method, path, endpoint, token string, body []byte) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id := requestid.FromContext(ctx); id != "" {
		req.Header.Set(requestid.Header, id)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(endpoint, "error", time.Since(start))
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	c.observe(endpoint, strconv.Itoa(resp.StatusCode), time.Since(start))

	return resp, nil
}

func (c *Client) observe(endpoint, status string, duration time.Duration) {
	if c.metrics != nil {
		c.metrics.ObserveBackendRequest(endpoint, status, duration)
	}
}

// Обработка статус-кодов
func checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: status code %d", ErrUnauthorized, resp.StatusCode)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}
