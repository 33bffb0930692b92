package schedulerapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Freeeeeet/timetable_bot/internal/model"
	"go.uber.org/zap"
)

const (
	referenceDataPath = "/api/reference-data"
	generatePath      = "/api/generate-timetable"

	// сколько байт тела ошибки сохраняем в Error.Body
	maxErrorBody = 512

	OpReferenceData = "reference-data"
	OpGenerate      = "generate-timetable"
)

// Client HTTP-клиент внешнего сервиса генерации расписания.
// Таймаутов и повторов нет: время ожидания ограничивает только ctx вызывающего.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient создаёт клиент; httpClient может быть nil
func NewClient(baseURL string, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// FetchReferenceData загружает справочник: преподаватели, группы, аудитории, слоты
func (c *Client) FetchReferenceData(ctx context.Context) (*model.Catalog, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+referenceDataPath, nil)
	if err != nil {
		return nil, &Error{Op: OpReferenceData, Err: err}
	}

	var catalog model.Catalog
	if err := c.do(req, OpReferenceData, &catalog); err != nil {
		return nil, err
	}

	c.logger.Info("Reference data fetched",
		zap.Int("faculty", len(catalog.Faculty)),
		zap.Int("sections", len(catalog.Sections)),
		zap.Int("rooms", len(catalog.Rooms)),
		zap.Int("time_slots", len(catalog.TimeSlots)))

	return &catalog, nil
}

// GenerateTimetable отправляет развёрнутые запросы и возвращает расписание и пропущенные слоты
func (c *Client) GenerateTimetable(ctx context.Context, requests []model.ExpandedRequest) (*model.GenerationResult, []byte, error) {
	if requests == nil {
		requests = []model.ExpandedRequest{}
	}

	body, err := json.Marshal(requests)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal expanded requests: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+generatePath, bytes.NewReader(body))
	if err != nil {
		return nil, nil, &Error{Op: OpGenerate, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	var raw json.RawMessage
	if err := c.do(req, OpGenerate, &raw); err != nil {
		return nil, nil, err
	}

	var result model.GenerationResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, nil, &Error{Op: OpGenerate, Err: fmt.Errorf("decode response: %w", err)}
	}

	c.logger.Info("Timetable generated",
		zap.Int("requests", len(requests)),
		zap.Int("entries", len(result.Timetable)),
		zap.Int("skipped", len(result.SkippedSlots)))

	return &result, raw, nil
}

// do выполняет запрос и декодирует JSON-ответ в out
func (c *Client) do(req *http.Request, op string, out interface{}) error {
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Scheduler request failed", zap.String("op", op), zap.Error(err))
		return &Error{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Warn("Scheduler returned error status",
			zap.String("op", op),
			zap.Int("status", resp.StatusCode))
		return &Error{
			Op:         op,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(snippet)),
			Err:        fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("Failed to decode scheduler response", zap.String("op", op), zap.Error(err))
		return &Error{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}

	return nil
}
