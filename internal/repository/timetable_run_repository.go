package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Freeeeeet/timetable_bot/internal/model"
	"github.com/Freeeeeet/timetable_bot/internal/repository/base"
)

// ErrEmptyResult у результата нет исходного тела ответа бэкенда
var ErrEmptyResult = errors.New("timetable run has no result payload")

// TimetableRunRepository хранит результаты генерации в PostgreSQL
type TimetableRunRepository struct {
	*base.Repository
}

func NewTimetableRunRepository(db base.Querier) *TimetableRunRepository {
	return &TimetableRunRepository{Repository: base.NewRepository(db)}
}

// Save сохраняет результат генерации. Результат хранится в том виде,
// в каком его вернул бэкенд, и декодируется при чтении.
func (r *TimetableRunRepository) Save(ctx context.Context, run *model.TimetableRun) error {
	if len(run.RawResult) == 0 {
		return ErrEmptyResult
	}

	requests, err := json.Marshal(run.Requests)
	if err != nil {
		return fmt.Errorf("marshal requests: %w", err)
	}

	entries, skipped := 0, 0
	if run.Result != nil {
		entries = len(run.Result.Timetable)
		skipped = len(run.Result.SkippedSlots)
	}

	query := `
		INSERT INTO timetable_runs (telegram_id, requests, result, entries_count, skipped_count)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err = r.QueryRow(ctx, query,
		run.TelegramID,
		requests,
		[]byte(run.RawResult),
		entries,
		skipped,
	).Scan(&run.ID, &run.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert timetable run: %w", err)
	}

	return nil
}

// GetLatest возвращает последний результат пользователя или nil, если его нет
func (r *TimetableRunRepository) GetLatest(ctx context.Context, telegramID int64) (*model.TimetableRun, error) {
	query := `
		SELECT id, telegram_id, requests, result, created_at
		FROM timetable_runs
		WHERE telegram_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`

	var (
		run      model.TimetableRun
		requests []byte
		result   []byte
	)
	err := r.QueryRow(ctx, query, telegramID).Scan(
		&run.ID,
		&run.TelegramID,
		&requests,
		&result,
		&run.CreatedAt,
	)
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get latest timetable run: %w", err)
	}

	if err := decodeRun(&run, requests, result); err != nil {
		return nil, err
	}

	return &run, nil
}

func decodeRun(run *model.TimetableRun, requests, result []byte) error {
	if err := json.Unmarshal(requests, &run.Requests); err != nil {
		return fmt.Errorf("decode run %d requests: %w", run.ID, err)
	}

	var decoded model.GenerationResult
	if err := json.Unmarshal(result, &decoded); err != nil {
		return fmt.Errorf("decode run %d result: %w", run.ID, err)
	}

	run.RawResult = json.RawMessage(result)
	run.Result = &decoded
	return nil
}
