package repository

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/Freeeeeet/timetable_bot/internal/model"
)

// MemoryRunRepository хранит результаты генерации в памяти процесса.
// Используется, когда база не настроена. После перезапуска результаты теряются.
type MemoryRunRepository struct {
	mu     sync.RWMutex
	nextID int64
	latest map[int64]model.TimetableRun
	now    func() time.Time
}

func NewMemoryRunRepository() *MemoryRunRepository {
	return &MemoryRunRepository{
		latest: make(map[int64]model.TimetableRun),
		now:    time.Now,
	}
}

func (r *MemoryRunRepository) Save(ctx context.Context, run *model.TimetableRun) error {
	if len(run.RawResult) == 0 {
		return ErrEmptyResult
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	run.ID = r.nextID
	run.CreatedAt = r.now()

	stored := *run
	stored.Requests = append([]model.ExpandedRequest(nil), run.Requests...)
	stored.RawResult = append(json.RawMessage(nil), run.RawResult...)
	r.latest[run.TelegramID] = stored

	return nil
}

func (r *MemoryRunRepository) GetLatest(ctx context.Context, telegramID int64) (*model.TimetableRun, error) {
	r.mu.RLock()
	run, ok := r.latest[telegramID]
	r.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	return &run, nil
}
