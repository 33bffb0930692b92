package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/Freeeeeet/timetable_bot/internal/catalog"
	"github.com/Freeeeeet/timetable_bot/internal/model"
	"go.uber.org/zap"
)

// SchedulerClient удалённый сервис генерации расписания
type SchedulerClient interface {
	FetchReferenceData(ctx context.Context) (*model.Catalog, error)
	GenerateTimetable(ctx context.Context, requests []model.ExpandedRequest) (*model.GenerationResult, []byte, error)
}

// RunRepository хранилище результатов генерации
type RunRepository interface {
	Save(ctx context.Context, run *model.TimetableRun) error
	GetLatest(ctx context.Context, telegramID int64) (*model.TimetableRun, error)
}

type TimetableService struct {
	client  SchedulerClient
	runRepo RunRepository
	cache   *catalog.Cache
	queues  *QueueStore
	logger  *zap.Logger

	mu     sync.RWMutex
	latest map[int64]*model.TimetableRun
}

func NewTimetableService(
	client SchedulerClient,
	runRepo RunRepository,
	cache *catalog.Cache,
	queues *QueueStore,
	logger *zap.Logger,
) *TimetableService {
	return &TimetableService{
		client:  client,
		runRepo: runRepo,
		cache:   cache,
		queues:  queues,
		logger:  logger,
		latest:  make(map[int64]*model.TimetableRun),
	}
}

// Catalog кэш справочника, из которого берутся имена и списки для выбора
func (s *TimetableService) Catalog() *catalog.Cache {
	return s.cache
}

// RefreshCatalog загружает справочник и заменяет снимок целиком.
// При ошибке остаётся предыдущий снимок.
func (s *TimetableService) RefreshCatalog(ctx context.Context) error {
	fetched, err := s.client.FetchReferenceData(ctx)
	if err != nil {
		s.logger.Warn("Failed to refresh reference data", zap.Error(err))
		return fmt.Errorf("fetch reference data: %w", err)
	}

	s.cache.Replace(fetched)
	s.logger.Info("Reference data refreshed",
		zap.Int("faculty", len(fetched.Faculty)),
		zap.Int("sections", len(fetched.Sections)),
		zap.Int("rooms", len(fetched.Rooms)),
		zap.Int("time_slots", len(fetched.TimeSlots)),
	)
	return nil
}

// EnsureCatalog загружает справочник, если он ещё ни разу не загружался
func (s *TimetableService) EnsureCatalog(ctx context.Context) error {
	if s.cache.Ready() {
		return nil
	}
	if err := s.RefreshCatalog(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrCatalogNotReady, err)
	}
	return nil
}

// SubmitSubject проверяет форму, применяет режим групп к текущему справочнику
// и добавляет предмет в очередь пользователя (или заменяет совпавший)
func (s *TimetableService) SubmitSubject(ctx context.Context, telegramID int64, form SubjectForm) (UpsertResult, model.SubjectRequest, error) {
	if !s.cache.Ready() {
		return 0, model.SubjectRequest{}, ErrCatalogNotReady
	}

	candidate, err := form.Build(s.cache.Snapshot())
	if err != nil {
		return 0, model.SubjectRequest{}, err
	}

	result, stored := s.queues.Get(telegramID).Upsert(candidate)

	s.logger.Info("Subject queued",
		zap.Int64("telegram_id", telegramID),
		zap.String("subject", stored.Name),
		zap.String("subject_id", stored.ID),
		zap.Stringer("result", result),
		zap.Int("sections", len(stored.ResolvedSections)),
	)

	return result, stored, nil
}

// RemoveSubject удаляет предмет по позиции; позиция вне диапазона игнорируется
func (s *TimetableService) RemoveSubject(telegramID int64, position int) bool {
	removed := s.queues.Get(telegramID).Remove(position)
	if removed {
		s.logger.Info("Subject removed from queue",
			zap.Int64("telegram_id", telegramID),
			zap.Int("position", position),
		)
	}
	return removed
}

func (s *TimetableService) Queue(telegramID int64) []model.SubjectRequest {
	return s.queues.Get(telegramID).List()
}

func (s *TimetableService) ClearQueue(telegramID int64) {
	s.queues.Get(telegramID).Clear()
}

// Generate разворачивает очередь, отправляет её бэкенду и сохраняет результат.
// При ошибке предыдущее расписание остаётся доступным.
func (s *TimetableService) Generate(ctx context.Context, telegramID int64) (*model.TimetableRun, error) {
	subjects := s.queues.Get(telegramID).List()
	if len(subjects) == 0 {
		return nil, ErrEmptyQueue
	}

	requests := ExpandRequests(subjects)

	s.logger.Info("Generating timetable",
		zap.Int64("telegram_id", telegramID),
		zap.Int("subjects", len(subjects)),
		zap.Int("requests", len(requests)),
	)

	result, raw, err := s.client.GenerateTimetable(ctx, requests)
	if err != nil {
		s.logger.Error("Timetable generation failed",
			zap.Int64("telegram_id", telegramID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("generate timetable: %w", err)
	}

	run := &model.TimetableRun{
		TelegramID: telegramID,
		Requests:   requests,
		Result:     result,
		RawResult:  raw,
	}

	// Результат уже получен, поэтому ошибка сохранения не должна его терять
	if err := s.runRepo.Save(ctx, run); err != nil {
		s.logger.Error("Failed to save timetable run",
			zap.Int64("telegram_id", telegramID),
			zap.Error(err),
		)
	}

	s.mu.Lock()
	s.latest[telegramID] = run
	s.mu.Unlock()

	s.logger.Info("Timetable generated",
		zap.Int64("telegram_id", telegramID),
		zap.Int64("run_id", run.ID),
		zap.Int("entries", len(result.Timetable)),
		zap.Int("skipped", len(result.SkippedSlots)),
	)

	return run, nil
}

// LatestRun последний успешный результат генерации пользователя
func (s *TimetableService) LatestRun(ctx context.Context, telegramID int64) (*model.TimetableRun, error) {
	s.mu.RLock()
	run, ok := s.latest[telegramID]
	s.mu.RUnlock()
	if ok {
		return run, nil
	}

	run, err := s.runRepo.GetLatest(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("get latest run: %w", err)
	}
	if run == nil {
		return nil, ErrRunNotFound
	}

	s.mu.Lock()
	if _, exists := s.latest[telegramID]; !exists {
		s.latest[telegramID] = run
	}
	run = s.latest[telegramID]
	s.mu.Unlock()

	return run, nil
}

// Projection строит проекцию по группам для последнего результата
func (s *TimetableService) Projection(ctx context.Context, telegramID int64) (*model.TimetableRun, *Projector, error) {
	run, err := s.LatestRun(ctx, telegramID)
	if err != nil {
		return nil, nil, err
	}

	var entries []model.TimetableEntry
	if run.Result != nil {
		entries = run.Result.Timetable
	}
	return run, NewProjector(entries), nil
}
