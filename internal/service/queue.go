package service

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/Freeeeeet/timetable_bot/internal/model"
	"github.com/google/uuid"
)

// UpsertResult итог добавления предмета в очередь
type UpsertResult int

const (
	Inserted UpsertResult = iota + 1
	Updated
)

func (r UpsertResult) String() string {
	switch r {
	case Inserted:
		return "inserted"
	case Updated:
		return "updated"
	default:
		return "unknown"
	}
}

// IdentityKey вычисляет ключ "того же предмета": название плюс отсортированный
// набор групп. Порядок выбора групп и способ их вычисления на ключ не влияют.
func IdentityKey(name string, resolvedSections []int64) string {
	sorted := make([]int64, len(resolvedSections))
	copy(sorted, resolvedSections)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	parts := make([]string, len(sorted))
	for i, id := range sorted {
		parts[i] = strconv.FormatInt(id, 10)
	}

	// Часть с группами не содержит "|", поэтому ключ однозначен при любом названии
	return name + "|" + strings.Join(parts, ",")
}

// SubjectQueue упорядоченная очередь предметов одного пользователя
type SubjectQueue struct {
	mu    sync.Mutex
	items []model.SubjectRequest
	newID func() string
}

// NewSubjectQueue создаёт пустую очередь
func NewSubjectQueue() *SubjectQueue {
	return &SubjectQueue{newID: uuid.NewString}
}

// Upsert добавляет предмет или заменяет совпавший по IdentityKey.
// При замене сохраняются исходный ID и позиция, остальные поля берутся из candidate.
func (q *SubjectQueue) Upsert(candidate model.SubjectRequest) (UpsertResult, model.SubjectRequest) {
	q.mu.Lock()
	defer q.mu.Unlock()

	key := IdentityKey(candidate.Name, candidate.ResolvedSections)
	entry := cloneSubject(candidate)

	for i := range q.items {
		if IdentityKey(q.items[i].Name, q.items[i].ResolvedSections) == key {
			entry.ID = q.items[i].ID
			q.items[i] = entry
			return Updated, cloneSubject(entry)
		}
	}

	entry.ID = q.newID()
	q.items = append(q.items, entry)
	return Inserted, cloneSubject(entry)
}

// Remove удаляет предмет по позиции. Позиция вне диапазона молча игнорируется.
func (q *SubjectQueue) Remove(position int) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if position < 0 || position >= len(q.items) {
		return false
	}
	q.items = append(q.items[:position], q.items[position+1:]...)
	return true
}

// List возвращает копию очереди в порядке добавления
func (q *SubjectQueue) List() []model.SubjectRequest {
	q.mu.Lock()
	defer q.mu.Unlock()

	result := make([]model.SubjectRequest, len(q.items))
	for i, item := range q.items {
		result[i] = cloneSubject(item)
	}
	return result
}

func (q *SubjectQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

func (q *SubjectQueue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = nil
}

func cloneSubject(s model.SubjectRequest) model.SubjectRequest {
	s.FacultyIDs = append([]int64(nil), s.FacultyIDs...)
	s.ResolvedSections = append([]int64(nil), s.ResolvedSections...)
	return s
}

// QueueStore владеет очередями всех пользователей (telegramID -> очередь)
type QueueStore struct {
	mu     sync.Mutex
	queues map[int64]*SubjectQueue
}

func NewQueueStore() *QueueStore {
	return &QueueStore{queues: make(map[int64]*SubjectQueue)}
}

// Get возвращает очередь пользователя, создавая её при первом обращении
func (s *QueueStore) Get(telegramID int64) *SubjectQueue {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.queues[telegramID]
	if !ok {
		q = NewSubjectQueue()
		s.queues[telegramID] = q
	}
	return q
}
