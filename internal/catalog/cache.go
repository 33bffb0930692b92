package catalog

import (
	"sync"
	"time"

	"github.com/Freeeeeet/timetable_bot/internal/model"
)

// Cache хранит текущий снимок справочных данных (преподаватели, группы, аудитории, слоты)
type Cache struct {
	mu       sync.RWMutex
	current  *model.Catalog
	loadedAt time.Time
}

// NewCache создаёт пустой кеш; Ready() вернёт false до первой успешной загрузки
func NewCache() *Cache {
	return &Cache{current: &model.Catalog{}}
}

// Replace целиком заменяет снимок
func (c *Cache) Replace(catalog *model.Catalog) {
	if catalog == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.current = catalog
	c.loadedAt = time.Now()
}

// Snapshot возвращает текущий снимок. Снимок не изменяется после Replace, менять его нельзя.
func (c *Cache) Snapshot() *model.Catalog {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// Ready сообщает, была ли хотя бы одна успешная загрузка
func (c *Cache) Ready() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return !c.loadedAt.IsZero()
}

func (c *Cache) LoadedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loadedAt
}

// SectionIDs возвращает идентификаторы всех групп в порядке справочника
func (c *Cache) SectionIDs() []int64 {
	snapshot := c.Snapshot()
	ids := make([]int64, 0, len(snapshot.Sections))
	for _, s := range snapshot.Sections {
		ids = append(ids, s.ID)
	}
	return ids
}

// FacultyName возвращает имя преподавателя или "", если его нет в справочнике
func (c *Cache) FacultyName(id int64) string {
	for _, f := range c.Snapshot().Faculty {
		if f.ID == id {
			return f.Name
		}
	}
	return ""
}

// SectionName возвращает название группы или "", если её нет в справочнике
func (c *Cache) SectionName(id int64) string {
	for _, s := range c.Snapshot().Sections {
		if s.ID == id {
			return s.Name
		}
	}
	return ""
}

// FacultyNames разрешает список идентификаторов; неизвестные пропускаются
func (c *Cache) FacultyNames(ids []int64) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name := c.FacultyName(id); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// SectionNames разрешает список идентификаторов; неизвестные пропускаются
func (c *Cache) SectionNames(ids []int64) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name := c.SectionName(id); name != "" {
			names = append(names, name)
		}
	}
	return names
}
