// Package memcache реализует процессное key/value-хранилище с абсолютным
// и скользящим временем жизни записей. Просроченные записи вытесняются
// лениво — при обращении к ключу, фонового таймера нет.
package memcache

import (
	"sync"
	"time"
)

// Options задаёт политику истечения записи.
// Нулевое значение поля отключает соответствующую политику.
type Options struct {
	// AbsoluteTTL — время жизни с момента записи.
	AbsoluteTTL time.Duration
	// SlidingTTL — время жизни с момента последнего чтения.
	SlidingTTL time.Duration
}

type entry struct {
	value      any
	absoluteAt time.Time // нулевое время — без абсолютного истечения
	slidingTTL time.Duration
	slidingAt  time.Time // нулевое время — без скользящего истечения
}

// Cache — потокобезопасное хранилище записей с политиками истечения.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*entry
	now     func() time.Time
}

func New() *Cache {
	return &Cache{
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

// NewWithClock создаёт Cache с заданным источником времени.
// Используется в тестах для детерминированного истечения.
func NewWithClock(now func() time.Time) *Cache {
	return &Cache{
		entries: make(map[string]*entry),
		now:     now,
	}
}

// Set сохраняет значение по ключу, перезаписывая существующую запись
// и заново регистрируя политику истечения.
func (c *Cache) Set(key string, value any, opts Options) {
	now := c.now()

	ent := &entry{
		value:      value,
		slidingTTL: opts.SlidingTTL,
	}
	if opts.AbsoluteTTL > 0 {
		ent.absoluteAt = now.Add(opts.AbsoluteTTL)
	}
	if opts.SlidingTTL > 0 {
		ent.slidingAt = now.Add(opts.SlidingTTL)
	}

	c.mu.Lock()
	c.entries[key] = ent
	c.mu.Unlock()
}

// TryGet возвращает значение по ключу, если запись существует и не истекла.
// Чтение продлевает скользящий дедлайн записи.
func (c *Cache) TryGet(key string) (any, bool) {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	ent, ok := c.entries[key]
	if !ok {
		return nil, false
	}

	if ent.expired(now) {
		delete(c.entries, key)
		return nil, false
	}

	if ent.slidingTTL > 0 {
		ent.slidingAt = now.Add(ent.slidingTTL)
	}

	return ent.value, true
}

// Delete удаляет запись по ключу.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// expired сообщает, истекла ли запись: срабатывает тот дедлайн,
// который наступил раньше.
func (e *entry) expired(now time.Time) bool {
	if !e.absoluteAt.IsZero() && !now.Before(e.absoluteAt) {
		return true
	}
	if !e.slidingAt.IsZero() && !now.Before(e.slidingAt) {
		return true
	}

	return false
}
