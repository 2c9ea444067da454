package querycache

import "sync"

// KeyVoyages - ключ закешированного списка рейсов. Инвалидируется после
// успешного создания, чтобы следующий рендер списка увидел новую строку.
const KeyVoyages = "voyages"

// Cache - простой кеш результатов чтения по строковому ключу для
// списочных представлений.
type Cache struct {
	mu      sync.Mutex
	entries map[string]interface{}
}

func New() *Cache {
	return &Cache{
		entries: map[string]interface{}{},
	}
}

func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	value, ok := c.entries[key]
	return value, ok
}

func (c *Cache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = value
}

func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
}
