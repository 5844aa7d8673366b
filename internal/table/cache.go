package table

import (
	"sync"

	"github.com/rs/zerolog/log"
)

type entry struct {
	once  sync.Once
	table *Table
	err   error
}

// Cache memoizes Load per path for the lifetime of the process. The first
// call for a path reads the file; later calls return the same table (or the
// same error) without touching the filesystem.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*entry
	load    func(string) (*Table, error)
}

// NewCache creates an empty cache backed by Load.
func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]*entry),
		load:    Load,
	}
}

// Get returns the table for path, loading it on first access.
func (c *Cache) Get(path string) (*Table, error) {
	c.mu.Lock()
	e, ok := c.entries[path]
	if !ok {
		e = &entry{}
		c.entries[path] = e
	}
	c.mu.Unlock()

	e.once.Do(func() {
		e.table, e.err = c.load(path)
		if e.err != nil {
			log.Warn().Err(e.err).Str("path", path).Msg("table load failed")
			return
		}
		log.Info().Str("path", path).Int("rows", e.table.Len()).Int("columns", len(e.table.columns)).Msg("table loaded")
	})
	return e.table, e.err
}
