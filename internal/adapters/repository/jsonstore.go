package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/navyajewels/backoffice/internal/domain/entities"
	"github.com/navyajewels/backoffice/internal/infrastructure/logger"
	"github.com/navyajewels/backoffice/internal/ports"
)

// Record is anything a collection can store and look up by id.
type Record interface {
	RecordID() string
}

// Collection persists one record type as a pretty-printed JSON array
// document. Every read goes back to the file, so edits made by the
// storefront or by hand show up on the next command.
type Collection[T Record] struct {
	path      string
	name      string
	normalize func(*T)
	log       *logger.Logger
	mu        sync.Mutex
}

// NewCollection binds a collection to one JSON file. The normalize
// hook, when not nil, runs on every record right after decoding.
func NewCollection[T Record](path, name string, normalize func(*T), log *logger.Logger) *Collection[T] {
	return &Collection[T]{
		path:      path,
		name:      name,
		normalize: normalize,
		log:       log,
	}
}

// Load reads every record from the collection file. A missing,
// unreadable or malformed file yields an empty slice so browsing
// keeps working; the failure is logged, never returned.
func (c *Collection[T]) Load(ctx context.Context) []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

func (c *Collection[T]) load() []T {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			c.log.Debugw("Collection file missing, starting empty",
				"collection", c.name,
				"path", c.path,
			)
		} else {
			c.log.LogFileRead(c.path, 0, err)
		}
		return []T{}
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		c.log.LogFileRead(c.path, 0, err)
		return []T{}
	}
	if records == nil {
		records = []T{}
	}

	if c.normalize != nil {
		for i := range records {
			c.normalize(&records[i])
		}
	}

	c.log.LogFileRead(c.path, len(records), nil)
	return records
}

// Save overwrites the collection file with the given records, indented
// with two spaces the same way the storefront writes them.
func (c *Collection[T]) Save(ctx context.Context, records []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save(records)
}

func (c *Collection[T]) save(records []T) error {
	// A nil slice would encode as JSON null, not [].
	if records == nil {
		records = []T{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		c.log.LogFileWrite(c.path, len(records), err)
		return fmt.Errorf("encode %s: %w", c.name, err)
	}

	if err := os.WriteFile(c.path, data, 0644); err != nil {
		c.log.LogFileWrite(c.path, len(records), err)
		return fmt.Errorf("write %s: %w", c.name, err)
	}

	c.log.LogFileWrite(c.path, len(records), nil)
	return nil
}

// FindByID scans the collection in file order and returns the first
// record with the given id.
func (c *Collection[T]) FindByID(ctx context.Context, id string) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.find(c.load(), id)
}

func (c *Collection[T]) find(records []T, id string) (T, error) {
	for _, record := range records {
		if record.RecordID() == id {
			return record, nil
		}
	}
	var zero T
	return zero, entities.ErrRecordNotFound
}

// Mutate applies fn to the record with the given id and persists the
// whole collection. The returned record is re-read from disk after the
// write, so the caller sees exactly what the next load will see. When
// no record matches, nothing is written.
func (c *Collection[T]) Mutate(ctx context.Context, id string, fn func(*T)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	records := c.load()
	for i := range records {
		if records[i].RecordID() != id {
			continue
		}
		fn(&records[i])
		if err := c.save(records); err != nil {
			return zero, err
		}
		return c.find(c.load(), id)
	}
	return zero, entities.ErrRecordNotFound
}

// Remove deletes the record with the given id and persists the rest.
// When no record matches, nothing is written.
func (c *Collection[T]) Remove(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records := c.load()
	for i := range records {
		if records[i].RecordID() != id {
			continue
		}
		return c.save(append(records[:i], records[i+1:]...))
	}
	return entities.ErrRecordNotFound
}

// Count returns the number of records currently on disk.
func (c *Collection[T]) Count(ctx context.Context) int {
	return len(c.Load(ctx))
}

// Replace persists records as the new full content of the collection.
func (c *Collection[T]) Replace(ctx context.Context, records []T) error {
	return c.Save(ctx, records)
}

// Stat inspects the collection file without modifying it. Unlike Load
// it surfaces read and decode failures, for integrity reporting.
func (c *Collection[T]) Stat(ctx context.Context) ports.CollectionStat {
	c.mu.Lock()
	defer c.mu.Unlock()

	stat := ports.CollectionStat{Path: c.path}

	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return stat
		}
		stat.Exists = true
		stat.Err = fmt.Errorf("read %s: %w", c.name, err)
		return stat
	}
	stat.Exists = true

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		stat.Err = fmt.Errorf("decode %s: %w", c.name, err)
		return stat
	}
	stat.Records = len(records)
	return stat
}
