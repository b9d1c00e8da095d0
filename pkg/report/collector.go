package report

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Record is a stored attachment.
type Record struct {
	ID        string    `json:"id"`
	Scenario  string    `json:"scenario"`
	Name      string    `json:"name,omitempty"`
	MediaType string    `json:"media_type"`
	Data      []byte    `json:"data"`
	CreatedAt time.Time `json:"created_at"`
}

// Collector keeps every attachment in memory, grouped by scenario.
// It is safe for concurrent use by scenarios running in parallel.
type Collector struct {
	mu      sync.RWMutex
	records []Record
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{records: make([]Record, 0, 16)}
}

// Sink returns a Sink that records attachments under scenario.
func (c *Collector) Sink(scenario string) Sink {
	return SinkFunc(func(ctx context.Context, a Attachment) error {
		return c.add(ctx, scenario, a)
	})
}

func (c *Collector) add(
	ctx context.Context,
	scenario string,
	a Attachment,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if a.Body == nil {
		return fmt.Errorf("attachment %s: nil body", a.MediaType)
	}

	data, err := io.ReadAll(a.Body)
	if err != nil {
		return fmt.Errorf(
			"read %s attachment: %w", a.MediaType, err,
		)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = append(c.records, Record{
		ID:        uuid.NewString(),
		Scenario:  scenario,
		Name:      a.Name,
		MediaType: a.MediaType,
		Data:      data,
		CreatedAt: time.Now(),
	})
	return nil
}

// Records returns a copy of every record in attach order.
func (c *Collector) Records() []Record {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}

// ForScenario returns the records attached under scenario.
func (c *Collector) ForScenario(scenario string) []Record {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []Record
	for _, r := range c.records {
		if r.Scenario == scenario {
			out = append(out, r)
		}
	}
	return out
}

// Reset drops all records.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = c.records[:0]
}
