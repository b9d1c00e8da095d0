package report

import (
	"fmt"
	"io"
	"sort"
)

// Summary aggregates collected attachments.
type Summary struct {
	Scenarios   int            `json:"scenarios"`
	Attachments int            `json:"attachments"`
	Bytes       int64          `json:"bytes"`
	ByMediaType map[string]int `json:"by_media_type"`
}

// Summary computes totals over every record.
func (c *Collector) Summary() Summary {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := Summary{ByMediaType: make(map[string]int)}
	seen := make(map[string]struct{})
	for _, r := range c.records {
		seen[r.Scenario] = struct{}{}
		s.Attachments++
		s.Bytes += int64(len(r.Data))
		s.ByMediaType[r.MediaType]++
	}
	s.Scenarios = len(seen)
	return s
}

// WriteText renders the summary as aligned plain text.
func (s Summary) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(
		w, "Scenarios: %d\nAttachments: %d\nBytes: %d\n",
		s.Scenarios, s.Attachments, s.Bytes,
	); err != nil {
		return err
	}

	types := make([]string, 0, len(s.ByMediaType))
	for mt := range s.ByMediaType {
		types = append(types, mt)
	}
	sort.Strings(types)
	for _, mt := range types {
		if _, err := fmt.Fprintf(
			w, "  %-12s %d\n", mt, s.ByMediaType[mt],
		); err != nil {
			return err
		}
	}
	return nil
}
