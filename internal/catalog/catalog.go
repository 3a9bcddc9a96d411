package catalog

import (
	"maps"
	"slices"
	"strings"

	"github.com/samber/lo"

	"trafficapi/internal/domain"
)

// Catalog is the read-only table of recognized metric ids and their display names.
type Catalog struct {
	names map[string]string
}

func New(names map[string]string) *Catalog {
	c := &Catalog{names: make(map[string]string, len(names))}
	for id, name := range names {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		c.names[id] = strings.TrimSpace(name)
	}
	return c
}

func (c *Catalog) Name(metricID string) (string, bool) {
	name, ok := c.names[metricID]
	return name, ok
}

func (c *Catalog) Has(metricID string) bool {
	_, ok := c.names[metricID]
	return ok
}

func (c *Catalog) IDs() []string {
	return slices.Sorted(maps.Keys(c.names))
}

func (c *Catalog) List() []domain.MetricInfo {
	return lo.Map(c.IDs(), func(id string, _ int) domain.MetricInfo {
		return domain.MetricInfo{ID: id, Name: c.names[id]}
	})
}

func (c *Catalog) Len() int {
	return len(c.names)
}
