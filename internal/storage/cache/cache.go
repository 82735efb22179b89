package cache

import (
	"sync"

	"github.com/akuhn/pt/internal/models"
	"github.com/akuhn/pt/internal/scheduler"
)

// Cache holds the history snapshot taken when a session starts. Attempts written
// during the session do not show up here until the next snapshot.
type Cache struct {
	mu     sync.Mutex
	groups map[models.Key]models.AttemptGroup
	table  scheduler.ProbabilityTable
}

func NewCache() *Cache {
	return &Cache{
		groups: make(map[models.Key]models.AttemptGroup),
		table:  scheduler.Assign(nil, scheduler.DefaultWeight),
	}
}

func (c *Cache) SetSnapshot(groups map[models.Key]models.AttemptGroup, table scheduler.ProbabilityTable) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if groups == nil {
		groups = make(map[models.Key]models.AttemptGroup)
	}
	c.groups = groups
	c.table = table
}

func (c *Cache) GetGroup(key models.Key) (models.AttemptGroup, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	g, exists := c.groups[key]
	return g, exists
}

// Groups returns a copy of the snapshot's groups.
func (c *Cache) Groups() []models.AttemptGroup {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.AttemptGroup, 0, len(c.groups))
	for _, g := range c.groups {
		out = append(out, g)
	}
	return out
}

func (c *Cache) Table() scheduler.ProbabilityTable {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.table
}
