package learning

import (
	"context"
	"sort"
)

// QSource reads persisted Q-values. A missing state reports ok == false.
type QSource interface {
	GetQ(ctx context.Context, agentID uint32, key StateKey) (values QValues, ok bool, err error)
}

// QCache remembers, for one agent during one race, the value each state had
// when it was first referenced. Nothing in it is ever written back directly.
type QCache struct {
	agentID uint32
	source  QSource
	values  map[StateKey]QValues
	order   []StateKey
}

func NewQCache(agentID uint32, source QSource) *QCache {
	return &QCache{
		agentID: agentID,
		source:  source,
		values:  make(map[StateKey]QValues),
	}
}

// Get returns the race-start value for key, loading it from the source on
// first reference or seeding a default when the source has none.
func (c *QCache) Get(ctx context.Context, key StateKey, seed uint32) (QValues, error) {
	if q, ok := c.values[key]; ok {
		return q, nil
	}

	var q QValues
	ok := false
	if c.source != nil {
		var err error
		q, ok, err = c.source.GetQ(ctx, c.agentID, key)
		if err != nil {
			return QValues{}, err
		}
	}
	if !ok {
		q = SeedQValues(seed)
	}
	c.values[key] = q
	c.order = append(c.order, key)
	return q, nil
}

// Lookup returns a cached value without touching the source
func (c *QCache) Lookup(key StateKey) (QValues, bool) {
	q, ok := c.values[key]
	return q, ok
}

// Len returns the number of distinct states referenced
func (c *QCache) Len() int {
	return len(c.values)
}

// Keys returns cached states sorted by key bytes
func (c *QCache) Keys() []StateKey {
	keys := make([]StateKey, len(c.order))
	copy(keys, c.order)
	sort.Slice(keys, func(i, j int) bool { return keyLess(keys[i], keys[j]) })
	return keys
}

func keyLess(a, b StateKey) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
