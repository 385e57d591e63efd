package aggregate

import "github.com/shopspring/decimal"

// Grouped holds per-key totals in first-encountered key order.
type Grouped struct {
	keys   []string
	totals map[string]decimal.Decimal
}

// NewGrouped returns a group pre-seeded with keys at zero, in the given order.
func NewGrouped(keys ...string) *Grouped {
	g := &Grouped{totals: make(map[string]decimal.Decimal, len(keys))}
	for _, k := range keys {
		g.Add(k, decimal.Zero)
	}
	return g
}

// GroupSum totals value(r) per key(r).
func GroupSum[T any](records []T, key func(T) string, value func(T) decimal.Decimal) *Grouped {
	g := NewGrouped()
	for _, r := range records {
		g.Add(key(r), value(r))
	}
	return g
}

// Add accumulates v under key, registering the key on first use.
func (g *Grouped) Add(key string, v decimal.Decimal) {
	current, ok := g.totals[key]
	if !ok {
		g.keys = append(g.keys, key)
	}
	g.totals[key] = current.Add(v)
}

// Get returns the total for key, zero when absent.
func (g *Grouped) Get(key string) decimal.Decimal {
	return g.totals[key]
}

// Keys returns the keys in insertion order.
func (g *Grouped) Keys() []string {
	out := make([]string, len(g.keys))
	copy(out, g.keys)
	return out
}

// Len returns the number of keys.
func (g *Grouped) Len() int {
	return len(g.keys)
}

// Top returns the key with the largest total. Ties keep the first key seen;
// an empty group yields NoTop.
func (g *Grouped) Top() string {
	top := NoTop
	var best decimal.Decimal
	for i, k := range g.keys {
		v := g.totals[k]
		if i == 0 || v.GreaterThan(best) {
			top, best = k, v
		}
	}
	return top
}

// Map copies the totals into a plain map.
func (g *Grouped) Map() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(g.totals))
	for k, v := range g.totals {
		out[k] = v
	}
	return out
}

// Clone returns an independent copy.
func (g *Grouped) Clone() *Grouped {
	c := NewGrouped()
	for _, k := range g.keys {
		c.Add(k, g.totals[k])
	}
	return c
}

// Series converts the group into chart input in key order.
func (g *Grouped) Series() Series {
	s := Series{Labels: make([]string, 0, len(g.keys)), Values: make([]float64, 0, len(g.keys))}
	for _, k := range g.keys {
		s.Labels = append(s.Labels, k)
		s.Values = append(s.Values, g.totals[k].InexactFloat64())
	}
	return s
}
