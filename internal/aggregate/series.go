package aggregate

// Series is the shape chart renderers consume.
type Series struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// CountSeries counts records per key, listing labels in the order given
// followed by any unexpected keys in first-seen order.
func CountSeries[T any](records []T, key func(T) string, labels ...string) Series {
	counts := make(map[string]int, len(labels))
	order := append([]string(nil), labels...)
	known := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		known[l] = struct{}{}
	}
	for _, r := range records {
		k := key(r)
		if _, ok := known[k]; !ok {
			known[k] = struct{}{}
			order = append(order, k)
		}
		counts[k]++
	}

	s := Series{Labels: order, Values: make([]float64, len(order))}
	for i, l := range order {
		s.Values[i] = float64(counts[l])
	}
	return s
}
