package xmap

func Keys[M ~map[K]V, K comparable, V any](m M) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// KVs flattens a map into alternating key, value pairs, handy for slog
// attribute lists.
func KVs[M ~map[K]V, K comparable, V any](m M) []any {
	r := make([]any, 0, len(m)*2)
	for k, v := range m {
		r = append(r, k, v)
	}

	return r
}
