package cmdline

import "os"

// EnvLookup resolves names against the process environment.
func EnvLookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

// MapLookup resolves names against a fixed map.
func MapLookup(vars map[string]string) Lookup {
	return func(name string) (string, bool) {
		value, ok := vars[name]
		return value, ok
	}
}

// ChainLookup tries each lookup in order, first hit wins.
func ChainLookup(lookups ...Lookup) Lookup {
	return func(name string) (string, bool) {
		for _, l := range lookups {
			if value, ok := l(name); ok {
				return value, true
			}
		}
		return "", false
	}
}
