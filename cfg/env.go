package cfg

// This file defines the evaluation environment exposed to expr-lang
// expressions run against a Set. Each reported predicate key becomes a
// variable: bare flags bind to true, single-valued keys to their string
// value, and repeated keys to their ordered value slice. Helper functions
// cover keys that are not valid identifiers or may be absent.

// Environment returns the evaluation environment derived from the Set.
// The returned map can be safely mutated by the caller.
func (s *Set) Environment() map[string]any {
	env := make(map[string]any, len(s.keys)+4)

	for _, key := range s.keys {
		values := s.raw[key]

		switch len(values) {
		case 0:
			env[key] = true
		case 1:
			env[key] = values[0]
		default:
			out := make([]string, len(values))
			copy(out, values)
			env[key] = out
		}
	}

	// Typed fields grouped under "target".
	family, _ := s.Family()
	env["target"] = map[string]any{
		"arch":          s.Arch,
		"os":            s.OS,
		"family":        family,
		"env":           s.Env,
		"vendor":        s.Vendor,
		"endian":        s.Endian.String(),
		"pointer_width": s.PointerWidth,
	}

	// Lookup functions for keys that may be absent entirely.
	env["has"] = s.Has
	env["value"] = func(key string) string {
		value, _ := s.First(key)

		return value
	}
	env["values"] = func(key string) []string {
		values, _ := s.Get(key)

		return values
	}

	return env
}
