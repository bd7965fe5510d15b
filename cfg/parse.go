package cfg

import (
	"log/slog"
	"strconv"
	"strings"
)

// Parse consumes the text captured from one `rustc --print cfg` invocation
// and builds a [Set] from it.
//
// Each non-empty line is classified as either a bare predicate
// ("debug_assertions") or a key/value pair (`target_os="linux"`). Lines
// split on the first '=' only, so values containing '=' are preserved
// verbatim. A value enclosed in double quotes has exactly one layer of
// quotes stripped. Repeated keys accumulate their values in encounter
// order; only the first occurrence feeds the typed fields.
//
// Construction is all-or-nothing: a missing required field or a field that
// fails type coercion returns a nil Set and exactly one error describing
// the first detected problem.
func Parse(text string) (*Set, error) {
	raw := make(map[string][]string)

	var keys []string

	record := func(key string, values []string) {
		if _, ok := raw[key]; !ok {
			keys = append(keys, key)
		}

		raw[key] = values
	}

	for line := range strings.Lines(text) {
		// Per-line trim also normalizes Windows-style line endings.
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		eq := strings.IndexByte(line, '=')
		if eq < 0 {
			// Bare predicate: flag-present semantics. A bare occurrence
			// of a key that already carries values appends an empty
			// marker to its sequence.
			values, ok := raw[line]

			switch {
			case !ok:
				record(line, []string{})
			case len(values) > 0:
				record(line, append(values, ""))
			}

			continue
		}

		key := strings.TrimSpace(line[:eq])
		value := unquote(line[eq+1:])

		record(key, append(raw[key], value))
	}

	set, err := build(raw)
	if err != nil {
		return nil, err
	}

	set.raw = raw
	set.keys = keys

	return set, nil
}

// unquote strips exactly one layer of surrounding double quotes.
// Unquoted values are returned unchanged.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}

	return s
}

// build populates the typed fields of a Set from the raw predicate map.
// The first recorded value of each well-known key is authoritative.
func build(raw map[string][]string) (*Set, error) {
	first := func(key string) (string, bool) {
		values, ok := raw[key]
		if !ok || len(values) == 0 {
			return "", false
		}

		return values[0], true
	}

	require := func(key string) (string, error) {
		value, ok := first(key)
		if !ok {
			return "", ErrMissingField.
				With(slog.String("key", key))
		}

		return value, nil
	}

	var (
		set Set
		err error
	)

	if set.Arch, err = require(keyArch); err != nil {
		return nil, err
	}

	if set.OS, err = require(keyOS); err != nil {
		return nil, err
	}

	// target_family is optional: some platforms report none.
	set.family, set.hasFamily = first(keyFamily)

	// target_env and target_vendor default to empty when absent.
	// Older toolchains omit target_vendor entirely.
	set.Env, _ = first(keyEnv)
	set.Vendor, _ = first(keyVendor)

	endian, err := require(keyEndian)
	if err != nil {
		return nil, err
	}

	if set.Endian, err = parseEndian(endian); err != nil {
		return nil, err
	}

	width, err := require(keyPointerWidth)
	if err != nil {
		return nil, err
	}

	bits, err := strconv.ParseUint(width, 10, strconv.IntSize)
	if err != nil {
		return nil, ErrInvalidPointerWidth.
			With(slog.String("value", width))
	}

	set.PointerWidth = uint(bits)

	return &set, nil
}
