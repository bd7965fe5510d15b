package cfg

import (
	"log/slog"
	"slices"
	"strings"
)

// Well-known predicate keys reported by every supported toolchain.
const (
	keyArch         = "target_arch"
	keyOS           = "target_os"
	keyFamily       = "target_family"
	keyEnv          = "target_env"
	keyEndian       = "target_endian"
	keyPointerWidth = "target_pointer_width"
	keyVendor       = "target_vendor"
	keyFeature      = "target_feature"
	keyHasAtomic    = "target_has_atomic"
)

// Endian identifies the byte order of a compilation target.
type Endian int

const (
	EndianLittle Endian = iota // little
	EndianBig                  // big
)

// String returns the token reported by the toolchain for the byte order.
func (e Endian) String() string {
	if e == EndianBig {
		return "big"
	}

	return "little"
}

// parseEndian converts a target_endian token to an Endian.
// Any token other than "little" or "big" is a data error.
func parseEndian(s string) (Endian, error) {
	switch s {
	case "little":
		return EndianLittle, nil
	case "big":
		return EndianBig, nil
	default:
		return EndianLittle, ErrInvalidEndian.
			With(slog.String("value", s))
	}
}

// Set is the parsed result of one `rustc --print cfg` invocation.
//
// The typed fields are convenience views over the raw predicate map built
// from the first occurrence of each well-known key. Every parsed key,
// including the typed ones, remains retrievable through [Set.Get].
//
// A Set is immutable after construction and owned solely by the caller
// that requested it.
type Set struct {
	// Arch is the value of target_arch, e.g. "x86_64".
	Arch string
	// OS is the value of target_os, e.g. "linux".
	OS string
	// Env is the value of target_env, e.g. "gnu".
	// It may be empty if the toolchain reports it empty.
	Env string
	// Vendor is the value of target_vendor, e.g. "unknown".
	// It is empty when the toolchain omits the key entirely.
	Vendor string
	// Endian is the byte order parsed from target_endian.
	Endian Endian
	// PointerWidth is the pointer bit width parsed from
	// target_pointer_width, e.g. 32 or 64.
	PointerWidth uint

	family    string
	hasFamily bool

	raw  map[string][]string
	keys []string // first-seen key order
}

// Family returns the value of target_family and whether the key was
// reported at all. Some platforms report no family.
func (s *Set) Family() (string, bool) {
	return s.family, s.hasFamily
}

// Get returns the ordered value sequence recorded for key and whether the
// key was reported. A present bare flag yields an empty (but non-nil)
// sequence.
func (s *Set) Get(key string) ([]string, bool) {
	values, ok := s.raw[key]
	if !ok {
		return nil, false
	}

	out := make([]string, len(values))
	copy(out, values)

	return out, true
}

// First returns the first recorded value for key.
// It reports false if the key is absent or is a bare flag with no values.
func (s *Set) First(key string) (string, bool) {
	values, ok := s.raw[key]
	if !ok || len(values) == 0 {
		return "", false
	}

	return values[0], true
}

// Has reports whether key was reported, either as a bare flag or with one
// or more values.
func (s *Set) Has(key string) bool {
	_, ok := s.raw[key]

	return ok
}

// Keys returns every reported key in first-encounter order.
func (s *Set) Keys() []string {
	return slices.Clone(s.keys)
}

// Len returns the number of distinct reported keys.
func (s *Set) Len() int {
	return len(s.keys)
}

// Features returns the accumulated target_feature values in encounter
// order. The sequence is empty when the toolchain reported none.
func (s *Set) Features() []string {
	values, _ := s.Get(keyFeature)

	return values
}

// HasAtomic returns the accumulated target_has_atomic values in encounter
// order. The sequence is empty when the toolchain reported none.
func (s *Set) HasAtomic() []string {
	values, _ := s.Get(keyHasAtomic)

	return values
}

// Triple returns a best-effort "<arch>-<vendor>-<os>-<env>" description of
// the target from the typed fields, skipping empty components.
func (s *Set) Triple() string {
	part := make([]string, 0, 4)

	for _, p := range []string{s.Arch, s.Vendor, s.OS, s.Env} {
		if p != "" {
			part = append(part, p)
		}
	}

	return strings.Join(part, "-")
}
