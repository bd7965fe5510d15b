package cfg

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// ToMap converts the raw predicate map to a native Go map. Bare flags
// become true booleans, single-valued keys their string value, and
// repeated keys their ordered value slice.
func (s *Set) ToMap() map[string]any {
	result := make(map[string]any, len(s.keys))

	for _, key := range s.keys {
		values := s.raw[key]

		switch len(values) {
		case 0:
			result[key] = true
		case 1:
			result[key] = values[0]
		default:
			out := make([]string, len(values))
			copy(out, values)
			result[key] = out
		}
	}

	return result
}

// MarshalJSON implements json.Marshaler for Set.
func (s *Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.ToMap())
}

// Format writes the Set in the native `rustc --print cfg` line format to
// the writer: one predicate per line in encounter order, values quoted.
// The output round-trips through [Parse].
func (s *Set) Format(w io.Writer) error {
	for _, key := range s.keys {
		values := s.raw[key]

		if len(values) == 0 {
			if _, err := fmt.Fprintln(w, key); err != nil {
				return err
			}

			continue
		}

		for _, value := range values {
			if value == "" {
				// An empty marker appended to a valued key reverts to a
				// bare line on output.
				if _, err := fmt.Fprintln(w, key); err != nil {
					return err
				}

				continue
			}

			_, err := fmt.Fprintf(w, "%s=%s\n", key, strconv.Quote(value))
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// FormatJSON writes the Set as JSON to the writer.
func (s *Set) FormatJSON(_ context.Context, w io.Writer, indent int) error {
	var (
		jsonData []byte
		err      error
	)

	if indent > 0 {
		jsonData, err = json.MarshalIndent(s, "", strings.Repeat(" ", indent))
	} else {
		jsonData, err = json.Marshal(s)
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(jsonData))

	return err
}

// FormatYAML writes the Set as YAML to the writer.
func (s *Set) FormatYAML(ctx context.Context, w io.Writer, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	yamlData, err := yaml.MarshalContext(ctx, s.ToMap(), opts...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, string(yamlData))

	return err
}
