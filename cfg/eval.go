package cfg

import (
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Compile compiles an expr-lang expression against the Set's evaluation
// environment. The compiled program can be run repeatedly with
// [Set.Run].
func (s *Set) Compile(source string) (*vm.Program, error) {
	program, err := expr.Compile(source,
		expr.Env(s.Environment()),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, ErrExprCompile.Wrap(err).
			With(slog.String("source", source))
	}

	return program, nil
}

// Run executes a program previously compiled with [Set.Compile].
func (s *Set) Run(program *vm.Program) (any, error) {
	result, err := vm.Run(program, s.Environment())
	if err != nil {
		return nil, ErrExprEvaluate.Wrap(err)
	}

	return result, nil
}

// Eval compiles and evaluates an expr-lang expression against the Set.
//
// Predicate keys are bound as variables (bare flags as booleans, valued
// keys as strings or string slices), the typed fields are grouped under
// "target", and the helpers has(key), value(key), and values(key) cover
// arbitrary lookup. Identifiers not reported by the toolchain evaluate
// as undefined (nil); use has() to test for possibly-absent flags.
//
//	set.Eval(`target_os == "linux" && has("unix")`)
func (s *Set) Eval(source string) (any, error) {
	program, err := s.Compile(source)
	if err != nil {
		return nil, err
	}

	return s.Run(program)
}

// EvalBool evaluates an expression and coerces the result to a boolean.
// Non-boolean results report truthiness: nil and empty strings or slices
// are false, everything else is true.
func (s *Set) EvalBool(source string) (bool, error) {
	result, err := s.Eval(source)
	if err != nil {
		return false, err
	}

	switch v := result.(type) {
	case nil:
		return false, nil
	case bool:
		return v, nil
	case string:
		return v != "", nil
	case []string:
		return len(v) > 0, nil
	case []any:
		return len(v) > 0, nil
	default:
		return true, nil
	}
}
