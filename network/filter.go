package network

import (
	"github.com/cockroachdb/errors"
	"github.com/google/cel-go/cel"
)

// LinkFilter is a compiled CEL expression selecting links.
//
// Available variables: id, a, b, direction (int), length (double),
// link_type (string) and modes (list of string). Examples:
//
//	link_type != "ferry"
//	length > 0.0 && "auto" in modes
type LinkFilter struct {
	expr string
	prg  cel.Program
}

// NewLinkFilter compiles expr. The expression must evaluate to a bool.
func NewLinkFilter(expr string) (*LinkFilter, error) {
	env, err := cel.NewEnv(
		cel.Variable("id", cel.IntType),
		cel.Variable("a", cel.IntType),
		cel.Variable("b", cel.IntType),
		cel.Variable("direction", cel.IntType),
		cel.Variable("length", cel.DoubleType),
		cel.Variable("link_type", cel.StringType),
		cel.Variable("modes", cel.ListType(cel.StringType)),
	)
	if err != nil {
		return nil, errors.Wrap(err, "network: cel environment")
	}
	ast, iss := env.Compile(expr)
	if iss.Err() != nil {
		return nil, errors.Wrapf(ErrBadFilter, "%q: %v", expr, iss.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, errors.Wrapf(ErrBadFilter, "%q yields %v, want bool", expr, ast.OutputType())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, errors.Wrapf(ErrBadFilter, "%q: %v", expr, err)
	}

	return &LinkFilter{expr: expr, prg: prg}, nil
}

// Match evaluates the filter against l.
func (f *LinkFilter) Match(l Link) (bool, error) {
	modes := l.Modes
	if modes == nil {
		modes = []string{}
	}
	out, _, err := f.prg.Eval(map[string]any{
		"id":        l.ID,
		"a":         l.A,
		"b":         l.B,
		"direction": int64(l.Direction),
		"length":    l.Length,
		"link_type": l.Type,
		"modes":     modes,
	})
	if err != nil {
		return false, errors.Wrapf(err, "network: filter %q on link %d", f.expr, l.ID)
	}
	ok, isBool := out.Value().(bool)
	if !isBool {
		return false, errors.Wrapf(ErrBadFilter, "%q returned %T", f.expr, out.Value())
	}

	return ok, nil
}

// String returns the source expression.
func (f *LinkFilter) String() string { return f.expr }
