package grammar_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/uriref/grammar"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		tbl     grammar.Table
		want    grammar.Table
		wantErr error
	}{
		{
			"no placeholders",
			grammar.Table{"a": `x`, "b": `y`},
			grammar.Table{"a": `x`, "b": `y`},
			nil,
		},
		{
			"single reference",
			grammar.Table{"a": `x`, "b": `%(a)y`},
			grammar.Table{"a": `x`, "b": `xy`},
			nil,
		},
		{
			"chained references",
			grammar.Table{"a": `x`, "b": `%(a)y`, "c": `[%(b)]%(a)`},
			grammar.Table{"a": `x`, "b": `xy`, "c": `[xy]x`},
			nil,
		},
		{
			"diamond",
			grammar.Table{"a": `x`, "b": `%(a)`, "c": `%(a)`, "d": `%(b)%(c)`},
			grammar.Table{"a": `x`, "b": `x`, "c": `x`, "d": `xx`},
			nil,
		},
		{
			"undefined reference",
			grammar.Table{"a": `%(nope)`},
			nil,
			grammar.ErrUnresolvableFragment,
		},
		{
			"transitively undefined",
			grammar.Table{"a": `x`, "b": `%(c)`, "c": `%(nope)`},
			nil,
			grammar.ErrUnresolvableFragment,
		},
		{
			"self reference",
			grammar.Table{"a": `%(a)*`},
			nil,
			grammar.ErrUnresolvableFragment,
		},
		{
			"mutual cycle",
			grammar.Table{"a": `%(b)`, "b": `%(a)`, "c": `z`},
			nil,
			grammar.ErrUnresolvableFragment,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, gotErr := grammar.Resolve(c.tbl)
			if c.wantErr != nil {
				if diff := cmp.Diff(gotErr, c.wantErr, cmpopts.EquateErrors()); diff != "" {
					t.Fatalf("grammar.Resolve(%v) error = %v, want %v", c.tbl, gotErr, c.wantErr)
				}
				return
			}
			if gotErr != nil {
				t.Fatalf("grammar.Resolve(%v) error = %v, want nil", c.tbl, gotErr)
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("grammar.Resolve(%v) diff (-got +want):\n%v", c.tbl, diff)
			}
		})
	}
}

func TestResolveFragments(t *testing.T) {
	t.Parallel()

	for _, c := range []struct {
		name string
		tbl  grammar.Table
	}{
		{"plain", grammar.Fragments()},
		{"grouped", grammar.WithGroups(grammar.Fragments())},
	} {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			res, err := grammar.Resolve(c.tbl)
			if err != nil {
				t.Fatalf("grammar.Resolve() error = %v, want nil", err)
			}
			if got, want := len(res), len(c.tbl); got != want {
				t.Errorf("len(resolved) = %d, want %d", got, want)
			}
			for name, expr := range res {
				if strings.Contains(expr, "%(") {
					t.Errorf("fragment %q still holds a placeholder: %s", name, expr)
				}
			}
		})
	}
}

func TestResolveExtension(t *testing.T) {
	t.Parallel()

	tbl := grammar.Fragments().
		Set("file_ref", `file: %(net_path) (\# %(fragment))?`)
	res, err := grammar.Resolve(tbl)
	if err != nil {
		t.Fatalf("grammar.Resolve() error = %v, want nil", err)
	}
	if expr := res["file_ref"]; strings.Contains(expr, "%(") {
		t.Errorf("extension fragment not merged: %s", expr)
	}
}
