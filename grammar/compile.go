package grammar

import (
	"maps"
	"regexp"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uriref/internal/errorutil"
	"github.com/ghettovoice/uriref/internal/util"
)

// Grammar is an immutable set of compiled top-level matchers built from
// one resolved fragment table. Matching against a Grammar is safe for
// concurrent use.
type Grammar struct {
	named bool
	exprs map[string]string

	scheme      *regexp.Regexp
	netScheme   *regexp.Regexp
	absoluteRef *regexp.Regexp
	relativeRef *regexp.Regexp
	absPath     *regexp.Regexp
	netPath     *regexp.Regexp
}

// Compile resolves tbl and compiles the matcher set without capture
// annotations. The result recognizes the same language as the grouped
// variant and is intended for pure validation.
func Compile(tbl Table) (*Grammar, error) {
	return errtrace.Wrap2(compile(tbl, false))
}

// CompileGrouped applies the capture-group overrides to tbl, resolves it
// and compiles a matcher set whose matches carry named submatches
// (scheme, authority, userinfo, host, port, net_path, abs_path,
// rel_path, opaque_part, query, fragment).
func CompileGrouped(tbl Table) (*Grammar, error) {
	return errtrace.Wrap2(compile(WithGroups(tbl), true))
}

func compile(tbl Table, named bool) (*Grammar, error) {
	res, err := Resolve(tbl)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	for _, name := range []string{"scheme", "fragment", "absoluteURI", "relativeURI", "abs_path", "net_path"} {
		if _, ok := res[name]; !ok {
			return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("missing fragment %q", name))
		}
	}

	fragTail := `(\#` + res["fragment"] + `)?`
	if named {
		fragTail = `(\#(?P<fragment>` + res["fragment"] + `))?`
	}

	g := &Grammar{
		named: named,
		exprs: map[string]string{
			"scheme_detector":     strip(`\A` + res["scheme"] + `:`),
			"net_scheme_detector": strip(`\A` + res["scheme"] + `:(//)?`),
			"absolute_reference":  strip(`\A` + res["absoluteURI"] + fragTail + `\z`),
			"relative_reference":  strip(`\A` + res["relativeURI"] + fragTail + `\z`),
			"abs_path_only":       strip(`\A` + res["abs_path"] + `\z`),
			"net_path_only":       strip(`\A` + res["net_path"] + `\z`),
		},
	}
	for name, dst := range map[string]**regexp.Regexp{
		"scheme_detector":     &g.scheme,
		"net_scheme_detector": &g.netScheme,
		"absolute_reference":  &g.absoluteRef,
		"relative_reference":  &g.relativeRef,
		"abs_path_only":       &g.absPath,
		"net_path_only":       &g.netPath,
	} {
		re, err := regexp.Compile(g.exprs[name])
		if err != nil {
			return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError(err))
		}
		*dst = re
	}
	return g, nil
}

// CompileFragment resolves tbl and compiles the single fragment name as
// a standalone start-to-end anchored matcher. It is the compilation half
// of the custom-scheme extension point: add a fragment referencing
// existing names with [Table.Set], then compile it here.
func CompileFragment(tbl Table, name string) (*regexp.Regexp, error) {
	res, err := Resolve(tbl)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	expr, ok := res[name]
	if !ok {
		return nil, errtrace.Wrap(newUnresolvableFragmentErr(name))
	}
	return errtrace.Wrap2(regexp.Compile(strip(`\A(` + expr + `)\z`)))
}

// Templates are authored with insignificant whitespace; Go regexps have
// no verbose mode, so it is stripped before compilation.
func strip(expr string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, expr)
}

// SchemeDetector matches `scheme ":"` anchored at start. It only decides
// absolute vs relative and extracts no structure beyond the scheme.
func (g *Grammar) SchemeDetector() *regexp.Regexp { return g.scheme }

// NetSchemeDetector matches `scheme ":" ["//"]?` anchored at start,
// probing whether a network-authority form follows the scheme.
func (g *Grammar) NetSchemeDetector() *regexp.Regexp { return g.netScheme }

// AbsoluteRef matches a whole absolute reference with optional fragment.
func (g *Grammar) AbsoluteRef() *regexp.Regexp { return g.absoluteRef }

// RelativeRef matches a whole relative reference with optional query and
// fragment.
func (g *Grammar) RelativeRef() *regexp.Regexp { return g.relativeRef }

// AbsPath matches a standalone absolute path.
func (g *Grammar) AbsPath() *regexp.Regexp { return g.absPath }

// NetPath matches a standalone network path ("//" authority abs_path).
func (g *Grammar) NetPath() *regexp.Regexp { return g.netPath }

// Named reports whether the grammar was compiled with capture groups.
func (g *Grammar) Named() bool { return g.named }

// Expressions returns the assembled pattern text of every top-level
// matcher, keyed by matcher name.
func (g *Grammar) Expressions() map[string]string { return maps.Clone(g.exprs) }

// The shared grammars are built at package init. A broken fragment
// table panics, as no matcher can be compiled safely from it.
var (
	plainGrammar   = util.Must2(Compile(Fragments()))
	groupedGrammar = util.Must2(CompileGrouped(Fragments()))
)

// Plain returns the shared validation grammar.
func Plain() *Grammar { return plainGrammar }

// Grouped returns the shared grammar with named captures.
func Grouped() *Grammar { return groupedGrammar }
