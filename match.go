package uriref

import (
	"github.com/ghettovoice/uriref/grammar"
)

// Groups maps capture names to the substrings they matched. A name is
// present iff its capture participated in the match; a participating
// capture may still hold an empty string (e.g. an empty query).
//
// Capture names: scheme, authority, userinfo, host, port, net_path,
// abs_path, rel_path, opaque_part, query, fragment. The net_path
// capture holds the abs_path-shaped tail after the authority, not the
// whole "//host/path" span.
type Groups map[string]string

// Span holds a capture's byte offsets within the matched input.
type Span struct {
	Start, End int
}

// Match matches src against the compiled reference grammar and returns
// its named captures.
//
// An input starting with `letter (letter|digit|"+"|"-"|".")* ":"` is
// matched as an absolute reference, anything else as a relative one.
// The dispatch is the grammar's own definition of absolute vs relative:
// a Windows-style drive letter path is routed to the absolute matcher
// even though its remainder is no URI at all. Matching is start-to-end
// anchored, so trailing garbage fails the whole match.
func Match[T ~string | ~[]byte](src T) (Groups, bool) {
	gs, _, ok := matchRef(string(src))
	return gs, ok
}

func matchRef(s string) (Groups, map[string]Span, bool) {
	g := grammar.Grouped()
	re := g.AbsoluteRef()
	if !g.SchemeDetector().MatchString(s) {
		re = g.RelativeRef()
	}

	idx := re.FindStringSubmatchIndex(s)
	if idx == nil {
		return nil, nil, false
	}

	names := re.SubexpNames()
	gs := make(Groups, len(names))
	spans := make(map[string]Span, len(names))
	for i, name := range names {
		if name == "" || idx[2*i] < 0 {
			continue
		}
		gs[name] = s[idx[2*i]:idx[2*i+1]]
		spans[name] = Span{Start: idx[2*i], End: idx[2*i+1]}
	}
	return gs, spans, true
}

// IsRef reports whether src is a well-formed URI reference. It uses the
// validation grammar, which matches the same language as the grouped one
// but compiles without captures.
func IsRef[T ~string | ~[]byte](src T) bool {
	s := string(src)
	g := grammar.Plain()
	if g.SchemeDetector().MatchString(s) {
		return g.AbsoluteRef().MatchString(s)
	}
	return g.RelativeRef().MatchString(s)
}

// IsAbsPath reports whether src is a well-formed absolute path in
// isolation.
func IsAbsPath[T ~string | ~[]byte](src T) bool {
	return grammar.Plain().AbsPath().MatchString(string(src))
}

// IsNetPath reports whether src is a well-formed network path
// ("//" authority abs_path) in isolation.
func IsNetPath[T ~string | ~[]byte](src T) bool {
	return grammar.Plain().NetPath().MatchString(string(src))
}
