package uriref

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uriref/internal/ioutil"
	"github.com/ghettovoice/uriref/internal/util"
)

// Ref is an immutable view over the components of one URI reference.
// It wraps the original string together with its named captures and is
// never mutated after construction; rendering produces a new string.
type Ref struct {
	raw           string
	groups        Groups
	spans         map[string]Span
	opaqueTargets []string
}

// ParseOption configures a [Ref] under construction.
type ParseOption func(*Ref)

// WithOpaqueTargets configures component names that fall back to the
// opaque_part capture when their own capture is absent or empty. It lets
// callers treat scheme-specific opaque references (mid:, mailto:, ...)
// as if they had the named component:
//
//	r, _ := uriref.Parse("mid:some-message@example.org", uriref.WithOpaqueTargets("path"))
//	r.Path() // "some-message@example.org"
func WithOpaqueTargets(names ...string) ParseOption {
	return func(r *Ref) {
		r.opaqueTargets = append(r.opaqueTargets, names...)
	}
}

// Parse matches src against the reference grammar and wraps the result
// into a [Ref]. It fails with [ErrNotURI] when src matches neither the
// absolute nor the relative reference matcher.
func Parse[T ~string | ~[]byte](src T, opts ...ParseOption) (*Ref, error) {
	if len(src) == 0 {
		return nil, errtrace.Wrap(ErrEmptyInput)
	}

	s := string(src)
	gs, spans, ok := matchRef(s)
	if !ok {
		return nil, errtrace.Wrap(newNotURIErr("%q", s))
	}

	r := &Ref{raw: s, groups: gs, spans: spans}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Raw returns the original input string, untouched by canonicalization.
func (r *Ref) Raw() string {
	if r == nil {
		return ""
	}
	return r.raw
}

// Get returns the value of the named component. Absence is a valid
// outcome, not an error: ok is false when the capture did not
// participate in the match and no opaque fallback applies.
//
// Besides the capture names (see [Groups]), the virtual name "path"
// resolves through [Ref.Path].
func (r *Ref) Get(name string) (string, bool) {
	if r == nil {
		return "", false
	}
	if v, ok := r.groups[name]; ok && v != "" {
		return v, true
	}
	if slices.Contains(r.opaqueTargets, name) {
		if v, ok := r.groups["opaque_part"]; ok && v != "" {
			return v, true
		}
	}
	if name == "path" {
		if p := r.Path(); p != "" {
			return p, true
		}
	}
	v, ok := r.groups[name]
	return v, ok
}

// Span returns the byte offsets of the named capture within [Ref.Raw].
func (r *Ref) Span(name string) (Span, bool) {
	if r == nil {
		return Span{}, false
	}
	sp, ok := r.spans[name]
	return sp, ok
}

func (r *Ref) get(name string) string {
	v, _ := r.Get(name)
	return v
}

// Scheme returns the URI scheme, empty for relative references.
func (r *Ref) Scheme() string { return r.get("scheme") }

// Authority returns the whole userinfo@host:port block.
func (r *Ref) Authority() string { return r.get("authority") }

// Userinfo returns the userinfo part of the authority.
func (r *Ref) Userinfo() string { return r.get("userinfo") }

// Host returns the host part of the authority.
func (r *Ref) Host() string { return r.get("host") }

// Port returns the port part of the authority as matched, unparsed.
func (r *Ref) Port() string { return r.get("port") }

// OpaquePart returns the scheme-specific part of an absolute reference
// with no hierarchical path.
func (r *Ref) OpaquePart() string { return r.get("opaque_part") }

// Query returns the query part, without the leading "?".
func (r *Ref) Query() string { return r.get("query") }

// Fragment returns the fragment part, without the leading "#".
func (r *Ref) Fragment() string { return r.get("fragment") }

// Path returns the first present and non-empty of the abs_path,
// rel_path and net_path captures, in that order. At most one of the
// three participates in any single match. Opaque fallback applies when
// "path" is configured as an opaque target.
func (r *Ref) Path() string {
	if r == nil {
		return ""
	}
	for _, name := range [...]string{"abs_path", "rel_path", "net_path"} {
		if v, ok := r.groups[name]; ok && v != "" {
			return v
		}
	}
	if slices.Contains(r.opaqueTargets, "path") {
		if v, ok := r.groups["opaque_part"]; ok && v != "" {
			return v
		}
	}
	return ""
}

// IsAbsolute reports whether the reference carries a scheme.
func (r *Ref) IsAbsolute() bool { return r.get("scheme") != "" }

// Clone returns a deep copy of the Ref.
func (r *Ref) Clone() *Ref {
	if r == nil {
		return nil
	}
	return &Ref{
		raw:           r.raw,
		groups:        maps.Clone(r.groups),
		spans:         maps.Clone(r.spans),
		opaqueTargets: slices.Clone(r.opaqueTargets),
	}
}

// RenderTo writes the canonical form of the reference to w: scheme,
// authority block, path (or opaque part, or "/" when both are empty),
// query and fragment, each with its delimiter, in fixed order. The
// canonical form is a normalization, not an identity over the original
// input: a missing path always renders as "/".
func (r *Ref) RenderTo(w io.Writer) (num int, err error) {
	if r == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	if s := r.Scheme(); s != "" {
		cw.Fprint(s, ":")
	}
	if h := r.Host(); h != "" {
		cw.WriteString("//")
		if ui := r.Userinfo(); ui != "" {
			cw.Fprint(ui, "@")
		}
		cw.WriteString(h)
		if p := r.Port(); p != "" {
			cw.Fprint(":", p)
		}
	}
	switch {
	case r.Path() != "":
		cw.WriteString(r.Path())
	case r.OpaquePart() != "":
		cw.WriteString(r.OpaquePart())
	default:
		cw.WriteString("/")
	}
	if q := r.Query(); q != "" {
		cw.Fprint("?", q)
	}
	if f := r.Fragment(); f != "" {
		cw.Fprint("#", f)
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the canonical string form of the reference.
func (r *Ref) Render() string {
	if r == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	r.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

// String returns the canonical string form of the reference.
func (r *Ref) String() string { return r.Render() }

// Format implements fmt.Formatter for custom formatting of the Ref.
func (r *Ref) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			r.RenderTo(f) //nolint:errcheck
			return
		}
		fmt.Fprint(f, r.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(r.String()))
		return
	default:
		type hideMethods Ref
		type Ref hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*Ref)(r))
		return
	}
}

// Equal compares this reference with another by canonical form.
func (r *Ref) Equal(val any) bool {
	var other *Ref
	switch v := val.(type) {
	case Ref:
		other = &v
	case *Ref:
		other = v
	default:
		return false
	}

	if r == other {
		return true
	} else if r == nil || other == nil {
		return false
	}
	return util.EqFold(r.Render(), other.Render())
}

// IsValid checks whether the reference carries any substance: a host, a
// path or an opaque part.
func (r *Ref) IsValid() bool {
	return r != nil &&
		(util.TrimSP(r.OpaquePart()) != "" ||
			util.TrimSP(r.Host()) != "" ||
			util.TrimSP(r.Path()) != "")
}

// MarshalText implements [encoding.TextMarshaler].
func (r *Ref) MarshalText() ([]byte, error) {
	return []byte(r.Raw()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (r *Ref) UnmarshalText(text []byte) error {
	r2, err := Parse(text)
	if err != nil {
		*r = Ref{}
		return errtrace.Wrap(err)
	}
	*r = *r2
	return nil
}
