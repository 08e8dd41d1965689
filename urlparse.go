package uriref

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/uriref/internal/util"
)

// URL is the conventional six-part URL decomposition
// <scheme>://<netloc>/<path>;<params>?<query>#<fragment>, provided for
// compatibility with urlsplit-style consumers.
type URL struct {
	Scheme   string
	Netloc   string
	Path     string
	Params   string
	Query    string
	Fragment string
}

// URLParse parses src into its six conventional components.
//
// Netloc is synthesized from the host capture (plus userinfo and port
// when present) and stays empty when no host was captured. Params is
// always empty: the grammar keeps per-segment parameters inside the
// path. Path follows the same abs_path, rel_path, net_path priority as
// [Ref.Path], so relative references report their path here too.
func URLParse[T ~string | ~[]byte](src T) (URL, error) {
	r, err := Parse(src)
	if err != nil {
		return URL{}, errtrace.Wrap(err)
	}
	return r.URL(), nil
}

// URL returns the six-part decomposition of the reference.
func (r *Ref) URL() URL {
	if r == nil {
		return URL{}
	}

	u := URL{
		Scheme:   r.Scheme(),
		Path:     r.Path(),
		Query:    r.Query(),
		Fragment: r.Fragment(),
	}
	if host := r.Host(); host != "" {
		sb := util.GetStringBuilder()
		defer util.FreeStringBuilder(sb)
		if ui := r.Userinfo(); ui != "" {
			sb.WriteString(ui)
			sb.WriteByte('@')
		}
		sb.WriteString(host)
		if p := r.Port(); p != "" {
			sb.WriteByte(':')
			sb.WriteString(p)
		}
		u.Netloc = sb.String()
	}
	return u
}

// IsURI reports whether src parses as a reference with either a scheme
// or a path, i.e. carries more than an empty relative notation.
func IsURI[T ~string | ~[]byte](src T) bool {
	r, err := Parse(src)
	if err != nil {
		return false
	}
	return r.Scheme() != "" || r.Path() != ""
}
