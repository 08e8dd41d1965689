package uriref

//go:generate mockgen -source=relation.go -destination=internal/testutil/splitmock/splitmock.go -package=splitmock

import (
	"net/url"
	"strings"

	"braces.dev/errtrace"
	"github.com/miekg/dns"

	"github.com/ghettovoice/uriref/internal/errorutil"
	"github.com/ghettovoice/uriref/internal/util"
)

// SplitURL holds the generic parts of a URL, split without grammar
// validation.
type SplitURL struct {
	Scheme    string
	Authority string
	Path      string
	Query     string
	Fragment  string
}

// Splitter splits a URL into its generic parts without grammar
// validation. It is the external collaborator behind the relation
// checks; the compiled matcher pipeline never uses it.
type Splitter interface {
	SplitURL(rawurl string) (SplitURL, error)
}

type stdSplitter struct{}

func (stdSplitter) SplitURL(rawurl string) (SplitURL, error) {
	u, err := url.Parse(rawurl)
	if err != nil {
		return SplitURL{}, errtrace.Wrap(errorutil.NewInvalidArgumentError(err))
	}
	p := u.EscapedPath()
	if p == "" {
		p = u.Opaque
	}
	return SplitURL{
		Scheme:    u.Scheme,
		Authority: u.Host,
		Path:      p,
		Query:     u.RawQuery,
		Fragment:  u.Fragment,
	}, nil
}

// Relations provides link relation checks over a generic URL splitter.
type Relations struct {
	split Splitter
}

// NewRelations creates relation checks backed by the given splitter.
// A nil splitter selects the default net/url backed one.
func NewRelations(s Splitter) *Relations {
	if s == nil {
		s = stdSplitter{}
	}
	return &Relations{split: s}
}

// Hostname returns the hostname of rawurl: its authority with any
// trailing ":" port suffix stripped. Unsplittable input yields "".
func (rl *Relations) Hostname(rawurl string) string {
	parts, err := rl.split.SplitURL(rawurl)
	if err != nil {
		return ""
	}
	host, _, _ := strings.Cut(parts.Authority, ":")
	return host
}

// SameRegistrableDomain reports whether two URLs are on the same
// registrable domain, possibly in different subdomains: their hostnames
// must agree on the last two dot-separated labels, compared
// case-insensitively.
//
// The two-label heuristic is naive and wrong for multi-part public
// suffixes: a.co.uk and b.co.uk compare as the same domain.
func (rl *Relations) SameRegistrableDomain(url1, url2 string) bool {
	l1 := dns.SplitDomainName(rl.Hostname(url1))
	l2 := dns.SplitDomainName(rl.Hostname(url2))
	if len(l1) < 2 || len(l2) < 2 {
		return false
	}
	return util.EqFold(l1[len(l1)-1], l2[len(l2)-1]) &&
		util.EqFold(l1[len(l1)-2], l2[len(l2)-2])
}

// IsFragmentLink reports whether rawurl references only a fragment
// relative to location.
//
// The fragment must be non-empty in every case. With an empty location
// the URL must additionally carry no query. With a location, the URL's
// scheme (when present) must match the location's case-insensitively,
// both must share a registrable domain, and the URL's path and query
// (when present) must equal the location's.
func (rl *Relations) IsFragmentLink(rawurl, location string) bool {
	u, err := rl.split.SplitURL(rawurl)
	if err != nil || u.Fragment == "" {
		return false
	}
	if location == "" {
		return u.Query == ""
	}

	loc, err := rl.split.SplitURL(location)
	if err != nil {
		return false
	}
	switch {
	case u.Scheme != "" && !util.EqFold(u.Scheme, loc.Scheme):
		return false
	case !rl.SameRegistrableDomain(rawurl, location):
		return false
	case u.Path != "" && u.Path != loc.Path:
		return false
	case u.Query != "" && u.Query != loc.Query:
		return false
	}
	return true
}

var defRelations = NewRelations(nil)

// Hostname returns the hostname of rawurl using the default splitter.
// See [Relations.Hostname].
func Hostname(rawurl string) string { return defRelations.Hostname(rawurl) }

// SameRegistrableDomain reports whether two URLs share a registrable
// domain using the default splitter. See
// [Relations.SameRegistrableDomain].
func SameRegistrableDomain(url1, url2 string) bool {
	return defRelations.SameRegistrableDomain(url1, url2)
}

// IsFragmentLink reports whether rawurl references only a fragment
// relative to location using the default splitter. See
// [Relations.IsFragmentLink].
func IsFragmentLink(rawurl, location string) bool {
	return defRelations.IsFragmentLink(rawurl, location)
}
