package uriref_test

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/ghettovoice/uriref"
	"github.com/ghettovoice/uriref/internal/testutil/splitmock"
)

func TestHostname(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  string
	}{
		{"http://example.org/a", "example.org"},
		{"http://example.org:8080/a", "example.org"},
		{"//usr@sub.example.org:99/a", "sub.example.org"},
		{"service?query=foo", ""},
		{"mailto:root@example.org", ""},
		{"", ""},
	}

	for _, c := range cases {
		if got := uriref.Hostname(c.input); got != c.want {
			t.Errorf("uriref.Hostname(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestSameRegistrableDomain(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		url1, url2 string
		want       bool
	}{
		{"same host", "http://example.org/a", "http://example.org/b", true},
		{"sibling subdomains", "http://a.example.com/x", "http://b.example.com/y", true},
		{"sub vs apex", "http://www.example.org/", "http://example.org/", true},
		{"case-insensitive", "http://EXAMPLE.ORG/a", "http://example.org/b", true},
		{"different domain", "http://example.com/a", "http://example.org/a", false},
		{"bare label", "http://localhost/a", "http://localhost/b", false},
		{"no hostname", "service?query=foo", "http://example.org/", false},
		// known two-label limitation: distinct co.uk sites collide
		{"public suffix collision", "http://a.co.uk/", "http://b.co.uk/", true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := uriref.SameRegistrableDomain(c.url1, c.url2); got != c.want {
				t.Errorf("uriref.SameRegistrableDomain(%q, %q) = %v, want %v", c.url1, c.url2, got, c.want)
			}
		})
	}
}

func TestIsFragmentLink(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name          string
		url, location string
		want          bool
	}{
		{"bare fragment no location", "#top", "", true},
		{"no fragment", "http://example.org/a", "", false},
		{"empty fragment", "#", "", false},
		{"query disqualifies without location", "?q=1#top", "", false},
		{"same document", "http://example.org/a#top", "http://example.org/a", true},
		{"different path", "http://example.org/a#top", "http://example.org/b", false},
		{"scheme mismatch", "https://example.org/a#top", "http://example.org/a", false},
		{"query mismatch", "http://example.org/a?q=1#top", "http://example.org/a?q=2", false},
		{"matching query", "http://example.org/a?q=1#top", "http://example.org/a?q=1", true},
		// a schemeless url has no hostname to share with the location
		{"bare fragment with location", "#top", "http://example.org/a", false},
		{"sibling subdomain", "//a.example.org/p#top", "http://b.example.org/p", true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := uriref.IsFragmentLink(c.url, c.location); got != c.want {
				t.Errorf("uriref.IsFragmentLink(%q, %q) = %v, want %v", c.url, c.location, got, c.want)
			}
		})
	}
}

func TestRelationsCustomSplitter(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	split := splitmock.NewMockSplitter(ctrl)
	rl := uriref.NewRelations(split)

	split.EXPECT().
		SplitURL("custom:token").
		Return(uriref.SplitURL{Authority: "h.example.net:99"}, nil)
	if got, want := rl.Hostname("custom:token"), "h.example.net"; got != want {
		t.Errorf("Hostname() = %q, want %q", got, want)
	}

	split.EXPECT().
		SplitURL("custom:bad").
		Return(uriref.SplitURL{}, uriref.Error("split failed"))
	if got := rl.Hostname("custom:bad"); got != "" {
		t.Errorf("Hostname() = %q, want empty on splitter error", got)
	}
}

func TestRelationsSplitterErrorPaths(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	split := splitmock.NewMockSplitter(ctrl)
	rl := uriref.NewRelations(split)

	split.EXPECT().
		SplitURL("u1").
		Return(uriref.SplitURL{}, uriref.Error("split failed"))
	if rl.IsFragmentLink("u1", "u2") {
		t.Error("IsFragmentLink() = true, want false on splitter error")
	}
}
