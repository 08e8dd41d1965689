package grammar

import "maps"

// Table maps fragment names to pattern templates. A template may embed
// placeholders of the form %(name) that refer to other fragments in the
// same table. Templates are authored with separating whitespace for
// readability; all whitespace is stripped before compilation.
type Table map[string]string

// Clone returns a shallow copy of the table.
func (t Table) Clone() Table {
	t2 := make(Table, len(t))
	maps.Copy(t2, t)
	return t2
}

// Set adds or replaces a fragment and returns the table for chaining.
func (t Table) Set(name, tmpl string) Table {
	t[name] = tmpl
	return t
}

// Fragments returns a fresh copy of the RFC 2396 fragment table.
//
// Character-class fragments (digit, alpha, mark, ...) hold bare class
// contents meant to be embedded inside [...]; structural fragments hold
// full sub-patterns. The substitution graph formed by the placeholders
// is a DAG: repetition within a term (e.g. path segments) is expressed
// with regex operators inside a single template, never by self-reference.
func Fragments() Table {
	return Table{
		"digit":    `0-9`,
		"lowalpha": `a-z`,
		"upalpha":  `A-Z`,
		"alpha":    `%(lowalpha)%(upalpha)`,
		"alphanum": `%(alpha)%(digit)`,
		"escaped":  `%a-zA-Z0-9`,
		"mark":     `- _ \. ! ~ * ' ( )`,

		"unreserved": `%(mark)%(alphanum)`,
		"reserved":   `; / ? : @ & = + $ ,`,
		"uric":       `[%(unreserved)%(reserved)%(escaped)]`,

		"query":    `%(uric)*`,
		"fragment": `%(uric)*`,

		"pchar":         `[%(unreserved)%(escaped):@&=+$,]`,
		"param":         `%(pchar)*`,
		"segment":       `(%(pchar)* (; %(param))*)`,
		"path_segments": `(%(segment)) (/ %(segment))*`,
		"abs_path":      `/ %(path_segments)`,

		"port":        `[0-9]*`,
		"IPv4address": `([0-9]+ \. [0-9]+ \. [0-9]+ \. [0-9]+)`,
		"toplabel":    `([%(alpha)] | ([%(alpha)] [-%(alphanum)]* [%(alphanum)]))`,
		"domainlabel": `([%(alphanum)] | ([%(alphanum)] [-%(alphanum)]* [%(alphanum)]))`,
		// RFC 2396 allows a trailing "." for local domains.
		"hostname": `(%(domainlabel) \.)* %(toplabel) (\.)?`,
		"host":     `(%(hostname) | %(IPv4address))`,
		"hostport": `%(host) ( : %(port) )?`,

		"userinfo":  `[%(unreserved) %(escaped) $ , ; : & = +]*`,
		"reg_name":  `[%(unreserved) %(escaped) $ , ; : & = +]*`,
		"server":    `(%(userinfo) @)? %(hostport)`,
		"authority": `((%(server)) | %(reg_name))`,

		"scheme": `[%(alpha)] [- + \. %(alpha) %(digit)]*`,

		"rel_segment": `[%(unreserved) %(escaped) ; @ & = + $ ,]+`,
		"rel_path":    `%(rel_segment) (%(abs_path))?`,
		"net_path":    `// %(authority) %(abs_path)`,

		"uric_no_slash": `[%(unreserved) %(escaped) ; ? : @ & = + $ ,]`,
		"opaque_part":   `%(uric_no_slash) %(uric)*`,

		"hier_part":     `((%(net_path)) | (%(abs_path))) (\? %(query))?`,
		"relativeURI":   `((%(net_path)) | (%(abs_path)) | (%(rel_path)) | (%(opaque_part))) (\? %(query))?`,
		"absoluteURI":   `%(scheme) : ((%(hier_part)) | (%(opaque_part)))`,
		"URI_reference": `((%(absoluteURI) | %(relativeURI)) (\# %(fragment))?)`,
	}
}

// groupOverrides annotates selected fragments with named captures. Both
// variants match the same language; they differ only in annotations.
// Capture names must be unique within a compiled pattern, hence the one
// naming deviation from the RFC: the net_path capture is the abs_path
// shaped tail after the authority, not the whole "//host/path" span.
var groupOverrides = Table{
	"userinfo":    `(?P<userinfo> [%(unreserved) %(escaped) ; : & = + $ ,]*)`,
	"port":        `(?P<port> [0-9]*)`,
	"host":        `(?P<host> %(hostname) | %(IPv4address))`,
	"query":       `(?P<query> %(uric)*)`,
	"authority":   `(?P<authority> (%(server)) | %(reg_name))`,
	"net_path":    `// %(authority) (?P<net_path> %(abs_path))`,
	"hier_part":   `((%(net_path)) | (?P<abs_path> %(abs_path))) (\? %(query))?`,
	"opaque_part": `(?P<opaque_part> %(uric_no_slash) %(uric)*)`,
	"scheme":      `(?P<scheme> [%(alpha)] [- + \. %(alpha) %(digit)]*)`,
	"relativeURI": `((%(net_path)) | (?P<abs_path> %(abs_path)) | (?P<rel_path> %(rel_path)) | (%(opaque_part))) (\? %(query))?`,
	"absoluteURI": `%(scheme) : ((%(hier_part)) | %(opaque_part))`,
}

// WithGroups returns a copy of tbl with the capture-group overrides
// applied. The un-annotated fragments are shared with the plain table.
func WithGroups(tbl Table) Table {
	t2 := tbl.Clone()
	maps.Copy(t2, groupOverrides)
	return t2
}
