package grammar

//go:generate errtrace -w .

import (
	"maps"
	"regexp"
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uriref/internal/errorutil"
)

var placeholderRx = regexp.MustCompile(`%\((\w+)\)`)

// Resolve merges a table of templates into a table of placeholder-free
// pattern strings.
//
// Names are processed from a work queue: a fragment whose placeholders
// all refer to already-resolved entries is substituted and moved to the
// result; otherwise it is pushed back and retried later. Substitution is
// confluent over a DAG, so queue discipline only affects the number of
// passes. A full rotation of the queue without progress means some
// fragment depends on an undefined name or a cycle; Resolve then fails
// with [ErrUnresolvableFragment] instead of spinning.
func Resolve(tbl Table) (Table, error) {
	res := make(Table, len(tbl))

	queue := slices.Sorted(maps.Keys(tbl))

	var stalled int
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]

		phs := placeholderRx.FindAllStringSubmatch(tbl[name], -1)
		ok := true
		for _, ph := range phs {
			if _, found := res[ph[1]]; !found {
				ok = false
				break
			}
		}
		if !ok {
			queue = append(queue, name)
			stalled++
			if stalled >= len(queue) {
				return nil, errtrace.Wrap(newUnresolvableFragmentErr(name))
			}
			continue
		}

		res[name] = placeholderRx.ReplaceAllStringFunc(tbl[name], func(m string) string {
			return res[m[2:len(m)-1]]
		})
		stalled = 0
	}
	return res, nil
}

type Error = errorutil.Error

// ErrUnresolvableFragment is returned when a fragment depends, directly
// or transitively, on a name outside the table or on a cycle.
const ErrUnresolvableFragment Error = "unresolvable fragment"

func newUnresolvableFragmentErr(name string) error {
	return errorutil.NewWrapperError(ErrUnresolvableFragment, name) //errtrace:skip
}
