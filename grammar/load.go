package grammar

import (
	"io"

	"braces.dev/errtrace"
	"gopkg.in/yaml.v3"

	"github.com/ghettovoice/uriref/internal/errorutil"
)

// ReadTable decodes extra fragment templates from YAML, a flat mapping
// of fragment name to template text. The result is meant to be merged
// into [Fragments] with [Table.Set] before resolution.
func ReadTable(r io.Reader) (Table, error) {
	var tbl Table
	if err := yaml.NewDecoder(r).Decode(&tbl); err != nil {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError(err))
	}
	return tbl, nil
}
