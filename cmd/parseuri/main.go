// Command parseuri inspects URI references from its arguments or stdin
// and prints a table of named parts, each aligned to its offset in the
// input.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ghettovoice/uriref"
	"github.com/ghettovoice/uriref/grammar"
	"github.com/ghettovoice/uriref/internal/log"
)

// Print order of the known captures.
var partNames = []string{
	"scheme", "authority", "userinfo", "host", "port",
	"net_path", "abs_path", "rel_path", "opaque_part", "query", "fragment",
}

type options struct {
	grammarFile string
	fragment    string
	opaque      []string
	exprs       bool
	logStyle    string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "parseuri [uri ...]",
		Short: "parse URI references and print their named parts",
		Long: "parseuri matches each URI reference against the RFC 2396 grammar\n" +
			"and prints its named parts aligned to their offsets in the input.\n" +
			"References are read from the arguments, or from stdin when none are given.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.grammarFile, "grammar", "",
		"YAML file with extra grammar fragments to merge into the table")
	cmd.Flags().StringVar(&opts.fragment, "fragment", "",
		"match inputs against this fragment instead of the URI reference matchers")
	cmd.Flags().StringSliceVar(&opts.opaque, "opaque", nil,
		"part names that fall back to opaque_part when unset")
	cmd.Flags().BoolVar(&opts.exprs, "expressions", false,
		"dump the merged top-level expressions and exit")
	cmd.Flags().StringVar(&opts.logStyle, "log", "none",
		"debug logging style: none, console or dev")
	return cmd
}

func run(cmd *cobra.Command, args []string, opts options) error {
	logger := log.Noop
	switch opts.logStyle {
	case "console":
		logger = log.Def
	case "dev":
		logger = log.Dev
	}

	tbl := grammar.Fragments()
	if opts.grammarFile != "" {
		f, err := os.Open(opts.grammarFile)
		if err != nil {
			return err
		}
		defer f.Close()
		extra, err := grammar.ReadTable(f)
		if err != nil {
			return err
		}
		for name, tmpl := range extra {
			tbl.Set(name, tmpl)
			logger.Debug("grammar fragment added", "name", name, "template", tmpl)
		}
	}

	if opts.exprs {
		return dumpExpressions(cmd.OutOrStdout(), tbl)
	}

	var matchRe *regexp.Regexp
	if opts.fragment != "" {
		re, err := grammar.CompileFragment(grammar.WithGroups(tbl), opts.fragment)
		if err != nil {
			return err
		}
		logger.Debug("fragment compiled", "name", opts.fragment, "regexp", re)
		matchRe = re
	}

	out := cmd.OutOrStdout()
	for uri, err := range inputs(cmd, args) {
		if err != nil {
			return err
		}
		if matchRe != nil {
			printReMatch(out, matchRe, uri)
			continue
		}
		printRef(out, logger, uri, opts.opaque)
	}
	return nil
}

func inputs(cmd *cobra.Command, args []string) func(yield func(string, error) bool) {
	return func(yield func(string, error) bool) {
		if len(args) > 0 {
			for _, arg := range args {
				if !yield(strings.TrimSpace(arg), nil) {
					return
				}
			}
			return
		}
		sc := bufio.NewScanner(cmd.InOrStdin())
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" {
				continue
			}
			if !yield(line, nil) {
				return
			}
		}
		if err := sc.Err(); err != nil {
			yield("", err)
		}
	}
}

func printRef(w io.Writer, logger *slog.Logger, uri string, opaque []string) {
	ref, err := uriref.Parse(uri, uriref.WithOpaqueTargets(opaque...))
	if err != nil {
		fmt.Fprintf(w, "%s: %v\n", uri, err)
		return
	}
	logger.Debug("reference parsed", "raw", ref.Raw(), "canonical", log.FmtValue(ref, false))

	fmt.Fprintf(w, "%s<%s>\n", strings.Repeat("_", 13), uri)
	for _, name := range partNames {
		v, ok := ref.Get(name)
		if !ok || v == "" {
			continue
		}
		sp, _ := ref.Span(name)
		fmt.Fprintf(w, "%-12s: %s%s\n", name, strings.Repeat(" ", sp.Start), v)
	}
	fmt.Fprintln(w)
}

func printReMatch(w io.Writer, re *regexp.Regexp, uri string) {
	idx := re.FindStringSubmatchIndex(uri)
	if idx == nil {
		fmt.Fprintf(w, "%s: no match\n", uri)
		return
	}
	fmt.Fprintf(w, "%s<%s>\n", strings.Repeat("_", 13), uri)
	for i, name := range re.SubexpNames() {
		if name == "" || idx[2*i] < 0 {
			continue
		}
		fmt.Fprintf(w, "%-12s: %s%s\n",
			name, strings.Repeat(" ", idx[2*i]), uri[idx[2*i]:idx[2*i+1]])
	}
	fmt.Fprintln(w)
}

func dumpExpressions(w io.Writer, tbl grammar.Table) error {
	g, err := grammar.CompileGrouped(tbl)
	if err != nil {
		return err
	}
	exprs := g.Expressions()
	for _, name := range slices.Sorted(maps.Keys(exprs)) {
		fmt.Fprintf(w, "**%s**::\n\t%s\n\n", name, exprs[name])
	}
	return nil
}
