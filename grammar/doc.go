// Package grammar assembles the RFC 2396 URI grammar from a table of
// named, composable pattern fragments.
//
// Each BNF term of the RFC is transcribed into a template that may embed
// other fragments via %(name) placeholders. [Resolve] merges a table
// into placeholder-free pattern strings, [Compile] and [CompileGrouped]
// turn a resolved grammar into the two matcher families: an unlabeled
// one for validation and a labeled one whose matches carry semantic
// capture names. Assembly runs once; the compiled grammars are immutable
// and shared.
package grammar
