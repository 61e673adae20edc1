// Package macro implements a two pass MACRO/MEND preprocessor for
// assembly-like source text.
//
// The Collector scans the source once, moving every MACRO ... MEND block
// into a Table and leaving the remaining lines as the residual stream. The
// Expander then walks the residual stream and replaces each line whose first
// word names a macro with the macro body, formal parameters substituted by
// the actual parameters of the invocation, re-expanding the result until no
// invocation remains. The Processor runs both passes.
//
// By default malformed input is handled silently, the way the classic tool
// does it. Setting Strict reports duplicate names, unterminated blocks and
// parameter count mismatches as errors instead.
package macro
