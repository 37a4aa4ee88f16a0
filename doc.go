// Package colorscale determines how data is mapped to colors: which
// colormap, which normalizer, which discrete level boundaries and which
// extend mode a color-mapped plot uses. It works from sparse hints and
// the sample data and never draws anything itself.
//
// Resolution stages
//
// The stages can be used on their own or through Resolve:
//   - ResolveLimits    vmin and vmax from the data, optionally trimmed to
//                      percentiles (robust), restricted to visible data
//                      (inbounds) and made negative, positive or symmetric
//   - GenerateLevels   "nice" level boundaries for a level count
//   - ResolveLevels    boundaries from a count, an explicit list or a list
//                      of bin centers, filtered and sanitized
//   - BuildDiscreteNorm  the discrete normalizer and the final colormap
//
// Resolve runs the stages in order. The diverging-ness of the result can
// depend on the resolved limits or levels; it is settled in a second
// pass, never by recursion.
//
// Warnings
//
// Conflicting or unused arguments never fail a call. They are resolved
// by precedence, logged with log/slog at warning level and reported in
// the Warnings field of the result.
//
// Keyword arguments
//
// Plotting commands usually collect loosely typed keyword arguments.
// ParseOptions turns such an Args bag into Options, translating
// shorthand like robust=true or extend=true, and records keys it does
// not know so Resolve can report them.
package colorscale
