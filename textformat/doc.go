/*
Package textformat implements value.Formatter using golang.org/x/text, the
reference rendering of Policy.Display spec.md §6 describes as a pluggable
collaborator the core never invokes itself.

DefaultFormatter dispatches on a Value's Unit: Money goes through
golang.org/x/text/currency for locale- and currency-style-aware symbols,
everything else through golang.org/x/text/message/number for grouping and
fractional-digit control. Neither sub-formatter touches a Value's amount
directly in binary floating point for storage - the decimal.Decimal is only
converted to float64 at the very last step, for x/text's formatting APIs,
which is the one place this module's "never convert through binary
floating point" rule (spec.md §9) does not apply, since no arithmetic
happens after the conversion.
*/
package textformat
