/*
Package pricing is a worked calculation set: gross profit and gross
margin, registered against a calc.Registry so callers exercise the
calculation engine rather than calling value arithmetic by hand.

Register wires pricing's calculations into a caller-supplied Registry; it
is a calc.Load loader, not an init()-time side effect - a program that
never imports pricing's calculations pays nothing for them.
*/
package pricing
