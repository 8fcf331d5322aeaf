// Package oracle provides independent closed-form and lattice option
// pricers used to validate the Monte Carlo backends. Nothing here
// depends on the pricer package: an oracle that shared code with the
// method under test would be worthless as a check.
package oracle
