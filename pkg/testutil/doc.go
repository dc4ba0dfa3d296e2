// Package testutil provides shared helpers for cubby's tests: an
// in-memory filesystem, a controllable clock and store fixtures.
package testutil
