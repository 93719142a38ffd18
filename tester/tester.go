// Package tester provides in-memory implementations of the bus interfaces in
// the top-level drivers package, so that device drivers can be tested against
// a simulated register file without hardware.
package tester

// Failer is used by the fakes to report impossible conditions, such as a
// transaction addressed to a device that is not on the bus. It is
// implemented by *testing.T.
type Failer interface {
	Fatalf(format string, args ...interface{})
}
