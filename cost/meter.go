// Package cost implements the statically-budgeted computation discipline the
// settlement core runs under. Every value-producing step charges a
// compile-time constant number of units into a Meter; sequencing steps sums
// their constants exactly, so the total of any public entry point is a literal
// that can be derived (and asserted in tests) without executing the
// branch-dependent logic. Hosts use the declared totals for admission control
// and, where evaluation is consensus-replicated, for fee determinism.
package cost

import "fmt"

// Meter accumulates charged units for one evaluation. The zero value is
// ready to use. Not safe for concurrent use; evaluation is single-threaded.
type Meter struct {
	used uint64
}

// Charge adds n units.
func (m *Meter) Charge(n uint64) {
	m.used += n
}

// Used returns the units charged so far.
func (m *Meter) Used() uint64 {
	return m.used
}

// PadTo charges the remainder up to total. It is the constant-cost wrap: a
// branch that performed less work than its declared budget pays the
// difference so every branch of an operation charges the identical total.
// An already exceeded total is a costing bug in the caller.
func (m *Meter) PadTo(total uint64) error {
	if m.used > total {
		return fmt.Errorf("cost overrun: used %d of declared %d", m.used, total)
	}
	m.used = total
	return nil
}
