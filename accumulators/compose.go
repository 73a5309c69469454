package accumulators

import (
	"fmt"

	"github.com/go-frame/frame"
)

// Compose returns a factory for Composite Accumulators, which feed every row
// to each of the given Accumulators during a single pass
func Compose(factories ...frame.AccumulatorFactory) frame.AccumulatorFactory {
	return func() frame.Accumulator {
		accs := make([]frame.Accumulator, len(factories))
		for i, f := range factories {
			accs[i] = f()
		}
		return &Composite{accs: accs}
	}
}

// Composite runs multiple Accumulators over the same pass
type Composite struct {
	accs []frame.Accumulator
}

// Get returns the i-th composed Accumulator
func (a *Composite) Get(i int) frame.Accumulator {
	return a.accs[i]
}

// Accumulate adds a row to every composed Accumulator
func (a *Composite) Accumulate(row frame.Row) error {
	for _, acc := range a.accs {
		if err := acc.Accumulate(row); err != nil {
			return err
		}
	}
	return nil
}

// Merge merges another Accumulator into this one
func (a *Composite) Merge(o frame.Accumulator) error {
	ca, ok := o.(*Composite)
	if !ok || len(ca.accs) != len(a.accs) {
		return fmt.Errorf("Incoming accumulator is not a compatible Composite Accumulator")
	}
	for i, acc := range a.accs {
		if err := acc.Merge(ca.accs[i]); err != nil {
			return err
		}
	}
	return nil
}
