// SPDX-License-Identifier: MIT

package channel

// Provider is the Transition Probability Provider contract.
//
// Prob returns P(received | transmitted) ∈ [0,1]. Implementations must be
// deterministic and free of side effects; the core calls Prob once per
// (transmitted, received) pair it needs and never caches the answer.
type Provider[C any] interface {
	Prob(transmitted, received C) float64
}

// Func adapts an ordinary function to the Provider interface.
//
// Example:
//
//	noisy := channel.Func[int](func(x, y int) float64 { return 0.5 })
type Func[C any] func(transmitted, received C) float64

// Prob calls f(transmitted, received).
func (f Func[C]) Prob(transmitted, received C) float64 {
	return f(transmitted, received)
}
