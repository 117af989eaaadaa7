// SPDX-License-Identifier: MIT

package baa_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/chancap/baa"
	"github.com/katalvlaran/chancap/channel"
)

// ExampleRate evaluates the binary symmetric channel with flip probability
// 0.1 under the uniform input, which achieves its capacity 1 − H₂(0.1).
func ExampleRate() {
	bsc := channel.BinarySymmetric{Flip: 0.1}
	words := []channel.Word{{Bits: 0, Len: 1}, {Bits: 1, Len: 1}}

	nats, err := baa.Rate[channel.Word](bsc, words, words, []float64{0.5, 0.5})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("capacity: %.6f nats (%.6f bits)\n", nats, baa.Bits(nats))
	// Output:
	// capacity: 0.368064 nats (0.531004 bits)
}

// ExampleStep iterates BAA on 2-bit words over the BSC. The received set is
// ordered as complement pairs and the transmitted set keeps one word per pair.
func ExampleStep() {
	bsc := channel.BinarySymmetric{Flip: 0.1}
	received := []channel.Word{
		{Bits: 0b00, Len: 2}, {Bits: 0b11, Len: 2},
		{Bits: 0b01, Len: 2}, {Bits: 0b10, Len: 2},
	}
	transmitted, err := baa.Symmetries(received)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	q := []float64{0.8, 0.2}
	for it := 0; it < 30; it++ {
		if q, err = baa.Step[channel.Word](bsc, transmitted, received, q); err != nil {
			fmt.Println("error:", err)
			return
		}
	}
	fmt.Printf("transmitted=%v q=[%.4f %.4f]\n", transmitted, q[0], q[1])
	// Output:
	// transmitted=[00 01] q=[0.5000 0.5000]
}

// ExampleExecutor runs the partitioned step and rate on the Z channel
// (outputs duplicated into symmetric twins), converging to its capacity log₂(1.25).
func ExampleExecutor() {
	tbl, err := channel.NewTable([][]float64{
		{0.5, 0.5, 0, 0},
		{0.25, 0.25, 0.25, 0.25},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	ex, err := baa.NewExecutor[int](tbl, baa.WithWorkers(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	ctx := context.Background()
	q := []float64{0.5, 0.5}
	for it := 0; it < 100; it++ {
		if q, err = ex.Step(ctx, tbl.Transmitted(), tbl.Received(), q); err != nil {
			fmt.Println("error:", err)
			return
		}
	}
	nats, err := ex.Rate(ctx, tbl.Transmitted(), tbl.Received(), q)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("q=[%.4f %.4f] rate=%.4f bits\n", q[0], q[1], baa.Bits(nats))
	// Output:
	// q=[0.6000 0.4000] rate=0.3219 bits
}
