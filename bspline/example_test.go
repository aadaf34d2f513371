package bspline_test

import (
	"fmt"

	"github.com/katalvlaran/splinemi/bspline"
)

// ExampleBin shows linear (order 2) binning: every sample is shared between
// at most two neighbouring bins and each row sums to 1.
func ExampleBin() {
	m, err := bspline.Bin([]float64{1, 2, 3, 4, 5}, 3, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(m)
	// Output:
	// [1, 0, 0]
	// [0.5, 0.5, 0]
	// [0, 1, 0]
	// [0, 0.5, 0.5]
	// [0, 0, 1]
}

// ExampleNewBinner reuses one validated configuration and reports the
// zero-range advisory.
func ExampleNewBinner() {
	b, err := bspline.NewBinner(4, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	_, rng, err := b.Bin([]float64{7, 7, 7})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("knots:", b.Knots())
	fmt.Println("widened:", rng.Widened)
	// Output:
	// knots: [0 1 2 3 4]
	// widened: true
}
