package force_test

import (
	"fmt"

	"github.com/katalvlaran/forcelayout/force"
)

// ExampleRestLength prints rest lengths for a link set whose largest |value|
// is 4.
func ExampleRestLength() {
	for _, v := range []float64{0, 2, 4, -2, -4} {
		fmt.Printf("%+.0f -> %.2f\n", v, force.RestLength(v, 4, 25, 0.4))
	}
	// Output:
	// +0 -> 25.00
	// +2 -> 17.50
	// +4 -> 10.00
	// -2 -> 35.71
	// -4 -> 62.50
}
