package matched_test

import (
	"fmt"

	"github.com/katalvlaran/pulse/matched"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleCorrelate
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Slide the symmetric template [2,3,2] along a small hill. The score
//	is highest where the template sits on the summit.
//
// Complexity: O(n·m) time, O(n-m+1) memory
func ExampleCorrelate() {
	score, err := matched.Correlate([]float64{1, 2, 3, 2, 1}, []float64{2, 3, 2}, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(score)
	// Output:
	// [14 17 14]
}
