package capacity_test

import (
	"fmt"

	"github.com/matzehuels/capfig/pkg/capacity"
)

func ExampleCurves_Crossing() {
	tr := capacity.DefaultScaling().Curves().Crossing()
	fmt.Printf("N_c = 10^%.1f\n", tr.LogN())
	// Output:
	// N_c = 10^3.7
}

func ExampleReserve_CliffEdge() {
	fmt.Printf("%.1f%%\n", 100*capacity.DefaultReserve().CliffEdge())
	// Output:
	// 19.5%
}
