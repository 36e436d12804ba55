package gridpath_test

import (
	"fmt"

	"github.com/katalvlaran/pathlab/gridpath"
)

func ExampleShortestPath() {
	res, err := gridpath.ShortestPath([][]float64{
		{1, 3},
		{2, 1},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Cost, res.Path)
	// Output:
	// 4 [{0 0} {1 0} {1 1}]
}
