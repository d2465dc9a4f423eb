// SPDX-License-Identifier: MIT

package experiment_test

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/byteland/experiment"
)

func ExampleExperiment_MinUnionCount() {
	e, err := experiment.New(8)
	if err != nil {
		fmt.Println(err)
		return
	}
	if err = e.SetParentsString("0 1 2 0 0 3 3"); err != nil {
		fmt.Println(err)
		return
	}
	steps, err := e.MinUnionCount()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(steps)
	// Output: 4
}

func ExampleProcess() {
	in := strings.NewReader("3\n4\n0 1 2\n8\n0 1 2 0 0 3 3\n9\n0 1 1 1 1 0 2 2\n")
	if _, err := experiment.Process(context.Background(), in, os.Stdout); err != nil {
		fmt.Println(err)
	}
	// Output:
	// 2
	// 4
	// 5
}

func ExampleInspect() {
	rep := experiment.Inspect([][]int{{1}, {0}, {3}, {2}})
	fmt.Println(rep.Components, rep.IsTree())
	// Output: 2 false
}
