package generate_test

import (
	"context"
	"fmt"

	"github.com/matzehuels/funkdigen/pkg/generate"
)

func ExampleDigraphs() {
	seq, err := generate.Digraphs(context.Background(), 3, generate.Options{})
	if err != nil {
		panic(err)
	}
	for c := range seq {
		fmt.Println(c)
	}
	// Output:
	// [[[1]], [[1]], [[1]]]
	// [[[1]], [[1], [1]]]
	// [[[1]], [[2, 1]]]
	// [[[1], [1], [1]]]
	// [[[1], [2, 1]]]
	// [[[3, 2, 1]]]
	// [[[3, 1, 1]]]
}

func ExampleCount() {
	n, _ := generate.Count(context.Background(), 6, generate.Options{Connected: true})
	fmt.Println(n)
	// Output: 51
}
