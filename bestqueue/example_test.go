package bestqueue_test

import (
	"fmt"

	"github.com/aerocircuit/breitling/bestqueue"
)

func ExampleCache() {
	c := bestqueue.NewCache(2)
	c.Insert(10, 5.0)
	c.Insert(11, 9.0)
	c.Insert(12, 7.0) // capacity 2: evicts the worst (10, score 5.0)

	for {
		idx, ok := c.PopFront()
		if !ok {
			break
		}
		fmt.Println(idx)
	}
	// Output:
	// 11
	// 12
}
