package algo_test

import (
	"fmt"

	"algocat/pkg/algo"
)

func ExampleFind() {
	s := []int{1, 2, 3, 4, 5}
	fmt.Println(algo.Find(s, 3))
	fmt.Println(algo.Find(s, 42) == len(s))
	// Output:
	// 2
	// true
}

func ExampleRemove() {
	s := []int{1, 2, 3, 2, 5}
	s = s[:algo.Remove(s, 2)]
	fmt.Println(s)
	// Output: [1 3 5]
}

func ExampleSetUnion() {
	a := []int{1, 1, 2, 3, 4, 5, 6}
	b := []int{1, 1, 1, 4, 5, 6, 7, 8, 9}
	fmt.Println(algo.SetUnion(nil, a, b))
	// Output: [1 1 1 2 3 4 5 6 7 8 9]
}

func ExampleMakeHeap() {
	s := []int{1, 2, 3, 4, 5, 6, 5, 4}
	algo.MakeHeap(s)
	fmt.Println(s)
	algo.PopHeap(s)
	fmt.Println(s)
	// Output:
	// [6 5 5 4 2 3 1 4]
	// [5 4 5 4 2 3 1 6]
}
