package rational_test

import (
	"fmt"

	"github.com/jiangshengdev/sweep-line/rational"
)

func ExampleNew() {
	r := rational.New(rational.NewBig(6), rational.NewBig(-4))
	fmt.Println(r)

	// Output:
	// -3/2
}

func ExampleRational_Cmp() {
	a := rational.New(rational.NewBig(1), rational.NewBig(3))
	b := rational.New(rational.NewBig(1_000_000_000), rational.NewBig(2_999_999_999))

	fmt.Println(a.Cmp(b))

	// Output:
	// -1
}

func ExampleRational_Add() {
	a := rational.New(rational.NewBig(1), rational.NewBig(3))
	b := rational.New(rational.NewBig(1), rational.NewBig(6))

	fmt.Println(a.Add(b))

	// Output:
	// 1/2
}
