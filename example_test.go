package tokread_test

import (
	"fmt"
	"strings"

	"github.com/arloliu/tokread"
)

func Example() {
	r := tokread.New("2\n4 3 2\n1 2\n3 2 1\n7 8")

	tests := tokread.Read[int](r)
	for range tests {
		var ncm [3]int
		tokread.ReadArray(r, ncm[:])
		levels := tokread.ReadSlice[int](r, ncm[2])
		fmt.Println(ncm[0], ncm[1], ncm[2], levels)
	}

	// Output:
	// 4 3 2 [1 2]
	// 3 2 1 [7]
}

func ExampleReadTuple3() {
	r := tokread.New("1 hi false")

	t, ok := tokread.ReadTuple3[int32, string, bool](r)
	fmt.Println(t.V1, t.V2, t.V3, ok)

	// Output:
	// 1 hi false true
}

func ExampleReadOption() {
	r := tokread.New("12 twelve 13")

	for !r.Done() {
		n, ok := tokread.ReadOption[int](r)
		fmt.Println(n, ok)
	}

	// Output:
	// 12 true
	// 0 false
	// 13 true
}

func ExampleRecover() {
	solve := func(input string) (sum int, err error) {
		defer tokread.Recover(&err)

		r := tokread.New(input)
		for _, v := range tokread.ReadSlice[int](r, 3) {
			sum += v
		}

		return sum, nil
	}

	fmt.Println(solve("1 2 3"))
	_, err := solve("1 2")
	fmt.Println(err != nil)

	// Output:
	// 6 <nil>
	// true
}

func ExampleFromReader() {
	r, err := tokread.FromReader(strings.NewReader("3 1.5 2.5 3.5"))
	if err != nil {
		panic(err)
	}

	n := tokread.Read[int](r)
	fmt.Println(tokread.ReadSlice[float64](r, n))

	// Output:
	// [1.5 2.5 3.5]
}
