package packed_test

import (
	"fmt"
	"unicode/utf16"

	"github.com/mrjoshuak/go-numeric/packed"
)

func ExampleIndexOfAnyInRange() {
	s := utf16.Encode([]rune("order #4521 shipped"))
	fmt.Println(packed.IndexOfAnyInRange(s, '0', '9'))
	// Output: 7
}

func ExampleIndexOfAnyExcept() {
	s := utf16.Encode([]rune("    indented"))
	fmt.Println(packed.IndexOfAnyExcept(s, ' '))
	// Output: 4
}
