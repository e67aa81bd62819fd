package bitcodec_test

import (
	"fmt"

	"github.com/thomazritter/simulacao-redes2/bitcodec"
)

// ExampleTextToBits shows the MSB-first expansion of a two-character message.
func ExampleTextToBits() {
	bits, err := bitcodec.TextToBits("AB")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(bits)
	// Output:
	// [0 1 0 0 0 0 0 1 0 1 0 0 0 0 1 0]
}

// ExampleManchesterEncode shows the half-bit pairs of a short stream and
// the decode back to data bits.
func ExampleManchesterEncode() {
	coded, err := bitcodec.ManchesterEncode([]byte{1, 0, 1})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	bits, err := bitcodec.ManchesterDecode(coded)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(coded)
	fmt.Println(bits)
	// Output:
	// [0 1 1 0 0 1]
	// [1 0 1]
}

// ExampleBitsToText rebuilds a message from its raw bits.
func ExampleBitsToText() {
	bits, _ := bitcodec.TextToBits("Hi")
	text, err := bitcodec.BitsToText(bits)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(text)
	// Output:
	// Hi
}
