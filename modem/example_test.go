package modem_test

import (
	"fmt"

	"github.com/thomazritter/simulacao-redes2/modem"
)

// ExampleModulate maps a short bit stream onto BPSK symbols and back.
func ExampleModulate() {
	bits := []byte{0, 1, 1, 0}

	symbols, _ := modem.Modulate(bits, modem.BPSK)
	fmt.Println(symbols)

	back, _ := modem.Demodulate(symbols, modem.BPSK)
	fmt.Println(back)
	// Output:
	// [(-1+0i) (1+0i) (1+0i) (-1+0i)]
	// [0 1 1 0]
}

// ExampleCarrier sends BPSK symbols through the noiseless passband stage.
func ExampleCarrier() {
	carrier := modem.Carrier{Freq: 1, SampleRate: 10, PulseShaping: true}

	symbols, _ := modem.Modulate([]byte{1, 0, 0, 1}, modem.BPSK)
	passband, _ := carrier.Upconvert(symbols)
	recovered, _ := carrier.Downconvert(passband)
	bits, _ := modem.Demodulate(recovered, modem.BPSK)

	fmt.Println(len(passband))
	fmt.Println(bits)
	// Output:
	// 40
	// [1 0 0 1]
}

// ExampleParseScheme resolves a scheme from its user-facing name.
func ExampleParseScheme() {
	scheme, _ := modem.ParseScheme("qpsk")
	fmt.Println(scheme, scheme.BitsPerSymbol())
	// Output:
	// QPSK 2
}
