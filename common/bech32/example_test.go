package bech32

import (
	"encoding/hex"
	"fmt"
)

// This example demonstrates how to decode a bech32 encoded string.
func ExampleBech32Decode() {
	encoded := "addr_test1wpu4kz83wgtgslg0mkpaa3s8jznelwsfnzkf6aht93ldszsfh7ty7"
	hrp, decoded, err := Bech32Decode(encoded)
	if err != nil {
		fmt.Println("Error:", err)
	}

	// Regroup the 5-bit symbols into the original payload bytes.
	payload, err := ConvertBits(decoded, 5, 8, false)
	if err != nil {
		fmt.Println("Error:", err)
	}

	fmt.Println("Decoded human-readable part:", hrp)
	fmt.Println("Decoded payload:", hex.EncodeToString(payload))

	// Output:
	// Decoded human-readable part: addr_test
	// Decoded payload: 70795b08f17216887d0fdd83dec60790a79fba0998ac9d76eb2c7ed80a
}

// This example demonstrates how to encode data into a bech32 string.
func ExampleBech32Encode() {
	payload, err := hex.DecodeString("70795b08f17216887d0fdd83dec60790a79fba0998ac9d76eb2c7ed80a")
	if err != nil {
		fmt.Println("Error:", err)
	}

	// Convert the payload to base32:
	conv, err := ConvertBits(payload, 8, 5, true)
	if err != nil {
		fmt.Println("Error:", err)
	}
	encoded, err := Bech32Encode("addr_test", conv)
	if err != nil {
		fmt.Println("Error:", err)
	}

	fmt.Println("Encoded Address:", encoded)

	// Output:
	// Encoded Address: addr_test1wpu4kz83wgtgslg0mkpaa3s8jznelwsfnzkf6aht93ldszsfh7ty7
}
