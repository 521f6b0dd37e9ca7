package bit

// Combine combines two 8 bit values into a single 16 bit value.
// The high byte will be the most significant one.
func Combine(high, low uint8) uint16 {
	return (uint16(high) << 8) | uint16(low)
}

// CombineLE combines two bytes as they appear in a little-endian stream.
func CombineLE(first, second uint8) uint16 {
	return Combine(second, first)
}

// Signed reinterprets a raw byte as a two's complement value.
func Signed(value uint8) int8 {
	return int8(value)
}
