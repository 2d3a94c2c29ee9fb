package fract

// Fixed point type to represent fractional canvas coordinates and
// font sizes.
//
// 26 bits represent the integer part of the value, while the remaining 6 bits
// represent the decimal part. If you can understand that var ms Millis = 1000
// is storing the equivalent to 1 second, with Unit, instead of thousandths of
// a value, you are storing 64ths. So, var pixels Unit = 64 would mean 1 pixel,
// and 96 would be 1.5 pixels.
type Unit int32

// Returns the fractional part of the Unit as a positive value
// in [0, 63], measured from the floor. For example, -0.25
// would return 48 (0.75).
func (self Unit) FractShift() Unit {
	return self & 0x3F
}

// Multiplies the unit by the given float64 factor, rounding
// the result to the closest Unit.
func (self Unit) Scale(factor float64) Unit {
	return FromFloat64Up(self.ToFloat64()*factor)
}

func (self Unit) ToFloat64() float64 {
	return float64(self)/64.0
}

func (self Unit) ToFloat32() float32 {
	return float32(self)/64.0
}

// Fastest conversion from Unit to int.
func (self Unit) ToIntFloor() int {
	return int(self) >> 6
}

func (self Unit) ToIntCeil() int {
	return (int(self) + 63) >> 6
}

func (self Unit) ToIntHalfUp() int {
	return (int(self) + 32) >> 6
}

func (self Unit) Floor() Unit {
	return self & ^0x3F
}

func (self Unit) Ceil() Unit {
	return (self + 0x3F).Floor()
}

func (self Unit) HalfUp() Unit {
	return (self + 32).Floor()
}

func (self Unit) Abs() Unit {
	if self >= 0 { return self }
	return -self
}
