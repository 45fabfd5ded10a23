package smath

// The series below are expanded around 0 with no range reduction.
// Sin and Cos drift quickly outside [-Pi, Pi]; Arctan is only useful for |theta| <= 1.

func Sin(theta float32) float32 {
	return theta - Pow(theta, 3)/6 + Pow(theta, 5)/120 - Pow(theta, 7)/5040
}

func Cos(theta float32) float32 {
	return 1 - Pow(theta, 2)/2 + Pow(theta, 4)/24 - Pow(theta, 6)/720
}

func Arctan(theta float32) float32 {
	return theta - Pow(theta, 3)/3 + Pow(theta, 5)/5 - Pow(theta, 7)/7
}
