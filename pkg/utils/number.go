package utils

import "math"

// RoundPercent calcula a participação percentual arredondada ao inteiro.
// Total zero resulta em 0, nunca em divisão por zero.
func RoundPercent(part, total int) int {
	if total == 0 {
		return 0
	}

	return int(math.Round(float64(part) / float64(total) * 100))
}

func RoundWithOneDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*10) / 10
}
