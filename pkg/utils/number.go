package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// SafeRatio devolve num/den ou nil quando o denominador é zero; é a regra
// de métricas derivadas em toda a aplicação: nulo em vez de zero falso
func SafeRatio(num, den float64) *float64 {
	if den == 0 {
		return nil
	}

	ratio := num / den
	return &ratio
}
