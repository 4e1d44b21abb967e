// Package money implementa aritmética monetária exata em reais.
//
// Todos os cálculos são feitos em centavos inteiros para eliminar o erro
// de arredondamento binário que se acumula ao somar dezenas de lançamentos
// de um mesmo dia de movimento.
package money

import "math"

// Cents converte um valor em reais para centavos inteiros.
// Valores não numéricos (NaN, ±Inf) são tratados como zero.
func Cents(v float64) int64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int64(math.Round(v * 100))
}

// FromCents converte centavos inteiros de volta para reais.
func FromCents(c int64) float64 {
	return float64(c) / 100
}

// Add soma os valores informados com precisão de centavos.
func Add(values ...float64) float64 {
	var total int64
	for _, v := range values {
		total += Cents(v)
	}
	return FromCents(total)
}

// Subtract subtrai b de a com precisão de centavos.
func Subtract(a, b float64) float64 {
	return FromCents(Cents(a) - Cents(b))
}

// Equals compara dois valores na resolução de centavos, de forma que
// diferenças de representação binária abaixo de um centavo são ignoradas.
func Equals(a, b float64) bool {
	return Cents(a) == Cents(b)
}

// Round arredonda um valor para duas casas decimais.
func Round(v float64) float64 {
	return FromCents(Cents(v))
}
