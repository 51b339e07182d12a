package money

import "github.com/shopspring/decimal"

// Los precios se guardan en unidades menores (centavos USD). Este paquete
// solo convierte para presentación; la aritmética de totales se hace en int64.

var hundred = decimal.NewFromInt(100)

// Format convierte centavos a una cadena decimal con dos dígitos ("199" -> "1.99").
func Format(minor int64) string {
	return decimal.NewFromInt(minor).Div(hundred).StringFixed(2)
}

// Sum suma una lista de montos en centavos.
func Sum(minors []int64) int64 {
	var total int64
	for _, m := range minors {
		total += m
	}
	return total
}
