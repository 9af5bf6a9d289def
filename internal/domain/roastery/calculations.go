// Package roastery agrupa los servicios de dominio puros de la tostaduría:
// merma de tueste, clasificación de stock y rotación de inventario.
package roastery

// DefaultYieldRatio es la merma de peso asumida en el tueste: se produce el
// 80% del café verde consumido salvo que el perfil indique otro rendimiento.
const DefaultYieldRatio = 0.8

// DefaultRoastedQuantity calcula los kg tostados con la merma por defecto.
func DefaultRoastedQuantity(greenQuantity float64) float64 {
	return greenQuantity * DefaultYieldRatio
}

// YieldPercent devuelve el rendimiento de una sesión en porcentaje.
// Con cantidad verde cero devuelve 0, nunca divide por cero.
func YieldPercent(roastedQuantity, greenQuantity float64) float64 {
	if greenQuantity <= 0 {
		return 0
	}
	return roastedQuantity / greenQuantity * 100
}

// Estados de stock, del más severo al más leve.
const (
	StockCritical = "critical"
	StockWarning  = "warning"
	StockNormal   = "normal"
)

// ClassifyStock clasifica el saldo de un lote contra su umbral mínimo.
// Los valores frontera caen en el bucket más severo (comparaciones <=).
func ClassifyStock(quantity, lowStockThreshold float64) string {
	switch {
	case quantity <= lowStockThreshold:
		return StockCritical
	case quantity <= 2*lowStockThreshold:
		return StockWarning
	default:
		return StockNormal
	}
}

// TurnoverRate estima la rotación anualizada de un lote:
// totalConsumed / averageStock * 365, con averageStock = actual + consumido/2.
// Es una aproximación, no una cifra contable. Tolera stock promedio cero.
func TurnoverRate(currentQuantity, totalConsumed float64) float64 {
	averageStock := currentQuantity + totalConsumed/2
	if averageStock <= 0 {
		return 0
	}
	return totalConsumed / averageStock * 365
}

// AverageYield promedia el rendimiento de un conjunto de pares (tostado, verde).
// Devuelve 0 si no hay sesiones.
func AverageYield(pairs [][2]float64) float64 {
	if len(pairs) == 0 {
		return 0
	}
	var sum float64
	for _, p := range pairs {
		sum += YieldPercent(p[0], p[1])
	}
	return sum / float64(len(pairs))
}

// QualityGrade traduce una puntuación sensorial (escala 1-5) a su etiqueta.
func QualityGrade(overall float64) string {
	switch {
	case overall >= 4.5:
		return "Excellent"
	case overall >= 4.0:
		return "Very Good"
	case overall >= 3.5:
		return "Good"
	case overall >= 3.0:
		return "Fair"
	default:
		return "Poor"
	}
}
