package roastery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// 50 kg de verde sin rendimiento explícito -> 40 kg tostados (80%).
func TestDefaultRoastedQuantity(t *testing.T) {
	assert.InDelta(t, 40.0, DefaultRoastedQuantity(50), 1e-9)
	assert.InDelta(t, 80.0, YieldPercent(DefaultRoastedQuantity(50), 50), 1e-9)
}

func TestYieldPercent_VerdeCeroNoDividePorCero(t *testing.T) {
	assert.Equal(t, 0.0, YieldPercent(10, 0))
	assert.Equal(t, 0.0, YieldPercent(0, 0))
}

func TestClassifyStock_Buckets(t *testing.T) {
	const threshold = 50.0

	assert.Equal(t, StockCritical, ClassifyStock(20, threshold))
	assert.Equal(t, StockCritical, ClassifyStock(50, threshold), "la frontera pertenece al bucket más severo")
	assert.Equal(t, StockWarning, ClassifyStock(51, threshold))
	assert.Equal(t, StockWarning, ClassifyStock(100, threshold), "2x el umbral sigue siendo warning")
	assert.Equal(t, StockNormal, ClassifyStock(101, threshold))
	assert.Equal(t, StockNormal, ClassifyStock(500, threshold))
}

// La clasificación es monótona: menos stock nunca es menos severo.
func TestClassifyStock_Monotona(t *testing.T) {
	const threshold = 30.0
	severity := map[string]int{StockCritical: 2, StockWarning: 1, StockNormal: 0}

	prev := severity[ClassifyStock(0, threshold)]
	for q := 1.0; q <= 120; q++ {
		cur := severity[ClassifyStock(q, threshold)]
		assert.LessOrEqual(t, cur, prev, "clasificación en q=%v", q)
		prev = cur
	}
}

func TestTurnoverRate(t *testing.T) {
	// 100 consumidos con 50 actuales: promedio 100, rotación 365.
	assert.InDelta(t, 365.0, TurnoverRate(50, 100), 1e-9)
	// Sin stock ni consumo la rotación es 0, no NaN.
	assert.Equal(t, 0.0, TurnoverRate(0, 0))
}

func TestAverageYield(t *testing.T) {
	assert.Equal(t, 0.0, AverageYield(nil), "sin sesiones el promedio es 0")

	pairs := [][2]float64{{40, 50}, {18, 20}} // 80% y 90%
	assert.InDelta(t, 85.0, AverageYield(pairs), 1e-9)
}

func TestQualityGrade(t *testing.T) {
	assert.Equal(t, "Excellent", QualityGrade(4.5))
	assert.Equal(t, "Very Good", QualityGrade(4.2))
	assert.Equal(t, "Good", QualityGrade(3.5))
	assert.Equal(t, "Fair", QualityGrade(3.0))
	assert.Equal(t, "Poor", QualityGrade(2.9))
}
