package production

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Capacidad semanal: 8 horas por día, 6 días = 2880 minutos.
func TestWeeklyCapacity(t *testing.T) {
	assert.Equal(t, 2880, WeeklyCapacity)
}

func TestUtilization(t *testing.T) {
	assert.Equal(t, float64(0), Utilization(0))
	assert.InDelta(t, 50.0, Utilization(1440), 0.001)
	assert.InDelta(t, 100.0, Utilization(2880), 0.001)
	// Semana sobrevendida: supera el 100%.
	assert.Greater(t, Utilization(3000), 100.0)
}
