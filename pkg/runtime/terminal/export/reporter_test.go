package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epi-tools/covid-atlas/pkg/models/domain"
)

func TestReporter_Handle(t *testing.T) {
	dashboard := &domain.Dashboard{
		Filter: domain.FilterSpec{Continent: "América", Country: "Chile"},
		Series: domain.DailySeries{Points: []domain.DailyPoint{
			{Date: time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)},
			{Date: time.Date(2020, 3, 2, 0, 0, 0, 0, time.UTC)},
		}},
		Summary:    domain.Summary{ConfirmedTotal: 35, ActiveTotal: 21, RecoveredTotal: 11, DeceasedTotal: 3, Days: 2},
		Growth:     &domain.GrowthRate{RawGrowth: 15, Factor: 2.5, Kind: domain.GrowthMultiplier},
		Resurgence: true,
		Conclusions: []string{
			"Se detectó posible rebrote, ya que se observaron días con 0 contagios seguidos de un aumento significativo.",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf).Handle(dashboard))

	out := buf.String()
	assert.Contains(t, out, "Chile (América)")
	assert.Contains(t, out, "Período: 2020-03-01 a 2020-03-02 (2 días)")
	assert.Contains(t, out, "Casos confirmados: 35")
	assert.Contains(t, out, "2.50 veces (crecimiento multiplicativo)")
	assert.Contains(t, out, "Rebrote: detectado")
	assert.Contains(t, out, "- Se detectó posible rebrote")
}

func TestReporter_Handle_EmptySelection(t *testing.T) {
	dashboard := &domain.Dashboard{
		Filter:      domain.FilterSpec{Continent: "Asia", Country: "Japón"},
		Conclusions: []string{"No se identificaron señales de rebrote en el período seleccionado."},
	}

	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf).Handle(dashboard))

	out := buf.String()
	assert.NotContains(t, out, "Período:")
	assert.Contains(t, out, "Tasa de crecimiento: sin datos")
	assert.Contains(t, out, "Rebrote: no detectado")
}

func TestReporter_HandleList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf).HandleList("Continents", []string{"América", "Europa"}))

	assert.Equal(t, "Continents:\n- América\n- Europa\n", buf.String())
}
