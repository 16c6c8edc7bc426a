package analytics

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/epi-tools/covid-atlas/pkg/models/domain"
)

// Conclusions applies the fixed rule list over the aggregated values and
// returns the narrative statements in order. The rules are independent:
//
//  1. positive raw growth → growth statement
//  2. positive average of daily new cases → average/peak statement
//  3. recovered vs deceased → exactly one of favorable/critical
//  4. resurgence flag → exactly one of warning/all-clear
//  5. active cases above 20% of confirmed → high-burden statement
//
// growth is nil when the series was empty; rule 1 then never fires.
func Conclusions(summary domain.Summary, growth *domain.GrowthRate, resurgence bool) []string {
	p := message.NewPrinter(language.Spanish)
	var out []string

	if growth != nil && growth.RawGrowth > 0 {
		out = append(out, p.Sprintf(
			"El país mostró un crecimiento total de %d casos, equivalente a una variación de %s durante el período analizado.",
			growth.RawGrowth, growth.Display()))
	}

	if summary.AvgDailyNew > 0 {
		out = append(out, p.Sprintf(
			"El promedio diario de contagios fue de %.0f casos, mientras que el más alto ocurrió el %s con %d nuevos contagios.",
			summary.AvgDailyNew, summary.PeakDate.Format("2006-01-02"), summary.PeakDailyNew))
	}

	if summary.RecoveredTotal > summary.DeceasedTotal {
		out = append(out, p.Sprintf(
			"Las recuperaciones (%d) superan ampliamente a los fallecimientos (%d), lo que sugiere una evolución sanitaria favorable.",
			summary.RecoveredTotal, summary.DeceasedTotal))
	} else {
		out = append(out, p.Sprintf(
			"Los fallecimientos (%d) son altos en relación a los recuperados (%d), indicando un período crítico.",
			summary.DeceasedTotal, summary.RecoveredTotal))
	}

	if resurgence {
		out = append(out,
			"Se detectó posible rebrote, ya que se observaron días con 0 contagios seguidos de un aumento significativo.")
	} else {
		out = append(out,
			"No se identificaron señales de rebrote en el período seleccionado.")
	}

	if float64(summary.ActiveTotal) > 0.20*float64(summary.ConfirmedTotal) {
		out = append(out, p.Sprintf(
			"El número de casos activos (%d) representa un porcentaje elevado del total acumulado, indicando presencia del virus.",
			summary.ActiveTotal))
	}

	return out
}
