package meta

import (
	"bytes"

	metadomain "github.com/vfg2006/ig-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ig-dashboard-api/internal/domain"
	"github.com/vfg2006/ig-dashboard-api/pkg/utils"
)

// ToMetricValues converte o data[] cru de /insights em MetricValue.
// Itens sem name são descartados; pontos não numéricos viram nil; value escalar ou objeto passa intacto.
func ToMetricValues(raw []metadomain.RawMetric) []domain.MetricValue {
	out := make([]domain.MetricValue, 0, len(raw))

	for _, item := range raw {
		if item.Name == "" {
			continue
		}

		metric := domain.MetricValue{
			Name:        item.Name,
			Period:      item.Period,
			Title:       item.Title,
			Description: item.Description,
			Value:       decodeValue(item.Value),
		}

		if item.Values != nil {
			metric.Values = make([]domain.MetricPoint, 0, len(item.Values))
			for _, point := range item.Values {
				metric.Values = append(metric.Values, domain.MetricPoint{
					Value:   pointValue(point.Value),
					EndTime: point.EndTime,
				})
			}
		}

		out = append(out, metric)
	}

	return out
}

func decodeValue(raw []byte) any {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return v
}

func pointValue(raw []byte) *float64 {
	n, ok := utils.ToFloat(decodeValue(raw))
	if !ok {
		return nil
	}
	return &n
}
