package domain

// MetricKind identifica qual forma a métrica da Graph API assumiu
type MetricKind int

const (
	MetricEmpty MetricKind = iota
	MetricScalar
	MetricSeries
	// MetricBreakdown é um value em objeto, como nas métricas demográficas
	MetricBreakdown
)

// MetricPoint é um ponto da série; Value é nil quando a API devolve algo não numérico
type MetricPoint struct {
	Value   *float64 `json:"value"`
	EndTime string   `json:"end_time,omitempty"`
}

// MetricValue é a forma uniforme de qualquer métrica de insights
type MetricValue struct {
	Name        string        `json:"name"`
	Period      string        `json:"period,omitempty"`
	Title       string        `json:"title,omitempty"`
	Description string        `json:"description,omitempty"`
	Values      []MetricPoint `json:"values,omitempty"`
	Value       any           `json:"value,omitempty"`
}

func (m MetricValue) Kind() MetricKind {
	if _, ok := m.Value.(float64); ok {
		return MetricScalar
	}
	if len(m.Values) > 0 {
		return MetricSeries
	}
	if m.Value != nil {
		return MetricBreakdown
	}
	return MetricEmpty
}

// LatestValue reduz a métrica a um número: o escalar, senão o último ponto da série, senão nil.
func LatestValue(m *MetricValue) *float64 {
	if m == nil {
		return nil
	}

	switch m.Kind() {
	case MetricScalar:
		v := m.Value.(float64)
		return &v
	case MetricSeries:
		return m.Values[len(m.Values)-1].Value
	default:
		return nil
	}
}

// ToNumberMap achata as métricas em nome → último valor, ignorando as que não têm número
func ToNumberMap(metrics []MetricValue) map[string]float64 {
	out := make(map[string]float64, len(metrics))
	for i := range metrics {
		if v := LatestValue(&metrics[i]); v != nil {
			out[metrics[i].Name] = *v
		}
	}
	return out
}

// InsightsQuery descreve uma chamada a /{id}/insights
type InsightsQuery struct {
	Metrics []string
	Period  string
	Since   string
	Until   string
}
