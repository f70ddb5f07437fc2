package utils

import (
	"math"
	"strconv"
	"strings"
)

// ToFloat converte números JSON e strings numéricas; qualquer outra coisa não é número.
func ToFloat(value any) (float64, bool) {
	var n float64

	switch v := value.(type) {
	case float64:
		n = v
	case float32:
		n = float64(v)
	case int:
		n = float64(v)
	case int64:
		n = float64(v)
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		n = parsed
	default:
		return 0, false
	}

	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// ClampInt trunca value para inteiro e o limita a [min, max]; valores não numéricos viram fallback.
func ClampInt(value any, fallback, min, max int) int {
	n, ok := ToFloat(value)
	if !ok {
		return fallback
	}

	truncated := math.Trunc(n)
	if truncated < float64(min) {
		return min
	}
	if truncated > float64(max) {
		return max
	}
	return int(truncated)
}

// Truthy segue a noção de verdade do JSON de entrada: false, 0, "" e null são falsos.
func Truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case float64:
		return v != 0 && !math.IsNaN(v)
	case string:
		return v != ""
	default:
		return true
	}
}

// Round arredonda meios para cima (-2.5 vira -2), como nos clientes web.
func Round(f float64) int {
	return int(math.Floor(f + 0.5))
}
