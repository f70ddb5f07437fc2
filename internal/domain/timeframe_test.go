package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeframeRange(t *testing.T) {
	// 23h em São Paulo já é o dia seguinte em UTC
	now := time.Date(2024, 3, 10, 23, 30, 0, 0, time.FixedZone("BRT", -3*60*60))

	tests := []struct {
		timeframe Timeframe
		wantSince string
	}{
		{TimeframeThisWeek, "2024-03-04"},
		{TimeframeLast7Days, "2024-03-04"},
		{TimeframeThisMonth, "2024-02-10"},
		{TimeframeLast30Days, "2024-02-10"},
		{Timeframe("yesterday"), "2024-03-04"},
	}

	for _, tt := range tests {
		t.Run(string(tt.timeframe), func(t *testing.T) {
			since, until := TimeframeRange(tt.timeframe, now)

			assert.Equal(t, "2024-03-11", until)
			assert.Equal(t, tt.wantSince, since)
			assert.Less(t, since, until)
		})
	}
}

func TestTimeframe_DemographicsPeriod(t *testing.T) {
	assert.Equal(t, "this_week", TimeframeThisWeek.DemographicsPeriod())
	assert.Equal(t, "this_week", TimeframeLast7Days.DemographicsPeriod())
	assert.Equal(t, "this_month", TimeframeThisMonth.DemographicsPeriod())
	assert.Equal(t, "this_month", TimeframeLast30Days.DemographicsPeriod())
}
