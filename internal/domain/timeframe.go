package domain

import (
	"time"

	"github.com/vfg2006/ig-dashboard-api/pkg/utils"
)

type Timeframe string

const (
	TimeframeThisWeek   Timeframe = "this_week"
	TimeframeThisMonth  Timeframe = "this_month"
	TimeframeLast7Days  Timeframe = "last_7_days"
	TimeframeLast30Days Timeframe = "last_30_days"

	DefaultTimeframe = TimeframeThisWeek
)

// IsMonthly vale para as janelas de 30 dias; qualquer outro valor, inclusive desconhecido, é semanal
func (tf Timeframe) IsMonthly() bool {
	return tf == TimeframeThisMonth || tf == TimeframeLast30Days
}

// Days é o tamanho da janela
func (tf Timeframe) Days() int {
	if tf.IsMonthly() {
		return 30
	}
	return 7
}

// DemographicsPeriod é o period aceito por engaged_audience_demographics
func (tf Timeframe) DemographicsPeriod() string {
	if tf.IsMonthly() {
		return "this_month"
	}
	return "this_week"
}

// TimeframeRange devolve [since, until) em YYYY-MM-DD, com until = hoje à meia-noite UTC
func TimeframeRange(tf Timeframe, now time.Time) (since string, until string) {
	untilDate := utils.UTCMidnight(now)
	sinceDate := untilDate.AddDate(0, 0, -tf.Days())
	return utils.FormatDate(sinceDate), utils.FormatDate(untilDate)
}
