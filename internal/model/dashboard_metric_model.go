package model

import (
	"time"

	"gorm.io/datatypes"
)

type DashboardMetric struct {
	MetricName      string         `gorm:"type:text"`
	MetricValue     float64        ``
	MetricMetadata  datatypes.JSON `gorm:"type:jsonb"`
	TimePeriod      string         `gorm:"type:text"`
	CalculationDate time.Time      ``
}

func (DashboardMetric) TableName() string {
	return "dashboard_metrics"
}
