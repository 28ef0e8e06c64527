package implementation

import (
	"context"

	"echoparse-be/internal/entity"
	"echoparse-be/internal/mapper"
	"echoparse-be/internal/model"
	"echoparse-be/internal/repository/contract"

	"gorm.io/gorm"
)

type DashboardMetricRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DashboardMetricMapper
}

func NewDashboardMetricRepository(db *gorm.DB) contract.DashboardMetricRepository {
	return &DashboardMetricRepositoryImpl{
		db:     db,
		mapper: mapper.NewDashboardMetricMapper(),
	}
}

func (r *DashboardMetricRepositoryImpl) FindByTimePeriod(ctx context.Context, timePeriod string) ([]*entity.DashboardMetric, error) {
	var models []*model.DashboardMetric

	err := r.db.WithContext(ctx).
		Where("time_period = ?", timePeriod).
		Order("metric_name").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	entities := make([]*entity.DashboardMetric, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
