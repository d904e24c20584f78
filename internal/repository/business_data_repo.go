package repository

import (
	"Atrium/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// 覆盖写入的指标列，Upsert 命中已有 (user_id, year, month) 时全量替换
var businessMetricColumns = []string{
	"total_revenue",
	"product_name",
	"product_price",
	"product_profit",
	"product_sales_count",
	"total_leads",
	"new_leads",
	"ad_spend",
	"cpa",
	"cpl",
	"roas",
	"follower_count",
	"impressions",
	"reach",
	"post_count",
	"updated_at",
}

type BusinessDataRepo interface {
	GetByUserMonth(ctx context.Context, userID uint64, year int, month int) (*model.BusinessData, error)
	ListByUser(ctx context.Context, userID uint64) ([]*model.BusinessData, error)
	ListByUserSince(ctx context.Context, userID uint64, sinceKey int) ([]*model.BusinessData, error)
	Upsert(ctx context.Context, data *model.BusinessData) error
}

type BusinessDataRepoImpl struct {
	db *gorm.DB
}

func NewBusinessDataRepo(db *gorm.DB) BusinessDataRepo {
	return &BusinessDataRepoImpl{db: db}
}

func (s *BusinessDataRepoImpl) GetByUserMonth(ctx context.Context, userID uint64, year int, month int) (*model.BusinessData, error) {
	data := &model.BusinessData{}
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND year = ? AND month = ?", userID, year, month).
		First(data)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return data, nil
}

func (s *BusinessDataRepoImpl) ListByUser(ctx context.Context, userID uint64) ([]*model.BusinessData, error) {
	records := make([]*model.BusinessData, 0)
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("year DESC, month DESC").
		Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}
	return records, nil
}

// ListByUserSince sinceKey 为 year*100+month 形式的月份键
func (s *BusinessDataRepoImpl) ListByUserSince(ctx context.Context, userID uint64, sinceKey int) ([]*model.BusinessData, error) {
	records := make([]*model.BusinessData, 0)
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND (year * 100 + month) >= ?", userID, sinceKey).
		Order("year DESC, month DESC").
		Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}
	return records, nil
}

// Upsert 按 (user_id, year, month) 原子写入，避免先查后写的竞态
func (s *BusinessDataRepoImpl) Upsert(ctx context.Context, data *model.BusinessData) error {
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "user_id"},
				{Name: "year"},
				{Name: "month"},
			},
			DoUpdates: clause.AssignmentColumns(businessMetricColumns),
		}).
		Create(data)
	return result.Error
}
