package service

import (
	"Atrium/internal/api/dto"
	"Atrium/internal/model"
	"Atrium/internal/pkg/consts"
	"Atrium/internal/repository"
	"context"
	"time"

	"github.com/jinzhu/copier"
)

// 经营数据列表的时间范围
const (
	PeriodThreeMonths = "3months"
	PeriodOneYear     = "1year"
	PeriodAll         = "all"
)

type BusinessService interface {
	SaveData(ctx context.Context, userID uint64, dataDTO *dto.BusinessDataDTO) (*model.BusinessData, error)
	ListData(ctx context.Context, userID uint64, period string) ([]*model.BusinessData, error)
	GetMonth(ctx context.Context, userID uint64, year int, month int) (*model.BusinessData, error)
}

type BusinessServiceImpl struct {
	businessRepo repository.BusinessDataRepo
}

func NewBusinessService(businessRepo repository.BusinessDataRepo) BusinessService {
	return &BusinessServiceImpl{businessRepo: businessRepo}
}

func validateYearMonth(year int, month int) error {
	if year < consts.BusinessYearMin || year > consts.BusinessYearMax {
		return ErrYearOutOfRange
	}
	if month < 1 || month > 12 {
		return ErrMonthOutOfRange
	}
	return nil
}

// SaveData 全量覆盖写入某月数据，缺省指标按空值落库
func (s *BusinessServiceImpl) SaveData(ctx context.Context, userID uint64, dataDTO *dto.BusinessDataDTO) (*model.BusinessData, error) {
	if err := validateYearMonth(dataDTO.Year, dataDTO.Month); err != nil {
		return nil, err
	}

	data := &model.BusinessData{}
	if err := copier.Copy(data, dataDTO); err != nil {
		return nil, err
	}
	data.UserID = userID

	// 空字符串商品名视为未填写
	if data.ProductName != nil && *data.ProductName == "" {
		data.ProductName = nil
	}

	if err := s.businessRepo.Upsert(ctx, data); err != nil {
		return nil, err
	}

	return s.businessRepo.GetByUserMonth(ctx, userID, dataDTO.Year, dataDTO.Month)
}

// ListData 按时间范围返回当前用户的数据，未识别的 period 等同于 all
func (s *BusinessServiceImpl) ListData(ctx context.Context, userID uint64, period string) ([]*model.BusinessData, error) {
	now := time.Now()
	switch period {
	case PeriodThreeMonths:
		since := time.Date(now.Year(), now.Month()-3, 1, 0, 0, 0, 0, time.UTC)
		return s.businessRepo.ListByUserSince(ctx, userID, since.Year()*100+int(since.Month()))
	case PeriodOneYear:
		since := time.Date(now.Year()-1, now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return s.businessRepo.ListByUserSince(ctx, userID, since.Year()*100+int(since.Month()))
	default:
		return s.businessRepo.ListByUser(ctx, userID)
	}
}

// GetMonth 指定月份无记录时返回 nil 而非错误
func (s *BusinessServiceImpl) GetMonth(ctx context.Context, userID uint64, year int, month int) (*model.BusinessData, error) {
	if err := validateYearMonth(year, month); err != nil {
		return nil, err
	}
	return s.businessRepo.GetByUserMonth(ctx, userID, year, month)
}
