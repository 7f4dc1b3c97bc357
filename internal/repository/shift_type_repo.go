package repository

import (
	"context"

	"gorm.io/gorm"

	"shift-scheduler/backend/internal/model"
)

// ShiftTypeRepository 班次类型数据访问接口
type ShiftTypeRepository interface {
	Create(ctx context.Context, shift *model.ShiftType) error
	GetByName(ctx context.Context, name string) (*model.ShiftType, error)
	List(ctx context.Context) ([]model.ShiftType, error)
}

// shiftTypeRepo ShiftTypeRepository 的 GORM 实现
type shiftTypeRepo struct {
	db *gorm.DB
}

// NewShiftTypeRepo 创建 ShiftTypeRepository 实例
func NewShiftTypeRepo(db *gorm.DB) ShiftTypeRepository {
	return &shiftTypeRepo{db: db}
}

func (r *shiftTypeRepo) Create(ctx context.Context, shift *model.ShiftType) error {
	return r.db.WithContext(ctx).Create(shift).Error
}

func (r *shiftTypeRepo) GetByName(ctx context.Context, name string) (*model.ShiftType, error) {
	var shift model.ShiftType
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&shift).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

func (r *shiftTypeRepo) List(ctx context.Context) ([]model.ShiftType, error) {
	var shifts []model.ShiftType
	err := r.db.WithContext(ctx).
		Order("start_time ASC").
		Find(&shifts).Error
	if err != nil {
		return nil, err
	}
	return shifts, nil
}
