package repository

import (
	"context"

	"gorm.io/gorm"

	"shift-scheduler/backend/internal/model"
)

// TimeOffRepository 调休申请数据访问接口
type TimeOffRepository interface {
	Create(ctx context.Context, req *model.TimeOffRequest) error
	GetByID(ctx context.Context, requestID string) (*model.TimeOffRequest, error)
	ListAll(ctx context.Context) ([]model.TimeOffRequest, error)
	ListPending(ctx context.Context) ([]model.TimeOffRequest, error)
	ListByEmail(ctx context.Context, email string) ([]model.TimeOffRequest, error)
	UpdateStatus(ctx context.Context, requestID, status, decidedBy string) error
}

// timeOffRepo TimeOffRepository 的 GORM 实现
type timeOffRepo struct {
	db *gorm.DB
}

// NewTimeOffRepo 创建 TimeOffRepository 实例
func NewTimeOffRepo(db *gorm.DB) TimeOffRepository {
	return &timeOffRepo{db: db}
}

func (r *timeOffRepo) Create(ctx context.Context, req *model.TimeOffRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *timeOffRepo) GetByID(ctx context.Context, requestID string) (*model.TimeOffRequest, error) {
	var req model.TimeOffRequest
	err := r.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *timeOffRepo) ListAll(ctx context.Context) ([]model.TimeOffRequest, error) {
	var reqs []model.TimeOffRequest
	err := r.db.WithContext(ctx).
		Order("request_date DESC").
		Find(&reqs).Error
	if err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *timeOffRepo) ListPending(ctx context.Context) ([]model.TimeOffRequest, error) {
	var reqs []model.TimeOffRequest
	err := r.db.WithContext(ctx).
		Where("status = ?", model.TimeOffStatusPending).
		Order("request_date ASC").
		Find(&reqs).Error
	if err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *timeOffRepo) ListByEmail(ctx context.Context, email string) ([]model.TimeOffRequest, error) {
	var reqs []model.TimeOffRequest
	err := r.db.WithContext(ctx).
		Where("employee_email = ?", email).
		Order("request_date DESC").
		Find(&reqs).Error
	if err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *timeOffRepo) UpdateStatus(ctx context.Context, requestID, status, decidedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.TimeOffRequest{}).
		Where("request_id = ?", requestID).
		Updates(map[string]interface{}{
			"status":     status,
			"decided_by": decidedBy,
		}).Error
}
