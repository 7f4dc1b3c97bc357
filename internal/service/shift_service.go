package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"shift-scheduler/backend/internal/dto"
	"shift-scheduler/backend/internal/model"
	"shift-scheduler/backend/internal/repository"
	"shift-scheduler/backend/internal/schedule"
)

// ── 班次模块业务错误 ──

var (
	ErrShiftNameExists   = errors.New("同名班次已存在")
	ErrShiftInvalidClock = errors.New("班次时刻必须为 HH:mm 格式")
)

// ShiftService 班次类型业务接口
// 班次目录在一个排班周期内是小而稳定的：只增不删
type ShiftService interface {
	Create(ctx context.Context, req *dto.CreateShiftTypeRequest, creatorID string) (*dto.ShiftTypeResponse, error)
	List(ctx context.Context) ([]dto.ShiftTypeResponse, error)
}

type shiftService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewShiftService 创建 ShiftService 实例
func NewShiftService(repo *repository.Repository, logger *zap.Logger) ShiftService {
	return &shiftService{repo: repo, logger: logger}
}

func (s *shiftService) Create(ctx context.Context, req *dto.CreateShiftTypeRequest, creatorID string) (*dto.ShiftTypeResponse, error) {
	// 时刻格式校验（跨夜回绕在时长计算中统一处理，这里不限制 end > start）
	if _, err := schedule.ShiftDuration(req.StartTime, req.EndTime); err != nil {
		return nil, ErrShiftInvalidClock
	}

	if _, err := s.repo.ShiftType.GetByName(ctx, req.Name); err == nil {
		return nil, ErrShiftNameExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询班次失败", zap.Error(err))
		return nil, err
	}

	shift := model.ShiftType{
		Name:      req.Name,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		BaseModel: model.BaseModel{CreatedBy: &creatorID},
	}
	if err := s.repo.ShiftType.Create(ctx, &shift); err != nil {
		s.logger.Error("创建班次失败", zap.Error(err))
		return nil, err
	}

	resp := toShiftTypeResponse(&shift)
	return &resp, nil
}

func (s *shiftService) List(ctx context.Context) ([]dto.ShiftTypeResponse, error) {
	shifts, err := s.repo.ShiftType.List(ctx)
	if err != nil {
		s.logger.Error("查询班次列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ShiftTypeResponse, 0, len(shifts))
	for i := range shifts {
		result = append(result, toShiftTypeResponse(&shifts[i]))
	}
	return result, nil
}

// toShiftTypeResponse 响应转换器
func toShiftTypeResponse(sh *model.ShiftType) dto.ShiftTypeResponse {
	hours, err := schedule.ShiftDuration(sh.StartTime, sh.EndTime)
	if err != nil {
		hours = 0 // 目录中的脏数据不阻断列表展示
	}
	return dto.ShiftTypeResponse{
		ID:        sh.ShiftTypeID,
		Name:      sh.Name,
		StartTime: sh.StartTime,
		EndTime:   sh.EndTime,
		Hours:     hours,
		Overnight: sh.EndTime <= sh.StartTime,
	}
}
