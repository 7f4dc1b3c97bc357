package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"shift-scheduler/backend/internal/dto"
	"shift-scheduler/backend/internal/model"
	"shift-scheduler/backend/internal/repository"
	"shift-scheduler/backend/internal/schedule"
)

// ── 员工模块业务错误 ──

var (
	ErrEmployeeNotFound    = errors.New("员工不存在")
	ErrEmployeeEmailExists = errors.New("该邮箱的员工已存在")
)

// EmployeeService 员工业务接口
type EmployeeService interface {
	Create(ctx context.Context, req *dto.CreateEmployeeRequest, creatorID string) (*dto.EmployeeResponse, error)
	List(ctx context.Context) ([]dto.EmployeeResponse, error)
	// Delete 删除员工并级联清理其自今日起的排班记录
	Delete(ctx context.Context, employeeID string) error
}

type employeeService struct {
	repo   *repository.Repository
	loc    *time.Location
	logger *zap.Logger
}

// NewEmployeeService 创建 EmployeeService 实例
func NewEmployeeService(repo *repository.Repository, loc *time.Location, logger *zap.Logger) EmployeeService {
	return &employeeService{repo: repo, loc: loc, logger: logger}
}

func (s *employeeService) Create(ctx context.Context, req *dto.CreateEmployeeRequest, creatorID string) (*dto.EmployeeResponse, error) {
	// 邮箱唯一性检查
	if _, err := s.repo.Employee.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmployeeEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询员工失败", zap.Error(err))
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	employee := model.Employee{
		Name:         req.Name,
		Email:        req.Email,
		Role:         req.Role,
		PasswordHash: string(hash),
		BaseModel:    model.BaseModel{CreatedBy: &creatorID},
	}
	if err := s.repo.Employee.Create(ctx, &employee); err != nil {
		s.logger.Error("创建员工失败", zap.Error(err))
		return nil, err
	}

	resp := toEmployeeResponse(&employee)
	return &resp, nil
}

func (s *employeeService) List(ctx context.Context) ([]dto.EmployeeResponse, error) {
	employees, err := s.repo.Employee.List(ctx)
	if err != nil {
		s.logger.Error("查询员工列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		result = append(result, toEmployeeResponse(&employees[i]))
	}
	return result, nil
}

func (s *employeeService) Delete(ctx context.Context, employeeID string) error {
	employee, err := s.repo.Employee.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmployeeNotFound
		}
		return err
	}

	// 员工行与未来排班在同一事务中删除，失败则整体回滚
	today := time.Now().In(s.loc).Format(schedule.DateLayout)
	if err := s.repo.Employee.DeleteWithAssignments(ctx, employeeID, employee.Name, today); err != nil {
		s.logger.Error("删除员工失败",
			zap.Error(err),
			zap.String("employee", employee.Name),
		)
		return err
	}

	return nil
}

// toEmployeeResponse 响应转换器
func toEmployeeResponse(e *model.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:    e.EmployeeID,
		Name:  e.Name,
		Email: e.Email,
		Role:  e.Role,
	}
}
