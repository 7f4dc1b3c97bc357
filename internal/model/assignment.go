package model

// Assignment 排班记录表 — 对应 assignments
// 每个 (Date, EmployeeName) 至多一条；重复指派时替换旧记录，
// 指派空班次名等价于删除（取消排班）
type Assignment struct {
	AssignmentID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"assignment_id"`
	Date         string `gorm:"type:varchar(10);not null;index:idx_assignments_date_employee,unique" json:"date"` // YYYY-MM-DD
	EmployeeName string `gorm:"type:varchar(100);not null;index:idx_assignments_date_employee,unique" json:"employee_name"`
	ShiftName    string `gorm:"type:varchar(100);not null" json:"shift_name"`
	BaseModel
}

// TableName 指定表名
func (Assignment) TableName() string { return "assignments" }
