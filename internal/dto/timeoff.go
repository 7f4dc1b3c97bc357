package dto

// ── 调休模块 DTO ──

// SubmitTimeOffRequest 提交调休申请请求
type SubmitTimeOffRequest struct {
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date"   binding:"required,datetime=2006-01-02"`
	Reason    string `json:"reason"     binding:"max=500"`
}

// DecideTimeOffRequest 审批调休申请请求
type DecideTimeOffRequest struct {
	Status string `json:"status" binding:"required,oneof=Approved Denied"`
}

// TimeOffResponse 调休申请响应
type TimeOffResponse struct {
	RequestID     string `json:"request_id"`
	EmployeeName  string `json:"employee_name"`
	EmployeeEmail string `json:"employee_email"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	Reason        string `json:"reason"`
	Status        string `json:"status"`
	RequestDate   string `json:"request_date"`
	DecidedBy     string `json:"decided_by,omitempty"`
}
