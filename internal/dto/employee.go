package dto

// ── 员工模块 DTO ──

// CreateEmployeeRequest 新增员工请求
type CreateEmployeeRequest struct {
	Name     string `json:"name"     binding:"required,min=1,max=100"`
	Email    string `json:"email"    binding:"required,email"`
	Role     string `json:"role"     binding:"required,max=50"`
	Password string `json:"password" binding:"required,min=8,max=64"`
}

// EmployeeResponse 员工信息响应（脱敏）
type EmployeeResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ── 班次模块 DTO ──

// CreateShiftTypeRequest 新增班次类型请求
// 结束时刻早于等于开始时刻表示跨夜班次
type CreateShiftTypeRequest struct {
	Name      string `json:"name"       binding:"required,min=1,max=100"`
	StartTime string `json:"start_time" binding:"required,len=5"`
	EndTime   string `json:"end_time"   binding:"required,len=5"`
}

// ShiftTypeResponse 班次类型响应
type ShiftTypeResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Hours     float64 `json:"hours"` // 按跨夜回绕规则计算的时长
	Overnight bool    `json:"overnight"`
}
