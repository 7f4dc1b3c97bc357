package dto

import (
	"shift-scheduler/backend/internal/model"
	"shift-scheduler/backend/internal/schedule"
)

// ── 排班模块 DTO ──

// AssignShiftRequest 指派班次请求
// ShiftName 为空表示取消该员工当日排班
type AssignShiftRequest struct {
	EmployeeName string `json:"employee_name" binding:"required,min=1,max=100"`
	Date         string `json:"date"          binding:"required,datetime=2006-01-02"`
	ShiftName    string `json:"shift_name"    binding:"omitempty,max=100"`
}

// AssignShiftResponse 指派结果：软冲突仅提示，指派已生效
type AssignShiftResponse struct {
	Assigned  bool                `json:"assigned"` // false 表示本次为取消排班
	Conflicts []schedule.Conflict `json:"conflicts,omitempty"`
}

// ConflictCheckRequest 指派前软冲突检查请求
type ConflictCheckRequest struct {
	EmployeeName string `form:"employee_name" binding:"required"`
	Date         string `form:"date"          binding:"required,datetime=2006-01-02"`
	ShiftName    string `form:"shift_name"    binding:"required"`
}

// WeekScheduleResponse 管理端一周排班视图
type WeekScheduleResponse struct {
	WeekStart       string                 `json:"week_start"` // YYYY-MM-DD
	WeekRange       string                 `json:"week_range"` // 如 "Jan 15 - Jan 21"
	Employees       []EmployeeResponse     `json:"employees"`
	Shifts          []ShiftTypeResponse    `json:"shifts"`
	Assignments     []model.Assignment     `json:"assignments"`
	ApprovedTimeOff []model.TimeOffRequest `json:"approved_time_off"`
	Analytics       schedule.Report        `json:"analytics"`
}

// MyScheduleResponse 员工个人一周课表
type MyScheduleResponse struct {
	WeekRange string           `json:"week_range"`
	Entries   []schedule.Entry `json:"entries"`
	// Warnings 引用未知班次等装配告警；条目已省略，但向调用方如实呈现
	Warnings []string `json:"warnings,omitempty"`
}
