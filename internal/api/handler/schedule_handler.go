package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"shift-scheduler/backend/internal/dto"
	"shift-scheduler/backend/internal/service"
	"shift-scheduler/backend/pkg/response"
)

// ScheduleHandler 排班模块 HTTP 处理器
type ScheduleHandler struct {
	scheduleSvc service.ScheduleService
}

// NewScheduleHandler 创建 ScheduleHandler
func NewScheduleHandler(scheduleSvc service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleSvc: scheduleSvc}
}

// GetWeek 管理端一周排班视图
// GET /api/v1/schedule/week?date=2024-01-15
// date 可为周内任意一天，省略时取今天所在周
func (h *ScheduleHandler) GetWeek(c *gin.Context) {
	result, err := h.scheduleSvc.GetWeekSchedule(c.Request.Context(), c.Query("date"))
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}
	response.OK(c, result)
}

// GetMine 当前员工的个人一周课表
// GET /api/v1/schedule/me?date=2024-01-15
func (h *ScheduleHandler) GetMine(c *gin.Context) {
	email, ok := MustGetEmail(c)
	if !ok {
		return
	}

	result, err := h.scheduleSvc.GetMySchedule(c.Request.Context(), email, c.Query("date"))
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}
	response.OK(c, result)
}

// Assign 指派/取消班次（管理员）
// POST /api/v1/schedule/assign
func (h *ScheduleHandler) Assign(c *gin.Context) {
	var req dto.AssignShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.scheduleSvc.AssignShift(c.Request.Context(), &req)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}
	response.OK(c, result)
}

// CheckConflicts 指派前软冲突检查（管理员）
// GET /api/v1/schedule/conflicts?employee_name=...&date=...&shift_name=...
func (h *ScheduleHandler) CheckConflicts(c *gin.Context) {
	var req dto.ConflictCheckRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	conflicts, err := h.scheduleSvc.CheckConflicts(c.Request.Context(), req.EmployeeName, req.Date, req.ShiftName)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}
	response.OK(c, gin.H{"conflicts": conflicts})
}

func (h *ScheduleHandler) handleScheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrScheduleInvalidDate):
		response.BadRequest(c, 14001, "日期必须为 YYYY-MM-DD 格式")
	default:
		response.InternalError(c)
	}
}
