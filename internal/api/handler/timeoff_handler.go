package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"shift-scheduler/backend/internal/dto"
	"shift-scheduler/backend/internal/service"
	"shift-scheduler/backend/pkg/response"
)

// TimeOffHandler 调休模块 HTTP 处理器
type TimeOffHandler struct {
	timeOffSvc service.TimeOffService
}

// NewTimeOffHandler 创建 TimeOffHandler
func NewTimeOffHandler(timeOffSvc service.TimeOffService) *TimeOffHandler {
	return &TimeOffHandler{timeOffSvc: timeOffSvc}
}

// Submit 提交调休申请
// POST /api/v1/timeoff
func (h *TimeOffHandler) Submit(c *gin.Context) {
	var req dto.SubmitTimeOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}
	if req.EndDate < req.StartDate {
		response.BadRequest(c, 15001, "结束日期不能早于开始日期")
		return
	}

	employeeID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	result, err := h.timeOffSvc.Submit(c.Request.Context(), employeeID, &req)
	if err != nil {
		h.handleTimeOffError(c, err)
		return
	}

	response.Created(c, result)
}

// ListMine 当前员工的调休申请列表
// GET /api/v1/timeoff/mine
func (h *TimeOffHandler) ListMine(c *gin.Context) {
	email, ok := MustGetEmail(c)
	if !ok {
		return
	}

	result, err := h.timeOffSvc.ListMine(c.Request.Context(), email)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// ListPending 待审批调休申请列表（管理员）
// GET /api/v1/timeoff/pending
func (h *TimeOffHandler) ListPending(c *gin.Context) {
	result, err := h.timeOffSvc.ListPending(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Decide 审批调休申请（管理员）
// PATCH /api/v1/timeoff/:id
func (h *TimeOffHandler) Decide(c *gin.Context) {
	requestID := c.Param("id")
	if requestID == "" {
		response.BadRequest(c, 10001, "申请 ID 不能为空")
		return
	}

	var req dto.DecideTimeOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	deciderEmail, ok := MustGetEmail(c)
	if !ok {
		return
	}

	result, err := h.timeOffSvc.Decide(c.Request.Context(), requestID, &req, deciderEmail)
	if err != nil {
		h.handleTimeOffError(c, err)
		return
	}
	response.OK(c, result)
}

func (h *TimeOffHandler) handleTimeOffError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmployeeNotFound):
		response.NotFound(c, 12001, "员工不存在")
	case errors.Is(err, service.ErrTimeOffNotFound):
		response.NotFound(c, 15002, "调休申请不存在")
	case errors.Is(err, service.ErrTimeOffAlreadyDecided):
		response.Conflict(c, 15003, "调休申请已审批，状态不可再变更")
	case errors.Is(err, service.ErrTimeOffInvalidStatus):
		response.BadRequest(c, 15004, "审批状态只能为 Approved 或 Denied")
	default:
		response.InternalError(c)
	}
}
