package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"shift-scheduler/backend/internal/dto"
	"shift-scheduler/backend/internal/service"
	"shift-scheduler/backend/pkg/response"
)

// ShiftHandler 班次类型模块 HTTP 处理器
type ShiftHandler struct {
	shiftSvc service.ShiftService
}

// NewShiftHandler 创建 ShiftHandler
func NewShiftHandler(shiftSvc service.ShiftService) *ShiftHandler {
	return &ShiftHandler{shiftSvc: shiftSvc}
}

// Create 新增班次类型（管理员）
// POST /api/v1/shifts
func (h *ShiftHandler) Create(c *gin.Context) {
	var req dto.CreateShiftTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	creatorID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	result, err := h.shiftSvc.Create(c.Request.Context(), &req, creatorID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrShiftInvalidClock):
			response.BadRequest(c, 13001, "班次时刻必须为 HH:mm 格式")
		case errors.Is(err, service.ErrShiftNameExists):
			response.Conflict(c, 13002, "同名班次已存在")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, result)
}

// List 班次类型列表
// GET /api/v1/shifts
func (h *ShiftHandler) List(c *gin.Context) {
	result, err := h.shiftSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}
