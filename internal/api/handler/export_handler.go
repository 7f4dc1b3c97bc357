package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"shift-scheduler/backend/internal/service"
	"shift-scheduler/backend/pkg/response"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeICS  = "text/calendar; charset=utf-8"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportWeek 导出一周排班表为 Excel（管理员）
// GET /api/v1/export/week?date=2024-01-15
func (h *ExportHandler) ExportWeek(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportWeekExcel(c.Request.Context(), c.Query("date"))
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	writeDownloadHeaders(c, filename, contentTypeXLSX)
	c.Data(http.StatusOK, contentTypeXLSX, buf.Bytes())
}

// ExportMyWeek 导出当前员工的一周日程为 iCalendar
// GET /api/v1/export/me?date=2024-01-15
func (h *ExportHandler) ExportMyWeek(c *gin.Context) {
	email, ok := MustGetEmail(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportMyWeekICS(c.Request.Context(), email, c.Query("date"))
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	writeDownloadHeaders(c, filename, contentTypeICS)
	c.Data(http.StatusOK, contentTypeICS, buf.Bytes())
}

func writeDownloadHeaders(c *gin.Context, filename, contentType string) {
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Header("Content-Type", contentType)
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrScheduleInvalidDate):
		response.BadRequest(c, 14001, "日期必须为 YYYY-MM-DD 格式")
	case errors.Is(err, service.ErrExportNoEntries):
		response.NotFound(c, 16001, "本周没有可导出的个人日程")
	case errors.Is(err, service.ErrExportGenerateFail):
		response.InternalError(c)
	default:
		response.InternalError(c)
	}
}
