package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"shift-scheduler/backend/internal/model"
	"shift-scheduler/backend/internal/repository"
	"shift-scheduler/backend/internal/schedule"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoEntries    = errors.New("本周没有可导出的个人日程")
	ErrExportGenerateFail = errors.New("生成导出文件失败")
)

// roleColors 排班表里按角色填充的底色
var roleColors = map[string]string{
	"Manager":           "#AED6F1",
	"Assistant Manager": "#F7DC6F",
	"Supervisor":        "#F1948A",
	"Sales Associate":   "#D7BDE2",
	"Cashier":           "#F5B041",
	"Trainee":           "#A9DFBF",
}

const defaultRoleColor = "#EEEEEE"

// ExportService 导出业务接口
//
// 设计说明：
//   - Excel 导出面向管理端：整周的员工 × 日期网格，角色着色
//   - ICS 导出面向员工个人：自己的班次与调休，可订阅到日历
//   - 均以 bytes.Buffer 返回，由 Handler 层设置响应头后写入 Response
type ExportService interface {
	// ExportWeekExcel 导出一周排班表为 Excel
	ExportWeekExcel(ctx context.Context, weekStart string) (*bytes.Buffer, string, error)
	// ExportMyWeekICS 导出员工个人一周日程为 iCalendar
	ExportMyWeekICS(ctx context.Context, email, weekStart string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	loc    *time.Location
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, loc *time.Location, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, loc: loc, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportWeekExcel — 导出一周排班表为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - Sheet "Schedule 01-15 to 01-21"（周一 / 周日的 MM-dd）
//   - 列头：Staff + 七天（"Mon, Jan 15"）
//   - 每个员工占两行：姓名行放各日班次时间（"9:00 AM - 5:00 PM"），
//     角色行放角色名；首列两行均按角色着色
//   - 调休日显示 "Time Off"；引用未知班次的记录回退显示班次名
//
// 返回值：buf（Excel 内容）, filename（建议文件名）, error

func (s *exportService) ExportWeekExcel(ctx context.Context, weekStart string) (*bytes.Buffer, string, error) {
	result, snapshot, err := assembleWeek(ctx, s.repo, s.loc, s.logger, weekStart)
	if err != nil {
		return nil, "", err
	}

	days := result.Week.Days()

	// 索引：班次目录、(日期, 员工) → 排班、(日期, 邮箱) → 调休
	shiftByName := make(map[string]model.ShiftType, len(snapshot.shifts))
	for _, st := range snapshot.shifts {
		shiftByName[st.Name] = st
	}
	assignmentAt := make(map[string]string, len(result.Assignments))
	for _, a := range result.Assignments {
		assignmentAt[a.Date+"|"+a.EmployeeName] = a.ShiftName
	}
	timeOffAt := make(map[string]bool, len(result.TimeOffEntries))
	for _, e := range result.TimeOffEntries {
		timeOffAt[e.Date+"|"+e.EmployeeEmail] = true
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := fmt.Sprintf("Schedule %s to %s",
		result.Week.Start.Format("01-02"), result.Week.End.Format("01-02"))
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		s.logger.Error("创建工作表失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	// 删除默认 Sheet1
	f.DeleteSheet("Sheet1")

	// 列宽：首列放姓名/角色，七天等宽
	f.SetColWidth(sheetName, "A", "A", 20)
	f.SetColWidth(sheetName, "B", "H", 19)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	cellStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 角色底色样式按需创建并缓存
	roleStyles := make(map[string]int)
	styleForRole := func(role string) int {
		if id, ok := roleStyles[role]; ok {
			return id
		}
		color, ok := roleColors[role]
		if !ok {
			color = defaultRoleColor
		}
		id, _ := f.NewStyle(&excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 10},
			Fill:      excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		})
		roleStyles[role] = id
		return id
	}

	// 表头
	f.SetCellValue(sheetName, "A1", "Staff")
	for i, d := range days {
		f.SetCellValue(sheetName, exportCell(2+i, 1), d.Format("Mon, Jan 2"))
	}
	f.SetCellStyle(sheetName, "A1", exportCell(1+len(days), 1), headerStyle)

	// 数据区：每个员工两行（姓名行 + 角色行）
	row := 2
	for i := range snapshot.employees {
		emp := &snapshot.employees[i]
		nameRow, roleRow := row, row+1

		f.SetCellValue(sheetName, exportCell(1, nameRow), emp.Name)
		f.SetCellValue(sheetName, exportCell(1, roleRow), emp.Role)
		roleStyle := styleForRole(emp.Role)
		f.SetCellStyle(sheetName, exportCell(1, nameRow), exportCell(1, roleRow), roleStyle)

		for j, d := range days {
			date := d.Format(schedule.DateLayout)
			text := ""
			if shiftName, ok := assignmentAt[date+"|"+emp.Name]; ok {
				text = shiftCellText(shiftName, shiftByName)
			} else if timeOffAt[date+"|"+emp.Email] {
				text = schedule.TimeOffLabel
			}
			if text != "" {
				f.SetCellValue(sheetName, exportCell(2+j, nameRow), text)
			}
			f.SetCellStyle(sheetName, exportCell(2+j, nameRow), exportCell(2+j, roleRow), cellStyle)
		}
		row += 2
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("schedule_%s.xlsx", result.Week.Start.Format(schedule.DateLayout))
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ExportMyWeekICS — 导出员工个人一周日程为 iCalendar
// ═══════════════════════════════════════════════════════════
//
// 班次生成带起止时刻的事件（跨夜班次结束时间顺延到次日）；
// 调休日生成全天事件。引用未知班次的条目已在装配层省略。

func (s *exportService) ExportMyWeekICS(ctx context.Context, email, weekStart string) (*bytes.Buffer, string, error) {
	result, _, err := assembleWeek(ctx, s.repo, s.loc, s.logger, weekStart)
	if err != nil {
		return nil, "", err
	}

	entries, errs := result.EmployeeSchedule(email)
	for _, e := range errs {
		s.logger.Warn("个人日程导出装配告警", zap.String("email", email), zap.Error(e))
	}
	if len(entries) == 0 {
		return nil, "", ErrExportNoEntries
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//shift-scheduler//week-export//EN")

	now := time.Now().In(s.loc)
	for _, entry := range entries {
		day, err := schedule.ParseDate(entry.Date, s.loc)
		if err != nil {
			continue
		}

		event := cal.AddEvent(uuid.NewString() + "@shift-scheduler")
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)

		if entry.Kind == schedule.EntryKindTimeOff {
			event.SetAllDayStartAt(day)
			event.SetAllDayEndAt(day.AddDate(0, 0, 1))
			event.SetSummary(schedule.TimeOffLabel)
			continue
		}

		start, err := clockOn(day, entry.Start, s.loc)
		if err != nil {
			continue
		}
		end, err := clockOn(day, entry.End, s.loc)
		if err != nil {
			continue
		}
		// 跨夜班次：结束时刻不晚于开始时刻时顺延到次日
		if !end.After(start) {
			end = end.AddDate(0, 0, 1)
		}
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(entry.ShiftName)
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("my_schedule_%s.ics", result.Week.Start.Format(schedule.DateLayout))
	return buf, filename, nil
}

// ── 辅助函数 ──

// shiftCellText 单元格展示文本："9:00 AM - 5:00 PM"；未知班次回退班次名
func shiftCellText(shiftName string, shiftByName map[string]model.ShiftType) string {
	st, ok := shiftByName[shiftName]
	if !ok {
		return shiftName
	}
	start, err1 := time.Parse("15:04", st.StartTime)
	end, err2 := time.Parse("15:04", st.EndTime)
	if err1 != nil || err2 != nil {
		return shiftName
	}
	return start.Format("3:04 PM") + " - " + end.Format("3:04 PM")
}

// clockOn 把 HH:mm 时刻落到指定日期上
func clockOn(day time.Time, clock string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation("15:04", clock, loc)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
}

func exportCell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
