package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func setupTestExportService() (ExportService, *testRepos) {
	repos := newTestRepos()
	svc := NewExportService(repos.toRepository(), time.UTC, zap.NewNop())
	return svc, repos
}

func TestExportWeekExcel(t *testing.T) {
	svc, repos := setupTestExportService()
	seedWeekData(repos)

	buf, filename, err := svc.ExportWeekExcel(context.Background(), "2024-01-15")
	if err != nil {
		t.Fatalf("ExportWeekExcel 失败: %v", err)
	}
	if filename != "schedule_2024-01-15.xlsx" {
		t.Errorf("期望文件名 schedule_2024-01-15.xlsx，实际=%s", filename)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("导出内容不是合法的 Excel: %v", err)
	}
	defer f.Close()

	sheetName := "Schedule 01-15 to 01-21"
	if idx, _ := f.GetSheetIndex(sheetName); idx == -1 {
		t.Fatalf("期望工作表 %q，实际=%v", sheetName, f.GetSheetList())
	}

	// 表头：Staff + 七天
	if v, _ := f.GetCellValue(sheetName, "A1"); v != "Staff" {
		t.Errorf("期望 A1=Staff，实际=%s", v)
	}
	if v, _ := f.GetCellValue(sheetName, "B1"); v != "Mon, Jan 15" {
		t.Errorf("期望 B1=Mon, Jan 15，实际=%s", v)
	}
	if v, _ := f.GetCellValue(sheetName, "H1"); v != "Sun, Jan 21" {
		t.Errorf("期望 H1=Sun, Jan 21，实际=%s", v)
	}

	// 员工按姓名排序，每人两行：Alice 第 2/3 行，Bob 第 4/5 行
	if v, _ := f.GetCellValue(sheetName, "A2"); v != "Alice" {
		t.Errorf("期望 A2=Alice，实际=%s", v)
	}
	if v, _ := f.GetCellValue(sheetName, "A3"); v != "Manager" {
		t.Errorf("期望 A3=Manager，实际=%s", v)
	}
	if v, _ := f.GetCellValue(sheetName, "B2"); v != "9:00 AM - 5:00 PM" {
		t.Errorf("期望 Alice 周一格为 9:00 AM - 5:00 PM，实际=%s", v)
	}
	if v, _ := f.GetCellValue(sheetName, "C2"); v != "10:00 PM - 6:00 AM" {
		t.Errorf("期望 Alice 周二格为跨夜班时间，实际=%s", v)
	}
	// Bob 周三调休
	if v, _ := f.GetCellValue(sheetName, "D4"); v != "Time Off" {
		t.Errorf("期望 Bob 周三格为 Time Off，实际=%s", v)
	}
}

func TestExportWeekExcelInvalidDate(t *testing.T) {
	svc, _ := setupTestExportService()

	_, _, err := svc.ExportWeekExcel(context.Background(), "bad-date")
	if !errors.Is(err, ErrScheduleInvalidDate) {
		t.Errorf("期望 ErrScheduleInvalidDate，实际=%v", err)
	}
}

func TestExportMyWeekICS(t *testing.T) {
	svc, repos := setupTestExportService()
	seedWeekData(repos)

	buf, filename, err := svc.ExportMyWeekICS(context.Background(), "bob@example.com", "2024-01-15")
	if err != nil {
		t.Fatalf("ExportMyWeekICS 失败: %v", err)
	}
	if filename != "my_schedule_2024-01-15.ics" {
		t.Errorf("期望文件名 my_schedule_2024-01-15.ics，实际=%s", filename)
	}

	content := buf.String()
	if !strings.Contains(content, "BEGIN:VCALENDAR") {
		t.Fatal("期望输出为 iCalendar 格式")
	}
	// Bob：1 条班次 + 2 天调休 = 3 个事件
	if n := strings.Count(content, "BEGIN:VEVENT"); n != 3 {
		t.Errorf("期望 3 个事件，实际=%d", n)
	}
	if !strings.Contains(content, "SUMMARY:Day") {
		t.Error("期望包含 Day 班次事件")
	}
	if !strings.Contains(content, "SUMMARY:Time Off") {
		t.Error("期望包含调休全天事件")
	}
}

func TestExportMyWeekICSNoEntries(t *testing.T) {
	svc, repos := setupTestExportService()
	seedWeekData(repos)

	_, _, err := svc.ExportMyWeekICS(context.Background(), "nobody@example.com", "2024-01-15")
	if !errors.Is(err, ErrExportNoEntries) {
		t.Errorf("期望 ErrExportNoEntries，实际=%v", err)
	}
}
