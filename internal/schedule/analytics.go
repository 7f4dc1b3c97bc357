package schedule

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"shift-scheduler/backend/internal/model"
)

// ShiftDuration 计算班次时长（小时）
// 结束早于等于开始视为跨夜班次，时长加 24 小时补偿。
// 展示层复用班次起止时间时必须套用同一回绕规则，否则会出现负时长
func ShiftDuration(start, end string) (float64, error) {
	startMin, err := parseClock(start)
	if err != nil {
		return 0, err
	}
	endMin, err := parseClock(end)
	if err != nil {
		return 0, err
	}

	hours := float64(endMin-startMin) / 60
	if hours < 0 {
		hours += 24
	}
	return hours, nil
}

// parseClock 解析 HH:mm 为自零点起的分钟数
func parseClock(clock string) (int, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("非法的时刻格式 %q", clock)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("非法的时刻格式 %q", clock)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("非法的时刻格式 %q", clock)
	}
	return h*60 + m, nil
}

// WorkloadItem 单个员工的周工时
type WorkloadItem struct {
	EmployeeName string  `json:"employee_name"`
	Hours        float64 `json:"hours"` // 保留一位小数
}

// DistributionItem 单个班次的指派次数
type DistributionItem struct {
	ShiftName string `json:"shift_name"`
	Count     int    `json:"count"`
}

// Report 周排班统计
type Report struct {
	Workload        []WorkloadItem     `json:"workload"`         // 按工时降序
	Distribution    []DistributionItem `json:"distribution"`     // 按次数降序
	CoveragePercent int                `json:"coverage_percent"` // 占用槽位 / (员工数×7)，取整
}

// Analyze 计算一周排班的工时、班次分布与覆盖率
// 引用未知班次的记录在工时统计中静默跳过（个人课表侧才报错）；
// 员工数为 0 时覆盖率为 0，不会除零
func Analyze(assignments []model.Assignment, employees []model.Employee, shifts []model.ShiftType) Report {
	shiftByName := make(map[string]model.ShiftType, len(shifts))
	for _, s := range shifts {
		shiftByName[s.Name] = s
	}

	hoursByEmployee := make(map[string]float64)
	countByShift := make(map[string]int)
	for _, a := range assignments {
		countByShift[a.ShiftName]++

		shift, ok := shiftByName[a.ShiftName]
		if !ok {
			continue
		}
		hours, err := ShiftDuration(shift.StartTime, shift.EndTime)
		if err != nil {
			continue
		}
		hoursByEmployee[a.EmployeeName] += hours
	}

	workload := make([]WorkloadItem, 0, len(hoursByEmployee))
	for name, hours := range hoursByEmployee {
		workload = append(workload, WorkloadItem{
			EmployeeName: name,
			Hours:        math.Round(hours*10) / 10,
		})
	}
	sort.SliceStable(workload, func(i, j int) bool {
		if workload[i].Hours != workload[j].Hours {
			return workload[i].Hours > workload[j].Hours
		}
		return workload[i].EmployeeName < workload[j].EmployeeName
	})

	distribution := make([]DistributionItem, 0, len(countByShift))
	for name, count := range countByShift {
		distribution = append(distribution, DistributionItem{ShiftName: name, Count: count})
	}
	sort.SliceStable(distribution, func(i, j int) bool {
		if distribution[i].Count != distribution[j].Count {
			return distribution[i].Count > distribution[j].Count
		}
		return distribution[i].ShiftName < distribution[j].ShiftName
	})

	coverage := 0
	if len(employees) > 0 {
		occupied := len(assignments)
		coverage = int(math.Round(float64(occupied) / float64(len(employees)*7) * 100))
	}

	return Report{
		Workload:        workload,
		Distribution:    distribution,
		CoveragePercent: coverage,
	}
}
