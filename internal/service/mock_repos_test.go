package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"gorm.io/gorm"

	"shift-scheduler/backend/internal/model"
	"shift-scheduler/backend/internal/repository"
)

// ── Mock EmployeeRepository ──

type mockEmployeeRepo struct {
	employees map[string]*model.Employee
	// assignments 供 DeleteWithAssignments 模拟级联删除
	assignments *mockAssignmentRepo
	deleteErr   error
}

func newMockEmployeeRepo(assignments *mockAssignmentRepo) *mockEmployeeRepo {
	return &mockEmployeeRepo{
		employees:   make(map[string]*model.Employee),
		assignments: assignments,
	}
}

func (m *mockEmployeeRepo) Create(_ context.Context, employee *model.Employee) error {
	if employee.EmployeeID == "" {
		employee.EmployeeID = "emp-" + employee.Name
	}
	m.employees[employee.EmployeeID] = employee
	return nil
}

func (m *mockEmployeeRepo) GetByID(_ context.Context, id string) (*model.Employee, error) {
	if e, ok := m.employees[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeeRepo) GetByEmail(_ context.Context, email string) (*model.Employee, error) {
	for _, e := range m.employees {
		if e.Email == email {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeeRepo) List(_ context.Context) ([]model.Employee, error) {
	var result []model.Employee
	for _, e := range m.employees {
		result = append(result, *e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockEmployeeRepo) DeleteWithAssignments(_ context.Context, id, employeeName, fromDate string) error {
	// 事务语义：出错时两张表都不动
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.employees, id)
	kept := m.assignments.assignments[:0]
	for _, a := range m.assignments.assignments {
		if a.EmployeeName == employeeName && a.Date >= fromDate {
			continue
		}
		kept = append(kept, a)
	}
	m.assignments.assignments = kept
	return nil
}

// ── Mock ShiftTypeRepository ──

type mockShiftTypeRepo struct {
	shifts map[string]*model.ShiftType
}

func newMockShiftTypeRepo() *mockShiftTypeRepo {
	return &mockShiftTypeRepo{shifts: make(map[string]*model.ShiftType)}
}

func (m *mockShiftTypeRepo) Create(_ context.Context, shift *model.ShiftType) error {
	if shift.ShiftTypeID == "" {
		shift.ShiftTypeID = "shift-" + shift.Name
	}
	m.shifts[shift.Name] = shift
	return nil
}

func (m *mockShiftTypeRepo) GetByName(_ context.Context, name string) (*model.ShiftType, error) {
	if s, ok := m.shifts[name]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockShiftTypeRepo) List(_ context.Context) ([]model.ShiftType, error) {
	var result []model.ShiftType
	for _, s := range m.shifts {
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StartTime < result[j].StartTime })
	return result, nil
}

// ── Mock AssignmentRepository ──

type mockAssignmentRepo struct {
	assignments []model.Assignment
	nextID      int
}

func newMockAssignmentRepo() *mockAssignmentRepo {
	return &mockAssignmentRepo{}
}

func (m *mockAssignmentRepo) ListAll(_ context.Context) ([]model.Assignment, error) {
	result := make([]model.Assignment, len(m.assignments))
	copy(result, m.assignments)
	sort.SliceStable(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result, nil
}

func (m *mockAssignmentRepo) ListByEmployeeAndDate(_ context.Context, employeeName, date string) ([]model.Assignment, error) {
	var result []model.Assignment
	for _, a := range m.assignments {
		if a.EmployeeName == employeeName && a.Date == date {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *mockAssignmentRepo) Upsert(_ context.Context, date, employeeName, shiftName string) error {
	kept := m.assignments[:0]
	for _, a := range m.assignments {
		if !(a.Date == date && a.EmployeeName == employeeName) {
			kept = append(kept, a)
		}
	}
	m.assignments = kept
	if shiftName != "" {
		m.nextID++
		m.assignments = append(m.assignments, model.Assignment{
			AssignmentID: fmt.Sprintf("assign-%d", m.nextID),
			Date:         date,
			EmployeeName: employeeName,
			ShiftName:    shiftName,
		})
	}
	return nil
}

// seed 直接写入一条排班记录，绕过 Upsert 的替换语义
func (m *mockAssignmentRepo) seed(date, employeeName, shiftName string) {
	m.nextID++
	m.assignments = append(m.assignments, model.Assignment{
		AssignmentID: fmt.Sprintf("assign-%d", m.nextID),
		Date:         date,
		EmployeeName: employeeName,
		ShiftName:    shiftName,
	})
}

// ── Mock TimeOffRepository ──

type mockTimeOffRepo struct {
	requests map[string]*model.TimeOffRequest
}

func newMockTimeOffRepo() *mockTimeOffRepo {
	return &mockTimeOffRepo{requests: make(map[string]*model.TimeOffRequest)}
}

func (m *mockTimeOffRepo) Create(_ context.Context, req *model.TimeOffRequest) error {
	if req.RequestID == "" {
		req.RequestID = "req-" + req.EmployeeName
	}
	m.requests[req.RequestID] = req
	return nil
}

func (m *mockTimeOffRepo) GetByID(_ context.Context, requestID string) (*model.TimeOffRequest, error) {
	if r, ok := m.requests[requestID]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTimeOffRepo) ListAll(_ context.Context) ([]model.TimeOffRequest, error) {
	var result []model.TimeOffRequest
	for _, r := range m.requests {
		result = append(result, *r)
	}
	return result, nil
}

func (m *mockTimeOffRepo) ListPending(_ context.Context) ([]model.TimeOffRequest, error) {
	var result []model.TimeOffRequest
	for _, r := range m.requests {
		if r.Status == model.TimeOffStatusPending {
			result = append(result, *r)
		}
	}
	return result, nil
}

func (m *mockTimeOffRepo) ListByEmail(_ context.Context, email string) ([]model.TimeOffRequest, error) {
	var result []model.TimeOffRequest
	for _, r := range m.requests {
		if r.EmployeeEmail == email {
			result = append(result, *r)
		}
	}
	return result, nil
}

func (m *mockTimeOffRepo) UpdateStatus(_ context.Context, requestID, status, decidedBy string) error {
	r, ok := m.requests[requestID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	r.Status = status
	r.DecidedBy = &decidedBy
	return nil
}

// ── Mock Notifier ──

// sentMail 记录一次通知发送
type sentMail struct {
	To      []string
	Subject string
	Body    string
}

// mockNotifier 记录所有发送；sendErr 非空时模拟发送失败
type mockNotifier struct {
	mu      sync.Mutex
	sent    []sentMail
	sendErr error
}

func (m *mockNotifier) Send(to []string, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

// ── 聚合辅助 ──

// testRepos 聚合所有 mock repo 便于 seed 数据
type testRepos struct {
	employee   *mockEmployeeRepo
	shiftType  *mockShiftTypeRepo
	assignment *mockAssignmentRepo
	timeOff    *mockTimeOffRepo
}

func newTestRepos() *testRepos {
	assignment := newMockAssignmentRepo()
	return &testRepos{
		employee:   newMockEmployeeRepo(assignment),
		shiftType:  newMockShiftTypeRepo(),
		assignment: assignment,
		timeOff:    newMockTimeOffRepo(),
	}
}

func (r *testRepos) toRepository() *repository.Repository {
	return &repository.Repository{
		Employee:   r.employee,
		ShiftType:  r.shiftType,
		Assignment: r.assignment,
		TimeOff:    r.timeOff,
	}
}
