package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"shift-scheduler/backend/config"
	"shift-scheduler/backend/internal/dto"
	"shift-scheduler/backend/internal/model"
	"shift-scheduler/backend/internal/repository"
	"shift-scheduler/backend/internal/schedule"
	"shift-scheduler/backend/pkg/mailer"
)

// ── 调休模块业务错误 ──

var (
	ErrTimeOffNotFound       = errors.New("调休申请不存在")
	ErrTimeOffAlreadyDecided = errors.New("调休申请已审批，状态不可再变更")
	ErrTimeOffInvalidStatus  = errors.New("审批状态只能为 Approved 或 Denied")
)

// ── TimeOffService 接口 ───────────────────────────────────
//
// 设计说明：
//   - 提交后状态为 Pending，管理员置为 Approved / Denied 即终态。
//   - 邮件通知是尽力而为的旁路：发送失败记日志后继续，
//     申请/审批本身照常落库（与来源系统行为一致）。
// ─────────────────────────────────────────────────────────────

// TimeOffService 调休业务接口
type TimeOffService interface {
	// Submit 员工提交调休申请，并尽力通知所有管理员
	Submit(ctx context.Context, employeeID string, req *dto.SubmitTimeOffRequest) (*dto.TimeOffResponse, error)
	// Decide 管理员审批，Pending → Approved/Denied 终态
	Decide(ctx context.Context, requestID string, req *dto.DecideTimeOffRequest, deciderEmail string) (*dto.TimeOffResponse, error)
	ListPending(ctx context.Context) ([]dto.TimeOffResponse, error)
	ListMine(ctx context.Context, email string) ([]dto.TimeOffResponse, error)
}

type timeOffService struct {
	cfg      *config.Config
	repo     *repository.Repository
	notifier mailer.Notifier
	logger   *zap.Logger
}

// NewTimeOffService 创建 TimeOffService 实例
func NewTimeOffService(
	cfg *config.Config,
	repo *repository.Repository,
	notifier mailer.Notifier,
	logger *zap.Logger,
) TimeOffService {
	return &timeOffService{
		cfg:      cfg,
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *timeOffService) Submit(ctx context.Context, employeeID string, req *dto.SubmitTimeOffRequest) (*dto.TimeOffResponse, error) {
	employee, err := s.repo.Employee.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}

	timeOff := model.TimeOffRequest{
		RequestID:     uuid.New().String(),
		EmployeeName:  employee.Name,
		EmployeeEmail: employee.Email,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Reason:        req.Reason,
		Status:        model.TimeOffStatusPending,
		RequestDate:   time.Now(),
	}
	if err := s.repo.TimeOff.Create(ctx, &timeOff); err != nil {
		s.logger.Error("创建调休申请失败", zap.Error(err))
		return nil, err
	}

	// 尽力通知管理员；失败不回滚已提交的申请
	s.notifyManagers(ctx, &timeOff)

	resp := toTimeOffResponse(&timeOff)
	return &resp, nil
}

func (s *timeOffService) Decide(ctx context.Context, requestID string, req *dto.DecideTimeOffRequest, deciderEmail string) (*dto.TimeOffResponse, error) {
	if req.Status != model.TimeOffStatusApproved && req.Status != model.TimeOffStatusDenied {
		return nil, ErrTimeOffInvalidStatus
	}

	timeOff, err := s.repo.TimeOff.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTimeOffNotFound
		}
		return nil, err
	}
	if timeOff.Status != model.TimeOffStatusPending {
		return nil, ErrTimeOffAlreadyDecided
	}

	if err := s.repo.TimeOff.UpdateStatus(ctx, requestID, req.Status, deciderEmail); err != nil {
		s.logger.Error("更新调休状态失败", zap.Error(err))
		return nil, err
	}
	timeOff.Status = req.Status
	timeOff.DecidedBy = &deciderEmail

	// 尽力通知申请人；失败不影响已生效的审批
	subject := fmt.Sprintf("调休申请已%s", statusLabel(req.Status))
	body := fmt.Sprintf("你的调休申请（%s ~ %s）已被%s。",
		timeOff.StartDate, timeOff.EndDate, statusLabel(req.Status))
	if err := s.notifier.Send([]string{timeOff.EmployeeEmail}, subject, body); err != nil {
		s.logger.Warn("审批结果通知发送失败",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
	}

	resp := toTimeOffResponse(timeOff)
	return &resp, nil
}

func (s *timeOffService) ListPending(ctx context.Context) ([]dto.TimeOffResponse, error) {
	reqs, err := s.repo.TimeOff.ListPending(ctx)
	if err != nil {
		s.logger.Error("查询待审批调休失败", zap.Error(err))
		return nil, err
	}
	return toTimeOffResponses(reqs), nil
}

func (s *timeOffService) ListMine(ctx context.Context, email string) ([]dto.TimeOffResponse, error) {
	reqs, err := s.repo.TimeOff.ListByEmail(ctx, email)
	if err != nil {
		s.logger.Error("查询个人调休失败", zap.Error(err))
		return nil, err
	}
	return toTimeOffResponses(reqs), nil
}

// notifyManagers 向全部授权角色员工发送新申请通知
func (s *timeOffService) notifyManagers(ctx context.Context, timeOff *model.TimeOffRequest) {
	employees, err := s.repo.Employee.List(ctx)
	if err != nil {
		s.logger.Warn("查询管理员列表失败，跳过通知", zap.Error(err))
		return
	}

	var to []string
	for _, e := range employees {
		if schedule.IsAuthorizedRole(e.Role, s.cfg.Schedule.AuthorizedRoles) {
			to = append(to, e.Email)
		}
	}
	if len(to) == 0 {
		return
	}

	subject := fmt.Sprintf("新调休申请：%s", timeOff.EmployeeName)
	body := fmt.Sprintf("%s 提交了调休申请（%s ~ %s）。\n事由：%s",
		timeOff.EmployeeName, timeOff.StartDate, timeOff.EndDate, timeOff.Reason)
	if err := s.notifier.Send(to, subject, body); err != nil {
		s.logger.Warn("新申请通知发送失败",
			zap.Error(err),
			zap.String("request_id", timeOff.RequestID),
		)
	}
}

func statusLabel(status string) string {
	if status == model.TimeOffStatusApproved {
		return "批准"
	}
	return "驳回"
}

// ── 响应转换器 ──

func toTimeOffResponse(t *model.TimeOffRequest) dto.TimeOffResponse {
	resp := dto.TimeOffResponse{
		RequestID:     t.RequestID,
		EmployeeName:  t.EmployeeName,
		EmployeeEmail: t.EmployeeEmail,
		StartDate:     t.StartDate,
		EndDate:       t.EndDate,
		Reason:        t.Reason,
		Status:        t.Status,
		RequestDate:   t.RequestDate.Format(time.RFC3339),
	}
	if t.DecidedBy != nil {
		resp.DecidedBy = *t.DecidedBy
	}
	return resp
}

func toTimeOffResponses(reqs []model.TimeOffRequest) []dto.TimeOffResponse {
	result := make([]dto.TimeOffResponse, 0, len(reqs))
	for i := range reqs {
		result = append(result, toTimeOffResponse(&reqs[i]))
	}
	return result
}
