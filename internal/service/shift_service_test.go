package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"shift-scheduler/backend/internal/dto"
	"shift-scheduler/backend/internal/model"
)

func setupTestShiftService() (ShiftService, *testRepos) {
	repos := newTestRepos()
	svc := NewShiftService(repos.toRepository(), zap.NewNop())
	return svc, repos
}

func TestCreateShiftType(t *testing.T) {
	svc, _ := setupTestShiftService()

	resp, err := svc.Create(context.Background(), &dto.CreateShiftTypeRequest{
		Name: "Day", StartTime: "09:00", EndTime: "17:00",
	}, "emp-admin")
	if err != nil {
		t.Fatalf("Create 失败: %v", err)
	}
	if resp.Hours != 8.0 {
		t.Errorf("期望时长 8.0，实际=%v", resp.Hours)
	}
	if resp.Overnight {
		t.Error("日班不应标记为跨夜")
	}
}

func TestCreateShiftTypeOvernight(t *testing.T) {
	svc, _ := setupTestShiftService()

	resp, err := svc.Create(context.Background(), &dto.CreateShiftTypeRequest{
		Name: "Night", StartTime: "22:00", EndTime: "06:00",
	}, "emp-admin")
	if err != nil {
		t.Fatalf("Create 失败: %v", err)
	}
	if resp.Hours != 8.0 {
		t.Errorf("期望跨夜回绕后的时长 8.0，实际=%v", resp.Hours)
	}
	if !resp.Overnight {
		t.Error("结束早于开始的班次应标记为跨夜")
	}
}

func TestCreateShiftTypeInvalidClock(t *testing.T) {
	svc, _ := setupTestShiftService()

	_, err := svc.Create(context.Background(), &dto.CreateShiftTypeRequest{
		Name: "Bad", StartTime: "9am", EndTime: "17:00",
	}, "emp-admin")
	if !errors.Is(err, ErrShiftInvalidClock) {
		t.Errorf("期望 ErrShiftInvalidClock，实际=%v", err)
	}
}

func TestCreateShiftTypeDuplicateName(t *testing.T) {
	svc, repos := setupTestShiftService()
	repos.shiftType.shifts["Day"] = &model.ShiftType{
		ShiftTypeID: "shift-Day", Name: "Day", StartTime: "09:00", EndTime: "17:00",
	}

	_, err := svc.Create(context.Background(), &dto.CreateShiftTypeRequest{
		Name: "Day", StartTime: "10:00", EndTime: "18:00",
	}, "emp-admin")
	if !errors.Is(err, ErrShiftNameExists) {
		t.Errorf("期望 ErrShiftNameExists，实际=%v", err)
	}
}
