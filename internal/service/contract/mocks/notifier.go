package mocks

import (
	"context"

	"github.com/darkkaiser/pricewatch-server/internal/service/contract"
	"github.com/stretchr/testify/mock"
)

// MockMailSender는 contract.MailSender 인터페이스의 Mock 구현체입니다.
type MockMailSender struct {
	mock.Mock
}

// Send 메일을 발송하는 Mock 메서드입니다.
func (m *MockMailSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	args := m.Called(ctx, to, subject, htmlBody)
	return args.Error(0)
}

// MockAdminNotifier는 contract.AdminNotifier 인터페이스의 Mock 구현체입니다.
type MockAdminNotifier struct {
	mock.Mock
}

// NotifyAdmin 관리자 알림 메시지를 전송하는 Mock 메서드입니다.
func (m *MockAdminNotifier) NotifyAdmin(ctx context.Context, message string) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

// NotifyAdminWithError 오류 정보가 포함된 관리자 알림 메시지를 전송하는 Mock 메서드입니다.
func (m *MockAdminNotifier) NotifyAdminWithError(ctx context.Context, message string, err error) error {
	args := m.Called(ctx, message, err)
	return args.Error(0)
}

// MockCurrencyConverter는 contract.CurrencyConverter 인터페이스의 Mock 구현체입니다.
type MockCurrencyConverter struct {
	mock.Mock
}

// ToBase 금액을 기준 통화로 변환하는 Mock 메서드입니다.
func (m *MockCurrencyConverter) ToBase(amount float64, currencySymbol string) float64 {
	args := m.Called(amount, currencySymbol)
	return args.Get(0).(float64)
}

// MockBatchRunner는 contract.BatchRunner 인터페이스의 Mock 구현체입니다.
type MockBatchRunner struct {
	mock.Mock
}

// Run 배치 작업을 실행하는 Mock 메서드입니다.
func (m *MockBatchRunner) Run(ctx context.Context) (*contract.BatchSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contract.BatchSummary), args.Error(1)
}

// RunStream 진행 상황 콜백과 함께 배치 작업을 실행하는 Mock 메서드입니다.
func (m *MockBatchRunner) RunStream(ctx context.Context, progressFn contract.BatchProgressFunc) (*contract.BatchSummary, error) {
	args := m.Called(ctx, progressFn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contract.BatchSummary), args.Error(1)
}
