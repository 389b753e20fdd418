package mocks

import (
	"context"

	"github.com/darkkaiser/pricewatch-server/internal/service/contract"
	"github.com/stretchr/testify/mock"
)

// MockRateStore는 contract.RateStore 인터페이스의 Mock 구현체입니다.
type MockRateStore struct {
	mock.Mock
}

// LoadSnapshot 환율 스냅샷을 불러오는 Mock 메서드입니다.
func (m *MockRateStore) LoadSnapshot(ctx context.Context) (*contract.ExchangeRateSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contract.ExchangeRateSnapshot), args.Error(1)
}

// SaveSnapshot 환율 스냅샷을 저장하는 Mock 메서드입니다.
func (m *MockRateStore) SaveSnapshot(ctx context.Context, snapshot *contract.ExchangeRateSnapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}
