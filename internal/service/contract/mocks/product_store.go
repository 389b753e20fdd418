package mocks

import (
	"context"

	"github.com/darkkaiser/pricewatch-server/internal/service/contract"
	"github.com/stretchr/testify/mock"
)

// MockProductStore는 contract.ProductStore 인터페이스의 Mock 구현체입니다.
type MockProductStore struct {
	mock.Mock
}

// FindAll 추적중인 전체 상품을 조회하는 Mock 메서드입니다.
func (m *MockProductStore) FindAll(ctx context.Context) ([]contract.TrackedProduct, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]contract.TrackedProduct), args.Error(1)
}

// FindByKey 정규화 URL로 상품을 조회하는 Mock 메서드입니다.
func (m *MockProductStore) FindByKey(ctx context.Context, normalizedURL string) (*contract.TrackedProduct, error) {
	args := m.Called(ctx, normalizedURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contract.TrackedProduct), args.Error(1)
}

// FindByID 상품 ID로 상품을 조회하는 Mock 메서드입니다.
func (m *MockProductStore) FindByID(ctx context.Context, id contract.ProductID) (*contract.TrackedProduct, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contract.TrackedProduct), args.Error(1)
}

// Upsert 상품을 저장하는 Mock 메서드입니다.
func (m *MockProductStore) Upsert(ctx context.Context, product *contract.TrackedProduct) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}
