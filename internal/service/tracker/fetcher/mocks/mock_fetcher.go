package mocks

import (
	"net/http"

	"github.com/stretchr/testify/mock"
)

// MockFetcher는 fetcher.Fetcher 인터페이스의 Mock 구현체입니다.
type MockFetcher struct {
	mock.Mock
}

// Do HTTP 요청을 수행하는 Mock 메서드입니다.
func (m *MockFetcher) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Response), args.Error(1)
}
