package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/darkkaiser/pricewatch-server/internal/service/api/httputil"
	"github.com/darkkaiser/pricewatch-server/internal/service/api/model/response"
	"github.com/darkkaiser/pricewatch-server/internal/service/contract"
	contractmocks "github.com/darkkaiser/pricewatch-server/internal/service/contract/mocks"
	"github.com/darkkaiser/pricewatch-server/internal/service/tracker"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Test Helpers
// =============================================================================

// MockProductTracker ProductTracker 인터페이스의 Mock 구현체입니다.
type MockProductTracker struct {
	mock.Mock
}

func (m *MockProductTracker) Track(ctx context.Context, rawURL, subscriberEmail string) (*tracker.TrackResult, error) {
	args := m.Called(ctx, rawURL, subscriberEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tracker.TrackResult), args.Error(1)
}

func (m *MockProductTracker) Unsubscribe(ctx context.Context, id contract.ProductID, subscriberEmail string) (*tracker.UnsubscribeResult, error) {
	args := m.Called(ctx, id, subscriberEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tracker.UnsubscribeResult), args.Error(1)
}

func (m *MockProductTracker) ListProducts(ctx context.Context) ([]contract.TrackedProduct, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]contract.TrackedProduct), args.Error(1)
}

func (m *MockProductTracker) GetProduct(ctx context.Context, id contract.ProductID) (*contract.TrackedProduct, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contract.TrackedProduct), args.Error(1)
}

// setupTestHandler 테스트용 핸들러와 Mock을 생성합니다.
func setupTestHandler(t *testing.T) (*Handler, *contractmocks.MockBatchRunner, *MockProductTracker) {
	t.Helper()

	mockRunner := &contractmocks.MockBatchRunner{}
	mockTracker := &MockProductTracker{}
	h := NewHandler(mockRunner, mockTracker)

	return h, mockRunner, mockTracker
}

// createTestContext 테스트용 echo Context와 ResponseRecorder를 생성합니다.
// body가 문자열이면 그대로, 그 외에는 JSON으로 직렬화하여 요청 본문으로 사용합니다.
func createTestContext(t *testing.T, method, url string, body interface{}) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	e := echo.New()

	var bodyBytes []byte
	if s, ok := body.(string); ok {
		bodyBytes = []byte(s)
	} else if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err, "Body marshaling failed")
		bodyBytes = b
	}

	req := httptest.NewRequest(method, url, strings.NewReader(string(bodyBytes)))
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return rec, c
}

// executeHandler 핸들러를 실행하고, 에러가 반환되면 전역 에러 핸들러로 응답을 완성합니다.
// 실제 서버에서 에러가 클라이언트 응답으로 변환되는 전체 흐름을 재현합니다.
func executeHandler(t *testing.T, handlerFunc echo.HandlerFunc, c echo.Context) {
	t.Helper()

	if err := handlerFunc(c); err != nil {
		httputil.ErrorHandler(err, c)
	}
}

// decodeErrResponse 응답 본문을 ErrorResponse로 디코딩합니다.
func decodeErrResponse(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()

	var errResp response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	return errResp
}

// newTestProduct 테스트용 추적 상품을 생성합니다.
func newTestProduct(id contract.ProductID) *contract.TrackedProduct {
	return &contract.TrackedProduct{
		ID:            id,
		NormalizedURL: "www.example-shop.com/product/12345",
		SourceURL:     "https://www.example-shop.com/product/12345",
		Title:         "테스트 상품",
		Currency:      "EUR",
		CurrentPrice:  99.99,
	}
}
