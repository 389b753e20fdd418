package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/darkkaiser/pricewatch-server/internal/service/contract"
	contractmocks "github.com/darkkaiser/pricewatch-server/internal/service/contract/mocks"
	"github.com/darkkaiser/pricewatch-server/internal/service/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// TestUnsubscribeHandler는 구독 해지 핸들러를 검증합니다.
//
// 검증 범위:
//   - GET 요청 (쿼리 파라미터) 구독 해지
//   - POST 요청 (JSON 본문) 구독 해지
//   - 상품 없음/미구독 이메일도 HTTP 200 + 실패 결과로 응답
//   - 필수 파라미터 누락 검증
func TestUnsubscribeHandler(t *testing.T) {
	t.Run("성공: GET 쿼리 파라미터로 구독 해지", func(t *testing.T) {
		h, _, mockTracker := setupTestHandler(t)
		mockTracker.On("Unsubscribe", mock.Anything, contract.ProductID("f25b8bfa93c00e1c"), "subscriber@example.com").
			Return(&tracker.UnsubscribeResult{Success: true, Message: "구독이 해지되었습니다"}, nil)

		rec, c := createTestContext(t, http.MethodGet,
			"/api/v1/unsubscribe?productId=f25b8bfa93c00e1c&email=subscriber%40example.com", nil)
		executeHandler(t, h.UnsubscribeHandler, c)

		assert.Equal(t, http.StatusOK, rec.Code)

		var got tracker.UnsubscribeResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.True(t, got.Success)
	})

	t.Run("성공: POST JSON 본문으로 구독 해지", func(t *testing.T) {
		h, _, mockTracker := setupTestHandler(t)
		mockTracker.On("Unsubscribe", mock.Anything, contract.ProductID("f25b8bfa93c00e1c"), "subscriber@example.com").
			Return(&tracker.UnsubscribeResult{Success: true, Message: "구독이 해지되었습니다"}, nil)

		rec, c := createTestContext(t, http.MethodPost, "/api/v1/unsubscribe",
			map[string]string{"productId": "f25b8bfa93c00e1c", "email": "subscriber@example.com"})
		executeHandler(t, h.UnsubscribeHandler, c)

		assert.Equal(t, http.StatusOK, rec.Code)

		var got tracker.UnsubscribeResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.True(t, got.Success)
	})

	t.Run("성공: 구독 중이 아닌 이메일도 200 + 실패 결과", func(t *testing.T) {
		h, _, mockTracker := setupTestHandler(t)
		mockTracker.On("Unsubscribe", mock.Anything, mock.Anything, mock.Anything).
			Return(&tracker.UnsubscribeResult{Success: false, Message: "구독 중인 이메일이 아닙니다"}, nil)

		rec, c := createTestContext(t, http.MethodPost, "/api/v1/unsubscribe",
			map[string]string{"productId": "f25b8bfa93c00e1c", "email": "unknown@example.com"})
		executeHandler(t, h.UnsubscribeHandler, c)

		assert.Equal(t, http.StatusOK, rec.Code)

		var got tracker.UnsubscribeResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.False(t, got.Success)
		assert.NotEmpty(t, got.Message)
	})

	t.Run("실패: 상품 ID 누락이면 400", func(t *testing.T) {
		h, _, mockTracker := setupTestHandler(t)

		rec, c := createTestContext(t, http.MethodGet, "/api/v1/unsubscribe?email=subscriber%40example.com", nil)
		executeHandler(t, h.UnsubscribeHandler, c)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		errResp := decodeErrResponse(t, rec)
		assert.Equal(t, "상품 ID는 필수입니다", errResp.Message)
		mockTracker.AssertNotCalled(t, "Unsubscribe", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("실패: 이메일 형식 오류면 400", func(t *testing.T) {
		h, _, mockTracker := setupTestHandler(t)

		rec, c := createTestContext(t, http.MethodGet,
			"/api/v1/unsubscribe?productId=f25b8bfa93c00e1c&email=not-an-email", nil)
		executeHandler(t, h.UnsubscribeHandler, c)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockTracker.AssertNotCalled(t, "Unsubscribe", mock.Anything, mock.Anything, mock.Anything)
	})
}

// TestNewHandler는 생성자 함수가 필수 의존성(nil 체크)을 올바르게 검증하는지 테스트합니다.
func TestNewHandler(t *testing.T) {
	t.Run("성공: 유효한 인자", func(t *testing.T) {
		h, _, _ := setupTestHandler(t)
		assert.NotNil(t, h)
	})

	t.Run("패닉: BatchRunner nil", func(t *testing.T) {
		assert.PanicsWithValue(t, "BatchRunner는 필수입니다", func() {
			NewHandler(nil, &MockProductTracker{})
		})
	})

	t.Run("패닉: ProductTracker nil", func(t *testing.T) {
		assert.PanicsWithValue(t, "ProductTracker는 필수입니다", func() {
			NewHandler(&contractmocks.MockBatchRunner{}, nil)
		})
	})
}
