package handler

import (
	"net/http"

	"github.com/darkkaiser/pricewatch-server/internal/service/api/constants"
	"github.com/darkkaiser/pricewatch-server/internal/service/api/httputil"
	"github.com/darkkaiser/pricewatch-server/internal/service/api/v1/model/request"
	"github.com/darkkaiser/pricewatch-server/internal/service/contract"
	applog "github.com/darkkaiser/pricewatch-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// UnsubscribeHandler godoc
// @Summary 가격 알림 구독 해지
// @Description 상품 가격 알림 구독을 해지합니다.
// @Description
// @Description 메일 본문의 해지 링크를 통한 GET 요청(쿼리 파라미터)과
// @Description POST 요청(JSON 본문)을 모두 지원합니다.
// @Description
// @Description 상품이 없거나 구독 중이 아닌 경우에도 HTTP 200으로 응답하며,
// @Description 처리 결과는 응답 본문의 success/message 필드로 구분합니다.
// @Tags Product
// @Accept json
// @Produce json
// @Param productId query string false "상품 ID (GET 요청)" example(f25b8bfa93c00e1c)
// @Param email query string false "구독 이메일 (GET 요청)" example(subscriber@example.com)
// @Param body body request.UnsubscribeRequest false "구독 해지 정보 (POST 요청)"
// @Success 200 {object} tracker.UnsubscribeResult "구독 해지 결과"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청 (필수 파라미터 누락 등)"
// @Router /api/v1/unsubscribe [get]
// @Router /api/v1/unsubscribe [post]
func (h *Handler) UnsubscribeHandler(c echo.Context) error {
	// 1. 요청 바인딩 (GET: 쿼리 파라미터, POST: JSON 본문)
	req := new(request.UnsubscribeRequest)
	if err := c.Bind(req); err != nil {
		return httputil.NewBadRequestError(constants.ErrMsgBadRequestInvalidBody)
	}

	// 2. 입력 검증
	if err := ValidateRequest(req); err != nil {
		return httputil.NewBadRequestError(FormatValidationError(err))
	}

	// 3. 구독 해지
	// 상품이 없거나 구독 중이 아닌 경우는 오류가 아닌 실패 결과로 반환됩니다.
	result, err := h.productTracker.Unsubscribe(c.Request().Context(), contract.ProductID(req.ProductID), req.Email)
	if err != nil {
		return err
	}

	h.log(c).WithFields(applog.Fields{
		"product_id": req.ProductID,
		"email":      applog.MaskSensitiveData(req.Email),
		"success":    result.Success,
		"message":    result.Message,
	}).Info("구독 해지 요청 처리 완료")

	// 4. 처리 결과 응답
	return c.JSON(http.StatusOK, result)
}
