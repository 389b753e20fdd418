package handler

import (
	"net/http"

	"github.com/darkkaiser/pricewatch-server/internal/service/api/constants"
	"github.com/darkkaiser/pricewatch-server/internal/service/api/httputil"
	"github.com/darkkaiser/pricewatch-server/internal/service/api/v1/model/request"
	"github.com/darkkaiser/pricewatch-server/internal/service/api/v1/model/response"
	"github.com/darkkaiser/pricewatch-server/internal/service/contract"
	applog "github.com/darkkaiser/pricewatch-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// TrackProductHandler godoc
// @Summary 상품 추적 등록
// @Description 상품 URL의 가격 추적을 시작하고, 지정된 이메일을 가격 알림 구독자로 등록합니다.
// @Description
// @Description 이미 추적 중인 상품이면 구독자만 추가되며, 상품 페이지를 다시 수집하지 않습니다.
// @Description 구독자가 새로 추가된 경우에만 환영 메일이 발송됩니다.
// @Tags Product
// @Accept json
// @Produce json
// @Param body body request.TrackRequest true "추적할 상품 URL과 구독 이메일"
// @Success 200 {object} response.TrackResponse "추적 중인 상품 정보"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청 (URL/이메일 형식 오류 등)"
// @Failure 502 {object} response.ErrorResponse "상품 페이지 수집 실패"
// @Router /api/v1/products [post]
func (h *Handler) TrackProductHandler(c echo.Context) error {
	// 1. 요청 바인딩
	req := new(request.TrackRequest)
	if err := c.Bind(req); err != nil {
		return httputil.NewBadRequestError(constants.ErrMsgBadRequestInvalidBody)
	}

	// 2. 입력 검증
	if err := ValidateRequest(req); err != nil {
		return httputil.NewBadRequestError(FormatValidationError(err))
	}

	// 3. 추적 시작 (신규 상품이면 상품 페이지 수집 포함)
	result, err := h.productTracker.Track(c.Request().Context(), req.URL, req.Email)
	if err != nil {
		return err
	}

	h.log(c).WithFields(applog.Fields{
		"product_id":       result.Product.ID,
		"url":              result.Product.NormalizedURL,
		"email":            applog.MaskSensitiveData(req.Email),
		"newly_subscribed": result.NewlySubscribed,
	}).Info("상품 추적 등록 요청 성공")

	// 4. 성공 응답
	return c.JSON(http.StatusOK, response.TrackResponse{
		ResultCode:      0,
		NewlySubscribed: result.NewlySubscribed,
		Product:         result.Product,
	})
}

// ListProductsHandler godoc
// @Summary 추적 중인 상품 목록 조회
// @Description 추적 중인 전체 상품 목록을 반환합니다. 정규화 URL 기준으로 정렬됩니다.
// @Tags Product
// @Produce json
// @Success 200 {array} contract.TrackedProduct "추적 중인 상품 목록"
// @Router /api/v1/products [get]
func (h *Handler) ListProductsHandler(c echo.Context) error {
	products, err := h.productTracker.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, products)
}

// GetProductHandler godoc
// @Summary 추적 중인 상품 조회
// @Description 상품 ID로 추적 중인 상품 1건을 조회합니다.
// @Tags Product
// @Produce json
// @Param id path string true "상품 ID" example(f25b8bfa93c00e1c)
// @Success 200 {object} contract.TrackedProduct "추적 중인 상품"
// @Failure 404 {object} response.ErrorResponse "추적 중인 상품 없음"
// @Router /api/v1/products/{id} [get]
func (h *Handler) GetProductHandler(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return httputil.NewBadRequestError(constants.ErrMsgBadRequest)
	}

	product, err := h.productTracker.GetProduct(c.Request().Context(), contract.ProductID(id))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, product)
}
