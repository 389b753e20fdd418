package httputil

import (
	"net/http"

	apperrors "github.com/darkkaiser/pricewatch-server/internal/pkg/errors"
	"github.com/darkkaiser/pricewatch-server/internal/service/api/constants"
	"github.com/darkkaiser/pricewatch-server/internal/service/api/model/response"
	applog "github.com/darkkaiser/pricewatch-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// ErrorHandler Echo 프레임워크의 전역 에러 핸들러입니다.
//
// 모든 HTTP 에러를 가로채서 표준 ErrorResponse JSON 형식으로 변환하여 반환합니다.
// 핸들러가 AppError를 그대로 반환한 경우에는 에러 타입에 따라 적절한
// HTTP 상태 코드로 매핑합니다. 에러 발생 시 적절한 로그 레벨(Error/Warn)로
// 상세 정보를 기록합니다.
func ErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	message := constants.ErrMsgInternalServer

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		} else if resp, ok := he.Message.(response.ErrorResponse); ok {
			message = resp.Message
		}
	} else {
		code, message = mapAppError(err)
	}

	// 404 에러는 사용자 친화적인 한국어 메시지로 통일
	if code == http.StatusNotFound && message == http.StatusText(http.StatusNotFound) {
		message = constants.ErrMsgNotFound
	}

	// 에러 로깅 (보안 및 디버깅 용도)
	fields := applog.Fields{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"status_code": code,
		"error":       err,
		"remote_ip":   c.RealIP(),
		"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
	}

	if code >= http.StatusInternalServerError {
		// 5xx: 서버 내부 오류 - 즉시 조치 필요
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Error(constants.LogMsgHTTP5xxServerError)
	} else if code >= http.StatusBadRequest {
		// 4xx: 클라이언트 요청 오류 - 정상적인 거부 응답
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Warn(constants.LogMsgHTTP4xxClientError)
	}

	// 이중 응답 방지: 이미 응답이 전송된 경우 추가 응답 시도하지 않음
	if c.Response().Committed {
		return
	}

	// HEAD 요청 처리: HTTP 명세에 따라 헤더만 반환하고 본문은 생략
	if c.Request().Method == http.MethodHead {
		c.NoContent(code)
		return
	}

	// 일반 요청: 표준 ErrorResponse JSON 형식으로 응답
	c.JSON(code, response.ErrorResponse{
		ResultCode: code,
		Message:    message,
	})
}

// mapAppError AppError의 에러 타입을 HTTP 상태 코드와 클라이언트용 메시지로 변환합니다.
//
// 내부 에러 메시지는 디스크 경로 등 민감한 정보를 포함할 수 있으므로
// 클라이언트에게는 표준 메시지만 노출합니다.
func mapAppError(err error) (int, string) {
	switch {
	case apperrors.Is(err, apperrors.Unauthorized):
		return http.StatusUnauthorized, constants.ErrMsgUnauthorizedInvalidAppKey
	case apperrors.Is(err, apperrors.InvalidInput):
		return http.StatusBadRequest, constants.ErrMsgBadRequest
	case apperrors.Is(err, apperrors.NotFound):
		return http.StatusNotFound, constants.ErrMsgNotFoundProduct
	case apperrors.Is(err, apperrors.Conflict):
		return http.StatusConflict, constants.ErrMsgConflictBatchRunning
	case apperrors.Is(err, apperrors.Transport), apperrors.Is(err, apperrors.ExtractionFailed):
		return http.StatusBadGateway, constants.ErrMsgBadGateway
	default:
		return http.StatusInternalServerError, constants.ErrMsgInternalServer
	}
}
