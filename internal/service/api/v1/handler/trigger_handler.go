package handler

import (
	"encoding/json"
	"net/http"

	"github.com/darkkaiser/pricewatch-server/internal/service/api/constants"
	"github.com/darkkaiser/pricewatch-server/internal/service/contract"
	applog "github.com/darkkaiser/pricewatch-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// TriggerBatchHandler godoc
// @Summary 가격 추적 배치 실행
// @Description 추적 중인 전체 상품의 가격을 확인하는 배치 작업을 실행합니다.
// @Description
// @Description 외부 스케줄러(cron 등)나 운영자가 호출하는 엔드포인트로, 인증이 필요합니다.
// @Description
// @Description ## 인증 방식
// @Description - **권장**: X-App-Key 헤더로 전달
// @Description - **레거시**: key 쿼리 파라미터로 전달 (하위 호환성 유지)
// @Description
// @Description ## 스트리밍 모드
// @Description `stream=true` 쿼리 파라미터를 지정하면 상품 1건의 처리가 끝날 때마다
// @Description 진행 상황이 ndjson(newline delimited JSON) 라인으로 전송되며,
// @Description 마지막 라인으로 최종 결과가 전송됩니다.
// @Tags Batch
// @Produce json
// @Param X-App-Key header string false "App Key (인증용, 권장)" example(your-secret-key)
// @Param key query string false "App Key (인증용, 레거시)" example(your-secret-key)
// @Param stream query bool false "진행 상황 스트리밍(ndjson) 여부" example(false)
// @Success 200 {object} contract.BatchSummary "배치 실행 결과"
// @Failure 401 {object} response.ErrorResponse "인증 실패"
// @Failure 409 {object} response.ErrorResponse "이전 배치 작업이 아직 실행중"
// @Security ApiKeyAuth
// @Router /api/v1/cron/trigger [post]
func (h *Handler) TriggerBatchHandler(c echo.Context) error {
	if c.QueryParam(constants.QueryParamStream) == "true" {
		return h.triggerBatchStream(c)
	}

	summary, err := h.batchRunner.Run(c.Request().Context())
	if err != nil {
		return err
	}

	h.log(c).WithFields(applog.Fields{
		"message":       summary.Message,
		"duration":      summary.Duration,
		"success_count": summary.Data.SuccessCount,
		"failed_count":  summary.Data.FailedCount,
		"emails_sent":   summary.Data.EmailsSent,
	}).Info("배치 실행 요청 완료")

	return c.JSON(http.StatusOK, summary)
}

// triggerBatchStream 배치 작업을 실행하며 진행 상황을 ndjson 라인으로 스트리밍합니다.
//
// 응답 형식:
//   - 상품 1건 처리마다 contract.BatchProgress JSON 라인
//   - 마지막 라인으로 contract.BatchSummary JSON
//
// 첫 진행 라인을 쓰기 전에 발생한 오류(배치 중복 실행 등)는 아직 응답
// 헤더가 전송되지 않았으므로 표준 에러 응답으로 반환합니다. 스트리밍이
// 시작된 이후의 오류는 에러 JSON 라인으로 전송합니다.
func (h *Handler) triggerBatchStream(c echo.Context) error {
	res := c.Response()
	enc := json.NewEncoder(res)

	headerWritten := false
	writeHeader := func() {
		if headerWritten {
			return
		}
		res.Header().Set(echo.HeaderContentType, constants.MIMEApplicationNDJSON)
		res.WriteHeader(http.StatusOK)
		headerWritten = true
	}

	progressFn := func(progress contract.BatchProgress) {
		writeHeader()

		if err := enc.Encode(progress); err != nil {
			h.log(c).WithField("error", err).Warn("배치 진행 상황 스트리밍 실패 (클라이언트 연결 종료 가능성)")
			return
		}
		res.Flush()
	}

	summary, err := h.batchRunner.RunStream(c.Request().Context(), progressFn)
	if err != nil {
		if !headerWritten {
			return err
		}

		// 헤더 전송 이후에는 상태 코드를 변경할 수 없으므로 에러 라인으로 전송
		if encErr := enc.Encode(map[string]string{"error": err.Error()}); encErr == nil {
			res.Flush()
		}
		return nil
	}

	writeHeader()
	if err := enc.Encode(summary); err == nil {
		res.Flush()
	}

	h.log(c).WithFields(applog.Fields{
		"message":  summary.Message,
		"duration": summary.Duration,
	}).Info("배치 실행 요청 완료 (스트리밍)")

	return nil
}
