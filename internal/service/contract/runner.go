package contract

import (
	"context"

	apperrors "github.com/darkkaiser/pricewatch-server/internal/pkg/errors"
)

// ErrBatchAlreadyRunning 이전 배치 작업이 아직 실행중인 경우 반환되는 오류입니다.
var ErrBatchAlreadyRunning = apperrors.New(apperrors.Conflict, "이전 배치 작업이 아직 실행중입니다")

// BatchSummaryData 배치 작업의 상품별 처리 결과 집계입니다.
type BatchSummaryData struct {
	SuccessCount int `json:"success_count"`
	FailedCount  int `json:"failed_count"`
	EmailsSent   int `json:"emails_sent"`
}

// BatchSummary 배치 작업 1회 실행의 최종 결과입니다.
type BatchSummary struct {
	// Message 처리 결과를 요약한 메시지
	Message string `json:"message"`

	// Duration 소요 시간 (예: "3s")
	Duration string `json:"duration"`

	// Data 상품별 처리 결과 집계
	Data BatchSummaryData `json:"data"`
}

// BatchProgress 배치 작업 진행중에 발생하는 상품 단위 처리 결과입니다.
type BatchProgress struct {
	// Index 현재 처리된 상품의 순번 (1부터 시작)
	Index int `json:"index"`

	// Total 처리 대상 상품의 전체 갯수
	Total int `json:"total"`

	// ProductID 처리된 상품의 ID
	ProductID ProductID `json:"product_id"`

	// Title 처리된 상품명
	Title string `json:"title,omitempty"`

	// Succeeded 해당 상품의 처리 성공 여부
	Succeeded bool `json:"succeeded"`

	// Error 처리 실패시의 오류 메시지
	Error string `json:"error,omitempty"`
}

// BatchProgressFunc 상품 1건의 처리가 끝날 때마다 호출되는 콜백 함수입니다.
type BatchProgressFunc func(progress BatchProgress)

// BatchRunner 추적중인 전체 상품에 대한 가격 확인 배치 작업을 실행하는 인터페이스입니다.
type BatchRunner interface {
	// Run 배치 작업을 실행하고 최종 결과를 반환합니다.
	//
	// 이미 실행중인 배치 작업이 있는 경우 ErrBatchAlreadyRunning을 반환합니다.
	Run(ctx context.Context) (*BatchSummary, error)

	// RunStream 배치 작업을 실행하며 상품 1건의 처리가 끝날 때마다
	// progressFn을 호출합니다. progressFn은 nil일 수 있습니다.
	RunStream(ctx context.Context, progressFn BatchProgressFunc) (*BatchSummary, error)
}
