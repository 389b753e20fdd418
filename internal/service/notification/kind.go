// Package notification 상품 가격 변동 알림의 종류 판별과 발송 규칙을 제공합니다.
package notification

import (
	apperrors "github.com/darkkaiser/pricewatch-server/internal/pkg/errors"
)

// Kind 발송할 알림의 종류를 정의합니다.
type Kind int

const (
	// KindUnknown 초기화되지 않았거나 알 수 없는 상태입니다 (기본값).
	KindUnknown Kind = iota

	// KindWelcome 상품 추적을 새로 시작한 구독자에게 보내는 환영 알림입니다.
	KindWelcome

	// KindLowestPrice 상품 가격이 기록된 역대 최저가보다 낮아졌을 때의 알림입니다.
	KindLowestPrice

	// KindThresholdMet 상품의 할인율이 기준치 이상일 때의 알림입니다.
	KindThresholdMet

	// KindChangeOfStock 품절되었던 상품이 다시 입고되었을 때의 알림입니다.
	KindChangeOfStock
)

func (k Kind) IsValid() bool {
	switch k {
	case KindWelcome, KindLowestPrice, KindThresholdMet, KindChangeOfStock:
		return true
	default:
		return false
	}
}

func (k Kind) Validate() error {
	if !k.IsValid() {
		return apperrors.New(apperrors.InvalidInput, "지원하지 않는 알림 종류(Kind)입니다")
	}
	return nil
}

func (k Kind) String() string {
	switch k {
	case KindWelcome:
		return "Welcome"
	case KindLowestPrice:
		return "LowestPrice"
	case KindThresholdMet:
		return "ThresholdMet"
	case KindChangeOfStock:
		return "ChangeOfStock"
	default:
		return "Unknown"
	}
}
