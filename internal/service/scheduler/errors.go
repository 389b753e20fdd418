package scheduler

import (
	apperrors "github.com/darkkaiser/pricewatch-server/internal/pkg/errors"
)

var (
	// ErrAdminNotifierNotInitialized 서비스 시작 시 핵심 의존성 객체인 AdminNotifier가 올바르게 초기화되지 않았을 때 반환하는 에러입니다.
	ErrAdminNotifierNotInitialized = apperrors.New(apperrors.Internal, "AdminNotifier 객체가 초기화되지 않았습니다")
)
