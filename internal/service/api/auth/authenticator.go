// Package auth 배치 트리거 API의 인증을 담당합니다.
//
// 배치 트리거는 외부 스케줄러(cron 등)나 운영자만 호출할 수 있어야 하므로,
// 설정 파일에 정의된 공유 비밀 키(trigger_secret_key)와의 일치 여부로
// 호출자를 인증합니다.
package auth

import (
	"crypto/subtle"

	"github.com/darkkaiser/pricewatch-server/internal/service/api/constants"
	"github.com/darkkaiser/pricewatch-server/internal/service/api/httputil"
	applog "github.com/darkkaiser/pricewatch-server/pkg/log"
)

// component 인증자의 로깅용 컴포넌트 이름
const component = "api.auth"

// Authenticator 배치 트리거 요청의 App Key를 검증하는 인증자입니다.
//
// 비밀 키 비교는 crypto/subtle의 상수 시간 비교를 사용하여
// 타이밍 공격(Timing Attack)으로 키가 유추되는 것을 방지합니다.
type Authenticator struct {
	secretKey []byte
}

// NewAuthenticator 설정된 비밀 키로 Authenticator를 생성합니다.
//
// Panics:
//   - secretKey가 빈 문자열인 경우 (설정 검증 단계에서 걸러지므로 프로그래밍 오류로 간주)
func NewAuthenticator(secretKey string) *Authenticator {
	if secretKey == "" {
		panic("트리거 비밀 키(trigger_secret_key)는 필수입니다")
	}

	return &Authenticator{
		secretKey: []byte(secretKey),
	}
}

// Authenticate 전달받은 App Key를 검증합니다.
// 키가 비어있거나 일치하지 않으면 401 Unauthorized 에러를 반환합니다.
func (a *Authenticator) Authenticate(appKey string) error {
	if appKey == "" {
		return httputil.NewUnauthorizedError(constants.ErrMsgUnauthorizedAppKeyRequired)
	}

	if subtle.ConstantTimeCompare(a.secretKey, []byte(appKey)) != 1 {
		applog.WithComponentAndFields(component, applog.Fields{
			"received_app_key": applog.MaskSensitiveData(appKey),
		}).Warn("APP_KEY 불일치")

		return httputil.NewUnauthorizedError(constants.ErrMsgUnauthorizedInvalidAppKey)
	}

	return nil
}
