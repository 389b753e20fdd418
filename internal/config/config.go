package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/pricewatch-server/internal/pkg/errors"
	"github.com/darkkaiser/pricewatch-server/pkg/cronx"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "pricewatch-server"

	// DefaultFilename 애플리케이션 초기화 시 참조하는 기본 설정 파일명입니다.
	// 실행 인자를 통해 명시적인 경로가 제공되지 않을 경우, 시스템은 이 파일을 탐색하여 구성을 로드합니다.
	DefaultFilename = AppName + ".json"

	// ------------------------------------------------------------------------------------------------
	// 기본값
	// ------------------------------------------------------------------------------------------------

	// DefaultMaxRetries HTTP 요청 실패 시 최대 재시도 횟수 기본값
	DefaultMaxRetries = 3

	// DefaultRetryDelay 재시도 사이의 대기 시간 기본값
	DefaultRetryDelay = "2s"

	// DefaultRequestTimeout 상품 페이지 요청 타임아웃 기본값
	DefaultRequestTimeout = "30s"

	// DefaultStoreDir 상품 문서 저장소 디렉토리 기본값
	DefaultStoreDir = "./data"

	// DefaultUserAgent 상품 페이지 요청에 사용하는 User-Agent 기본값
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
)

// AppConfig 애플리케이션의 모든 설정을 관장하는 최상위 루트 구조체
type AppConfig struct {
	Debug         bool                `json:"debug"`
	HTTPRetry     HTTPRetryConfig     `json:"http_retry"`
	Tracker       TrackerConfig       `json:"tracker"`
	Store         StoreConfig         `json:"store"`
	Mail          MailConfig          `json:"mail"`
	Currency      CurrencyConfig      `json:"currency"`
	AdminNotifier AdminNotifierConfig `json:"admin_notifier"`
	API           APIConfig           `json:"api"`
}

// validate 설정 파일 로드 직후, 각 설정 항목의 정합성과 필수 값의 유효성을 검증합니다.
func (c *AppConfig) validate(v *validatorInstance) error {
	if err := c.HTTPRetry.validate(); err != nil {
		return err
	}
	if err := c.Tracker.validate(v); err != nil {
		return err
	}
	if err := c.Store.validate(); err != nil {
		return err
	}
	if err := c.Mail.validate(v); err != nil {
		return err
	}
	if err := c.Currency.validate(); err != nil {
		return err
	}
	if err := c.AdminNotifier.validate(v); err != nil {
		return err
	}
	if err := c.API.validate(v); err != nil {
		return err
	}

	return nil
}

// VerifyRecommendations 서비스 운영의 안정성과 보안을 위해 권장되는 설정 준수 여부를 진단합니다.
// 강제적인 에러를 발생시키지는 않으나, 잠재적 위험 요소에 대한 경고 메시지를 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	warnings = append(warnings, c.API.VerifyRecommendations()...)

	// 트리거 비밀 키가 짧으면 무차별 대입 공격에 취약해집니다.
	if len(c.Tracker.TriggerSecretKey) < 16 {
		warnings = append(warnings, "배치 트리거 비밀 키(trigger_secret_key)가 16자 미만입니다. 충분히 긴 무작위 문자열 사용을 권장합니다")
	}

	if !c.Mail.Enabled {
		warnings = append(warnings, "메일 발송이 비활성화되어 있습니다(mail.enabled). 구독자에게 가격 알림이 발송되지 않습니다")
	}

	return warnings
}

// HTTPRetryConfig HTTP 요청 실패 시 재시도 횟수와 대기 시간을 정의하는 설정 구조체
type HTTPRetryConfig struct {
	MaxRetries int    `json:"max_retries"`
	RetryDelay string `json:"retry_delay"`
}

func (c *HTTPRetryConfig) validate() error {
	if c.MaxRetries < 0 {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("HTTP 최대 재시도 횟수(max_retries)는 0 이상이어야 합니다: '%d'", c.MaxRetries))
	}
	if _, err := time.ParseDuration(c.RetryDelay); err != nil {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("HTTP 재시도 대기 시간(retry_delay) 설정이 올바르지 않습니다: '%s' (예: 1s, 500ms)", c.RetryDelay))
	}
	return nil
}

// TrackerConfig 상품 가격 추적 배치의 실행 정책을 정의하는 설정 구조체
type TrackerConfig struct {
	// TriggerSecretKey 배치 트리거 API 인증에 사용되는 공유 비밀 키
	TriggerSecretKey string `json:"trigger_secret_key" validate:"required"`

	// Scheduler 내부 스케줄러를 통한 주기적 배치 실행 설정
	Scheduler SchedulerConfig `json:"scheduler"`

	// RequestTimeout 상품 페이지 요청 타임아웃 (예: 30s)
	RequestTimeout string `json:"request_timeout"`

	// UserAgent 상품 페이지 요청에 사용할 User-Agent
	UserAgent string `json:"user_agent"`

	// MaxBodySizeMB 상품 페이지 응답 본문의 최대 허용 크기 (MB)
	MaxBodySizeMB int `json:"max_body_size_mb" validate:"min=0"`

	// Selectors 사이트별 필드 추출 후보 셀렉터 재정의 (미설정 시 기본 셀렉터 사용)
	Selectors map[string]interface{} `json:"selectors"`
}

func (c *TrackerConfig) validate(v *validatorInstance) error {
	if strings.TrimSpace(c.TriggerSecretKey) == "" {
		return apperrors.New(apperrors.InvalidInput, "배치 트리거 비밀 키(trigger_secret_key)가 설정되지 않았습니다")
	}

	if _, err := time.ParseDuration(c.RequestTimeout); err != nil {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("상품 페이지 요청 타임아웃(request_timeout) 설정이 올바르지 않습니다: '%s'", c.RequestTimeout))
	}

	if c.MaxBodySizeMB < 0 {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("응답 본문 최대 크기(max_body_size_mb)는 0 이상이어야 합니다: '%d'", c.MaxBodySizeMB))
	}

	if err := c.Scheduler.validate("tracker.scheduler"); err != nil {
		return err
	}

	return nil
}

// SchedulerConfig 주기적 실행 여부와 Cron 표현식을 정의하는 설정 구조체
type SchedulerConfig struct {
	Runnable bool   `json:"runnable"`
	TimeSpec string `json:"time_spec"`
}

func (c *SchedulerConfig) validate(contextName string) error {
	if !c.Runnable {
		return nil
	}
	if err := cronx.Validate(c.TimeSpec); err != nil {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("%s의 Cron 표현식(time_spec) 설정이 유효하지 않습니다", contextName))
	}
	return nil
}

// StoreConfig 상품 문서 저장소의 위치를 정의하는 설정 구조체
type StoreConfig struct {
	Dir string `json:"dir"`
}

func (c *StoreConfig) validate() error {
	if strings.TrimSpace(c.Dir) == "" {
		return apperrors.New(apperrors.InvalidInput, "저장소 디렉토리(store.dir)가 설정되지 않았습니다")
	}

	// 디렉토리 경로가 이미 일반 파일로 존재하는 경우는 복구할 수 없으므로 즉시 실패시킵니다.
	if info, err := os.Stat(c.Dir); err == nil && !info.IsDir() {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("저장소 디렉토리 경로(%s)가 이미 파일로 존재합니다", c.Dir))
	}

	return nil
}

// MailConfig 구독자 알림 이메일 발송(SMTP) 설정 구조체
type MailConfig struct {
	Enabled       bool   `json:"enabled"`
	Host          string `json:"host" validate:"required_if=Enabled true,omitempty,hostname|ip"`
	Port          int    `json:"port" validate:"required_if=Enabled true,omitempty,min=1,max=65535"`
	Username      string `json:"username"`
	Password      string `json:"password"`
	SenderAddress string `json:"sender_address" validate:"required_if=Enabled true,omitempty,email"`

	// SiteURL 이메일 본문의 구독 해지/관리 링크 생성에 사용되는 서비스 공개 URL
	SiteURL string `json:"site_url" validate:"required_if=Enabled true,omitempty,url"`
}

func (c *MailConfig) validate(v *validatorInstance) error {
	return v.checkStruct(c, "메일(mail)")
}

// CurrencyConfig 환율 스냅샷 갱신 정책을 정의하는 설정 구조체
type CurrencyConfig struct {
	// APIURL 환율 API 주소 (빈 값이면 내장 폴백 환율만 사용)
	APIURL string `json:"api_url" validate:"omitempty,url"`

	// Scheduler 환율 스냅샷 주기적 갱신 설정
	Scheduler SchedulerConfig `json:"scheduler"`
}

func (c *CurrencyConfig) validate() error {
	if err := c.Scheduler.validate("currency.scheduler"); err != nil {
		return err
	}
	return nil
}

// AdminNotifierConfig 운영자 알림(텔레그램) 설정 구조체
type AdminNotifierConfig struct {
	Telegram TelegramConfig `json:"telegram"`
}

func (c *AdminNotifierConfig) validate(v *validatorInstance) error {
	return c.Telegram.validate(v)
}

// TelegramConfig 텔레그램 봇 토큰 및 채팅 ID 정보를 담는 설정 구조체
type TelegramConfig struct {
	Enabled  bool   `json:"enabled"`
	BotToken string `json:"bot_token" validate:"required_if=Enabled true,omitempty,telegram_bot_token"`
	ChatID   int64  `json:"chat_id" validate:"required_if=Enabled true"`
}

func (c *TelegramConfig) validate(v *validatorInstance) error {
	return v.checkStruct(c, "운영자 알림(admin_notifier.telegram)")
}

// APIConfig 배치 트리거 및 구독 관리를 위한 REST API 서버 설정 구조체
type APIConfig struct {
	WS   WSConfig   `json:"ws"`
	CORS CORSConfig `json:"cors"`
}

func (c *APIConfig) validate(v *validatorInstance) error {
	if err := c.WS.validate(v); err != nil {
		return err
	}
	if err := c.CORS.validate(v); err != nil {
		return err
	}
	return nil
}

func (c *APIConfig) VerifyRecommendations() []string {
	return c.WS.VerifyRecommendations()
}

// WSConfig 웹 서버의 포트 및 TLS(HTTPS) 보안 설정을 정의하는 구조체
type WSConfig struct {
	TLSServer   bool   `json:"tls_server"`
	TLSCertFile string `json:"tls_cert_file" validate:"required_if=TLSServer true,omitempty,file"`
	TLSKeyFile  string `json:"tls_key_file" validate:"required_if=TLSServer true,omitempty,file"`
	ListenPort  int    `json:"listen_port" validate:"min=1,max=65535"`
}

func (c *WSConfig) validate(v *validatorInstance) error {
	return v.checkStruct(c, "웹 서버(api.ws)")
}

func (c *WSConfig) VerifyRecommendations() []string {
	var warnings []string

	// 시스템 예약 포트(1024 미만) 사용 경고
	if c.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 이 경우 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.ListenPort))
	}

	return warnings
}

// CORSConfig 웹 브라우저의 교차 출처 리소스 공유(CORS) 정책을 설정하는 구조체
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"dive,cors_origin"`
}

func (c *CORSConfig) validate(v *validatorInstance) error {
	if len(c.AllowOrigins) == 0 {
		return apperrors.New(apperrors.InvalidInput, "CORS 허용 도메인(allow_origins) 목록이 비어있습니다")
	}

	for _, origin := range c.AllowOrigins {
		if origin == "*" {
			if len(c.AllowOrigins) > 1 {
				return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
			}

			// 와일드카드만 있는 경우는 유효함 (validator skip)
			return nil
		}
	}

	return v.checkStruct(c, "CORS(api.cors)")
}

// Load 기본 설정 파일을 읽어 애플리케이션 설정을 로드합니다.
func Load() (*AppConfig, error) {
	return LoadWithFile(DefaultFilename)
}

// LoadWithFile 지정된 경로의 설정 파일을 읽어 AppConfig 객체를 생성합니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값 로드 (가장 낮은 우선순위)
	err := k.Load(confmap.Provider(map[string]interface{}{
		"http_retry.max_retries":   DefaultMaxRetries,
		"http_retry.retry_delay":   DefaultRetryDelay,
		"tracker.request_timeout":  DefaultRequestTimeout,
		"tracker.user_agent":       DefaultUserAgent,
		"tracker.max_body_size_mb": 10,
		"store.dir":                DefaultStoreDir,
		"api.cors.allow_origins":   []string{"*"},
		"api.ws.listen_port":       8080,
	}, "."), nil)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.Internal, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일 로드 (기본값 덮어쓰기)
	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrap(err, apperrors.NotFound, fmt.Sprintf("설정 파일을 찾을 수 없습니다: '%s'", filename))
		}
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
	}

	// 3. 환경 변수 로드 (최우선 순위, JSON 설정 덮어쓰기)
	// 접두사: PRICEWATCH_
	// 구분자: 이중 언더스코어(__)를 점(.)으로 변환 (계층 구조 표현)
	// 예: PRICEWATCH_TRACKER__TRIGGER_SECRET_KEY -> tracker.trigger_secret_key
	if err := k.Load(env.Provider("PRICEWATCH_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "PRICEWATCH_")
		s = strings.ToLower(s)
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.Internal, "환경 변수 로드에 실패했습니다")
	}

	// 4. 구조체 언마샬링 (Strict Validation 적용)
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			ErrorUnused:      true, // 파일에 존재하지만 구조체에 없는 필드가 있을 경우 에러를 발생시킴
			WeaklyTypedInput: true,
		},
	}
	var appConfig AppConfig
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	// 5. 유효성 검사 수행 (정합성 체크)
	if err := appConfig.validate(defaultValidator); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일('%s')의 유효성 검증에 실패했습니다", filename))
	}

	return &appConfig, nil
}
