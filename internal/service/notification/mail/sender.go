// Package mail 구독자에게 가격 알림 메일을 발송하는 SMTP 기반 MailSender 구현체를 제공합니다.
package mail

import (
	"context"
	"time"

	apperrors "github.com/darkkaiser/pricewatch-server/internal/pkg/errors"
	applog "github.com/darkkaiser/pricewatch-server/pkg/log"

	"github.com/darkkaiser/pricewatch-server/internal/config"
	"github.com/darkkaiser/pricewatch-server/internal/service/contract"
	"github.com/darkkaiser/pricewatch-server/pkg/strutil"
	"golang.org/x/time/rate"
	"gopkg.in/gomail.v2"
)

const component = "notification.mail"

const (
	// senderDisplayName 발송 메일의 From 헤더에 표시되는 이름입니다.
	senderDisplayName = "PriceWatch"

	// defaultSendInterval 연속 발송 사이의 최소 간격입니다.
	// SMTP 서버의 발송 속도 제한에 걸리지 않도록 보수적으로 설정합니다.
	defaultSendInterval = time.Second

	// defaultSendBurst 속도 제한 없이 연속으로 발송할 수 있는 메일 수입니다.
	defaultSendBurst = 3
)

// messageDialer SMTP 서버에 연결하여 메시지를 전송합니다.
// gomail.Dialer가 이 인터페이스를 만족합니다.
type messageDialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// smtpSender SMTP를 통해 알림 메일을 발송하는 MailSender 구현체입니다.
type smtpSender struct {
	dialer        messageDialer
	senderAddress string

	// limiter SMTP 서버의 발송 속도 제한 준수를 위한 Rate Limiter입니다.
	limiter *rate.Limiter
}

var _ contract.MailSender = (*smtpSender)(nil)

// NewSenderFromConfig 설정에 따라 MailSender를 생성합니다.
// 메일 발송이 비활성화된 경우 발송을 건너뛰는 구현체를 반환합니다.
func NewSenderFromConfig(cfg *config.MailConfig) contract.MailSender {
	if !cfg.Enabled {
		applog.WithComponent(component).Warn("메일 발송이 비활성화되어 있습니다. 모든 메일 발송 요청은 무시됩니다.")
		return &disabledSender{}
	}

	return &smtpSender{
		dialer:        gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		senderAddress: cfg.SenderAddress,

		limiter: rate.NewLimiter(rate.Every(defaultSendInterval), defaultSendBurst),
	}
}

// Send 지정된 수신자에게 HTML 메일을 발송합니다.
func (s *smtpSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return apperrors.Wrap(err, apperrors.NotificationSend, "메일 발송 대기 중 작업이 취소되었습니다")
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderAddress, senderDisplayName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	startTime := time.Now()
	if err := s.dialer.DialAndSend(m); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"to":       strutil.MaskEmail(to),
			"duration": time.Since(startTime).String(),
			"error":    err,
		}).Error("메일 발송 실패")

		return apperrors.Wrap(err, apperrors.NotificationSend, "메일 발송에 실패하였습니다")
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"to":       strutil.MaskEmail(to),
		"duration": time.Since(startTime).String(),
	}).Debug("메일 발송 완료")

	return nil
}

// disabledSender 메일 발송이 비활성화되었을 때 사용되는 MailSender 구현체입니다.
// 모든 발송 요청을 조용히 무시합니다.
type disabledSender struct{}

var _ contract.MailSender = (*disabledSender)(nil)

func (s *disabledSender) Send(_ context.Context, to, subject, _ string) error {
	applog.WithComponentAndFields(component, applog.Fields{
		"to":      strutil.MaskEmail(to),
		"subject": subject,
	}).Debug("메일 발송이 비활성화되어 발송을 건너뜁니다")

	return nil
}
