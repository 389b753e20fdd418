// Package telegram 배치 실행 실패 등 운영 이슈를 운영자에게 알리는
// 텔레그램 기반 AdminNotifier 구현체를 제공합니다.
package telegram

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	apperrors "github.com/darkkaiser/pricewatch-server/internal/pkg/errors"
	applog "github.com/darkkaiser/pricewatch-server/pkg/log"

	"github.com/darkkaiser/pricewatch-server/internal/config"
	"github.com/darkkaiser/pricewatch-server/internal/pkg/mark"
	"github.com/darkkaiser/pricewatch-server/internal/service/contract"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"
)

const component = "notification.telegram"

const (
	// messageMaxLength 텔레그램 메시지 전송 시 허용되는 최대 길이입니다.
	// API 제한은 4096 바이트이지만 헤더 추가 등의 여유분을 둡니다.
	messageMaxLength = 3900

	// defaultRateLimit 초당 메시지 전송 허용량입니다.
	defaultRateLimit = 1

	// defaultRateBurst 속도 제한 없이 연속으로 전송할 수 있는 메시지 수입니다.
	defaultRateBurst = 3
)

// botAPI 텔레그램 메시지 전송 기능입니다. tgbotapi.BotAPI가 이 인터페이스를 만족합니다.
type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// adminNotifier 텔레그램으로 운영자 알림을 전송하는 AdminNotifier 구현체입니다.
type adminNotifier struct {
	bot    botAPI
	chatID int64

	// limiter 텔레그램 API의 전송 횟수 제한 준수를 위한 Rate Limiter입니다.
	limiter *rate.Limiter
}

var _ contract.AdminNotifier = (*adminNotifier)(nil)

// NewAdminNotifierFromConfig 설정에 따라 AdminNotifier를 생성합니다.
// 운영자 알림이 비활성화된 경우 전송을 건너뛰는 구현체를 반환합니다.
func NewAdminNotifierFromConfig(cfg *config.TelegramConfig) (contract.AdminNotifier, error) {
	if !cfg.Enabled {
		applog.WithComponent(component).Warn("운영자 알림이 비활성화되어 있습니다. 모든 운영자 알림은 무시됩니다.")
		return &disabledNotifier{}, nil
	}

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.Internal, "텔레그램 봇 초기화에 실패하였습니다")
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"bot_username": bot.Self.UserName,
	}).Info("텔레그램 운영자 알림 활성화")

	return &adminNotifier{
		bot:    bot,
		chatID: cfg.ChatID,

		limiter: rate.NewLimiter(rate.Limit(defaultRateLimit), defaultRateBurst),
	}, nil
}

// NotifyAdmin 운영자에게 알림 메시지를 전송합니다.
// 최대 길이를 초과하는 메시지는 여러 개로 분할하여 순서대로 전송합니다.
func (n *adminNotifier) NotifyAdmin(ctx context.Context, message string) error {
	remaining := message
	for len(remaining) > 0 {
		if err := ctx.Err(); err != nil {
			return apperrors.Wrap(err, apperrors.NotificationSend, "운영자 알림 전송 중 작업이 취소되었습니다")
		}

		chunk, rest := safeSplit(remaining, messageMaxLength)
		remaining = rest

		if err := n.sendChunk(ctx, chunk); err != nil {
			return err
		}
	}

	return nil
}

// NotifyAdminWithError 에러 상세 정보를 포함한 운영자 알림 메시지를 전송합니다.
func (n *adminNotifier) NotifyAdminWithError(ctx context.Context, message string, err error) error {
	var sb strings.Builder
	sb.WriteString(string(mark.Alert))
	sb.WriteString(" ")
	sb.WriteString(message)
	if err != nil {
		sb.WriteString("\n\n[에러]\n")
		sb.WriteString(err.Error())
	}

	return n.NotifyAdmin(ctx, sb.String())
}

func (n *adminNotifier) sendChunk(ctx context.Context, chunk string) error {
	if err := n.limiter.Wait(ctx); err != nil {
		return apperrors.Wrap(err, apperrors.NotificationSend, "운영자 알림 전송 대기 중 작업이 취소되었습니다")
	}

	if _, err := n.bot.Send(tgbotapi.NewMessage(n.chatID, chunk)); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"chat_id": n.chatID,
			"error":   err,
		}).Error("운영자 알림 전송 실패")

		return apperrors.Wrap(err, apperrors.NotificationSend, "운영자 알림 전송에 실패하였습니다")
	}

	return nil
}

// safeSplit 문자열을 UTF-8 문자 경계를 존중하여 최대 limit 바이트의
// 앞부분과 나머지로 분할합니다. 문자가 중간에 잘려 깨지지 않도록 보장합니다.
func safeSplit(s string, limit int) (chunk, rest string) {
	if len(s) <= limit {
		return s, ""
	}

	splitAt := limit
	for splitAt > 0 && !utf8.RuneStart(s[splitAt]) {
		splitAt--
	}
	if splitAt == 0 {
		// limit가 한 문자보다도 작은 비정상적인 경우로, 문자 단위로 강제 분할한다.
		_, size := utf8.DecodeRuneInString(s)
		splitAt = size
	}

	return s[:splitAt], s[splitAt:]
}

// disabledNotifier 운영자 알림이 비활성화되었을 때 사용되는 AdminNotifier 구현체입니다.
// 알림 내용을 로그로만 남기고 전송하지 않습니다.
type disabledNotifier struct{}

var _ contract.AdminNotifier = (*disabledNotifier)(nil)

func (n *disabledNotifier) NotifyAdmin(_ context.Context, message string) error {
	applog.WithComponentAndFields(component, applog.Fields{
		"message": message,
	}).Debug("운영자 알림이 비활성화되어 전송을 건너뜁니다")

	return nil
}

func (n *disabledNotifier) NotifyAdminWithError(ctx context.Context, message string, err error) error {
	return n.NotifyAdmin(ctx, fmt.Sprintf("%s (error: %v)", message, err))
}
