package contract

import "context"

// MailSender HTML 메일을 발송하는 인터페이스입니다.
type MailSender interface {
	// Send 지정된 수신자에게 HTML 본문의 메일을 발송합니다.
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// AdminNotifier 관리자에게 시스템 알림 메시지를 전송하는 인터페이스입니다.
//
// 배치 작업의 치명적인 오류와 같이 운영자의 개입이 필요한 상황을 알리는
// 용도로 사용되며, 전송 실패는 호출자의 작업 흐름에 영향을 주지 않습니다.
type AdminNotifier interface {
	// NotifyAdmin 관리자에게 알림 메시지를 전송합니다.
	NotifyAdmin(ctx context.Context, message string) error

	// NotifyAdminWithError 관리자에게 오류 정보가 포함된 알림 메시지를 전송합니다.
	NotifyAdminWithError(ctx context.Context, message string, err error) error
}
