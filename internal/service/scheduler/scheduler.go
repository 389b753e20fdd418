package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/darkkaiser/pricewatch-server/internal/config"
	apperrors "github.com/darkkaiser/pricewatch-server/internal/pkg/errors"
	"github.com/darkkaiser/pricewatch-server/internal/service/contract"
	"github.com/darkkaiser/pricewatch-server/pkg/cronx"
	applog "github.com/darkkaiser/pricewatch-server/pkg/log"
	"github.com/robfig/cron/v3"
)

// component Scheduler 서비스의 로깅용 컴포넌트 이름
const component = "scheduler.service"

const (
	// jobPriceBatch 가격 추적 배치 작업의 이름
	jobPriceBatch = "price-batch"

	// jobRateRefresh 환율 스냅샷 갱신 작업의 이름
	jobRateRefresh = "rate-refresh"

	// batchRunTimeout 가격 추적 배치 1회 실행의 최대 허용 시간
	batchRunTimeout = 30 * time.Minute

	// rateRefreshTimeout 환율 스냅샷 갱신 1회 실행의 최대 허용 시간
	rateRefreshTimeout = 2 * time.Minute

	// adminNotifyTimeout 관리자 알림 전송 시 최대 대기 시간
	adminNotifyTimeout = 10 * time.Second
)

// RateRefresher 외부 환율 API에서 최신 환율 스냅샷을 수집하는 인터페이스입니다.
type RateRefresher interface {
	Refresh(ctx context.Context) error
}

// job 스케줄러에 등록되는 단위 작업입니다.
type job struct {
	// name 로깅 및 관리자 알림에 사용되는 작업 이름
	name string

	// schedule 주기적 실행 여부와 Cron 표현식
	schedule config.SchedulerConfig

	// timeout 1회 실행의 최대 허용 시간
	timeout time.Duration

	// run 실제 작업을 수행하는 함수
	run func(ctx context.Context) error
}

// Scheduler 애플리케이션 설정 파일(AppConfig)에 정의된 주기 작업들을 Cron 스케줄에 맞춰 자동으로 실행하는 서비스입니다.
//
// 등록되는 작업은 다음 두 가지입니다:
//   - 가격 추적 배치: 추적 중인 전체 상품의 현재 가격을 수집하고 가격 변동 알림 메일을 발송
//   - 환율 스냅샷 갱신: 외부 환율 API에서 최신 환율을 수집하여 저장소에 캐시
type Scheduler struct {
	jobs []job

	cron *cron.Cron

	// adminNotifier 작업 실패 시 관리자 알림 전송을 담당하는 인터페이스입니다.
	adminNotifier contract.AdminNotifier

	running   bool
	runningMu sync.Mutex
}

// NewService 새로운 Scheduler 서비스 인스턴스를 생성합니다.
func NewService(appConfig *config.AppConfig, batchRunner contract.BatchRunner, rateRefresher RateRefresher, adminNotifier contract.AdminNotifier) *Scheduler {
	if appConfig == nil {
		panic("AppConfig는 필수입니다")
	}
	if batchRunner == nil {
		panic("BatchRunner는 필수입니다")
	}
	if rateRefresher == nil {
		panic("RateRefresher는 필수입니다")
	}
	if adminNotifier == nil {
		panic("AdminNotifier는 필수입니다")
	}

	return &Scheduler{
		jobs: []job{
			{
				name:     jobPriceBatch,
				schedule: appConfig.Tracker.Scheduler,
				timeout:  batchRunTimeout,
				run: func(ctx context.Context) error {
					_, err := batchRunner.Run(ctx)
					return err
				},
			},
			{
				name:     jobRateRefresh,
				schedule: appConfig.Currency.Scheduler,
				timeout:  rateRefreshTimeout,
				run:      rateRefresher.Refresh,
			},
		},

		adminNotifier: adminNotifier,
	}
}

// Start 스케줄러를 시작하고 설정 파일에 정의된 주기 작업들을 Cron 엔진에 등록합니다.
//
// 매개변수:
//   - serviceStopCtx: 서비스 종료 신호를 받기 위한 Context
//   - serviceStopWG: 서비스 종료 완료를 알리기 위한 WaitGroup
//
// 반환값:
//   - error: adminNotifier가 초기화되지 않은 경우
func (s *Scheduler) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(component).Info("서비스 시작 진입: Scheduler 서비스 초기화 프로세스를 시작합니다")

	if s.adminNotifier == nil {
		serviceStopWG.Done()
		return ErrAdminNotifierNotInitialized
	}

	if s.running {
		serviceStopWG.Done()
		applog.WithComponent(component).Warn("Scheduler 서비스가 이미 실행 중입니다 (중복 호출)")
		return nil
	}

	// 1. Cron 엔진 초기화
	// - StandardParser: 초 단위 스케줄링 지원 (6개 필드: 초 분 시 일 월 요일)
	// - Recover: Panic 발생 시 복구하여 다른 작업에 영향을 주지 않음
	// - SkipIfStillRunning: 이전 실행이 끝나지 않았으면 다음 실행을 건너뜀
	s.cron = cron.New(
		cron.WithParser(cronx.StandardParser()),
		cron.WithLogger(cron.VerbosePrintfLogger(applog.StandardLogger())),
		cron.WithChain(
			cron.Recover(cron.VerbosePrintfLogger(applog.StandardLogger())),
			cron.SkipIfStillRunning(cron.VerbosePrintfLogger(applog.StandardLogger())),
		),
	)

	// 2. 작업 등록
	s.registerJobs()

	// 3. 스케줄러 시작
	s.cron.Start()
	s.running = true

	// 등록된 스케줄 개수 로깅
	applog.WithComponentAndFields(component, applog.Fields{
		"registered_schedules": len(s.cron.Entries()),
		"total_defined_jobs":   len(s.jobs),
	}).Info("서비스 시작 완료: Scheduler 서비스가 정상적으로 초기화되었습니다")

	// 4. 종료 신호 대기 (고루틴)
	// 서비스 생명주기 컨텍스트(serviceStopCtx)의 취소 이벤트를 비동기로 모니터링합니다.
	// 종료 시그널 수신 시 Stop() 메서드를 호출하여 리소스를 안전하게 해제하고 그 결과를 보장합니다.
	go func() {
		defer serviceStopWG.Done()

		<-serviceStopCtx.Done()

		s.Stop()
	}()

	return nil
}

// Stop 실행 중인 스케줄러를 안전하게 중지합니다.
func (s *Scheduler) Stop() {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.running {
		return
	}

	applog.WithComponent(component).Info("종료 절차 진입: Scheduler 서비스 중지 시그널을 수신했습니다")

	// Cron 엔진 중지 및 실행 중인 작업 완료 대기
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}

	s.cron = nil
	s.running = false

	applog.WithComponent(component).Info("Scheduler 서비스 종료 완료: 모든 리소스가 정리되었습니다")
}

// registerJobs 정의된 모든 작업을 하나씩 살펴보며, "실행 가능(Runnable)" 플래그가 켜진 작업들만
// Cron 스케줄러에 등록합니다. 등록되지 않은 작업은 건너뛰므로, 설정에 따라 작업을 활성화/비활성화할 수 있습니다.
func (s *Scheduler) registerJobs() {
	for _, j := range s.jobs {
		if !j.schedule.Runnable {
			applog.WithComponentAndFields(component, applog.Fields{
				"job": j.name,
			}).Debug("비활성화된 작업을 건너뜁니다")
			continue
		}

		// 클로저 캡처 문제 방지를 위해 로컬 변수에 재할당 (중요!)
		// Go의 클로저는 변수의 참조를 캡처하므로, 루프 변수를 직접 사용하면 모든 클로저가 마지막 값을 참조하게 됩니다.
		j := j

		_, err := s.cron.AddFunc(j.schedule.TimeSpec, func() {
			s.runJob(j)
		})

		if err != nil {
			// 스케줄 파싱 실패 시 해당 작업만 건너뛰고 계속 진행
			message := fmt.Sprintf("스케줄 등록 실패: 잘못된 Cron 표현식입니다 (TimeSpec: %s)", j.schedule.TimeSpec)
			s.logAndNotifyError(j.name, message, err)
			continue
		}

		applog.WithComponentAndFields(component, applog.Fields{
			"job":       j.name,
			"time_spec": j.schedule.TimeSpec,
		}).Info("주기 작업이 스케줄러에 등록되었습니다")
	}
}

// runJob 단위 작업을 1회 실행하고 실패 시 로깅 및 관리자 알림을 전송합니다.
//
// 작업 실행의 생명주기는 서비스의 종료 시그널과 분리합니다.
// Graceful Shutdown 시 cron.Stop()이 실행 중인 모든 작업의 완료를 대기하므로,
// 작업 도중 컨텍스트 취소로 인한 강제 중단을 방지하고 데이터 정합성을 보장합니다.
// 대신 작업별 타임아웃을 적용하여 무한 대기(Hang)를 방지합니다.
func (s *Scheduler) runJob(j job) {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	startTime := time.Now()

	applog.WithComponentAndFields(component, applog.Fields{
		"job": j.name,
	}).Info("주기 작업 실행 시작")

	err := j.run(ctx)
	if err != nil {
		// API를 통해 수동 트리거된 배치가 아직 실행 중인 경우,
		// 장애가 아니므로 이번 주기만 건너뛰고 관리자 알림은 전송하지 않습니다.
		if apperrors.Is(err, apperrors.Conflict) {
			applog.WithComponentAndFields(component, applog.Fields{
				"job":   j.name,
				"error": err,
			}).Warn("이전 작업이 아직 실행 중이므로 이번 주기를 건너뜁니다")
			return
		}

		message := fmt.Sprintf("주기 작업 실행 실패: %s", j.name)
		s.logAndNotifyError(j.name, message, err)
		return
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"job":      j.name,
		"duration": time.Since(startTime).String(),
	}).Info("주기 작업 실행 완료")
}

// logAndNotifyError 스케줄러 실행 중 발생한 오류를 로깅하고 관리자에게 알림을 전송합니다.
func (s *Scheduler) logAndNotifyError(jobName, message string, err error) {
	fields := applog.Fields{
		"job": jobName,
	}
	if err != nil {
		fields["error"] = err
	}

	applog.WithComponentAndFields(component, fields).Error(message)

	ctx, cancel := context.WithTimeout(context.Background(), adminNotifyTimeout)
	defer cancel()

	if notifyErr := s.adminNotifier.NotifyAdminWithError(ctx, message, err); notifyErr != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"job":   jobName,
			"error": notifyErr,
		}).Error("관리자 알림 전송 실패")
	}
}
