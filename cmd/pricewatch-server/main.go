package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/darkkaiser/pricewatch-server/internal/config"
	"github.com/darkkaiser/pricewatch-server/internal/pkg/version"
	"github.com/darkkaiser/pricewatch-server/internal/service"
	"github.com/darkkaiser/pricewatch-server/internal/service/api"
	"github.com/darkkaiser/pricewatch-server/internal/service/currency"
	"github.com/darkkaiser/pricewatch-server/internal/service/notification/email"
	"github.com/darkkaiser/pricewatch-server/internal/service/notification/mail"
	"github.com/darkkaiser/pricewatch-server/internal/service/notification/telegram"
	"github.com/darkkaiser/pricewatch-server/internal/service/scheduler"
	"github.com/darkkaiser/pricewatch-server/internal/service/tracker"
	"github.com/darkkaiser/pricewatch-server/internal/service/tracker/fetcher"
	"github.com/darkkaiser/pricewatch-server/internal/service/tracker/scrape"
	"github.com/darkkaiser/pricewatch-server/internal/service/tracker/store"
	applog "github.com/darkkaiser/pricewatch-server/pkg/log"
	log "github.com/sirupsen/logrus"
)

// @title PriceWatch Server API
// @version 1.0.0
// @description 웹 스크래핑으로 상품 가격을 추적하고 가격 변동을 메일로 알리는 서버의 REST API입니다.
// @description
// @description 이 API를 사용하면 상품 URL을 등록하여 가격 추적을 시작하고,
// @description 가격 하락, 최저가 갱신, 재입고 등의 변동 알림 메일을 받을 수 있습니다.
// @description
// @description ## 주요 기능
// @description - 상품 URL 등록 및 가격 알림 구독
// @description - 추적 중인 상품 목록/상세 조회
// @description - 가격 알림 구독 해지 (메일 내 링크)
// @description - 가격 추적 배치 수동 실행 (인증 필요)
// @description
// @description ## 인증 방법
// @description 배치 트리거 API(/api/v1/cron/trigger)는 사전에 공유된 비밀 키가 필요합니다.
// @description 설정 파일(pricewatch-server.json)의 tracker.trigger_secret_key에 키를 등록한 후,
// @description X-App-Key 헤더(권장) 또는 key 쿼리 파라미터로 전달하세요.

// @termsOfService http://swagger.io/terms/

// @contact.name DarkKaiser
// @contact.url https://www.darkkaiser.com
// @contact.email darkkaiser@naver.com

// @host localhost:2443
// @BasePath /

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-App-Key
// @description 배치 트리거 인증용 공유 비밀 키

const (
	banner = `
  ____       _           __        __      _         _
 |  _ \ _ __(_) ___ ___  \ \      / /__ _ | |_  ___ | |__
 | |_) | '__| |/ __/ _ \  \ \ /\ / / _` + "`" + ` || __|/ __|| '_ \
 |  __/| |  | | (__  __/   \ V  V / (_| || |_| (__ | | | |
 |_|   |_|  |_|\___\___|    \_/\_/ \__,_| \__|\___||_| |_|
                                                  %s
                                        developed by DarkKaiser
--------------------------------------------------------------------------------
`
)

func main() {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := config.Load()
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	var logOpts applog.Options
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	} else {
		logOpts = applog.NewProductionOptions(config.AppName)
	}

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	// 3. 로그 레벨 최종 확정
	applog.SetDebugMode(appConfig.Debug)

	// 설정 권장사항 위반 경고 출력
	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent("main").Warn(warning)
	}

	// 빌드 정보 조회 (ldflags로 주입된 값은 version 패키지 초기화 시점에 반영됨)
	buildInfo := version.Get()

	// 아스키아트 출력(https://ko.rakko.tools/tools/68/, 폰트:standard)
	fmt.Printf(banner, buildInfo.Version)

	// 빌드 정보 출력
	applog.WithComponentAndFields("main", log.Fields{
		"version": buildInfo.String(),
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("서버 초기화 시작")

	// 의존성을 생성하고 초기화한다.
	f := fetcher.NewFromConfig(appConfig)

	productStore, err := store.NewFileProductStore(appConfig.Store.Dir)
	if err != nil {
		log.Fatalf("상품 저장소 초기화 실패: %v", err)
	}

	rateStore, err := store.NewFileRateStore(appConfig.Store.Dir)
	if err != nil {
		log.Fatalf("환율 저장소 초기화 실패: %v", err)
	}

	selectors, err := scrape.SelectorsFromConfig(appConfig.Tracker.Selectors)
	if err != nil {
		log.Fatalf("셀렉터 설정 로드 실패: %v", err)
	}

	adminNotifier, err := telegram.NewAdminNotifierFromConfig(&appConfig.AdminNotifier.Telegram)
	if err != nil {
		log.Fatalf("운영자 알림 초기화 실패: %v", err)
	}

	emailBuilder, err := email.NewBuilder(appConfig.Mail.SiteURL)
	if err != nil {
		log.Fatalf("메일 템플릿 초기화 실패: %v", err)
	}

	converter := currency.NewConverter(appConfig.Currency.APIURL, f, rateStore)
	mailSender := mail.NewSenderFromConfig(&appConfig.Mail)

	trackerService := tracker.New(f, productStore, selectors, converter, mailSender, adminNotifier, emailBuilder)

	// 서비스를 생성하고 초기화한다.
	apiService := api.NewService(appConfig, productStore, trackerService, trackerService, adminNotifier, buildInfo)
	schedulerService := scheduler.NewService(appConfig, trackerService, converter, adminNotifier)

	// Set up cancellation context and waitgroup
	serviceStopCtx, cancel := context.WithCancel(context.Background())
	serviceStopWG := &sync.WaitGroup{}

	// 서비스를 시작한다.
	services := []service.Service{apiService, schedulerService}
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields("main", log.Fields{
				"error": err,
			}).Error("서비스 초기화 실패")

			cancel() // 다른 서비스들도 종료
			serviceStopWG.Wait()

			log.Fatal("서비스 초기화 실패로 프로그램을 종료합니다")
		}
	}

	// Handle sigterm and await termC signal
	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)

	applog.WithComponent("main").Info("서버 가동 완료")

	<-termC // Blocks here until interrupted

	// Handle shutdown
	applog.WithComponent("main").Info("Shutdown signal received")
	cancel()             // Signal cancellation to context.Context
	serviceStopWG.Wait() // Block here until are workers are done
}
