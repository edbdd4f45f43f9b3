package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/darkkaiser/voice-transcription-server/internal/config"
	"github.com/darkkaiser/voice-transcription-server/internal/pkg/version"
	"github.com/darkkaiser/voice-transcription-server/internal/service"
	"github.com/darkkaiser/voice-transcription-server/internal/service/api"
	applog "github.com/darkkaiser/voice-transcription-server/pkg/log"
	log "github.com/sirupsen/logrus"
)

// @title Voice Transcription Service API
// @version 1.0.0
// @description 음성 전사 서비스의 상태 확인용 REST API 서버입니다.
// @description
// @description ## 주요 기능
// @description - 서비스 헬스체크 (/health)
// @description - 서비스 정보 조회 (/)
// @description - 빌드 버전 정보 조회 (/version)
// @description
// @description 모든 엔드포인트는 인증 없이 호출 가능하며,
// @description 쿠버네티스 Liveness/Readiness Probe 및 로드밸런서 헬스체크에서 사용됩니다.

// @contact.name DarkKaiser
// @contact.url https://www.darkkaiser.com
// @contact.email darkkaiser@gmail.com

// @BasePath /

const (
	banner = `
 __     __     _              ____
 \ \   / /__  (_) ___  ___   / ___|  ___  _ __ __   __  ___  _ __
  \ \ / / _ \ | |/ __|/ _ \  \___ \ / _ \| '__|\ \ / / / _ \| '__|
   \ V / (_) || | (__|  __/   ___) |  __/| |    \ V / |  __/| |
    \_/ \___/ |_|\___|\___|  |____/  \___||_|    \_/   \___||_|
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

	// 아스키아트 출력(https://ko.rakko.tools/tools/68/, 폰트:standard)
	buildInfo := version.Get()
	fmt.Printf(banner, buildInfo.Version)

	// 빌드 정보 출력
	applog.WithComponentAndFields("main", log.Fields{
		"version": buildInfo.String(),
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("서버 초기화 시작")

	// 권장 설정 준수 여부 진단
	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent("main").Warn(warning)
	}

	// 서비스를 생성하고 초기화한다.
	apiService := api.NewService(appConfig, buildInfo)

	// Set up cancellation context and waitgroup
	serviceStopCtx, cancel := context.WithCancel(context.Background())
	serviceStopWG := &sync.WaitGroup{}

	// 서비스를 시작한다.
	services := []service.Service{apiService}
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
