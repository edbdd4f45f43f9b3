// Package system 시스템 엔드포인트 핸들러를 제공합니다.
//
// 헬스체크, 서비스 정보, 버전 정보 등 인증이 필요 없는 시스템 수준의 API를 처리합니다.
package system

import (
	"net/http"
	"runtime"

	"github.com/darkkaiser/voice-transcription-server/internal/config"
	"github.com/darkkaiser/voice-transcription-server/internal/pkg/version"
	"github.com/darkkaiser/voice-transcription-server/internal/service/api/constants"
	"github.com/darkkaiser/voice-transcription-server/internal/service/api/model/system"
	applog "github.com/darkkaiser/voice-transcription-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// Handler 시스템 엔드포인트 핸들러 (헬스체크, 서비스 정보, 버전 정보)
type Handler struct {
	buildInfo version.Info
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(buildInfo version.Info) *Handler {
	return &Handler{
		buildInfo: buildInfo,
	}
}

// HealthCheckHandler godoc
// @Summary 서버 헬스체크
// @Description 서버의 상태를 확인합니다.
// @Description 인증 없이 호출 가능하며, 모니터링 시스템에서 사용됩니다.
// @Description
// @Description 응답 필드:
// @Description - status: 서버 상태 (healthy)
// @Description - service: 서비스 식별자
// @Description - version: 서비스 버전
// @Tags System
// @Produce json
// @Success 200 {object} system.HealthResponse "헬스체크 결과"
// @Router /health [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/health",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgHealthCheck)

	return c.JSON(http.StatusOK, system.HealthResponse{
		Status:  constants.HealthStatusHealthy,
		Service: config.ServiceID,
		Version: config.ServiceVersion,
	})
}

// ServiceInfoHandler godoc
// @Summary 서비스 정보
// @Description 서비스 설명, 구동 상태, 제공 엔드포인트 목록을 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.ServiceInfoResponse "서비스 정보"
// @Router / [get]
func (h *Handler) ServiceInfoHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgServiceInfo)

	return c.JSON(http.StatusOK, system.ServiceInfoResponse{
		Message:   constants.ServiceDescription,
		Status:    constants.ServiceStatusRunning,
		Endpoints: constants.ServiceEndpoints,
	})
}

// VersionHandler godoc
// @Summary 서버 버전 정보
// @Description 서버의 Git 커밋 해시, 빌드 날짜, 빌드 번호, Go 버전을 반환합니다.
// @Description 디버깅 및 배포 버전 확인에 사용됩니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.VersionResponse "버전 정보"
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/version",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgVersionInfo)

	return c.JSON(http.StatusOK, system.VersionResponse{
		Version:       h.buildInfo.Version,
		GitCommitHash: h.buildInfo.Commit,
		BuildDate:     h.buildInfo.BuildDate,
		BuildNumber:   h.buildInfo.BuildNumber,
		GoVersion:     runtime.Version(),
	})
}
