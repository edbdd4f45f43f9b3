package constants

// 헬스체크 및 시스템 상태 관련 상수입니다.
const (
	// HealthStatusHealthy 헬스체크 상태: 정상
	HealthStatusHealthy = "healthy"

	// ServiceStatusRunning 루트 엔드포인트에 노출되는 서비스 구동 상태
	ServiceStatusRunning = "running"

	// ServiceDescription 루트 엔드포인트에 노출되는 서비스 설명
	ServiceDescription = "Voice Transcription Service"
)

// ServiceEndpoints 루트 엔드포인트에 노출되는 서비스 엔드포인트 목록입니다.
var ServiceEndpoints = []string{"/health"}
