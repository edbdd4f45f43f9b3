package system

// HealthResponse 헬스체크 응답 모델입니다.
type HealthResponse struct {
	// Status 서비스 상태 (정상인 경우 "healthy")
	Status string `json:"status" example:"healthy"`

	// Service 서비스 식별자
	Service string `json:"service" example:"voice_transcription"`

	// Version 서비스 버전
	Version string `json:"version" example:"1.0.0"`
}
