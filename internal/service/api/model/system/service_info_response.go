package system

// ServiceInfoResponse 루트 엔드포인트의 서비스 정보 응답 모델입니다.
type ServiceInfoResponse struct {
	// Message 서비스 설명 메시지
	Message string `json:"message" example:"Voice Transcription Service"`

	// Status 서비스 구동 상태
	Status string `json:"status" example:"running"`

	// Endpoints 서비스가 제공하는 엔드포인트 목록
	Endpoints []string `json:"endpoints" example:"/health"`
}
