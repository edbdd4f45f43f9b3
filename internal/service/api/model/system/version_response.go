package system

// VersionResponse 버전 정보 응답 모델입니다.
type VersionResponse struct {
	// Version 애플리케이션 버전
	Version string `json:"version" example:"1.0.0"`

	// GitCommitHash Git 커밋 해시
	GitCommitHash string `json:"git_commit_hash,omitempty" example:"a1b2c3d"`

	// BuildDate 빌드 일시
	BuildDate string `json:"build_date,omitempty" example:"2026-01-02T15:04:05Z"`

	// BuildNumber CI 빌드 번호
	BuildNumber string `json:"build_number,omitempty" example:"128"`

	// GoVersion 빌드에 사용된 Go 버전
	GoVersion string `json:"go_version,omitempty" example:"go1.24.0"`
}
