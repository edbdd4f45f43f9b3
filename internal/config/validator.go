package config

import (
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate 패키지 전역에서 공유하는 Validator 인스턴스입니다.
// 커스텀 검증 규칙(cors_origin)이 등록된 상태로 초기화됩니다.
var validate = newValidator()

// newValidator 커스텀 검증 규칙이 등록된 Validator를 생성합니다.
func newValidator() *validator.Validate {
	v := validator.New()

	// cors_origin CORS Origin 형식(Scheme://Host[:Port]) 검증 규칙
	// 와일드카드(*)는 CORSConfig.validate()에서 별도로 처리하므로 여기서도 허용합니다.
	if err := v.RegisterValidation("cors_origin", validateCORSOrigin); err != nil {
		// 검증 규칙 등록 실패는 프로그래밍 오류이므로 즉시 중단합니다.
		panic(err)
	}

	return v
}

// validateCORSOrigin CORS Origin 문자열이 Scheme://Host[:Port] 형식인지 검증합니다.
//
// 유효한 예: https://example.com, http://localhost:3000, *
// 무효한 예: example.com (스킴 누락), https:// (호스트 누락), https://example.com/path (경로 포함)
func validateCORSOrigin(fl validator.FieldLevel) bool {
	origin := fl.Field().String()

	// 와일드카드는 허용 (목록 단독 사용 여부는 상위에서 검증)
	if origin == "*" {
		return true
	}

	u, err := url.Parse(origin)
	if err != nil {
		return false
	}

	// 스킴은 http/https만 허용
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}

	// 호스트 필수
	if u.Host == "" {
		return false
	}

	// Origin은 경로/쿼리/프래그먼트를 포함할 수 없음
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		return false
	}

	// URL 정규화 과정에서 누락될 수 있는 후행 슬래시 검사
	if strings.HasSuffix(origin, "/") {
		return false
	}

	return true
}
