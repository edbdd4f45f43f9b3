package constants

// 로깅 시 로그의 발생 위치(컴포넌트)를 식별하기 위한 상수입니다.
const (
	// ComponentHandler 핸들러 로그의 컴포넌트 이름입니다.
	ComponentHandler = "api.handler"

	// ComponentService 서비스 로그의 컴포넌트 이름입니다.
	ComponentService = "api.service"

	// ComponentMiddleware 미들웨어 로그의 컴포넌트 이름입니다.
	ComponentMiddleware = "api.middleware"

	// ComponentErrorHandler 에러 핸들러 로그의 컴포넌트 이름입니다.
	ComponentErrorHandler = "api.error_handler"
)

// 클라이언트에게 반환되는 표준 에러 메시지 상수입니다.
const (
	// ErrMsgBadRequest 400 Bad Request 에러 메시지입니다.
	ErrMsgBadRequest = "잘못된 요청입니다."

	// ErrMsgNotFound 404 Not Found 에러 메시지입니다.
	ErrMsgNotFound = "페이지를 찾을 수 없습니다."

	// ErrMsgInternalServer 500 Internal Server Error 메시지입니다.
	ErrMsgInternalServer = "내부 서버 오류가 발생했습니다."

	// ErrMsgTooManyRequests 429 Too Many Requests 에러 메시지입니다.
	ErrMsgTooManyRequests = "요청이 너무 많습니다. 잠시 후 다시 시도해주세요."
)

// 보안상 로그에 남길 때 마스킹(가림) 처리해야 할 쿼리 파라미터 목록입니다.
var SensitiveQueryParams = []string{
	"api_key",
	"password",
	"token",
	"secret",
}
