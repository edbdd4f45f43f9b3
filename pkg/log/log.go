// Package log 애플리케이션 전역 로깅 시스템의 퍼사드(Facade)입니다.
//
// logrus를 기반으로 파일 로테이션(lumberjack), 레벨별 출력 분리, 콘솔 출력을
// 일관된 방식으로 제공합니다. 애플리케이션 코드는 logrus를 직접 다루지 않고
// 이 패키지의 헬퍼 함수를 통해 로그를 기록합니다.
package log

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// StandardLogger 전역 logrus 표준 로거를 반환합니다.
// Echo 등 외부 프레임워크와의 로거 통합에 사용합니다.
func StandardLogger() *log.Logger {
	return log.StandardLogger()
}

// SetOutput 전역 로거의 출력 Writer를 설정합니다.
// 주로 테스트에서 로그 출력을 캡처하기 위해 사용합니다.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// SetFormatter 전역 로거의 포맷터를 설정합니다.
func SetFormatter(formatter log.Formatter) {
	log.SetFormatter(formatter)
}

// SetDebugMode Debug 모드에 따라 로그 레벨을 설정합니다.
// - Debug 모드: Trace 레벨 (모든 로그 출력)
// - 운영 모드: Info 레벨 (Info, Warn, Error, Fatal만 출력)
func SetDebugMode(debug bool) {
	if debug {
		log.SetLevel(log.TraceLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

// WithFields 필드를 포함한 로그 Entry를 반환합니다.
func WithFields(fields log.Fields) *log.Entry {
	return log.WithFields(fields)
}

// WithComponent component 필드를 포함한 로그 Entry를 반환합니다.
// 모든 로그에 component 필드를 일관되게 추가하기 위해 사용합니다.
func WithComponent(component string) *log.Entry {
	return log.WithFields(log.Fields{
		"component": component,
	})
}

// WithComponentAndFields component 필드와 추가 필드를 포함한 로그 Entry를 반환합니다.
func WithComponentAndFields(component string, fields log.Fields) *log.Entry {
	newFields := make(log.Fields, len(fields)+1)
	for k, v := range fields {
		newFields[k] = v
	}
	newFields["component"] = component
	return log.WithFields(newFields)
}
