// Package config 애플리케이션 환경설정의 로드와 검증을 담당합니다.
//
// 설정은 다음 우선순위로 계층화됩니다. (뒤로 갈수록 높은 우선순위)
//
//  1. 기본값 (confmap)
//  2. JSON 설정 파일 (voice-transcription-server.json, 선택사항)
//  3. 환경 변수 (PORT 및 VTS_ 접두사)
package config

import (
	"fmt"
	"os"
	"strings"

	apperrors "github.com/darkkaiser/voice-transcription-server/internal/pkg/errors"
	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "voice-transcription-server"

	// ServiceID 서비스 식별자입니다. 헬스체크 응답 등 외부에 노출되는 서비스 이름으로 사용됩니다.
	ServiceID string = "voice_transcription"

	// ServiceVersion 외부에 노출되는 서비스 버전입니다.
	ServiceVersion string = "1.0.0"

	// DefaultFilename 애플리케이션 초기화 시 참조하는 기본 설정 파일명입니다.
	// 이 파일이 존재하지 않아도 서버는 기본값과 환경 변수만으로 구동됩니다.
	DefaultFilename = AppName + ".json"

	// DefaultListenPort 웹 서버의 기본 포트입니다.
	// PORT 환경 변수가 설정되지 않은 경우 이 값이 사용됩니다.
	DefaultListenPort = 9001

	// portEnvKey 웹 서버 포트를 지정하는 환경 변수 이름입니다.
	portEnvKey = "PORT"

	// envPrefix 포트 외의 설정을 재정의하는 환경 변수의 접두사입니다.
	// 이중 언더스코어(__)를 점(.)으로 변환하여 계층 구조를 표현합니다.
	// 예: VTS_WS__LISTEN_PORT -> ws.listen_port
	envPrefix = "VTS_"
)

// AppConfig 애플리케이션의 모든 설정을 관장하는 최상위 루트 구조체
type AppConfig struct {
	Debug bool       `json:"debug"`
	WS    WSConfig   `json:"ws"`
	CORS  CORSConfig `json:"cors"`
}

// validate 설정 로드 직후, 각 설정 항목의 정합성과 필수 값의 유효성을 검증합니다.
func (c *AppConfig) validate() error {
	if err := c.WS.validate(); err != nil {
		return err
	}

	if err := c.CORS.validate(); err != nil {
		return err
	}

	return nil
}

// VerifyRecommendations 서비스 운영의 안정성과 보안을 위해 권장되는 설정 준수 여부를 진단합니다.
// 강제적인 에러를 발생시키지는 않으나, 잠재적 위험 요소(예: Well-known Port 사용)에 대한 경고 메시지를 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	return c.WS.VerifyRecommendations()
}

// WSConfig 웹 서버의 포트 및 TLS(HTTPS) 보안 설정을 정의하는 구조체
type WSConfig struct {
	TLSServer   bool   `json:"tls_server"`
	TLSCertFile string `json:"tls_cert_file" validate:"required_if=TLSServer true,omitempty,file"`
	TLSKeyFile  string `json:"tls_key_file" validate:"required_if=TLSServer true,omitempty,file"`
	ListenPort  int    `json:"listen_port" validate:"min=1,max=65535"`
}

func (c *WSConfig) validate() error {
	if err := validate.Struct(c); err != nil {
		// Validator 에러를 사용자 친화적인 메시지로 변환한다.
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			for _, fieldErr := range validationErrors {
				switch fieldErr.StructField() {
				case "ListenPort":
					return apperrors.New(apperrors.InvalidInput, "웹 서버 포트(listen_port)는 1에서 65535 사이의 값이어야 합니다")
				case "TLSCertFile":
					switch fieldErr.Tag() {
					case "required_if":
						return apperrors.New(apperrors.InvalidInput, "TLS 서버 활성화 시 인증서 파일 경로(tls_cert_file)는 필수입니다")
					case "file":
						return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("지정된 TLS 인증서 파일(tls_cert_file)을 찾을 수 없습니다: '%v'", fieldErr.Value()))
					default:
						return apperrors.New(apperrors.InvalidInput, "TLS 인증서 파일 경로(tls_cert_file) 설정이 올바르지 않습니다")
					}
				case "TLSKeyFile":
					switch fieldErr.Tag() {
					case "required_if":
						return apperrors.New(apperrors.InvalidInput, "TLS 서버 활성화 시 키 파일 경로(tls_key_file)는 필수입니다")
					case "file":
						return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("지정된 TLS 키 파일(tls_key_file)을 찾을 수 없습니다: '%v'", fieldErr.Value()))
					default:
						return apperrors.New(apperrors.InvalidInput, "TLS 키 파일 경로(tls_key_file) 설정이 올바르지 않습니다")
					}
				}
			}
		}
		return apperrors.Wrap(err, apperrors.InvalidInput, "웹 서버 설정 검증 중 알 수 없는 오류가 발생했습니다")
	}

	return nil
}

func (c *WSConfig) VerifyRecommendations() []string {
	var warnings []string

	// 시스템 예약 포트(1024 미만) 사용 경고
	if c.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 이 경우 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.ListenPort))
	}

	return warnings
}

// CORSConfig 웹 브라우저의 교차 출처 리소스 공유(CORS) 정책을 설정하는 구조체
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"dive,cors_origin"`
}

func (c *CORSConfig) validate() error {
	if len(c.AllowOrigins) == 0 {
		return apperrors.New(apperrors.InvalidInput, "CORS 허용 도메인(allow_origins) 목록이 비어있습니다")
	}

	for _, origin := range c.AllowOrigins {
		if origin == "*" {
			if len(c.AllowOrigins) > 1 {
				return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
			}

			// 와일드카드만 있는 경우는 유효함 (validator skip)
			continue
		}
	}

	// 각 Origin 유효성 검사
	if err := validate.Struct(c); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			for _, fieldErr := range validationErrors {
				if fieldErr.Tag() == "cors_origin" {
					return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("CORS Origin 형식이 올바르지 않습니다: '%v' (형식: Scheme://Host[:Port], 예: https://example.com)", fieldErr.Value()))
				}
			}
		}
		return apperrors.Wrap(err, apperrors.InvalidInput, "CORS 설정 검증 중 알 수 없는 오류가 발생했습니다")
	}
	return nil
}

// Load 기본 설정 파일을 읽어 애플리케이션 설정을 로드합니다.
func Load() (*AppConfig, error) {
	return LoadWithFile(DefaultFilename)
}

// LoadWithFile 지정된 경로의 설정 파일을 반영하여 AppConfig 객체를 생성합니다.
// 설정 파일이 존재하지 않는 경우에는 기본값과 환경 변수만으로 설정을 구성합니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값 로드 (가장 낮은 우선순위)
	err := k.Load(confmap.Provider(map[string]interface{}{
		"debug":              false,
		"ws.listen_port":     DefaultListenPort,
		"cors.allow_origins": []string{"*"},
	}, "."), nil)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일 로드 (기본값 덮어쓰기, 파일이 없으면 건너뜀)
	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		if !os.IsNotExist(err) {
			return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
		}
	}

	// 3. 환경 변수 로드 (최우선 순위, JSON 설정 덮어쓰기)
	//   - PORT: 웹 서버 포트 (ws.listen_port로 매핑)
	//   - VTS_*: 이중 언더스코어(__)를 점(.)으로 변환하여 계층 구조 표현
	//     예: VTS_CORS__ALLOW_ORIGINS -> cors.allow_origins
	//   - 그 외 환경 변수는 빈 키를 반환하여 무시합니다.
	if err := k.Load(env.Provider("", ".", func(s string) string {
		if s == portEnvKey {
			return "ws.listen_port"
		}
		if strings.HasPrefix(s, envPrefix) {
			s = strings.TrimPrefix(s, envPrefix)
			s = strings.ToLower(s)
			return strings.ReplaceAll(s, "__", ".")
		}
		return ""
	}), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 4. 구조체 언마샬링 (Strict Validation 적용)
	var appConfig AppConfig
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			ErrorUnused:      true, // 파일에 존재하지만 구조체에 없는 필드가 있을 경우 에러를 발생시킴
			WeaklyTypedInput: true, // 환경 변수로 주입된 문자열("8080")을 숫자 타입으로 허용
			Result:           &appConfig,
		},
	}
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	// 5. 유효성 검사 수행 (정합성 체크)
	if err := appConfig.validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "환경설정의 유효성 검증에 실패했습니다")
	}

	return &appConfig, nil
}
