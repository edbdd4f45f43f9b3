// Package service 애플리케이션을 구성하는 서비스들의 공통 생명주기를 정의합니다.
package service

import (
	"context"
	"sync"
)

// Service 독립적인 생명주기를 가지는 서비스의 공통 인터페이스입니다.
//
// Start()는 서비스를 고루틴으로 시작하고 즉시 반환합니다.
// 서비스는 serviceStopCtx가 취소되면 종료 절차를 수행하고,
// 완료 시 serviceStopWG.Done()을 호출해야 합니다.
type Service interface {
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}
