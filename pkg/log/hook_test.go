package log

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestHook 테스트용 Writer들이 연결된 hook을 생성합니다.
func newTestHook() (*hook, *bytes.Buffer, *bytes.Buffer, *bytes.Buffer) {
	mainBuf := &bytes.Buffer{}
	criticalBuf := &bytes.Buffer{}
	verboseBuf := &bytes.Buffer{}

	h := &hook{
		mainWriter:     mainBuf,
		criticalWriter: criticalBuf,
		verboseWriter:  verboseBuf,
		formatter:      &logrus.TextFormatter{DisableTimestamp: true},
	}

	return h, mainBuf, criticalBuf, verboseBuf
}

func newTestEntry(level Level, msg string) *Entry {
	entry := logrus.NewEntry(logrus.New())
	entry.Level = level
	entry.Message = msg
	return entry
}

func TestHook_Fire(t *testing.T) {
	t.Parallel()

	t.Run("Info 로그는 Main에만 기록", func(t *testing.T) {
		t.Parallel()
		h, mainBuf, criticalBuf, verboseBuf := newTestHook()

		require.NoError(t, h.Fire(newTestEntry(InfoLevel, "서버 시작")))

		assert.Contains(t, mainBuf.String(), "서버 시작")
		assert.Empty(t, criticalBuf.String())
		assert.Empty(t, verboseBuf.String())
	})

	t.Run("Error 로그는 Critical과 Main에 모두 기록", func(t *testing.T) {
		t.Parallel()
		h, mainBuf, criticalBuf, verboseBuf := newTestHook()

		require.NoError(t, h.Fire(newTestEntry(ErrorLevel, "치명적 오류")))

		assert.Contains(t, mainBuf.String(), "치명적 오류")
		assert.Contains(t, criticalBuf.String(), "치명적 오류")
		assert.Empty(t, verboseBuf.String())
	})

	t.Run("Debug 로그는 Verbose에만 기록", func(t *testing.T) {
		t.Parallel()
		h, mainBuf, criticalBuf, verboseBuf := newTestHook()

		require.NoError(t, h.Fire(newTestEntry(DebugLevel, "디버그 정보")))

		assert.Empty(t, mainBuf.String())
		assert.Empty(t, criticalBuf.String())
		assert.Contains(t, verboseBuf.String(), "디버그 정보")
	})

	t.Run("Close 이후 로그 기록 차단", func(t *testing.T) {
		t.Parallel()
		h, mainBuf, _, _ := newTestHook()

		require.NoError(t, h.Close())
		require.NoError(t, h.Fire(newTestEntry(InfoLevel, "닫힌 후 로그")))

		assert.Empty(t, mainBuf.String())
	})
}

func TestCloser_Close(t *testing.T) {
	t.Parallel()

	t.Run("중복 Close 호출은 안전", func(t *testing.T) {
		t.Parallel()
		h, _, _, _ := newTestHook()
		c := &closer{hook: h}

		assert.NoError(t, c.Close())
		assert.NoError(t, c.Close())
	})
}
