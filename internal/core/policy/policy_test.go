package policy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestDecide_NoRetries 测试 retries=0：恰好一次尝试，首次失败即终止
func TestDecide_NoRetries(t *testing.T) {
	d := Decide(0, 10*time.Millisecond, Config{Retries: 0})
	assert.Equal(t, KindFail, d.Kind)
}

// TestDecide_RetryBudget 测试重试预算边界：attempt < retries 才允许重试
func TestDecide_RetryBudget(t *testing.T) {
	cfg := Config{Retries: 3}

	for attempt := 0; attempt < 3; attempt++ {
		d := Decide(attempt, 0, cfg)
		assert.Equal(t, KindRetry, d.Kind, "attempt %d", attempt)
		assert.Equal(t, time.Duration(0), d.Delay)
	}

	// 第 3 次失败（即第 4 次尝试之前）预算耗尽
	d := Decide(3, 0, cfg)
	assert.Equal(t, KindFail, d.Kind)
}

// TestDecide_TimeoutPreemptsRetries 测试超时抢占剩余重试预算
func TestDecide_TimeoutPreemptsRetries(t *testing.T) {
	cfg := Config{Retries: 1000, Timeout: 50 * time.Millisecond}

	d := Decide(0, 50*time.Millisecond, cfg)
	assert.Equal(t, KindTimedOut, d.Kind)

	d = Decide(0, time.Hour, cfg)
	assert.Equal(t, KindTimedOut, d.Kind)

	// 预算未耗尽时正常重试
	d = Decide(0, 49*time.Millisecond, cfg)
	assert.Equal(t, KindRetry, d.Kind)
}

// TestDecide_NoTimeout 测试 Timeout<=0 不设预算
func TestDecide_NoTimeout(t *testing.T) {
	d := Decide(0, 24*time.Hour, Config{Retries: 1})
	assert.Equal(t, KindRetry, d.Kind)
}

// TestDecide_DelayFunc 测试延迟函数按尝试序号求值
func TestDecide_DelayFunc(t *testing.T) {
	cfg := Config{
		Retries: 5,
		Delay: func(attempt int) time.Duration {
			return time.Duration(attempt+1) * 10 * time.Millisecond
		},
	}

	for attempt := 0; attempt < 3; attempt++ {
		d := Decide(attempt, 0, cfg)
		assert.Equal(t, KindRetry, d.Kind)
		assert.Equal(t, time.Duration(attempt+1)*10*time.Millisecond, d.Delay)
	}
}

// TestDecide_NegativeDelayClamped 测试负延迟按 0 处理
func TestDecide_NegativeDelayClamped(t *testing.T) {
	cfg := Config{
		Retries: 1,
		Delay:   func(int) time.Duration { return -time.Second },
	}
	d := Decide(0, 0, cfg)
	assert.Equal(t, KindRetry, d.Kind)
	assert.Equal(t, time.Duration(0), d.Delay)
}

// TestKind_String 测试决策种类的字符串表示
func TestKind_String(t *testing.T) {
	assert.Equal(t, "retry", KindRetry.String())
	assert.Equal(t, "fail", KindFail.String())
	assert.Equal(t, "timed_out", KindTimedOut.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
