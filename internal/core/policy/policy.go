package policy

import (
	"time"

	"github.com/dep2p/go-lazyload/pkg/types"
)

// Kind 决策种类
type Kind int

const (
	// KindRetry 等待 Decision.Delay 后重试
	KindRetry Kind = iota

	// KindFail 重试预算耗尽，序列终止
	KindFail

	// KindTimedOut 总时间预算耗尽，抢占剩余重试预算
	KindTimedOut
)

func (k Kind) String() string {
	switch k {
	case KindRetry:
		return "retry"
	case KindFail:
		return "fail"
	case KindTimedOut:
		return "timed_out"
	default:
		return "unknown"
	}
}

// Decision 一次失败后的处置决策
type Decision struct {
	Kind Kind

	// Delay 仅 KindRetry 有效：重试前的等待时长
	Delay time.Duration
}

// Config 策略配置
//
// Retries=0 表示恰好一次尝试、不重试；Delay 为 nil 表示立即重试；
// Timeout<=0 表示不设总预算。
type Config struct {
	// Retries 首次失败后允许的最大重试次数
	Retries int

	// Delay 按尝试序号计算退避时长，nil 等价于恒零
	Delay types.DelayFunc

	// Timeout 一次逻辑加载的总时间预算，跨越所有重试
	Timeout time.Duration
}

// Decide 判定第 attempt 次尝试失败后的处置
//
// attempt 从 0 开始计数；elapsed 为序列开始以来的已消耗时长。
// 策略只负责求值配置的延迟函数，本身不强加增长曲线。
func Decide(attempt int, elapsed time.Duration, cfg Config) Decision {
	// 超时优先于重试预算
	if cfg.Timeout > 0 && elapsed >= cfg.Timeout {
		return Decision{Kind: KindTimedOut}
	}
	if attempt < cfg.Retries {
		var d time.Duration
		if cfg.Delay != nil {
			d = cfg.Delay(attempt)
			if d < 0 {
				d = 0
			}
		}
		return Decision{Kind: KindRetry, Delay: d}
	}
	return Decision{Kind: KindFail}
}
