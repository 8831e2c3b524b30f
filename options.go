package lazyload

import (
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dep2p/go-lazyload/internal/core/registry"
	"github.com/dep2p/go-lazyload/pkg/types"
)

// Option 用户配置选项函数
//
// 同一 Option 类型既用于 New（加载器级默认值），也用于
// Wrap/WrapAll/Preload（按句柄覆盖）。仅加载器级生效的选项
// （共享缓存、指标）在按句柄使用时无效果。
type Option func(*options) error

// options 内部选项结构
type options struct {
	// 句柄级配置
	cache   bool
	retries int
	delay   types.DelayFunc
	timeout time.Duration
	clk     clock.Clock

	// 加载器级配置
	sharedEnabled bool
	sharedCfg     registry.Config

	metricsEnabled bool
	registerer     prometheus.Registerer
}

// newOptions 创建默认选项
func newOptions() *options {
	return &options{
		cache:         true,
		clk:           clock.New(),
		sharedEnabled: true,
		sharedCfg:     registry.DefaultConfig(),
	}
}

func (o *options) apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return err
		}
	}
	return nil
}

func (o *options) clone() *options {
	c := *o
	return &c
}

// WithRetries 设置首次失败后的最大重试次数
//
// 0 表示恰好一次尝试、不重试（默认）。
func WithRetries(n int) Option {
	return func(o *options) error {
		if n < 0 {
			return fmt.Errorf("lazyload: retries must be non-negative, got %d", n)
		}
		o.retries = n
		return nil
	}
}

// WithRetryDelay 设置固定的重试间隔
func WithRetryDelay(d time.Duration) Option {
	return func(o *options) error {
		if d < 0 {
			return fmt.Errorf("lazyload: retry delay must be non-negative, got %s", d)
		}
		o.delay = FixedDelay(d)
		return nil
	}
}

// WithRetryDelayFunc 设置按尝试序号求值的退避函数
//
// 见 FixedDelay / LinearBackoff / ExponentialBackoff。
func WithRetryDelayFunc(f DelayFunc) Option {
	return func(o *options) error {
		if f == nil {
			return fmt.Errorf("lazyload: retry delay func is nil")
		}
		o.delay = f
		return nil
	}
}

// WithTimeout 设置一次逻辑加载的总时间预算，跨越所有重试
//
// 预算耗尽时抢占剩余重试次数并取消进行中的解析尝试。
func WithTimeout(d time.Duration) Option {
	return func(o *options) error {
		if d <= 0 {
			return fmt.Errorf("lazyload: timeout must be positive, got %s", d)
		}
		o.timeout = d
		return nil
	}
}

// WithoutCache 关闭成功结果的记忆，每次 Invoke 都重新获取
func WithoutCache() Option {
	return func(o *options) error {
		o.cache = false
		return nil
	}
}

// WithClock 注入计时来源，测试可传入 clock.NewMock()
func WithClock(c clock.Clock) Option {
	return func(o *options) error {
		if c == nil {
			return fmt.Errorf("lazyload: clock is nil")
		}
		o.clk = c
		return nil
	}
}

// WithSharedCache 配置进程级共享缓存（加载器级）
//
// size 为容量（0 表示不限），ttl 为条目存活时长（0 表示不过期）。
// 共享缓存按标识符键控，Preload 的结果经由它供后续句柄命中。
// 默认启用，容量 128、不过期。
func WithSharedCache(size int, ttl time.Duration) Option {
	return func(o *options) error {
		if size < 0 {
			return fmt.Errorf("lazyload: shared cache size must be non-negative, got %d", size)
		}
		if ttl < 0 {
			return fmt.Errorf("lazyload: shared cache ttl must be non-negative, got %s", ttl)
		}
		o.sharedEnabled = true
		o.sharedCfg = registry.Config{Size: size, TTL: ttl}
		return nil
	}
}

// WithoutSharedCache 关闭进程级共享缓存（加载器级）
//
// 关闭后缓存严格按句柄隔离，Preload 的结果只对其自身调用可见。
func WithoutSharedCache() Option {
	return func(o *options) error {
		o.sharedEnabled = false
		return nil
	}
}

// WithMetrics 启用 Prometheus 指标（加载器级）
//
// reg 为 nil 时使用 prometheus.DefaultRegisterer。
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *options) error {
		o.metricsEnabled = true
		o.registerer = reg
		return nil
	}
}
