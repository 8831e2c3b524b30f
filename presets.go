package lazyload

import "time"

// ════════════════════════════════════════════════════════════════════════════
//                              预设选项组合
// ════════════════════════════════════════════════════════════════════════════

// DefaultOptions 默认预设：不重试、不超时、启用缓存与共享缓存
//
// 示例：
//
//	loader, err := lazyload.New(resolver, lazyload.DefaultOptions()...)
func DefaultOptions() []Option {
	return nil
}

// FailFastOptions 快速失败预设
//
// 适用场景：交互路径上的可选资源，宁可立刻失败也不拖慢调用方。
// 特点：
//   - 不重试
//   - 总预算 5 秒
func FailFastOptions() []Option {
	return []Option{
		WithTimeout(5 * time.Second),
	}
}

// PatientOptions 耐心重试预设
//
// 适用场景：后台预加载、启动期资源装配等可容忍等待的路径。
// 特点：
//   - 重试 5 次，指数退避 200ms 起、10s 封顶
//   - 总预算 2 分钟
func PatientOptions() []Option {
	return []Option{
		WithRetries(5),
		WithRetryDelayFunc(ExponentialBackoff(200*time.Millisecond, 10*time.Second)),
		WithTimeout(2 * time.Minute),
	}
}
