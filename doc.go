// Package lazyload 提供按需加载、结果记忆与失败防护
//
// lazyload 将一个资源标识符包装成延迟加载句柄：首次调用才触发
// 实际获取，成功结果被记忆，失败受有界重试与可选超时约束。
// 实际获取委托给调用方注入的 Resolver，核心不关心其内部是
// 网络、文件系统还是内存注册表。
//
// # 快速开始
//
//	loader, err := lazyload.New(myResolver,
//		lazyload.WithRetries(3),
//		lazyload.WithRetryDelayFunc(lazyload.ExponentialBackoff(200*time.Millisecond, 10*time.Second)),
//		lazyload.WithTimeout(30*time.Second),
//	)
//	if err != nil {
//		return err
//	}
//
//	h, err := loader.Wrap("modules/chart")
//	if err != nil {
//		return err
//	}
//	v, err := h.Invoke(ctx) // 首次触发获取，之后命中缓存
//
// # 批量加载
//
//	b, err := loader.WrapAllIDs(map[string]string{
//		"chart": "modules/chart",
//		"table": "modules/table",
//	})
//	result, err := b.Invoke(ctx) // 全有或全无
//
// # 预加载
//
//	// 提前解析并写入进程级共享缓存，
//	// 之后同一标识符的任何句柄直接命中
//	_, err = loader.Preload(ctx, "modules/chart")
//
// # 硬性不变量
//
//   - 每个句柄任意时刻至多一条获取序列，并发调用加入同一序列
//   - 序列内尝试严格串行，重试受 retries 约束
//   - timeout 抢占剩余重试预算，并取消进行中的解析尝试
//   - 每次 Invoke 恰好收到 {成功值, 终态错误} 之一，绝不静默吞错
//
// # Fx 集成
//
//	app := fx.New(
//		fx.Provide(func() interfaces.Resolver { return myResolver }),
//		lazyload.Module,
//		fx.Invoke(func(l *lazyload.Loader) { ... }),
//	)
package lazyload
