package interfaces

import (
	"context"

	"github.com/dep2p/go-lazyload/pkg/types"
)

// Handle 延迟加载句柄
//
// 包装一个资源标识符：首次 Invoke 时才触发获取，成功结果被记忆，
// 失败受重试与超时策略约束。可被任意次、并发地调用。
//
// 硬性不变量：每个句柄任意时刻至多只有一条获取序列在进行中，
// 并发 Invoke 加入同一条序列并收到相同结果。
type Handle interface {
	// Identifier 返回句柄绑定的资源标识符（构造后不可变）
	Identifier() string

	// Invoke 触发（或复用）底层获取，返回值或终态错误
	//
	// 缓存命中时立即返回，不产生任何解析调用。
	// 等待进行中序列的调用方可被各自的 ctx 单独取消，
	// 序列本身继续为其余等待者运行。
	Invoke(ctx context.Context) (any, error)

	// Cached 报告缓存槽当前是否持有成功结果
	Cached() bool

	// Invalidate 清空缓存槽
	//
	// 同时废弃进行中序列对缓存槽的写入资格；该序列的等待者仍会
	// 正常收到结果。
	Invalidate()
}

// Batch 批量加载协调器
//
// 全有或全无：所有条目都成功才返回结果映射，否则返回
// *types.BatchError 汇总各失败条目。可安全地多次 Invoke，
// 重复调用复用各句柄自身的缓存与进行中语义。
type Batch interface {
	// Invoke 并发触发所有条目并等待全部落定
	Invoke(ctx context.Context) (types.BatchResult, error)

	// Names 返回批次内所有逻辑名（升序）
	Names() []string

	// Handle 返回指定逻辑名对应的句柄，不存在时返回 nil
	Handle(name string) Handle
}
