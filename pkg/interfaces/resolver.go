package interfaces

import "context"

// Resolver 执行实际的资源获取
//
// 核心对解析器只有一条契约：给定标识符，异步返回值或失败原因。
// 网络、文件系统、内存注册表都是合法实现，核心不对其内部做任何假设。
// 解析器必须可被并发调用；单个句柄内的调用保证串行。
type Resolver interface {
	// Resolve 获取 identifier 命名的资源
	//
	// ctx 取消时实现应尽快放弃并返回 ctx.Err()；
	// 无法中止的实现可以继续执行，其迟到的结果会被核心丢弃。
	Resolve(ctx context.Context, identifier string) (any, error)
}

// ResolveFunc 函数式 Resolver 适配器
type ResolveFunc func(ctx context.Context, identifier string) (any, error)

// Resolve 实现 Resolver 接口
func (f ResolveFunc) Resolve(ctx context.Context, identifier string) (any, error) {
	return f(ctx, identifier)
}
