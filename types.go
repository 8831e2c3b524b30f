package lazyload

import (
	"github.com/dep2p/go-lazyload/pkg/interfaces"
	"github.com/dep2p/go-lazyload/pkg/types"
)

// 公共类型再导出，调用方通常只需导入根包
type (
	// Resolver 资源解析器契约
	Resolver = interfaces.Resolver

	// ResolveFunc 函数式 Resolver 适配器
	ResolveFunc = interfaces.ResolveFunc

	// Handle 延迟加载句柄
	Handle = interfaces.Handle

	// Batch 批量加载协调器
	Batch = interfaces.Batch

	// DelayFunc 按尝试序号计算退避时长
	DelayFunc = types.DelayFunc

	// BatchResult 批量加载结果
	BatchResult = types.BatchResult

	// ResolutionError 单次解析失败
	ResolutionError = types.ResolutionError

	// ExhaustedError 重试耗尽
	ExhaustedError = types.ExhaustedError

	// TimeoutError 总预算耗尽
	TimeoutError = types.TimeoutError

	// BatchError 批量加载失败汇总
	BatchError = types.BatchError

	// MismatchError ResolveAs 类型断言失败
	MismatchError = types.MismatchError
)
