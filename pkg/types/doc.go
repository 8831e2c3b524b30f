// Package types 定义 go-lazyload 的共享值类型与错误类型
//
// 本包不依赖任何实现包，供 pkg/interfaces、internal/core 与根包共同引用：
//   - types.go  - DelayFunc 退避函数、BatchResult 批量结果
//   - errors.go - 错误分类（ResolutionError / ExhaustedError / TimeoutError /
//     BatchError / MismatchError）与哨兵错误
//
// # 错误分类
//
// 一次加载的终态错误只会是以下二者之一：
//   - ExhaustedError：所有允许的尝试均失败，携带尝试次数与最后一次失败原因
//   - TimeoutError：总时间预算耗尽，携带已消耗时长与已尝试次数
//
// 单次解析失败以 ResolutionError 形式出现在错误链中，原因原样保留；
// 批量加载失败以 BatchError 汇总各失败条目。
//
// 所有类型化错误均支持 errors.Is / errors.As 检查：
//
//	if errors.Is(err, types.ErrTimedOut) { ... }
//
//	var ee *types.ExhaustedError
//	if errors.As(err, &ee) {
//		fmt.Println(ee.Identifier, ee.Attempts)
//	}
package types
