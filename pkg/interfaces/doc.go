// Package interfaces 定义 go-lazyload 的公共契约
//
// 一个接口文件 = 一个实现目录（internal/core 下）：
//   - resolver.go - Resolver 解析器契约（由调用方注入，唯一的 I/O 边界）
//   - loader.go   - Handle 延迟句柄、Batch 批量协调器
//
// 依赖方向：根包 → interfaces → types。实现包只被根包装配，
// 调用方始终面向本包的接口编程。
package interfaces
