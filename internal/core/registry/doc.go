// Package registry 实现跨句柄共享的进程级缓存与预加载去重
//
// 共享缓存按标识符键控（不含选项）：一个名字指称的资源不随调用方
// 获取它的耐心程度而变化。容量与 TTL 由 expirable LRU 承担，
// TTL 为 0 表示不过期。
//
// Preload 之间按标识符做 singleflight 去重：同一标识符的并发
// 预加载只触发一次实际获取，结果共享给所有调用方并写入缓存，
// 供之后任意句柄的惰性 Invoke 直接命中。
package registry
