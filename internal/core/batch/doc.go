// Package batch 实现批量加载协调器
//
// 协调器持有若干（逻辑名 → 句柄）条目，一次 Invoke 并发触发
// 全部句柄并等待所有条目落定：不短路、不保证条目间次序。
// 全部成功才构造结果映射；任一失败则返回 *types.BatchError，
// 其中仅列出失败条目（成功条目的值被丢弃，但仍留在各句柄的
// 缓存里，重新 Invoke 时只会重试先前失败的条目）。
package batch
