// Package policy 实现重试/超时决策逻辑
//
// 策略是纯函数：给定（尝试序号、序列已消耗时长、配置），
// 产出三种决策之一：
//   - Retry(after)：按配置的延迟等待后重试
//   - Fail：重试预算耗尽，序列终止，最后一次失败原因上浮
//   - TimedOut：总时间预算耗尽，抢占剩余重试预算
//
// 决策次序：先查超时，再查重试预算。timeout 一旦超出，
// 无论还剩多少重试次数都判 TimedOut。
//
// 本包不做任何 I/O、不睡眠、不读时钟；等待与计时由 handle 执行。
package policy
