package types

import "time"

// DelayFunc 按尝试序号计算重试前的等待时长
//
// attempt 从 0 开始：attempt=0 表示第一次失败后、第二次尝试前的等待。
// 常量延迟是其退化形式（见根包 FixedDelay）。返回负值按 0 处理。
type DelayFunc func(attempt int) time.Duration

// BatchResult 批量加载结果：逻辑名 → 解析值
//
// 仅当批次内所有条目全部成功时才会构造（全有或全无）。
type BatchResult = map[string]any
