// Package metrics 提供加载过程的 Prometheus 指标
//
// 指标清单（前缀 lazyload_）：
//   - resolves_total{result}    - 终态计数，result ∈ {success, failure, timeout}
//   - attempts_total            - 解析器被实际调用的次数
//   - retries_total             - 发生的重试次数
//   - cache_hits_total{layer}   - 缓存命中，layer ∈ {slot, shared}
//   - inflight_joins_total      - 并发调用加入进行中序列的次数
//   - resolve_duration_seconds  - 一次逻辑加载（含重试）的耗时分布
//
// *Metrics 的 nil 值是合法的空实现：未启用指标时所有记录方法为空操作，
// 调用方无需判空。
package metrics
