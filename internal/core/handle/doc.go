// Package handle 实现延迟加载句柄
//
// 一个 Handle 绑定一个资源标识符与一组加载配置，承担三件事：
//
//  1. 延迟与记忆：首次 Invoke 才触发解析，成功结果写入缓存槽，
//     之后的调用直接命中、零解析调用。
//  2. 进行中去重：任意时刻至多一条获取序列在跑。并发 Invoke 通过
//     共享的 call（一个以 done channel 表示完成的 future）加入
//     同一条序列，收到完全相同的结果。
//  3. 有界重试与超时：序列内的尝试严格串行，每次失败交由 policy
//     判定重试/终止/超时；超时会取消仍在进行的解析尝试。
//
// # 世代与过期写保护
//
// 句柄维护单调递增的世代号。序列启动时记下当前世代，
// 提交缓存前校验世代仍然一致；Invalidate 会递增世代，
// 使进行中序列丧失缓存写入资格（其等待者仍正常收到结果）。
// 超时后迟到的解析结果同样无法进入缓存槽：缓存只由序列的
// 运行者提交，而运行者在判定超时的那一刻已经放弃了提交。
//
// # 时钟
//
// 所有计时（总预算、重试延迟）都经由注入的 clock.Clock，
// 测试可用 clock.NewMock 驱动长延迟场景。
package handle
