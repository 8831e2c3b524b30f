package handle

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/dep2p/go-lazyload/internal/core/metrics"
	"github.com/dep2p/go-lazyload/internal/core/policy"
	"github.com/dep2p/go-lazyload/pkg/interfaces"
	"github.com/dep2p/go-lazyload/pkg/lib/log"
	"github.com/dep2p/go-lazyload/pkg/types"
)

var logger = log.Logger("lazyload/handle")

// errBudget 序列总预算耗尽（内部哨兵，不出包）
var errBudget = errors.New("sequence budget exceeded")

// SharedCache 跨句柄共享的二级缓存，按标识符键控
//
// 由 registry 实现。实现必须并发安全。
type SharedCache interface {
	Get(identifier string) (any, bool)
	Add(identifier string, value any)
}

// Options 句柄配置
type Options struct {
	// Cache 是否记忆成功结果，默认应为 true
	Cache bool

	// Policy 重试/超时策略配置
	Policy policy.Config

	// Clock 计时来源，nil 时使用系统时钟
	Clock clock.Clock

	// Shared 可选的共享二级缓存
	Shared SharedCache

	// Metrics 可选的指标集合（nil 安全）
	Metrics *metrics.Metrics
}

// call 一条获取序列的共享 future
//
// done 关闭后 val/err 不再变化，所有等待者读到相同结果。
type call struct {
	done chan struct{}
	val  any
	err  error
}

// Handle 延迟加载句柄，实现 interfaces.Handle
type Handle struct {
	id       string
	resolver interfaces.Resolver
	opts     Options

	mu       sync.Mutex
	slot     Slot
	inflight *call
	gen      uint64
}

var _ interfaces.Handle = (*Handle)(nil)

// New 创建句柄
func New(identifier string, resolver interfaces.Resolver, opts Options) *Handle {
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}
	return &Handle{
		id:       identifier,
		resolver: resolver,
		opts:     opts,
	}
}

// Identifier 返回绑定的资源标识符
func (h *Handle) Identifier() string { return h.id }

// Cached 报告缓存槽当前是否持有成功结果
func (h *Handle) Cached() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, _, ok := h.slot.Get()
	return ok
}

// Invalidate 清空缓存槽并废弃进行中序列的缓存写入资格
func (h *Handle) Invalidate() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.slot.Invalidate()
	h.gen++
}

// Invoke 触发（或复用）底层获取
//
// 快路径：缓存命中（本地槽或共享缓存）直接返回，零解析调用。
// 进行中：加入共享 future，等待同一结果；等待可被本调用的 ctx
// 单独取消，序列继续为其余等待者运行。
// 否则：成为序列的运行者，在当前 goroutine 内执行尝试循环。
func (h *Handle) Invoke(ctx context.Context) (any, error) {
	h.mu.Lock()

	if h.opts.Cache {
		if v, _, ok := h.slot.Get(); ok {
			h.mu.Unlock()
			h.opts.Metrics.IncCacheHit(metrics.LayerSlot)
			return v, nil
		}
		if h.opts.Shared != nil {
			if v, ok := h.opts.Shared.Get(h.id); ok {
				h.slot.Set(v, h.opts.Clock.Now())
				h.mu.Unlock()
				h.opts.Metrics.IncCacheHit(metrics.LayerShared)
				return v, nil
			}
		}
	}

	if c := h.inflight; c != nil {
		h.mu.Unlock()
		h.opts.Metrics.IncJoin()
		select {
		case <-c.done:
			return c.val, c.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	c := &call{done: make(chan struct{})}
	h.inflight = c
	h.gen++
	gen := h.gen
	h.mu.Unlock()

	start := h.opts.Clock.Now()
	val, err := h.runSequence(ctx)
	elapsed := h.opts.Clock.Since(start)

	h.mu.Lock()
	if h.inflight == c {
		h.inflight = nil
	}
	// 世代校验：Invalidate 发生在序列启动之后时放弃缓存提交
	if err == nil && h.opts.Cache && h.gen == gen {
		h.slot.Set(val, h.opts.Clock.Now())
		if h.opts.Shared != nil {
			h.opts.Shared.Add(h.id, val)
		}
	}
	h.mu.Unlock()

	h.observeOutcome(err, elapsed)

	c.val, c.err = val, err
	close(c.done)
	return val, err
}

func (h *Handle) observeOutcome(err error, elapsed time.Duration) {
	switch {
	case err == nil:
		h.opts.Metrics.ObserveOutcome(metrics.ResultSuccess, elapsed)
	case errors.Is(err, types.ErrTimedOut):
		h.opts.Metrics.ObserveOutcome(metrics.ResultTimeout, elapsed)
	default:
		h.opts.Metrics.ObserveOutcome(metrics.ResultFailure, elapsed)
	}
}

// runSequence 执行一条获取序列：尝试循环 + 策略判定 + 退避等待
//
// 序列内尝试严格串行：第 N+1 次尝试在第 N 次的结果与延迟
// 完全落定之前不会开始。
func (h *Handle) runSequence(ctx context.Context) (any, error) {
	cfg := h.opts.Policy
	clk := h.opts.Clock
	start := clk.Now()

	attemptCtx := ctx
	cancel := context.CancelFunc(func() {})
	var budget *clock.Timer
	if cfg.Timeout > 0 {
		attemptCtx, cancel = context.WithCancel(ctx)
		budget = clk.Timer(cfg.Timeout)
		defer budget.Stop()
	}
	defer cancel()

	var lastCause *types.ResolutionError
	for attempt := 0; ; attempt++ {
		h.opts.Metrics.IncAttempt()
		val, err := h.attemptOnce(attemptCtx, budget)
		if err == nil {
			return val, nil
		}
		if errors.Is(err, errBudget) {
			// 预算在尝试进行中耗尽：中止解析，立即判超时
			cancel()
			logger.Debug("加载超时", "identifier", h.id, "attempts", attempt+1)
			return nil, &types.TimeoutError{
				Identifier: h.id,
				Elapsed:    clk.Since(start),
				Attempts:   attempt + 1,
			}
		}
		if ctx.Err() != nil {
			// 调用方取消，不计入重试预算
			return nil, ctx.Err()
		}
		lastCause = &types.ResolutionError{Identifier: h.id, Cause: err}

		switch d := policy.Decide(attempt, clk.Since(start), cfg); d.Kind {
		case policy.KindTimedOut:
			return nil, &types.TimeoutError{
				Identifier: h.id,
				Elapsed:    clk.Since(start),
				Attempts:   attempt + 1,
			}
		case policy.KindFail:
			return nil, &types.ExhaustedError{
				Identifier: h.id,
				Attempts:   attempt + 1,
				Cause:      lastCause,
			}
		case policy.KindRetry:
			h.opts.Metrics.IncRetry()
			logger.Debug("解析失败，准备重试",
				"identifier", h.id,
				"attempt", attempt,
				"delay", d.Delay,
				"error", err)
			if d.Delay > 0 {
				if werr := h.waitRetry(ctx, budget, d.Delay); werr != nil {
					if errors.Is(werr, errBudget) {
						return nil, &types.TimeoutError{
							Identifier: h.id,
							Elapsed:    clk.Since(start),
							Attempts:   attempt + 1,
						}
					}
					return nil, werr
				}
			}
		}
	}
}

// attemptOnce 发起一次解析，同时监视总预算与调用方取消
//
// 解析在独立 goroutine 中执行；预算耗尽时本方法立即返回
// errBudget，迟到的解析结果被丢弃（result channel 带缓冲，
// goroutine 不会泄漏）。
func (h *Handle) attemptOnce(ctx context.Context, budget *clock.Timer) (any, error) {
	type result struct {
		val any
		err error
	}
	resCh := make(chan result, 1)
	go func() {
		v, err := h.resolver.Resolve(ctx, h.id)
		resCh <- result{val: v, err: err}
	}()

	if budget == nil {
		select {
		case r := <-resCh:
			return r.val, r.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	select {
	case r := <-resCh:
		return r.val, r.err
	case <-budget.C:
		return nil, errBudget
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// waitRetry 等待退避时长，期间监视总预算与调用方取消
func (h *Handle) waitRetry(ctx context.Context, budget *clock.Timer, d time.Duration) error {
	t := h.opts.Clock.Timer(d)
	defer t.Stop()

	if budget == nil {
		select {
		case <-t.C:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	select {
	case <-t.C:
		return nil
	case <-budget.C:
		return errBudget
	case <-ctx.Done():
		return ctx.Err()
	}
}
