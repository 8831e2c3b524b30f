package lazyload

import (
	"context"
	"fmt"
	"reflect"

	"github.com/dep2p/go-lazyload/internal/core/batch"
	"github.com/dep2p/go-lazyload/internal/core/handle"
	"github.com/dep2p/go-lazyload/internal/core/metrics"
	"github.com/dep2p/go-lazyload/internal/core/policy"
	"github.com/dep2p/go-lazyload/internal/core/registry"
	"github.com/dep2p/go-lazyload/pkg/interfaces"
	"github.com/dep2p/go-lazyload/pkg/lib/log"
	"github.com/dep2p/go-lazyload/pkg/types"
)

var logger = log.Logger("lazyload")

// Loader 延迟加载门面
//
// 持有注入的 Resolver 与加载器级默认配置，负责装配句柄、
// 批量协调器与预加载。一个 Loader 可被并发使用。
type Loader struct {
	resolver interfaces.Resolver
	defaults *options
	registry *registry.Registry
	metrics  *metrics.Metrics
}

// New 创建加载器
//
// opts 作为该加载器下所有 Wrap/WrapAll/Preload 的默认值，
// 可在单次调用时按句柄覆盖。
func New(resolver interfaces.Resolver, opts ...Option) (*Loader, error) {
	if resolver == nil {
		return nil, ErrNilResolver
	}
	o := newOptions()
	if err := o.apply(opts...); err != nil {
		return nil, err
	}

	l := &Loader{
		resolver: resolver,
		defaults: o,
	}
	if o.sharedEnabled {
		l.registry = registry.New(o.sharedCfg)
	}
	if o.metricsEnabled {
		l.metrics = metrics.New(o.registerer)
	}
	logger.Debug("加载器已创建",
		"sharedCache", o.sharedEnabled,
		"metrics", o.metricsEnabled)
	return l, nil
}

// Wrap 将资源标识符包装成延迟加载句柄
//
// 包装本身不触发任何获取；首次 Invoke 才会。
func (l *Loader) Wrap(identifier string, opts ...Option) (interfaces.Handle, error) {
	h, _, err := l.wrap(identifier, opts...)
	return h, err
}

func (l *Loader) wrap(identifier string, opts ...Option) (*handle.Handle, *options, error) {
	if identifier == "" {
		return nil, nil, ErrEmptyIdentifier
	}
	o := l.defaults.clone()
	if err := o.apply(opts...); err != nil {
		return nil, nil, err
	}

	var shared handle.SharedCache
	if l.registry != nil && o.cache {
		shared = l.registry
	}
	h := handle.New(identifier, l.resolver, handle.Options{
		Cache: o.cache,
		Policy: policy.Config{
			Retries: o.retries,
			Delay:   o.delay,
			Timeout: o.timeout,
		},
		Clock:   o.clk,
		Shared:  shared,
		Metrics: l.metrics,
	})
	return h, o, nil
}

// BatchEntry 批量加载的一个条目声明
type BatchEntry struct {
	// Identifier 资源标识符
	Identifier string

	// Options 按条目覆盖的加载选项
	Options []Option
}

// WrapAll 将（逻辑名 → 条目声明）包装成批量协调器
//
// 逻辑名由 map 键保证唯一。协调器全有或全无，可安全地多次 Invoke。
func (l *Loader) WrapAll(entries map[string]BatchEntry) (interfaces.Batch, error) {
	list := make([]batch.Entry, 0, len(entries))
	for name, e := range entries {
		if name == "" {
			return nil, ErrEmptyName
		}
		h, err := l.Wrap(e.Identifier, e.Options...)
		if err != nil {
			return nil, fmt.Errorf("lazyload: wrap batch entry %q: %w", name, err)
		}
		list = append(list, batch.Entry{Name: name, Handle: h})
	}
	return batch.New(list), nil
}

// WrapAllIDs 是 WrapAll 的便捷形式：所有条目使用加载器默认选项
func (l *Loader) WrapAllIDs(ids map[string]string) (interfaces.Batch, error) {
	entries := make(map[string]BatchEntry, len(ids))
	for name, id := range ids {
		entries[name] = BatchEntry{Identifier: id}
	}
	return l.WrapAll(entries)
}

// Preload 立即解析标识符并预热缓存
//
// 行为等同于构造句柄并立刻 Invoke 一次。启用共享缓存时，
// 结果按标识符写入进程级缓存，之后同一标识符的任何句柄
// （含惰性 Wrap 出的句柄）都会直接命中；同一标识符的并发
// Preload 会被去重为一次实际获取。
func (l *Loader) Preload(ctx context.Context, identifier string, opts ...Option) (any, error) {
	h, o, err := l.wrap(identifier, opts...)
	if err != nil {
		return nil, err
	}
	if l.registry == nil || !o.cache {
		return h.Invoke(ctx)
	}
	return l.registry.Preload(ctx, identifier, h.Invoke)
}

// Invalidate 按标识符移除共享缓存中的条目
//
// 只影响进程级共享缓存；各句柄自己的缓存槽由 Handle.Invalidate 清理。
func (l *Loader) Invalidate(identifier string) {
	if l.registry != nil {
		l.registry.Remove(identifier)
	}
}

// ResolveAs 以类型 T 解析句柄
//
// 解析成功但值不是 T 时返回 *types.MismatchError。
func ResolveAs[T any](ctx context.Context, h interfaces.Handle) (T, error) {
	var zero T
	v, err := h.Invoke(ctx)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, &types.MismatchError{
			Identifier: h.Identifier(),
			Expected:   reflect.TypeOf((*T)(nil)).Elem().String(),
			Actual:     fmt.Sprintf("%T", v),
		}
	}
	return t, nil
}
