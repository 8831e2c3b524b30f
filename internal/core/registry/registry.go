package registry

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"github.com/dep2p/go-lazyload/pkg/lib/log"
)

var logger = log.Logger("lazyload/registry")

// Config 共享缓存配置
type Config struct {
	// Size 缓存容量，0 表示不限
	Size int

	// TTL 条目存活时长，0 表示不过期
	TTL time.Duration
}

// DefaultConfig 返回默认配置
func DefaultConfig() Config {
	return Config{
		Size: 128,
		TTL:  0,
	}
}

// Registry 进程级共享缓存，实现 handle.SharedCache
type Registry struct {
	lru *expirable.LRU[string, any]
	sf  singleflight.Group
}

// New 创建共享缓存
func New(cfg Config) *Registry {
	return &Registry{
		lru: expirable.NewLRU[string, any](cfg.Size, nil, cfg.TTL),
	}
}

// Get 按标识符读取缓存值
func (r *Registry) Get(identifier string) (any, bool) {
	return r.lru.Get(identifier)
}

// Add 写入缓存值
func (r *Registry) Add(identifier string, value any) {
	r.lru.Add(identifier, value)
}

// Remove 移除缓存值
func (r *Registry) Remove(identifier string) {
	r.lru.Remove(identifier)
}

// Len 返回当前缓存条目数
func (r *Registry) Len() int {
	return r.lru.Len()
}

// Preload 预加载：缓存命中直接返回，否则经 singleflight 去重执行 load
//
// 同一标识符的并发 Preload 只有一个真正执行 load，其余共享结果。
// load 在首个调用方的 ctx 下执行；失败不缓存。
func (r *Registry) Preload(ctx context.Context, identifier string, load func(context.Context) (any, error)) (any, error) {
	if v, ok := r.lru.Get(identifier); ok {
		return v, nil
	}

	v, err, shared := r.sf.Do(identifier, func() (any, error) {
		if v, ok := r.lru.Get(identifier); ok {
			return v, nil
		}
		v, err := load(ctx)
		if err != nil {
			return nil, err
		}
		r.lru.Add(identifier, v)
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		logger.Debug("预加载去重命中", "identifier", identifier)
	}
	return v, nil
}
