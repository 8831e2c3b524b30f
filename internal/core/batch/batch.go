package batch

import (
	"context"
	"sort"
	"sync"

	"github.com/dep2p/go-lazyload/pkg/interfaces"
	"github.com/dep2p/go-lazyload/pkg/lib/log"
	"github.com/dep2p/go-lazyload/pkg/types"
)

var logger = log.Logger("lazyload/batch")

// Entry 批次内的一个条目
type Entry struct {
	// Name 逻辑名，批次内唯一
	Name string

	// Handle 该条目的延迟句柄
	Handle interfaces.Handle
}

// Coordinator 批量加载协调器，实现 interfaces.Batch
type Coordinator struct {
	entries []Entry
}

var _ interfaces.Batch = (*Coordinator)(nil)

// New 创建协调器，条目按逻辑名排序以保证 Names 的确定性
func New(entries []Entry) *Coordinator {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	return &Coordinator{entries: sorted}
}

// Names 返回批次内所有逻辑名（升序）
func (c *Coordinator) Names() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.Name
	}
	return names
}

// Handle 返回指定逻辑名对应的句柄
func (c *Coordinator) Handle(name string) interfaces.Handle {
	for _, e := range c.entries {
		if e.Name == name {
			return e.Handle
		}
	}
	return nil
}

// Invoke 并发触发所有条目并等待全部落定
//
// 重复调用安全：每个条目复用其句柄自身的缓存与进行中语义，
// 先前成功的条目直接命中缓存，只有先前失败的条目会被重试。
func (c *Coordinator) Invoke(ctx context.Context) (types.BatchResult, error) {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		values   = make(map[string]any, len(c.entries))
		failures map[string]error
	)

	for _, e := range c.entries {
		wg.Add(1)
		go func(e Entry) {
			defer wg.Done()
			v, err := e.Handle.Invoke(ctx)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if failures == nil {
					failures = make(map[string]error)
				}
				failures[e.Name] = err
				return
			}
			values[e.Name] = v
		}(e)
	}
	wg.Wait()

	if len(failures) > 0 {
		logger.Debug("批量加载失败", "failed", len(failures), "total", len(c.entries))
		return nil, types.NewBatchError(failures)
	}
	return values, nil
}
