package batch

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dep2p/go-lazyload/internal/core/handle"
	"github.com/dep2p/go-lazyload/internal/core/policy"
	"github.com/dep2p/go-lazyload/pkg/interfaces"
	"github.com/dep2p/go-lazyload/pkg/types"
)

func okResolver(v any) interfaces.Resolver {
	return interfaces.ResolveFunc(func(context.Context, string) (any, error) {
		return v, nil
	})
}

func failResolver(err error) interfaces.Resolver {
	return interfaces.ResolveFunc(func(context.Context, string) (any, error) {
		return nil, err
	})
}

func newHandle(id string, r interfaces.Resolver) *handle.Handle {
	return handle.New(id, r, handle.Options{Cache: true, Policy: policy.Config{}})
}

// TestCoordinator_AllSucceed 测试全部成功时返回完整结果映射
func TestCoordinator_AllSucceed(t *testing.T) {
	c := New([]Entry{
		{Name: "a", Handle: newHandle("mod-a", okResolver("value-a"))},
		{Name: "b", Handle: newHandle("mod-b", okResolver("value-b"))},
	})

	result, err := c.Invoke(context.Background())
	require.NoError(t, err)
	assert.Equal(t, types.BatchResult{"a": "value-a", "b": "value-b"}, result)
}

// TestCoordinator_PartialFailure 测试任一失败时仅列出失败条目
func TestCoordinator_PartialFailure(t *testing.T) {
	boom := errors.New("boom")
	c := New([]Entry{
		{Name: "a", Handle: newHandle("mod-a", okResolver("value-a"))},
		{Name: "b", Handle: newHandle("mod-b", failResolver(boom))},
	})

	result, err := c.Invoke(context.Background())
	require.Error(t, err)
	assert.Nil(t, result)

	var be *types.BatchError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, []string{"b"}, be.Names())
	assert.ErrorIs(t, be.Failures["b"], boom)
	assert.ErrorIs(t, err, boom)
	assert.NotContains(t, be.Failures, "a")
}

// TestCoordinator_ReinvokeRetriesOnlyFailed 测试重新调用只重试先前失败的条目
func TestCoordinator_ReinvokeRetriesOnlyFailed(t *testing.T) {
	var aCalls, bCalls atomic.Int64
	a := interfaces.ResolveFunc(func(context.Context, string) (any, error) {
		aCalls.Add(1)
		return "value-a", nil
	})
	b := interfaces.ResolveFunc(func(context.Context, string) (any, error) {
		if bCalls.Add(1) == 1 {
			return nil, errors.New("boom")
		}
		return "value-b", nil
	})

	c := New([]Entry{
		{Name: "a", Handle: newHandle("mod-a", a)},
		{Name: "b", Handle: newHandle("mod-b", b)},
	})

	_, err := c.Invoke(context.Background())
	require.Error(t, err)

	result, err := c.Invoke(context.Background())
	require.NoError(t, err)
	assert.Equal(t, types.BatchResult{"a": "value-a", "b": "value-b"}, result)

	// a 命中缓存未被重试，b 被重试一次
	assert.Equal(t, int64(1), aCalls.Load())
	assert.Equal(t, int64(2), bCalls.Load())
}

// TestCoordinator_NamesSorted 测试逻辑名升序与句柄查找
func TestCoordinator_NamesSorted(t *testing.T) {
	c := New([]Entry{
		{Name: "b", Handle: newHandle("mod-b", okResolver(1))},
		{Name: "a", Handle: newHandle("mod-a", okResolver(2))},
	})

	assert.Equal(t, []string{"a", "b"}, c.Names())
	assert.Equal(t, "mod-a", c.Handle("a").Identifier())
	assert.Nil(t, c.Handle("missing"))
}

// TestCoordinator_Empty 测试空批次直接成功
func TestCoordinator_Empty(t *testing.T) {
	c := New(nil)
	result, err := c.Invoke(context.Background())
	require.NoError(t, err)
	assert.Empty(t, result)
}
