package lazyload

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/dep2p/go-lazyload/pkg/interfaces"
)

// TestModule_ProvidesLoader 测试 Fx 模块注入 *Loader
func TestModule_ProvidesLoader(t *testing.T) {
	var l *Loader

	app := fxtest.New(t,
		fx.Provide(func() interfaces.Resolver {
			return interfaces.ResolveFunc(func(_ context.Context, id string) (any, error) {
				return "value:" + id, nil
			})
		}),
		Module,
		fx.Populate(&l),
	)
	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, l)
	h, err := l.Wrap("mod-a")
	require.NoError(t, err)
	v, err := h.Invoke(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "value:mod-a", v)
}

// TestModule_WithOptions 测试可选的加载器级默认选项注入
func TestModule_WithOptions(t *testing.T) {
	var l *Loader

	app := fxtest.New(t,
		fx.Provide(func() interfaces.Resolver {
			return interfaces.ResolveFunc(func(context.Context, string) (any, error) {
				return "v", nil
			})
		}),
		fx.Supply([]Option{WithRetries(2)}),
		Module,
		fx.Populate(&l),
	)
	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, l)
}
