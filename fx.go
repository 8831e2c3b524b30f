package lazyload

import (
	"go.uber.org/fx"

	"github.com/dep2p/go-lazyload/pkg/interfaces"
)

// Params Loader 的 Fx 依赖参数
type Params struct {
	fx.In

	// Resolver 由应用提供的资源解析器
	Resolver interfaces.Resolver

	// Options 可选的加载器级默认选项
	Options []Option `optional:"true"`
}

// NewFromParams 从 Fx 参数创建加载器
func NewFromParams(p Params) (*Loader, error) {
	return New(p.Resolver, p.Options...)
}

// Module 是 lazyload 的 Fx 模块
//
// 应用只需提供 interfaces.Resolver（可选地再提供 []Option），
// 即可注入 *Loader：
//
//	app := fx.New(
//		fx.Provide(func() interfaces.Resolver { return myResolver }),
//		lazyload.Module,
//		fx.Invoke(func(l *lazyload.Loader) { ... }),
//	)
var Module = fx.Module("lazyload",
	fx.Provide(NewFromParams),
)
