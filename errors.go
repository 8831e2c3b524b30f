package lazyload

import (
	"errors"

	"github.com/dep2p/go-lazyload/pkg/types"
)

// 公共错误定义
var (
	// ErrNilResolver 解析器为 nil
	ErrNilResolver = errors.New("lazyload: resolver is nil")

	// ErrEmptyIdentifier 资源标识符为空
	ErrEmptyIdentifier = errors.New("lazyload: identifier is empty")

	// ErrEmptyName 批次条目的逻辑名为空
	ErrEmptyName = errors.New("lazyload: batch entry name is empty")

	// ErrTimedOut 加载总时间预算耗尽（pkg/types 哨兵的再导出）
	ErrTimedOut = types.ErrTimedOut

	// ErrExhausted 重试次数耗尽（pkg/types 哨兵的再导出）
	ErrExhausted = types.ErrExhausted
)
