package lazyload

import (
	"math"
	"time"

	"github.com/dep2p/go-lazyload/pkg/types"
)

// FixedDelay 返回恒定退避：每次重试前等待 d
func FixedDelay(d time.Duration) types.DelayFunc {
	return func(int) time.Duration { return d }
}

// LinearBackoff 返回线性退避：第 attempt 次重试前等待 base*(attempt+1)
func LinearBackoff(base time.Duration) types.DelayFunc {
	return func(attempt int) time.Duration {
		return base * time.Duration(attempt+1)
	}
}

// ExponentialBackoff 返回指数退避：base * 2^attempt，封顶 max
//
// max<=0 表示不封顶（溢出时按最大时长处理）。
func ExponentialBackoff(base, max time.Duration) types.DelayFunc {
	return func(attempt int) time.Duration {
		if base <= 0 {
			return 0
		}
		d := base
		for i := 0; i < attempt; i++ {
			d <<= 1
			if max > 0 && d >= max {
				return max
			}
			if d <= 0 {
				// 溢出
				if max > 0 {
					return max
				}
				return time.Duration(math.MaxInt64)
			}
		}
		if max > 0 && d > max {
			return max
		}
		return d
	}
}
