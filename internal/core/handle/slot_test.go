package handle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestSlot_Lifecycle 测试缓存槽的写入、读取与失效
func TestSlot_Lifecycle(t *testing.T) {
	var s Slot

	_, _, ok := s.Get()
	assert.False(t, ok)

	at := time.Now()
	s.Set("v", at)
	v, storedAt, ok := s.Get()
	assert.True(t, ok)
	assert.Equal(t, "v", v)
	assert.Equal(t, at, storedAt)

	// 覆盖写
	s.Set("w", at.Add(time.Second))
	v, _, ok = s.Get()
	assert.True(t, ok)
	assert.Equal(t, "w", v)

	s.Invalidate()
	v, storedAt, ok = s.Get()
	assert.False(t, ok)
	assert.Nil(t, v)
	assert.True(t, storedAt.IsZero())
}
