package handle

import "time"

// Slot 单值缓存槽
//
// 只保存最近一次成功结果及其产生时间。不做并发保护：
// 槽由所属 Handle 独占，所有访问都发生在 Handle 的互斥区内。
type Slot struct {
	value    any
	storedAt time.Time
	present  bool
}

// Get 返回缓存值及其写入时间，空槽时 ok 为 false
func (s *Slot) Get() (value any, storedAt time.Time, ok bool) {
	if !s.present {
		return nil, time.Time{}, false
	}
	return s.value, s.storedAt, true
}

// Set 写入缓存值
func (s *Slot) Set(value any, at time.Time) {
	s.value = value
	s.storedAt = at
	s.present = true
}

// Invalidate 清空缓存槽
func (s *Slot) Invalidate() {
	s.value = nil
	s.storedAt = time.Time{}
	s.present = false
}
