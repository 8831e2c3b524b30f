package types

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/multierr"
)

// 哨兵错误
var (
	// ErrTimedOut 加载总时间预算耗尽
	ErrTimedOut = errors.New("load timed out")

	// ErrExhausted 重试次数耗尽
	ErrExhausted = errors.New("retries exhausted")
)

// ────────────────────────────────────────────────────────────────────────────
// 单次解析失败
// ────────────────────────────────────────────────────────────────────────────

// ResolutionError 表示 Resolver 的一次解析被拒绝，原因原样保留
type ResolutionError struct {
	// Identifier 资源标识符
	Identifier string

	// Cause 底层失败原因
	Cause error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolve %q: %v", e.Identifier, e.Cause)
}

func (e *ResolutionError) Unwrap() error { return e.Cause }

// ────────────────────────────────────────────────────────────────────────────
// 终态错误
// ────────────────────────────────────────────────────────────────────────────

// ExhaustedError 表示所有允许的尝试均告失败
//
// Attempts 为实际发起的解析次数（retries=n 时恰为 n+1）。
// Cause 为最后一次失败（通常是 *ResolutionError）。
type ExhaustedError struct {
	Identifier string
	Attempts   int
	Cause      error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("load %q: retries exhausted after %d attempt(s): %v",
		e.Identifier, e.Attempts, e.Cause)
}

func (e *ExhaustedError) Unwrap() error { return e.Cause }

// Is 支持 errors.Is(err, ErrExhausted)
func (e *ExhaustedError) Is(target error) bool { return target == ErrExhausted }

// TimeoutError 表示总时间预算在成功之前耗尽
type TimeoutError struct {
	Identifier string

	// Elapsed 预算耗尽时已消耗的时长
	Elapsed time.Duration

	// Attempts 预算耗尽前已发起的解析次数（含进行中的一次）
	Attempts int
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("load %q: timed out after %s (%d attempt(s))",
		e.Identifier, e.Elapsed, e.Attempts)
}

// Is 支持 errors.Is(err, ErrTimedOut) 与 errors.Is(err, context.DeadlineExceeded)
func (e *TimeoutError) Is(target error) bool {
	return target == ErrTimedOut || target == context.DeadlineExceeded
}

// ────────────────────────────────────────────────────────────────────────────
// 批量加载失败
// ────────────────────────────────────────────────────────────────────────────

// BatchError 汇总批量加载中各失败条目的错误
//
// 批量加载是全有或全无的：任一条目失败即返回 BatchError，
// 已成功条目的值被丢弃（但仍留在各自句柄的缓存中）。
type BatchError struct {
	// Failures 逻辑名 → 该条目的终态错误
	Failures map[string]error

	combined error
}

// NewBatchError 构造 BatchError，failures 不可为空
func NewBatchError(failures map[string]error) *BatchError {
	errs := make([]error, 0, len(failures))
	for _, name := range sortedKeys(failures) {
		errs = append(errs, failures[name])
	}
	return &BatchError{
		Failures: failures,
		combined: multierr.Combine(errs...),
	}
}

func (e *BatchError) Error() string {
	names := sortedKeys(e.Failures)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s: %v", name, e.Failures[name])
	}
	return fmt.Sprintf("batch load failed (%d entries): %s",
		len(names), strings.Join(parts, "; "))
}

// Unwrap 展开为各条目错误，支持 errors.Is / errors.As 遍历
func (e *BatchError) Unwrap() []error { return multierr.Errors(e.combined) }

// Names 返回失败条目的逻辑名（升序）
func (e *BatchError) Names() []string { return sortedKeys(e.Failures) }

// ────────────────────────────────────────────────────────────────────────────
// 类型断言失败
// ────────────────────────────────────────────────────────────────────────────

// MismatchError 表示 ResolveAs[T] 的类型断言失败
type MismatchError struct {
	Identifier string
	Expected   string
	Actual     string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("resolve %q: type mismatch: expected=%s actual=%s",
		e.Identifier, e.Expected, e.Actual)
}

func sortedKeys(m map[string]error) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
