package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// 指标标签值
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultTimeout = "timeout"

	LayerSlot   = "slot"
	LayerShared = "shared"
)

// Metrics 加载过程的指标集合
//
// nil *Metrics 的所有方法均为空操作。
type Metrics struct {
	resolves  *prometheus.CounterVec
	attempts  prometheus.Counter
	retries   prometheus.Counter
	cacheHits *prometheus.CounterVec
	joins     prometheus.Counter
	duration  prometheus.Histogram
}

// New 创建并注册指标集合
//
// reg 为 nil 时使用 prometheus.DefaultRegisterer。
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		resolves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lazyload",
			Name:      "resolves_total",
			Help:      "Terminal load outcomes by result.",
		}, []string{"result"}),
		attempts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lazyload",
			Name:      "attempts_total",
			Help:      "Resolver invocations.",
		}),
		retries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lazyload",
			Name:      "retries_total",
			Help:      "Retries performed after a failed attempt.",
		}),
		cacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lazyload",
			Name:      "cache_hits_total",
			Help:      "Cache hits by layer.",
		}, []string{"layer"}),
		joins: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lazyload",
			Name:      "inflight_joins_total",
			Help:      "Invocations that joined an in-flight sequence.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "lazyload",
			Name:      "resolve_duration_seconds",
			Help:      "Duration of one logical load including retries.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.resolves, m.attempts, m.retries, m.cacheHits, m.joins, m.duration)
	return m
}

// ObserveOutcome 记录一次逻辑加载的终态与耗时
func (m *Metrics) ObserveOutcome(result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.resolves.WithLabelValues(result).Inc()
	m.duration.Observe(elapsed.Seconds())
}

// IncAttempt 记录一次解析器调用
func (m *Metrics) IncAttempt() {
	if m == nil {
		return
	}
	m.attempts.Inc()
}

// IncRetry 记录一次重试
func (m *Metrics) IncRetry() {
	if m == nil {
		return
	}
	m.retries.Inc()
}

// IncCacheHit 记录一次缓存命中
func (m *Metrics) IncCacheHit(layer string) {
	if m == nil {
		return
	}
	m.cacheHits.WithLabelValues(layer).Inc()
}

// IncJoin 记录一次进行中序列的加入
func (m *Metrics) IncJoin() {
	if m == nil {
		return
	}
	m.joins.Inc()
}
