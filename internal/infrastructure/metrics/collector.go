package metrics

import (
	"sync"
	"sync/atomic"
)

// Collector keeps in-memory request counters for both facades: gRPC
// methods and HTTP route patterns. It is always on, independent of the
// Prometheus exporter, so tests and debug tooling can read exact counts
// without scraping. Safe for concurrent use.
type Collector struct {
	grpc facadeCounters
	http facadeCounters
}

// facadeCounters holds the counters of one transport facade. Keys are
// full gRPC method names or chi route patterns.
type facadeCounters struct {
	requests  sync.Map // map[string]*uint64
	errors    sync.Map // map[string]*uint64
	durations sync.Map // map[string]*durationSum
}

// durationSum accumulates total seconds under a mutex because float64
// has no atomic add.
type durationSum struct {
	mu           sync.Mutex
	totalSeconds float64
}

// FacadeMetrics is a point-in-time copy of one facade's counters.
type FacadeMetrics struct {
	RequestCounts        map[string]uint64
	ErrorCounts          map[string]uint64
	TotalDurationSeconds map[string]float64
}

// Snapshot is a point-in-time copy of every counter the Collector holds.
type Snapshot struct {
	GRPC FacadeMetrics
	HTTP FacadeMetrics
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// RecordRequest counts one gRPC request for the full method name.
func (c *Collector) RecordRequest(method string) {
	c.grpc.addRequest(method)
}

// RecordError counts one failed gRPC request for the full method name.
func (c *Collector) RecordError(method string) {
	c.grpc.addError(method)
}

// RecordDuration adds the handling time of one gRPC request in seconds.
func (c *Collector) RecordDuration(method string, durationSeconds float64) {
	c.grpc.addDuration(method, durationSeconds)
}

// RecordHTTPRequest counts one HTTP request for the route pattern.
// Responses with a 5xx status are counted as errors as well.
func (c *Collector) RecordHTTPRequest(route string, status int) {
	c.http.addRequest(route)
	if status >= 500 {
		c.http.addError(route)
	}
}

// RecordHTTPDuration adds the handling time of one HTTP request in seconds.
func (c *Collector) RecordHTTPDuration(route string, durationSeconds float64) {
	c.http.addDuration(route, durationSeconds)
}

// Snapshot copies the current counters of both facades.
func (c *Collector) Snapshot() *Snapshot {
	return &Snapshot{
		GRPC: c.grpc.snapshot(),
		HTTP: c.http.snapshot(),
	}
}

func (f *facadeCounters) addRequest(key string) {
	val, _ := f.requests.LoadOrStore(key, new(uint64))
	atomic.AddUint64(val.(*uint64), 1)
}

func (f *facadeCounters) addError(key string) {
	val, _ := f.errors.LoadOrStore(key, new(uint64))
	atomic.AddUint64(val.(*uint64), 1)
}

func (f *facadeCounters) addDuration(key string, seconds float64) {
	val, _ := f.durations.LoadOrStore(key, &durationSum{})
	sum := val.(*durationSum)
	sum.mu.Lock()
	sum.totalSeconds += seconds
	sum.mu.Unlock()
}

func (f *facadeCounters) snapshot() FacadeMetrics {
	out := FacadeMetrics{
		RequestCounts:        make(map[string]uint64),
		ErrorCounts:          make(map[string]uint64),
		TotalDurationSeconds: make(map[string]float64),
	}
	f.requests.Range(func(key, value interface{}) bool {
		out.RequestCounts[key.(string)] = atomic.LoadUint64(value.(*uint64))
		return true
	})
	f.errors.Range(func(key, value interface{}) bool {
		out.ErrorCounts[key.(string)] = atomic.LoadUint64(value.(*uint64))
		return true
	})
	f.durations.Range(func(key, value interface{}) bool {
		sum := value.(*durationSum)
		sum.mu.Lock()
		out.TotalDurationSeconds[key.(string)] = sum.totalSeconds
		sum.mu.Unlock()
		return true
	})
	return out
}
