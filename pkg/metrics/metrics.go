// Package metrics 词典操作的 Prometheus 指标
// 不开启HTTP端口，退出时写入 textfile 供 node_exporter 采集
package metrics

import (
	"github.com/miajio/dict/pkg/dictionary"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics 词典指标集合
type Metrics struct {
	Registry        *prometheus.Registry
	OperationsTotal *prometheus.CounterVec
	Words           prometheus.Gauge
}

// New 创建并注册指标
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		OperationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dictionary_operations_total",
				Help: "Total dictionary operations by operation and result (hit, miss, error).",
			},
			[]string{"op", "result"},
		),
		Words: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "dictionary_words",
				Help: "Number of words currently stored.",
			},
		),
	}
	m.Registry.MustRegister(m.OperationsTotal, m.Words)
	return m
}

// Record 实现 dictionary.Recorder
func (m *Metrics) Record(event dictionary.Event) {
	result := "miss"
	switch {
	case event.Err != nil:
		result = "error"
	case event.Hit:
		result = "hit"
	}
	m.OperationsTotal.WithLabelValues(string(event.Op), result).Inc()
	m.Words.Set(float64(event.Size))
}

// WriteTextfile 以文本格式写出全部指标
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}
