package metrics

import (
	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics
type PrometheusRecorder struct {
	reads *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers descriptor read metrics
func NewPrometheusRecorder(reg prom.Registerer) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	ret := &PrometheusRecorder{
		reads: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "versioning",
			Name:      "descriptor_reads_total",
			Help:      "Intercepted descriptor reads by versioning outcome",
		}, []string{"result"}),
	}
	reg.MustRegister(ret.reads)
	return ret
}

func (p *PrometheusRecorder) IncRead(result ResultLabel) {
	if p == nil {
		return
	}
	p.reads.WithLabelValues(string(result)).Inc()
}
