package monitor

import (
	"github.com/prometheus/client_golang/prometheus"
)

type monitorCollector struct {
	upDesc       *prometheus.Desc
	intervalDesc *prometheus.Desc
	lastSeenDesc *prometheus.Desc
	monitor      *Monitor
}

// newCollector returns a Collector exposing the state of every critical group
func newCollector(m *Monitor) *monitorCollector {
	subsystem := "monitor"
	return &monitorCollector{
		upDesc: prometheus.NewDesc(
			prometheus.BuildFQName("sysctld", subsystem, "up"),
			"Group is monitored",
			[]string{"group"},
			nil,
		),
		intervalDesc: prometheus.NewDesc(
			prometheus.BuildFQName("sysctld", subsystem, "interval_seconds"),
			"Check interval of the group",
			[]string{"group"},
			nil,
		),
		lastSeenDesc: prometheus.NewDesc(
			prometheus.BuildFQName("sysctld", subsystem, "last_seen_timestamp_seconds"),
			"Last time the critical process was found",
			[]string{"group", "process"},
			nil,
		),
		monitor: m,
	}
}

// Describe generates prometheus metric description
func (c *monitorCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.upDesc
	ch <- c.intervalDesc
	ch <- c.lastSeenDesc
}

// Collect gathers prometheus metrics for all critical groups
func (c *monitorCollector) Collect(ch chan<- prometheus.Metric) {
	for _, group := range c.monitor.critical.Groups() {
		st, running := c.monitor.Status(group)
		if !running {
			ch <- prometheus.MustNewConstMetric(c.upDesc, prometheus.GaugeValue, 0, group)
			continue
		}
		ch <- prometheus.MustNewConstMetric(c.upDesc, prometheus.GaugeValue, 1, group)
		ch <- prometheus.MustNewConstMetric(c.intervalDesc, prometheus.GaugeValue, st.Interval.Seconds(), group)
		for p, t := range st.LastSeen {
			ch <- prometheus.MustNewConstMetric(c.lastSeenDesc, prometheus.GaugeValue, float64(t.Unix()), group, p)
		}
	}
}
