package monitor

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/ochinchina/sysctld/faults"
	"github.com/ochinchina/sysctld/process"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

const (
	DefaultInterval    = 120 * time.Second
	DefaultStopTimeout = 5 * time.Second
)

// Options tune a Monitor
type Options struct {
	// Interval is used when Start is given no positive interval
	Interval time.Duration
	// StopTimeout bounds the wait for an in-flight check on Stop
	StopTimeout time.Duration
	// Registerer receives the monitor collectors when not nil
	Registerer prometheus.Registerer
}

// Status a point in time view of one monitored group
type Status struct {
	Group     string
	Interval  time.Duration
	StartedAt time.Time
	LastSeen  map[string]time.Time
	Missing   []string
}

// handle the state of one running group
type handle struct {
	group     string
	expected  []string
	interval  time.Duration
	startedAt time.Time
	cron      *cron.Cron
	// tracks the check run by Start
	initial sync.WaitGroup

	mu       sync.Mutex
	lastSeen map[string]time.Time
	missing  map[string]bool
}

// Monitor periodically checks that the processes of critical groups are
// present. Groups run on their own scheduler and never block each other.
type Monitor struct {
	critical *process.CriticalSet
	lister   process.NameLister
	log      log.FieldLogger
	opts     Options
	missing  *prometheus.GaugeVec

	mu      sync.Mutex
	handles map[string]*handle
}

// New creates a stopped monitor over the groups of critical
func New(critical *process.CriticalSet, lister process.NameLister, logger log.FieldLogger, opts Options) *Monitor {
	if logger == nil {
		logger = log.StandardLogger()
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.StopTimeout <= 0 {
		opts.StopTimeout = DefaultStopTimeout
	}
	m := &Monitor{
		critical: critical,
		lister:   lister,
		log:      logger,
		opts:     opts,
		handles:  make(map[string]*handle),
		missing: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "sysctld",
			Name:      "critical_process_missing",
			Help:      "1 if the critical process was absent at the last check",
		}, []string{"group", "process"}),
	}
	if opts.Registerer != nil {
		opts.Registerer.MustRegister(m.missing, newCollector(m))
	}
	return m
}

// Start begins monitoring group every interval and runs one check at once.
// Starting a running group does nothing.
func (m *Monitor) Start(group string, interval time.Duration) error {
	expected, ok := m.critical.Expected(group)
	if !ok {
		return faults.Newf(faults.InvalidArgument, "unknown critical group %q", group)
	}
	if interval <= 0 {
		interval = m.opts.Interval
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if h, ok := m.handles[group]; ok {
		m.log.WithFields(log.Fields{"group": group, "interval": h.interval}).Debug("monitor already running")
		return nil
	}

	h := &handle{
		group:     group,
		expected:  expected,
		interval:  interval,
		startedAt: time.Now(),
		lastSeen:  make(map[string]time.Time),
		missing:   make(map[string]bool),
	}
	entry := m.log.WithField("group", group)
	h.cron = cron.New(cron.WithLogger(cronLogger{entry}))
	job := cron.NewChain(cron.SkipIfStillRunning(cronLogger{entry})).Then(cron.FuncJob(func() { m.check(h) }))
	if _, err := h.cron.AddJob(fmt.Sprintf("@every %s", interval), job); err != nil {
		return faults.Wrap(faults.InvalidArgument, err, fmt.Sprintf("schedule group %s", group))
	}

	m.handles[group] = h
	h.cron.Start()
	h.initial.Add(1)
	go func() {
		defer h.initial.Done()
		job.Run()
	}()

	entry.WithFields(log.Fields{"interval": interval, "processes": expected}).Info("start monitoring critical processes")
	return nil
}

// Stop ends monitoring of group and waits for the check in flight, at most
// the configured stop timeout. Stopping a stopped group does nothing.
func (m *Monitor) Stop(group string) error {
	if _, ok := m.critical.Expected(group); !ok {
		return faults.Newf(faults.InvalidArgument, "unknown critical group %q", group)
	}

	m.mu.Lock()
	h, ok := m.handles[group]
	delete(m.handles, group)
	m.mu.Unlock()
	if !ok {
		return nil
	}

	ctx := h.cron.Stop()
	done := make(chan struct{})
	go func() {
		<-ctx.Done()
		h.initial.Wait()
		close(done)
	}()

	timer := time.NewTimer(m.opts.StopTimeout)
	defer timer.Stop()
	select {
	case <-done:
		m.log.WithField("group", group).Info("stop monitoring critical processes")
		return nil
	case <-timer.C:
		m.log.WithFields(log.Fields{"group": group, "timeout": m.opts.StopTimeout}).Error("check still running after stop timeout")
		return faults.Newf(faults.ActionFailed, "check of group %s did not finish within %s", group, m.opts.StopTimeout)
	}
}

// StartAll starts every critical group
func (m *Monitor) StartAll(interval time.Duration) error {
	var err error
	for _, g := range m.critical.Groups() {
		multierr.AppendInto(&err, m.Start(g, interval))
	}
	return err
}

// StopAll stops every running group
func (m *Monitor) StopAll() error {
	var err error
	for _, g := range m.Active() {
		multierr.AppendInto(&err, m.Stop(g))
	}
	return err
}

// Active returns the running groups sorted by name
func (m *Monitor) Active() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	groups := make([]string, 0, len(m.handles))
	for g := range m.handles {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	return groups
}

// IsRunning returns true if group is monitored
func (m *Monitor) IsRunning(group string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.handles[group]
	return ok
}

// Status returns the view of a running group
func (m *Monitor) Status(group string) (Status, bool) {
	m.mu.Lock()
	h, ok := m.handles[group]
	m.mu.Unlock()
	if !ok {
		return Status{}, false
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	st := Status{
		Group:     h.group,
		Interval:  h.interval,
		StartedAt: h.startedAt,
		LastSeen:  make(map[string]time.Time, len(h.lastSeen)),
	}
	for k, v := range h.lastSeen {
		st.LastSeen[k] = v
	}
	for _, p := range h.expected {
		if h.missing[p] {
			st.Missing = append(st.Missing, p)
		}
	}
	return st, true
}

func (m *Monitor) check(h *handle) {
	names, err := m.lister.ProcessNames()
	if err != nil {
		m.log.WithField("group", h.group).WithError(err).Error("failed to enumerate processes")
		return
	}

	now := time.Now()
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, p := range h.expected {
		if process.ContainsProcess(names, p) {
			h.lastSeen[p] = now
			h.missing[p] = false
			m.missing.WithLabelValues(h.group, p).Set(0)
			continue
		}
		since, seen := h.lastSeen[p]
		if !seen {
			since = h.startedAt
		}
		h.missing[p] = true
		m.missing.WithLabelValues(h.group, p).Set(1)
		m.log.WithFields(log.Fields{
			"group":       h.group,
			"process":     p,
			"missing_for": now.Sub(since).Round(time.Second).String(),
			"ever_seen":   seen,
		}).Warn("critical process is not running")
	}
}

// cronLogger routes the scheduler's own messages to logrus
type cronLogger struct {
	entry *log.Entry
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.entry.WithFields(toFields(keysAndValues)).Debug(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.entry.WithFields(toFields(keysAndValues)).WithError(err).Error(msg)
}

func toFields(keysAndValues []interface{}) log.Fields {
	fields := make(log.Fields, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}
	return fields
}
