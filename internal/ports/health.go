package ports

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrDuplicateChecker is returned when a second checker registers under a taken name.
var ErrDuplicateChecker = errors.New("duplicate health checker")

// HealthChecker is a component whose state feeds the readiness probe, such as
// the catalog store or the recipe feed.
type HealthChecker interface {
	// Name is the key the result is reported under.
	Name() string

	// Check returns nil when the component can serve. It should honor ctx.
	Check(ctx context.Context) error
}

// OptionalChecker marks a checker whose failure degrades the service without
// making it unready.
type OptionalChecker interface {
	HealthChecker
	Optional() bool
}

// HealthRegistry runs the registered checks on demand.
type HealthRegistry interface {
	// Register adds checker. Names must be unique.
	Register(checker HealthChecker) error

	// CheckAll runs every check concurrently under ctx and aggregates the results.
	CheckAll(ctx context.Context) *HealthResult
}

// HealthStatus is the state of one check or of the whole service.
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusDegraded  HealthStatus = "degraded"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// Ready reports whether the status allows serving traffic.
func (s HealthStatus) Ready() bool {
	return s != HealthStatusUnhealthy
}

func (s HealthStatus) severity() int {
	switch s {
	case HealthStatusUnhealthy:
		return 2
	case HealthStatusDegraded:
		return 1
	default:
		return 0
	}
}

// HealthResult aggregates one CheckAll run.
type HealthResult struct {
	Status    HealthStatus            `json:"status"`
	Checks    map[string]*CheckResult `json:"checks"`
	Timestamp time.Time               `json:"timestamp"`
}

// CheckResult is the outcome of one check.
type CheckResult struct {
	Status     HealthStatus `json:"status"`
	Message    string       `json:"message,omitempty"`
	Optional   bool         `json:"optional,omitempty"`
	DurationMS int64        `json:"durationMs"`
}

// DefaultHealthRegistry is the in-process HealthRegistry.
type DefaultHealthRegistry struct {
	mu       sync.RWMutex
	checkers map[string]HealthChecker
}

// NewHealthRegistry returns an empty registry.
func NewHealthRegistry() *DefaultHealthRegistry {
	return &DefaultHealthRegistry{checkers: make(map[string]HealthChecker)}
}

// Register adds checker, failing with ErrDuplicateChecker on a name clash.
func (r *DefaultHealthRegistry) Register(checker HealthChecker) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := checker.Name()
	if _, taken := r.checkers[name]; taken {
		return fmt.Errorf("%w: %s", ErrDuplicateChecker, name)
	}

	r.checkers[name] = checker

	return nil
}

// CheckAll runs every registered check in its own goroutine. The overall
// status is the most severe individual status.
func (r *DefaultHealthRegistry) CheckAll(ctx context.Context) *HealthResult {
	r.mu.RLock()
	checkers := make([]HealthChecker, 0, len(r.checkers))
	for _, c := range r.checkers {
		checkers = append(checkers, c)
	}
	r.mu.RUnlock()

	result := &HealthResult{
		Status:    HealthStatusHealthy,
		Checks:    make(map[string]*CheckResult, len(checkers)),
		Timestamp: time.Now(),
	}

	type outcome struct {
		name   string
		result *CheckResult
	}

	outcomes := make(chan outcome, len(checkers))
	for _, c := range checkers {
		go func() {
			outcomes <- outcome{name: c.Name(), result: runCheck(ctx, c)}
		}()
	}

	for range checkers {
		o := <-outcomes
		result.Checks[o.name] = o.result

		if o.result.Status.severity() > result.Status.severity() {
			result.Status = o.result.Status
		}
	}

	return result
}

// runCheck runs one check, turning a panic into an unhealthy result.
func runCheck(ctx context.Context, c HealthChecker) (res *CheckResult) {
	optional := false
	if o, ok := c.(OptionalChecker); ok {
		optional = o.Optional()
	}

	res = &CheckResult{Status: HealthStatusHealthy, Optional: optional}
	start := time.Now()

	defer func() {
		if p := recover(); p != nil {
			res.Status = HealthStatusUnhealthy
			res.Message = fmt.Sprintf("check panicked: %v", p)
		}

		res.DurationMS = time.Since(start).Milliseconds()
	}()

	if err := c.Check(ctx); err != nil {
		res.Message = err.Error()
		res.Status = HealthStatusUnhealthy

		if optional {
			res.Status = HealthStatusDegraded
		}
	}

	return res
}
