// Package health aggregates component health checks behind a single endpoint.
package health

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// Status is the reported state of a component or of the service as a whole.
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
)

// Check is the outcome of a single component check.
type Check struct {
	Name       string `json:"name"`
	Status     Status `json:"status"`
	Message    string `json:"message,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}

// Response is the health endpoint payload.
type Response struct {
	Status        Status           `json:"status"`
	Timestamp     time.Time        `json:"timestamp"`
	Checks        map[string]Check `json:"checks,omitempty"`
	UptimeSeconds int64            `json:"uptime_seconds"`
}

// Checker reports the current state of one component.
type Checker interface {
	Check() Check
}

// Handler runs all registered checkers and reports the combined result.
type Handler struct {
	mu        sync.RWMutex
	checkers  map[string]Checker
	startTime time.Time
}

func NewHandler() *Handler {
	return &Handler{
		checkers:  make(map[string]Checker),
		startTime: time.Now(),
	}
}

// RegisterChecker adds a named component check. Safe for concurrent use.
func (h *Handler) RegisterChecker(name string, checker Checker) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checkers[name] = checker
}

// Handle serves the health endpoint. It returns 503 when any check is unhealthy.
func (h *Handler) Handle(c echo.Context) error {
	h.mu.RLock()
	checkers := make(map[string]Checker, len(h.checkers))
	for name, checker := range h.checkers {
		checkers[name] = checker
	}
	h.mu.RUnlock()

	checks := make(map[string]Check, len(checkers))
	overall := StatusHealthy
	for name, checker := range checkers {
		check := checker.Check()
		checks[name] = check
		if check.Status == StatusUnhealthy {
			overall = StatusUnhealthy
		}
	}

	statusCode := http.StatusOK
	if overall == StatusUnhealthy {
		statusCode = http.StatusServiceUnavailable
	}

	return c.JSON(statusCode, Response{
		Status:        overall,
		Timestamp:     time.Now().UTC(),
		Checks:        checks,
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
	})
}

// SimpleChecker adapts a plain function into a Checker.
type SimpleChecker struct {
	name    string
	checkFn func() error
}

func NewSimpleChecker(name string, checkFn func() error) *SimpleChecker {
	return &SimpleChecker{name: name, checkFn: checkFn}
}

func (c *SimpleChecker) Check() Check {
	start := time.Now()
	err := c.checkFn()
	duration := time.Since(start)

	if err != nil {
		return Check{
			Name:       c.name,
			Status:     StatusUnhealthy,
			Message:    err.Error(),
			DurationMs: duration.Milliseconds(),
		}
	}

	return Check{
		Name:       c.name,
		Status:     StatusHealthy,
		DurationMs: duration.Milliseconds(),
	}
}
