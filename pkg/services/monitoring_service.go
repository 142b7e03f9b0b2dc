package services

import (
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogEntry records one handled API request.
type RequestLogEntry struct {
	Timestamp    time.Time     `json:"timestamp"`
	Path         string        `json:"path"`
	Method       string        `json:"method"`
	StatusCode   int           `json:"status_code"`
	ResponseTime time.Duration `json:"response_time"`
}

// MonitoringService keeps an in-memory log of handled requests for the
// monitoring endpoint. Entries are process-lifetime only.
type MonitoringService struct {
	mu      sync.RWMutex
	entries []RequestLogEntry
	maxSize int
}

// NewMonitoringService creates the service with a bounded log.
func NewMonitoringService() *MonitoringService {
	return &MonitoringService{maxSize: 10000}
}

// LogRequest appends one entry, discarding the oldest past the bound.
func (s *MonitoringService) LogRequest(entry RequestLogEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	if len(s.entries) > s.maxSize {
		s.entries = s.entries[len(s.entries)-s.maxSize:]
	}
}

// LoggingMiddleware records request timing and status for every route
// except the monitoring group itself.
func (s *MonitoringService) LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api/v1/monitoring") {
			return
		}

		s.LogRequest(RequestLogEntry{
			Timestamp:    start,
			Path:         path,
			Method:       c.Request.Method,
			StatusCode:   c.Writer.Status(),
			ResponseTime: time.Since(start),
		})
	}
}

// MonitoringSnapshot is the aggregated view returned by the monitoring
// endpoint.
type MonitoringSnapshot struct {
	TotalRequests int               `json:"total_requests"`
	Endpoints     map[string]int    `json:"endpoints"`
	StatusCodes   map[int]int       `json:"status_codes"`
	AvgResponseMs map[string]int64  `json:"avg_response_ms"`
	RecentErrors  []RequestLogEntry `json:"recent_errors"`
}

// Snapshot aggregates the request log for the last period.
func (s *MonitoringService) Snapshot(period time.Duration) MonitoringSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	since := time.Now().Add(-period)
	snapshot := MonitoringSnapshot{
		Endpoints:     make(map[string]int),
		StatusCodes:   make(map[int]int),
		AvgResponseMs: make(map[string]int64),
	}

	totals := make(map[string]time.Duration)
	for _, entry := range s.entries {
		if entry.Timestamp.Before(since) {
			continue
		}
		snapshot.TotalRequests++
		key := entry.Method + " " + entry.Path
		snapshot.Endpoints[key]++
		snapshot.StatusCodes[entry.StatusCode]++
		totals[key] += entry.ResponseTime

		if entry.StatusCode >= 500 {
			snapshot.RecentErrors = append(snapshot.RecentErrors, entry)
		}
	}
	for key, total := range totals {
		snapshot.AvgResponseMs[key] = total.Milliseconds() / int64(snapshot.Endpoints[key])
	}

	if len(snapshot.RecentErrors) > 20 {
		snapshot.RecentErrors = snapshot.RecentErrors[len(snapshot.RecentErrors)-20:]
	}
	return snapshot
}
