package config

import (
	"time"
)

// GetRequestTimeout returns the per-request timeout as time.Duration
func (s *ScrapeSettings) GetRequestTimeout() time.Duration {
	if s.RequestTimeout <= 0 {
		return 10 * time.Second
	}
	return time.Duration(s.RequestTimeout) * time.Second
}

// GetRequestDelay returns the pause between article fetches as time.Duration
func (s *ScrapeSettings) GetRequestDelay() time.Duration {
	if s.RequestDelay <= 0 {
		return 2 * time.Second
	}
	return time.Duration(s.RequestDelay) * time.Second
}
