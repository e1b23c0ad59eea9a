package checkout

import (
	"context"
	"fmt"
	"time"
)

// Countdown ticks down Duration one second per Interval and calls OnExpired once
// when it reaches zero.
type Countdown struct {
	Duration  time.Duration
	Interval  time.Duration
	OnTick    func(remaining time.Duration)
	OnExpired func()
}

// Run blocks until the countdown expires or ctx is done. It reports whether it expired.
func (c Countdown) Run(ctx context.Context) bool {
	interval := c.Interval
	if interval <= 0 {
		interval = time.Second
	}
	remaining := c.Duration.Truncate(time.Second)
	if remaining <= 0 {
		remaining = DefaultPaymentTime
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return false
		case <-ticker.C:
			remaining -= time.Second
			if remaining <= 0 {
				if c.OnTick != nil {
					c.OnTick(0)
				}
				if c.OnExpired != nil {
					c.OnExpired()
				}
				return true
			}
			if c.OnTick != nil {
				c.OnTick(remaining)
			}
		}
	}
}

// Format renders d as HH:MM:SS; hours are not wrapped at 24.
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
}
