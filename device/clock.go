package device

import "time"

// Clock is the real monotonic clock. NowMillis counts from construction so
// values stay small, matching the running-time counter on the original
// hardware.
type Clock struct {
	start time.Time
}

func NewClock() *Clock {
	return &Clock{start: time.Now()}
}

func (c *Clock) NowMillis() int64 {
	return time.Since(c.start).Milliseconds()
}

func (c *Clock) SleepMillis(n int) {
	time.Sleep(time.Duration(n) * time.Millisecond)
}
