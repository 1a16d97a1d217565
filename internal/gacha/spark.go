package gacha

import (
	"errors"
	"sync"
)

// SparkThreshold is the number of recruitment points that can be exchanged for
// one sparkable student. Every student rolled earns one point.
const SparkThreshold = 200

var ErrSparkNotReady = errors.New("not enough recruitment points")

// SparkStatus is a snapshot of one user's points on one banner.
type SparkStatus struct {
	Points    int
	Threshold int
}

// Ready reports whether an exchange is possible.
func (s SparkStatus) Ready() bool { return s.Points >= s.Threshold }

// Remaining is the number of rolls left before the next exchange.
func (s SparkStatus) Remaining() int {
	if s.Ready() {
		return 0
	}
	return s.Threshold - s.Points
}

type sparkKey struct {
	user   string
	banner string
}

// SparkLedger counts recruitment points per user and banner. Points never carry
// over between banners, and live only for the lifetime of the process.
type SparkLedger struct {
	Threshold int

	mu     sync.Mutex
	points map[sparkKey]int
}

// NewSparkLedger creates a ledger; threshold <= 0 uses SparkThreshold.
func NewSparkLedger(threshold int) *SparkLedger {
	if threshold <= 0 {
		threshold = SparkThreshold
	}
	return &SparkLedger{Threshold: threshold, points: make(map[sparkKey]int)}
}

// Add credits n rolls to the user and returns the new status.
func (l *SparkLedger) Add(user, banner string, n int) SparkStatus {
	l.mu.Lock()
	defer l.mu.Unlock()
	k := sparkKey{user, banner}
	if n > 0 {
		l.points[k] += n
	}
	return SparkStatus{Points: l.points[k], Threshold: l.Threshold}
}

func (l *SparkLedger) Status(user, banner string) SparkStatus {
	return l.Add(user, banner, 0)
}

// Redeem spends one threshold worth of points.
func (l *SparkLedger) Redeem(user, banner string) (SparkStatus, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	k := sparkKey{user, banner}
	st := SparkStatus{Points: l.points[k], Threshold: l.Threshold}
	if !st.Ready() {
		return st, ErrSparkNotReady
	}
	l.points[k] -= l.Threshold
	st.Points = l.points[k]
	return st, nil
}
