// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package progresslog

import (
	"sync"
	"time"

	"github.com/decred/slog"
)

// logInterval is the minimum time between progress messages.
const logInterval = 10 * time.Second

// pickNoun returns the singular or plural form of a noun depending on the
// provided count.
func pickNoun(n uint64, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

// Logger provides periodic logging of progress towards generating a large
// amount of output.
type Logger struct {
	sync.Mutex
	subsystemLogger slog.Logger
	progressAction  string

	// lastLogTime tracks the last time a log statement was shown.
	lastLogTime time.Time

	// These fields accumulate information between log statements.
	receivedValues uint64
	receivedBytes  uint64

	// totalValues is never reset.
	totalValues uint64
}

// New returns a new generation progress logger.
func New(progressAction string, logger slog.Logger) *Logger {
	return &Logger{
		lastLogTime:     time.Now(),
		progressAction:  progressAction,
		subsystemLogger: logger,
	}
}

// LogProgress accumulates the provided counts and periodically (every 10
// seconds) logs an information message to show progress to the user along
// with duration and totals included.
//
// The force flag may be used to force a log message to be shown regardless of
// the time the last one was shown.  Nothing is logged when no values are
// outstanding.
//
// The progress message is templated as follows:
//
//	{progressAction} {numValues} {values|value} in the last {timePeriod}
//	({numBytes} {bytes|byte}, total {totalValues})
func (l *Logger) LogProgress(values, bytes uint64, forceLog bool) {
	l.Lock()
	defer l.Unlock()

	l.receivedValues += values
	l.receivedBytes += bytes
	l.totalValues += values
	now := time.Now()
	duration := now.Sub(l.lastLogTime)
	if l.receivedValues == 0 || (!forceLog && duration < logInterval) {
		return
	}

	l.subsystemLogger.Infof("%s %d %s in the last %0.2fs (%d %s, total %d)",
		l.progressAction, l.receivedValues,
		pickNoun(l.receivedValues, "value", "values"), duration.Seconds(),
		l.receivedBytes, pickNoun(l.receivedBytes, "byte", "bytes"),
		l.totalValues)

	l.receivedValues = 0
	l.receivedBytes = 0
	l.lastLogTime = now
}

// Flush logs any outstanding progress.
func (l *Logger) Flush() {
	l.LogProgress(0, 0, true)
}

// Total returns the number of values accumulated since creation.
func (l *Logger) Total() uint64 {
	l.Lock()
	defer l.Unlock()
	return l.totalValues
}

// SetLastLogTime updates the last time data was logged to the provided time.
func (l *Logger) SetLastLogTime(time time.Time) {
	l.Lock()
	l.lastLogTime = time
	l.Unlock()
}
