// Copyright 2025 The CircularLikedList Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// rateLimitedLogger drops messages arriving faster than its limiter allows.
// The next message that gets through is preceded by a count of the dropped
// ones.
type rateLimitedLogger struct {
	logger     Logger
	limit      *rate.Limiter
	now        func() time.Time
	suppressed atomic.Int64
}

func (rl *rateLimitedLogger) allow(logf func(string, ...any)) bool {
	if !rl.limit.AllowN(rl.now(), 1) {
		rl.suppressed.Add(1)
		return false
	}
	if n := rl.suppressed.Swap(0); n > 0 {
		logf("%d similar messages suppressed", n)
	}
	return true
}

func (rl *rateLimitedLogger) Debugf(format string, v ...any) {
	if rl.allow(rl.logger.Debugf) {
		rl.logger.Debugf(format, v...)
	}
}

func (rl *rateLimitedLogger) Infof(format string, v ...any) {
	if rl.allow(rl.logger.Infof) {
		rl.logger.Infof(format, v...)
	}
}

func (rl *rateLimitedLogger) Warningf(format string, v ...any) {
	if rl.allow(rl.logger.Warningf) {
		rl.logger.Warningf(format, v...)
	}
}

func (rl *rateLimitedLogger) IsLogging(level Level) bool {
	return rl.logger.IsLogging(level)
}

// RateLimitedLogger returns a Logger that logs to logger at most once per
// every.
func RateLimitedLogger(logger Logger, every time.Duration) Logger {
	return newRateLimitedLogger(logger, every, time.Now)
}

func newRateLimitedLogger(logger Logger, every time.Duration, now func() time.Time) *rateLimitedLogger {
	return &rateLimitedLogger{
		logger: logger,
		limit:  rate.NewLimiter(rate.Every(every), 1),
		now:    now,
	}
}
