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
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// GoogleEmitter is a wrapper that emits logs in a format compatible with
// package github.com/golang/glog.
type GoogleEmitter struct {
	// Emitter is the underlying emitter.
	Emitter
}

// pid is used for the threadid component of the header, space padded to 7
// columns like glog does.
var pid = []byte(padLeft(strconv.Itoa(os.Getpid()), 7))

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// levelChar returns the single character glog uses for level.
func levelChar(level Level) byte {
	switch level {
	case Debug:
		return 'D'
	case Info:
		return 'I'
	default:
		return 'W'
	}
}

// caller returns "file:line" for the frame depth levels above the caller of
// caller.
func caller(depth int) string {
	_, file, line, ok := runtime.Caller(depth + 1)
	if !ok {
		return "???:0"
	}
	if slash := strings.LastIndexByte(file, '/'); slash >= 0 {
		file = file[slash+1:]
	}
	return file + ":" + strconv.Itoa(line)
}

// header builds the glog prefix:
//
//	Lmmdd hh:mm:ss.uuuuuu threadid file:line]
func header(depth int, level Level, timestamp time.Time) []byte {
	b := make([]byte, 0, 64)
	b = append(b, levelChar(level))
	b = timestamp.AppendFormat(b, "0102 15:04:05.000000")
	b = append(b, ' ')
	b = append(b, pid...)
	b = append(b, ' ')
	b = append(b, caller(depth+1)...)
	b = append(b, "] "...)
	return b
}

// Emit emits the message, google-style.
func (g GoogleEmitter) Emit(depth int, level Level, timestamp time.Time, format string, args ...any) {
	b := header(depth+1, level, timestamp)

	// The header is passed as part of the format string, so escape any
	// verbs that may appear in it.
	h := strings.ReplaceAll(string(b), "%", "%%")
	line := h + format
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}
	g.Emitter.Emit(depth+1, level, timestamp, line, args...)
}
