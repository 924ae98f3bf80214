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

package cli

import (
	"strings"
	"time"
)

// logFileOpts expands the variables accepted in --log:
// %COMMAND% is the subcommand name and %TIMESTAMP% the start time.
type logFileOpts struct {
	command string
	start   time.Time
}

// Build implements log.FileOpts.Build.
func (o logFileOpts) Build(logPattern string) string {
	start := o.start
	if start.IsZero() {
		start = time.Now()
	}
	command := o.command
	if command == "" {
		command = "none"
	}
	r := strings.NewReplacer(
		"%TIMESTAMP%", start.Format("20060102-150405.000000"),
		"%COMMAND%", command,
	)
	return r.Replace(logPattern)
}
