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

package menu

import (
	"strconv"
	"strings"

	"github.com/Robbienicur/CircularLikedList/pkg/clist"
)

// DefaultSeparator separates values in Format output.
const DefaultSeparator = " -> "

// Format renders l on one line, e.g. "List: [1 -> 2 -> 3] (circular)". An
// empty separator selects DefaultSeparator.
func Format(l *clist.List, sep string) string {
	if l.Empty() {
		return "List: []"
	}
	if sep == "" {
		sep = DefaultSeparator
	}
	var b strings.Builder
	b.WriteString("List: [")
	first := true
	l.ForEach(func(v int) {
		if !first {
			b.WriteString(sep)
		}
		first = false
		b.WriteString(strconv.Itoa(v))
	})
	b.WriteString("] (circular)")
	return b.String()
}

// FormatTraversal renders the values of l separated by single spaces.
func FormatTraversal(l *clist.List) string {
	vs := make([]string, 0, l.Len())
	l.ForEach(func(v int) {
		vs = append(vs, strconv.Itoa(v))
	})
	return strings.Join(vs, " ")
}
