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

package config

import (
	"flag"
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"
)

// File is the content of a TOML config file, e.g.:
//
//	seed = [1, 2, 3]
//
//	[flags]
//	debug = "true"
//	separator = ", "
type File struct {
	// Seed holds the initial list values, head first.
	Seed []int `toml:"seed"`

	// Flags maps flag names to values. They are applied as if they were
	// passed on the command line as --key=value.
	Flags map[string]string `toml:"flags"`
}

// LoadFile reads and decodes the TOML file at path. Unknown keys are
// rejected so typos do not go unnoticed.
func LoadFile(path string) (*File, error) {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("error decoding config file %q: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config file %q: unknown keys %v", path, undecoded)
	}
	return &f, nil
}

// apply overrides conf with every flag listed in f that was not set
// explicitly on flagSet. Only flags backed by a Config field can be set, and
// --config itself cannot.
func (f *File) apply(conf *Config, flagSet *flag.FlagSet) error {
	explicit := make(map[string]bool)
	flagSet.Visit(func(fl *flag.Flag) {
		explicit[fl.Name] = true
	})

	// Sort for deterministic error reporting.
	names := make([]string, 0, len(f.Flags))
	for name := range f.Flags {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if name == "config" {
			return fmt.Errorf("flag %q cannot be set from a config file", name)
		}
		if explicit[name] {
			continue
		}
		if err := conf.Override(flagSet, name, f.Flags[name]); err != nil {
			return err
		}
	}
	return nil
}
