/*
Copyright 2020 The pdfcpu Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package devprofile resolves the canvas a watch face preview is
// rendered onto. The container format carries no canvas size of its
// own; it is a property of the device model the face targets, so
// devprofile ships built-in defaults and lets a caller register or load
// additional ones from YAML.
package devprofile

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Profile is one device model's preview canvas geometry.
type Profile struct {
	Name   string `yaml:"name"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	DPI    int    `yaml:"dpi"`
}

// Default is used whenever a caller doesn't name a device model: the
// 126x294 canvas worked examples throughout the format's documentation
// assume.
var Default = Profile{Name: "default", Width: 126, Height: 294, DPI: 320}

var builtin = map[string]Profile{
	"default":       Default,
	"round-410x410": {Name: "round-410x410", Width: 410, Height: 410, DPI: 454},
	"round-454x454": {Name: "round-454x454", Width: 454, Height: 454, DPI: 454},
	"rect-192x490":  {Name: "rect-192x490", Width: 192, Height: 490, DPI: 320},
}

// Lookup returns the named built-in profile, or Default if name is empty.
func Lookup(name string) (Profile, bool) {
	if name == "" {
		return Default, true
	}
	p, ok := builtin[name]
	return p, ok
}

// profileFile is the shape of a user-supplied device profile YAML document:
// a flat list of profiles, merged into the registry by Load.
type profileFile struct {
	Profiles []Profile `yaml:"profiles"`
}

// Load reads additional device profiles from r and registers them,
// overriding any built-in of the same name. Call before Lookup.
func Load(r io.Reader) error {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return errors.Wrap(err, "devprofile: reading profile document")
	}

	var f profileFile
	if err := yaml.Unmarshal(buf.Bytes(), &f); err != nil {
		return errors.Wrap(err, "devprofile: parsing profile document")
	}

	for _, p := range f.Profiles {
		if p.Name == "" {
			return errors.New("devprofile: profile entry missing name")
		}
		if p.Width <= 0 || p.Height <= 0 {
			return errors.Errorf("devprofile: profile %q has non-positive dimensions", p.Name)
		}
		builtin[p.Name] = p
	}
	return nil
}
