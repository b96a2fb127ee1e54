/*
Copyright 2018 The pdfcpu Authors.

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

// Package watchface parses the proprietary binary watch face container
// format into a typed configuration tree and renders a preview frame
// from it.
package watchface

import (
	"github.com/pkg/errors"

	"github.com/mechiko/watchface/pkg/devprofile"
	"github.com/mechiko/watchface/pkg/model"
	"github.com/mechiko/watchface/pkg/render"
	"github.com/mechiko/watchface/pkg/wire"
)

// Watchface is a parsed container: a typed configuration tree plus the
// ordered image table its placements reference.
type Watchface = model.Watchface

// PreviewParams is the flat set of runtime readings a preview is
// rendered with — the current time, activity counters, weather, and so
// on. Every field is optional; a nil field's module is skipped.
type PreviewParams = model.PreviewParams

// ImageWithCoords is one image placement in a rendered preview frame.
type ImageWithCoords = model.ImageWithCoords

// Parse decodes a watch face container's binary framing, parses each
// section's tagged parameters, and transforms the result into a typed
// configuration tree alongside the decoded image table.
func Parse(data []byte) (*Watchface, error) {
	raw, err := wire.ParseContainer(data)
	if err != nil {
		return nil, errors.Wrap(err, "watchface: parsing container")
	}

	var root model.Root
	if err := root.Apply(raw.Sections); err != nil {
		return nil, errors.Wrap(err, "watchface: transforming configuration tree")
	}

	return &model.Watchface{Root: root, Images: raw.Images}, nil
}

// Render composes a preview frame for wf: the ordered list of image
// placements a caller draws, background-to-foreground, to produce one
// frame under the given runtime readings. deviceProfile names a
// devprofile entry (an empty string selects the 126x294 default); an
// unknown name is an error. The profile is carried into the render
// context, but the analog-hand rasterizer does not read its size: each
// hand is cropped to its own bounds and placed at its top-left corner.
func Render(wf *Watchface, deviceProfile string, params PreviewParams) ([]ImageWithCoords, error) {
	profile, ok := devprofile.Lookup(deviceProfile)
	if !ok {
		return nil, errors.Errorf("watchface: unknown device profile %q", deviceProfile)
	}
	return render.Compose(wf, profile, params), nil
}
