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

package devprofile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupDefault(t *testing.T) {
	p, ok := Lookup("")
	require.True(t, ok)
	require.Equal(t, Default, p)
	require.Equal(t, 126, p.Width)
	require.Equal(t, 294, p.Height)
}

func TestLookupUnknown(t *testing.T) {
	_, ok := Lookup("no-such-device")
	require.False(t, ok)
}

func TestLoadRegistersAndOverrides(t *testing.T) {
	doc := `
profiles:
  - name: custom-200x200
    width: 200
    height: 200
    dpi: 300
  - name: default
    width: 126
    height: 300
    dpi: 320
`
	require.NoError(t, Load(strings.NewReader(doc)))

	p, ok := Lookup("custom-200x200")
	require.True(t, ok)
	require.Equal(t, 200, p.Width)

	p, ok = Lookup("default")
	require.True(t, ok)
	require.Equal(t, 300, p.Height)

	// restore so other tests in the package see the documented default
	builtin["default"] = Default
}

func TestLoadRejectsMissingName(t *testing.T) {
	err := Load(strings.NewReader("profiles:\n  - width: 10\n    height: 10\n"))
	require.Error(t, err)
}

func TestLoadRejectsNonPositiveDimensions(t *testing.T) {
	err := Load(strings.NewReader("profiles:\n  - name: bad\n    width: 0\n    height: 10\n"))
	require.Error(t, err)
}
