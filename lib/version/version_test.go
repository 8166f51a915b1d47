// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestCommitFromSettings(t *testing.T) {
	tests := []struct {
		name     string
		settings []debug.BuildSetting
		want     string
	}{
		{"no vcs", nil, "unknown"},
		{"clean", []debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789abcdef0123"}}, "0123456789ab"},
		{"dirty", []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.modified", Value: "true"},
		}, "abc123-dirty"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := commitFromSettings(test.settings); got != test.want {
				t.Errorf("commitFromSettings() = %q, want %q", got, test.want)
			}
		})
	}
}

func TestInjectedCommitWins(t *testing.T) {
	original := GitCommit
	defer func() { GitCommit = original }()
	GitCommit = "feedbee"

	if got := Info(); got != Version+" (feedbee)" {
		t.Errorf("Info() = %q", got)
	}
	if !strings.Contains(Full(), "Platform: ") {
		t.Errorf("Full() = %q", Full())
	}
}
