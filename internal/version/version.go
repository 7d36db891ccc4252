// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package version

import "runtime/debug"

// Version is overridden at build time through -ldflags.
var Version = "0.1.0" // x-release-please-version

// Revision is the VCS commit the binary was built from, empty when the build
// carries no VCS stamp.
func Revision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}

	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}

	return ""
}
