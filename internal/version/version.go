// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Do not import any other xmldiff packages to avoid import cycles.

package version

import "runtime/debug"

// Version is the module version, or "dev" for local builds. A short VCS
// revision is appended when the build info carries one.
var Version = func() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}
	return format(info.Main.Version, info.Settings)
}()

func format(main string, settings []debug.BuildSetting) string {
	v := main
	if v == "" || v == "(devel)" {
		v = "dev"
	}

	var revision string
	modified := false
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
			if len(revision) > 7 {
				revision = revision[:7]
			}
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if revision == "" {
		return v
	}
	if modified {
		revision += "+dirty"
	}
	return v + " (" + revision + ")"
}
