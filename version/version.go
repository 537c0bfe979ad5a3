// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package version exposes build metadata of the current binary.
package version

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"

	"go.astrophena.name/copyright-updater/syncx"
)

// Info describes the build of the current binary.
type Info struct {
	// Name is the base name of the binary.
	Name string
	// Version is the module version, or "devel" for untagged builds.
	Version string
	// Commit is the VCS revision the binary was built from, if recorded.
	Commit string
	// GoVersion is the version of the Go toolchain used for the build.
	GoVersion string
}

// String implements the [fmt.Stringer] interface.
func (i Info) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s", i.Name, i.Version)
	if i.Commit != "" {
		fmt.Fprintf(&sb, " (%s)", i.Commit)
	}
	fmt.Fprintf(&sb, "\nbuilt with %s\n", i.GoVersion)
	return sb.String()
}

// CmdName returns the base name of the current binary.
func CmdName() string {
	exe, err := os.Executable()
	if err != nil {
		return "(unknown)"
	}
	return strings.TrimSuffix(filepath.Base(exe), ".exe")
}

var info syncx.Lazy[Info]

// Version returns the build information of the current binary.
func Version() Info {
	return info.Get(readBuildInfo)
}

func readBuildInfo() Info {
	i := Info{
		Name:      CmdName(),
		Version:   "devel",
		GoVersion: runtime.Version(),
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return i
	}
	if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		i.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 8 {
			i.Commit = s.Value[:8]
		}
	}
	return i
}
