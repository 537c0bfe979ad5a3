// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"go.astrophena.name/copyright-updater/cli"
	"go.astrophena.name/copyright-updater/updater"
)

func main() { cli.Main(new(updater.App)) }
