// Command sketchpath samples reference paths from armature animations,
// retargets sketched strokes onto them and renders previews.
//
// Settings such as the frame range, the view and the preview colors come
// from a TOML file given with --config; see [config.Config].
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
