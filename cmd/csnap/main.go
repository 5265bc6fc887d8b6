package main

import (
	"os"

	csnap "github.com/saltytine/csnap"
	"github.com/saltytine/csnap/internal/cli"
	"github.com/saltytine/csnap/internal/profile"
)

func main() {
	fs := csnap.EmbeddedProfiles
	profile.EmbeddedFS = &fs
	exitCode := cli.Run(os.Args)
	os.Exit(exitCode)
}
