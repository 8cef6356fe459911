package completion_helper

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// DefaultFlagComplete prints all flags of the current command to facilitate shell completion.
// The help flag is left out; urfave/cli suggests it on its own.
func DefaultFlagComplete(_ context.Context, cmd *cli.Command) {
	w := cmd.Root().Writer
	for _, f := range cmd.Flags {
		for _, name := range f.Names() {
			switch {
			case name == "help" || name == "h":
				continue
			case len(name) == 1:
				_, _ = fmt.Fprintln(w, "-"+name)
			default:
				_, _ = fmt.Fprintln(w, "--"+name)
			}
		}
	}
}
