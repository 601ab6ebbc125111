package operations

import (
	"fmt"

	"github.com/opsbarn/virole"
	"github.com/urfave/cli"
)

func Version() cli.Command {
	return cli.Command{
		Name:    "version",
		Aliases: []string{"v"},
		Usage:   "prints the version of the CLI",
		Action: func(c *cli.Context) error {
			fmt.Println(virole.ClientVersion)
			return nil
		},
	}
}
