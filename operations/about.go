package operations

import (
	"context"

	"github.com/cheynewallace/tabby"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

func About() cli.Command {
	return cli.Command{
		Name:   "about",
		Usage:  "display identification of the target endpoint",
		Flags:  clientConfigFlags(),
		Before: setPlainLogger,
		Action: func(c *cli.Context) error {
			confPath := c.Parent().String(confFlagName)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			conf, err := NewClientSettings(confPath)
			if err != nil {
				return errors.Wrap(err, "loading configuration")
			}

			mgr, err := conf.setupRoleManager(ctx, c)
			if err != nil {
				return err
			}
			defer mgr.Close(ctx)

			about := mgr.About()

			t := tabby.New()
			t.AddLine("Name:", about.Name)
			t.AddLine("Vendor:", about.Vendor)
			t.AddLine("Version:", about.Version)
			t.AddLine("Build:", about.Build)
			t.AddLine("OS type:", about.OsType)
			t.AddLine("API type:", about.ApiType)
			t.AddLine("API version:", about.ApiVersion)
			t.Print()

			return nil
		},
	}
}
