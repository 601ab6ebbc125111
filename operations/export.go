package operations

import (
	"context"
	"os"

	"github.com/mongodb/grip"
	"github.com/opsbarn/virole/model"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

// Export writes a role's attached privileges back out as a permission file
// that the import command accepts.
func Export() cli.Command {
	return cli.Command{
		Name:  "export",
		Usage: "write a role's attached privileges as a JSON permission file",
		Flags: clientConfigFlags(
			cli.StringFlag{
				Name:  joinFlagNames(nameFlagName, "n"),
				Usage: "name of the role to export",
			},
			cli.StringFlag{
				Name:  joinFlagNames(fileFlagName, "f"),
				Usage: "path to write the permission file to; stdout when omitted",
			}),
		Before: mergeBeforeFuncs(
			setPlainLogger,
			requireStringFlag(nameFlagName)),
		Action: func(c *cli.Context) error {
			confPath := c.Parent().String(confFlagName)
			name := c.String(nameFlagName)
			file := c.String(fileFlagName)

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

			privs, err := mgr.RolePrivileges(ctx, name)
			if err != nil {
				return err
			}

			if file == "" {
				return model.EncodePermissions(os.Stdout, privs)
			}

			if err = model.WritePermissions(file, privs); err != nil {
				return err
			}
			grip.Infof("Exported %d privileges of role '%s' to '%s'.", len(privs), name, file)

			return nil
		},
	}
}
