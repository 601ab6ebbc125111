package operations

import (
	"context"

	"github.com/mongodb/grip"
	"github.com/opsbarn/virole/vsphere"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

func Import() cli.Command {
	const overwriteFlagName = "overwrite"

	return cli.Command{
		Name:  "import",
		Usage: "define a role on the target from a JSON permission file",
		Flags: clientConfigFlags(
			cli.StringFlag{
				Name:  joinFlagNames(nameFlagName, "n"),
				Usage: "name of the role to define; letters and spaces only",
			},
			cli.StringFlag{
				Name:  joinFlagNames(fileFlagName, "f"),
				Usage: "path of the JSON permission file to import",
			},
			cli.BoolFlag{
				Name:  overwriteFlagName,
				Usage: "redefine the role in place if it already exists",
			}),
		// The permission file is not checked for existence here: an
		// existing role has to fail the import before the file is ever
		// read.
		Before: mergeBeforeFuncs(
			setPlainLogger,
			requireStringFlag(nameFlagName),
			requireStringFlag(fileFlagName),
			requireValidRoleNameFlag(nameFlagName)),
		Action: func(c *cli.Context) error {
			confPath := c.Parent().String(confFlagName)
			name := c.String(nameFlagName)
			file := c.String(fileFlagName)
			overwrite := c.Bool(overwriteFlagName)

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

			result, err := mgr.ImportRole(ctx, vsphere.ImportRoleOptions{
				Name:           name,
				PermissionFile: file,
				Overwrite:      overwrite,
			})
			if err != nil {
				return err
			}

			verb := "Created"
			if result.Updated {
				verb = "Redefined"
			}
			grip.Infof("%s role '%s' with %d of %d requested privileges attached.",
				verb, result.Role.Name, len(result.Resolved), len(result.Resolved)+len(result.Missing))

			return nil
		},
	}
}
