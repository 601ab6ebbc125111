package operations

import (
	"context"

	"github.com/mongodb/grip"
	"github.com/opsbarn/virole"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

// VINRole creates the access role the Infrastructure Navigator appliance
// needs on a vCenter target. The privilege set is fixed; only the role name
// can be changed.
func VINRole() cli.Command {
	return cli.Command{
		Name:    "vin-role",
		Aliases: []string{"vin"},
		Usage:   "create the Infrastructure Navigator access role",
		Flags: clientConfigFlags(
			cli.StringFlag{
				Name:  joinFlagNames(nameFlagName, "n"),
				Usage: "name of the role to create",
				Value: virole.VINRoleName,
			}),
		Before: setPlainLogger,
		Action: func(c *cli.Context) error {
			confPath := c.Parent().String(confFlagName)
			name := c.String(nameFlagName)

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

			role, err := mgr.CreateRole(ctx, name, virole.VINRolePrivileges)
			if err != nil {
				return err
			}

			grip.Infof("Created role '%s' with privileges:", role.Name)
			for _, priv := range role.Privileges {
				grip.Infof("\t%s", priv)
			}

			return nil
		},
	}
}
