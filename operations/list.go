package operations

import (
	"context"
	"fmt"
	"sort"

	"github.com/cheynewallace/tabby"
	"github.com/opsbarn/virole/vsphere"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

func List() cli.Command {
	const (
		rolesFlagName      = "roles"
		privilegesFlagName = "privileges"
	)

	return cli.Command{
		Name:  "list",
		Usage: "display role and privilege information from the target",
		Flags: clientConfigFlags(
			cli.BoolFlag{
				Name:  rolesFlagName,
				Usage: "list all roles defined on the target; the default",
			},
			cli.BoolFlag{
				Name:  privilegesFlagName,
				Usage: "list the target's privilege catalog",
			}),
		Before: mergeBeforeFuncs(
			setPlainLogger,
			requireAtMostOneBool(rolesFlagName, privilegesFlagName)),
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

			if c.Bool(privilegesFlagName) {
				return listPrivileges(ctx, mgr)
			}
			return listRoles(ctx, mgr)
		},
	}
}

func listRoles(ctx context.Context, mgr *vsphere.Manager) error {
	roles, err := mgr.Roles(ctx)
	if err != nil {
		return err
	}

	sort.Slice(roles, func(i, j int) bool { return roles[i].Name < roles[j].Name })

	fmt.Printf("%d roles:\n", len(roles))
	t := tabby.New()
	t.AddHeader("ID", "Name", "System", "Privileges")
	for _, r := range roles {
		t.AddLine(r.ID, r.Name, r.System, len(r.Privileges))
	}
	t.Print()

	return nil
}

func listPrivileges(ctx context.Context, mgr *vsphere.Manager) error {
	privs, err := mgr.Privileges(ctx)
	if err != nil {
		return err
	}

	sort.Slice(privs, func(i, j int) bool { return privs[i].PrivId < privs[j].PrivId })

	fmt.Printf("%d privileges:\n", len(privs))
	t := tabby.New()
	t.AddHeader("Privilege", "Group", "Name")
	for _, p := range privs {
		t.AddLine(p.PrivId, p.PrivGroupName, p.Name)
	}
	t.Print()

	return nil
}
