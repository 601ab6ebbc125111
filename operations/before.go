package operations

import (
	"strings"

	"github.com/mongodb/grip"
	"github.com/mongodb/grip/send"
	"github.com/opsbarn/virole"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

var setPlainLogger = func(c *cli.Context) error {
	grip.Warning(grip.SetSender(send.MakePlainLogger()))
	return nil
}

func mergeBeforeFuncs(ops ...cli.BeforeFunc) cli.BeforeFunc {
	return func(c *cli.Context) error {
		catcher := grip.NewBasicCatcher()

		for _, op := range ops {
			catcher.Add(op(c))
		}

		return catcher.Resolve()
	}
}

func requireStringFlag(name string) cli.BeforeFunc {
	return func(c *cli.Context) error {
		if c.String(name) == "" {
			return errors.Errorf("flag '--%s' was not specified", name)
		}
		return nil
	}
}

// requireValidRoleNameFlag rejects a bad role name before the command does
// any remote interaction.
func requireValidRoleNameFlag(name string) cli.BeforeFunc {
	return func(c *cli.Context) error {
		return virole.ValidateRoleName(c.String(name))
	}
}

func requireAtMostOneBool(names ...string) cli.BeforeFunc {
	return func(c *cli.Context) error {
		count := 0
		for _, name := range names {
			if c.Bool(name) {
				count++
			}
		}
		if count > 1 {
			return errors.Errorf("must specify at most one of the flags: %s", strings.Join(names, ", "))
		}
		return nil
	}
}
