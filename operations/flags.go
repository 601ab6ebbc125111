package operations

import (
	"strings"

	"github.com/opsbarn/virole"
	"github.com/urfave/cli"
)

const (
	confFlagName     = "conf"
	targetFlagName   = "target"
	userFlagName     = "user"
	passwordFlagName = "password"
	insecureFlagName = "insecure"
	nameFlagName     = "name"
	fileFlagName     = "file"
)

func joinFlagNames(ids ...string) string { return strings.Join(ids, ", ") }

// clientConfigFlags adds the connection flags every remote command takes.
// Flag values win over the VIROLE_* environment variables, which win over
// the settings file.
func clientConfigFlags(flags ...cli.Flag) []cli.Flag {
	return append(flags,
		cli.StringFlag{
			Name:   joinFlagNames(targetFlagName, "t"),
			Usage:  "vCenter endpoint to administer, as a host name, host:port, or URL",
			EnvVar: virole.TargetEnvVar,
		},
		cli.StringFlag{
			Name:   joinFlagNames(userFlagName, "u"),
			Usage:  "user name for the vCenter session",
			EnvVar: virole.UserEnvVar,
		},
		cli.StringFlag{
			Name:   passwordFlagName,
			Usage:  "password for the vCenter session",
			EnvVar: virole.PasswordEnvVar,
		},
		cli.BoolFlag{
			Name:   joinFlagNames(insecureFlagName, "k"),
			Usage:  "skip TLS certificate verification for this session",
			EnvVar: virole.InsecureEnvVar,
		},
	)
}
