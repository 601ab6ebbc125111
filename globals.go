package virole

import (
	"regexp"

	"github.com/pkg/errors"
)

const (
	// ClientVersion is the version of the virole CLI. It is the date of
	// the last change that shipped.
	ClientVersion = "2026-08-18"

	// DefaultVIroleConfig is the name of the settings file the CLI looks
	// for in the user's home directory (and next to the executable as a
	// fallback).
	DefaultVIroleConfig = ".virole.yml"
)

// Environment variables consulted when the corresponding connection flag is
// not given on the command line. Values from flags win over the environment,
// which wins over the settings file.
const (
	TargetEnvVar   = "VIROLE_TARGET"
	UserEnvVar     = "VIROLE_USER"
	PasswordEnvVar = "VIROLE_PASSWORD"
	InsecureEnvVar = "VIROLE_INSECURE"
	ConfigEnvVar   = "VIROLE_CONFIG"
)

const (
	// VINRoleName is the role created for the Infrastructure Navigator
	// appliance when no name is given.
	VINRoleName = "InfrastructureNavigator-Access"
)

// VINRolePrivileges are the privilege identifiers the Infrastructure
// Navigator appliance needs on the virtual machines it inspects: console
// interaction, guest control via the VIX API, and general VM interaction.
var VINRolePrivileges = []string{
	"VirtualMachine.Interact.ConsoleInteract",
	"VirtualMachine.Interact.GuestControl",
	"VirtualMachine.Interact",
}

var roleNameRegexp = regexp.MustCompile(`^[A-Za-z ]+$`)

// ValidateRoleName checks a name against the naming rule for imported roles:
// ASCII letters and spaces only, at least one character. Imported role names
// are checked before any remote interaction takes place. The rule applies to
// imported roles only; fixed role names such as VINRoleName are exempt.
func ValidateRoleName(name string) error {
	if name == "" {
		return errors.New("role name cannot be empty")
	}
	if !roleNameRegexp.MatchString(name) {
		return errors.Errorf("invalid role name '%s': names may contain only ASCII letters and spaces", name)
	}
	return nil
}
