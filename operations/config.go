package operations

import (
	"context"
	"os"
	"path/filepath"
	"runtime"

	"github.com/kardianos/osext"
	"github.com/mitchellh/go-homedir"
	"github.com/mongodb/grip"
	"github.com/opsbarn/virole"
	"github.com/opsbarn/virole/vsphere"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"gopkg.in/yaml.v3"
)

func findConfigFilePath(fn string) (string, error) {
	currentBinPath, _ := osext.Executable()

	userHome, err := homedir.Dir()
	if err != nil {
		// workaround for cygwin if we're on windows but couldn't get a homedir
		if runtime.GOOS == "windows" && len(os.Getenv("HOME")) > 0 {
			userHome = os.Getenv("HOME")
		}
	}

	if fn != "" {
		if isValidPath(fn) {
			return fn, nil
		}
		absfn, _ := filepath.Abs(fn)
		if isValidPath(absfn) {
			return absfn, nil
		}
	}

	defaultFiles := []string{
		filepath.Join(userHome, virole.DefaultVIroleConfig),
		filepath.Join(filepath.Dir(currentBinPath), virole.DefaultVIroleConfig),
	}
	for _, path := range defaultFiles {
		if isValidPath(path) {
			grip.WarningWhen(fn != "", "Couldn't find configuration file, falling back on default.")
			return path, nil
		}
	}

	return "", errors.New("could not find client configuration file on the local system")
}

func isValidPath(path string) bool {
	stat, err := os.Stat(path)
	if os.IsNotExist(err) || stat.IsDir() {
		return false
	}
	return true
}

// ClientSettings represents the data stored in the user's config file, by
// default located at ~/.virole.yml. Command line flags and the VIROLE_*
// environment variables override anything set here.
type ClientSettings struct {
	Target     string `json:"target" yaml:"target,omitempty"`
	User       string `json:"user" yaml:"user,omitempty"`
	Password   string `json:"password" yaml:"password,omitempty"`
	Insecure   bool   `json:"insecure" yaml:"insecure,omitempty"`
	LoadedFrom string `json:"-" yaml:"-"`
}

// NewClientSettings loads the settings file. A file named on the command
// line must exist somewhere; when no file was named and none of the default
// locations has one, empty settings are returned so that flags and the
// environment can carry the whole configuration.
func NewClientSettings(fn string) (*ClientSettings, error) {
	path, err := findConfigFilePath(fn)
	if err != nil {
		if fn == "" {
			return &ClientSettings{}, nil
		}
		return nil, errors.Wrapf(err, "finding config file '%s'", fn)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading configuration from file '%s'", path)
	}

	conf := &ClientSettings{}
	if err = yaml.Unmarshal(data, conf); err != nil {
		return nil, errors.Wrapf(err, "reading YAML data from configuration file '%s'", path)
	}
	conf.LoadedFrom = path

	return conf, nil
}

// authOptions resolves the connection parameters for one command invocation:
// command line flags, already backed by the VIROLE_* environment variables,
// then the settings file. The insecure option is an opt-in from either
// source. The tool is non-interactive, so a parameter that resolves from
// nowhere is an error rather than a prompt.
func (s *ClientSettings) authOptions(c *cli.Context) (vsphere.AuthOptions, error) {
	opts := vsphere.AuthOptions{
		Target:   c.String(targetFlagName),
		Username: c.String(userFlagName),
		Password: c.String(passwordFlagName),
		Insecure: c.Bool(insecureFlagName) || s.Insecure,
	}

	if opts.Target == "" {
		opts.Target = s.Target
	}
	if opts.Username == "" {
		opts.Username = s.User
	}
	if opts.Password == "" {
		opts.Password = s.Password
	}

	catcher := grip.NewBasicCatcher()
	if opts.Target == "" {
		catcher.Errorf("no target endpoint: set '--%s', %s, or 'target' in the settings file", targetFlagName, virole.TargetEnvVar)
	}
	if opts.Username == "" {
		catcher.Errorf("no user name: set '--%s', %s, or 'user' in the settings file", userFlagName, virole.UserEnvVar)
	}
	if opts.Password == "" {
		catcher.Errorf("no password: set '--%s', %s, or 'password' in the settings file", passwordFlagName, virole.PasswordEnvVar)
	}

	return opts, catcher.Resolve()
}

// setupRoleManager opens the vCenter session for one command invocation.
// Callers are responsible for calling (*vsphere.Manager).Close when finished.
func (s *ClientSettings) setupRoleManager(ctx context.Context, c *cli.Context) (*vsphere.Manager, error) {
	opts, err := s.authOptions(c)
	if err != nil {
		return nil, err
	}

	mgr, err := vsphere.NewManager(ctx, opts)
	if err != nil {
		return nil, errors.Wrap(err, "setting up vCenter session")
	}

	return mgr, nil
}
