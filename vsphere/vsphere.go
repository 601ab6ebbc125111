package vsphere

import (
	"context"
	"strings"

	"github.com/mongodb/grip"
	"github.com/mongodb/grip/message"
	"github.com/opsbarn/virole"
	"github.com/opsbarn/virole/model"
	"github.com/pkg/errors"
	"github.com/vmware/govmomi/vim25/types"
)

// Manager performs role administration against a single vCenter target. A
// Manager owns the session it was built with; callers must Close it when
// finished. No connection state lives outside the Manager.
type Manager struct {
	client client
}

// NewManager opens a session against the target described by the options and
// returns a Manager bound to it.
func NewManager(ctx context.Context, opts AuthOptions) (*Manager, error) {
	m := &Manager{client: &clientImpl{}}
	if err := m.Configure(ctx, opts); err != nil {
		return nil, err
	}

	return m, nil
}

// Configure opens the Manager's session with the target.
func (m *Manager) Configure(ctx context.Context, opts AuthOptions) error {
	if m.client == nil {
		m.client = &clientImpl{}
	}

	if err := m.client.Init(ctx, &opts); err != nil {
		return errors.Wrap(err, "failed to initialize client connection")
	}

	return nil
}

// Close ends the Manager's session. Logout failure is reported as a warning
// so that it never masks the outcome of the operation that preceded it.
func (m *Manager) Close(ctx context.Context) {
	if err := m.client.Logout(ctx); err != nil {
		grip.Warning(message.WrapError(err, message.Fields{
			"message": "could not end vCenter session cleanly",
		}))
	}
}

// About reports the target endpoint's identification.
func (m *Manager) About() types.AboutInfo {
	return m.client.About()
}

// Roles lists every role defined on the target.
func (m *Manager) Roles(ctx context.Context) ([]RoleInfo, error) {
	list, err := m.client.Roles(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]RoleInfo, 0, len(list))
	for _, r := range list {
		out = append(out, roleInfo(r))
	}

	return out, nil
}

// Privileges retrieves the target's privilege catalog.
func (m *Manager) Privileges(ctx context.Context) ([]types.AuthorizationPrivilege, error) {
	return m.client.Privileges(ctx)
}

// RolePrivileges reports the privilege identifiers attached to the named
// role.
func (m *Manager) RolePrivileges(ctx context.Context, name string) ([]string, error) {
	list, err := m.client.Roles(ctx)
	if err != nil {
		return nil, err
	}

	role := list.ByName(name)
	if role == nil {
		return nil, errors.Errorf("role '%s' is not defined on the target", name)
	}

	return append([]string{}, role.Privilege...), nil
}

// ImportRoleOptions describes a single role import request.
type ImportRoleOptions struct {
	// Name of the role to define on the target.
	Name string
	// PermissionFile is the path of the JSON permission file to import.
	PermissionFile string
	// Overwrite redefines the role in place when it already exists.
	Overwrite bool
}

// ImportRoleResult reports what an import did.
type ImportRoleResult struct {
	// Role is the definition read back from the target after the import.
	Role RoleInfo
	// Resolved holds the requested privileges the target defines.
	Resolved []string
	// Missing holds the requested privileges the target does not define.
	// These are never attached.
	Missing []string
	// Updated is true when an existing role was redefined in place rather
	// than created.
	Updated bool
}

// ImportRole defines a role on the target from a JSON permission file. The
// role name is validated before anything is read from the file or the
// target. A role that already exists fails the import before the permission
// file is opened, unless overwrite is set, in which case the role is
// redefined in place and keeps its identifier. Requested privileges the
// target does not define are reported, warned about once each, and excluded
// from the attached set.
func (m *Manager) ImportRole(ctx context.Context, opts ImportRoleOptions) (*ImportRoleResult, error) {
	if err := virole.ValidateRoleName(opts.Name); err != nil {
		return nil, err
	}

	roles, err := m.client.Roles(ctx)
	if err != nil {
		return nil, err
	}

	existing := roles.ByName(opts.Name)
	if existing != nil && !opts.Overwrite {
		return nil, errors.Errorf("role '%s' already exists on the target; rerun with overwrite to replace it", opts.Name)
	}

	requested, err := model.LoadPermissions(opts.PermissionFile)
	if err != nil {
		return nil, err
	}

	catalog, err := m.client.Privileges(ctx)
	if err != nil {
		return nil, err
	}

	resolved, missing := resolvePrivileges(requested, catalog)
	for _, id := range missing {
		grip.Warning(message.Fields{
			"message":   "privilege is not defined on the target and will not be attached",
			"privilege": id,
			"role":      opts.Name,
		})
	}

	result := &ImportRoleResult{
		Resolved: resolved,
		Missing:  missing,
	}

	if existing != nil {
		if err = m.client.UpdateRole(ctx, existing.RoleId, opts.Name, resolved); err != nil {
			return nil, err
		}
		result.Updated = true
	} else {
		if _, err = m.client.AddRole(ctx, opts.Name, resolved); err != nil {
			return nil, err
		}
	}

	role, err := m.findRole(ctx, opts.Name)
	if err != nil {
		return nil, errors.Wrapf(err, "reading back role '%s' after import", opts.Name)
	}
	result.Role = *role

	grip.Info(message.Fields{
		"message":    "imported role",
		"role":       result.Role.Name,
		"role_id":    result.Role.ID,
		"attached":   len(result.Resolved),
		"skipped":    len(result.Missing),
		"redefined":  result.Updated,
		"permission": opts.PermissionFile,
	})

	return result, nil
}

// CreateRole defines a new role with the given privileges attached. Every
// privilege must be defined on the target; an unknown privilege fails the
// whole operation. No check is made for an existing role of the same name,
// so a duplicate surfaces as the target's own fault.
func (m *Manager) CreateRole(ctx context.Context, name string, privIds []string) (*RoleInfo, error) {
	catalog, err := m.client.Privileges(ctx)
	if err != nil {
		return nil, err
	}

	resolved, missing := resolvePrivileges(privIds, catalog)
	if len(missing) > 0 {
		return nil, errors.Errorf("privileges not defined on the target: %s", strings.Join(missing, ", "))
	}

	if _, err = m.client.AddRole(ctx, name, resolved); err != nil {
		return nil, err
	}

	role, err := m.findRole(ctx, name)
	if err != nil {
		return nil, errors.Wrapf(err, "reading back role '%s' after create", name)
	}

	grip.Info(message.Fields{
		"message":  "created role",
		"role":     role.Name,
		"role_id":  role.ID,
		"attached": len(role.Privileges),
	})

	return role, nil
}

func (m *Manager) findRole(ctx context.Context, name string) (*RoleInfo, error) {
	list, err := m.client.Roles(ctx)
	if err != nil {
		return nil, err
	}

	role := list.ByName(name)
	if role == nil {
		return nil, errors.Errorf("role '%s' is not defined on the target", name)
	}

	info := roleInfo(*role)
	return &info, nil
}
