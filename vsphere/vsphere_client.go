package vsphere

import (
	"context"
	"net/url"

	"github.com/mongodb/grip"
	"github.com/mongodb/grip/message"
	"github.com/pkg/errors"
	"github.com/vmware/govmomi"
	"github.com/vmware/govmomi/object"
	"github.com/vmware/govmomi/vim25/mo"
	"github.com/vmware/govmomi/vim25/soap"
	"github.com/vmware/govmomi/vim25/types"
)

// AuthOptions holds the connection parameters for one vCenter session.
// Target accepts a bare host name, host:port, or a full SDK URL.
type AuthOptions struct {
	Target   string
	Username string
	Password string
	Insecure bool
}

// The client interface wraps the vCenter authorization API interaction.
type client interface {
	Init(context.Context, *AuthOptions) error
	Logout(context.Context) error
	About() types.AboutInfo
	Roles(context.Context) (object.AuthorizationRoleList, error)
	Privileges(context.Context) ([]types.AuthorizationPrivilege, error)
	AddRole(context.Context, string, []string) (int32, error)
	UpdateRole(context.Context, int32, string, []string) error
	RemoveRole(context.Context, int32) error
}

type clientImpl struct {
	// client is the authenticated session with the target endpoint.
	client *govmomi.Client
	// auth wraps the endpoint's AuthorizationManager.
	auth *object.AuthorizationManager
}

// Init opens an authenticated session with the target. TLS verification is
// relaxed for this client only when the insecure option is set; process-wide
// TLS state is never touched.
func (c *clientImpl) Init(ctx context.Context, ao *AuthOptions) error {
	u, err := soap.ParseURL(ao.Target)
	if err != nil {
		return errors.Wrapf(err, "parsing target endpoint '%s'", ao.Target)
	}
	u.User = url.UserPassword(ao.Username, ao.Password)

	c.client, err = govmomi.NewClient(ctx, u, ao.Insecure)
	if err != nil {
		grip.Error(message.Fields{
			"message":  "vCenter connect API call failed",
			"error":    err,
			"endpoint": u.Host,
			"user":     ao.Username,
		})
		return errors.Wrapf(err, "could not connect to vCenter endpoint '%s'", u.Host)
	}

	grip.Debug(message.Fields{
		"message":  "connected to vCenter endpoint",
		"endpoint": u.Host,
		"version":  c.client.ServiceContent.About.Version,
	})

	c.auth = object.NewAuthorizationManager(c.client.Client)

	return nil
}

// Logout ends the session on the endpoint.
func (c *clientImpl) Logout(ctx context.Context) error {
	if c.client == nil {
		return nil
	}

	return errors.Wrap(c.client.Logout(ctx), "ending vCenter session")
}

// About reports the endpoint identification supplied at login.
func (c *clientImpl) About() types.AboutInfo {
	return c.client.ServiceContent.About
}

// Roles retrieves the target's current role definitions.
func (c *clientImpl) Roles(ctx context.Context) (object.AuthorizationRoleList, error) {
	roles, err := c.auth.RoleList(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "vCenter role list API call failed")
	}

	return roles, nil
}

// Privileges retrieves the target's privilege catalog: every privilege
// identifier the endpoint defines.
func (c *clientImpl) Privileges(ctx context.Context) ([]types.AuthorizationPrivilege, error) {
	var am mo.AuthorizationManager
	if err := c.auth.Properties(ctx, c.auth.Reference(), []string{"privilegeList"}, &am); err != nil {
		return nil, errors.Wrap(err, "vCenter privilege catalog API call failed")
	}

	return am.PrivilegeList, nil
}

// AddRole defines a new role with the given privileges attached and returns
// the identifier the endpoint assigned to it.
func (c *clientImpl) AddRole(ctx context.Context, name string, privIds []string) (int32, error) {
	id, err := c.auth.AddRole(ctx, name, privIds)
	if err != nil {
		grip.Error(message.Fields{
			"message": "vCenter add role API call failed",
			"error":   err,
			"role":    name,
		})
		return -1, errors.Wrapf(err, "vCenter add role API call failed for role '%s'", name)
	}

	return id, nil
}

// UpdateRole redefines an existing role in place, replacing its name and
// attached privilege set while keeping its identifier stable.
func (c *clientImpl) UpdateRole(ctx context.Context, id int32, name string, privIds []string) error {
	if err := c.auth.UpdateRole(ctx, id, name, privIds); err != nil {
		grip.Error(message.Fields{
			"message": "vCenter update role API call failed",
			"error":   err,
			"role":    name,
			"role_id": id,
		})
		return errors.Wrapf(err, "vCenter update role API call failed for role '%s'", name)
	}

	return nil
}

// RemoveRole deletes a role definition from the target.
func (c *clientImpl) RemoveRole(ctx context.Context, id int32) error {
	if err := c.auth.RemoveRole(ctx, id, true); err != nil {
		return errors.Wrapf(err, "vCenter remove role API call failed for role %d", id)
	}

	return nil
}
