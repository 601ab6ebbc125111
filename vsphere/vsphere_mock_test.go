package vsphere

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vmware/govmomi/object"
	"github.com/vmware/govmomi/vim25/types"
)

type clientMock struct {
	// API call options
	failInit   bool
	failLogout bool
	failRoles  bool
	failPrivs  bool
	failAdd    bool
	failUpdate bool
	failRemove bool

	loggedOut bool

	nextRoleID int32
	roles      object.AuthorizationRoleList
	catalog    []types.AuthorizationPrivilege
}

func (c *clientMock) Init(_ context.Context, _ *AuthOptions) error {
	if c.failInit {
		return errors.New("failed to initialize client")
	}

	return nil
}

func (c *clientMock) Logout(_ context.Context) error {
	if c.failLogout {
		return errors.New("failed to log out")
	}

	c.loggedOut = true
	return nil
}

func (c *clientMock) About() types.AboutInfo {
	return types.AboutInfo{
		FullName:   "Test Endpoint 1.0.0",
		ApiVersion: "6.0",
	}
}

func (c *clientMock) Roles(_ context.Context) (object.AuthorizationRoleList, error) {
	if c.failRoles {
		return nil, errors.New("failed to list roles")
	}

	return append(object.AuthorizationRoleList{}, c.roles...), nil
}

func (c *clientMock) Privileges(_ context.Context) ([]types.AuthorizationPrivilege, error) {
	if c.failPrivs {
		return nil, errors.New("failed to retrieve privilege catalog")
	}

	return append([]types.AuthorizationPrivilege{}, c.catalog...), nil
}

func (c *clientMock) AddRole(_ context.Context, name string, privIds []string) (int32, error) {
	if c.failAdd {
		return -1, errors.New("failed to add role")
	}
	if c.roles.ByName(name) != nil {
		return -1, errors.Errorf("role '%s' already exists", name)
	}

	c.nextRoleID++
	c.roles = append(c.roles, types.AuthorizationRole{
		RoleId:    c.nextRoleID,
		Name:      name,
		Privilege: append([]string{}, privIds...),
	})

	return c.nextRoleID, nil
}

func (c *clientMock) UpdateRole(_ context.Context, id int32, name string, privIds []string) error {
	if c.failUpdate {
		return errors.New("failed to update role")
	}

	for i := range c.roles {
		if c.roles[i].RoleId == id {
			c.roles[i].Name = name
			c.roles[i].Privilege = append([]string{}, privIds...)
			return nil
		}
	}

	return errors.Errorf("role %d does not exist", id)
}

func (c *clientMock) RemoveRole(_ context.Context, id int32) error {
	if c.failRemove {
		return errors.New("failed to remove role")
	}

	for i := range c.roles {
		if c.roles[i].RoleId == id {
			c.roles = append(c.roles[:i], c.roles[i+1:]...)
			return nil
		}
	}

	return errors.Errorf("role %d does not exist", id)
}
