package vsphere

import (
	"github.com/vmware/govmomi/vim25/types"
)

// RoleInfo is a point-in-time summary of one role definition on the target.
type RoleInfo struct {
	ID         int32
	Name       string
	System     bool
	Privileges []string
}

func roleInfo(r types.AuthorizationRole) RoleInfo {
	return RoleInfo{
		ID:         r.RoleId,
		Name:       r.Name,
		System:     r.System,
		Privileges: append([]string{}, r.Privilege...),
	}
}

// resolvePrivileges splits the requested privilege identifiers into those the
// catalog defines and those it does not, preserving request order. Both
// returned slices are freshly allocated and never nil.
func resolvePrivileges(requested []string, catalog []types.AuthorizationPrivilege) (resolved, missing []string) {
	defined := make(map[string]struct{}, len(catalog))
	for _, p := range catalog {
		defined[p.PrivId] = struct{}{}
	}

	resolved = []string{}
	missing = []string{}
	for _, id := range requested {
		if _, ok := defined[id]; ok {
			resolved = append(resolved, id)
		} else {
			missing = append(missing, id)
		}
	}

	return resolved, missing
}
