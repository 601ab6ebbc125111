package virole

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRoleName(t *testing.T) {
	// letters and spaces are the only legal characters
	assert.NoError(t, ValidateRoleName("Backup Operators"))
	assert.NoError(t, ValidateRoleName("ReadOnly"))
	assert.NoError(t, ValidateRoleName("a"))

	assert.Error(t, ValidateRoleName(""))
	assert.Error(t, ValidateRoleName("role-with-dashes"))
	assert.Error(t, ValidateRoleName("role7"))
	assert.Error(t, ValidateRoleName("role_name"))
	assert.Error(t, ValidateRoleName("rôle"))
	assert.Error(t, ValidateRoleName("role.name"))

	// the fixed VIN role name contains a hyphen and must never be routed
	// through the importer validation
	assert.Error(t, ValidateRoleName(VINRoleName))
}

func TestVINRoleDefaults(t *testing.T) {
	assert.Equal(t, "InfrastructureNavigator-Access", VINRoleName)
	assert.Len(t, VINRolePrivileges, 3)
}
