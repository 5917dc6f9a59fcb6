package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleOperational.Valid())
	assert.True(t, RoleCommand.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("").Valid())
	assert.False(t, Role("comando").Valid())
}

func TestRoleCanManageOperatives(t *testing.T) {
	assert.True(t, RoleCommand.CanManageOperatives())
	assert.True(t, RoleAdmin.CanManageOperatives())
	assert.False(t, RoleOperational.CanManageOperatives())
	assert.False(t, Role("unknown").CanManageOperatives())
}
