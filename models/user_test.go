package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermittedMenusRoleDefaults(t *testing.T) {
	admin := User{Role: "admin"}
	user := User{Role: "user"}

	assert.Contains(t, admin.PermittedMenus(), MenuUsers)
	assert.Contains(t, admin.PermittedMenus(), MenuResources)
	assert.NotContains(t, user.PermittedMenus(), MenuUsers)
	assert.NotContains(t, user.PermittedMenus(), MenuResources)
	assert.Contains(t, user.PermittedMenus(), MenuTimesheet)
}

func TestPermittedMenusCustomList(t *testing.T) {
	u := User{Role: "user", Menus: "timesheet, camStatus"}

	assert.Equal(t, []string{MenuTimesheet, MenuCamStatus}, u.PermittedMenus())
}

func TestPermittedMenusDropsUnknownIDs(t *testing.T) {
	u := User{Role: "user", Menus: "timesheet,notamenu,,boldMinds"}

	assert.Equal(t, []string{MenuTimesheet, MenuBoldMinds}, u.PermittedMenus())
}
