package configs

import (
	"github.com/okanay/backend-translate-lingua/types"
)

type Permission string

const (
	PermissionTranslate   Permission = "translate"
	PermissionManageCache Permission = "manage-cache"
)

var RolePermissions = map[types.Role][]Permission{
	types.RoleUser: {
		PermissionTranslate,
	},
	types.RoleEditor: {
		PermissionTranslate,
	},
	types.RoleAdmin: {
		PermissionTranslate,
		PermissionManageCache,
	},
}
