package camera

import (
	"fmt"
	"strings"
)

// Role identifies a camera by the layer role it renders
type Role uint8

const (
	RoleNone Role = iota // no camera; used for empty selection
	Scene
	Background
	Foreground
)

var roleNames = [...]string{
	RoleNone:   "None",
	Scene:      "Scene",
	Background: "Background",
	Foreground: "Foreground",
}

// String returns the role name used in status lines and window titles
func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return fmt.Sprintf("Role(%d)", uint8(r))
}

// ParseRole resolves a role name, case-insensitive
func ParseRole(s string) (Role, error) {
	for r := Scene; r <= Foreground; r++ {
		if strings.EqualFold(s, roleNames[r]) {
			return r, nil
		}
	}
	return RoleNone, fmt.Errorf("role %q: %w", s, ErrNotFound)
}
