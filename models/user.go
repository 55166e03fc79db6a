package models

import (
	"strings"
	"time"
)

type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"uniqueIndex;size:60;not null"`
	Password string `json:"-" gorm:"not null"`            // bcrypt hash
	Role     string `json:"role" gorm:"size:20;not null"` // "admin" | "user"
	Name     string `json:"name" gorm:"size:120"`
	// Menus overrides the role default when set: comma-separated menu ids.
	Menus string `json:"menus" gorm:"size:400"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Menu identifiers as the sidebar knows them.
const (
	MenuCalendar       = "calendar"
	MenuTimesheet      = "timesheet"
	MenuResources      = "resources"
	MenuLeaves         = "leaves"
	MenuTrainings      = "trainings"
	MenuLearnings      = "learnings"
	MenuCertifications = "certifications"
	MenuCamStatus      = "camStatus"
	MenuBoldMinds      = "boldMinds"
	MenuUsers          = "users"
)

var allMenus = []string{
	MenuCalendar, MenuTimesheet, MenuResources, MenuLeaves, MenuTrainings,
	MenuLearnings, MenuCertifications, MenuCamStatus, MenuBoldMinds, MenuUsers,
}

var userMenus = []string{
	MenuCalendar, MenuTimesheet, MenuLeaves, MenuTrainings,
	MenuLearnings, MenuCertifications, MenuCamStatus, MenuBoldMinds,
}

// PermittedMenus returns the ordered menu list the user may see: the
// stored custom list when present, otherwise the role default. Unknown
// ids in a custom list are dropped so a stale row cannot unlock a menu
// that no longer exists.
func (u User) PermittedMenus() []string {
	if custom := strings.TrimSpace(u.Menus); custom != "" {
		var out []string
		for _, m := range strings.Split(custom, ",") {
			m = strings.TrimSpace(m)
			if m == "" {
				continue
			}
			for _, known := range allMenus {
				if m == known {
					out = append(out, m)
					break
				}
			}
		}
		return out
	}
	if u.Role == "admin" {
		return append([]string(nil), allMenus...)
	}
	return append([]string(nil), userMenus...)
}
