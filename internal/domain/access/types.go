package access

// Role groups. A user normally holds at most one of these at a time, but
// that is convention, not schema.
const (
	GroupDefault = "default"
	GroupMod     = "mod"
)

// Permission codes.
const (
	PermAddPost    = "add_post"
	PermDeletePost = "delete_post"
)

// Identity is one user's resolved capability set: the role tags and
// permission codes every authorization decision is made from. It is loaded
// once per request and passed into policy checks explicitly; there is no
// ambient current-user state.
type Identity struct {
	UserID      uint
	Username    string
	Groups      []string
	Permissions []string
}

func (id Identity) InGroup(name string) bool {
	for _, g := range id.Groups {
		if g == name {
			return true
		}
	}
	return false
}

func (id Identity) HasPermission(code string) bool {
	for _, p := range id.Permissions {
		if p == code {
			return true
		}
	}
	return false
}
