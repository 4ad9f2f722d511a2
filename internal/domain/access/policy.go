package access

// CanViewHome reports whether the user may see the board at all: members of
// either role group. A banned user holds no role group and fails this.
func CanViewHome(id Identity) bool {
	return id.InGroup(GroupDefault) || id.InGroup(GroupMod)
}

// IsModerator gates ban/unban and the user listing.
func IsModerator(id Identity) bool {
	return id.InGroup(GroupMod)
}

// CanCreatePost and CanDeletePost are permission-flag checks, not group
// checks; a permission can be granted directly or inherited from a group.
func CanCreatePost(id Identity) bool {
	return id.HasPermission(PermAddPost)
}

func CanDeletePost(id Identity) bool {
	return id.HasPermission(PermDeletePost)
}
