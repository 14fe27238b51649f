package models

const DefaultAvatar = "default"

// Avatars lists the selectable avatar ids, in picker order.
var Avatars = []string{
	DefaultAvatar,
	"knight",
	"wizard",
	"ninja",
	"robot",
	"pirate",
	"cat",
	"alien",
	"ghost",
}

func IsAvatar(id string) bool {
	for _, a := range Avatars {
		if a == id {
			return true
		}
	}
	return false
}

// NormalizeAvatar maps a missing or unknown id to DefaultAvatar.
func NormalizeAvatar(id string) string {
	if IsAvatar(id) {
		return id
	}
	return DefaultAvatar
}
