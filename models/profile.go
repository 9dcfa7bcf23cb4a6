package models

// Profile is a display-only viewer record used by the "who's watching" and
// profile-management screens. Profiles have no persistence beyond the sample
// set; selecting one records the id against the viewer session and nothing
// ever reads it back.
type Profile struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	AvatarColor    string `json:"avatarColor"`
	MaturityRating string `json:"maturityRating"`
	Kids           bool   `json:"kids,omitempty"`
}

// SampleProfiles returns the built-in profile set every account starts with.
func SampleProfiles() []Profile {
	return []Profile{
		{ID: "1", Name: "User 1", AvatarColor: "red", MaturityRating: "All maturity ratings"},
		{ID: "2", Name: "User 2", AvatarColor: "blue", MaturityRating: "All maturity ratings"},
		{ID: "3", Name: "Kids", AvatarColor: "yellow", MaturityRating: "7+", Kids: true},
	}
}
