package models

// User represents the identity record of an account on the Galley platform.
// It is immutable from the client's point of view; the only way to change it
// is through the explicit profile-update flow on the server.
type User struct {
	// ID is the opaque server-assigned identifier of the user.
	ID string `json:"id"`

	// Email is the address the user registered and logs in with.
	Email string `json:"email"`

	// Username is the unique public handle shown next to recipes.
	Username string `json:"username"`

	// FullName is the display name of the user.
	FullName string `json:"full_name"`

	// AvatarURL points to the user's profile picture. Empty when the user
	// has not uploaded one.
	AvatarURL string `json:"avatar_url,omitempty"`

	// Bio is a free-form self description. Empty when not set.
	Bio string `json:"bio,omitempty"`
}

// RegisterProfile is the payload sent to the registration endpoint.
// Validation tags are enforced client-side before any network call is made.
type RegisterProfile struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3,max=30"`
	FullName string `json:"full_name" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}
