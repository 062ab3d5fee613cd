package models

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token. Message is set when the API refuses
// the login without an error status.
type LoginResponse struct {
	Token   string `json:"token"`
	Message string `json:"message,omitempty"`
}

// RegistrationRequest is the body of POST /api/auth/register.
type RegistrationRequest struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Age         int    `json:"age" binding:"gte=0"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	Role        Role   `json:"role"`
	InviteToken string `json:"inviteToken,omitempty"`
}

// RegistrationResponse is whatever the API echoes back for a created user.
type RegistrationResponse struct {
	ID      string `json:"id,omitempty"`
	Email   string `json:"email,omitempty"`
	Message string `json:"message,omitempty"`
}

// Profile is the stylist's own profile.
type Profile struct {
	ID           string      `json:"id"`
	User         UserAccount `json:"user"`
	FirstName    string      `json:"firstName"`
	LastName     string      `json:"lastName"`
	Age          int         `json:"age"`
	PhoneNumber  string      `json:"phoneNumber"`
	Country      string      `json:"country"`
	Locations    []string    `json:"locations"`
	Services     []string    `json:"services"`
	StreetNumber string      `json:"streetNumber"`
}

// ProfileUpdate is the body of PUT /api/profile.
type ProfileUpdate struct {
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	Age          int      `json:"age"`
	PhoneNumber  string   `json:"phoneNumber"`
	Country      string   `json:"country"`
	Locations    []string `json:"locations"`
	Services     []string `json:"services"`
	StreetNumber string   `json:"streetNumber"`
}

// Update extracts the editable fields of the profile.
func (p Profile) Update() ProfileUpdate {
	return ProfileUpdate{
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Age:          p.Age,
		PhoneNumber:  p.PhoneNumber,
		Country:      p.Country,
		Locations:    p.Locations,
		Services:     p.Services,
		StreetNumber: p.StreetNumber,
	}
}
