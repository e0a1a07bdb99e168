package dto

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,is-role"`

	// Student-only fields.
	RegisterNumber string `json:"register_number,omitempty"`
	Department     string `json:"department,omitempty"`
	Year           int    `json:"year,omitempty"`

	// Trainer-only fields.
	TeacherID      string `json:"teacher_id,omitempty"`
	Specialization string `json:"specialization,omitempty"`

	CollegeDomain string `json:"college_domain,omitempty"`
	CollegeName   string `json:"college_name,omitempty"`
}

// TokenPair carries the freshly minted tokens. The string fields are cleared
// by the handler once the values are attached as cookies, so they never leak
// into the JSON body.
type TokenPair struct {
	AccessToken  string `json:"access_token,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

type LoginResponse struct {
	TokenPair
	User UserResponse `json:"user"`
}

type RefreshResponse struct {
	TokenPair
}

type UserResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	CollegeID *string `json:"college_id,omitempty"`
}
