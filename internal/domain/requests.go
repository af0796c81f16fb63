package domain

// LoginRequest carries admin credentials that are forwarded verbatim to the
// upstream login endpoint. The gateway never verifies them itself.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Session is the resolved login state returned to the console. Token is the
// bearer token extracted from the upstream response; Raw preserves the full
// upstream body so the console can keep whatever extra fields it relies on.
type Session struct {
	Token string         `json:"token"`
	Role  string         `json:"role,omitempty"`
	Email string         `json:"email,omitempty"`
	Raw   map[string]any `json:"raw,omitempty"`
}

// RedeemRequest is the one mutating operation exposed by the gateway: redeeming
// points for a recipient through the partner network.
type RedeemRequest struct {
	NationalID      string  `json:"nationalId,omitempty"`
	VirtualCardCode string  `json:"virtualCardCode,omitempty"`
	CardHolderName  string  `json:"cardHolderName,omitempty"`
	Amount          float64 `json:"amount" validate:"required,gt=0"`
	PIN             string  `json:"pin,omitempty"`
}
