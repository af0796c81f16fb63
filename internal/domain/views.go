package domain

// Status is a canonical, display-ready status label. The upstream backend is
// inconsistent about status vocabulary (string enums in various casings,
// synonyms, booleans), so every raw value is reduced to one of these.
type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusSuspended Status = "suspended"
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusOpen      Status = "open"
	StatusClosed    Status = "closed"
)

// StatusFilterAll is the sentinel filter value that disables status filtering.
const StatusFilterAll = "all"

// Fallback literals used when the backend omits a display name entirely.
const (
	UnknownPartner   = "Unknown Partner"
	UnknownCharity   = "Unknown Charity"
	UnknownDonor     = "Unknown Donor"
	UnknownRecipient = "Unknown Recipient"
	UnknownOwner     = "Unknown owner"
)

// PartnerView is the canonical representation of a partner account.
type PartnerView struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Status Status `json:"status"`
}

// CharityView is the canonical representation of a charity.
type CharityView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	OwnerName string `json:"ownerName"`
	Focus     string `json:"focus"`
	Status    Status `json:"status"`
	Email     string `json:"email,omitempty"`
}

// DonorView is the canonical representation of a donor account.
type DonorView struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Donations    float64 `json:"donations"`
	TotalDonated float64 `json:"totalDonated"`
	Status       Status  `json:"status"`
}

// RecipientView is the canonical representation of an aid recipient and their
// case. Optional demographic fields stay empty when the backend omits them.
type RecipientView struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	NationalID         string           `json:"nationalId"`
	Phone              string           `json:"phone"`
	Address            string           `json:"address"`
	CaseStatus         Status           `json:"caseStatus"`
	CharityName        string           `json:"charityName,omitempty"`
	FamilyMembers      []map[string]any `json:"familyMembers,omitempty"`
	FamilyMembersCount int              `json:"familyMembersCount"`
	RequestsCount      int              `json:"requestsCount"`
	MonthlyIncome      *float64         `json:"monthlyIncome,omitempty"`
	MonthlyAssistance  *float64         `json:"monthlyAssistance,omitempty"`
	MaritalStatus      string           `json:"maritalStatus,omitempty"`
	EducationLevel     string           `json:"educationLevel,omitempty"`
	EmploymentStatus   string           `json:"employmentStatus,omitempty"`
	Job                string           `json:"job,omitempty"`
	DateOfBirth        string           `json:"dateOfBirth,omitempty"`
}

// Transaction source tiers. The backend exposes financial movements on two
// endpoints with different shapes; views remember which tier they came from.
const (
	TransactionSourceTransactions = "transactions"
	TransactionSourceRequests     = "requests"
)

// TransactionView is the canonical representation of a transaction or funding
// request. Status keeps the raw backend wording; DisplayStatus is the lossy
// approved/rejected/pending reduction used by the console.
type TransactionView struct {
	ID            string  `json:"id"`
	Type          string  `json:"type"`
	Status        string  `json:"status"`
	DisplayStatus Status  `json:"displayStatus"`
	Amount        float64 `json:"amount"`
	Date          string  `json:"date"`
	Priority      string  `json:"priority,omitempty"`
	Description   string  `json:"description,omitempty"`
	PartnerID     string  `json:"partnerId,omitempty"`
	PartnerName   string  `json:"partnerName,omitempty"`
	CharityName   string  `json:"charityName,omitempty"`
	RecipientID   string  `json:"recipientId,omitempty"`
	RecipientName string  `json:"recipientName,omitempty"`
	Source        string  `json:"source"`
}
