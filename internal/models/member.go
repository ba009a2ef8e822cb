package models

type MemberStatus string

const (
	MemberStatusActive   MemberStatus = "active"
	MemberStatusInactive MemberStatus = "inactive"
	MemberStatusPending  MemberStatus = "pending"
)

// Member is a group member with savings and drawdown accounts.
type Member struct {
	ID              string       `json:"id"`
	MemberCode      string       `json:"memberCode"`
	Status          MemberStatus `json:"status"`
	RiskScore       float64      `json:"riskScore"`
	SavingsBalance  string       `json:"savingsBalance"`
	DrawdownBalance string       `json:"drawdownBalance"`
	GroupID         string       `json:"groupId,omitempty"`
	User            *User        `json:"user,omitempty"`
	JoinedAt        Timestamp    `json:"joinedAt,omitempty"`
}

// DisplayName returns the linked user's full name, falling back to the member code.
func (m Member) DisplayName() string {
	if m.User == nil {
		return m.MemberCode
	}
	if name := m.User.FullName(); name != "" {
		return name
	}
	return m.MemberCode
}

type User struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Role        string `json:"role"`
	IsActive    bool   `json:"isActive"`
}

func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}
