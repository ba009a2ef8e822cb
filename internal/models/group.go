package models

// Group is a savings group managed by a field officer.
type Group struct {
	ID                    string    `json:"id"`
	Name                  string    `json:"name"`
	TotalMembers          int       `json:"totalMembers"`
	TotalSavings          string    `json:"totalSavings"`
	TotalLoansOutstanding string    `json:"totalLoansOutstanding"`
	RepaymentRate         float64   `json:"repaymentRate"`
	Location              string    `json:"location"`
	MeetingDay            string    `json:"meetingDay,omitempty"`
	OfficerID             string    `json:"officerId,omitempty"`
	CreatedAt             Timestamp `json:"createdAt,omitempty"`
}

// Visit is a field officer's recorded visit to a group.
type Visit struct {
	ID        string    `json:"id"`
	GroupID   string    `json:"groupId"`
	OfficerID string    `json:"officerId,omitempty"`
	Purpose   string    `json:"purpose"`
	Notes     string    `json:"notes,omitempty"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	VisitDate Timestamp `json:"visitDate"`
	PhotoURL  string    `json:"photoUrl,omitempty"`
}
