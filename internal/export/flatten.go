package export

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/carson-networks/fieldops-server/internal/aggregate"
	"github.com/carson-networks/fieldops-server/internal/models"
)

const displayDate = "1/2/2006"

// Currency formats a money string with thousands separators and at most two
// decimals; blank or malformed input formats as 0.
func Currency(amount string) string {
	return humanize.Commaf(aggregate.ParseAmount(amount).Round(2).InexactFloat64())
}

func Percent(rate float64) string {
	return fmt.Sprintf("%.1f", rate)
}

func Date(ts models.Timestamp) string {
	if ts.IsZero() {
		return ""
	}
	return ts.Format(displayDate)
}

func FlattenGroupData(groups []models.Group) []Record {
	out := make([]Record, 0, len(groups))
	for _, g := range groups {
		out = append(out, Record{
			{"Group Name", g.Name},
			{"Total Members", g.TotalMembers},
			{"Total Savings (KES)", Currency(g.TotalSavings)},
			{"Outstanding Loans (KES)", Currency(g.TotalLoansOutstanding)},
			{"Repayment Rate (%)", Percent(g.RepaymentRate)},
			{"Location", g.Location},
		})
	}
	return out
}

func FlattenMemberData(members []models.Member) []Record {
	out := make([]Record, 0, len(members))
	for _, m := range members {
		var email, phone string
		if m.User != nil {
			email, phone = m.User.Email, m.User.PhoneNumber
		}
		out = append(out, Record{
			{"Member Code", m.MemberCode},
			{"Name", m.DisplayName()},
			{"Email", email},
			{"Phone", phone},
			{"Status", string(m.Status)},
			{"Savings Balance (KES)", Currency(m.SavingsBalance)},
			{"Drawdown Balance (KES)", Currency(m.DrawdownBalance)},
			{"Risk Score", m.RiskScore},
			{"Joined", Date(m.JoinedAt)},
		})
	}
	return out
}

func FlattenLoanData(loans []models.Loan) []Record {
	out := make([]Record, 0, len(loans))
	for _, l := range loans {
		member := l.MemberID
		if l.Member != nil {
			member = l.Member.DisplayName()
		}
		var due string
		if l.DueDate != nil {
			due = Date(*l.DueDate)
		}
		out = append(out, Record{
			{"Loan Number", l.LoanNumber},
			{"Member", member},
			{"Principal (KES)", Currency(l.PrincipleAmount)},
			{"Total Amount (KES)", Currency(l.TotalAmount)},
			{"Outstanding (KES)", Currency(l.OutstandingBalance)},
			{"Status", string(l.Status)},
			{"Application Date", Date(l.ApplicationDate)},
			{"Due Date", due},
		})
	}
	return out
}

func FlattenTransactionData(transactions []models.Transaction) []Record {
	out := make([]Record, 0, len(transactions))
	for _, t := range transactions {
		out = append(out, Record{
			{"Date", Date(t.CreatedAt)},
			{"Type", string(t.TransactionType)},
			{"Amount (KES)", Currency(t.Amount)},
			{"Account", string(t.AccountType)},
			{"M-Pesa Code", t.MpesaCode},
			{"Status", string(t.Status)},
			{"Description", t.Description},
		})
	}
	return out
}

func FlattenSupplierData(suppliers []models.Supplier) []Record {
	out := make([]Record, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, Record{
			{"Supplier Name", s.Name},
			{"Contact Person", s.ContactName},
			{"Phone", s.PhoneNumber},
			{"Email", s.Email},
			{"Location", s.Location},
			{"Products", s.ProductCount},
		})
	}
	return out
}

func FlattenProductData(products []models.Product) []Record {
	out := make([]Record, 0, len(products))
	for _, p := range products {
		out = append(out, Record{
			{"Product Name", p.Name},
			{"Category", p.Category},
			{"Price (KES)", Currency(p.Price)},
			{"Stock", p.Stock},
		})
	}
	return out
}

func FlattenUserData(users []models.User) []Record {
	out := make([]Record, 0, len(users))
	for _, u := range users {
		status := "Inactive"
		if u.IsActive {
			status = "Active"
		}
		out = append(out, Record{
			{"Name", u.FullName()},
			{"Email", u.Email},
			{"Phone", u.PhoneNumber},
			{"Role", u.Role},
			{"Status", status},
		})
	}
	return out
}

func FlattenVisitData(visits []models.Visit) []Record {
	out := make([]Record, 0, len(visits))
	for _, v := range visits {
		out = append(out, Record{
			{"Visit Date", Date(v.VisitDate)},
			{"Group", v.GroupID},
			{"Purpose", v.Purpose},
			{"Notes", v.Notes},
		})
	}
	return out
}
