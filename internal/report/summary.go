// Package report derives reporting views from the raw debt collection.
// Everything here is pure computation over already-fetched data; the
// package never touches storage.
package report

import (
	"sort"
	"time"

	"github.com/mmynk/lunchledger/internal/models"
)

// PairSummary is the sum of all debt totals for one (debtor, creditor)
// ordered pair. Pairs are NOT netted: if two users owe each other, the
// summary contains two rows, one per direction.
type PairSummary struct {
	Debtor    *models.User `json:"debtor"`
	Creditor  *models.User `json:"creditor"`
	TotalDebt float64      `json:"totalDebt"`
}

// UserStat accumulates one user's totals across all pair summaries.
type UserStat struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`

	// TotalOwed is the sum owed TO this user (they are the creditor).
	TotalOwed float64 `json:"totalOwed"`

	// TotalOwing is the sum this user owes (they are the debtor).
	TotalOwing float64 `json:"totalOwing"`
}

// NetBalance is the user's total owed to them minus the total they owe.
// Derived on demand, never stored.
func (s UserStat) NetBalance() float64 {
	return s.TotalOwed - s.TotalOwing
}

// SummarizeByPair groups debts by the ordered (debtor, creditor) pair and
// sums their total prices. Output is sorted by debtor name, then creditor
// name, so repeated calls over the same data yield identical results.
func SummarizeByPair(debts []models.Debt) []PairSummary {
	type pairKey struct {
		debtorID   string
		creditorID string
	}

	sums := make(map[pairKey]*PairSummary)
	for i := range debts {
		d := &debts[i]
		key := pairKey{debtorID: d.DebtorID, creditorID: d.CreditorID}
		summary, ok := sums[key]
		if !ok {
			summary = &PairSummary{Debtor: d.Debtor, Creditor: d.Creditor}
			sums[key] = summary
		}
		summary.TotalDebt += d.TotalPrice
	}

	summaries := make([]PairSummary, 0, len(sums))
	for _, summary := range sums {
		summaries = append(summaries, *summary)
	}
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Debtor.Name != summaries[j].Debtor.Name {
			return summaries[i].Debtor.Name < summaries[j].Debtor.Name
		}
		return summaries[i].Creditor.Name < summaries[j].Creditor.Name
	})

	return summaries
}

// UserStats accumulates per-user totals from pair summaries: each row adds
// to the debtor's TotalOwing and the creditor's TotalOwed. A user who never
// appears as a debtor has TotalOwing zero by construction, and vice versa.
// Output is sorted by user name.
func UserStats(summaries []PairSummary) []UserStat {
	stats := make(map[string]*UserStat)

	get := func(u *models.User) *UserStat {
		stat, ok := stats[u.ID]
		if !ok {
			stat = &UserStat{UserID: u.ID, UserName: u.Name}
			stats[u.ID] = stat
		}
		return stat
	}

	for i := range summaries {
		s := &summaries[i]
		get(s.Debtor).TotalOwing += s.TotalDebt
		get(s.Creditor).TotalOwed += s.TotalDebt
	}

	out := make([]UserStat, 0, len(stats))
	for _, stat := range stats {
		out = append(out, *stat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserName < out[j].UserName })

	return out
}

// GroupTotal sums all pair summary totals.
func GroupTotal(summaries []PairSummary) float64 {
	var total float64
	for i := range summaries {
		total += summaries[i].TotalDebt
	}
	return total
}

// MonthlyTotal sums the total price of debts dated within now's calendar
// month and year, in now's location.
func MonthlyTotal(debts []models.Debt, now time.Time) float64 {
	var total float64
	for i := range debts {
		date := time.Unix(debts[i].Date, 0).In(now.Location())
		if date.Month() == now.Month() && date.Year() == now.Year() {
			total += debts[i].TotalPrice
		}
	}
	return total
}

// TopDebtor returns the stat with the highest TotalOwing.
// The second return value is false when stats is empty.
func TopDebtor(stats []UserStat) (UserStat, bool) {
	return maxBy(stats, func(s UserStat) float64 { return s.TotalOwing })
}

// TopCreditor returns the stat with the highest TotalOwed.
// The second return value is false when stats is empty.
func TopCreditor(stats []UserStat) (UserStat, bool) {
	return maxBy(stats, func(s UserStat) float64 { return s.TotalOwed })
}

func maxBy(stats []UserStat, value func(UserStat) float64) (UserStat, bool) {
	if len(stats) == 0 {
		return UserStat{}, false
	}
	best := stats[0]
	for _, s := range stats[1:] {
		if value(s) > value(best) {
			best = s
		}
	}
	return best, true
}
