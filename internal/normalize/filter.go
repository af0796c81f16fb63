package normalize

import (
	"strconv"
	"strings"

	"github.com/naf3/admin-console-api/internal/domain"
)

// The filter functions below narrow a full, unfiltered view-model list for
// display. Text queries are case-insensitive substring matches over
// entity-specific fields; status filters are exact matches against canonical
// labels with "all" (or empty) as a no-op sentinel. Predicates compose as a
// logical AND and the backend's original order is preserved. Callers must
// always filter the full source list, never an already-filtered one.

func noQuery(query string) bool {
	return strings.TrimSpace(query) == ""
}

func noStatus(status string) bool {
	return status == "" || status == domain.StatusFilterAll
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}

// FilterPartners filters partners by text query (name, email, id) and status.
func FilterPartners(list []domain.PartnerView, query, status string) []domain.PartnerView {
	filtered := make([]domain.PartnerView, 0, len(list))
	q := strings.ToLower(query)
	for _, p := range list {
		if !noQuery(query) && !(containsFold(p.Name, q) || containsFold(p.Email, q) || containsFold(p.ID, q)) {
			continue
		}
		if !noStatus(status) && string(p.Status) != status {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// FilterCharities filters charities by text query (name, focus, id) and status.
func FilterCharities(list []domain.CharityView, query, status string) []domain.CharityView {
	filtered := make([]domain.CharityView, 0, len(list))
	q := strings.ToLower(query)
	for _, c := range list {
		if !noQuery(query) && !(containsFold(c.Name, q) || containsFold(c.Focus, q) || containsFold(c.ID, q)) {
			continue
		}
		if !noStatus(status) && string(c.Status) != status {
			continue
		}
		filtered = append(filtered, c)
	}
	return filtered
}

// FilterDonors filters donors by text query (name, email, id) and status.
func FilterDonors(list []domain.DonorView, query, status string) []domain.DonorView {
	filtered := make([]domain.DonorView, 0, len(list))
	q := strings.ToLower(query)
	for _, d := range list {
		if !noQuery(query) && !(containsFold(d.Name, q) || containsFold(d.Email, q) || containsFold(d.ID, q)) {
			continue
		}
		if !noStatus(status) && string(d.Status) != status {
			continue
		}
		filtered = append(filtered, d)
	}
	return filtered
}

// FilterRecipients filters recipients by text query (name, national id, phone,
// address) and case status.
func FilterRecipients(list []domain.RecipientView, query, status string) []domain.RecipientView {
	filtered := make([]domain.RecipientView, 0, len(list))
	q := strings.ToLower(query)
	for _, r := range list {
		if !noQuery(query) && !(containsFold(r.Name, q) || containsFold(r.NationalID, q) ||
			containsFold(r.Phone, q) || containsFold(r.Address, q)) {
			continue
		}
		if !noStatus(status) && string(r.CaseStatus) != status {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

// FilterTransactions filters transactions by text query (charity, recipient,
// amount, type), canonical display status, and type. The type filter is a
// case-insensitive substring match because the backend mixes type spellings.
func FilterTransactions(list []domain.TransactionView, query, status, txType string) []domain.TransactionView {
	filtered := make([]domain.TransactionView, 0, len(list))
	q := strings.ToLower(query)
	typeNoOp := txType == "" || txType == domain.StatusFilterAll
	for _, tx := range list {
		if !noQuery(query) {
			amount := strconv.FormatFloat(tx.Amount, 'f', -1, 64)
			if !(containsFold(tx.CharityName, q) || containsFold(tx.RecipientName, q) ||
				strings.Contains(amount, q) || containsFold(tx.Type, q)) {
				continue
			}
		}
		if !noStatus(status) && string(tx.DisplayStatus) != status {
			continue
		}
		if !typeNoOp && !containsFold(tx.Type, strings.ToLower(txType)) {
			continue
		}
		filtered = append(filtered, tx)
	}
	return filtered
}
