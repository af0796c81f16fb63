package normalize

import "github.com/naf3/admin-console-api/internal/domain"

// PartnerListKeys is the wrapper-key probe order for partner collections.
var PartnerListKeys = []string{"partners", "data", "items", "results", "content"}

// PartnerIDKeys is the candidate-field order for a partner's id.
var PartnerIDKeys = []string{"id", "partnerId"}

// ProjectPartner maps a raw partner record to its view model.
func ProjectPartner(rec Record) domain.PartnerView {
	return domain.PartnerView{
		ID:     StringOr(rec, "", PartnerIDKeys...),
		Name:   StringOr(rec, domain.UnknownPartner, "name", "partnerName"),
		Email:  StringOr(rec, "no-email", "email", "contactEmail"),
		Status: ResolveStatus(statusValue(rec, []string{"status"}, "isActive"), KindPartner),
	}
}

// PartnerDirectory builds a normalized-id to display-name map used to resolve
// partner references embedded in transaction records.
func PartnerDirectory(records []Record) map[string]string {
	directory := make(map[string]string, len(records))
	for _, rec := range records {
		id := NormalizeID(StringOr(rec, "", PartnerIDKeys...))
		if id == "" {
			continue
		}
		directory[id] = StringOr(rec, domain.UnknownPartner, "name", "partnerName")
	}
	return directory
}
