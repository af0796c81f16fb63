package normalize

import "github.com/naf3/admin-console-api/internal/domain"

// CharityListKeys is the wrapper-key probe order for charity collections.
var CharityListKeys = []string{"charities", "data", "items", "results"}

// CharityIDKeys is the candidate-field order for a charity's id. Unlike the
// other entities, the backend usually keys charities by charityId.
var CharityIDKeys = []string{"charityId", "id"}

// ProjectCharity maps a raw charity record to its view model.
func ProjectCharity(rec Record) domain.CharityView {
	return domain.CharityView{
		ID:        StringOr(rec, "", CharityIDKeys...),
		Name:      StringOr(rec, domain.UnknownCharity, "charityName", "name"),
		OwnerName: StringOr(rec, domain.UnknownOwner, "ownerName", "contactName"),
		Focus:     StringOr(rec, "General", "aim", "focus", "category"),
		Status:    ResolveStatus(statusValue(rec, []string{"status"}, "isActive"), KindCharity),
		Email:     StringOr(rec, "", "email"),
	}
}
