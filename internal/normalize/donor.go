package normalize

import "github.com/naf3/admin-console-api/internal/domain"

// DonorListKeys is the wrapper-key probe order for donor collections.
var DonorListKeys = []string{"donors", "data", "items", "results"}

// DonorIDKeys is the candidate-field order for a donor's id.
var DonorIDKeys = []string{"id", "donorId"}

// ProjectDonor maps a raw donor record to its view model.
func ProjectDonor(rec Record) domain.DonorView {
	return domain.DonorView{
		ID:           StringOr(rec, "", DonorIDKeys...),
		Name:         DisplayName(rec, domain.UnknownDonor),
		Email:        StringOr(rec, "no-email", "email"),
		Phone:        StringOr(rec, "N/A", "phoneNumber", "phone"),
		Donations:    NumberField(rec, "donationsCount", "totalDonations"),
		TotalDonated: NumberField(rec, "totalAmount", "totalDonated"),
		Status:       ResolveStatus(statusValue(rec, []string{"status"}, "isActive"), KindDonor),
	}
}
