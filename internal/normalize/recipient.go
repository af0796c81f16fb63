package normalize

import "github.com/naf3/admin-console-api/internal/domain"

// RecipientListKeys is the wrapper-key probe order for recipient collections.
var RecipientListKeys = []string{"recipients", "data", "items", "results"}

// RecipientIDKeys is the candidate-field order for a recipient's id.
var RecipientIDKeys = []string{"id", "recipientId"}

// familyMemberKeys are the embedded-array candidates for household members.
var familyMemberKeys = []string{"familyMembers", "familyMembersList", "family", "householdMembers"}

// requestListKeys are the embedded-array candidates for a recipient's requests.
var requestListKeys = []string{"requests", "requestsList"}

// ProjectRecipient maps a raw recipient record to its view model. Counts may
// arrive as embedded arrays or plain numbers; the array length wins.
func ProjectRecipient(rec Record) domain.RecipientView {
	charity := Child(rec, "charity")

	view := domain.RecipientView{
		ID:                 StringOr(rec, "", RecipientIDKeys...),
		Name:               DisplayName(rec, domain.UnknownRecipient),
		NationalID:         StringOr(rec, "N/A", "nationalId"),
		Phone:              StringOr(rec, "N/A", "phoneNumber", "phone"),
		Address:            StringOr(rec, "N/A", "address"),
		CaseStatus:         ResolveStatus(statusValue(rec, []string{"caseStatus"}, "isClosed"), KindRecipientCase),
		FamilyMembers:      Records(rec, familyMemberKeys...),
		FamilyMembersCount: Count(rec, familyMemberKeys, "familyMembersCount", "familyCount"),
		RequestsCount:      Count(rec, requestListKeys, "requestsCount", "requestCount"),
		MonthlyIncome:      OptionalNumber(rec, "monthlyIncome"),
		MonthlyAssistance:  OptionalNumber(rec, "monthlyAssistance"),
		MaritalStatus:      StringOr(rec, "", "maritalStatus"),
		EducationLevel:     StringOr(rec, "", "educationLevel"),
		EmploymentStatus:   StringOr(rec, "", "employmentStatus"),
		Job:                StringOr(rec, "", "job"),
		DateOfBirth:        StringOr(rec, "", "dateOfBirth"),
	}

	if charity != nil {
		view.CharityName = StringOr(charity, "", "name", "charityName")
	}

	return view
}
