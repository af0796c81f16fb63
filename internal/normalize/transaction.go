package normalize

import "github.com/naf3/admin-console-api/internal/domain"

// TransactionListKeys is the wrapper-key probe order for the primary
// transactions collection.
var TransactionListKeys = []string{"transactions", "data", "items", "results"}

// RequestListKeys is the wrapper-key probe order for the secondary requests
// collection.
var RequestListKeys = []string{"requests", "data", "items", "results"}

// TransactionIDKeys is the candidate-field order for a transaction's id on the
// primary tier. The requestId candidate covers transactions that originated as
// requests upstream.
var TransactionIDKeys = []string{"id", "transactionId", "requestId"}

// RequestIDKeys is the candidate-field order on the requests tier.
var RequestIDKeys = []string{"id", "requestId", "transactionId"}

// ProjectTransaction maps a raw record from the primary transactions endpoint
// to its view model. Partner references arrive as bare ids here; the service
// layer resolves them to names against the partner collection.
func ProjectTransaction(rec Record) domain.TransactionView {
	status := StringOr(rec, "Unknown", "status")

	view := domain.TransactionView{
		ID:            StringOr(rec, "", TransactionIDKeys...),
		Type:          StringOr(rec, "Transaction", "type"),
		Status:        status,
		DisplayStatus: ResolveStatus(status, KindTransaction),
		Amount:        NumberField(rec, "amount"),
		Date:          FormatDate(rec, "date", "createdAt", "transactionDate"),
		Priority:      StringOr(rec, "", "priority"),
		Description:   StringOr(rec, "", "description"),
		PartnerID:     StringOr(rec, "", "toPartner", "partnerId", "partner"),
		CharityName:   charityNameOf(rec, StringOr(rec, "", "fromCharity", "charityName")),
		Source:        domain.TransactionSourceTransactions,
	}

	// Recipient may be embedded under toRecipient or recipient; only the
	// display fields are extracted, never the full record.
	toRecipient := Child(rec, "toRecipient")
	recipient := Child(rec, "recipient")
	view.RecipientName = embeddedPersonName(toRecipient, recipient)
	for _, child := range []Record{toRecipient, recipient} {
		if child == nil {
			continue
		}
		if id, ok := StringField(child, "recipientId", "id"); ok {
			view.RecipientID = id
			break
		}
	}
	if view.RecipientName == "" {
		view.RecipientName = StringOr(rec, "", "recipientName")
	}

	return view
}

// ProjectRequest maps a raw record from the secondary requests endpoint to the
// same view model shape. Field names differ enough from the primary tier to
// warrant a separate projection.
func ProjectRequest(rec Record) domain.TransactionView {
	status := StringOr(rec, "Unknown", "status", "requestStatus")

	view := domain.TransactionView{
		ID:            StringOr(rec, "", RequestIDKeys...),
		Type:          StringOr(rec, "Request", "type", "requestType"),
		Status:        status,
		DisplayStatus: ResolveStatus(status, KindTransaction),
		Amount:        NumberField(rec, "amount"),
		Date:          FormatDate(rec, "submittedAt", "createdAt", "date", "submittedDate"),
		Priority:      StringOr(rec, "", "priority"),
		Description:   StringOr(rec, "", "description", "reason"),
		CharityName:   charityNameOf(rec, ""),
		RecipientName: embeddedPersonName(Child(rec, "recipient")),
		Source:        domain.TransactionSourceRequests,
	}

	// Requests carry the partner either directly, embedded, or one level
	// deeper under the issuing branch.
	view.PartnerName = StringOr(rec, "", "partnerName")
	if view.PartnerName == "" {
		if partner := Child(rec, "partner"); partner != nil {
			view.PartnerName = StringOr(partner, "", "name", "partnerName")
		}
	}
	if view.PartnerName == "" {
		if branch := Child(rec, "branch"); branch != nil {
			if partner := Child(branch, "partner"); partner != nil {
				view.PartnerName = StringOr(partner, "", "name", "partnerName")
			}
		}
	}

	return view
}

// charityNameOf resolves a charity display name from direct candidates or the
// embedded charity object.
func charityNameOf(rec Record, direct string) string {
	if direct != "" {
		return direct
	}
	if charity := Child(rec, "charity"); charity != nil {
		return StringOr(charity, "", "name", "charityName")
	}
	return ""
}

// embeddedPersonName derives a display name from the first embedded record
// that yields one, using the standard first+last over name derivation.
func embeddedPersonName(children ...Record) string {
	for _, child := range children {
		if child == nil {
			continue
		}
		if name := DisplayName(child, ""); name != "" {
			return name
		}
	}
	return ""
}
