package normalize

import (
	"strings"

	"github.com/naf3/admin-console-api/internal/domain"
)

// EntityKind selects which status vocabulary applies.
type EntityKind string

const (
	KindPartner       EntityKind = "partner"
	KindCharity       EntityKind = "charity"
	KindDonor         EntityKind = "donor"
	KindRecipientCase EntityKind = "recipientCase"
	KindTransaction   EntityKind = "transaction"
)

// statusRule maps a raw-value substring to a canonical status. Rules are
// evaluated in order and the first match wins, so broader substrings must come
// after narrower ones ("suspend" before "inactive" before "active").
type statusRule struct {
	substr string
	status domain.Status
}

type statusVocabulary struct {
	rules []statusRule
	// positive/negative resolve boolean-encoded status fields.
	positive domain.Status
	negative domain.Status
	// fallback applies when no rule matches or the input is unusable.
	fallback domain.Status
}

var statusVocabularies = map[EntityKind]statusVocabulary{
	KindPartner: {
		rules: []statusRule{
			{"suspend", domain.StatusSuspended},
			{"inactive", domain.StatusInactive},
		},
		positive: domain.StatusActive,
		negative: domain.StatusInactive,
		fallback: domain.StatusActive,
	},
	KindDonor: {
		rules: []statusRule{
			{"suspend", domain.StatusSuspended},
			{"inactive", domain.StatusInactive},
		},
		positive: domain.StatusActive,
		negative: domain.StatusInactive,
		fallback: domain.StatusActive,
	},
	KindCharity: {
		rules: []statusRule{
			{"suspend", domain.StatusSuspended},
			{"approve", domain.StatusApproved},
			{"inactive", domain.StatusInactive},
			{"active", domain.StatusApproved},
		},
		positive: domain.StatusApproved,
		negative: domain.StatusInactive,
		fallback: domain.StatusPending,
	},
	KindRecipientCase: {
		rules: []statusRule{
			{"suspend", domain.StatusClosed},
			{"close", domain.StatusClosed},
		},
		positive: domain.StatusOpen,
		negative: domain.StatusClosed,
		fallback: domain.StatusOpen,
	},
	KindTransaction: {
		rules: []statusRule{
			{"accept", domain.StatusApproved},
			{"complete", domain.StatusApproved},
			{"reject", domain.StatusRejected},
			{"progress", domain.StatusPending},
		},
		positive: domain.StatusApproved,
		negative: domain.StatusRejected,
		fallback: domain.StatusPending,
	},
}

// ResolveStatus reduces a raw status value to the canonical label for the
// entity kind. Strings are matched case-insensitively by substring against the
// kind's ordered rules; booleans map to the kind's positive/negative pair;
// anything else resolves to the kind's default. This is a deliberate lossy
// many-to-one mapping and it never fails.
func ResolveStatus(raw any, kind EntityKind) domain.Status {
	vocab, ok := statusVocabularies[kind]
	if !ok {
		return domain.StatusPending
	}
	switch v := raw.(type) {
	case string:
		value := strings.ToLower(v)
		for _, rule := range vocab.rules {
			if strings.Contains(value, rule.substr) {
				return rule.status
			}
		}
	case bool:
		if v {
			return vocab.positive
		}
		return vocab.negative
	}
	return vocab.fallback
}

// statusValue extracts the raw status from a record: a string status field
// candidate first, else the boolean field candidate. Returning nil lets
// ResolveStatus fall back to the kind default.
func statusValue(rec Record, stringKeys []string, boolKeys ...string) any {
	for _, key := range stringKeys {
		if s, ok := rec[key].(string); ok && s != "" {
			return s
		}
	}
	for _, key := range boolKeys {
		if b, ok := rec[key].(bool); ok {
			return b
		}
	}
	return nil
}
