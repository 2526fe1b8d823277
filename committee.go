package capitol

import (
	"encoding/json"
	"fmt"
)

// Valid chamber values for the committee endpoints.
const (
	ChamberHouse  = "house"
	ChamberSenate = "senate"
	ChamberJoint  = "joint"
)

// Committee is a congressional committee as returned by the /committee
// endpoints. SystemCode (e.g. "hsju00") is required; the rest default to ""
// when absent.
type Committee struct {
	SystemCode string `json:"systemCode"`
	Name       string `json:"name"`
	Chamber    string `json:"chamber"`
	Type       string `json:"committeeTypeCode"`
}

// CommitteePage is one page of a paginated committee listing.
type CommitteePage struct {
	Committees []Committee
	Count      int
}

type committeeEnvelope struct {
	Committee Committee `json:"committee"`
}

type committeePageEnvelope struct {
	Committees []Committee `json:"committees"`
	Pagination pagination  `json:"pagination"`
}

// ParseCommittee converts a raw /committee/{chamber}/{code} response body
// into a Committee.
func ParseCommittee(body []byte) (*Committee, error) {
	var envelope committeeEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, parseError("malformed committee payload", body, err)
	}
	if envelope.Committee.SystemCode == "" {
		return nil, parseError("committee payload missing systemCode", body, nil)
	}
	committee := envelope.Committee
	return &committee, nil
}

// ParseCommitteePage converts a raw /committee listing body into a
// CommitteePage.
func ParseCommitteePage(body []byte) (*CommitteePage, error) {
	var envelope committeePageEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, parseError("malformed committee list payload", body, err)
	}
	for i, committee := range envelope.Committees {
		if committee.SystemCode == "" {
			return nil, parseError(
				fmt.Sprintf("committee list entry %d missing systemCode", i), body, nil)
		}
	}
	return &CommitteePage{
		Committees: envelope.Committees,
		Count:      envelope.Pagination.Count,
	}, nil
}

func validChamber(chamber string) bool {
	switch chamber {
	case ChamberHouse, ChamberSenate, ChamberJoint:
		return true
	default:
		return false
	}
}
