package capitol

import (
	"encoding/json"
	"fmt"
)

// Member is a member of Congress as returned by the /member endpoints.
// BioguideID is the only field guaranteed to be non-empty: a payload without
// it is rejected as unparseable. Every other field defaults to "" when absent
// so downstream consumers never see a null.
type Member struct {
	BioguideID string `json:"bioguideId"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Party      string `json:"party"`
	State      string `json:"state"`
}

// MemberPage is one page of a paginated member listing.
type MemberPage struct {
	Members []Member
	// Count is the total number of members matching the query across all
	// pages, as reported by the API's pagination block.
	Count int
}

type memberEnvelope struct {
	Member Member `json:"member"`
}

type memberPageEnvelope struct {
	Members    []Member   `json:"members"`
	Pagination pagination `json:"pagination"`
}

type pagination struct {
	Count int `json:"count"`
}

// ParseMember converts a raw /member/{bioguideId} response body into a
// Member. The payload must be a JSON object with a "member" wrapper carrying
// a non-empty bioguideId; unknown fields are ignored.
func ParseMember(body []byte) (*Member, error) {
	var envelope memberEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, parseError("malformed member payload", body, err)
	}
	if envelope.Member.BioguideID == "" {
		return nil, parseError("member payload missing bioguideId", body, nil)
	}
	member := envelope.Member
	return &member, nil
}

// ParseMemberPage converts a raw /member listing body into a MemberPage.
// Every entry must carry a bioguideId, matching the single-member rule.
func ParseMemberPage(body []byte) (*MemberPage, error) {
	var envelope memberPageEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, parseError("malformed member list payload", body, err)
	}
	for i, member := range envelope.Members {
		if member.BioguideID == "" {
			return nil, parseError(
				fmt.Sprintf("member list entry %d missing bioguideId", i), body, nil)
		}
	}
	return &MemberPage{
		Members: envelope.Members,
		Count:   envelope.Pagination.Count,
	}, nil
}

const payloadExcerptLimit = 256

func parseError(message string, body []byte, cause error) *ClientError {
	excerpt := string(body)
	if len(excerpt) > payloadExcerptLimit {
		excerpt = excerpt[:payloadExcerptLimit]
	}
	return &ClientError{
		Type:    ErrorTypeParse,
		Message: message,
		Payload: excerpt,
		Cause:   cause,
	}
}
