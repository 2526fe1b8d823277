package capitol

import "encoding/json"

// Bill is a piece of legislation as returned by /bill/{congress}/{type}/{number}.
// Number and Type are required; the rest default to their zero values when
// absent.
type Bill struct {
	Number        string
	Type          string
	Congress      int
	Title         string
	OriginChamber string
	LatestAction  string
}

type billEnvelope struct {
	Bill struct {
		Number        string `json:"number"`
		Type          string `json:"type"`
		Congress      int    `json:"congress"`
		Title         string `json:"title"`
		OriginChamber string `json:"originChamber"`
		LatestAction  struct {
			Text string `json:"text"`
		} `json:"latestAction"`
	} `json:"bill"`
}

// ParseBill converts a raw bill detail response body into a Bill.
func ParseBill(body []byte) (*Bill, error) {
	var envelope billEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, parseError("malformed bill payload", body, err)
	}
	raw := envelope.Bill
	if raw.Number == "" || raw.Type == "" {
		return nil, parseError("bill payload missing number or type", body, nil)
	}
	return &Bill{
		Number:        raw.Number,
		Type:          raw.Type,
		Congress:      raw.Congress,
		Title:         raw.Title,
		OriginChamber: raw.OriginChamber,
		LatestAction:  raw.LatestAction.Text,
	}, nil
}
