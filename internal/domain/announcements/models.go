package announcements

const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

type Announcement struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Type    string `json:"type"`
	// ValidFrom and ValidTo are ISO days; ValidFrom <= ValidTo.
	ValidFrom string `json:"validFrom"`
	ValidTo   string `json:"validTo"`
	CreatedBy string `json:"createdBy,omitempty"`
	CreatedAt string `json:"createdAt"`
}
