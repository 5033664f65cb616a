package dto

type ActivityItem struct {
	ID         string   `json:"id"`
	Action     string   `json:"action"`
	EntityType string   `json:"entity_type"`
	EntityName string   `json:"entity_name"`
	User       *UserRef `json:"user,omitempty"`
	CreatedAt  string   `json:"created_at"`
}
