package domain

// DefaultInactiveDaysThreshold é usado quando o estabelecimento não configurou o limite
const DefaultInactiveDaysThreshold = 20

type Settings struct {
	ID                    string `json:"id,omitempty"`
	EstablishmentID       string `json:"establishment_id"`
	InactiveDaysThreshold int    `json:"inactive_days_threshold"`
}

type UpdateSettingsRequest struct {
	InactiveDaysThreshold int `json:"inactive_days_threshold"`
}
