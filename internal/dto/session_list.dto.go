package dto

type SessionRowDTO struct {
	ID           uint    `json:"id"`
	Date         string  `json:"date"`
	SpaID        uint    `json:"spa_id"`
	SpaName      string  `json:"spa_name"`
	Hours        float64 `json:"hours"`
	IsCar        bool    `json:"is_car"`
	Comments     string  `json:"comments"`
	PricePerHour float64 `json:"price_per_hour"`
	Total        float64 `json:"total"`
	TaxAmount    float64 `json:"tax_amount"`
	NetAmount    float64 `json:"net_amount"`
}
