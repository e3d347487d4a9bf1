package http

type StatsResponse struct {
	Applications map[string]int64 `json:"applications"`
	Claims       map[string]int64 `json:"claims"`
	Pets         int64            `json:"pets"`
	Payments     PaymentStatsDTO  `json:"payments"`
}

type PaymentStatsDTO struct {
	Count       int64   `json:"count"`
	TotalAmount float64 `json:"totalAmount"`
}
