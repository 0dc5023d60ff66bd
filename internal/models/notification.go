package model

// SubscriptionRecord est l'abonnement push d'une identité : une seule par
// identité, supprimée quand les notifications sont désactivées.
type SubscriptionRecord struct {
	Identity       string `json:"identity"`
	DeliveryTarget string `json:"deliveryTarget"` // URL du service de push
	DeliveryToken  string `json:"deliveryToken"`
}

// FanoutResult compte les issues d'une diffusion, un bucket par résultat.
type FanoutResult struct {
	TotalUsers       int `json:"totalUsers"`
	SuccessCount     int `json:"successCount"`
	FailedCount      int `json:"failedCount"`
	RateLimitedCount int `json:"rateLimitedCount"`
	NoTokenCount     int `json:"noTokenCount"`
}
