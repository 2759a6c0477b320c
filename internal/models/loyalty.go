package models

// LoyaltyCard - модель накопительной карты для выдачи
type LoyaltyCard struct {
	Stamps    int `json:"stamps"`
	Target    int `json:"target"`
	Remaining int `json:"remaining"`
}

// StampResult - результат начисления штампа
type StampResult struct {
	Stamps int
	Reward bool
}
