package models

// StoreData - модель кофейни из справочника
type StoreData struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Hours    string `json:"hours"`
	Distance string `json:"distance"`
}
