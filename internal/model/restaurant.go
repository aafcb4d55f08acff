package model

import "time"

// Restaurant établissement de la chaîne — table restaurants.
type Restaurant struct {
	ID         uint      `gorm:"primaryKey"                 json:"id"`
	Nom        string    `gorm:"type:varchar(255);not null" json:"nom"`
	Adresse    string    `gorm:"type:varchar(255);not null" json:"adresse"`
	CodePostal string    `gorm:"type:varchar(10);not null"  json:"code_postal"`
	Ville      string    `gorm:"type:varchar(255);not null" json:"ville"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relations
	Affectations []Affectation `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE" json:"affectations,omitempty"`
}

// TableName nom de la table.
func (Restaurant) TableName() string { return "restaurants" }
