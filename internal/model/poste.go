package model

import "time"

// Poste intitulé de fonction, indépendant de tout restaurant — table postes.
type Poste struct {
	ID        uint      `gorm:"primaryKey"                 json:"id"`
	Nom       string    `gorm:"type:varchar(255);not null" json:"nom"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName nom de la table.
func (Poste) TableName() string { return "postes" }
