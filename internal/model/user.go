package model

import "time"

// User collaborateur, administrateur ou non — table users.
// Le hash du mot de passe n'est jamais sérialisé.
type User struct {
	ID           uint       `gorm:"primaryKey"                           json:"id"`
	Nom          string     `gorm:"type:varchar(255);not null"           json:"nom"`
	Prenom       string     `gorm:"type:varchar(255);not null"           json:"prenom"`
	Email        string     `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_email" json:"email"`
	MotDePasse   string     `gorm:"type:varchar(255);not null"           json:"-"`
	DateEmbauche *time.Time `json:"date_embauche"`
	IsAdmin      bool       `gorm:"not null;default:false"               json:"is_admin"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Relations
	Affectations []Affectation `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"affectations,omitempty"`
}

// TableName nom de la table.
func (User) TableName() string { return "users" }

// NomComplet prénom suivi du nom, utilisé par les listes du front.
func (u *User) NomComplet() string {
	return u.Prenom + " " + u.Nom
}
