package model

import "time"

// Statut classification temporelle d'une affectation par rapport à un instant
// de référence. Les valeurs correspondent au filtre statut du front.
type Statut string

const (
	StatutAVenir   Statut = "a_venir"
	StatutEnCours  Statut = "en_cours"
	StatutTerminee Statut = "terminee"
)

// Affectation lien daté entre un collaborateur, un restaurant et un poste —
// table affectations. date_fin nulle = affectation ouverte.
type Affectation struct {
	ID           uint       `gorm:"primaryKey"         json:"id"`
	UserID       uint       `gorm:"not null"           json:"user_id"`
	RestaurantID uint       `gorm:"not null"           json:"restaurant_id"`
	PosteID      uint       `gorm:"not null"           json:"poste_id"`
	DateDebut    time.Time  `gorm:"not null"           json:"date_debut"`
	DateFin      *time.Time `json:"date_fin"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Relations
	User       *User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"       json:"user,omitempty"`
	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE" json:"restaurant,omitempty"`
	Poste      *Poste      `gorm:"foreignKey:PosteID;constraint:OnDelete:CASCADE"      json:"poste,omitempty"`
}

// TableName nom de la table.
func (Affectation) TableName() string { return "affectations" }

// Statut classe l'affectation par rapport à asOf, au jour près.
// Les bornes comptent comme en cours : date_debut == asOf et
// date_fin == asOf donnent toutes deux en_cours.
func (a *Affectation) Statut(asOf time.Time) Statut {
	today := dateOnly(asOf)
	debut := dateOnly(a.DateDebut)

	if debut.After(today) {
		return StatutAVenir
	}
	if a.DateFin != nil && dateOnly(*a.DateFin).Before(today) {
		return StatutTerminee
	}
	return StatutEnCours
}

// dateOnly tronque à la date calendaire, les heures ne participent pas
// à la classification.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
