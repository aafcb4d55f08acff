package repository

import "gorm.io/gorm"

// Include relation à charger explicitement avec un enregistrement.
// Chaque endpoint déclare ce qu'il attache, rien n'est chargé d'office.
type Include string

const (
	// IncludeAffectations affectations d'un restaurant ou d'un user, avec
	// leurs entités liées, triées par date de début décroissante.
	IncludeAffectations Include = "affectations"
	// IncludeRelations user, restaurant et poste d'une affectation.
	IncludeRelations Include = "relations"
)

// Repository point d'entrée de tous les accès aux données.
type Repository struct {
	User        UserRepository
	Restaurant  RestaurantRepository
	Poste       PosteRepository
	Affectation AffectationRepository
}

// NewRepository construit l'agrégat des repositories.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:        NewUserRepo(db),
		Restaurant:  NewRestaurantRepo(db),
		Poste:       NewPosteRepo(db),
		Affectation: NewAffectationRepo(db),
	}
}
