package dto

import "github.com/dimitrilongo/wacdo/internal/model"

// ── Module restaurant : requêtes ──

// CreateRestaurantRequest création d'un restaurant.
type CreateRestaurantRequest struct {
	Nom        string `json:"nom"         validate:"required,max=255"`
	Adresse    string `json:"adresse"     validate:"required,max=255"`
	CodePostal string `json:"code_postal" validate:"required,max=10"`
	Ville      string `json:"ville"       validate:"required,max=255"`
}

// UpdateRestaurantRequest mise à jour partielle, seuls les champs fournis
// sont validés et modifiés. Un champ fourni reste soumis aux règles de
// création : la chaîne vide ne permet pas de vider un champ obligatoire.
type UpdateRestaurantRequest struct {
	Nom        *string `json:"nom"         validate:"omitnil,notblank,max=255"`
	Adresse    *string `json:"adresse"     validate:"omitnil,notblank,max=255"`
	CodePostal *string `json:"code_postal" validate:"omitnil,notblank,max=10"`
	Ville      *string `json:"ville"       validate:"omitnil,notblank,max=255"`
}

// ── Module restaurant : réponses ──

// RestaurantResponse restaurant sans ses affectations (listes).
type RestaurantResponse struct {
	ID         uint   `json:"id"`
	Nom        string `json:"nom"`
	Adresse    string `json:"adresse"`
	CodePostal string `json:"code_postal"`
	Ville      string `json:"ville"`
}

// RestaurantDetailResponse restaurant avec ses affectations (fiche détaillée).
// Le champ affectations est toujours présent, vide au besoin.
type RestaurantDetailResponse struct {
	RestaurantResponse
	Affectations []AffectationResponse `json:"affectations"`
}

// FromRestaurant construit la réponse liste depuis le modèle.
func FromRestaurant(r *model.Restaurant) RestaurantResponse {
	return RestaurantResponse{
		ID:         r.ID,
		Nom:        r.Nom,
		Adresse:    r.Adresse,
		CodePostal: r.CodePostal,
		Ville:      r.Ville,
	}
}
