package dto

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/dimitrilongo/wacdo/internal/model"
)

// ── Module affectation : requêtes ──

// CreateAffectationRequest création d'une affectation.
// date_fin nulle = affectation ouverte ; si présente elle doit être
// postérieure ou égale à date_debut (vérifié côté service).
type CreateAffectationRequest struct {
	UserID       uint    `json:"user_id"       validate:"required"`
	RestaurantID uint    `json:"restaurant_id" validate:"required"`
	PosteID      uint    `json:"poste_id"      validate:"required"`
	DateDebut    string  `json:"date_debut"    validate:"required,date"`
	DateFin      *string `json:"date_fin"      validate:"omitnil,date"`
}

// UpdateAffectationRequest mise à jour partielle ; les règles de dates
// s'appliquent au résultat fusionné avec l'enregistrement existant.
// date_fin explicitement nulle rouvre l'affectation, ce qui oblige à
// distinguer null de absent au décodage (ClearDateFin).
type UpdateAffectationRequest struct {
	UserID       *uint   `json:"user_id"       validate:"omitnil,gt=0"`
	RestaurantID *uint   `json:"restaurant_id" validate:"omitnil,gt=0"`
	PosteID      *uint   `json:"poste_id"      validate:"omitnil,gt=0"`
	DateDebut    *string `json:"date_debut"    validate:"omitnil,date"`
	DateFin      *string `json:"date_fin"      validate:"omitnil,date"`

	// ClearDateFin vrai quand le JSON porte "date_fin": null.
	ClearDateFin bool `json:"-"`
}

// UnmarshalJSON décode la requête puis note si date_fin était présente et
// nulle : un pointeur nil seul ne distingue pas null de champ absent.
func (r *UpdateAffectationRequest) UnmarshalJSON(data []byte) error {
	type alias UpdateAffectationRequest
	var aux alias
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if v, ok := raw["date_fin"]; ok && bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
		aux.ClearDateFin = true
	}

	*r = UpdateAffectationRequest(aux)
	return nil
}

// ListAffectationsRequest filtre optionnel de la liste par statut dérivé.
type ListAffectationsRequest struct {
	Statut string `form:"statut" validate:"omitempty,oneof=en_cours terminee a_venir"`
}

// ── Module affectation : réponses ──

// AffectationResponse affectation avec son statut dérivé et, selon
// l'endpoint, ses entités liées.
type AffectationResponse struct {
	ID           uint                `json:"id"`
	UserID       uint                `json:"user_id"`
	RestaurantID uint                `json:"restaurant_id"`
	PosteID      uint                `json:"poste_id"`
	DateDebut    string              `json:"date_debut"`
	DateFin      *string             `json:"date_fin"`
	Statut       model.Statut        `json:"statut"`
	User         *UserResponse       `json:"user,omitempty"`
	Restaurant   *RestaurantResponse `json:"restaurant,omitempty"`
	Poste        *PosteResponse      `json:"poste,omitempty"`
}

// FromAffectation construit la réponse depuis le modèle, statut calculé
// par rapport à asOf avec les entités liées chargées.
func FromAffectation(a *model.Affectation, asOf time.Time) AffectationResponse {
	resp := AffectationResponse{
		ID:           a.ID,
		UserID:       a.UserID,
		RestaurantID: a.RestaurantID,
		PosteID:      a.PosteID,
		DateDebut:    FormatDate(a.DateDebut),
		DateFin:      FormatDatePtr(a.DateFin),
		Statut:       a.Statut(asOf),
	}
	if a.User != nil {
		u := FromUser(a.User)
		resp.User = &u
	}
	if a.Restaurant != nil {
		r := FromRestaurant(a.Restaurant)
		resp.Restaurant = &r
	}
	if a.Poste != nil {
		p := FromPoste(a.Poste)
		resp.Poste = &p
	}
	return resp
}
