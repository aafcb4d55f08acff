package dto

import "github.com/dimitrilongo/wacdo/internal/model"

// ── Module poste : requêtes ──

// CreatePosteRequest création d'un poste.
type CreatePosteRequest struct {
	Nom string `json:"nom" validate:"required,max=255"`
}

// UpdatePosteRequest mise à jour partielle ; un nom fourni ne peut pas
// être vide.
type UpdatePosteRequest struct {
	Nom *string `json:"nom" validate:"omitnil,notblank,max=255"`
}

// ── Module poste : réponses ──

// PosteResponse intitulé de poste.
type PosteResponse struct {
	ID  uint   `json:"id"`
	Nom string `json:"nom"`
}

// FromPoste construit la réponse depuis le modèle.
func FromPoste(p *model.Poste) PosteResponse {
	return PosteResponse{ID: p.ID, Nom: p.Nom}
}
