package dto

import "github.com/dimitrilongo/wacdo/internal/model"

// ── Module user : requêtes ──

// CreateUserRequest création d'un collaborateur par un administrateur.
type CreateUserRequest struct {
	Nom                  string  `json:"nom"                   validate:"required,max=255"`
	Prenom               string  `json:"prenom"                validate:"required,max=255"`
	Email                string  `json:"email"                 validate:"required,email,max=255"`
	Password             string  `json:"password"              validate:"required,min=8"`
	PasswordConfirmation string  `json:"password_confirmation" validate:"required,eqfield=Password"`
	DateEmbauche         *string `json:"date_embauche"         validate:"omitnil,date"`
	IsAdmin              *bool   `json:"is_admin"`
}

// UpdateUserRequest mise à jour partielle d'un collaborateur. Un champ
// fourni reste soumis aux règles de création : impossible de vider le nom
// ou de contourner le format d'e-mail avec une chaîne vide.
// L'unicité de l'e-mail exclut l'enregistrement en cours de modification.
type UpdateUserRequest struct {
	Nom                  *string `json:"nom"                   validate:"omitnil,notblank,max=255"`
	Prenom               *string `json:"prenom"                validate:"omitnil,notblank,max=255"`
	Email                *string `json:"email"                 validate:"omitnil,notblank,email,max=255"`
	Password             *string `json:"password"              validate:"omitnil,min=8"`
	PasswordConfirmation *string `json:"password_confirmation"`
	DateEmbauche         *string `json:"date_embauche"         validate:"omitnil,date"`
	IsAdmin              *bool   `json:"is_admin"`
}

// ── Module user : réponses ──

// UserResponse collaborateur sérialisé, sans mot de passe.
// Affectations porte au plus l'affectation courante dans la liste des users.
type UserResponse struct {
	ID           uint                  `json:"id"`
	Nom          string                `json:"nom"`
	Prenom       string                `json:"prenom"`
	NomComplet   string                `json:"nom_complet"`
	Email        string                `json:"email"`
	DateEmbauche *string               `json:"date_embauche"`
	IsAdmin      bool                  `json:"is_admin"`
	Affectations []AffectationResponse `json:"affectations,omitempty"`
}

// FromUser construit la réponse depuis le modèle.
func FromUser(u *model.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Nom:          u.Nom,
		Prenom:       u.Prenom,
		NomComplet:   u.NomComplet(),
		Email:        u.Email,
		DateEmbauche: FormatDatePtr(u.DateEmbauche),
		IsAdmin:      u.IsAdmin,
	}
}
