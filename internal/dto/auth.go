package dto

// ── Module auth : requêtes ──

// LoginRequest connexion par e-mail et mot de passe.
type LoginRequest struct {
	Email      string `json:"email"        validate:"required,email"`
	MotDePasse string `json:"mot_de_passe" validate:"required"`
}

// RegisterRequest création de compte avec confirmation du mot de passe.
type RegisterRequest struct {
	Nom                    string `json:"nom"                       validate:"required,max=255"`
	Prenom                 string `json:"prenom"                    validate:"required,max=255"`
	Email                  string `json:"email"                     validate:"required,email,max=255"`
	MotDePasse             string `json:"mot_de_passe"              validate:"required,min=8"`
	MotDePasseConfirmation string `json:"mot_de_passe_confirmation" validate:"required,eqfield=MotDePasse"`
	DateEmbauche           string `json:"date_embauche"             validate:"required,date"`
	IsAdmin                bool   `json:"is_admin"`
}

// ── Module auth : réponses ──

// AuthResponse réponse des endpoints register, login et me.
// Le token est absent de la réponse de /me.
type AuthResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	User    *UserResponse `json:"user"`
	Token   string        `json:"token,omitempty"`
}
