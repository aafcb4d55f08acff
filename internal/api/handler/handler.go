package handler

import "github.com/dimitrilongo/wacdo/internal/service"

// Handler point d'entrée de tous les handlers HTTP.
type Handler struct {
	Auth        *AuthHandler
	User        *UserHandler
	Restaurant  *RestaurantHandler
	Poste       *PosteHandler
	Affectation *AffectationHandler
}

// NewHandler construit l'agrégat des handlers.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(svc.Auth),
		User:        NewUserHandler(svc.User, svc.Affectation),
		Restaurant:  NewRestaurantHandler(svc.Restaurant),
		Poste:       NewPosteHandler(svc.Poste),
		Affectation: NewAffectationHandler(svc.Affectation, svc.Export),
	}
}
