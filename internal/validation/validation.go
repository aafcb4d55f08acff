package validation

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Errors détail des violations, champ (nom sur le fil) → message.
// Implémente error pour remonter du service jusqu'au handler.
type Errors map[string]string

func (e Errors) Error() string { return "Erreurs de validation" }

// Add enregistre une violation si le champ n'en porte pas déjà une.
func (e Errors) Add(field, message string) {
	if _, ok := e[field]; !ok {
		e[field] = message
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Les messages référencent le nom du champ sur le fil, pas le nom Go.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})

	// notblank : pour les champs optionnels des mises à jour partielles,
	// un champ fourni ne peut pas être vidé. omitempty ne convient pas :
	// il saute aussi la chaîne vide, donc `omitnil,notblank` est la forme
	// « sometimes » des règles de création.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	// date : date calendaire 2006-01-02 ou horodatage RFC 3339.
	_ = v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if _, err := time.Parse("2006-01-02", s); err == nil {
			return true
		}
		_, err := time.Parse(time.RFC3339, s)
		return err == nil
	})

	return v
}

// Struct valide toutes les règles d'un coup et renvoie l'ensemble des
// violations, nil si la structure est valide.
func Struct(s interface{}) Errors {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return Errors{"_": "Requête invalide"}
	}

	errs := make(Errors, len(verrs))
	for _, fe := range verrs {
		errs.Add(fe.Field(), messageFor(fe))
	}
	return errs
}

func messageFor(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Le champ %s est obligatoire.", field)
	case "email":
		return fmt.Sprintf("Le champ %s doit être une adresse e-mail valide.", field)
	case "min":
		return fmt.Sprintf("Le champ %s doit contenir au moins %s caractères.", field, fe.Param())
	case "max":
		return fmt.Sprintf("Le champ %s ne doit pas dépasser %s caractères.", field, fe.Param())
	case "eqfield":
		return fmt.Sprintf("La confirmation du champ %s ne correspond pas.", field)
	case "date":
		return fmt.Sprintf("Le champ %s doit être une date valide.", field)
	case "notblank":
		return fmt.Sprintf("Le champ %s ne peut pas être vide.", field)
	case "oneof", "gt":
		return fmt.Sprintf("Le champ %s sélectionné est invalide.", field)
	default:
		return fmt.Sprintf("Le champ %s est invalide.", field)
	}
}
