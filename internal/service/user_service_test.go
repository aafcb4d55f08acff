package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/dimitrilongo/wacdo/internal/dto"
	"github.com/dimitrilongo/wacdo/internal/model"
	"github.com/dimitrilongo/wacdo/internal/repository"
	"github.com/dimitrilongo/wacdo/internal/validation"
)

func setupUserService() (*userService, *repository.Repository) {
	repo := newMockRepository()
	svc := NewUserService(repo, zap.NewNop()).(*userService)
	return svc, repo
}

func strPtr(s string) *string { return &s }

func datePtr(s string) *time.Time {
	t, _ := time.Parse(dto.DateFormat, s)
	return &t
}

func date(s string) time.Time {
	t, _ := time.Parse(dto.DateFormat, s)
	return t
}

func TestUserCreate_Success(t *testing.T) {
	svc, repo := setupUserService()

	result, err := svc.Create(context.Background(), &dto.CreateUserRequest{
		Nom:                  "Durand",
		Prenom:               "Claire",
		Email:                "claire.durand@wacdo.com",
		Password:             "motdepasse123",
		PasswordConfirmation: "motdepasse123",
		DateEmbauche:         strPtr("2023-09-15"),
	})

	if err != nil {
		t.Fatalf("Create devrait réussir : %v", err)
	}
	if result.NomComplet != "Claire Durand" {
		t.Errorf("nom_complet inattendu : %s", result.NomComplet)
	}
	if result.DateEmbauche == nil || *result.DateEmbauche != "2023-09-15" {
		t.Errorf("date_embauche inattendue : %v", result.DateEmbauche)
	}

	stored, _ := repo.User.GetByEmail(context.Background(), "claire.durand@wacdo.com")
	if bcrypt.CompareHashAndPassword([]byte(stored.MotDePasse), []byte("motdepasse123")) != nil {
		t.Error("le mot de passe devrait être haché")
	}
}

func TestUserCreate_PasswordConfirmationRequired(t *testing.T) {
	svc, _ := setupUserService()

	_, err := svc.Create(context.Background(), &dto.CreateUserRequest{
		Nom:                  "Durand",
		Prenom:               "Claire",
		Email:                "claire.durand@wacdo.com",
		Password:             "motdepasse123",
		PasswordConfirmation: "differente",
	})

	var errs validation.Errors
	if !errors.As(err, &errs) {
		t.Fatalf("attendu validation.Errors, obtenu : %v", err)
	}
	if _, ok := errs["password_confirmation"]; !ok {
		t.Errorf("le champ password_confirmation devrait être en erreur : %v", errs)
	}
}

func TestUserCreate_DuplicateEmail(t *testing.T) {
	svc, repo := setupUserService()
	seedUser(repo, "claire.durand@wacdo.com", "motdepasse123", false)

	_, err := svc.Create(context.Background(), &dto.CreateUserRequest{
		Nom:                  "Durand",
		Prenom:               "Claire",
		Email:                "claire.durand@wacdo.com",
		Password:             "motdepasse123",
		PasswordConfirmation: "motdepasse123",
	})

	var errs validation.Errors
	if !errors.As(err, &errs) {
		t.Fatalf("attendu validation.Errors, obtenu : %v", err)
	}
	if errs["email"] == "" {
		t.Error("le champ email devrait signaler le doublon")
	}
}

func TestUserUpdate_OwnEmailIsNotAConflict(t *testing.T) {
	svc, repo := setupUserService()
	user := seedUser(repo, "claire.durand@wacdo.com", "motdepasse123", false)

	result, err := svc.Update(context.Background(), user.ID, &dto.UpdateUserRequest{
		Email: strPtr("claire.durand@wacdo.com"),
		Nom:   strPtr("Durand-Morel"),
	})

	if err != nil {
		t.Fatalf("remettre sa propre adresse ne devrait pas échouer : %v", err)
	}
	if result.Nom != "Durand-Morel" {
		t.Errorf("nom inattendu : %s", result.Nom)
	}
}

func TestUserUpdate_EmailTakenByAnother(t *testing.T) {
	svc, repo := setupUserService()
	seedUser(repo, "premier@wacdo.com", "motdepasse123", false)
	second := seedUser(repo, "second@wacdo.com", "motdepasse123", false)

	_, err := svc.Update(context.Background(), second.ID, &dto.UpdateUserRequest{
		Email: strPtr("premier@wacdo.com"),
	})

	var errs validation.Errors
	if !errors.As(err, &errs) {
		t.Fatalf("attendu validation.Errors, obtenu : %v", err)
	}
	if errs["email"] == "" {
		t.Error("le champ email devrait signaler le doublon")
	}
}

func TestUserUpdate_PasswordRehashed(t *testing.T) {
	svc, repo := setupUserService()
	user := seedUser(repo, "claire.durand@wacdo.com", "ancien-mdp-12", false)

	_, err := svc.Update(context.Background(), user.ID, &dto.UpdateUserRequest{
		Password:             strPtr("nouveau-mdp-12"),
		PasswordConfirmation: strPtr("nouveau-mdp-12"),
	})
	if err != nil {
		t.Fatalf("Update devrait réussir : %v", err)
	}

	stored, _ := repo.User.GetByID(context.Background(), user.ID)
	if bcrypt.CompareHashAndPassword([]byte(stored.MotDePasse), []byte("nouveau-mdp-12")) != nil {
		t.Error("le nouveau mot de passe devrait être haché et stocké")
	}
}

func TestUserUpdate_PasswordWithoutConfirmation(t *testing.T) {
	svc, repo := setupUserService()
	user := seedUser(repo, "claire.durand@wacdo.com", "motdepasse123", false)

	_, err := svc.Update(context.Background(), user.ID, &dto.UpdateUserRequest{
		Password: strPtr("nouveau-mdp-12"),
	})

	var errs validation.Errors
	if !errors.As(err, &errs) {
		t.Fatalf("attendu validation.Errors, obtenu : %v", err)
	}
	if _, ok := errs["password"]; !ok {
		t.Errorf("le champ password devrait exiger la confirmation : %v", errs)
	}
}

func TestUserUpdate_BlankFieldsRejected(t *testing.T) {
	svc, repo := setupUserService()
	user := seedUser(repo, "claire.durand@wacdo.com", "motdepasse123", false)

	// La chaîne vide ne vide pas un champ obligatoire et ne contourne pas
	// le format d'e-mail.
	_, err := svc.Update(context.Background(), user.ID, &dto.UpdateUserRequest{
		Nom:   strPtr(""),
		Email: strPtr(""),
	})

	var errs validation.Errors
	if !errors.As(err, &errs) {
		t.Fatalf("attendu validation.Errors, obtenu : %v", err)
	}
	if errs["nom"] != "Le champ nom ne peut pas être vide." {
		t.Errorf("message inattendu sur nom : %q", errs["nom"])
	}
	if errs["email"] == "" {
		t.Errorf("le champ email devrait être en erreur : %v", errs)
	}

	got, _ := repo.User.GetByID(context.Background(), user.ID)
	if got.Email != "claire.durand@wacdo.com" {
		t.Errorf("l'e-mail ne devrait pas être modifié : %s", got.Email)
	}
}

func TestUserUpdate_NotFound(t *testing.T) {
	svc, _ := setupUserService()

	_, err := svc.Update(context.Background(), 999, &dto.UpdateUserRequest{})
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("attendu ErrUserNotFound, obtenu : %v", err)
	}
}

func TestUserDelete_Idempotent(t *testing.T) {
	svc, repo := setupUserService()
	user := seedUser(repo, "claire.durand@wacdo.com", "motdepasse123", false)

	if err := svc.Delete(context.Background(), user.ID); err != nil {
		t.Fatalf("la première suppression devrait réussir : %v", err)
	}
	if err := svc.Delete(context.Background(), user.ID); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("la seconde suppression devrait renvoyer ErrUserNotFound, obtenu : %v", err)
	}
}

// ── Liste avec affectation courante ──

func TestUserList_AttachesCurrentAssignment(t *testing.T) {
	svc, repo := setupUserService()
	svc.now = func() time.Time { return date("2025-06-15") }

	user := seedUser(repo, "claire.durand@wacdo.com", "motdepasse123", false)
	restaurant := &model.Restaurant{Nom: "Wacdo République", Adresse: "1 place de la République", CodePostal: "75003", Ville: "Paris"}
	_ = repo.Restaurant.Create(context.Background(), restaurant)
	poste := &model.Poste{Nom: "Équipier"}
	_ = repo.Poste.Create(context.Background(), poste)

	// Affectation terminée, puis affectation ouverte plus récente :
	// seule la seconde doit être attachée.
	_ = repo.Affectation.Create(context.Background(), &model.Affectation{
		UserID: user.ID, RestaurantID: restaurant.ID, PosteID: poste.ID,
		DateDebut: date("2024-01-01"), DateFin: datePtr("2024-06-30"),
	})
	current := &model.Affectation{
		UserID: user.ID, RestaurantID: restaurant.ID, PosteID: poste.ID,
		DateDebut: date("2025-01-01"),
	}
	_ = repo.Affectation.Create(context.Background(), current)

	result, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List devrait réussir : %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("attendu 1 utilisateur, obtenu %d", len(result))
	}
	if len(result[0].Affectations) != 1 {
		t.Fatalf("attendu 1 affectation attachée, obtenu %d", len(result[0].Affectations))
	}
	attached := result[0].Affectations[0]
	if attached.ID != current.ID {
		t.Errorf("attendu l'affectation ouverte %d, obtenu %d", current.ID, attached.ID)
	}
	if attached.Statut != model.StatutEnCours {
		t.Errorf("statut inattendu : %s", attached.Statut)
	}
	if attached.Restaurant == nil || attached.Restaurant.Nom != "Wacdo République" {
		t.Error("le restaurant devrait être chargé avec l'affectation")
	}
}

func TestUserList_AssignmentEndingTodayStillCurrent(t *testing.T) {
	svc, repo := setupUserService()
	// En fin de journée, l'affectation qui se termine aujourd'hui est
	// toujours en cours : elle doit rester attachée au collaborateur.
	svc.now = func() time.Time { return time.Date(2025, 6, 15, 18, 30, 0, 0, time.UTC) }

	user := seedUser(repo, "claire.durand@wacdo.com", "motdepasse123", false)
	restaurant := &model.Restaurant{Nom: "Wacdo République", Adresse: "1 place de la République", CodePostal: "75003", Ville: "Paris"}
	_ = repo.Restaurant.Create(context.Background(), restaurant)
	poste := &model.Poste{Nom: "Équipier"}
	_ = repo.Poste.Create(context.Background(), poste)

	endsToday := &model.Affectation{
		UserID: user.ID, RestaurantID: restaurant.ID, PosteID: poste.ID,
		DateDebut: date("2025-01-01"), DateFin: datePtr("2025-06-15"),
	}
	_ = repo.Affectation.Create(context.Background(), endsToday)

	result, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List devrait réussir : %v", err)
	}
	if len(result) != 1 || len(result[0].Affectations) != 1 {
		t.Fatalf("l'affectation qui se termine aujourd'hui devrait rester attachée : %+v", result)
	}
	if result[0].Affectations[0].Statut != model.StatutEnCours {
		t.Errorf("statut inattendu : %s", result[0].Affectations[0].Statut)
	}
}

func TestUserList_NoOpenAssignment(t *testing.T) {
	svc, repo := setupUserService()
	svc.now = func() time.Time { return date("2025-06-15") }

	user := seedUser(repo, "claire.durand@wacdo.com", "motdepasse123", false)
	restaurant := &model.Restaurant{Nom: "Wacdo Bastille", Adresse: "2 rue de la Roquette", CodePostal: "75011", Ville: "Paris"}
	_ = repo.Restaurant.Create(context.Background(), restaurant)
	poste := &model.Poste{Nom: "Équipier"}
	_ = repo.Poste.Create(context.Background(), poste)

	// Uniquement une affectation terminée : rien à attacher.
	_ = repo.Affectation.Create(context.Background(), &model.Affectation{
		UserID: user.ID, RestaurantID: restaurant.ID, PosteID: poste.ID,
		DateDebut: date("2024-01-01"), DateFin: datePtr("2024-06-30"),
	})

	result, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List devrait réussir : %v", err)
	}
	if len(result[0].Affectations) != 0 {
		t.Errorf("aucune affectation ne devrait être attachée : %+v", result[0].Affectations)
	}
}

// ── EnsureAdmin ──

func TestEnsureAdmin_CreatesInitialAccount(t *testing.T) {
	svc, repo := setupUserService()

	if err := svc.EnsureAdmin(context.Background(), "admin@wacdo.com", "motdepasse123"); err != nil {
		t.Fatalf("EnsureAdmin devrait réussir : %v", err)
	}

	admin, err := repo.User.GetByEmail(context.Background(), "admin@wacdo.com")
	if err != nil {
		t.Fatalf("le compte admin devrait exister : %v", err)
	}
	if !admin.IsAdmin {
		t.Error("le compte initial devrait être administrateur")
	}
}

func TestEnsureAdmin_Idempotent(t *testing.T) {
	svc, repo := setupUserService()
	seedUser(repo, "existant@wacdo.com", "motdepasse123", true)

	if err := svc.EnsureAdmin(context.Background(), "admin@wacdo.com", "motdepasse123"); err != nil {
		t.Fatalf("EnsureAdmin devrait réussir : %v", err)
	}

	// Un admin existe déjà : aucun compte supplémentaire n'est créé.
	if _, err := repo.User.GetByEmail(context.Background(), "admin@wacdo.com"); err == nil {
		t.Error("aucun compte admin@wacdo.com ne devrait avoir été créé")
	}
}

func TestEnsureAdmin_EmptyPassword(t *testing.T) {
	svc, repo := setupUserService()

	if err := svc.EnsureAdmin(context.Background(), "admin@wacdo.com", ""); err != nil {
		t.Fatalf("EnsureAdmin devrait réussir : %v", err)
	}
	if _, err := repo.User.GetByEmail(context.Background(), "admin@wacdo.com"); err == nil {
		t.Error("aucun compte ne devrait être créé sans mot de passe configuré")
	}
}
