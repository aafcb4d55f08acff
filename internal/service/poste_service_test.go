package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/dimitrilongo/wacdo/internal/dto"
	"github.com/dimitrilongo/wacdo/internal/repository"
	"github.com/dimitrilongo/wacdo/internal/validation"
)

func setupPosteService() (PosteService, *repository.Repository) {
	repo := newMockRepository()
	return NewPosteService(repo, zap.NewNop()), repo
}

func TestPosteCreate_Success(t *testing.T) {
	svc, _ := setupPosteService()

	result, err := svc.Create(context.Background(), &dto.CreatePosteRequest{Nom: "Équipier polyvalent"})
	if err != nil {
		t.Fatalf("Create devrait réussir : %v", err)
	}
	if result.Nom != "Équipier polyvalent" {
		t.Errorf("nom inattendu : %s", result.Nom)
	}
}

func TestPosteCreate_MissingNom(t *testing.T) {
	svc, _ := setupPosteService()

	_, err := svc.Create(context.Background(), &dto.CreatePosteRequest{})

	var errs validation.Errors
	if !errors.As(err, &errs) {
		t.Fatalf("attendu validation.Errors, obtenu : %v", err)
	}
	if _, ok := errs["nom"]; !ok {
		t.Errorf("le champ nom devrait être en erreur : %v", errs)
	}
}

func TestPosteUpdate_Success(t *testing.T) {
	svc, _ := setupPosteService()
	created, _ := svc.Create(context.Background(), &dto.CreatePosteRequest{Nom: "Équipier"})

	result, err := svc.Update(context.Background(), created.ID, &dto.UpdatePosteRequest{
		Nom: strPtr("Chef d'équipe"),
	})
	if err != nil {
		t.Fatalf("Update devrait réussir : %v", err)
	}
	if result.Nom != "Chef d'équipe" {
		t.Errorf("nom inattendu : %s", result.Nom)
	}
}

func TestPosteUpdate_BlankNomRejected(t *testing.T) {
	svc, _ := setupPosteService()
	created, _ := svc.Create(context.Background(), &dto.CreatePosteRequest{Nom: "Manager"})

	_, err := svc.Update(context.Background(), created.ID, &dto.UpdatePosteRequest{Nom: strPtr("")})

	var errs validation.Errors
	if !errors.As(err, &errs) {
		t.Fatalf("attendu validation.Errors, obtenu : %v", err)
	}
	if errs["nom"] != "Le champ nom ne peut pas être vide." {
		t.Errorf("message inattendu : %q", errs["nom"])
	}

	got, _ := svc.GetByID(context.Background(), created.ID)
	if got.Nom != "Manager" {
		t.Errorf("l'intitulé ne devrait pas être modifié : %s", got.Nom)
	}
}

func TestPosteUpdate_NotFound(t *testing.T) {
	svc, _ := setupPosteService()

	_, err := svc.Update(context.Background(), 999, &dto.UpdatePosteRequest{})
	if !errors.Is(err, ErrPosteNotFound) {
		t.Errorf("attendu ErrPosteNotFound, obtenu : %v", err)
	}
}

func TestPosteDelete_Idempotent(t *testing.T) {
	svc, _ := setupPosteService()
	created, _ := svc.Create(context.Background(), &dto.CreatePosteRequest{Nom: "Équipier"})

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("la première suppression devrait réussir : %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, ErrPosteNotFound) {
		t.Errorf("la seconde suppression devrait renvoyer ErrPosteNotFound, obtenu : %v", err)
	}
}

func TestPosteList_Empty(t *testing.T) {
	svc, _ := setupPosteService()

	result, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List devrait réussir : %v", err)
	}
	if result == nil || len(result) != 0 {
		t.Errorf("attendu une liste vide, obtenu : %v", result)
	}
}
