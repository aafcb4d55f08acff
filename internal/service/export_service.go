package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/dimitrilongo/wacdo/internal/dto"
	"github.com/dimitrilongo/wacdo/internal/repository"
)

// ErrExportNoAffectations aucune affectation à exporter.
var ErrExportNoAffectations = errors.New("aucune affectation à exporter")

// ExportService export du planning des affectations.
//
// Le fichier est rendu en mémoire et renvoyé sous forme de bytes.Buffer ;
// le handler pose les en-têtes HTTP et écrit le contenu dans la réponse.
type ExportService interface {
	// ExportAffectations exporte toutes les affectations en classeur Excel
	// (.xlsx), une ligne par affectation, triées par date de début
	// décroissante. Retourne le contenu, le nom de fichier suggéré et une
	// erreur éventuelle.
	ExportAffectations(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewExportService crée le service d'export.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger, now: time.Now}
}

func (s *exportService) ExportAffectations(ctx context.Context) (*bytes.Buffer, string, error) {
	// 1. Charge toutes les affectations avec leurs entités liées.
	affectations, err := s.repo.Affectation.List(ctx, repository.IncludeRelations)
	if err != nil {
		s.logger.Error("liste des affectations pour export", zap.Error(err))
		return nil, "", err
	}
	if len(affectations) == 0 {
		return nil, "", ErrExportNoAffectations
	}

	asOf := s.now()

	// 2. Génère le classeur.
	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Affectations"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		s.logger.Error("création de la feuille Excel", zap.Error(err))
		return nil, "", err
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 24)
	f.SetColWidth(sheetName, "B", "B", 28)
	f.SetColWidth(sheetName, "C", "D", 20)
	f.SetColWidth(sheetName, "E", "E", 22)
	f.SetColWidth(sheetName, "F", "G", 12)
	f.SetColWidth(sheetName, "H", "H", 10)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#C8102E"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	headers := []string{"Collaborateur", "Email", "Restaurant", "Ville", "Poste", "Date début", "Date fin", "Statut"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, h)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	statutLabels := map[string]string{
		"a_venir":  "À venir",
		"en_cours": "En cours",
		"terminee": "Terminée",
	}

	// 3. Une ligne par affectation, dans l'ordre de la liste.
	for i := range affectations {
		a := &affectations[i]
		row := i + 2

		var nom, email string
		if a.User != nil {
			nom = a.User.NomComplet()
			email = a.User.Email
		}
		var restaurant, ville string
		if a.Restaurant != nil {
			restaurant = a.Restaurant.Nom
			ville = a.Restaurant.Ville
		}
		var poste string
		if a.Poste != nil {
			poste = a.Poste.Nom
		}
		fin := ""
		if a.DateFin != nil {
			fin = dto.FormatDate(*a.DateFin)
		}

		values := []any{
			nom,
			email,
			restaurant,
			ville,
			poste,
			dto.FormatDate(a.DateDebut),
			fin,
			statutLabels[string(a.Statut(asOf))],
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheetName, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("écriture du classeur Excel", zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("affectations_%s.xlsx", asOf.Format(dto.DateFormat))
	return buf, filename, nil
}
