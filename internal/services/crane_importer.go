package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fleet-system/internal/dto"
	"fleet-system/internal/entities"
	"fleet-system/internal/repositories"
	apperrors "fleet-system/pkg/errors"

	"go.uber.org/zap"
)

type CraneImporterInterface interface {
	ImportFleetList(ctx context.Context, file io.Reader) (*dto.CraneImportResultDTO, error)
}

// CraneImporter loads the semicolon-delimited fleet inventory export. The
// file carries two header lines, Turkish type names and plate numbers as the
// primary key; machines without a plate get a synthetic PLATELESS-* one.
type CraneImporter struct {
	craneRepo repositories.CraneRepositoryInterface
	logger    *zap.Logger
}

func NewCraneImporter(craneRepo repositories.CraneRepositoryInterface, logger *zap.Logger) CraneImporterInterface {
	return &CraneImporter{craneRepo: craneRepo, logger: logger}
}

func normalizeCraneType(category string) string {
	upper := strings.ToUpper(category)
	if strings.Contains(upper, "KAFES") || strings.Contains(upper, "PALET") {
		return "PALETLI"
	}
	if strings.Contains(upper, "SEPET") {
		return "SEPET"
	}
	return "MOBILE"
}

// parseFleetNumber reads numbers in the export's locale: dots are thousands
// separators, the comma is the decimal point.
func parseFleetNumber(value string) *float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	cleaned := strings.ReplaceAll(value, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	parsed, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &parsed
}

func deriveCraneStatus(locationText string) string {
	upper := strings.ToUpper(locationText)
	if strings.Contains(upper, "SATILDI") {
		return "RETIRED"
	}
	if strings.Contains(upper, "ARIZALI") || strings.Contains(upper, "HASAR") {
		return "MAINTENANCE"
	}
	return "ACTIVE"
}

func optionalField(record []string, index int) *string {
	if index >= len(record) {
		return nil
	}
	value := strings.TrimSpace(record[index])
	if value == "" {
		return nil
	}
	return &value
}

func (s *CraneImporter) ImportFleetList(ctx context.Context, file io.Reader) (*dto.CraneImportResultDTO, error) {
	reader := csv.NewReader(file)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	result := dto.CraneImportResultDTO{}
	lineIndex := 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperrors.NewBadRequestError("malformed fleet list file")
		}

		lineIndex++
		if lineIndex <= 2 {
			continue
		}
		if len(record) == 0 || strings.TrimSpace(record[0]) == "" {
			result.Skipped++
			continue
		}
		result.Parsed++

		plate := strings.TrimSpace(record[0])
		serialNo := optionalField(record, 4)
		if plate == "-" || plate == "" {
			if serialNo != nil {
				plate = "PLATELESS-" + *serialNo
			} else {
				plate = fmt.Sprintf("PLATELESS-%d", result.Parsed-1)
			}
		}

		machineCategory := optionalField(record, 2)
		brandModel := optionalField(record, 3)
		locationText := optionalField(record, 6)

		displayName := plate
		if brandModel != nil {
			displayName = *brandModel
			if serialNo != nil {
				displayName = fmt.Sprintf("%s [%s]", *brandModel, *serialNo)
			}
		}

		model := ""
		switch {
		case brandModel != nil:
			model = *brandModel
		case machineCategory != nil:
			model = *machineCategory
		default:
			model = "Bilinmiyor"
		}

		category := ""
		if machineCategory != nil {
			category = *machineCategory
		}
		location := ""
		if locationText != nil {
			location = *locationText
		}

		var modelYear *int
		if yearStr := optionalField(record, 5); yearStr != nil {
			if year, err := strconv.Atoi(*yearStr); err == nil {
				modelYear = &year
			}
		}

		crane := entities.Crane{
			Name:                displayName,
			Model:               model,
			Type:                normalizeCraneType(category),
			SerialNo:            serialNo,
			Status:              deriveCraneStatus(location),
			PlateNo:             &plate,
			Tonnage:             parseFleetNumber(valueAt(record, 1)),
			MachineCategory:     machineCategory,
			BrandModel:          brandModel,
			ModelYear:           modelYear,
			KmReading:           parseFleetNumber(valueAt(record, 7)),
			EngineHours:         parseFleetNumber(valueAt(record, 8)),
			CurrentLocationText: locationText,
		}

		if err := s.craneRepo.UpsertByPlate(ctx, &crane); err != nil {
			s.logger.Warn("fleet list row import failed",
				zap.String("plate_no", plate),
				zap.Error(err),
			)
			result.Skipped++
			continue
		}
		result.Imported++
	}

	s.logger.Info("fleet list imported",
		zap.Int("parsed", result.Parsed),
		zap.Int("imported", result.Imported),
		zap.Int("skipped", result.Skipped),
	)
	return &result, nil
}

func valueAt(record []string, index int) string {
	if index >= len(record) {
		return ""
	}
	return record[index]
}
