package services

import (
	"bytes"
	"context"
	"fmt"

	"fleet-system/internal/repositories"
	"fleet-system/pkg/types"
	"fleet-system/pkg/utils"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type ReportServiceInterface interface {
	FleetReport(ctx context.Context) (*bytes.Buffer, error)
}

type ReportService struct {
	craneRepo repositories.CraneRepositoryInterface
	truckRepo repositories.TruckRepositoryInterface
	logger    *zap.Logger
}

func NewReportService(
	craneRepo repositories.CraneRepositoryInterface,
	truckRepo repositories.TruckRepositoryInterface,
	logger *zap.Logger,
) ReportServiceInterface {
	return &ReportService{craneRepo: craneRepo, truckRepo: truckRepo, logger: logger}
}

// FleetReport renders the whole fleet as an XLSX workbook with one sheet for
// cranes and one for trucks.
func (s *ReportService) FleetReport(ctx context.Context) (*bytes.Buffer, error) {
	cranes, _, err := s.craneRepo.GetCranes(ctx, types.Filter{})
	if err != nil {
		return nil, err
	}
	trucks, _, err := s.truckRepo.GetTrucks(ctx, types.Filter{})
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const craneSheet = "Cranes"
	if err := f.SetSheetName("Sheet1", craneSheet); err != nil {
		return nil, err
	}

	craneHeaders := []string{"ID", "Name", "Model", "Type", "Serial No", "Plate No", "Status", "Tonnage", "Location", "Notes"}
	for i, h := range craneHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(craneSheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, crane := range cranes {
		location := ""
		if crane.Location != nil {
			location = crane.Location.Name
		} else if crane.CurrentLocationText != nil {
			location = *crane.CurrentLocationText
		}

		values := []any{
			crane.ID,
			crane.Name,
			crane.Model,
			crane.Type,
			utils.SafeDeref(crane.SerialNo),
			utils.SafeDeref(crane.PlateNo),
			crane.Status,
			derefFloat(crane.Tonnage),
			location,
			utils.SafeDeref(crane.Notes),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(craneSheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	const truckSheet = "Trucks"
	if _, err := f.NewSheet(truckSheet); err != nil {
		return nil, err
	}

	truckHeaders := []string{"ID", "Plate No", "Type", "Model", "Status", "Location", "Notes"}
	for i, h := range truckHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(truckSheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, truck := range trucks {
		location := ""
		if truck.Location != nil {
			location = truck.Location.Name
		}

		values := []any{
			truck.ID,
			truck.PlateNo,
			truck.Type,
			utils.SafeDeref(truck.Model),
			truck.Status,
			location,
			utils.SafeDeref(truck.Notes),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(truckSheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render fleet report: %w", err)
	}

	s.logger.Info("fleet report rendered",
		zap.Int("cranes", len(cranes)),
		zap.Int("trucks", len(trucks)),
	)
	return buf, nil
}

func derefFloat(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}
