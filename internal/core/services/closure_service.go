package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/apperrors"
	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/domain"
	portsrepo "github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/ports/repositories"
	portssvc "github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/ports/services"
	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/utils"
	"github.com/xuri/excelize/v2"
)

// closureService implements the ClosureSvcFacade interface.
type closureService struct {
	BaseService
	freightRepo  portsrepo.FreightRepositoryFacade
	expenseRepo  portsrepo.ExpenseRepositoryFacade
	settingsRepo portsrepo.SettingsRepositoryFacade
}

// NewClosureService creates a new monthly closure service.
func NewClosureService(freightRepo portsrepo.FreightRepositoryFacade, expenseRepo portsrepo.ExpenseRepositoryFacade, settingsRepo portsrepo.SettingsRepositoryFacade) portssvc.ClosureSvcFacade {
	return &closureService{
		freightRepo:  freightRepo,
		expenseRepo:  expenseRepo,
		settingsRepo: settingsRepo,
	}
}

// Ensure closureService implements the ClosureSvcFacade interface.
var _ portssvc.ClosureSvcFacade = (*closureService)(nil)

func (s *closureService) GetMonthlyClosure(ctx context.Context, userID string, year int, month time.Month) (*domain.MonthlyClosure, error) {
	freights, err := s.freightRepo.ListFreightsByMonth(ctx, userID, year, month)
	if err != nil {
		s.LogError(ctx, err, "Failed to list freights for closure",
			slog.Int("year", year), slog.Int("month", int(month)))
		return nil, err
	}

	expenses, err := s.expenseRepo.ListExpensesByMonth(ctx, userID, year, month)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses for closure",
			slog.Int("year", year), slog.Int("month", int(month)))
		return nil, err
	}

	closure := domain.BuildClosure(year, int(month), freights, expenses)
	return &closure, nil
}

func (s *closureService) ExportClosureXLSX(ctx context.Context, userID string, year int, month time.Month) ([]byte, string, error) {
	closure, err := s.GetMonthlyClosure(ctx, userID, year, month)
	if err != nil {
		return nil, "", err
	}

	settings, err := s.settingsRepo.FindSettingsByOwner(ctx, userID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to load issuer settings for export")
		return nil, "", err
	}
	if settings == nil {
		settings = &domain.Settings{}
	}

	data, err := renderClosureSheet(closure, settings)
	if err != nil {
		s.LogError(ctx, err, "Failed to render closure spreadsheet")
		return nil, "", err
	}

	filename := fmt.Sprintf("fechamento_%04d-%02d.xlsx", year, int(month))
	s.LogInfo(ctx, "Closure spreadsheet exported",
		slog.String("filename", filename))
	return data, filename, nil
}

// renderClosureSheet lays the closure out as a printable statement: issuer
// header, period, the per-fund breakdown and totals. Amounts are formatted
// as BRL only here, at the final presentation step.
func renderClosureSheet(c *domain.MonthlyClosure, settings *domain.Settings) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Fechamento"
	f.SetSheetName(f.GetSheetName(0), sheet)

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	row := 1
	writeRow := func(cells ...interface{}) {
		for i, v := range cells {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		row++
	}
	writeBoldRow := func(cells ...interface{}) {
		start, _ := excelize.CoordinatesToCellName(1, row)
		end, _ := excelize.CoordinatesToCellName(len(cells), row)
		writeRow(cells...)
		_ = f.SetCellStyle(sheet, start, end, bold)
	}

	if settings.IssuerName != "" {
		writeBoldRow(settings.IssuerName)
	}
	if settings.IssuerDoc != "" {
		writeRow(settings.IssuerDoc)
	}
	if settings.IssuerPhone != "" {
		writeRow(settings.IssuerPhone)
	}
	row++

	writeBoldRow(fmt.Sprintf("Fechamento Mensal %02d/%04d", c.Month, c.Year))
	writeRow("Fretes no mes", c.FreightCount)
	writeRow("Despesas no mes", c.ExpenseCount)
	row++

	writeBoldRow("Fundo", "Bruto", "Despesas", "Saldo")
	writeRow("Empresa",
		utils.FormatBRL(c.TotalCompany),
		utils.FormatBRL(c.ExpensesBySource[domain.FundCompany]),
		utils.FormatBRL(c.NetCompany))
	writeRow("Motorista",
		utils.FormatBRL(c.TotalDriver),
		utils.FormatBRL(c.ExpensesBySource[domain.FundDriver]),
		utils.FormatBRL(c.NetDriver))
	writeRow("Reserva",
		utils.FormatBRL(c.TotalReserve),
		utils.FormatBRL(c.ExpensesBySource[domain.FundReserve]),
		utils.FormatBRL(c.NetReserve))
	row++

	writeBoldRow("Receita bruta", utils.FormatBRL(c.TotalIncome))
	writeBoldRow("Despesas totais", utils.FormatBRL(c.TotalExpenses))
	writeBoldRow("Lucro liquido", utils.FormatBRL(c.NetProfit))

	_ = f.SetColWidth(sheet, "A", "A", 22)
	_ = f.SetColWidth(sheet, "B", "D", 16)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
