package services

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	apperrors "finhealth/internal/errors"
	"finhealth/internal/models"
)

// Sheet names of the exported workbook, in tab order.
const (
	SheetSummary     = "Summary"
	SheetExpenses    = "Expenses"
	SheetAssets      = "Assets"
	SheetLiabilities = "Liabilities"
	SheetGoals       = "Goals"
	SheetDebtPlan    = "Debt Plan"
)

const exportDateLayout = "2006-01-02"

// exportService writes a user's records and health snapshot to XLSX.
type exportService struct {
	db     *gorm.DB
	health HealthServicer
}

// NewExportService creates a new ExportServicer.
func NewExportService(db *gorm.DB, health HealthServicer) ExportServicer {
	return &exportService{db: db, health: health}
}

type sheet struct {
	name   string
	header []interface{}
	rows   [][]interface{}
	widths []float64
}

// WriteWorkbook renders every record of the user plus the snapshot summary
// and the debt payoff schedule.
func (s *exportService) WriteWorkbook(userID string, w io.Writer) error {
	report, err := s.health.GetReport(userID)
	if err != nil {
		return err
	}
	dash, plan := report.Dashboard, report.DebtPlan
	expenses, err := allOwned[models.Expense](s.db, userID, "date DESC, id DESC")
	if err != nil {
		return err
	}

	h := dash.Health
	sheets := []sheet{
		{
			name:   SheetSummary,
			header: []interface{}{"Metric", "Value"},
			rows: [][]interface{}{
				{"Health Score", h.Score},
				{"Net Worth", h.NetWorth},
				{"Monthly Burn", h.MonthlyBurn},
				{"Surplus", h.Surplus},
				{"Recommended Investment", h.RecommendedInvestment},
				{"Savings Rate (%)", h.SavingsRate},
				{"Emergency Months", h.EmergencyMonths},
				{"Debt Ratio", h.DebtRatio},
				{"Debt Strategy", h.DebtStrategy.Strategy},
				{"Recommended Extra Payment", h.DebtStrategy.RecommendedExtraPayment},
				{"Debt Freedom", h.DebtStrategy.FreedomDate},
				{"Computed At", h.ComputedAt.UTC().Format("2006-01-02 15:04:05")},
			},
			widths: []float64{28, 18},
		},
		{
			name:   SheetExpenses,
			header: []interface{}{"Date", "Title", "Category", "Amount"},
			widths: []float64{12, 30, 15, 14},
		},
		{
			name:   SheetAssets,
			header: []interface{}{"Name", "Type", "Value", "Liquidity"},
			widths: []float64{30, 15, 14, 10},
		},
		{
			name:   SheetLiabilities,
			header: []interface{}{"Name", "Type", "Outstanding", "Interest (%)", "Monthly Payment"},
			widths: []float64{30, 15, 14, 12, 16},
		},
		{
			name:   SheetGoals,
			header: []interface{}{"Name", "Target", "Saved", "Target Date", "Priority", "Required Monthly", "Months Left", "Status"},
			widths: []float64{30, 14, 14, 12, 10, 16, 12, 12},
		},
		{
			name:   SheetDebtPlan,
			header: []interface{}{"Month", "Interest", "Paid", "Balance"},
			widths: []float64{8, 14, 14, 14},
		},
	}

	for _, e := range expenses {
		sheets[1].rows = append(sheets[1].rows, []interface{}{e.Date.Format(exportDateLayout), e.Title, string(e.Category), e.Amount})
	}
	for _, a := range dash.Lists.Assets {
		sheets[2].rows = append(sheets[2].rows, []interface{}{a.Name, string(a.Type), a.Value, a.LiquidityScore})
	}
	for _, l := range dash.Lists.Liabilities {
		sheets[3].rows = append(sheets[3].rows, []interface{}{l.Name, string(l.Type), l.OutstandingAmount, l.InterestRate, l.MonthlyPayment})
	}
	for _, g := range dash.Lists.Goals {
		sheets[4].rows = append(sheets[4].rows, []interface{}{
			g.Name, g.TargetAmount, g.SavedAmount, g.TargetDate.Format(exportDateLayout),
			string(g.Priority), g.RequiredMonthly, g.MonthsLeft, string(g.Status),
		})
	}
	for _, m := range plan.Schedule {
		sheets[5].rows = append(sheets[5].rows, []interface{}{m.Month, m.Interest.InexactFloat64(), m.Paid.InexactFloat64(), m.Balance.InexactFloat64()})
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, sh := range sheets {
		if err := writeSheet(f, i, sh); err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func writeSheet(f *excelize.File, index int, sh sheet) error {
	if index == 0 {
		if err := f.SetSheetName("Sheet1", sh.name); err != nil {
			return err
		}
	} else if _, err := f.NewSheet(sh.name); err != nil {
		return err
	}

	if err := f.SetSheetRow(sh.name, "A1", &sh.header); err != nil {
		return err
	}
	for i, row := range sh.rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sh.name, cell, &row); err != nil {
			return err
		}
	}
	for i, width := range sh.widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sh.name, col, col, width); err != nil {
			return fmt.Errorf("sheet %s: %w", sh.name, err)
		}
	}
	return nil
}
