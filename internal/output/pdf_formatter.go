package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/rpgo/drawdown-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// PDFFormatter renders an A4 report with a summary page and one table per scenario.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

const (
	pdfPageWidth    = 210.0
	pdfMarginLeft   = 15.0
	pdfMarginRight  = 15.0
	pdfMarginTop    = 15.0
	pdfMarginBottom = 20.0
	pdfContentWidth = pdfPageWidth - pdfMarginLeft - pdfMarginRight
)

// pdfText converts the UTF-8 pound sign to the Latin-1 byte the core fonts expect.
func pdfText(s string) string {
	s = strings.ReplaceAll(s, "£", "\xa3")
	return strings.ReplaceAll(s, "•", "-")
}

func pdfMoney(d decimal.Decimal) string {
	return pdfText(FormatCurrency(d))
}

type pdfReport struct {
	pdf     *fpdf.Fpdf
	results *domain.ScenarioComparison
}

func (p PDFFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	r := &pdfReport{pdf: fpdf.New("P", "mm", "A4", ""), results: results}
	r.pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	r.pdf.SetAutoPageBreak(true, pdfMarginBottom)
	r.pdf.SetCreationDate(results.Today)
	r.pdf.SetModificationDate(results.Today)

	r.addSummaryPage()
	for i := range results.Scenarios {
		r.addScenarioPage(i+1, &results.Scenarios[i])
	}

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *pdfReport) sectionHeader(title string) {
	r.pdf.SetFont("Arial", "B", 12)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(pdfContentWidth, 8, pdfText(title), "", 1, "L", false, 0, "")
	r.pdf.SetTextColor(50, 50, 50)
}

func (r *pdfReport) addSummaryPage() {
	r.pdf.AddPage()
	r.pdf.SetFont("Arial", "B", 22)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(pdfContentWidth, 14, "Pension Drawdown Projection", "", 1, "C", false, 0, "")
	if !r.results.Today.IsZero() {
		r.pdf.SetFont("Arial", "I", 10)
		r.pdf.CellFormat(pdfContentWidth, 6, "Projected from "+r.results.Today.Format("2 January 2006"), "", 1, "C", false, 0, "")
	}
	r.pdf.Ln(6)

	r.sectionHeader("Key Assumptions")
	r.pdf.SetFont("Arial", "", 9)
	for _, a := range assumptionsFor(r.results) {
		r.pdf.MultiCell(pdfContentWidth, 5, pdfText("- "+a), "", "L", false)
	}
	r.pdf.Ln(4)

	r.sectionHeader("Scenario Summary")
	widths := []float64{46, 30, 24, 30, 18, 32}
	headers := []string{"Scenario", "Pot at Retirement", "Lump Sum", "First Year", "Years", "Total Real Value"}
	r.tableHeader(widths, headers)
	r.pdf.SetFont("Arial", "", 8)
	for _, sc := range r.results.Scenarios {
		cells := []string{
			pdfText(sc.Name),
			pdfMoney(sc.PotAtRetirement),
			pdfMoney(sc.LumpSumTaken),
			pdfMoney(sc.FirstYearCombined),
			intToString(sc.PotLongevity),
			pdfMoney(sc.TotalRealValue),
		}
		r.tableRow(widths, cells, "L", false)
	}

	rec := AnalyzeScenarios(r.results)
	if rec.ScenarioName != "" {
		r.pdf.Ln(4)
		r.pdf.SetFillColor(245, 247, 250)
		r.pdf.SetFont("Arial", "B", 10)
		r.pdf.CellFormat(pdfContentWidth, 7, pdfText("Recommended: "+rec.ScenarioName), "1", 1, "L", true, 0, "")
		r.pdf.SetFont("Arial", "", 9)
		r.pdf.CellFormat(pdfContentWidth, 6, pdfText(fmt.Sprintf("Total real value %s (%s against %s)",
			FormatCurrency(rec.TotalRealValue), FormatPercentage(rec.PercentageChange), r.results.Scenarios[0].Name)), "LRB", 1, "L", true, 0, "")
	}
}

func (r *pdfReport) addScenarioPage(n int, sc *domain.ProjectionSummary) {
	r.pdf.AddPage()
	r.sectionHeader(fmt.Sprintf("Scenario %d: %s", n, sc.Name))
	r.pdf.SetFont("Arial", "", 9)
	facts := [][2]string{
		{"Retirement date", sc.Inputs.TargetRetirementDate.Format("2 January 2006")},
		{"Pot at retirement", pdfMoney(sc.PotAtRetirement)},
		{"Tax-free lump sum", pdfMoney(sc.LumpSumTaken)},
		{"Drawdown starting pot", pdfMoney(sc.StartingBalance)},
		{"Monthly drawdown goal", pdfMoney(sc.Inputs.MonthlyDrawdownGoal)},
		{"State pension from", fmt.Sprintf("%s (age %d)", sc.StatePensionDate.Format("2 January 2006"), sc.StatePensionAge)},
	}
	for _, f := range facts {
		r.pdf.CellFormat(50, 5, f[0]+":", "", 0, "L", false, 0, "")
		r.pdf.CellFormat(pdfContentWidth-50, 5, f[1], "", 1, "L", false, 0, "")
	}
	r.pdf.Ln(3)

	widths := []float64{16, 12, 32, 30, 30, 30, 30}
	headers := []string{"Year", "Age", "Remaining Pot", "Private", "State", "Combined", "Real Value"}
	r.tableHeader(widths, headers)
	r.pdf.SetFont("Arial", "", 8)
	for i, y := range sc.Years {
		if r.pdf.GetY() > 270 {
			r.pdf.AddPage()
			r.tableHeader(widths, headers)
			r.pdf.SetFont("Arial", "", 8)
		}
		cells := []string{
			intToString(y.Year),
			intToString(y.Age),
			pdfMoney(y.RemainingPot),
			pdfMoney(y.PrivatePensionPaid),
			pdfMoney(y.StatePensionPaid),
			pdfMoney(y.CombinedIncome),
			pdfMoney(y.RealValue),
		}
		r.tableRow(widths, cells, "R", i%2 == 1)
	}
}

func (r *pdfReport) tableHeader(widths []float64, headers []string) {
	r.pdf.SetFillColor(0, 51, 102)
	r.pdf.SetTextColor(255, 255, 255)
	r.pdf.SetFont("Arial", "B", 8)
	for i, h := range headers {
		r.pdf.CellFormat(widths[i], 6, h, "1", 0, "C", true, 0, "")
	}
	r.pdf.Ln(-1)
	r.pdf.SetTextColor(50, 50, 50)
}

// tableRow draws one row; the first cell uses firstAlign and the rest are right aligned.
func (r *pdfReport) tableRow(widths []float64, cells []string, firstAlign string, shaded bool) {
	r.pdf.SetFillColor(240, 248, 255)
	for i, c := range cells {
		align := "R"
		if i == 0 {
			align = firstAlign
		}
		r.pdf.CellFormat(widths[i], 5, c, "1", 0, align, shaded, 0, "")
	}
	r.pdf.Ln(-1)
}
