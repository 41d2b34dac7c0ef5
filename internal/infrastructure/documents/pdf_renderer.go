package documents

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"dekora_studio/internal/domain/entities"
	"dekora_studio/internal/usecase/interfaces"

	"github.com/jung-kurt/gofpdf"
)

const placeholder = "N/A"

// PDFRenderer renders an estimate record into a shareable PDF.
//
// Rendering never fails on missing business data: absent customer or
// branding fields fall back to placeholders so a half-complete record still
// produces a usable artifact for staff follow-up. Only lines included in the
// total are printed as amounts; excluded terms are listed separately with
// their notes so staff can see what the quote left out.
type PDFRenderer struct{}

var _ interfaces.IDocumentRenderer = (*PDFRenderer)(nil)

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

func (r *PDFRenderer) RenderEstimate(record entities.EstimateRecord, branding entities.TenantBranding) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Estimate %s", record.ID), false)
	if !record.CreatedAt.IsZero() {
		// Pinning the creation date keeps regenerated documents byte-identical.
		pdf.SetCreationDate(record.CreatedAt)
	}
	pdf.AddPage()

	// Letterhead.
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, orPlaceholder(branding.CompanyName), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(90, 90, 90)
	for _, line := range []string{branding.Address, branding.Phone, branding.Email} {
		if line != "" {
			pdf.CellFormat(0, 4.5, line, "", 1, "L", false, 0, "")
		}
	}
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)

	// Client block.
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, "Interior Design Estimate", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, fmt.Sprintf("Client: %s", orPlaceholder(record.Customer.Name)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("Phone: %s    Email: %s", orPlaceholder(record.Customer.Phone), orPlaceholder(record.Customer.Email)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("City: %s", orPlaceholder(record.Customer.City)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("Date: %s", formatDate(record.CreatedAt)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	symbol := branding.CurrencySymbol
	if symbol == "" {
		symbol = "Rs."
	}

	// Line items.
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(235, 235, 235)
	pdf.CellFormat(130, 7, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(50, 7, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	var excluded []entities.LineItem
	for _, line := range record.Breakdown {
		if !line.Included {
			excluded = append(excluded, line)
			continue
		}
		pdf.CellFormat(130, 6.5, line.Label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 6.5, formatAmount(symbol, line.Amount), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(130, 8, "Total", "1", 0, "L", true, 0, "")
	pdf.CellFormat(50, 8, formatAmount(symbol, record.TotalAmount), "1", 1, "R", true, 0, "")

	if len(excluded) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 4.5, "Not included in this estimate:", "", 1, "L", false, 0, "")
		for _, line := range excluded {
			pdf.CellFormat(0, 4, fmt.Sprintf("- %s (%s)", line.Label, line.Note), "", 1, "L", false, 0, "")
		}
		pdf.SetTextColor(0, 0, 0)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func orPlaceholder(v string) string {
	if strings.TrimSpace(v) == "" {
		return placeholder
	}
	return v
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return placeholder
	}
	return t.Format("02 Jan 2006")
}

// formatAmount renders a whole-unit amount with thousands separators,
// e.g. "Rs. 675,000".
func formatAmount(symbol string, v float64) string {
	negative := v < 0
	if negative {
		v = -v
	}
	digits := fmt.Sprintf("%.0f", v)

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}

	out := b.String()
	if negative {
		out = "-" + out
	}
	return symbol + " " + out
}
