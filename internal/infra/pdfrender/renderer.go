// Package pdfrender turns invoice views into printable PDF documents.
package pdfrender

import (
	"bytes"
	"fmt"

	"gemstore/internal/domain/address"
	"gemstore/internal/pkg/errs"
	"gemstore/internal/usecase/queries"

	"github.com/go-pdf/fpdf"
)

const dateLayout = "2006-01-02"

type InvoiceRenderer struct {
	brandName string
}

var _ queries.DocumentRenderer = (*InvoiceRenderer)(nil)

func NewInvoiceRenderer(brandName string) *InvoiceRenderer {
	return &InvoiceRenderer{brandName: brandName}
}

func (r *InvoiceRenderer) Render(view *queries.InvoiceView) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, r.brandName)
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 6, "Invoice "+view.Number)
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(60, 5, "Issue date: "+view.IssueDate.Format(dateLayout))
	pdf.Ln(5)
	pdf.Cell(60, 5, "Order date: "+view.OrderDate.Format(dateLayout))
	pdf.Ln(5)
	pdf.Cell(60, 5, "Order number: "+view.OrderNumber)
	pdf.Ln(10)

	r.addressBlock(pdf, "Billing address", view.BillingAddress)
	r.addressBlock(pdf, "Shipping address", view.ShippingAddress)
	pdf.Ln(4)

	r.lineTable(pdf, view)

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(150, 6, "Total without tax", "", 0, "R", false, 0, "")
	pdf.CellFormat(30, 6, formatEuro(view.TotalWithoutTaxCents), "", 1, "R", false, 0, "")
	pdf.CellFormat(150, 6, fmt.Sprintf("VAT (%s)", view.Tax), "", 0, "R", false, 0, "")
	pdf.CellFormat(30, 6, formatEuro(view.TotalCents-view.TotalWithoutTaxCents), "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(150, 7, "Total", "T", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, formatEuro(view.TotalCents), "T", 1, "R", false, 0, "")

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 5, "Payment method: "+view.Payment)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errs.Wrap(err, "failed to render invoice pdf")
	}

	return buf.Bytes(), nil
}

func (r *InvoiceRenderer) addressBlock(pdf *fpdf.Fpdf, title string, a address.Address) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(0, 5, title)
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range []string{a.Name, a.Street, a.PostalCode + " " + a.City, a.Country} {
		pdf.Cell(0, 5, line)
		pdf.Ln(5)
	}
	pdf.Ln(2)
}

func (r *InvoiceRenderer) lineTable(pdf *fpdf.Fpdf, view *queries.InvoiceView) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(35, 6, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(85, 6, "Name", "B", 0, "L", false, 0, "")
	pdf.CellFormat(20, 6, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(40, 6, "Price", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, l := range view.Lines {
		pdf.CellFormat(35, 6, l.ItemNumber, "", 0, "L", false, 0, "")
		pdf.CellFormat(85, 6, l.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("%d", l.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, formatEuro(l.UnitPriceCents), "", 1, "R", false, 0, "")
	}
}

func formatEuro(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d EUR", sign, cents/100, cents%100)
}
