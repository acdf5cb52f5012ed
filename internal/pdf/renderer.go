// Package pdf renders employment certificates with gofpdf. There is
// exactly one document shape, so rendering is a plain function over a
// Certificate value and a Layout, no renderer types to subclass or embed.
package pdf

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Certificate holds the per-document values printed into the body.
type Certificate struct {
	PersonName     string
	Identification string
	HireDate       time.Time
	Position       string
	ContractType   string
	Salary         float64
	City           string
	IssuedAt       time.Time
}

// Layout holds the fixed letterhead, watermark and signature content
// shared by every certificate the company issues.
type Layout struct {
	LogoPath      string
	ReferenceCode string
	CompanyName   string
	CompanyTaxID  string
	IssueCity     string
	SignName      string
	SignTitle     string
	SignPhone     string
}

// DefaultLayout returns the issuing company's letterhead.
func DefaultLayout(logoPath string) Layout {
	return Layout{
		LogoPath:      logoPath,
		ReferenceCode: "R-DTH-0932-24",
		CompanyName:   "EMPRESA S.A.S",
		CompanyTaxID:  "NIT 123456789-4",
		IssueCity:     "Bogotá D.C",
		SignName:      "DEIVER ANDRES ORDOSGOITIA VILLADIEGO",
		SignTitle:     "Representante legal",
		SignPhone:     "Tel. (601)1234567 EXT.4103-4101 Cel. 1234567890",
	}
}

var spanishMonths = [12]string{
	"ENERO", "FEBRERO", "MARZO", "ABRIL", "MAYO", "JUNIO",
	"JULIO", "AGOSTO", "SEPTIEMBRE", "OCTUBRE", "NOVIEMBRE", "DICIEMBRE",
}

// SpanishDate renders a date as "02 DE ENERO DE 2006".
func SpanishDate(t time.Time) string {
	return fmt.Sprintf("%02d DE %s DE %d", t.Day(), spanishMonths[t.Month()-1], t.Year())
}

// FormatMoney renders an amount with thousands separators and two
// decimals, e.g. 1234567.5 -> "1,234,567.50".
func FormatMoney(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	intPart, decPart, _ := strings.Cut(s, ".")

	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}

	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	out := b.String() + "." + decPart
	if neg {
		out = "-" + out
	}
	return out
}

// Render writes the certificate PDF to path. A missing letterhead image
// is logged and skipped; everything else is fatal.
func Render(cert Certificate, layout Layout, path string) error {
	doc := gofpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")

	logoAvailable := false
	if layout.LogoPath != "" {
		if _, err := os.Stat(layout.LogoPath); err != nil {
			log.Printf("certificate letterhead image unavailable: %v", err)
		} else {
			logoAvailable = true
		}
	}

	doc.SetHeaderFunc(func() {
		drawWatermark(doc, layout, logoAvailable)

		if logoAvailable {
			doc.ImageOptions(layout.LogoPath, 10, 8, 33, 0, false,
				gofpdf.ImageOptions{ReadDpi: true}, 0, "")
		}

		doc.SetTextColor(0, 0, 0)
		doc.SetFont("Arial", "", 12)
		doc.CellFormat(0, 10, layout.ReferenceCode, "", 1, "R", false, 0, "")
		doc.SetFont("Arial", "B", 14)
		doc.CellFormat(0, 10, tr(layout.CompanyName), "", 1, "C", false, 0, "")
		doc.SetFont("Arial", "", 12)
		doc.CellFormat(0, 10, tr(layout.CompanyTaxID), "", 1, "C", false, 0, "")
		doc.CellFormat(0, 10, "CERTIFICA", "", 1, "C", false, 0, "")
		doc.Ln(10)
	})

	doc.SetFooterFunc(func() {
		doc.SetY(-15)
		doc.SetFont("Arial", "I", 8)
		doc.SetTextColor(0, 0, 0)
		doc.CellFormat(0, 10, tr(fmt.Sprintf("Página %d", doc.PageNo())), "", 1, "C", false, 0, "")
	})

	doc.AddPage()

	doc.SetTextColor(0, 0, 0)
	doc.SetFont("Arial", "", 12)
	doc.MultiCell(0, 10, tr(bodyText(cert, layout)), "", "", false)

	doc.Ln(20)
	doc.CellFormat(0, 10, tr(layout.SignName), "", 1, "C", false, 0, "")
	doc.CellFormat(0, 10, tr(layout.SignTitle), "", 1, "C", false, 0, "")
	doc.CellFormat(0, 10, tr(layout.CompanyTaxID), "", 1, "C", false, 0, "")
	doc.CellFormat(0, 10, tr(layout.SignPhone), "", 1, "C", false, 0, "")

	return doc.OutputFileAndClose(path)
}

// drawWatermark paints a faded logo in the page center, or a diagonal
// CONFIDENCIAL banner when the image is not available.
func drawWatermark(doc *gofpdf.Fpdf, layout Layout, logoAvailable bool) {
	if logoAvailable {
		doc.ImageOptions(layout.LogoPath, 70, 120, 100, 100, false,
			gofpdf.ImageOptions{ReadDpi: true}, 0, "")
		return
	}

	doc.SetFont("Arial", "B", 50)
	doc.SetTextColor(220, 220, 220)
	doc.TransformBegin()
	doc.TransformRotate(45, 105, 148)
	doc.Text(45, 160, "CONFIDENCIAL")
	doc.TransformEnd()
	doc.SetTextColor(0, 0, 0)
}

func bodyText(cert Certificate, layout Layout) string {
	issueMonth := strings.ToLower(spanishMonths[cert.IssuedAt.Month()-1])

	var b strings.Builder
	fmt.Fprintf(&b, "Que el (la) señor(a) %s, identificado(a) con la cédula de Ciudadanía No %s, labora en esta compañía así:\n\n",
		strings.ToUpper(cert.PersonName), cert.Identification)
	fmt.Fprintf(&b, "FECHA DE INGRESO: %s\n", SpanishDate(cert.HireDate))
	fmt.Fprintf(&b, "CARGO DESEMPEÑADO: %s\n", strings.ToUpper(cert.Position))
	if cert.ContractType != "" {
		fmt.Fprintf(&b, "TIPO DE CONTRATO: %s\n", strings.ToUpper(cert.ContractType))
	}
	fmt.Fprintf(&b, "SALARIO BASICO: $ %s\n", FormatMoney(cert.Salary))
	if cert.City != "" {
		fmt.Fprintf(&b, "CIUDAD: %s\n", strings.ToUpper(cert.City))
	}
	fmt.Fprintf(&b, "Se expide la presente certificación a solicitud del interesado(a) en la ciudad de %s el %d de %s del año %d.\n\n",
		layout.IssueCity, cert.IssuedAt.Day(), issueMonth, cert.IssuedAt.Year())
	b.WriteString("Cordialmente,")
	return b.String()
}
