// Package document renders printable proposal documents as PDF.
package document

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/inkprofit/backend/internal/application/adapter"
	"github.com/inkprofit/backend/internal/domain/entity"
	"github.com/inkprofit/backend/internal/domain/valueobject"
)

const (
	defaultFontFamily = "Helvetica"
	pageMargin        = 20.0
	footerText        = "Gerado via InkProfit - Gestão Inteligente para Tatuadores"
)

// PDFRenderer implements adapter.DocumentRenderer with go-pdf/fpdf on A4 pages.
type PDFRenderer struct {
	fontFamily string
	compress   bool
}

// NewPDFRenderer creates a renderer using one of the core PDF fonts.
func NewPDFRenderer(fontFamily string) *PDFRenderer {
	if fontFamily == "" {
		fontFamily = defaultFontFamily
	}
	return &PDFRenderer{
		fontFamily: fontFamily,
		compress:   true,
	}
}

// ContentType returns the MIME type of rendered documents.
func (r *PDFRenderer) ContentType() string {
	return "application/pdf"
}

// Render builds the document for the requested type.
func (r *PDFRenderer) Render(_ context.Context, input adapter.RenderDocumentInput) ([]byte, error) {
	if input.Proposal == nil {
		return nil, fmt.Errorf("pdf: proposal is required")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(r.compress)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.SetTitle(input.Type.Title()+" - "+input.Proposal.ClientName, true)
	pdf.AddPage()

	w := &writer{
		pdf:    pdf,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
		font:   r.fontFamily,
		width:  pageWidth(pdf),
		studio: input.Studio,
	}

	w.header()
	w.title(input.Type.Title())

	switch input.Type {
	case entity.DocumentTypeContract:
		w.contract(input.Proposal)
	case entity.DocumentTypeAnamnesis:
		w.anamnesis(input.Proposal, input.IssuedAt.Format("02/01/2006"))
	case entity.DocumentTypeAftercare:
		w.aftercare()
	default:
		return nil, fmt.Errorf("pdf: unsupported document type %q", input.Type)
	}

	w.signatures(input.Proposal.ClientName)
	w.footer()

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: write document: %w", err)
	}
	return buf.Bytes(), nil
}

type writer struct {
	pdf    *fpdf.Fpdf
	tr     func(string) string
	font   string
	width  float64
	studio entity.StudioProfile
}

func pageWidth(pdf *fpdf.Fpdf) float64 {
	w, _ := pdf.GetPageSize()
	return w - 2*pageMargin
}

func (w *writer) header() {
	if !w.logo() {
		w.pdf.SetFont(w.font, "B", 20)
		w.pdf.CellFormat(w.width, 10, w.tr(strings.ToUpper(w.studio.Name)), "", 1, "C", false, 0, "")
	}

	w.pdf.SetFont(w.font, "", 9)
	w.pdf.SetTextColor(85, 85, 85)
	w.pdf.CellFormat(w.width, 5, w.tr(joinNonEmpty(" • ", w.studio.Address, w.studio.Phone)), "", 1, "C", false, 0, "")
	w.pdf.CellFormat(w.width, 5, w.tr(joinNonEmpty(" • ", w.studio.Email, "CNPJ/CPF: "+w.studio.Document)), "", 1, "C", false, 0, "")
	w.pdf.SetTextColor(26, 26, 26)

	w.pdf.Ln(3)
	w.pdf.SetLineWidth(0.6)
	w.rule()
	w.pdf.SetLineWidth(0.2)
	w.pdf.Ln(10)
}

// logo draws the studio logo from its data URL. It reports false when there is none or it cannot be decoded.
func (w *writer) logo() bool {
	if w.studio.LogoURL == "" {
		return false
	}

	imageType, data, ok := decodeDataURL(w.studio.LogoURL)
	if !ok {
		return false
	}

	info := w.pdf.RegisterImageOptionsReader("logo", fpdf.ImageOptions{ImageType: imageType}, bytes.NewReader(data))
	if w.pdf.Err() || info == nil {
		w.pdf.ClearError()
		return false
	}

	const height = 20.0
	width := info.Width() * height / info.Height()
	x := pageMargin + (w.width-width)/2
	w.pdf.ImageOptions("logo", x, w.pdf.GetY(), width, height, false, fpdf.ImageOptions{ImageType: imageType}, 0, "")
	w.pdf.Ln(height + 2)
	return true
}

func (w *writer) title(text string) {
	w.pdf.SetFont(w.font, "B", 16)
	w.pdf.CellFormat(w.width, 10, w.tr(strings.ToUpper(text)), "", 1, "C", false, 0, "")
	w.pdf.Ln(6)
}

func (w *writer) section(text string) {
	w.pdf.Ln(4)
	w.pdf.SetFont(w.font, "B", 12)
	w.pdf.CellFormat(w.width, 7, w.tr(strings.ToUpper(text)), "B", 1, "L", false, 0, "")
	w.pdf.Ln(2)
}

func (w *writer) subsection(text string) {
	w.pdf.Ln(2)
	w.pdf.SetFont(w.font, "B", 10)
	w.pdf.CellFormat(w.width, 6, w.tr(strings.ToUpper(text)), "", 1, "L", false, 0, "")
}

func (w *writer) paragraph(text string) {
	w.pdf.SetFont(w.font, "", 11)
	w.pdf.MultiCell(w.width, 6, w.tr(text), "", "J", false)
	w.pdf.Ln(2)
}

func (w *writer) field(label, value string) {
	labelWidth := w.width * 0.4
	w.pdf.SetFont(w.font, "B", 11)
	w.pdf.CellFormat(labelWidth, 7, w.tr(label), "B", 0, "L", false, 0, "")
	w.pdf.SetFont(w.font, "", 11)
	w.pdf.CellFormat(w.width-labelWidth, 7, w.tr(value), "B", 1, "R", false, 0, "")
}

func (w *writer) bullet(text string) {
	w.pdf.SetFont(w.font, "", 11)
	w.pdf.CellFormat(6, 6, w.tr("•"), "", 0, "L", false, 0, "")
	w.pdf.MultiCell(w.width-6, 6, w.tr(text), "", "L", false)
}

func (w *writer) rule() {
	y := w.pdf.GetY()
	w.pdf.Line(pageMargin, y, pageMargin+w.width, y)
}

func (w *writer) contract(p *entity.SavedProject) {
	w.paragraph(fmt.Sprintf(
		"Pelo presente instrumento particular, de um lado %s, doravante denominado TATUADOR(A), e de outro lado %s, doravante denominado CLIENTE.",
		w.studio.OwnerName, p.ClientName,
	))

	w.section("1. Do Serviço Contratado")
	w.field("Estilo:", string(p.Style))
	w.field("Local do Corpo:", p.BodyPart)
	w.field("Dimensões:", formatCm(p.WidthCm)+"cm x "+formatCm(p.HeightCm)+"cm")
	w.field("Sessões Estimadas:", strconv.Itoa(p.Sessions))

	w.section("2. Do Investimento")
	w.paragraph("O valor total acordado para a realização do projeto é de " + valueobject.NewMoney(p.FinalPrice).String() + ".")

	w.section("3. Termos e Condições")
	w.paragraph("O CLIENTE declara estar ciente de que a tatuagem é um processo irreversível e que o resultado final depende também dos cuidados pós-procedimento.")
	w.paragraph("O CLIENTE autoriza o uso de imagem da tatuagem realizada para fins de portfólio e divulgação do TATUADOR(A).")
}

func (w *writer) anamnesis(p *entity.SavedProject, date string) {
	w.field("Cliente:", p.ClientName)
	w.field("Data:", date)

	w.section("Questionário de Saúde Obrigatório")
	w.paragraph("Para sua segurança, responda com sinceridade:")
	for _, line := range []string{
		"( ) Diabetes    ( ) Hipertensão    ( ) Hemofilia",
		"( ) Hepatite    ( ) HIV+    ( ) Epilepsia",
		"( ) Problemas Cardíacos    ( ) Uso de Anticoagulantes",
		"( ) Alergias (tintas, látex, medicamentos): ______________________",
		"( ) Doenças de Pele (Psoríase, Vitiligo): ______________________",
		"( ) Está grávida ou amamentando? ______________________",
	} {
		w.pdf.SetFont(w.font, "", 11)
		w.pdf.CellFormat(w.width, 9, w.tr(line), "", 1, "L", false, 0, "")
	}

	w.section("Termo de Responsabilidade")
	w.paragraph("Declaro que as informações acima são verdadeiras. Isento o profissional de responsabilidades decorrentes de informações omitidas sobre minha saúde.")
}

func (w *writer) aftercare() {
	w.section("Guia de Cuidados Pós-Tatuagem")
	w.paragraph("A qualidade da sua tatuagem depende 50% do tatuador e 50% da sua cicatrização. Siga rigorosamente:")

	w.subsection("Limpeza")
	w.paragraph("Lave o local 3x ao dia com sabonete neutro e água fria/morna. Não use buchas. Seque com papel toalha (não esfregue).")

	w.subsection("Hidratação")
	w.paragraph("Após lavar, aplique uma camada fina da pomada recomendada. O excesso de pomada prejudica a cicatrização.")

	w.subsection("Proibições (30 Dias)")
	w.bullet("Não tomar sol na região.")
	w.bullet("Não entrar em mar, piscina, sauna ou banheira.")
	w.bullet("Não coçar ou arrancar as casquinhas.")
	w.bullet("Evitar alimentos remosos (porco, frutos do mar, chocolate, ovo).")
}

func (w *writer) signatures(clientName string) {
	w.pdf.Ln(25)
	gap := 15.0
	col := (w.width - gap) / 2
	y := w.pdf.GetY()

	w.pdf.Line(pageMargin, y, pageMargin+col, y)
	w.pdf.Line(pageMargin+col+gap, y, pageMargin+w.width, y)
	w.pdf.Ln(2)

	w.pdf.SetFont(w.font, "B", 10)
	w.pdf.CellFormat(col, 5, w.tr(w.studio.OwnerName), "", 0, "C", false, 0, "")
	w.pdf.CellFormat(gap, 5, "", "", 0, "C", false, 0, "")
	w.pdf.CellFormat(col, 5, w.tr(clientName), "", 1, "C", false, 0, "")

	w.pdf.SetFont(w.font, "", 9)
	w.pdf.CellFormat(col, 5, w.tr("Tatuador(a)"), "", 0, "C", false, 0, "")
	w.pdf.CellFormat(gap, 5, "", "", 0, "C", false, 0, "")
	w.pdf.CellFormat(col, 5, "Cliente", "", 1, "C", false, 0, "")
}

func (w *writer) footer() {
	w.pdf.Ln(15)
	w.pdf.SetFont(w.font, "I", 8)
	w.pdf.SetTextColor(153, 153, 153)
	w.pdf.CellFormat(w.width, 4, w.tr(footerText), "", 1, "C", false, 0, "")
}

// decodeDataURL splits "data:image/png;base64,..." into an fpdf image type and bytes.
func decodeDataURL(dataURL string) (string, []byte, bool) {
	meta, payload, ok := strings.Cut(strings.TrimPrefix(dataURL, "data:"), ",")
	if !ok || !strings.HasSuffix(meta, ";base64") {
		return "", nil, false
	}

	var imageType string
	switch strings.TrimSuffix(meta, ";base64") {
	case "image/png":
		imageType = "PNG"
	case "image/jpeg", "image/jpg":
		imageType = "JPG"
	case "image/gif":
		imageType = "GIF"
	default:
		return "", nil, false
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, false
	}
	return imageType, data, true
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" && strings.TrimSpace(p) != "CNPJ/CPF:" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

func formatCm(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var _ adapter.DocumentRenderer = (*PDFRenderer)(nil)
