package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfMargin       = 15.0 // mm
	pdfContentWidth = 210.0 - 2*pdfMargin
	pdfLineHeight   = 6.0
	pdfPlotHeight   = pdfContentWidth / 2
)

// WritePDF writes a one-page A4 summary: run parameters, the log-log plot and
// the result table. Tables longer than a page continue on following pages.
func WritePDF(w io.Writer, rep *Report) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(pdfContentWidth, 10, methodTitle(rep.Header.Method), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 10)
	for _, kv := range parameters(&rep.Header) {
		pdf.CellFormat(40, pdfLineHeight, kv[0]+":", "", 0, "L", false, 0, "")
		pdf.CellFormat(pdfContentWidth-40, pdfLineHeight, kv[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	opts := DefaultPlotOptions()
	opts.Title = methodTitle(rep.Header.Method)
	img, err := Plot(rep.Rows, opts)
	switch {
	case err == nil:
		pdf.RegisterImageReader("adev_plot", "PNG", bytes.NewReader(img))
		pdf.Image("adev_plot", pdfMargin, pdf.GetY(), pdfContentWidth, pdfPlotHeight, false, "PNG", 0, "")
		pdf.SetY(pdf.GetY() + pdfPlotHeight + 6)
	case errors.Is(err, ErrNothingToPlot):
		pdf.SetFont("Arial", "I", 10)
		pdf.CellFormat(pdfContentWidth, pdfLineHeight, "No rows to plot.", "", 1, "L", false, 0, "")
		pdf.Ln(4)
	default:
		return err
	}

	writeTable(pdf, rep)

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("report: failed to build PDF: %w", err)
	}
	return pdf.Output(w)
}

// parameters lists the label/value pairs of the PDF parameter block. Unset
// header fields are left out.
func parameters(h *Header) [][2]string {
	var out [][2]string
	for _, kv := range [][2]string{
		{"Input file", h.InputFile},
		{"Sample period", strconv.FormatFloat(h.SamplePeriod, 'g', -1, 64) + " s"},
		{"Data type", h.DataType},
		{"Tau mode", h.TauMode},
		{"Samples", strconv.Itoa(h.Samples)},
	} {
		if kv[1] != "" && kv[1] != "0" && kv[1] != "0 s" {
			out = append(out, kv)
		}
	}

	if s := h.Summary; s != nil && s.Samples > 0 {
		out = append(out,
			[2]string{"Duration", strconv.FormatFloat(s.Duration, 'g', -1, 64) + " s"},
			[2]string{"Mean", fmt.Sprintf("%.4e", s.Mean)},
			[2]string{"Std. deviation", fmt.Sprintf("%.4e", s.Std)},
			[2]string{"Min / Max", fmt.Sprintf("%.4e / %.4e", s.Min, s.Max)},
			[2]string{"Median", fmt.Sprintf("%.4e", s.Median)},
		)
	}
	return out
}

func writeTable(pdf *gofpdf.Fpdf, rep *Report) {
	headers := []string{"Tau (s)", "m", "Deviation", "Error", "N"}
	widths := []float64{40, 20, 50, 50, 20}

	header := func() {
		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(200, 200, 200)
		for i, h := range headers {
			pdf.CellFormat(widths[i], pdfLineHeight, h, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 9)
	}
	header()

	_, pageHeight := pdf.GetPageSize()
	for _, r := range rep.Rows {
		if pdf.GetY()+pdfLineHeight > pageHeight-pdfMargin {
			pdf.AddPage()
			header()
		}
		cells := []string{
			strconv.FormatFloat(r.Tau, 'g', 6, 64),
			strconv.Itoa(r.M),
			strconv.FormatFloat(r.Deviation, 'e', 4, 64),
			strconv.FormatFloat(r.Error, 'e', 4, 64),
			strconv.Itoa(r.N),
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], pdfLineHeight, c, "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

func methodTitle(method string) string {
	if method == "oadev" {
		return "Overlapped Allan Deviation"
	}
	return "Allan Deviation"
}
