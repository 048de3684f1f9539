package utils

import (
	"bytes"
	"context"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"meenakshitravels/models"
)

// GenerateQuotePDF renders the quotation template for a lead and prints it to
// PDF with headless Chrome.
func GenerateQuotePDF(lead *models.Lead, tariffs []*models.TariffItem, contact *models.ContactInfo, siteName string) ([]byte, error) {
	if lead == nil {
		return nil, nil
	}
	if contact == nil {
		contact = models.DefaultContactInfo()
	}

	phones := ""
	for _, p := range contact.Phones {
		phones += p.Number + "(" + p.Label + "), "
	}
	if len(phones) > 2 {
		phones = phones[:len(phones)-2]
	}

	date := "-"
	if !lead.SubmittedAt.IsZero() {
		date = lead.SubmittedAt.Format("02-Jan-2006")
	}

	tmpl, err := template.ParseFiles("templates/quote_template.html")
	if err != nil {
		return nil, err
	}

	data := models.QuotePDFData{
		SiteName: siteName,
		Contact:  contact,
		Lead:     lead,
		Tariffs:  tariffs,
		Phones:   phones,
		Date:     date,
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return nil, err
	}

	finalHTML := `
		<!DOCTYPE html>
		<html>
		<head>
		<meta charset="UTF-8">
		<style>
		@page {
			size: A4;
			margin: 20px;
		}
		body {
			font-family: Arial, Helvetica, sans-serif;
			font-size: 12px;
			margin: 0;
			padding: 0;
		}
		.quote-sheet {
			page-break-inside: avoid;
		}
		</style>
		</head>
		<body><div class='quote-sheet'>` + body.String() + `</div></body></html>`

	tmpDir := os.TempDir()
	tmpHTML := filepath.Join(tmpDir, "quote_"+time.Now().Format("20060102150405")+".html")
	if err := os.WriteFile(tmpHTML, []byte(finalHTML), 0644); err != nil {
		return nil, err
	}
	defer os.Remove(tmpHTML)

	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuf []byte
	fileURL := "file://" + tmpHTML

	err = chromedp.Run(ctx,
		chromedp.Navigate(fileURL),
		chromedp.Sleep(1*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).  // A4 width
				WithPaperHeight(11.7). // A4 height
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}

	return pdfBuf, nil
}
