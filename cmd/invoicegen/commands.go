package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/smallbiznis/invoicegen/internal/invoice/calc"
	invoicedomain "github.com/smallbiznis/invoicegen/internal/invoice/domain"
	invoiceformat "github.com/smallbiznis/invoicegen/internal/invoice/format"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func inFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "in",
		Aliases:  []string{"i"},
		Usage:    "invoice JSON file, - for stdin",
		Required: true,
	}
}

func renderCommand() *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: "render an invoice document to HTML or PDF",
		Flags: []cli.Flag{
			inFlag(),
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "pdf", Usage: "html or pdf"},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output file, - for stdout; defaults to the generated filename"},
			&cli.StringFlag{Name: "template", Aliases: []string{"t"}, Usage: "override the document template"},
		},
		Action: func(c *cli.Context) error {
			d := depsFrom(c)
			doc, err := readDocument(c.String("in"), c.String("template"))
			if err != nil {
				return err
			}

			switch strings.ToLower(c.String("format")) {
			case "html":
				html, err := d.invoices.RenderHTML(ctxOf(c), doc)
				if err != nil {
					return err
				}
				out := c.String("out")
				if out == "" {
					out = strings.TrimSuffix(invoiceformat.Filename(doc.Company.Name, doc.InvoiceNumber, d.clock.Now()), ".pdf") + ".html"
				}
				return writeOutput(c, out, []byte(html))
			case "pdf":
				result, err := d.invoices.RenderPDF(ctxOf(c), doc)
				if err != nil {
					return err
				}
				out := c.String("out")
				if out == "" {
					out = result.Filename
				}
				if err := writeOutput(c, out, result.Bytes); err != nil {
					return err
				}
				d.log.Info("pdf written", zap.String("path", filepath.Clean(out)), zap.Int("pages", result.Pages))
				return nil
			default:
				return fmt.Errorf("unsupported format %q", c.String("format"))
			}
		},
	}
}

func templatesCommand() *cli.Command {
	return &cli.Command{
		Name:  "templates",
		Usage: "list the available visual templates",
		Action: func(c *cli.Context) error {
			w := tabwriter.NewWriter(c.App.Writer, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tLABEL\tPRIMARY\tDESCRIPTION")
			for _, style := range depsFrom(c).templates.Catalog() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", style.ID, style.Label, style.Palette.Primary, style.Description)
			}
			return w.Flush()
		},
	}
}

func sampleCommand() *cli.Command {
	return &cli.Command{
		Name:  "sample",
		Usage: "write the sample invoice document as JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: "-", Usage: "output file, - for stdout"},
		},
		Action: func(c *cli.Context) error {
			doc := invoicedomain.SampleInvoice(depsFrom(c).clock.Now())
			data, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return err
			}
			return writeOutput(c, c.String("out"), append(data, '\n'))
		},
	}
}

func totalsCommand() *cli.Command {
	return &cli.Command{
		Name:  "totals",
		Usage: "print subtotal, tax and total of an invoice document",
		Flags: []cli.Flag{
			inFlag(),
			&cli.BoolFlag{Name: "explain", Usage: "also print every line total"},
		},
		Action: func(c *cli.Context) error {
			doc, err := readDocument(c.String("in"), "")
			if err != nil {
				return err
			}
			totals := calc.ForDocument(doc)

			w := tabwriter.NewWriter(c.App.Writer, 0, 0, 2, ' ', tabwriter.AlignRight)
			if c.Bool("explain") {
				for _, item := range doc.LineItems {
					fmt.Fprintf(w, "%s\t%s x %s\t%s\t\n",
						item.Description,
						invoiceformat.Quantity(item.Quantity),
						invoiceformat.Currency(calc.FromFloat(item.UnitPrice)),
						invoiceformat.Currency(calc.LineTotal(item)),
					)
				}
				fmt.Fprintln(w, "\t\t\t")
			}
			fmt.Fprintf(w, "Subtotal\t\t%s\t\n", invoiceformat.Currency(totals.Subtotal))
			if doc.ApplyTax() {
				fmt.Fprintf(w, "%s\t\t%s\t\n", invoiceformat.TaxLabel(doc.TaxDetails), invoiceformat.Currency(totals.TaxAmount))
			}
			fmt.Fprintf(w, "Total\t\t%s\t\n", invoiceformat.Currency(totals.Total))
			return w.Flush()
		},
	}
}

func draftCommand() *cli.Command {
	return &cli.Command{
		Name:  "draft",
		Usage: "compose the email subject and body for an invoice",
		Flags: []cli.Flag{
			inFlag(),
			&cli.StringFlag{Name: "email-template", Aliases: []string{"e"}, Value: "professional"},
		},
		Action: func(c *cli.Context) error {
			doc, err := readDocument(c.String("in"), "")
			if err != nil {
				return err
			}
			draft, err := depsFrom(c).invoices.ComposeEmail(ctxOf(c), doc, c.String("email-template"))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(c.App.Writer, "Subject: %s\n\n%s\n", draft.Subject, draft.Body)
			return err
		},
	}
}

func sendCommand() *cli.Command {
	return &cli.Command{
		Name:  "send",
		Usage: "render an invoice as PDF and email it through the configured SMTP server",
		Flags: []cli.Flag{
			inFlag(),
			&cli.StringFlag{Name: "to", Usage: "recipient address; defaults to the client email"},
			&cli.StringFlag{Name: "email-template", Aliases: []string{"e"}, Value: "professional"},
		},
		Action: func(c *cli.Context) error {
			d := depsFrom(c)
			if !d.cfg.Email.Enabled() {
				return fmt.Errorf("smtp is not configured; set SMTP_HOST and SMTP_FROM")
			}
			doc, err := readDocument(c.String("in"), "")
			if err != nil {
				return err
			}
			export, err := d.invoices.ExportBase64(ctxOf(c), doc)
			if err != nil {
				return err
			}
			draft, err := d.invoices.ComposeEmail(ctxOf(c), doc, c.String("email-template"))
			if err != nil {
				return err
			}

			to := c.String("to")
			if to == "" {
				to = doc.Client.Email
			}
			result, err := d.invoices.SendInvoice(ctxOf(c), invoicedomain.SendRequest{
				RecipientEmail: to,
				PDFBase64:      export.DataURI,
				Subject:        draft.Subject,
				Body:           draft.Body,
				CompanyName:    doc.Company.Name,
				InvoiceNumber:  doc.InvoiceNumber,
			})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(c.App.Writer, "sent %s to %s (%s)\n", result.Filename, to, result.MessageID)
			return err
		},
	}
}
