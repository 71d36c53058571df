package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/finbook"
	md "github.com/nao1215/markdown"
)

// InvestmentsMarkdown renders the list of investments as a markdown table.
func InvestmentsMarkdown(investments []finbook.Investment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Investments\n\n")
	if len(investments) == 0 {
		fmt.Fprintln(&b, "No investments.")
		return b.String()
	}

	fmt.Fprintln(&b, "| ID | Name | Type | Invested | Current | Gain | Return | Valued On |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|---:|---:|:---|")
	for _, inv := range investments {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
			inv.ID.Short(),
			inv.Name,
			inv.Type,
			inv.Initial,
			inv.Current,
			inv.Gain().SignedString(),
			perf(inv.GainPercent()),
			inv.ValuedOn,
		)
	}
	return b.String()
}

// PortfolioMarkdown renders the portfolio valuation to a markdown string.
func PortfolioMarkdown(r *finbook.PortfolioReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio")
	if r.Count == 0 {
		doc.PlainText("No investments.")
		return doc.String()
	}

	doc.CustomTable(md.TableSet{
		Header: []string{"Invested", "Current", "Gain", "Return", "Positions"},
		Rows: [][]string{{
			r.TotalInvested.String(),
			r.TotalCurrent.String(),
			r.TotalGain.SignedString(),
			perf(r.GainPercent),
			fmt.Sprintf("%d", r.Count),
		}},
	}, md.TableOptions{AutoWrapText: true, AutoFormatHeaders: false})

	if len(r.ByType) > 1 {
		doc.H2("By Type")
		rows := make([][]string, 0, len(r.ByType))
		for _, t := range r.ByType {
			rows = append(rows, []string{
				string(t.Type),
				t.Invested.String(),
				t.Current.String(),
				t.Gain.SignedString(),
				fmt.Sprintf("%d", t.Count),
			})
		}
		doc.CustomTable(md.TableSet{
			Header: []string{"Type", "Invested", "Current", "Gain", "Positions"},
			Rows:   rows,
		}, md.TableOptions{AutoWrapText: true, AutoFormatHeaders: false})
	}

	doc.H2("Positions by Return")
	rows := make([][]string, 0, len(r.Performers))
	for _, inv := range r.Performers {
		rows = append(rows, []string{
			inv.Name,
			inv.Current.String(),
			inv.Gain().SignedString(),
			perf(inv.GainPercent()),
		})
	}
	doc.CustomTable(md.TableSet{
		Header: []string{"Name", "Current", "Gain", "Return"},
		Rows:   rows,
	}, md.TableOptions{AutoWrapText: true, AutoFormatHeaders: false})

	return doc.String()
}

// PerformanceMarkdown renders the detailed performance of one position.
func PerformanceMarkdown(p finbook.InvestmentPerformance) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	inv := p.Investment
	doc.H1(fmt.Sprintf("Performance of %q (%s)", inv.Name, inv.Type))

	annualized := "n/a"
	if p.HasRate {
		annualized = perf(p.Annualized)
	}
	doc.CustomTable(md.TableSet{
		Header: []string{"Purchased", "Invested", "Current", "Gain", "Return", "Held", "Annualized"},
		Rows: [][]string{{
			inv.PurchaseDate.String(),
			inv.Initial.String(),
			inv.Current.String(),
			p.Gain.SignedString(),
			perf(p.GainPercent),
			fmt.Sprintf("%d days", p.HoldingDays),
			annualized,
		}},
	}, md.TableOptions{AutoWrapText: true, AutoFormatHeaders: false})
	if !inv.Shares.IsZero() {
		doc.PlainText(fmt.Sprintf("%s shares, valued on %s.", inv.Shares, inv.ValuedOn))
	} else {
		doc.PlainText(fmt.Sprintf("Valued on %s.", inv.ValuedOn))
	}

	return doc.String()
}
