package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/pennyante/tablerules/rules"
)

// LimitsCmd renders the limits derived from a resolved rule set.
type LimitsCmd struct {
	Variant string `arg:"" default:"american" help:"Table variant (american or european)"`
	Config  string `short:"c" help:"Explicit rule document to load instead of the built-in default"`
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14"))

	ruleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))
)

func (c *LimitsCmd) Run() error {
	variant, err := rules.ParseVariant(c.Variant)
	if err != nil {
		return err
	}

	var opts []rules.Option
	if c.Config != "" {
		opts = append(opts, rules.WithDocumentFile(c.Config))
	}
	r, err := rules.Load(variant, opts...)
	if err != nil {
		return err
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("%s table", r.Variant())))
	fmt.Printf("table minimum %d, maximum %d, round cap %d, house edge %.2f%%\n\n",
		r.TableMinimum(), r.TableMaximum(), r.MaximumTotal(), r.HouseEdge())

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, headerStyle.Render("BET TYPE")+"\t"+headerStyle.Render("PAYS")+"\t"+headerStyle.Render("MIN")+"\t"+headerStyle.Render("MAX"))
	for _, bt := range r.AllowedTypes() {
		payout, err := r.PayoutRatio(bt)
		if err != nil {
			return err
		}
		minAmount, err := r.MinimumAmount(bt)
		if err != nil {
			return err
		}
		maxAmount, err := r.MaximumAmount(bt)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%d:1\t%d\t%d\n", typeStyle.Render(bt.String()), payout, minAmount, maxAmount)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	for _, name := range []string{"en_prison", "la_partage", "surrender", "allow_call_bets", "allow_neighbor_bets", "progressive_betting"} {
		fmt.Printf("%s: %v\n", ruleStyle.Render(name), r.RuleEnabled(name))
	}
	for _, name := range []string{"maximum_repeats", "maximum_parlay"} {
		fmt.Printf("%s: %d\n", ruleStyle.Render(name), r.RuleValue(name))
	}
	return nil
}
