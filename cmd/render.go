package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spigell/career-compass/internal/ai"
	"github.com/spigell/career-compass/internal/dimension"
	"github.com/spigell/career-compass/internal/report"
)

type scoredOutput struct {
	Report    *report.Report `json:"report"`
	Summary   report.Summary `json:"summary"`
	Narrative *ai.Narrative  `json:"narrative,omitempty"`
}

func writeJSON(w io.Writer, r *report.Report, n *ai.Narrative) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(scoredOutput{Report: r, Summary: r.Summary(), Narrative: n})
}

func writeText(w io.Writer, r *report.Report, n *ai.Narrative, top int) error {
	if top <= 0 {
		top = 3
	}
	sum := r.Summary()

	fmt.Fprintf(w, "%s %s: %s\n", sum.Emoji, sum.Name, sum.Tagline)
	if sum.Secondary != "" {
		fmt.Fprintf(w, "   with a %s streak\n", sum.Secondary)
	}
	fmt.Fprintf(w, "   answered %d of %d questions (%s path)\n\n", r.Answered, r.Total, r.Tier)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "BASE\tSCORE")
	for _, d := range dimension.Base() {
		fmt.Fprintf(tw, "%s\t%d\n", dimension.Label(d), r.Scores.Get(d))
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "SECTOR\tFIT\tSTARS\tSTRENGTHS")
	for i, m := range r.Sectors {
		if i == top {
			break
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", m.Sector, m.FitScore, stars(m.Stars), strings.Join(m.TopStrengths, "; "))
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "#\tDEPARTMENT\tFIT\tREASONS")
	for i, d := range r.Departments {
		if i == top {
			break
		}
		fmt.Fprintf(tw, "%d\t%s %s\t%d\t%s\n", d.Rank, d.Emoji, d.Department, d.FitScore, strings.Join(d.TopReasons, "; "))
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "REGION\tFIT\tSCORE")
	for i, g := range r.Geographies {
		if i == top {
			break
		}
		fmt.Fprintf(tw, "%s %s\t%s\t%d\n", g.Flag, g.Region, g.Fit, g.FitScore)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(r.Geographies) > 0 {
		fmt.Fprintf(w, "\n%s\n", r.Geographies[0].Reason)
	}
	fmt.Fprintf(w, "EQ superpower: %s\n", sum.EQSuperpower)

	if n != nil {
		fmt.Fprintf(w, "\n%s\n\n%s\n", n.Headline, n.Body)
		for _, step := range n.NextSteps {
			fmt.Fprintf(w, "  - %s\n", step)
		}
	}
	return nil
}

func stars(n int) string {
	n = max(0, min(n, 5))
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}
