package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/baltaguilar-tech/ai-governance-tool/internal/domain"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/ports"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/questionbank"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/services/assessments"
)

// submission is the file format read by score and complete.
type submission struct {
	Profile   domain.OrganizationProfile `json:"profile"`
	Responses []domain.Response          `json:"responses"`
	Tier      domain.LicenseTier         `json:"tier"`
}

// readSubmission accepts YAML or JSON. YAML is decoded generically and
// re-encoded so the json field names apply to both formats.
func readSubmission(path string, licensed bool) (ports.EvaluateRequest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ports.EvaluateRequest{}, err
	}
	var generic any
	if err := yaml.Unmarshal(raw, &generic); err != nil {
		return ports.EvaluateRequest{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	asJSON, err := json.Marshal(generic)
	if err != nil {
		return ports.EvaluateRequest{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	var s submission
	if err := json.Unmarshal(asJSON, &s); err != nil {
		return ports.EvaluateRequest{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if s.Tier == "" {
		s.Tier = domain.TierFromLicense(licensed)
	}
	return ports.EvaluateRequest{Profile: s.Profile, Responses: s.Responses, Tier: s.Tier}, nil
}

func shortLabel(k domain.DimensionKey) string {
	if d, ok := domain.LookupDimension(k); ok {
		return d.ShortLabel
	}
	return string(k)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *app) questionsCmd() *cobra.Command {
	var maturity string
	var regions []string
	cmd := &cobra.Command{
		Use:   "questions",
		Short: "List the questions selected for a maturity level and regions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rs := make([]domain.Region, 0, len(regions))
			for _, r := range regions {
				rs = append(rs, domain.Region(r))
			}
			qs := questionbank.Default().Select(domain.ParseMaturity(maturity), rs)
			out := cmd.OutOrStdout()
			if a.jsonOut {
				return printJSON(out, qs)
			}
			for _, q := range qs {
				fmt.Fprintf(out, "%-16s %-14s %s\n", q.ID, shortLabel(q.Dimension), q.Text)
				for _, o := range q.Options {
					fmt.Fprintf(out, "%20d  %s\n", o.Value, o.Label)
				}
			}
			fmt.Fprintf(out, "%d questions\n", len(qs))
			return nil
		},
	}
	cmd.Flags().StringVar(&maturity, "maturity", string(domain.Experimenter), "maturity level")
	cmd.Flags().StringSliceVar(&regions, "region", nil, "operating region (repeatable)")
	return cmd
}

func (a *app) scoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score FILE",
		Short: "Score a submission without saving it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := readSubmission(args[0], a.licensed)
			if err != nil {
				return err
			}
			svc := assessments.New(questionbank.Default(), nil, nil, nil, a.log)
			report, err := svc.Evaluate(cmd.Context(), req)
			if err != nil {
				return err
			}
			if a.jsonOut {
				return printJSON(cmd.OutOrStdout(), report)
			}
			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}
}

func (a *app) completeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete FILE",
		Short: "Score a submission and record it in the history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := readSubmission(args[0], a.licensed)
			if err != nil {
				return err
			}
			if err := a.open(cmd); err != nil {
				return err
			}
			// a fresh assessment answers the check-in
			a.session.DismissPrompt()
			snap, report, err := a.assess.Complete(cmd.Context(), req)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if a.jsonOut {
				return printJSON(out, map[string]any{"assessment": snap, "report": report})
			}
			printReport(out, report)
			fmt.Fprintf(out, "\nSaved assessment %s for %s\n", snap.ID, snap.OrgKey)
			return nil
		},
	}
}

func (a *app) historyCmd() *cobra.Command {
	var org string
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List completed assessments for an organization, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.open(cmd); err != nil {
				return err
			}
			a.checkIn(cmd, org)
			snaps, err := a.history.List(cmd.Context(), org, limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if a.jsonOut {
				return printJSON(out, snaps)
			}
			for _, s := range snaps {
				fmt.Fprintf(out, "%s  %s  %3d  %s\n", s.ID, s.CompletedAt.Format("2006-01-02"), s.OverallScore, s.RiskLevel)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&org, "org", "", "organization key (registrable domain or lowercased name)")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum entries, 0 for all")
	_ = cmd.MarkFlagRequired("org")
	return cmd
}

func (a *app) trendCmd() *cobra.Command {
	var org string
	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Compare the two most recent assessments of an organization",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.open(cmd); err != nil {
				return err
			}
			a.checkIn(cmd, org)
			t, err := a.history.Trend(cmd.Context(), org)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if a.jsonOut {
				return printJSON(out, t)
			}
			if t.Previous == nil {
				fmt.Fprintf(out, "Only one assessment on record (overall %d)\n", t.Current.OverallScore)
				return nil
			}
			fmt.Fprintf(out, "Overall %d -> %d (%+d)\n", t.Previous.OverallScore, t.Current.OverallScore, t.Overall)
			for _, d := range domain.Dimensions {
				fmt.Fprintf(out, "  %-22s %+d\n", d.Key.Label(), t.Dimensions[d.Key])
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&org, "org", "", "organization key")
	_ = cmd.MarkFlagRequired("org")
	return cmd
}

func (a *app) mitigationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mitigations",
		Short: "Track remediation items for an assessment",
	}

	list := &cobra.Command{
		Use:   "list ASSESSMENT_ID",
		Short: "List remediation items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(cmd); err != nil {
				return err
			}
			if _, err := a.history.Get(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("assessment %s: %w", args[0], err)
			}
			items, err := a.mitigator.List(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if a.jsonOut {
				return printJSON(out, items)
			}
			for _, it := range items {
				fmt.Fprintf(out, "%4d  %-12s %s\n", it.ID, it.Status, it.Title)
			}
			return nil
		},
	}

	var description string
	add := &cobra.Command{
		Use:   "add ASSESSMENT_ID TITLE",
		Short: "Add a custom remediation item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(cmd); err != nil {
				return err
			}
			var desc *string
			if strings.TrimSpace(description) != "" {
				desc = &description
			}
			it, err := a.mitigator.AddCustom(cmd.Context(), args[0], args[1], desc)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added item %d\n", it.ID)
			return nil
		},
	}
	add.Flags().StringVar(&description, "description", "", "optional description")

	var notes string
	set := &cobra.Command{
		Use:   "set ITEM_ID STATUS",
		Short: "Update an item's status (not_started, in_progress, complete)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("item id %q: %w", args[0], err)
			}
			if err := a.open(cmd); err != nil {
				return err
			}
			var n *string
			if cmd.Flags().Changed("notes") {
				n = &notes
			}
			it, err := a.mitigator.UpdateStatus(cmd.Context(), id, domain.MitigationStatus(args[1]), n)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Item %d is now %s\n", it.ID, it.Status)
			return nil
		},
	}
	set.Flags().StringVar(&notes, "notes", "", "progress notes; empty keeps the existing notes")

	rm := &cobra.Command{
		Use:   "rm ITEM_ID",
		Short: "Delete a remediation item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("item id %q: %w", args[0], err)
			}
			if err := a.open(cmd); err != nil {
				return err
			}
			return a.mitigator.Delete(cmd.Context(), id)
		},
	}

	cmd.AddCommand(list, add, set, rm)
	return cmd
}

func printReport(w io.Writer, r ports.Report) {
	rs := r.RiskScore
	fmt.Fprintf(w, "Overall governance score: %d (%s risk)\n", rs.OverallRisk, rs.RiskLevel)
	fmt.Fprintf(w, "Maturity: %s, target %s (achiever score %d)\n\n", rs.CurrentMaturity, rs.TargetMaturity, rs.AchieverScore)
	for _, d := range r.DimensionScores {
		fmt.Fprintf(w, "  %-22s %3d  %s\n", d.Key.Label(), d.Score, d.RiskLevel)
	}
	if len(r.BlindSpots) > 0 {
		fmt.Fprintf(w, "\nBlind spots:\n")
		for _, b := range r.BlindSpots {
			fmt.Fprintf(w, "  [%s] %s\n", b.Severity, b.Title)
		}
	}
	fmt.Fprintf(w, "\nRecommendations:\n")
	for _, rec := range r.Recommendations {
		fmt.Fprintf(w, "  %-8s %s\n", rec.Priority, rec.Title)
	}
	if r.HiddenPaid > 0 {
		fmt.Fprintf(w, "  (%d more with a professional license)\n", r.HiddenPaid)
	}
	fmt.Fprintf(w, "\n%s\n\n%s\n\n%s\n", r.Summary.Context, r.Summary.Findings, r.Summary.Actions)
}
