package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var rebuildCSVPath string

// NewKnowledgeCmd creates the knowledge command group.
func NewKnowledgeCmd() *cobra.Command {
	knowledgeCmd := &cobra.Command{
		Use:   "knowledge",
		Short: "Inspect and rebuild the disease knowledge graph",
	}

	diseaseCmd := &cobra.Command{
		Use:   "disease <name>",
		Short: "Show the full profile of a disease",
		Args:  cobra.ExactArgs(1),
		RunE:  runKnowledgeDisease,
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show node and relationship counts of the graph",
		RunE:  runKnowledgeStats,
	}

	rebuildCmd := &cobra.Command{
		Use:   "rebuild",
		Short: "Rebuild the knowledge graph from the disease CSV",
		RunE:  runKnowledgeRebuild,
	}
	rebuildCmd.Flags().StringVar(&rebuildCSVPath, "csv", "", "CSV source path (default: server's configured file)")

	knowledgeCmd.AddCommand(diseaseCmd, statsCmd, rebuildCmd)
	return knowledgeCmd
}

func runKnowledgeDisease(cmd *cobra.Command, args []string) error {
	cliCtx, err := GetCLIContext(cmd)
	if err != nil {
		return err
	}

	disease, err := cliCtx.Client.Knowledge().Disease(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to fetch disease: %w", err)
	}

	if strings.EqualFold(cliCtx.OutputFormat, "json") {
		return printJSON(cmd, disease)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "名称：%s\n", disease.Name)
	if disease.Alias != "" {
		fmt.Fprintf(out, "别名：%s\n", disease.Alias)
	}
	if disease.Pathogen != "" {
		fmt.Fprintf(out, "病原：%s\n", disease.Pathogen)
	}
	if disease.Description != "" {
		fmt.Fprintf(out, "为害特征：%s\n", disease.Description)
	}
	if disease.ControlMethod != "" {
		fmt.Fprintf(out, "防治措施：%s\n", disease.ControlMethod)
	}
	return nil
}

func runKnowledgeStats(cmd *cobra.Command, args []string) error {
	cliCtx, err := GetCLIContext(cmd)
	if err != nil {
		return err
	}

	stats, err := cliCtx.Client.Knowledge().Stats(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to fetch graph stats: %w", err)
	}

	if strings.EqualFold(cliCtx.OutputFormat, "json") {
		return printJSON(cmd, stats)
	}

	labels := make([]string, 0, len(stats.Nodes))
	for label := range stats.Nodes {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"Label", "Nodes"})
	for _, label := range labels {
		table.Append([]string{label, fmt.Sprintf("%d", stats.Nodes[label])})
	}
	table.Render()

	fmt.Fprintf(cmd.OutOrStdout(), "\nRelationships: %d\n", stats.Relationships)
	return nil
}

func runKnowledgeRebuild(cmd *cobra.Command, args []string) error {
	cliCtx, err := GetCLIContext(cmd)
	if err != nil {
		return err
	}

	report, err := cliCtx.Client.Knowledge().Rebuild(cmd.Context(), rebuildCSVPath)
	if err != nil {
		return fmt.Errorf("graph rebuild failed: %w", err)
	}

	if strings.EqualFold(cliCtx.OutputFormat, "json") {
		return printJSON(cmd, report)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Rebuild finished: %d diseases loaded, %d rows skipped (%dms)\n",
		report.Processed, report.Failed, report.DurationMS)
	return nil
}

//Personal.AI order the ending
