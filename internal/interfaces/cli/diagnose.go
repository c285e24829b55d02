package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	types "github.com/turtacn/WheatGuard-Intelligence/pkg/types/diagnosis"
)

var (
	diagnoseSession string
	diagnoseMessage string
)

// NewDiagnoseCmd creates the diagnose command.
func NewDiagnoseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diagnose",
		Short: "Describe wheat symptoms and get disease candidates",
		Long: `Send one symptom description to the diagnosis assistant.

Pass --session to continue an earlier conversation; collected symptoms carry
over between turns so you can add details incrementally:

  wheatguard diagnose -m "小麦叶片出现黄色条纹"
  wheatguard diagnose -m "最近持续阴雨，正值抽穗期" --session 1700000000000`,
		RunE: runDiagnose,
	}

	cmd.Flags().StringVarP(&diagnoseMessage, "message", "m", "", "symptom description (required)")
	cmd.Flags().StringVar(&diagnoseSession, "session", "", "session ID to continue a conversation")
	cmd.MarkFlagRequired("message")

	return cmd
}

func runDiagnose(cmd *cobra.Command, args []string) error {
	cliCtx, err := GetCLIContext(cmd)
	if err != nil {
		return err
	}

	reply, err := cliCtx.Client.Chat().SendMessage(cmd.Context(), diagnoseSession, diagnoseMessage)
	if err != nil {
		return fmt.Errorf("diagnosis request failed: %w", err)
	}

	if strings.EqualFold(cliCtx.OutputFormat, "json") {
		return printJSON(cmd, reply)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, reply.Text)
	if len(reply.Candidates) > 0 {
		fmt.Fprintln(out)
		for _, cand := range reply.Candidates {
			fmt.Fprintf(out, "  %s %s (命中 %d, 匹配度 %.0f%%)\n",
				colorizeRatio(cand.MatchRatio), cand.Name, cand.MatchCount, cand.MatchRatio*100)
		}
	}
	fmt.Fprintf(out, "\nSession: %s\n", reply.SessionID)

	return nil
}

// colorizeRatio renders a match-ratio marker: green for strong matches,
// yellow for partial ones.
func colorizeRatio(ratio float64) string {
	switch {
	case ratio >= 0.75:
		return color.GreenString("●")
	case ratio >= 0.5:
		return color.YellowString("●")
	default:
		return "●"
	}
}

// roleTag renders a colored role marker for history output.
func roleTag(role string) string {
	switch role {
	case types.RoleUser:
		return color.CyanString("[user]")
	case types.RoleAssistant:
		return color.MagentaString("[assistant]")
	default:
		return "[" + role + "]"
	}
}

//Personal.AI order the ending
