package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/labscout"
	"github.com/aretw0/labscout/internal/cli"
	"github.com/aretw0/labscout/internal/presentation/tui"
)

// triageCmd runs the coarse bottleneck interview on the terminal.
var triageCmd = &cobra.Command{
	Use:   "triage",
	Short: "Interview the lab about its automation bottleneck",
	Long: `Runs the intake interview for a lab's main automation bottleneck,
matches the answers against the solution catalog and prints a proposal.
Domains without a pre-built solution still produce a report saying so.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		consultant, cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}

		quiet, _ := cmd.Flags().GetBool("quiet")
		if !quiet {
			tui.PrintBanner(labscout.Version)
		}

		sessionID, _ := cmd.Flags().GetString("session")
		if sessionID == "" {
			sessionID = newSessionID()
		}

		sigCtx := cli.NewSignalContext(context.Background())
		defer sigCtx.Cancel()

		interviewer := cli.NewInterviewer(consultant, newSessionManager(cfg, logger),
			os.Stdin, os.Stdout, cli.WithRenderer(tui.NewRenderer()))

		_, err = interviewer.RunTriage(sigCtx, sessionID)
		if errors.Is(err, cli.ErrInputClosed) && sigCtx.Signal() != nil {
			fmt.Println("\nInterview cancelled.")
			return nil
		}
		return err
	},
}

func newSessionID() string {
	return fmt.Sprintf("cli-%d", time.Now().UnixNano())
}

func init() {
	rootCmd.AddCommand(triageCmd)

	triageCmd.Flags().String("session", "", "Session identifier (also used to name the archived report)")
	triageCmd.Flags().Bool("quiet", false, "Suppress the banner")
}
