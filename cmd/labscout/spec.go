package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/labscout"
	"github.com/aretw0/labscout/internal/cli"
	"github.com/aretw0/labscout/internal/presentation/tui"
)

// specCmd runs the detailed weighing-station interview on the terminal.
var specCmd = &cobra.Command{
	Use:   "spec",
	Short: "Interview the lab and draft a weighing-station specification",
	Long: `Runs the eight-question interview for an automated weighing station
and prints the drafted requirements specification document.`,
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

		_, err = interviewer.RunSpecification(sigCtx, sessionID)
		if errors.Is(err, cli.ErrInputClosed) && sigCtx.Signal() != nil {
			fmt.Println("\nInterview cancelled.")
			return nil
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(specCmd)

	specCmd.Flags().String("session", "", "Session identifier (also used to name the archived report)")
	specCmd.Flags().Bool("quiet", false, "Suppress the banner")
}
