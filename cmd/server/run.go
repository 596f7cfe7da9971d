package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"domainwatch/internal/services/monitor"
	"domainwatch/internal/workers/jobrunner"
)

// newRunCmd is the one-shot entry point for an external cron.
func newRunCmd(c *cli) *cobra.Command {
	var domainID string
	cmd := &cobra.Command{
		Use:       "run <job>",
		Short:     "Run one job to completion and exit",
		Long:      "Run one job to completion and exit. Jobs: " + fmt.Sprint(monitor.Jobs),
		Args:      cobra.ExactArgs(1),
		ValidArgs: monitor.Jobs,
		RunE: func(cmd *cobra.Command, args []string) error {
			job := args[0]
			if domainID != "" && job != monitor.JobTechnologies {
				return fmt.Errorf("--domain only applies to %s", monitor.JobTechnologies)
			}
			a, err := newApp(cmd.Context(), c.cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			var rep jobrunner.Report
			if domainID != "" {
				rep, err = a.runner.Execute(cmd.Context(), job+":"+domainID, a.monitor.DomainTechnologies(domainID))
			} else {
				rep, err = a.runner.Trigger(cmd.Context(), job)
			}
			if errors.Is(err, jobrunner.ErrUnknownJob) {
				return fmt.Errorf("%w; known jobs: %v", err, a.runner.Names())
			}

			out := cmd.OutOrStdout()
			for _, line := range rep.Output {
				fmt.Fprintln(out, line)
			}
			fmt.Fprintln(out, jobrunner.Message(rep, err))
			return err
		},
	}
	cmd.Flags().StringVar(&domainID, "domain", "", "domain id; restricts the technologies job to one domain")
	return cmd
}
