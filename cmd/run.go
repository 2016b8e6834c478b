package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cpusim/internal/report"
	"cpusim/internal/requests"
	"cpusim/internal/responses"
	"cpusim/internal/schedulers"
)

var (
	inputPath   string // Workload file
	inputFormat string // text or yaml
	outputPath  string // Report file, "-" for stdout
	quantum     int    // Overrides the workload's time quantum
	switchCost  int    // Overrides the workload's switch cost
	details     bool   // Adds per-process tables to the report
)

// runCmd simulates both algorithms over one workload and writes the report
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run round robin then priority scheduling and write the report",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		request, err := readWorkload(inputPath, inputFormat)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("quantum") {
			request.TimeQuantum = &quantum
		}
		if cmd.Flags().Changed("switch-cost") {
			request.SwitchCost = &switchCost
		}
		request.WithDefaults(cfg.RoundRobinTimeQuantum, cfg.SwitchCost)
		logrus.Infof("Starting simulation of %d processes, quantum=%d, switchCost=%d",
			len(request.Jobs), request.Quantum(), request.Switch())

		results, err := schedulers.ScheduleAllAlgorithms(request)
		if err != nil {
			return err
		}

		showDetails := cfg.ReportDetails
		if cmd.Flags().Changed("details") {
			showDetails = details
		}
		if outputPath == "-" {
			return report.NewWriter(cmd.OutOrStdout(), showDetails).WriteAll(results)
		}
		if err := writeReport(outputPath, showDetails, results); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Simulation complete. See %q.\n", outputPath)
		return nil
	},
}

func readWorkload(path, format string) (*requests.ScheduleRequests, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening workload: %w", err)
	}
	defer f.Close()
	request, err := requests.Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return request, nil
}

func writeReport(path string, showDetails bool, results []responses.ScheduleResponse) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing report: %w", cerr)
		}
	}()
	return report.NewWriter(f, showDetails).WriteAll(results)
}

func init() {
	runCmd.Flags().StringVarP(&inputPath, "input", "i", "Entrada Processos.txt", "Workload file")
	runCmd.Flags().StringVar(&inputFormat, "format", "text", "Workload format (text, yaml)")
	runCmd.Flags().StringVarP(&outputPath, "output", "o", "saida.txt", "Report file, - for stdout")
	runCmd.Flags().IntVar(&quantum, "quantum", 0, "Round robin time quantum (overrides the workload)")
	runCmd.Flags().IntVar(&switchCost, "switch-cost", 0, "Context switch cost in ticks (overrides the workload)")
	runCmd.Flags().BoolVar(&details, "details", false, "Append a per-process table to each section")

	rootCmd.AddCommand(runCmd)
}
