package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpusim/internal/responses"
)

// Writer renders schedule responses as the plain text report.
type Writer struct {
	w       io.Writer
	details bool
	err     error
}

// NewWriter returns a report writer on w. With details set, each section also
// carries a per-process table.
func NewWriter(w io.Writer, details bool) *Writer {
	return &Writer{w: w, details: details}
}

// WriteAll writes one section per response, in order.
func (r *Writer) WriteAll(results []responses.ScheduleResponse) error {
	for _, result := range results {
		if err := r.WriteSection(result); err != nil {
			return err
		}
	}
	return nil
}

func (r *Writer) WriteSection(result responses.ScheduleResponse) error {
	r.printf("===== %s =====\n", strings.ToUpper(result.Algorithm))
	r.printf("Mean turnaround time: %.2f\n", result.AverageTurnAroundTime)
	r.printf("Context switches: %d\n", result.ContextSwitches)
	r.printf("Switch overhead: %s\n", strconv.FormatFloat(result.SwitchOverhead, 'f', -1, 64))
	r.printf("Total simulation time: %d\n", result.TotalTime)
	r.printf("Timeline:\n")
	for _, segment := range result.Timeline {
		r.printf("  [%d-%d] %s\n", segment.Start, segment.End, segment.Label)
	}
	if r.details {
		r.printf("Processes:\n")
		if r.err == nil {
			r.writeDetails(result)
		}
	}
	r.printf("\n")
	return r.err
}

func (r *Writer) writeDetails(result responses.ScheduleResponse) {
	table := tablewriter.NewWriter(r.w)
	table.SetHeader([]string{"ID", "Arrival", "Priority", "Burst", "Exit", "Turnaround", "Wait"})
	rows := make([][]string, 0, len(result.Details))
	for _, d := range result.Details {
		rows = append(rows, []string{
			fmt.Sprint(d.ProcessId),
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.Priority),
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.CompletionTime),
			fmt.Sprint(d.TurnAroundTime),
			fmt.Sprint(d.WaitingTime),
		})
	}
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "", "",
		fmt.Sprintf("Average\n%.2f", result.AverageTurnAroundTime),
		fmt.Sprintf("Average\n%.2f", result.AverageWaitingTime)})
	table.Render()
}

// printf keeps the first write error and drops everything after it.
func (r *Writer) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}
