// Package printer renders schedule reports as plain-text tables.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"fcfs-simulator/internal/responses"
)

func PrintSchedule(w io.Writer, title string, response responses.ScheduleResponse) {
	outputTitle(w, title)
	outputSchedule(w, response)
	outputTimeChart(w, response.TimeChart)
	outputSummary(w, response)
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func outputSchedule(w io.Writer, response responses.ScheduleResponse) {
	rows := make([][]string, 0, len(response.Details))
	for _, d := range response.Details {
		rows = append(rows, []string{
			fmt.Sprint(d.ProcessId),
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.ExpectedRunTime),
			fmt.Sprint(d.FinishedTime),
			fmt.Sprint(d.TurnAroundTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.ResponseTime),
		})
	}

	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Arrival", "Run", "Finish", "Turnaround", "Wait", "Response"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", response.AverageTurnAroundTime),
		fmt.Sprintf("Average\n%.2f", response.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", response.AverageResponseTime)})
	table.Render()
}

func outputTimeChart(w io.Writer, chart [][]int) {
	_, _ = fmt.Fprintln(w, "Time chart")
	for _, row := range chart {
		ids := make([]string, 0, len(row))
		for _, id := range row {
			ids = append(ids, fmt.Sprint(id))
		}
		_, _ = fmt.Fprintln(w, strings.Join(ids, " "))
	}
	_, _ = fmt.Fprintln(w)
}

func outputSummary(w io.Writer, response responses.ScheduleResponse) {
	_, _ = fmt.Fprintf(w, "Completed: %d/%d\tClock: %d/%d\tIdle: %d\n",
		response.CompletedCount, response.SubmittedCount, response.TotalTime, response.QuantumBudget, response.IdleTime)
	_, _ = fmt.Fprintf(w, "Average Turnaround Time: %.2f\tAverage Waiting Time: %.2f\tAverage Response Time: %.2f\tThroughput: %.2f\n",
		response.AverageTurnAroundTime, response.AverageWaitingTime, response.AverageResponseTime, response.CpuThroughput)
}
