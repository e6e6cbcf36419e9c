package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"

	"github.com/careerhub/portal/internal/domain/job"
)

type jobsListOptions struct {
	Status job.StatusFilter
	Limit  int
}

func parseJobsListFlags(args []string) (jobsListOptions, error) {
	fs := flag.NewFlagSet("jobs-list", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var status string
	opts := jobsListOptions{}
	fs.StringVar(&status, "status", "all", "Filter by status: live, expired or all")
	fs.IntVar(&opts.Limit, "limit", 0, "Maximum rows to display (0 for unlimited)")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	opts.Status = job.ParseStatusFilter(status)
	if opts.Limit < 0 {
		return opts, fmt.Errorf("limit must be >= 0, got %d", opts.Limit)
	}
	return opts, nil
}

func runJobsList(cmdCtx *commandContext, args []string) error {
	opts, err := parseJobsListFlags(args)
	if err != nil {
		return err
	}
	jobs, err := cmdCtx.API.AdminJobs().List(cmdCtx.Ctx, cmdCtx.Session)
	if err != nil {
		return fmt.Errorf("list jobs: %w", err)
	}
	jobs = filterJobs(jobs, opts)
	if len(jobs) == 0 {
		pterm.Info.Println("No jobs found.")
		return nil
	}
	return renderTable(cmdCtx.Out, jobRows(jobs, time.Now()))
}

// filterJobs keeps jobs matching the status filter, pinned first, up to the limit.
func filterJobs(jobs []job.Job, opts jobsListOptions) []job.Job {
	out := make([]job.Job, 0, len(jobs))
	for _, j := range jobs {
		if opts.Status == job.FilterAll || string(j.Status) == string(opts.Status) {
			out = append(out, j)
		}
	}
	job.SortForAdmin(out)
	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out
}

func jobRows(jobs []job.Job, now time.Time) [][]string {
	rows := [][]string{{"ID", "Title", "Company", "Status", "Pinned", "Deadline", "Views"}}
	for _, j := range jobs {
		pinned := ""
		if j.Pinned {
			pinned = "yes"
		}
		rows = append(rows, []string{
			j.ID,
			j.Title,
			j.CompanyName,
			string(j.Status),
			pinned,
			deadlineLabel(j, now),
			humanize.Comma(int64(j.Views)),
		})
	}
	return rows
}

func deadlineLabel(j job.Job, now time.Time) string {
	d, ok := j.Deadline()
	if !ok {
		return "-"
	}
	return d.Format(job.DateLayout) + " (" + humanize.RelTime(d, now, "ago", "from now") + ")"
}

// expiredReport summarizes job statuses. Overdue jobs are still live although
// their deadline day has passed.
type expiredReport struct {
	Live    int
	Expired int
	Overdue []job.Job
}

func buildExpiredReport(jobs []job.Job, now time.Time) expiredReport {
	var r expiredReport
	today := now.UTC().Truncate(24 * time.Hour)
	for _, j := range jobs {
		switch j.Status {
		case job.StatusExpired:
			r.Expired++
		case job.StatusLive:
			r.Live++
			if d, ok := j.Deadline(); ok && d.Before(today) {
				r.Overdue = append(r.Overdue, j)
			}
		}
	}
	return r
}

func runJobsExpiredReport(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("jobs-expired-report", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	jobs, err := cmdCtx.API.AdminJobs().List(cmdCtx.Ctx, cmdCtx.Session)
	if err != nil {
		return fmt.Errorf("list jobs: %w", err)
	}
	now := time.Now()
	report := buildExpiredReport(jobs, now)

	if err := renderTable(cmdCtx.Out, [][]string{
		{"Status", "Jobs"},
		{pterm.Green("live"), strconv.Itoa(report.Live)},
		{pterm.Red("expired"), strconv.Itoa(report.Expired)},
	}); err != nil {
		return err
	}
	if len(report.Overdue) == 0 {
		pterm.Success.Println("No live job is past its deadline.")
		return nil
	}
	pterm.Warning.Printfln("%d live job(s) are past their deadline:", len(report.Overdue))
	return renderTable(cmdCtx.Out, jobRows(report.Overdue, now))
}

func renderTable(w io.Writer, rows [][]string) error {
	return pterm.DefaultTable.WithHasHeader().WithWriter(w).WithData(rows).Render()
}
