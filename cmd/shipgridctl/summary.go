package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/shipgrid/shipgrid/internal/model"
)

var (
	summaryYear  int
	summaryMonth int

	summaryCmd = &cobra.Command{
		Use:   "summary",
		Short: "Print the regularity summary for one month",
		RunE:  runSummary,
	}
)

func init() {
	now := time.Now()
	summaryCmd.Flags().IntVar(&summaryYear, "year", now.Year(), "report year (4 digits)")
	summaryCmd.Flags().IntVar(&summaryMonth, "month", int(now.Month()), "report month (1-12)")
}

func runSummary(cmd *cobra.Command, args []string) error {
	if summaryYear < 1000 || summaryYear > 9999 {
		return fmt.Errorf("year must be a 4-digit number, got %d", summaryYear)
	}
	if summaryMonth < 1 || summaryMonth > 12 {
		return fmt.Errorf("month must be between 1 and 12, got %d", summaryMonth)
	}

	url := fmt.Sprintf("%s/api/relatorio/%d/%d", strings.TrimSuffix(apiURL, "/"), summaryYear, summaryMonth)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if msg := errorBody(resp.Body); msg != "" {
			return fmt.Errorf("report %d-%02d: %s", summaryYear, summaryMonth, msg)
		}
		return fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	var rep model.Report
	if err := json.NewDecoder(resp.Body).Decode(&rep); err != nil {
		return fmt.Errorf("decode report: %w", err)
	}

	fmt.Printf("%d-%02d ; rows=%d ; events=%d ; sent=%d ; pending_avg=%d ; success_rate=%d%%\n",
		rep.Metadata.Year, rep.Metadata.Month,
		len(rep.Suppliers), rep.Metadata.Count,
		rep.Summary.TotalSent, rep.Summary.PendingAverage, rep.Summary.SuccessRate)

	if len(rep.Metadata.Suppliers) > 0 {
		fmt.Printf("suppliers: %s\n", strings.Join(rep.Metadata.Suppliers, ", "))
	}
	return nil
}
