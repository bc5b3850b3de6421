package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/shipgrid/shipgrid/internal/export"
)

var (
	exportYear  int
	exportMonth int
	exportOut   string

	exportCmd = &cobra.Command{
		Use:   "export",
		Short: "Download the regularity CSV for one month",
		RunE:  runExport,
	}
)

func init() {
	now := time.Now()
	exportCmd.Flags().IntVar(&exportYear, "year", now.Year(), "report year (4 digits)")
	exportCmd.Flags().IntVar(&exportMonth, "month", int(now.Month()), "report month (1-12)")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output path (default: the server-side filename)")
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportYear < 1000 || exportYear > 9999 {
		return fmt.Errorf("year must be a 4-digit number, got %d", exportYear)
	}
	if exportMonth < 1 || exportMonth > 12 {
		return fmt.Errorf("month must be between 1 and 12, got %d", exportMonth)
	}

	url := fmt.Sprintf("%s/api/relatorio/%d/%d/export", strings.TrimSuffix(apiURL, "/"), exportYear, exportMonth)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if msg := errorBody(resp.Body); msg != "" {
			return fmt.Errorf("export %d-%02d: %s", exportYear, exportMonth, msg)
		}
		return fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	out := exportOut
	if out == "" {
		out = export.Filename(exportYear, time.Month(exportMonth))
	}

	file, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	defer file.Close()

	bar := progressbar.DefaultBytes(resp.ContentLength, "downloading")
	if _, err := io.Copy(io.MultiWriter(file, bar), resp.Body); err != nil {
		os.Remove(out)
		return fmt.Errorf("write %s: %w", out, err)
	}

	fmt.Printf("wrote %s\n", out)
	return nil
}

// errorBody tries to extract the API's error message from a non-2xx
// response.
func errorBody(r io.Reader) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return ""
	}
	return payload.Error
}
