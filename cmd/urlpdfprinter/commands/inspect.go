package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	urlpdf "github.com/porticus-lab/go-url-pdf"
	"github.com/porticus-lab/go-url-pdf/internal/logger"
	"github.com/porticus-lab/go-url-pdf/internal/pdfinfo"
)

const cmPerPoint = 2.54 / 72

type pageReport struct {
	Number      int     `json:"number"`
	WidthPt     float64 `json:"width_pt"`
	HeightPt    float64 `json:"height_pt"`
	Paper       string  `json:"paper,omitempty"`
	Orientation string  `json:"orientation"`
}

type inspectReport struct {
	File    string       `json:"file"`
	Bytes   int64        `json:"bytes"`
	Version string       `json:"version"`
	Pages   []pageReport `json:"pages"`
}

func newInspectCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "inspect <file.pdf>",
		Short: "Show the version, page count and page sizes of a PDF",
		Long: `Inspect reads a PDF, typically one written by urlpdfprinter, and reports
its version and the size and orientation of every page. Use it to check
that paper, landscape and CSS @page settings took effect.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := inspectFile(outputFs, args[0])
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}

func inspectFile(fs afero.Fs, path string) (*inspectReport, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	info, err := pdfinfo.Inspect(data)
	if err != nil {
		return nil, fmt.Errorf("inspecting %s: %w", path, err)
	}
	logger.Debug("pdf inspected", "path", path, "pages", len(info.Pages), "version", info.Version)

	report := &inspectReport{
		File:    path,
		Bytes:   int64(len(data)),
		Version: info.Version,
	}
	for i, p := range info.Pages {
		pr := pageReport{
			Number:      i + 1,
			WidthPt:     p.Width,
			HeightPt:    p.Height,
			Orientation: "portrait",
		}
		if p.Landscape() {
			pr.Orientation = "landscape"
		}
		if paper, ok := urlpdf.PageSizeName(p.Width*cmPerPoint, p.Height*cmPerPoint); ok {
			pr.Paper = paper
		}
		report.Pages = append(report.Pages, pr)
	}
	return report, nil
}

func printReport(w io.Writer, r *inspectReport) {
	fmt.Fprintf(w, "File:    %s\n", r.File)
	fmt.Fprintf(w, "Size:    %s\n", humanize.Bytes(uint64(r.Bytes)))
	fmt.Fprintf(w, "Version: PDF-%s\n", r.Version)
	fmt.Fprintf(w, "Pages:   %d\n", len(r.Pages))

	if len(r.Pages) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page dimensions:")
	for _, p := range r.Pages {
		fmt.Fprintf(w, "  Page %d: %.0f x %.0f pt", p.Number, p.WidthPt, p.HeightPt)
		if p.Paper != "" {
			fmt.Fprintf(w, " (%s, %s)", p.Paper, p.Orientation)
		} else {
			fmt.Fprintf(w, " (%s)", p.Orientation)
		}
		fmt.Fprintln(w)
	}
}
