package cmd

import (
	"fmt"
	"os"

	"wolfscheduler/pkg/config"
	"wolfscheduler/pkg/records"
	"wolfscheduler/pkg/scraper"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Convert an HTML course listing into a catalog file",
	Long:  `Read a course listing page (a table with class "catalog") from a URL or a saved HTML file and write the valid courses as a catalog file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		url, _ := cmd.Flags().GetString("url")
		file, _ := cmd.Flags().GetString("file")
		output, _ := cmd.Flags().GetString("output")
		noCache, _ := cmd.Flags().GetBool("no-cache")

		if (url == "") == (file == "") {
			return fmt.Errorf("specify exactly one of --url or --file")
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		log := newLogger(cmd, cfg)

		var report *records.Report
		if url != "" {
			client := scraper.NewClient(log)
			if noCache {
				client = client.WithoutCache()
			}

			_ = spinner.New().
				Title(fmt.Sprintf("Fetching course listing from %s...", url)).
				Action(func() {
					report, err = client.FetchCatalog(url)
				}).
				Run()
		} else {
			var f *os.File
			f, err = os.Open(file)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", file, err)
			}
			defer f.Close()
			report, err = scraper.ParseCatalog(f, log)
		}
		if err != nil {
			return fmt.Errorf("failed to import catalog: %w", err)
		}

		if len(report.Courses) == 0 {
			return fmt.Errorf("no valid courses found in the listing")
		}

		if err := records.WriteCourses(output, report.Courses); err != nil {
			return err
		}

		fmt.Printf("Successfully imported %d courses to %s (%d rows skipped)\n", len(report.Courses), output, len(report.Skipped))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringP("url", "u", "", "URL of the course listing page")
	importCmd.Flags().StringP("file", "f", "", "Saved HTML course listing")
	importCmd.Flags().StringP("output", "o", "course_records.txt", "Catalog file to write")
	importCmd.Flags().Bool("no-cache", false, "Always download the page instead of using the 12h cache")
}
