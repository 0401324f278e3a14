package scraper

import (
	"bytes"
	"io"
	"strings"

	"wolfscheduler/pkg/records"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
)

// catalogRows selects the data rows of a course listing. Cells are expected
// in record order: name, title, section, credits, instructor, days, start, end.
const catalogRows = "table.catalog tr"

// ParseCatalog extracts courses from an HTML course listing. Each table row
// becomes one record line and goes through the same validation as a catalog
// file, so bad or repeated rows show up in the report's skipped list.
func ParseCatalog(r io.Reader, log zerolog.Logger) (*records.Report, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var lines []string
	doc.Find(catalogRows).Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() == 0 {
			return // header row
		}

		var fields []string
		cells.Each(func(j int, cell *goquery.Selection) {
			fields = append(fields, strings.Join(strings.Fields(cell.Text()), " "))
		})
		lines = append(lines, strings.Join(fields, ","))
	})

	return records.NewReader(log).Read(strings.NewReader(strings.Join(lines, "\n")))
}

// FetchCatalog downloads and parses the course listing at url.
func (c *Client) FetchCatalog(url string) (*records.Report, error) {
	body, err := c.Fetch(url)
	if err != nil {
		return nil, err
	}
	return ParseCatalog(bytes.NewReader(body), c.log)
}
