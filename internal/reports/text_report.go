package reports

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"relay-analytics/internal/models"
)

const notAvailable = "n/a"

// FormatPercent renders a fraction as a percentage with two decimals, or "n/a" when the
// fraction could not be computed.
func FormatPercent(r models.Ratio) string {
	if !r.Valid {
		return notAvailable
	}
	return fmt.Sprintf("%.2f%%", r.Value*100)
}

// FormatBandwidth renders a MB/s value with two decimals.
func FormatBandwidth(mbps float64) string {
	return fmt.Sprintf("%.2f MB/s", mbps)
}

// WriteCountryReport writes report as a human-readable summary followed by an aligned table
// of autonomous systems, largest bandwidth first.
func WriteCountryReport(w io.Writer, report *models.CountryReport) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Relays in %s\n", strings.ToUpper(report.Country.String()))
	if report.RelaysPublished != "" {
		fmt.Fprintf(&b, "Published:                 %s\n", report.RelaysPublished)
	}
	fmt.Fprintf(&b, "Running relays:            %d\n", report.RunningCount)
	fmt.Fprintf(&b, "Not running relays:        %d\n", report.NotRunningCount)
	fmt.Fprintf(&b, "Total bandwidth:           %s\n", FormatBandwidth(report.TotalBandwidth))
	fmt.Fprintf(&b, "Consensus weight fraction: %s\n", FormatPercent(report.ConsensusWeightFraction))
	fmt.Fprintf(&b, "Unique AS count:           %d\n", report.UniqueASCount)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}
	if len(report.ASDistribution) == 0 {
		return nil
	}

	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "AS\tNAME\tRELAYS\tBANDWIDTH\tSHARE")
	for _, group := range report.ASDistribution {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n",
			group.ASN,
			group.Name,
			group.RelayCount,
			FormatBandwidth(group.Bandwidth),
			FormatPercent(group.BandwidthFraction),
		)
	}
	return tw.Flush()
}
