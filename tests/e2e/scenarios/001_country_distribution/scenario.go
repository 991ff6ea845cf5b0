package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic snapshot generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	totalRelays      = 4000
	bytesPerMegabyte = 1024 * 1024
)

var (
	countries = []string{"de", "fr", "us", "nl", "se"}
	systems   = []struct{ asn, name string }{
		{"AS24940", "Hetzner Online GmbH"},
		{"AS16276", "OVH SAS"},
		{"AS51167", "Contabo GmbH"},
		{"AS60729", "Stiftung Erneuerbare Freiheit"},
		{"AS14061", "DigitalOcean, LLC"},
		{"AS197540", "netcup GmbH"},
	}
)

// ### End - fixed configs

type relay struct {
	Nickname            string `json:"nickname"`
	Fingerprint         string `json:"fingerprint"`
	Country             string `json:"country"`
	Running             bool   `json:"running"`
	AdvertisedBandwidth *int64 `json:"advertised_bandwidth,omitempty"`
	ConsensusWeight     *int64 `json:"consensus_weight,omitempty"`
	AS                  string `json:"as,omitempty"`
	ASName              string `json:"as_name,omitempty"`
}

type snapshot struct {
	RelaysPublished string  `json:"relays_published"`
	Relays          []relay `json:"relays"`
}

type asGroup struct {
	ASN               string   `json:"asn"`
	Name              string   `json:"name"`
	RelayCount        int      `json:"relayCount"`
	Bandwidth         float64  `json:"bandwidth"`
	BandwidthFraction *float64 `json:"bandwidthFraction"`
}

type countryReport struct {
	Country                 string    `json:"country"`
	RelaysPublished         string    `json:"relaysPublished"`
	RunningCount            int       `json:"runningCount"`
	NotRunningCount         int       `json:"notRunningCount"`
	TotalBandwidth          float64   `json:"totalBandwidth"`
	ConsensusWeightFraction *float64  `json:"consensusWeightFraction"`
	UniqueASCount           int       `json:"uniqueASCount"`
	ASDistribution          []asGroup `json:"asDistribution"`
}

type errorResponse struct {
	RequestID        string `json:"requestId"`
	ErrorCategory    string `json:"errorCategory"`
	ErrorCode        string `json:"errorCode"`
	ErrorDescription string `json:"errorDescription"`
}

// main runs the e2e scenario: 001_country_distribution
//
// The scenario writes a deterministic relay details document into the snapshot directory and
// queries a server running in file mode:
//
//	RELAY_ANALYTICS_UPSTREAM_MODE=file \
//	RELAY_ANALYTICS_UPSTREAM_SNAPSHOT_DIR=.tmp/relay-snapshots \
//	go run ./cmd/server
//
// What it tests:
//   - GET /api/relays/{country} for every generated country, concurrently
//   - Country normalization (upper case and padded input map to the same report)
//   - Running/not running split, MB/s totals, consensus weight fraction against the whole snapshot
//   - AS grouping: relays without AS info are excluded, groups sorted by bandwidth descending
//   - Invariants: counts add up, fractions within [0, 1], bandwidth fractions sum to at most 1
//   - Invalid codes return 400 RLY_1000 and an unknown country returns an empty report
//   - GET / renders the default country page
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8080"       // Base URL of the relay analytics server
	snapshotDir := ".tmp/relay-snapshots"    // Snapshot directory relative to project root
	snapshotFile := "details.json"           // Must match upstream.snapshot_file
	relaysPublished := "2025-12-28 18:00:00" // Value written into relays_published
	parallel := 3                            // Number of concurrent report requests
	requestTimeout := 10 * time.Second       // Per-request HTTP timeout

	projectRoot, err := findProjectRoot()
	if err != nil {
		fail("%v", err)
	}
	snapshotPath := filepath.Join(projectRoot, snapshotDir, snapshotFile)

	fmt.Println("Starting e2e scenario: 001_country_distribution")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("SNAPSHOT_PATH: %s\n", snapshotPath)
	fmt.Printf("TOTAL_RELAYS: %d\n", totalRelays)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Println()

	doc := generateSnapshot(relaysPublished)
	if err := writeSnapshot(snapshotPath, doc); err != nil {
		fail("failed to write snapshot: %v", err)
	}
	fmt.Printf("Wrote %d relays to %s\n\n", len(doc.Relays), snapshotPath)

	client := &http.Client{Timeout: requestTimeout}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failures []string
	)
	sem := make(chan struct{}, parallel)
	for _, country := range countries {
		wg.Add(1)
		go func(country string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			// mixed case and padding must normalize to the same report
			input := " " + strings.ToUpper(country) + " "
			errs := checkCountry(client, baseURL, input, country, doc)

			mu.Lock()
			defer mu.Unlock()
			if len(errs) == 0 {
				fmt.Printf("PASS %s\n", country)
				return
			}
			for _, e := range errs {
				failures = append(failures, fmt.Sprintf("%s: %s", country, e))
			}
		}(country)
	}
	wg.Wait()

	failures = append(failures, checkInvalidCountries(client, baseURL)...)
	failures = append(failures, checkUnknownCountry(client, baseURL, relaysPublished)...)
	failures = append(failures, checkIndexPage(client, baseURL)...)

	fmt.Println()
	if len(failures) > 0 {
		for _, f := range failures {
			fmt.Fprintf(os.Stderr, "FAIL %s\n", f)
		}
		os.Exit(1)
	}
	fmt.Println("Scenario 001_country_distribution passed")
}

// generateSnapshot builds the fixed relay population. Every 13th relay has no AS information,
// every 17th has no advertised bandwidth, and every 5th is not running.
func generateSnapshot(relaysPublished string) *snapshot {
	doc := &snapshot{RelaysPublished: relaysPublished, Relays: make([]relay, 0, totalRelays)}
	for i := 0; i < totalRelays; i++ {
		r := relay{
			Nickname:    fmt.Sprintf("relay%04d", i),
			Fingerprint: fmt.Sprintf("%040X", i*7919+1),
			Country:     countries[i%len(countries)],
			Running:     i%5 != 0,
		}
		if i%17 != 0 {
			bw := int64((i%9)+1) * bytesPerMegabyte / 2
			r.AdvertisedBandwidth = &bw
		}
		cw := int64((i%11)+1) * 10
		r.ConsensusWeight = &cw
		if i%13 != 0 {
			system := systems[(i/len(countries))%len(systems)]
			r.AS, r.ASName = system.asn, system.name
		}
		doc.Relays = append(doc.Relays, r)
	}
	return doc
}

// expectedReport recomputes the statistics straight from the generated relays.
func expectedReport(doc *snapshot, country string) countryReport {
	var networkWeight, countryWeight, totalBytes int64
	want := countryReport{Country: country, RelaysPublished: doc.RelaysPublished, ASDistribution: []asGroup{}}
	groups := map[string]*asGroup{}
	var order []string

	for _, r := range doc.Relays {
		if r.ConsensusWeight != nil {
			networkWeight += *r.ConsensusWeight
		}
		if r.Country != country {
			continue
		}
		if r.Running {
			want.RunningCount++
		} else {
			want.NotRunningCount++
		}
		var bw int64
		if r.AdvertisedBandwidth != nil {
			bw = *r.AdvertisedBandwidth
		}
		totalBytes += bw
		if r.ConsensusWeight != nil {
			countryWeight += *r.ConsensusWeight
		}
		if r.AS == "" || r.ASName == "" {
			continue
		}
		g, ok := groups[r.AS]
		if !ok {
			g = &asGroup{ASN: r.AS, Name: r.ASName}
			groups[r.AS] = g
			order = append(order, r.AS)
		}
		g.RelayCount++
		g.Bandwidth += float64(bw) / bytesPerMegabyte
	}

	want.TotalBandwidth = float64(totalBytes) / bytesPerMegabyte
	if networkWeight != 0 {
		f := float64(countryWeight) / float64(networkWeight)
		want.ConsensusWeightFraction = &f
	}
	for _, asn := range order {
		g := *groups[asn]
		if want.TotalBandwidth != 0 {
			f := g.Bandwidth / want.TotalBandwidth
			g.BandwidthFraction = &f
		}
		want.ASDistribution = append(want.ASDistribution, g)
	}
	sort.SliceStable(want.ASDistribution, func(i, j int) bool {
		return want.ASDistribution[i].Bandwidth > want.ASDistribution[j].Bandwidth
	})
	want.UniqueASCount = len(want.ASDistribution)
	return want
}

func checkCountry(client *http.Client, baseURL, input, country string, doc *snapshot) []string {
	var got countryReport
	status, err := getJSON(client, baseURL+"/api/relays/"+strings.ReplaceAll(input, " ", "%20"), &got)
	if err != nil {
		return []string{err.Error()}
	}
	if status != http.StatusOK {
		return []string{fmt.Sprintf("status %d, want 200", status)}
	}

	want := expectedReport(doc, country)
	var errs []string
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Sprintf(format, args...))
		}
	}

	check(got.Country == want.Country, "country %q, want %q", got.Country, want.Country)
	check(got.RelaysPublished == want.RelaysPublished, "relaysPublished %q, want %q", got.RelaysPublished, want.RelaysPublished)
	check(got.RunningCount == want.RunningCount, "runningCount %d, want %d", got.RunningCount, want.RunningCount)
	check(got.NotRunningCount == want.NotRunningCount, "notRunningCount %d, want %d", got.NotRunningCount, want.NotRunningCount)
	check(almostEqual(got.TotalBandwidth, want.TotalBandwidth), "totalBandwidth %f, want %f", got.TotalBandwidth, want.TotalBandwidth)
	check(ratioEqual(got.ConsensusWeightFraction, want.ConsensusWeightFraction), "consensusWeightFraction mismatch")
	check(got.UniqueASCount == want.UniqueASCount, "uniqueASCount %d, want %d", got.UniqueASCount, want.UniqueASCount)
	check(len(got.ASDistribution) == got.UniqueASCount, "asDistribution has %d groups, uniqueASCount is %d", len(got.ASDistribution), got.UniqueASCount)

	if len(got.ASDistribution) == len(want.ASDistribution) {
		var fractionSum float64
		var grouped int
		for i := range want.ASDistribution {
			g, w := got.ASDistribution[i], want.ASDistribution[i]
			check(g.ASN == w.ASN, "group %d asn %q, want %q", i, g.ASN, w.ASN)
			check(g.Name == w.Name, "group %d name %q, want %q", i, g.Name, w.Name)
			check(g.RelayCount == w.RelayCount, "group %d relayCount %d, want %d", i, g.RelayCount, w.RelayCount)
			check(almostEqual(g.Bandwidth, w.Bandwidth), "group %d bandwidth %f, want %f", i, g.Bandwidth, w.Bandwidth)
			check(ratioEqual(g.BandwidthFraction, w.BandwidthFraction), "group %d bandwidthFraction mismatch", i)
			if i > 0 {
				check(got.ASDistribution[i-1].Bandwidth >= g.Bandwidth, "groups not sorted by bandwidth at %d", i)
			}
			if g.BandwidthFraction != nil {
				fractionSum += *g.BandwidthFraction
			}
			grouped += g.RelayCount
		}
		check(grouped <= got.RunningCount+got.NotRunningCount, "grouped relays %d exceed total", grouped)
		check(fractionSum <= 1+1e-9, "bandwidth fractions sum to %f", fractionSum)
	}
	if got.ConsensusWeightFraction != nil {
		f := *got.ConsensusWeightFraction
		check(f >= 0 && f <= 1, "consensusWeightFraction %f outside [0,1]", f)
	}
	return errs
}

func checkInvalidCountries(client *http.Client, baseURL string) []string {
	var failures []string
	for _, input := range []string{"deu", "1a", "d"} {
		var got errorResponse
		status, err := getJSON(client, baseURL+"/api/relays/"+input, &got)
		switch {
		case err != nil:
			failures = append(failures, fmt.Sprintf("invalid %q: %v", input, err))
		case status != http.StatusBadRequest:
			failures = append(failures, fmt.Sprintf("invalid %q: status %d, want 400", input, status))
		case got.ErrorCode != "RLY_1000" || got.ErrorCategory != "invalid_argument":
			failures = append(failures, fmt.Sprintf("invalid %q: got %s/%s", input, got.ErrorCategory, got.ErrorCode))
		case !strings.Contains(got.ErrorDescription, fmt.Sprintf("%q", input)):
			failures = append(failures, fmt.Sprintf("invalid %q: description %q does not echo input", input, got.ErrorDescription))
		default:
			fmt.Printf("PASS invalid %q\n", input)
		}
	}
	return failures
}

func checkUnknownCountry(client *http.Client, baseURL, relaysPublished string) []string {
	var got countryReport
	status, err := getJSON(client, baseURL+"/api/relays/zz", &got)
	if err != nil {
		return []string{fmt.Sprintf("zz: %v", err)}
	}
	if status != http.StatusOK || got.RunningCount+got.NotRunningCount != 0 || len(got.ASDistribution) != 0 ||
		got.ConsensusWeightFraction == nil || *got.ConsensusWeightFraction != 0 || got.RelaysPublished != relaysPublished {
		return []string{fmt.Sprintf("zz: unexpected report (status %d): %+v", status, got)}
	}
	fmt.Println("PASS zz (empty)")
	return nil
}

func checkIndexPage(client *http.Client, baseURL string) []string {
	resp, err := client.Get(baseURL + "/")
	if err != nil {
		return []string{fmt.Sprintf("index: %v", err)}
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return []string{fmt.Sprintf("index: %v", err)}
	}
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), `id="as-distribution"`) {
		return []string{fmt.Sprintf("index: status %d, AS table missing", resp.StatusCode)}
	}
	fmt.Println("PASS index page")
	return nil
}

func getJSON(client *http.Client, url string, out any) (int, error) {
	resp, err := client.Get(url)
	if err != nil {
		return 0, fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("GET %s: decode: %w", url, err)
	}
	return resp.StatusCode, nil
}

func writeSnapshot(path string, doc *snapshot) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// findProjectRoot walks up from the working directory until it finds go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}
	for i := 0; i < 10; i++ {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("could not find go.mod, run from the project root")
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9*math.Max(1, math.Abs(b))
}

func ratioEqual(got, want *float64) bool {
	if got == nil || want == nil {
		return got == nil && want == nil
	}
	return almostEqual(*got, *want)
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ERROR: "+format+"\n", args...)
	os.Exit(1)
}
