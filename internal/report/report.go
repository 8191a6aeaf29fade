// Package report assembles the host snapshot and renders the login
// banner. The fact order is fixed and is the display order.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sumant1122/motdyn/internal/config"
	"github.com/sumant1122/motdyn/internal/sysinfo"
	"github.com/sumant1122/motdyn/internal/theme"
)

const timeLayout = "2006-01-02 15:04:05 -07:00"

type item struct {
	label string
	value string
}

// Report renders one host snapshot per call. Now is the clock used for
// the timestamp line; everything else is read fresh on each Render.
type Report struct {
	Collector *sysinfo.Collector
	Config    config.Config
	Styles    theme.Styles
	Now       func() time.Time
}

// New returns a Report wired to the live clock and the default theme.
func New(col *sysinfo.Collector, cfg config.Config) *Report {
	return &Report{
		Collector: col,
		Config:    cfg,
		Styles:    theme.BuildStyles(0),
		Now:       time.Now,
	}
}

// Render gathers all facts and writes the formatted report.
func (r *Report) Render(w io.Writer, verbose bool) {
	st := r.Styles
	c := r.Collector

	if r.Config.AsciiArt != nil {
		fmt.Fprintln(w)
		fmt.Fprintln(w, *r.Config.AsciiArt)
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, st.Title.Render("Welcome!"))
	fmt.Fprintln(w)

	uptime := "unknown"
	if s, ok := c.Uptime(); ok {
		uptime = s
	}
	osName, osVersion := c.OSInfo()
	kernel := "Unknown kernel"
	if s, ok := c.KernelRelease(); ok {
		kernel = s
	}
	host := "Unknown host"
	if s, ok := c.Hostname(); ok {
		host = s
	}
	cpuBrand, cpuCores := c.CPUInfo()
	mem := c.MemInfo()
	memUsed, memTotal, memPct := sysinfo.GBAndRatio(mem.MemTotalKB, mem.MemAvailKB)
	swapUsed, swapTotal, swapPct := sysinfo.GBAndRatio(mem.SwapTotalKB, mem.SwapFreeKB)
	user, fromIP := c.CurrentUser()

	items := []item{
		{"Current time (TZ):", st.Primary.Render(r.Now().Format(timeLayout))},
		{"System uptime:", st.Primary.Render(uptime)},
		{"Operating system:", st.Primary.Render(osName + " " + osVersion)},
		{"Kernel version:", st.Success.Render(kernel)},
		{"Host name:", st.Primary.Render(host)},
		{"CPU:", fmt.Sprintf("%s (%s cores)",
			st.Notice.Render(cpuBrand), st.Notice.Render(fmt.Sprint(cpuCores)))},
		{"Memory used/total:", fmt.Sprintf("%.2f/%.2f GB (%.2f%%)", memUsed, memTotal, memPct)},
		{"Swap used/total:", fmt.Sprintf("%.2f/%.2f GB (%.2f%%)", swapUsed, swapTotal, swapPct)},
		{"Current user:", fmt.Sprintf("%s (from %s)",
			st.Info.Render(user), st.Info.Render(fromIP))},
		{"Login user count:", st.Info.Render(fmt.Sprint(c.LoginUserCount()))},
	}
	r.renderAligned(w, items)

	for _, d := range c.DiskUsageLines() {
		usedStr, totalStr, pct := sysinfo.ScaleBytes(d.Used, d.Total)
		fmt.Fprintf(w, "%s %s => %s/%s (%.2f%%)\n",
			st.Label.Render(d.Label), st.Primary.Render(d.Mount),
			usedStr, totalStr, pct)
	}

	if verbose {
		fmt.Fprintln(w, st.Title.Render("Verbose mode: put extra info here."))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, st.Title.Render(r.Config.FarewellText()))
}

// renderAligned pads the plain label text to the widest label before
// styling, so ANSI codes do not skew the column.
func (r *Report) renderAligned(w io.Writer, items []item) {
	width := 0
	for _, it := range items {
		if len(it.label) > width {
			width = len(it.label)
		}
	}
	for _, it := range items {
		padded := it.label + strings.Repeat(" ", width-len(it.label))
		fmt.Fprintf(w, "%s %s\n", r.Styles.Label.Render(padded), it.value)
	}
}
