// Package sysinfo gathers host facts from the Linux pseudo filesystems
// and a handful of environment variables. Every probe is best-effort:
// a failure yields a documented placeholder, never an error that stops
// the report.
package sysinfo

import (
	"bufio"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/sumant1122/motdyn/internal/log"
)

// MountUsage is the byte usage of one mounted filesystem.
type MountUsage struct {
	Total uint64
	Used  uint64
}

// DiskUsage is one renderable disk usage entry, in mount-table order.
type DiskUsage struct {
	Label string
	Mount string
	Total uint64
	Used  uint64
}

// Collector reads host facts. The zero paths and hooks are filled in by
// New; tests point ProcDir/EtcDir at synthetic trees and swap the env,
// who and statfs hooks.
type Collector struct {
	ProcDir string
	EtcDir  string
	Getenv  func(string) string
	WhoCmd  func() (string, error)
	// Statfs queries filesystem statistics for a mount point. It is
	// nil on platforms without a statfs primitive, which disables the
	// disk usage section entirely.
	Statfs func(path string) (MountUsage, bool)
}

// New returns a Collector wired to the live system.
func New() *Collector {
	return &Collector{
		ProcDir: "/proc",
		EtcDir:  "/etc",
		Getenv:  os.Getenv,
		WhoCmd:  runWho,
		Statfs:  defaultStatfs(),
	}
}

// Uptime returns the formatted system uptime, or false when
// /proc/uptime is unreadable or unparsable.
func (c *Collector) Uptime() (string, bool) {
	data, err := os.ReadFile(filepath.Join(c.ProcDir, "uptime"))
	if err != nil {
		log.Debugf("sysinfo: read uptime: %v", err)
		return "", false
	}
	secs, ok := ParseUptimeSeconds(string(data))
	if !ok {
		return "", false
	}
	return FormatUptime(secs), true
}

// KernelRelease reads the running kernel version.
func (c *Collector) KernelRelease() (string, bool) {
	return c.readFirstLine(filepath.Join(c.ProcDir, "sys/kernel/osrelease"))
}

// Hostname reads the kernel-reported host name.
func (c *Collector) Hostname() (string, bool) {
	return c.readFirstLine(filepath.Join(c.ProcDir, "sys/kernel/hostname"))
}

// OSInfo identifies the operating system, trying the distro release
// file, then os-release, then falling back to the kernel type. The
// first strategy that succeeds wins.
func (c *Collector) OSInfo() (name, version string) {
	strategies := []func() (string, string, bool){
		c.redhatRelease,
		c.osRelease,
	}
	for _, try := range strategies {
		if n, v, ok := try(); ok {
			return n, v
		}
	}
	if s, ok := c.readFirstLine(filepath.Join(c.ProcDir, "sys/kernel/ostype")); ok {
		return "Linux", s
	}
	return "Linux", "Linux"
}

func (c *Collector) redhatRelease() (string, string, bool) {
	data, err := os.ReadFile(filepath.Join(c.EtcDir, "redhat-release"))
	if err != nil {
		return "", "", false
	}
	return ParseRedhatRelease(string(data))
}

func (c *Collector) osRelease() (string, string, bool) {
	data, err := os.ReadFile(filepath.Join(c.EtcDir, "os-release"))
	if err != nil {
		return "", "", false
	}
	return ParseOSRelease(string(data))
}

// CPUInfo returns the CPU brand string and core count, defaulting to
// ("Unknown CPU", 0) when /proc/cpuinfo is unreadable.
func (c *Collector) CPUInfo() (brand string, cores int) {
	data, err := os.ReadFile(filepath.Join(c.ProcDir, "cpuinfo"))
	if err != nil {
		log.Debugf("sysinfo: read cpuinfo: %v", err)
		return "Unknown CPU", 0
	}
	return ParseCPUInfo(string(data))
}

// MemInfo returns the raw memory and swap counters, all zero when
// /proc/meminfo is unreadable.
func (c *Collector) MemInfo() MemStats {
	data, err := os.ReadFile(filepath.Join(c.ProcDir, "meminfo"))
	if err != nil {
		log.Debugf("sysinfo: read meminfo: %v", err)
		return MemStats{}
	}
	return ParseMemInfo(string(data))
}

// CurrentUser resolves the login identity from the environment: USER,
// then LOGNAME, then "unknown". The origin address is the first token
// of SSH_CONNECTION, or "unknown" for local sessions.
func (c *Collector) CurrentUser() (user, from string) {
	user = c.Getenv("USER")
	if user == "" {
		user = c.Getenv("LOGNAME")
	}
	if user == "" {
		user = "unknown"
	}
	from = "unknown"
	if fields := strings.Fields(c.Getenv("SSH_CONNECTION")); len(fields) > 0 {
		from = fields[0]
	}
	return user, from
}

// LoginUserCount invokes `who -q` and parses the summary line,
// returning 0 on any failure.
func (c *Collector) LoginUserCount() int {
	out, err := c.WhoCmd()
	if err != nil {
		log.Debugf("sysinfo: who -q: %v", err)
		return 0
	}
	return ParseWhoCount(out)
}

// HasDiskUsage reports whether this platform can enumerate mounted
// filesystems and query their statistics.
func (c *Collector) HasDiskUsage() bool {
	return c.Statfs != nil
}

// DiskUsageLines walks the mount table and reports usage for the root
// filesystem and any NFS mounts, in mount-table order. Mounts whose
// statistics query fails are skipped silently.
func (c *Collector) DiskUsageLines() []DiskUsage {
	if !c.HasDiskUsage() {
		return nil
	}
	f, err := os.Open(filepath.Join(c.ProcDir, "mounts"))
	if err != nil {
		log.Debugf("sysinfo: open mounts: %v", err)
		return nil
	}
	defer f.Close()

	var lines []DiskUsage
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 3 {
			continue
		}
		mount, fstype := fields[1], fields[2]

		var label string
		switch {
		case mount == "/":
			label = "Disk usage (root):"
		case fstype == "nfs" || fstype == "nfs4":
			label = "Disk usage (NFS):"
		default:
			continue
		}

		usage, ok := c.Statfs(mount)
		if !ok {
			log.Debugf("sysinfo: statfs %s failed", mount)
			continue
		}
		lines = append(lines, DiskUsage{
			Label: label,
			Mount: mount,
			Total: usage.Total,
			Used:  usage.Used,
		})
	}
	return lines
}

func (c *Collector) readFirstLine(path string) (string, bool) {
	f, err := os.Open(path)
	if err != nil {
		log.Debugf("sysinfo: read %s: %v", path, err)
		return "", false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}

func runWho() (string, error) {
	out, err := exec.Command("who", "-q").Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}
