package sysinfo

import (
	"strconv"
	"strings"
)

// ParseUptimeSeconds extracts whole seconds since boot from the
// contents of /proc/uptime ("25333.53 1022.3").
func ParseUptimeSeconds(data string) (uint64, bool) {
	fields := strings.Fields(data)
	if len(fields) == 0 {
		return 0, false
	}
	secs, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || secs < 0 {
		return 0, false
	}
	return uint64(secs), true
}

// ParseRedhatRelease splits a "<name> release <version>" line, the
// format of /etc/redhat-release.
func ParseRedhatRelease(data string) (name, version string, ok bool) {
	line := strings.TrimSpace(data)
	const needle = " release "
	pos := strings.Index(line, needle)
	if pos == -1 {
		return "", "", false
	}
	return line[:pos], line[pos+len(needle):], true
}

// ParseOSRelease extracts NAME and VERSION_ID from /etc/os-release
// KEY=VALUE lines, stripping surrounding quotes. Both keys must be
// present for the parse to succeed.
func ParseOSRelease(data string) (name, version string, ok bool) {
	for _, line := range strings.Split(data, "\n") {
		if v, found := strings.CutPrefix(line, "NAME="); found {
			name = strings.Trim(strings.TrimSpace(v), `"`)
		} else if v, found := strings.CutPrefix(line, "VERSION_ID="); found {
			version = strings.Trim(strings.TrimSpace(v), `"`)
		}
	}
	if name == "" || version == "" {
		return "", "", false
	}
	return name, version, true
}

// ParseCPUInfo counts "processor" records in /proc/cpuinfo and reports
// the first "model name" value as the brand string.
func ParseCPUInfo(data string) (brand string, cores int) {
	brand = "Unknown CPU"
	for _, line := range strings.Split(data, "\n") {
		if strings.HasPrefix(line, "processor") {
			cores++
		} else if rest, found := strings.CutPrefix(line, "model name"); found {
			parts := strings.SplitN(rest, ":", 2)
			if len(parts) == 2 && brand == "Unknown CPU" {
				brand = strings.TrimSpace(parts[1])
			}
		}
	}
	return brand, cores
}

// MemStats holds the raw kilobyte counters from /proc/meminfo.
type MemStats struct {
	MemTotalKB  uint64
	MemAvailKB  uint64
	SwapTotalKB uint64
	SwapFreeKB  uint64
}

// ParseMemInfo reads the MemTotal, MemAvailable, SwapTotal and SwapFree
// lines of /proc/meminfo. Missing or unparsable values stay 0. When
// MemAvailable is absent or zero, MemFree stands in for it.
func ParseMemInfo(data string) MemStats {
	var st MemStats
	var memFree uint64
	for _, line := range strings.Split(data, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		val, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			continue
		}
		switch fields[0] {
		case "MemTotal:":
			st.MemTotalKB = val
		case "MemAvailable:":
			st.MemAvailKB = val
		case "MemFree:":
			memFree = val
		case "SwapTotal:":
			st.SwapTotalKB = val
		case "SwapFree:":
			st.SwapFreeKB = val
		}
	}
	if st.MemAvailKB == 0 {
		st.MemAvailKB = memFree
	}
	return st
}

// ParseWhoCount scans `who -q` output for the "# users=" marker and
// returns the trailing integer, or 0 when the marker is missing or the
// number does not parse.
func ParseWhoCount(out string) int {
	const marker = "# users="
	for _, line := range strings.Split(out, "\n") {
		pos := strings.Index(line, marker)
		if pos == -1 {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(line[pos+len(marker):]))
		if err != nil {
			return 0
		}
		return n
	}
	return 0
}
