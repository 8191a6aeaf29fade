package sysinfo

import "fmt"

// FormatUptime renders seconds since boot as "D days, HH:MM:SS", or
// "HH:MM:SS" when less than a day.
func FormatUptime(secs uint64) string {
	days := secs / 86400
	secs %= 86400
	hours := secs / 3600
	secs %= 3600
	minutes := secs / 60
	secs %= 60

	if days > 0 {
		return fmt.Sprintf("%d days, %02d:%02d:%02d", days, hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}

// GBAndRatio converts (total, free) kilobyte counters to used and total
// gigabytes plus the usage percentage. Subtraction saturates at zero
// and a zero total yields a zero percentage.
func GBAndRatio(totalKB, freeKB uint64) (usedGB, totalGB, pct float64) {
	usedKB := uint64(0)
	if totalKB > freeKB {
		usedKB = totalKB - freeKB
	}
	totalGB = kbToGB(totalKB)
	usedGB = kbToGB(usedKB)
	if totalGB > 0 {
		pct = usedGB / totalGB * 100
	}
	return usedGB, totalGB, pct
}

func kbToGB(kb uint64) float64 {
	return float64(kb) / 1024 / 1024
}

// ScaleBytes renders used and total byte counts in the same
// human-readable unit, chosen so the larger of the two fits. The
// percentage is computed on the scaled values and is 0 when the scaled
// total is 0.
func ScaleBytes(used, total uint64) (usedStr, totalStr string, pct float64) {
	bigger := used
	if total > bigger {
		bigger = total
	}
	scale, suffix := bestUnitScale(float64(bigger))

	usedF := float64(used) / scale
	totalF := float64(total) / scale
	if totalF > 0 {
		pct = usedF / totalF * 100
	}
	return fmt.Sprintf("%.2f %s", usedF, suffix),
		fmt.Sprintf("%.2f %s", totalF, suffix),
		pct
}

// bestUnitScale picks the largest power-of-1024 unit not exceeding the
// given byte count. Below 1 KiB raw bytes are used.
func bestUnitScale(bytes float64) (float64, string) {
	const (
		kib = 1024.0
		mib = kib * 1024
		gib = mib * 1024
		tib = gib * 1024
		pib = tib * 1024
	)
	switch {
	case bytes >= pib:
		return pib, "PB"
	case bytes >= tib:
		return tib, "TB"
	case bytes >= gib:
		return gib, "GB"
	case bytes >= mib:
		return mib, "MB"
	case bytes >= kib:
		return kib, "KB"
	default:
		return 1, "B"
	}
}
