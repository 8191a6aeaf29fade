//go:build linux

package sysinfo

import "syscall"

// statfsUsage queries filesystem statistics for a mount point. Total
// and used bytes derive from the fragment size and block counts, with
// saturating subtraction for the used block count.
func statfsUsage(path string) (MountUsage, bool) {
	var st syscall.Statfs_t
	if err := syscall.Statfs(path, &st); err != nil {
		return MountUsage{}, false
	}

	frsize := uint64(st.Frsize)
	blocks := uint64(st.Blocks)
	bfree := uint64(st.Bfree)

	usedBlocks := uint64(0)
	if blocks > bfree {
		usedBlocks = blocks - bfree
	}
	return MountUsage{
		Total: frsize * blocks,
		Used:  frsize * usedBlocks,
	}, true
}

func defaultStatfs() func(string) (MountUsage, bool) {
	return statfsUsage
}
