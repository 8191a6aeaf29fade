//go:build !linux

package sysinfo

// Platforms without a mount table and statfs primitive get no disk
// usage section; the collector treats a nil hook as capability absent.
func defaultStatfs() func(string) (MountUsage, bool) {
	return nil
}
