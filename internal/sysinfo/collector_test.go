package sysinfo

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// fakeCollector builds a Collector over synthetic proc and etc trees so
// tests never touch real OS state.
func fakeCollector(t *testing.T, procFiles, etcFiles map[string]string) *Collector {
	t.Helper()
	procDir := t.TempDir()
	etcDir := t.TempDir()
	for name, content := range procFiles {
		path := filepath.Join(procDir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	for name, content := range etcFiles {
		if err := os.WriteFile(filepath.Join(etcDir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return &Collector{
		ProcDir: procDir,
		EtcDir:  etcDir,
		Getenv:  func(string) string { return "" },
		WhoCmd:  func() (string, error) { return "", errors.New("no who") },
	}
}

func TestCollectorUptime(t *testing.T) {
	c := fakeCollector(t, map[string]string{"uptime": "90061.53 1022.3\n"}, nil)
	got, ok := c.Uptime()
	if !ok || got != "1 days, 01:01:01" {
		t.Errorf("Uptime() = (%q, %v)", got, ok)
	}

	c = fakeCollector(t, nil, nil)
	if _, ok := c.Uptime(); ok {
		t.Error("missing uptime file should not be ok")
	}
}

func TestCollectorKernelAndHostname(t *testing.T) {
	c := fakeCollector(t, map[string]string{
		"sys/kernel/osrelease": "6.1.0-18-amd64\n",
		"sys/kernel/hostname":  "web01\nextra junk\n",
	}, nil)

	if got, ok := c.KernelRelease(); !ok || got != "6.1.0-18-amd64" {
		t.Errorf("KernelRelease() = (%q, %v)", got, ok)
	}
	if got, ok := c.Hostname(); !ok || got != "web01" {
		t.Errorf("Hostname() = (%q, %v)", got, ok)
	}
}

func TestOSInfoFallbackChain(t *testing.T) {
	// redhat-release wins over os-release when both exist.
	c := fakeCollector(t, nil, map[string]string{
		"redhat-release": "CentOS Linux release 7.9.2009 (Core)\n",
		"os-release":     "NAME=\"Ubuntu\"\nVERSION_ID=\"22.04\"\n",
	})
	if name, version := c.OSInfo(); name != "CentOS Linux" || version != "7.9.2009 (Core)" {
		t.Errorf("OSInfo() = (%q, %q), want redhat-release result", name, version)
	}

	// os-release is second.
	c = fakeCollector(t, nil, map[string]string{
		"os-release": "NAME=\"Ubuntu\"\nVERSION_ID=\"22.04\"\n",
	})
	if name, version := c.OSInfo(); name != "Ubuntu" || version != "22.04" {
		t.Errorf("OSInfo() = (%q, %q), want os-release result", name, version)
	}

	// ostype fallback is third.
	c = fakeCollector(t, map[string]string{"sys/kernel/ostype": "Linux\n"}, nil)
	if name, version := c.OSInfo(); name != "Linux" || version != "Linux" {
		t.Errorf("OSInfo() = (%q, %q), want ostype fallback", name, version)
	}

	// Everything unreadable still yields a value.
	c = fakeCollector(t, nil, nil)
	if name, version := c.OSInfo(); name != "Linux" || version != "Linux" {
		t.Errorf("OSInfo() = (%q, %q), want literal fallback", name, version)
	}
}

func TestCollectorCurrentUser(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		wantUser string
		wantFrom string
	}{
		{
			name:     "USER wins",
			env:      map[string]string{"USER": "alice", "LOGNAME": "bob"},
			wantUser: "alice",
			wantFrom: "unknown",
		},
		{
			name:     "LOGNAME fallback",
			env:      map[string]string{"LOGNAME": "bob"},
			wantUser: "bob",
			wantFrom: "unknown",
		},
		{
			name:     "no identity",
			env:      map[string]string{},
			wantUser: "unknown",
			wantFrom: "unknown",
		},
		{
			name:     "ssh origin",
			env:      map[string]string{"USER": "alice", "SSH_CONNECTION": "10.0.0.5 51234 10.0.0.1 22"},
			wantUser: "alice",
			wantFrom: "10.0.0.5",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := fakeCollector(t, nil, nil)
			c.Getenv = func(k string) string { return tt.env[k] }
			user, from := c.CurrentUser()
			if user != tt.wantUser || from != tt.wantFrom {
				t.Errorf("CurrentUser() = (%q, %q), want (%q, %q)",
					user, from, tt.wantUser, tt.wantFrom)
			}
		})
	}
}

func TestLoginUserCount(t *testing.T) {
	c := fakeCollector(t, nil, nil)
	c.WhoCmd = func() (string, error) { return "alice bob\n# users=2\n", nil }
	if got := c.LoginUserCount(); got != 2 {
		t.Errorf("LoginUserCount() = %d, want 2", got)
	}

	c.WhoCmd = func() (string, error) { return "", errors.New("exec: who: not found") }
	if got := c.LoginUserCount(); got != 0 {
		t.Errorf("LoginUserCount() = %d, want 0 on failure", got)
	}
}

const sampleMounts = `sysfs /sys sysfs rw 0 0
/dev/sda1 / ext4 rw,relatime 0 0
tmpfs /tmp tmpfs rw 0 0
fileserver:/export /mnt/share nfs4 rw 0 0
/dev/sdb1 /data ext4 rw 0 0
`

func TestDiskUsageLines(t *testing.T) {
	c := fakeCollector(t, map[string]string{"mounts": sampleMounts}, nil)
	c.Statfs = func(path string) (MountUsage, bool) {
		switch path {
		case "/":
			return MountUsage{Total: 100 << 30, Used: 40 << 30}, true
		case "/mnt/share":
			return MountUsage{Total: 1 << 40, Used: 1 << 39}, true
		}
		return MountUsage{}, false
	}

	lines := c.DiskUsageLines()
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %+v", len(lines), lines)
	}
	if lines[0].Label != "Disk usage (root):" || lines[0].Mount != "/" {
		t.Errorf("first line = %+v", lines[0])
	}
	if lines[1].Label != "Disk usage (NFS):" || lines[1].Mount != "/mnt/share" {
		t.Errorf("second line = %+v", lines[1])
	}
}

func TestDiskUsageSkipsFailedStatfs(t *testing.T) {
	c := fakeCollector(t, map[string]string{"mounts": sampleMounts}, nil)
	c.Statfs = func(string) (MountUsage, bool) { return MountUsage{}, false }
	if lines := c.DiskUsageLines(); len(lines) != 0 {
		t.Errorf("expected no lines when every statfs fails, got %+v", lines)
	}
}

func TestDiskUsageCapabilityAbsent(t *testing.T) {
	c := fakeCollector(t, map[string]string{"mounts": sampleMounts}, nil)
	c.Statfs = nil
	if c.HasDiskUsage() {
		t.Error("nil statfs hook should report capability absent")
	}
	if lines := c.DiskUsageLines(); lines != nil {
		t.Errorf("expected nil lines, got %+v", lines)
	}
}
