// Package hook manages the login hook script under /etc/profile.d.
package hook

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultProfileDir is where login shells source hook scripts from.
const DefaultProfileDir = "/etc/profile.d"

const scriptName = "motdyn.sh"

const script = `#!/bin/sh
# This script is auto-generated by 'motdyn install'.
# It will run 'motdyn' on login.
if [ -x "$(command -v motdyn)" ]; then
    motdyn
fi
`

// ScriptPath returns the hook script location under profileDir.
func ScriptPath(profileDir string) string {
	return filepath.Join(profileDir, scriptName)
}

// Install writes the executable hook script. It fails when profileDir
// does not exist or the script cannot be written.
func Install(profileDir string) error {
	if _, err := os.Stat(profileDir); err != nil {
		return fmt.Errorf("directory %q not found, cannot install system-wide script", profileDir)
	}
	path := ScriptPath(profileDir)
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		return err
	}
	// WriteFile honors the umask, so force the mode.
	return os.Chmod(path, 0o755)
}

// Uninstall removes the hook script. A script that was never installed
// is not an error.
func Uninstall(profileDir string) error {
	path := ScriptPath(profileDir)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return os.Remove(path)
}

// Status reports whether the hook script is present.
func Status(profileDir string) (bool, string) {
	path := ScriptPath(profileDir)
	_, err := os.Stat(path)
	return err == nil, path
}
