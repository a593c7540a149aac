package artifacts

import (
	"io/fs"
	"os"
	"path/filepath"
)

// synapseUID is the numeric user/group the homeserver container process runs
// as; its data directory must be writable by that id.
const synapseUID = 991

// chown and chmod are indirected for tests, which run unprivileged.
var (
	chown = os.Chown
	chmod = os.Chmod
)

// FixPermissions finalizes ownership and permissions after all artifacts are
// written: the homeserver data directory is handed to the homeserver
// container user and the database data directory is opened up for the
// database container's own user. Both operations usually need root; failures
// are reported through warnf and deliberately non-fatal.
func FixPermissions(root string, warnf func(format string, args ...any)) {
	synapseDir := filepath.Join(root, SynapseDataDir)
	err := filepath.WalkDir(synapseDir, func(path string, _ fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		return chown(path, synapseUID, synapseUID)
	})
	if err != nil {
		warnf("could not set ownership on %s: %v", SynapseDataDir, err)
	}

	if err := chmod(filepath.Join(root, PostgresDataDir), 0o777); err != nil {
		warnf("could not relax permissions on %s: %v", PostgresDataDir, err)
	}
}

// ExistingState returns the pre-existing generator output found under root:
// the manifest file and the data directory. A non-empty result means a prior
// run's secrets are still live and regeneration is destructive.
func ExistingState(root string) []string {
	var found []string
	for _, path := range []string{ComposeFile, DataDir} {
		if _, err := os.Stat(filepath.Join(root, path)); err == nil {
			found = append(found, path)
		}
	}
	return found
}
