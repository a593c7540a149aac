// Package artifacts renders and writes the generated deployment files.
//
// Rendering is a pure function of (settings, secrets): every artifact is
// built from typed structs and serialized with the format's own encoder, so
// a hostile settings value cannot break the emitted YAML or JSON. No
// artifact's content depends on another artifact's content; the shared
// values all come from the same Input.
package artifacts

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/matrixup/matrixup/internal/config"
	"github.com/matrixup/matrixup/internal/secrets"
)

// Output paths, relative to the working directory.
const (
	ComposeFile    = "docker-compose.yml"
	LiveKitFile    = "livekit.yaml"
	ElementFile    = "element/config.json"
	NginxFile      = "nginx/matrix.conf"
	HomeserverFile = "data/synapse/homeserver.yaml"

	DataDir         = "data"
	SynapseDataDir  = "data/synapse"
	PostgresDataDir = "data/postgres"
	CertsDir        = "data/certs"
	NginxDir        = "nginx"
	ElementDir      = "element"
)

// Backend service names and ports, as referenced by both the manifest and the
// proxy rules.
const (
	synapseHost = "synapse"
	synapsePort = 8008

	livekitHost    = "livekit"
	livekitPort    = 7880
	livekitTCPPort = 7881
	rtcRangeStart  = 50000
	rtcRangeEnd    = 60000

	postgresHost = "postgres"
	redisHost    = "redis"
	elementHost  = "element"
)

func addr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}

// CertPaths returns the expected TLS certificate pair for the domain,
// relative to the working directory.
func CertPaths(domain string) (certFile, keyFile string) {
	return filepath.Join(CertsDir, domain+".crt"), filepath.Join(CertsDir, domain+".key")
}

// Input is everything the renderers consume.
type Input struct {
	Settings config.Settings
	Secrets  secrets.Bundle
}

type artifact struct {
	path   string
	mode   os.FileMode
	render func(Input) ([]byte, error)
}

// all lists the five artifacts in write order. Files that embed credentials
// are written owner-only.
var all = []artifact{
	{ComposeFile, 0o600, renderCompose},
	{LiveKitFile, 0o600, renderLiveKit},
	{ElementFile, 0o644, renderElement},
	{NginxFile, 0o644, renderNginx},
	{HomeserverFile, 0o600, renderHomeserver},
}

// WriteAll creates the directory tree under root and writes every artifact.
// Existing files are overwritten wholesale; there is no partial update.
func WriteAll(root string, in Input) error {
	dirs := []string{SynapseDataDir, PostgresDataDir, CertsDir, NginxDir, ElementDir}
	for _, dir := range dirs {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o750); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	for _, a := range all {
		content, err := a.render(in)
		if err != nil {
			return fmt.Errorf("failed to render %s: %w", a.path, err)
		}
		target := filepath.Join(root, a.path)
		if err := os.WriteFile(target, content, a.mode); err != nil {
			return fmt.Errorf("failed to write %s: %w", a.path, err)
		}
	}
	return nil
}
