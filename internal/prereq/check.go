// Package prereq checks host prerequisites before the generator runs.
package prereq

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/matrixup/matrixup/internal/artifacts"
	"github.com/matrixup/matrixup/internal/config"
)

// Requirement is a single host precondition.
type Requirement struct {
	// Name is the short identifier shown in check output.
	Name string

	// Description explains what the requirement is for.
	Description string
}

// Result is the outcome of checking one requirement.
type Result struct {
	Requirement Requirement
	Met         bool
	Detail      string
}

// Results collects the outcome of a full check pass.
type Results struct {
	Results []Result
}

// Missing returns the unmet requirements.
func (r *Results) Missing() []Result {
	var missing []Result
	for _, res := range r.Results {
		if !res.Met {
			missing = append(missing, res)
		}
	}
	return missing
}

// HasMissing reports whether any requirement is unmet.
func (r *Results) HasMissing() bool {
	return len(r.Missing()) > 0
}

// Indirected for tests, which run on hosts without docker or certs.
var (
	lookPath = exec.LookPath
	runCheck = func(name string, args ...string) error {
		return exec.Command(name, args...).Run()
	}
	statFile = os.Stat
)

// Check verifies the host prerequisites against the resolved settings:
// container tooling on PATH, a TLS certificate pair for the domain, and a
// domain that is not the shipped placeholder. Certificates for the
// placeholder domain do not count; an unconfigured domain is itself a
// missing requirement.
func Check(root string, settings config.Settings) *Results {
	results := &Results{}

	met, detail := checkBinary("docker")
	results.add(Requirement{
		Name:        "docker",
		Description: "container runtime used to run the generated manifest",
	}, met, detail)

	met, detail = checkCompose()
	results.add(Requirement{
		Name:        "docker-compose",
		Description: "compose orchestrator that interprets the manifest",
	}, met, detail)

	met, detail = checkDomain(settings)
	results.add(Requirement{
		Name:        "domain configured",
		Description: "DOMAIN_NAME in " + config.SettingsFile,
	}, met, detail)

	met, detail = checkCerts(root, settings)
	results.add(Requirement{
		Name:        "TLS certificate",
		Description: "certificate pair for " + settings.DomainName,
	}, met, detail)

	return results
}

func (r *Results) add(req Requirement, met bool, detail string) {
	r.Results = append(r.Results, Result{Requirement: req, Met: met, Detail: detail})
}

func checkBinary(name string) (bool, string) {
	path, err := lookPath(name)
	if err != nil {
		return false, name + " not found in PATH"
	}
	return true, path
}

// checkCompose accepts either the standalone docker-compose binary or the
// compose v2 plugin.
func checkCompose() (bool, string) {
	if path, err := lookPath("docker-compose"); err == nil {
		return true, path
	}
	if err := runCheck("docker", "compose", "version"); err == nil {
		return true, "docker compose plugin"
	}
	return false, "neither docker-compose nor the docker compose plugin is available"
}

func checkDomain(settings config.Settings) (bool, string) {
	if settings.DomainIsPlaceholder() {
		return false, fmt.Sprintf("DOMAIN_NAME is still the placeholder %q", config.PlaceholderDomain)
	}
	return true, settings.DomainName
}

func checkCerts(root string, settings config.Settings) (bool, string) {
	certFile, keyFile := artifacts.CertPaths(settings.DomainName)
	for _, file := range []string{certFile, keyFile} {
		if _, err := statFile(filepath.Join(root, file)); err != nil {
			return false, file + " not found"
		}
	}
	return true, certFile
}
