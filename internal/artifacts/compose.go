package artifacts

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type composeService struct {
	Image       string            `yaml:"image"`
	Restart     string            `yaml:"restart,omitempty"`
	Command     []string          `yaml:"command,omitempty"`
	Environment map[string]string `yaml:"environment,omitempty"`
	Ports       []string          `yaml:"ports,omitempty"`
	Volumes     []string          `yaml:"volumes,omitempty"`
	DependsOn   []string          `yaml:"depends_on,omitempty"`
}

type composeManifest struct {
	Services map[string]composeService `yaml:"services"`
}

// renderCompose builds the orchestration manifest. The credentials baked into
// the service definitions are the same Bundle values the homeserver and SFU
// configs reference.
func renderCompose(in Input) ([]byte, error) {
	sec := in.Secrets

	manifest := composeManifest{
		Services: map[string]composeService{
			postgresHost: {
				Image:   "postgres:15-alpine",
				Restart: "unless-stopped",
				Environment: map[string]string{
					"POSTGRES_USER":     sec.PostgresUser,
					"POSTGRES_PASSWORD": sec.PostgresPassword,
					"POSTGRES_DB":       sec.PostgresDB,
					// Synapse refuses to start against a database created
					// with a non-C collation.
					"POSTGRES_INITDB_ARGS": "--encoding=UTF8 --locale=C",
				},
				Volumes: []string{"./" + PostgresDataDir + ":/var/lib/postgresql/data"},
			},
			redisHost: {
				Image:   "redis:7-alpine",
				Restart: "unless-stopped",
				Command: []string{"redis-server", "--requirepass", sec.RedisPassword},
			},
			synapseHost: {
				Image:   "matrixdotorg/synapse:latest",
				Restart: "unless-stopped",
				Environment: map[string]string{
					"SYNAPSE_CONFIG_PATH": "/data/homeserver.yaml",
				},
				Volumes:   []string{"./" + SynapseDataDir + ":/data"},
				DependsOn: []string{postgresHost, redisHost},
			},
			livekitHost: {
				Image:   "livekit/livekit-server:latest",
				Restart: "unless-stopped",
				Command: []string{"--config", "/etc/livekit.yaml"},
				Environment: map[string]string{
					"LIVEKIT_KEYS": fmt.Sprintf("%s: %s", sec.LiveKitKey, sec.LiveKitSecret),
				},
				Ports: []string{
					fmt.Sprintf("%d:%d", livekitPort, livekitPort),
					fmt.Sprintf("%d:%d", livekitTCPPort, livekitTCPPort),
					fmt.Sprintf("%d-%d:%d-%d/udp", rtcRangeStart, rtcRangeEnd, rtcRangeStart, rtcRangeEnd),
				},
				Volumes: []string{"./" + LiveKitFile + ":/etc/livekit.yaml:ro"},
			},
			elementHost: {
				Image:   "vectorim/element-web:latest",
				Restart: "unless-stopped",
				Volumes: []string{"./" + ElementFile + ":/app/config.json:ro"},
			},
			"nginx": {
				Image:   "nginx:alpine",
				Restart: "unless-stopped",
				Ports:   []string{"80:80", "443:443"},
				Volumes: []string{
					"./" + NginxFile + ":/etc/nginx/conf.d/matrix.conf:ro",
					"./" + CertsDir + ":/etc/nginx/certs:ro",
				},
				DependsOn: []string{synapseHost, elementHost, livekitHost},
			},
		},
	}

	return yaml.Marshal(manifest)
}
