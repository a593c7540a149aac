package artifacts

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type homeserverListener struct {
	Port          int                  `yaml:"port"`
	Type          string               `yaml:"type"`
	TLS           bool                 `yaml:"tls"`
	XForwarded    bool                 `yaml:"x_forwarded"`
	BindAddresses []string             `yaml:"bind_addresses"`
	Resources     []homeserverResource `yaml:"resources"`
}

type homeserverResource struct {
	Names    []string `yaml:"names"`
	Compress bool     `yaml:"compress"`
}

type homeserverDatabase struct {
	Name string       `yaml:"name"`
	Args psycopg2Args `yaml:"args"`
}

type psycopg2Args struct {
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	Host     string `yaml:"host"`
	CPMin    int    `yaml:"cp_min"`
	CPMax    int    `yaml:"cp_max"`
}

type homeserverRedis struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Password string `yaml:"password"`
}

type homeserverLiveKit struct {
	URL       string `yaml:"url"`
	APIKey    string `yaml:"api_key"`
	APISecret string `yaml:"api_secret"`
}

// homeserverConfig is the homeserver configuration document. Field order is
// the order the sections appear in the written file.
type homeserverConfig struct {
	ServerName                string               `yaml:"server_name"`
	PublicBaseURL             string               `yaml:"public_baseurl"`
	PIDFile                   string               `yaml:"pid_file"`
	Listeners                 []homeserverListener `yaml:"listeners"`
	Database                  homeserverDatabase   `yaml:"database"`
	Redis                     homeserverRedis      `yaml:"redis"`
	MediaStorePath            string               `yaml:"media_store_path"`
	MaxUploadSize             string               `yaml:"max_upload_size"`
	EnableRegistration        bool                 `yaml:"enable_registration"`
	RegistrationSharedSecret  string               `yaml:"registration_shared_secret"`
	ReportStats               bool                 `yaml:"report_stats"`
	LiveKit                   homeserverLiveKit    `yaml:"livekit"`
	FederationDomainWhitelist []string             `yaml:"federation_domain_whitelist,omitempty"`
}

// renderHomeserver builds the homeserver config. The database and redis
// sections carry exactly the credentials baked into the manifest, and the
// livekit section mirrors the SFU config's key/secret pair. The federation
// whitelist is a structural field, so the serializer emits the
// federation_domain_whitelist key followed by one list line per domain.
func renderHomeserver(in Input) ([]byte, error) {
	s, sec := in.Settings, in.Secrets

	cfg := homeserverConfig{
		ServerName:    s.DomainName,
		PublicBaseURL: fmt.Sprintf("https://%s/", s.DomainName),
		PIDFile:       "/data/homeserver.pid",
		Listeners: []homeserverListener{
			{
				Port:          synapsePort,
				Type:          "http",
				TLS:           false,
				XForwarded:    true,
				BindAddresses: []string{"0.0.0.0"},
				Resources: []homeserverResource{
					{Names: []string{"client", "federation"}, Compress: false},
				},
			},
		},
		Database: homeserverDatabase{
			Name: "psycopg2",
			Args: psycopg2Args{
				User:     sec.PostgresUser,
				Password: sec.PostgresPassword,
				Database: sec.PostgresDB,
				Host:     postgresHost,
				CPMin:    5,
				CPMax:    10,
			},
		},
		Redis: homeserverRedis{
			Enabled:  true,
			Host:     redisHost,
			Password: sec.RedisPassword,
		},
		MediaStorePath:           "/data/media_store",
		MaxUploadSize:            s.MaxUploadSize,
		EnableRegistration:       false,
		RegistrationSharedSecret: sec.RegistrationSharedSecret,
		ReportStats:              false,
		LiveKit: homeserverLiveKit{
			URL:       fmt.Sprintf("wss://%s/livekit/", s.DomainName),
			APIKey:    sec.LiveKitKey,
			APISecret: sec.LiveKitSecret,
		},
		FederationDomainWhitelist: s.WhitelistDomains(),
	}

	return yaml.Marshal(cfg)
}
