package artifacts

import "gopkg.in/yaml.v3"

type livekitRTC struct {
	TCPPort        int  `yaml:"tcp_port"`
	PortRangeStart int  `yaml:"port_range_start"`
	PortRangeEnd   int  `yaml:"port_range_end"`
	UseExternalIP  bool `yaml:"use_external_ip"`
}

type livekitLogging struct {
	Level string `yaml:"level"`
}

type livekitConfig struct {
	Port    int               `yaml:"port"`
	RTC     livekitRTC        `yaml:"rtc"`
	Keys    map[string]string `yaml:"keys"`
	Logging livekitLogging    `yaml:"logging"`
}

// renderLiveKit builds the SFU config. The keys map holds exactly the one
// generated key/secret pair; the manifest and homeserver config carry the
// same values.
func renderLiveKit(in Input) ([]byte, error) {
	cfg := livekitConfig{
		Port: livekitPort,
		RTC: livekitRTC{
			TCPPort:        livekitTCPPort,
			PortRangeStart: rtcRangeStart,
			PortRangeEnd:   rtcRangeEnd,
			UseExternalIP:  true,
		},
		Keys: map[string]string{
			in.Secrets.LiveKitKey: in.Secrets.LiveKitSecret,
		},
		Logging: livekitLogging{Level: "info"},
	}
	return yaml.Marshal(cfg)
}
