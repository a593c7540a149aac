package artifacts

import (
	"encoding/json"
	"fmt"
)

type elementHomeserver struct {
	BaseURL    string `json:"base_url"`
	ServerName string `json:"server_name"`
}

type elementServerConfig struct {
	Homeserver elementHomeserver `json:"m.homeserver"`
}

type elementConfig struct {
	DefaultServerConfig elementServerConfig `json:"default_server_config"`
	BrandName           string              `json:"brand"`
	DefaultTheme        string              `json:"default_theme"`
	ShowLabsSettings    bool                `json:"show_labs_settings"`
	Features            map[string]bool     `json:"features"`
}

// renderElement builds the web client config. json.Marshal escapes the
// interpolated domain, so a settings value can never produce malformed JSON.
func renderElement(in Input) ([]byte, error) {
	cfg := elementConfig{
		DefaultServerConfig: elementServerConfig{
			Homeserver: elementHomeserver{
				BaseURL:    fmt.Sprintf("https://%s", in.Settings.DomainName),
				ServerName: in.Settings.DomainName,
			},
		},
		BrandName:        "Element",
		DefaultTheme:     "light",
		ShowLabsSettings: true,
		Features: map[string]bool{
			"feature_video_rooms": true,
			"feature_group_calls": true,
		},
	}

	out, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
