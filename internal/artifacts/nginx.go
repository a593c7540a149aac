package artifacts

import (
	"bytes"
	"text/template"
)

type nginxData struct {
	Domain        string
	MaxUploadSize string
	SynapseAddr   string
	LiveKitAddr   string
	ElementAddr   string
}

// nginxTemplate routes the Matrix client/federation APIs to the homeserver,
// the SFU websocket to livekit, and everything else to the web client. The
// domain value is validated as a hostname before rendering ever runs.
var nginxTemplate = template.Must(template.New("matrix.conf").Parse(`server {
    listen 80;
    listen [::]:80;
    server_name {{ .Domain }};

    return 301 https://$host$request_uri;
}

server {
    listen 443 ssl;
    listen [::]:443 ssl;
    http2 on;
    server_name {{ .Domain }};

    ssl_certificate /etc/nginx/certs/{{ .Domain }}.crt;
    ssl_certificate_key /etc/nginx/certs/{{ .Domain }}.key;

    client_max_body_size {{ .MaxUploadSize }};

    location /.well-known/matrix/server {
        default_type application/json;
        return 200 '{"m.server": "{{ .Domain }}:443"}';
    }

    location /.well-known/matrix/client {
        default_type application/json;
        add_header Access-Control-Allow-Origin *;
        return 200 '{"m.homeserver": {"base_url": "https://{{ .Domain }}"}}';
    }

    location /_matrix {
        proxy_pass http://{{ .SynapseAddr }};
        proxy_set_header Host $host;
        proxy_set_header X-Forwarded-For $remote_addr;
        proxy_set_header X-Forwarded-Proto $scheme;
    }

    location /_synapse/client {
        proxy_pass http://{{ .SynapseAddr }};
        proxy_set_header Host $host;
        proxy_set_header X-Forwarded-For $remote_addr;
        proxy_set_header X-Forwarded-Proto $scheme;
    }

    location /livekit/ {
        proxy_pass http://{{ .LiveKitAddr }}/;
        proxy_http_version 1.1;
        proxy_set_header Upgrade $http_upgrade;
        proxy_set_header Connection "upgrade";
        proxy_set_header Host $host;
    }

    location / {
        proxy_pass http://{{ .ElementAddr }};
        proxy_set_header Host $host;
    }
}
`))

// renderNginx builds the reverse-proxy rules.
func renderNginx(in Input) ([]byte, error) {
	data := nginxData{
		Domain:        in.Settings.DomainName,
		MaxUploadSize: in.Settings.MaxUploadSize,
		SynapseAddr:   addr(synapseHost, synapsePort),
		LiveKitAddr:   addr(livekitHost, livekitPort),
		ElementAddr:   addr(elementHost, 80),
	}

	var buf bytes.Buffer
	if err := nginxTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
