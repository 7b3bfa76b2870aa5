package config

import (
	"strings"
	"testing"
)

func tlsConfig(tls TLSConfig) *Config {
	return &Config{Server: ServerConfig{TLS: tls}}
}

func TestValidateTLSMode(t *testing.T) {
	tests := []struct {
		name    string
		tls     TLSConfig
		wantErr string
	}{
		{
			name: "disabled mode needs nothing",
			tls:  TLSConfig{Mode: "disabled"},
		},
		{
			name:    "unknown mode rejected",
			tls:     TLSConfig{Mode: "tls-everywhere"},
			wantErr: "invalid TLS mode",
		},
		{
			name: "server mode with files",
			tls:  TLSConfig{Mode: "server", CertFile: "cert.pem", KeyFile: "key.pem"},
		},
		{
			name: "server mode with content",
			tls:  TLSConfig{Mode: "server", CertContent: "PEM", KeyContent: "PEM"},
		},
		{
			name:    "server mode missing key",
			tls:     TLSConfig{Mode: "server", CertFile: "cert.pem"},
			wantErr: "certificate and key are required",
		},
		{
			name: "mutual mode with CA",
			tls:  TLSConfig{Mode: "mutual", CertFile: "cert.pem", KeyFile: "key.pem", CAFile: "ca.pem"},
		},
		{
			name:    "mutual mode missing CA",
			tls:     TLSConfig{Mode: "mutual", CertFile: "cert.pem", KeyFile: "key.pem"},
			wantErr: "CA certificate is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tlsConfig(tt.tls).ValidateTLSConfig()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateNoDuplicateCertSources(t *testing.T) {
	tests := []struct {
		name    string
		tls     TLSConfig
		wantErr string
	}{
		{
			name:    "cert file and content together",
			tls:     TLSConfig{Mode: "server", CertFile: "cert.pem", CertContent: "PEM", KeyFile: "key.pem"},
			wantErr: "cannot specify both certFile and certContent",
		},
		{
			name:    "key file and content together",
			tls:     TLSConfig{Mode: "server", CertFile: "cert.pem", KeyFile: "key.pem", KeyContent: "PEM"},
			wantErr: "cannot specify both keyFile and keyContent",
		},
		{
			name: "CA file and content together",
			tls: TLSConfig{Mode: "mutual", CertFile: "cert.pem", KeyFile: "key.pem",
				CAFile: "ca.pem", CAContent: "PEM"},
			wantErr: "cannot specify both caFile and caContent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tlsConfig(tt.tls).ValidateTLSConfig()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateClientAuthPolicy(t *testing.T) {
	base := TLSConfig{Mode: "mutual", CertFile: "cert.pem", KeyFile: "key.pem", CAFile: "ca.pem"}

	for _, policy := range []string{"", "require", "request", "verify"} {
		tls := base
		tls.ClientAuthPolicy = policy
		if err := tlsConfig(tls).ValidateTLSConfig(); err != nil {
			t.Errorf("policy %q: unexpected error: %v", policy, err)
		}
	}

	tls := base
	tls.ClientAuthPolicy = "optional"
	if err := tlsConfig(tls).ValidateTLSConfig(); err == nil {
		t.Error("expected error for unknown client auth policy")
	}
}

func TestValidateTLSVersion(t *testing.T) {
	for _, version := range []string{"", "1.2", "1.3"} {
		tls := TLSConfig{Mode: "disabled", MinVersion: version}
		if err := tlsConfig(tls).ValidateTLSConfig(); err != nil {
			t.Errorf("version %q: unexpected error: %v", version, err)
		}
	}

	tls := TLSConfig{Mode: "server", CertFile: "cert.pem", KeyFile: "key.pem", MinVersion: "1.0"}
	err := tlsConfig(tls).ValidateTLSConfig()
	if err == nil || !strings.Contains(err.Error(), "invalid TLS minVersion") {
		t.Errorf("expected minVersion error, got %v", err)
	}
}
