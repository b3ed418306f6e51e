package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and the
// string-friendly [Duration] type so operators can write "24h" instead of
// nanosecond integers.
type StructuredJSONConfig struct {
	App struct {
		Environment string `json:"environment"`
		Version     string `json:"version"`
		SentryDSN   string `json:"sentry_dsn"`
	} `json:"app,omitempty"`

	Auth struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		BcryptCost    int      `json:"bcrypt_cost"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Federated struct {
		TokenInfoURL   string   `json:"tokeninfo_url"`
		ClientID       string   `json:"client_id"`
		RequestTimeout Duration `json:"request_timeout"`

		Page struct {
			APIKey     string `json:"api_key"`
			AuthDomain string `json:"auth_domain"`
			ProjectID  string `json:"project_id"`
			AppID      string `json:"app_id"`
		} `json:"page,omitempty"`
	} `json:"federated,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Environment: jsonCfg.App.Environment,
			Version:     jsonCfg.App.Version,
			SentryDSN:   jsonCfg.App.SentryDSN,
		},
		Auth: Auth{
			TokenSignKey:  jsonCfg.Auth.TokenSignKey,
			TokenIssuer:   jsonCfg.Auth.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.Auth.TokenDuration),
			BcryptCost:    jsonCfg.Auth.BcryptCost,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Federated: Federated{
			TokenInfoURL:   jsonCfg.Federated.TokenInfoURL,
			ClientID:       jsonCfg.Federated.ClientID,
			RequestTimeout: time.Duration(jsonCfg.Federated.RequestTimeout),
			Page: FederatedPage{
				APIKey:     jsonCfg.Federated.Page.APIKey,
				AuthDomain: jsonCfg.Federated.Page.AuthDomain,
				ProjectID:  jsonCfg.Federated.Page.ProjectID,
				AppID:      jsonCfg.Federated.Page.AppID,
			},
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
