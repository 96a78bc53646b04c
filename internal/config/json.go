package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations for the optional config file source.
type StructuredJSONConfig struct {
	App struct {
		FrontendURL string `json:"frontend_url"`
		Version     string `json:"version"`
	} `json:"app,omitempty"`

	Auth struct {
		TokenSignKey        string   `json:"token_sign_key"`
		TokenIssuer         string   `json:"token_issuer"`
		TokenDuration       Duration `json:"token_duration"`
		AdminIDs            []int64  `json:"admin_ids"`
		UsernameMaxAttempts int      `json:"username_max_attempts"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			DSN    string `json:"dsn"`
			Driver string `json:"driver"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Providers struct {
		GoogleUserInfoURL  string   `json:"google_userinfo_url"`
		FacebookProfileURL string   `json:"facebook_profile_url"`
		RequestTimeout     Duration `json:"request_timeout"`
	} `json:"providers,omitempty"`

	Mail struct {
		SMTPAddress string `json:"smtp_address"`
		Username    string `json:"username"`
		Password    string `json:"password"`
		From        string `json:"from"`
		QueueSize   int    `json:"queue_size"`
	} `json:"mail,omitempty"`

	Captcha struct {
		Secret         string   `json:"secret"`
		VerifyURL      string   `json:"verify_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"captcha,omitempty"`
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
			FrontendURL: jsonCfg.App.FrontendURL,
			Version:     jsonCfg.App.Version,
		},
		Auth: Auth{
			TokenSignKey:        jsonCfg.Auth.TokenSignKey,
			TokenIssuer:         jsonCfg.Auth.TokenIssuer,
			TokenDuration:       time.Duration(jsonCfg.Auth.TokenDuration),
			AdminIDs:            jsonCfg.Auth.AdminIDs,
			UsernameMaxAttempts: jsonCfg.Auth.UsernameMaxAttempts,
		},
		Storage: Storage{
			DB: DB{
				DSN:    jsonCfg.Storage.DB.DSN,
				Driver: jsonCfg.Storage.DB.Driver,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Providers: Providers{
			GoogleUserInfoURL:  jsonCfg.Providers.GoogleUserInfoURL,
			FacebookProfileURL: jsonCfg.Providers.FacebookProfileURL,
			RequestTimeout:     time.Duration(jsonCfg.Providers.RequestTimeout),
		},
		Mail: Mail{
			SMTPAddress: jsonCfg.Mail.SMTPAddress,
			Username:    jsonCfg.Mail.Username,
			Password:    jsonCfg.Mail.Password,
			From:        jsonCfg.Mail.From,
			QueueSize:   jsonCfg.Mail.QueueSize,
		},
		Captcha: Captcha{
			Secret:         jsonCfg.Captcha.Secret,
			VerifyURL:      jsonCfg.Captcha.VerifyURL,
			RequestTimeout: time.Duration(jsonCfg.Captcha.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON
// unmarshaling from strings like "1h", "30s".
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
