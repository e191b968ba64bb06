package config

import "os"

// AndroidListenAddr keeps the embedded server reachable only from the device
const AndroidListenAddr = "127.0.0.1:5000"

// androidDefaults are used by the Android shell for anything the device has
// not configured yet
var androidDefaults = map[string]string{
	"SECRET_KEY":                  "android-secret-key-change-in-production-12345678",
	"ADMIN_USERNAME":              "admin",
	"ADMIN_PASSWORD":              "admin",
	"GOOGLE_SERVICE_ACCOUNT_FILE": "credentials.json",
	"DEV_MODE":                    "false",
	"APP_ENV":                     "production",
	"SESSION_COOKIE_HTTPONLY":     "true",
	"SESSION_COOKIE_SAMESITE":     "Lax",
	"SESSION_COOKIE_SECURE":       "false",
	"LISTEN_ADDR":                 AndroidListenAddr,
}

// ApplyAndroidDefaults fills unset environment keys with the Android shell
// defaults and returns the keys it set
func ApplyAndroidDefaults() ([]string, error) {
	var applied []string
	for key, value := range androidDefaults {
		if os.Getenv(key) != "" {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return applied, err
		}
		applied = append(applied, key)
	}
	return applied, nil
}

// LoadAndroid reads the device's env files, fills the Android defaults for
// anything still unset and parses the result
func LoadAndroid(files ...string) (*Config, []string, error) {
	if err := loadEnvFiles(files...); err != nil {
		return nil, nil, err
	}

	applied, err := ApplyAndroidDefaults()
	if err != nil {
		return nil, applied, err
	}

	cfg, err := Parse()
	if err != nil {
		return nil, applied, err
	}
	return cfg, applied, nil
}
