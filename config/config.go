package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"gargoton.petite-maison-orange.fr/eric/pmorange/doubleslider"
)

//go:embed pmorange.yaml
var defaultConfig []byte

var ErrNoConfigPath = errors.New("no writable config path")

const envConfigFile = "PMORANGE_CONFIG"
const envPrefix = "PMORANGE_CONFIG__"
const localConfigFile = ".pmorange.yml"

const defaultFillWidth = 100.0

// Config is a tree of lower-cased keys loaded from YAML.
type Config struct {
	path   string
	mutex  sync.Mutex
	config map[string]interface{}
}

// LoadConfig loads the configuration from the first readable file among:
//   - filename, when not empty,
//   - the file named by $PMORANGE_CONFIG,
//   - ./.pmorange.yml,
//   - ~/.pmorange.yml,
//
// and falls back on the embedded default. Variables named
// PMORANGE_CONFIG__SECTION__KEY then override single keys; their value is
// parsed as a YAML scalar.
//
// The returned Config remembers where Save will write: the file it was read
// from when writable, otherwise the first writable candidate.
func LoadConfig(filename string) (*Config, error) {
	candidates := []string{filename, os.Getenv(envConfigFile), localConfigFile, homeConfigPath()}

	var data []byte
	path := ""
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		log.Infof("✅ Trying to load config %s", candidate)
		content, err := os.ReadFile(candidate)
		if err != nil {
			log.Warnf("❌ cannot read config file %s", candidate)
			continue
		}
		data, path = content, candidate
		break
	}

	if path == "" {
		log.Infof("✅ Using default embedded config")
		data = defaultConfig
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid YAML config %s: %w", path, err)
	}

	cfg := &Config{config: lowerKeysMap(raw)}
	applyEnvOverrides(cfg)

	if path == "" || !isWriteable(path) {
		path = ""
		for _, candidate := range candidates {
			if candidate != "" && isWriteable(candidate) {
				path = candidate
				break
			}
		}
	}
	cfg.path = path

	if path != "" {
		log.Infof("✅ Config file will be stored in %s", path)
	}
	return cfg, nil
}

func (cfg *Config) Path() string {
	cfg.mutex.Lock()
	defer cfg.mutex.Unlock()
	return cfg.path
}

// Save writes the configuration back as YAML.
func (cfg *Config) Save() error {
	cfg.mutex.Lock()
	defer cfg.mutex.Unlock()

	if cfg.path == "" {
		return ErrNoConfigPath
	}

	data, err := yaml.Marshal(cfg.config)
	if err != nil {
		return err
	}
	return os.WriteFile(cfg.path, data, 0644)
}

// SetValue sets the value at path, creating intermediate sections, and saves
// the configuration.
func (cfg *Config) SetValue(path []string, value interface{}) error {
	cfg.setValue(path, value)
	return cfg.Save()
}

func (cfg *Config) GetValue(path []string) (interface{}, error) {
	cfg.mutex.Lock()
	defer cfg.mutex.Unlock()

	current := cfg.config
	for i, key := range path {
		key = strings.ToLower(key)

		next, ok := current[key]
		if !ok {
			return nil, fmt.Errorf("path %s does not exist", strings.Join(path[:i+1], "."))
		}
		if i < len(path)-1 {
			current, ok = next.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("path %s is not a section", strings.Join(path[:i+1], "."))
			}
			continue
		}
		return next, nil
	}
	return nil, fmt.Errorf("path %s does not exist", strings.Join(path, "."))
}

func (cfg *Config) setValue(path []string, value interface{}) {
	cfg.mutex.Lock()
	defer cfg.mutex.Unlock()

	current := cfg.config
	for i, key := range path {
		key = strings.ToLower(key)
		if i == len(path)-1 {
			current[key] = value
			return
		}
		next, ok := current[key].(map[string]interface{})
		if !ok {
			// a scalar in the way is replaced by a section
			next = make(map[string]interface{})
			current[key] = next
		}
		current = next
	}
}

// Slider decodes the "slider" section. Missing keys keep their zero value.
func (cfg *Config) Slider() (doubleslider.Settings, error) {
	var s doubleslider.Settings

	section, err := cfg.GetValue([]string{"slider"})
	if err != nil {
		return s, err
	}
	data, err := yaml.Marshal(section)
	if err != nil {
		return s, err
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("slider section: %w", err)
	}
	return s, nil
}

// SetSlider replaces the "slider" section and saves the configuration.
func (cfg *Config) SetSlider(s doubleslider.Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	var section map[string]interface{}
	if err := yaml.Unmarshal(data, &section); err != nil {
		return err
	}
	return cfg.SetValue([]string{"slider"}, section)
}

func (cfg *Config) FillWidth() float64 {
	width, err := cfg.GetValue([]string{"fill", "width"})
	if err != nil {
		return defaultFillWidth
	}
	switch w := width.(type) {
	case int:
		return float64(w)
	case float64:
		return w
	}
	log.Warnf("❌ fill.width is not a number: %v", width)
	return defaultFillWidth
}

func homeConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("❌ cannot locate home directory: %v", err)
		return ""
	}
	return filepath.Join(home, localConfigFile)
}

func applyEnvOverrides(cfg *Config) {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}

		parts := strings.SplitN(env, "=", 2)
		if len(parts) != 2 {
			continue
		}

		keyPath := strings.Split(strings.TrimPrefix(parts[0], envPrefix), "__")
		log.Debugf("🐞 Overriding %s from environment", strings.Join(keyPath, "."))
		cfg.setValue(keyPath, convertYAMLScalar(parts[1]))
	}
}

func convertYAMLScalar(s string) interface{} {
	var out interface{}
	if err := yaml.Unmarshal([]byte(s), &out); err != nil {
		return s
	}
	return out
}

func lowerKeysMap(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{})
	for k, v := range m {
		lk := strings.ToLower(k)
		switch vv := v.(type) {
		case map[string]interface{}:
			out[lk] = lowerKeysMap(vv)
		default:
			out[lk] = v
		}
	}
	return out
}

// isWriteable reports whether path can be written: the file itself when it
// exists, its directory otherwise.
func isWriteable(path string) bool {
	info, err := os.Stat(path)
	if err == nil {
		return !info.IsDir() && info.Mode().Perm()&0200 != 0
	}
	if !os.IsNotExist(err) {
		return false
	}
	dirInfo, err := os.Stat(filepath.Dir(path))
	if err != nil {
		return false
	}
	return dirInfo.IsDir() && dirInfo.Mode().Perm()&0200 != 0
}
