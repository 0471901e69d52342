// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by the search adapters.
type HTTPConfig struct {
	// Timeout is the HTTP client timeout. Zero leaves requests unbounded and
	// relies on the transport to fail.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "omnisearch/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// MusicConfig holds settings for the track search adapter.
type MusicConfig struct {
	// Endpoint is the track search API URL.
	Endpoint string `json:"endpoint" yaml:"endpoint" mapstructure:"endpoint"`

	// RelayURL wraps the track search request in a CORS-relaxing relay of the
	// form RelayURL?url=<encoded target>. Empty calls the endpoint directly.
	RelayURL string `json:"relay_url" yaml:"relay_url" mapstructure:"relay_url"`
}

// CodeConfig holds settings for the repository search adapter.
type CodeConfig struct {
	// Endpoint is the repository search API URL.
	Endpoint string `json:"endpoint" yaml:"endpoint" mapstructure:"endpoint"`
}

// StorageDriver selects the persistence backend.
type StorageDriver string

const (
	DriverBolt   StorageDriver = "bolt"
	DriverSQLite StorageDriver = "sqlite"
	DriverMemory StorageDriver = "memory"
)

// StorageConfig holds settings for local persistence of the shortcut order
// and preferences.
type StorageConfig struct {
	Driver StorageDriver `json:"driver" yaml:"driver" mapstructure:"driver"`

	// Path is the database file. Ignored by the memory driver.
	Path string `json:"path" yaml:"path" mapstructure:"path"`
}

// VoiceConfig holds settings for the voice input bridge.
type VoiceConfig struct {
	// Command is the argv of a speech-to-text program that listens once and
	// prints the transcript on stdout. Empty disables voice input.
	Command []string `json:"command" yaml:"command" mapstructure:"command"`

	// AutoListenDelay is how long after startup auto-listen waits before
	// opening a session.
	AutoListenDelay time.Duration `json:"auto_listen_delay" yaml:"auto_listen_delay" mapstructure:"auto_listen_delay"`
}

// DragConfig holds activation thresholds for the drag recognizer.
type DragConfig struct {
	// PointerDistance is the movement in pixels before a pointer press
	// becomes a drag.
	PointerDistance float64 `json:"pointer_distance" yaml:"pointer_distance" mapstructure:"pointer_distance"`

	// TouchDelay is how long a touch must be held before it becomes a drag.
	TouchDelay time.Duration `json:"touch_delay" yaml:"touch_delay" mapstructure:"touch_delay"`

	// TouchTolerance is the movement in pixels allowed during TouchDelay.
	TouchTolerance float64 `json:"touch_tolerance" yaml:"touch_tolerance" mapstructure:"touch_tolerance"`
}

// ServeConfig holds settings for the local HTTP API.
type ServeConfig struct {
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr"`
}

// Config groups all omnisearch settings.
type Config struct {
	HTTP    HTTPConfig    `json:"http" yaml:"http" mapstructure:"http"`
	Music   MusicConfig   `json:"music" yaml:"music" mapstructure:"music"`
	Code    CodeConfig    `json:"code" yaml:"code" mapstructure:"code"`
	Storage StorageConfig `json:"storage" yaml:"storage" mapstructure:"storage"`
	Voice   VoiceConfig   `json:"voice" yaml:"voice" mapstructure:"voice"`
	Drag    DragConfig    `json:"drag" yaml:"drag" mapstructure:"drag"`
	Serve   ServeConfig   `json:"serve" yaml:"serve" mapstructure:"serve"`
}
