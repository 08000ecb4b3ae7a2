package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mnovakovic/wp-appwrite-sync/internal/wordpress"
	"gopkg.in/yaml.v3"
)

// Options are operational overrides loaded from an optional YAML file. The
// env contract in Config is unaffected; absence of the file is normal.
type Options struct {
	Timeframes         []string `yaml:"timeframes"`
	HTTPTimeoutSeconds int      `yaml:"http_timeout_seconds"`
}

func LoadOptions(r io.Reader) (*Options, error) {
	decoder := yaml.NewDecoder(r)

	var opts Options
	if err := decoder.Decode(&opts); err != nil {
		return nil, fmt.Errorf("failed to decode sync options: %w", err)
	}

	return &opts, nil
}

func LoadOptionsFile(path string) (*Options, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sync options file: %w", err)
	}
	defer file.Close()

	return LoadOptions(file)
}

// ParseTimeframes validates the configured timeframe list. An empty list
// means "use the default order" and returns nil.
func (o *Options) ParseTimeframes() ([]wordpress.Timeframe, error) {
	if len(o.Timeframes) == 0 {
		return nil, nil
	}

	tfs := make([]wordpress.Timeframe, 0, len(o.Timeframes))
	for _, s := range o.Timeframes {
		tf, err := wordpress.ParseTimeframe(s)
		if err != nil {
			return nil, err
		}
		tfs = append(tfs, tf)
	}
	return tfs, nil
}

func (o *Options) HTTPTimeout() time.Duration {
	if o.HTTPTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(o.HTTPTimeoutSeconds) * time.Second
}
