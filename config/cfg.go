package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"guidec/guide"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	ChangelogConfig struct {
		Version string   `yaml:"version" validate:"required"`
		Date    string   `yaml:"date" validate:"omitempty,datetime=2006-01-02"`
		Notes   []string `yaml:"notes" validate:"dive,required"`
	}

	MetaConfig struct {
		Title     string            `yaml:"title" validate:"required"`
		Subtitle  string            `yaml:"subtitle,omitempty"`
		Version   string            `yaml:"version,omitempty"`
		Author    string            `yaml:"author,omitempty"`
		Changelog []ChangelogConfig `yaml:"changelog,omitempty" validate:"dive"`
	}

	DocumentConfig struct {
		SourcePath      string     `yaml:"source" sanitize:"path_clean" validate:"required,filepath"`
		OutputPath      string     `yaml:"output" sanitize:"path_clean" validate:"required,filepath"`
		IndexPath       string     `yaml:"index,omitempty" validate:"omitempty,filepath"`
		Workers         int        `yaml:"workers" validate:"gte=0,lte=256"`
		SummaryTemplate string     `yaml:"summary_template"`
		Meta            MetaConfig `yaml:"meta"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Document  DocumentConfig `yaml:"document"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field name above
	SummaryTemplateFieldName TemplateFieldName = "summary_template"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(SummaryTemplateFieldName)),
)

// GuideMeta converts configured meta block into document meta.
func (conf *MetaConfig) GuideMeta() guide.Meta {
	m := guide.Meta{
		Title:    conf.Title,
		Subtitle: conf.Subtitle,
		Version:  conf.Version,
		Author:   conf.Author,
	}
	for _, c := range conf.Changelog {
		notes := c.Notes
		if notes == nil {
			notes = []string{}
		}
		m.Changelog = append(m.Changelog, guide.ChangelogEntry{Version: c.Version, Date: c.Date, Notes: notes})
	}
	return m
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
