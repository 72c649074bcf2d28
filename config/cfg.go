package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	// StyleConfig carries the base typography the style engine works from.
	// Defaults reproduce GOST 7.32-2017 requirements.
	StyleConfig struct {
		FontFamily        string  `yaml:"font_family" validate:"required"`
		FontSizePt        int     `yaml:"font_size" validate:"min=8,max=72"`
		LineSpacing       float64 `yaml:"line_spacing" validate:"gt=0"`
		FirstLineIndentCm float64 `yaml:"first_line_indent_cm" validate:"gte=0"`
	}

	// PageConfig describes section geometry, all values in centimeters.
	PageConfig struct {
		WidthCm          float64 `yaml:"width_cm" validate:"gt=0"`
		HeightCm         float64 `yaml:"height_cm" validate:"gt=0"`
		MarginTopCm      float64 `yaml:"margin_top_cm" validate:"gt=0"`
		MarginBottomCm   float64 `yaml:"margin_bottom_cm" validate:"gt=0"`
		MarginLeftCm     float64 `yaml:"margin_left_cm" validate:"gt=0"`
		MarginRightCm    float64 `yaml:"margin_right_cm" validate:"gt=0"`
		HeaderDistanceCm float64 `yaml:"header_distance_cm" validate:"gte=0"`
		FooterDistanceCm float64 `yaml:"footer_distance_cm" validate:"gte=0"`
	}

	// MetadataConfig is the fixed personal/institutional data rendered on the
	// title page. Pure data, consumed once at composition time.
	MetadataConfig struct {
		StudentName     string `yaml:"student_name" validate:"required"`
		StudentFullName string `yaml:"student_full_name"`
		Group           string `yaml:"group" validate:"required"`
		TeacherName     string `yaml:"teacher_name" validate:"required"`
		Topic           string `yaml:"topic" validate:"required"`
		Year            string `yaml:"year" validate:"required"`
	}

	DocumentConfig struct {
		FixZip                bool           `yaml:"fix_zip"`
		OutputNameTemplate    string         `yaml:"output_name_template"`
		FileNameTransliterate bool           `yaml:"file_name_transliterate"`
		Style                 StyleConfig    `yaml:"style"`
		Page                  PageConfig     `yaml:"page"`
		Metadata              MetadataConfig `yaml:"metadata"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Document  DocumentConfig `yaml:"document"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field name above, alternative is to use struct
	// field name and reflection which I want to avoid for now
	OutputNameTemplateFieldName TemplateFieldName = "output_name_template"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(OutputNameTemplateFieldName)),
)

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
