package chart

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/charts/pkg/errors"
	"github.com/go-drift/charts/pkg/graphics"
)

// fileOptions is the yaml shape of an optional chart theme file. Every field
// is optional and overlays DefaultOptions. Colors are hex strings
// (#RRGGBB or #AARRGGBB).
type fileOptions struct {
	Layout struct {
		Background string   `yaml:"background,omitempty"`
		TextColor  string   `yaml:"textColor,omitempty"`
		FontSize   *float64 `yaml:"fontSize,omitempty"`
		FontFamily string   `yaml:"fontFamily,omitempty"`
	} `yaml:"layout"`
	TimeScale struct {
		BorderVisible *bool  `yaml:"borderVisible,omitempty"`
		BorderColor   string `yaml:"borderColor,omitempty"`
	} `yaml:"timeScale"`
	HandleScale struct {
		TimeAxisDrag     *bool `yaml:"timeAxisDrag,omitempty"`
		DoubleClickReset *bool `yaml:"doubleClickReset,omitempty"`
	} `yaml:"handleScale"`
	LeftPriceScale  filePriceScale `yaml:"leftPriceScale"`
	RightPriceScale filePriceScale `yaml:"rightPriceScale"`
}

type filePriceScale struct {
	Visible       *bool `yaml:"visible,omitempty"`
	BorderVisible *bool `yaml:"borderVisible,omitempty"`
}

// LoadOptions reads an optional yaml theme file and overlays it on the
// defaults. A missing file yields DefaultOptions; a malformed file yields a
// KindConfig error.
func LoadOptions(path string) (*Options, error) {
	opts := DefaultOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return nil, configErr("read", err)
	}
	var file fileOptions
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, configErr("parse", err)
	}
	if err := applyFileOptions(opts, &file); err != nil {
		return nil, configErr("apply", err)
	}
	return opts, nil
}

func applyFileOptions(opts *Options, file *fileOptions) error {
	if err := applyColor(&opts.Layout.Background, file.Layout.Background); err != nil {
		return err
	}
	if err := applyColor(&opts.Layout.TextColor, file.Layout.TextColor); err != nil {
		return err
	}
	if file.Layout.FontSize != nil {
		if *file.Layout.FontSize <= 0 {
			return fmt.Errorf("layout.fontSize must be positive, got %g", *file.Layout.FontSize)
		}
		opts.Layout.FontSize = *file.Layout.FontSize
	}
	if file.Layout.FontFamily != "" {
		opts.Layout.FontFamily = file.Layout.FontFamily
	}
	if file.TimeScale.BorderVisible != nil {
		opts.TimeScale.BorderVisible = *file.TimeScale.BorderVisible
	}
	if err := applyColor(&opts.TimeScale.BorderColor, file.TimeScale.BorderColor); err != nil {
		return err
	}
	if file.HandleScale.TimeAxisDrag != nil {
		opts.HandleScale.TimeAxisDrag = *file.HandleScale.TimeAxisDrag
	}
	if file.HandleScale.DoubleClickReset != nil {
		opts.HandleScale.DoubleClickReset = *file.HandleScale.DoubleClickReset
	}
	applyPriceScale(&opts.LeftPriceScale, file.LeftPriceScale)
	applyPriceScale(&opts.RightPriceScale, file.RightPriceScale)
	return nil
}

func applyPriceScale(opts *PriceScaleOptions, file filePriceScale) {
	if file.Visible != nil {
		opts.Visible = *file.Visible
	}
	if file.BorderVisible != nil {
		opts.BorderVisible = *file.BorderVisible
	}
}

func applyColor(dst *graphics.Color, src string) error {
	if src == "" {
		return nil
	}
	color, err := graphics.ParseColor(src)
	if err != nil {
		return err
	}
	*dst = color
	return nil
}

func configErr(op string, err error) error {
	return &errors.ChartError{
		Op:   "chart.LoadOptions." + op,
		Kind: errors.KindConfig,
		Err:  err,
	}
}
