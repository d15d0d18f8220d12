package fixture

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a fixture encoding.
type Format uint8

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	}
	return "unknown"
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("unsupported fixture extension %q", filepath.Ext(path))
}

// Document is a decoded fixture file.
type Document struct {
	Width     any        `toml:"width" yaml:"width"`
	Height    any        `toml:"height" yaml:"height"`
	Direction string     `toml:"direction" yaml:"direction"`
	Config    ConfigSpec `toml:"config" yaml:"config"`
	Root      NodeSpec   `toml:"root" yaml:"root"`
}

// ConfigSpec describes the layout config shared by every node of a
// document.
type ConfigSpec struct {
	PointScaleFactor *float32 `toml:"point_scale_factor" yaml:"point_scale_factor"`
	UseWebDefaults   bool     `toml:"use_web_defaults" yaml:"use_web_defaults"`
	Errata           []string `toml:"errata" yaml:"errata"`
	Experimental     []string `toml:"experimental" yaml:"experimental"`
}

// EdgeSpec holds per-edge lengths. Unset edges are nil.
type EdgeSpec struct {
	Left       any `toml:"left" yaml:"left"`
	Top        any `toml:"top" yaml:"top"`
	Right      any `toml:"right" yaml:"right"`
	Bottom     any `toml:"bottom" yaml:"bottom"`
	Start      any `toml:"start" yaml:"start"`
	End        any `toml:"end" yaml:"end"`
	Horizontal any `toml:"horizontal" yaml:"horizontal"`
	Vertical   any `toml:"vertical" yaml:"vertical"`
	All        any `toml:"all" yaml:"all"`
}

// GapSpec holds per-gutter gaps.
type GapSpec struct {
	Column any `toml:"column" yaml:"column"`
	Row    any `toml:"row" yaml:"row"`
	All    any `toml:"all" yaml:"all"`
}

// NodeSpec describes one node and its subtree. Empty strings and nil
// values keep the engine defaults.
type NodeSpec struct {
	ID string `toml:"id" yaml:"id"`

	Direction      string `toml:"direction" yaml:"direction"`
	FlexDirection  string `toml:"flex_direction" yaml:"flex_direction"`
	JustifyContent string `toml:"justify_content" yaml:"justify_content"`
	AlignContent   string `toml:"align_content" yaml:"align_content"`
	AlignItems     string `toml:"align_items" yaml:"align_items"`
	AlignSelf      string `toml:"align_self" yaml:"align_self"`
	PositionType   string `toml:"position_type" yaml:"position_type"`
	FlexWrap       string `toml:"flex_wrap" yaml:"flex_wrap"`
	Overflow       string `toml:"overflow" yaml:"overflow"`
	Display        string `toml:"display" yaml:"display"`

	Flex        *float32 `toml:"flex" yaml:"flex"`
	FlexGrow    *float32 `toml:"flex_grow" yaml:"flex_grow"`
	FlexShrink  *float32 `toml:"flex_shrink" yaml:"flex_shrink"`
	FlexBasis   any      `toml:"flex_basis" yaml:"flex_basis"`
	AspectRatio *float32 `toml:"aspect_ratio" yaml:"aspect_ratio"`

	Width     any `toml:"width" yaml:"width"`
	Height    any `toml:"height" yaml:"height"`
	MinWidth  any `toml:"min_width" yaml:"min_width"`
	MinHeight any `toml:"min_height" yaml:"min_height"`
	MaxWidth  any `toml:"max_width" yaml:"max_width"`
	MaxHeight any `toml:"max_height" yaml:"max_height"`

	Margin   EdgeSpec `toml:"margin" yaml:"margin"`
	Padding  EdgeSpec `toml:"padding" yaml:"padding"`
	Border   EdgeSpec `toml:"border" yaml:"border"`
	Position EdgeSpec `toml:"position" yaml:"position"`
	Gap      GapSpec  `toml:"gap" yaml:"gap"`

	Text     string `toml:"text" yaml:"text"`
	Measurer string `toml:"measurer" yaml:"measurer"`

	ReferenceBaseline          bool `toml:"reference_baseline" yaml:"reference_baseline"`
	AlwaysFormsContainingBlock bool `toml:"always_forms_containing_block" yaml:"always_forms_containing_block"`

	Children []NodeSpec `toml:"children" yaml:"children"`
}

// Decode parses a fixture document. Unknown keys are errors.
func Decode(data []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to parse toml fixture: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to parse yaml fixture: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported fixture format %v", format)
	}
	return &doc, nil
}

// Load reads and decodes a fixture file, picking the format from its
// extension.
func Load(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	doc, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
