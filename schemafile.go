package argen

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// schemaDecl mirrors the schema declaration file layout. The same field
// names work for all three supported encodings.
type schemaDecl struct {
	Program     string           `toml:"program" json:"program" yaml:"program"`
	Options     []optionDecl     `toml:"option" json:"option" yaml:"option"`
	Positionals []positionalDecl `toml:"positional" json:"positional" yaml:"positional"`
	Variadic    *variadicDecl    `toml:"variadic" json:"variadic" yaml:"variadic"`
}

type optionDecl struct {
	Name     string   `toml:"name" json:"name" yaml:"name"`
	Type     string   `toml:"type" json:"type" yaml:"type"`
	Short    string   `toml:"short" json:"short" yaml:"short"`
	Long     string   `toml:"long" json:"long" yaml:"long"`
	Aliases  []string `toml:"aliases" json:"aliases" yaml:"aliases"`
	Default  *string  `toml:"default" json:"default" yaml:"default"`
	Required bool     `toml:"required" json:"required" yaml:"required"`
	Help     string   `toml:"help" json:"help" yaml:"help"`
}

type positionalDecl struct {
	Name     string  `toml:"name" json:"name" yaml:"name"`
	Optional bool    `toml:"optional" json:"optional" yaml:"optional"`
	Default  *string `toml:"default" json:"default" yaml:"default"`
	Help     string  `toml:"help" json:"help" yaml:"help"`
}

type variadicDecl struct {
	Name string `toml:"name" json:"name" yaml:"name"`
	Help string `toml:"help" json:"help" yaml:"help"`
}

// LoadSchema reads a schema declaration file and builds the Schema. The
// encoding is chosen by file extension: .toml, .json, .yaml or .yml.
// Declarations are user input, so every problem is reported as an error,
// never a panic.
func LoadSchema(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return ParseSchemaTOML(data)
	case ".json":
		return ParseSchemaJSON(data)
	case ".yaml", ".yml":
		return ParseSchemaYAML(data)
	}
	return nil, fmt.Errorf(`cannot tell the encoding of "%s" from its extension`, path)
}

// ParseSchemaTOML builds a Schema from a TOML declaration.
func ParseSchemaTOML(data []byte) (*Schema, error) {
	var decl schemaDecl
	if err := toml.Unmarshal(data, &decl); err != nil {
		return nil, fmt.Errorf("invalid schema declaration: %v", err)
	}
	return buildSchema(&decl)
}

// ParseSchemaJSON builds a Schema from a JSON declaration.
func ParseSchemaJSON(data []byte) (*Schema, error) {
	var decl schemaDecl
	if err := json.Unmarshal(data, &decl); err != nil {
		return nil, fmt.Errorf("invalid schema declaration: %v", err)
	}
	return buildSchema(&decl)
}

// ParseSchemaYAML builds a Schema from a YAML declaration.
func ParseSchemaYAML(data []byte) (*Schema, error) {
	var decl schemaDecl
	if err := yaml.Unmarshal(data, &decl); err != nil {
		return nil, fmt.Errorf("invalid schema declaration: %v", err)
	}
	return buildSchema(&decl)
}

// buildSchema drives the builder from a declaration, converting the
// builder's definition panics into errors.
func buildSchema(decl *schemaDecl) (s *Schema, err error) {
	defer func() {
		if r := recover(); r != nil {
			s = nil
			err = fmt.Errorf("invalid schema declaration: %v", r)
		}
	}()

	s = New().Prog(decl.Program)
	for _, d := range decl.Options {
		if d.Name == "" {
			return nil, fmt.Errorf("invalid schema declaration: option without a name")
		}
		o := s.Option(d.Name)
		switch d.Type {
		case "", "string":
		case "int":
			o.Int()
		case "flag":
			o.Flag()
		default:
			return nil, fmt.Errorf(`invalid schema declaration: option "%s" has unknown type "%s"`, d.Name, d.Type)
		}
		if d.Short != "" {
			r := []rune(d.Short)
			if len(r) != 1 {
				return nil, fmt.Errorf(`invalid schema declaration: short form of option "%s" must be a single character`, d.Name)
			}
			o.Short(r[0])
		}
		if d.Long != "" {
			o.Long(d.Long)
		}
		for _, a := range d.Aliases {
			o.Aka(a)
		}
		if d.Required {
			o.Required()
		}
		if d.Default != nil {
			o.Default(*d.Default)
		}
		if d.Help != "" {
			o.Doc(d.Help)
		}
	}
	for _, d := range decl.Positionals {
		if d.Name == "" {
			return nil, fmt.Errorf("invalid schema declaration: positional slot without a name")
		}
		p := s.Positional(d.Name)
		if d.Optional {
			p.Opt()
		}
		if d.Default != nil {
			p.Opt().Default(*d.Default)
		}
		if d.Help != "" {
			p.Doc(d.Help)
		}
	}
	if d := decl.Variadic; d != nil {
		if d.Name == "" {
			return nil, fmt.Errorf("invalid schema declaration: variadic slot without a name")
		}
		p := s.Variadic(d.Name)
		if d.Help != "" {
			p.Doc(d.Help)
		}
	}
	return s, nil
}
