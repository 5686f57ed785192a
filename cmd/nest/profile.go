package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/signadot/nested"
	"github.com/signadot/nested/format"
)

const profileEnv = "NEST_CONFIG"

// Profile holds defaults read from an HCL file.  Command line options
// override them.
type Profile struct {
	Create              *bool   `hcl:"create,optional"`
	Fill                *string `hcl:"fill,optional"`
	AllowSequenceDelete *bool   `hcl:"allow_sequence_delete,optional"`
	MaxDepth            *int    `hcl:"max_depth,optional"`
	MaxIndex            *int    `hcl:"max_index,optional"`
	Format              *string `hcl:"format,optional"`
	Color               *bool   `hcl:"color,optional"`
}

// loadProfile reads the profile at path, or at $NEST_CONFIG when path is
// empty.  With neither, it returns an empty profile.
func loadProfile(path string) (*Profile, error) {
	if path == "" {
		path = os.Getenv(profileEnv)
	}
	if path == "" {
		return &Profile{}, nil
	}
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading profile: %w", err)
	}
	return parseProfile(d, path)
}

func parseProfile(d []byte, filename string) (*Profile, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(d, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse profile %s: %w", filename, diags)
	}
	p := &Profile{}
	diags = gohcl.DecodeBody(f.Body, nil, p)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode profile %s: %w", filename, diags)
	}
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", filename, err)
	}
	return p, nil
}

func (p *Profile) validate() error {
	if p.Fill != nil {
		if _, err := nested.ParseFillStrategy(*p.Fill); err != nil {
			return err
		}
	}
	if p.Format != nil {
		f, err := format.ParseFormat(*p.Format)
		if err != nil {
			return err
		}
		if !f.CanEncode() {
			return fmt.Errorf("%w: profile format must be encodable, got %s", format.ErrBadFormat, f)
		}
	}
	if p.MaxDepth != nil && *p.MaxDepth <= 0 {
		return fmt.Errorf("max_depth must be positive, got %d", *p.MaxDepth)
	}
	if p.MaxIndex != nil && *p.MaxIndex < 0 {
		return fmt.Errorf("max_index must not be negative, got %d", *p.MaxIndex)
	}
	return nil
}

// options returns the path options the profile sets.
func (p *Profile) options() []nested.Option {
	var res []nested.Option
	if p == nil {
		return nil
	}
	if p.Create != nil {
		res = append(res, nested.Create(*p.Create))
	}
	if p.Fill != nil {
		f, _ := nested.ParseFillStrategy(*p.Fill)
		res = append(res, nested.Fill(f))
	}
	if p.AllowSequenceDelete != nil {
		res = append(res, nested.AllowSequenceDelete(*p.AllowSequenceDelete))
	}
	if p.MaxDepth != nil {
		res = append(res, nested.MaxDepth(*p.MaxDepth))
	}
	if p.MaxIndex != nil {
		res = append(res, nested.MaxIndex(*p.MaxIndex))
	}
	return res
}

func (p *Profile) format() (format.Format, bool) {
	if p == nil || p.Format == nil {
		return 0, false
	}
	f, err := format.ParseFormat(*p.Format)
	if err != nil {
		return 0, false
	}
	return f, true
}
