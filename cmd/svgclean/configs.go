package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/svgclean"
	"github.com/signadot/svgclean/encode"
	"github.com/signadot/svgclean/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color    bool   `cli:"name=color desc='encode with color'"`
	Indent   int    `cli:"name=indent desc='indent nested elements by n spaces, negative for compact output'"`
	Quote    string `cli:"name=quote desc='attribute quotes: single or double'"`
	Comments bool   `cli:"name=c aliases=comments desc='keep comments'"`

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{parse.ParseComments(cfg.Comments)}
}

func (cfg *MainConfig) quote() (byte, error) {
	switch cfg.Quote {
	case "", "double", `"`:
		return '"', nil
	case "single", "'":
		return '\'', nil
	}
	return 0, fmt.Errorf("%w: invalid quote %q, want single or double", cli.ErrUsage, cfg.Quote)
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	q, _ := cfg.quote()
	res := []encode.EncodeOption{
		encode.Indent(cfg.Indent),
		encode.Quote(q),
		encode.TrailingNewline(true),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	if cfg.colorSet() {
		return res
	}
	if isTerminal(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// colorSet reports whether -color was given, possibly as -color=false.
func (cfg *MainConfig) colorSet() bool {
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		return opt.Value != nil
	}
	return false
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	return !cfg.colorSet() && isTerminal(w)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// PassFlags holds one flag per option of svgclean.Options. A flag only
// overrides the options file and the defaults when given.
type PassFlags struct {
	Config string `cli:"name=config desc='options file: .yaml, .yml, .toml or .json'"`

	RemoveTitle               bool `cli:"name=remove-title desc='remove title elements'"`
	RemoveDesc                bool `cli:"name=remove-desc desc='remove desc elements'"`
	RemoveMetadata            bool `cli:"name=remove-metadata desc='remove metadata elements'"`
	RemoveUnusedDefs          bool `cli:"name=remove-unused-defs desc='remove unreferenced definitions'"`
	RemoveInvalidStops        bool `cli:"name=remove-invalid-stops desc='remove redundant gradient stops'"`
	ApplyTransformToGradients bool `cli:"name=apply-transform-to-gradients desc='fold simple gradient transforms into coordinates'"`
	RemoveDuplLinearGradients bool `cli:"name=remove-dupl-linear-gradients desc='merge equal linear gradients'"`
	RemoveDuplRadialGradients bool `cli:"name=remove-dupl-radial-gradients desc='merge equal radial gradients'"`
	RemoveDuplFeGaussianBlur  bool `cli:"name=remove-dupl-fe-gaussian-blur desc='merge equal blur filters'"`
	RegroupGradientStops      bool `cli:"name=regroup-gradient-stops desc='share equal stop lists between gradients'"`
	MergeGradients            bool `cli:"name=merge-gradients desc='merge gradients into their only user'"`
	RemoveInvisibleElements   bool `cli:"name=remove-invisible-elements desc='remove elements that are never rendered'"`
	UngroupGroups             bool `cli:"name=ungroup-groups desc='remove groups without attributes'"`
	RemoveDefaultAttributes   bool `cli:"name=remove-default-attributes desc='remove attributes set to their default'"`
	RemoveGradientAttributes  bool `cli:"name=remove-gradient-attributes desc='remove attributes inherited through xlink:href'"`
	RemoveUnreferencedIDs     bool `cli:"name=remove-unreferenced-ids desc='clear ids nothing links to'"`
	TrimIDs                   bool `cli:"name=trim-ids desc='rename ids to the shortest free names'"`
	RemoveVersion             bool `cli:"name=remove-version desc='remove version and baseProfile'"`
	UngroupDefs               bool `cli:"name=ungroup-defs desc='hoist referenced definitions out of defs'"`
	JoinStyleAttributes       bool `cli:"name=join-style-attributes desc='fold presentation attributes into style'"`
	RemoveXmlnsXlinkAttribute bool `cli:"name=remove-xmlns-xlink-attribute desc='remove an unused xlink namespace declaration'"`
}

func passOpts(p *PassFlags) []*cli.Opt {
	opts, err := cli.StructOpts(p)
	if err != nil {
		panic(err)
	}
	return opts
}

// options merges, in increasing precedence, the defaults, the options
// file and the pass flags given to cmd.
func (p *PassFlags) options(cmd *cli.Command) (*svgclean.Options, error) {
	res := svgclean.DefaultOptions()
	if p.Config != "" {
		var err error
		res, err = svgclean.LoadOptions(res, p.Config)
		if err != nil {
			return nil, err
		}
	}
	flags := res.Flags()
	for _, opt := range cmd.Opts {
		if opt.Value == nil {
			continue
		}
		name := strings.ReplaceAll(opt.Name, "-", "_")
		for _, f := range flags {
			if f.Name != name {
				continue
			}
			v, ok := (*opt.Value).(bool)
			if !ok {
				return nil, fmt.Errorf("%w: -%s takes a boolean", cli.ErrUsage, opt.Name)
			}
			*f.V = v
		}
	}
	return res, nil
}

type CleanConfig struct {
	*MainConfig
	Passes PassFlags

	Output string `cli:"name=o desc='output file, - for stdout (default)'"`
	Stats  bool   `cli:"name=stats desc='log the size reduction'"`
	DryRun bool   `cli:"name=dry-run aliases=n desc='clean without writing output'"`

	Clean *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Passes PassFlags

	Context  int  `cli:"name=U desc='lines of context, negative for all'"`
	Elements bool `cli:"name=e aliases=elements desc='list removed and added elements instead of lines'"`

	Diff *cli.Command
}

type ListConfig struct {
	*MainConfig
	Passes PassFlags

	Where string `cli:"name=where aliases=w desc='expr-lang predicate selecting elements'"`
	Raw   bool   `cli:"name=raw desc='list the input without cleaning it'"`

	List *cli.Command
}

type PassesConfig struct {
	*MainConfig

	Passes *cli.Command
}

type BatchConfig struct {
	*MainConfig
	Passes PassFlags

	OutDir string `cli:"name=outdir desc='directory receiving the cleaned files'"`
	Jobs   int    `cli:"name=j desc='number of files cleaned concurrently'"`

	Batch *cli.Command
}
