package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scrypster/unilook/internal/annotations"
	"github.com/scrypster/unilook/internal/config"
	"github.com/scrypster/unilook/internal/diag"
	"github.com/scrypster/unilook/internal/lookup"
	"github.com/scrypster/unilook/internal/tables"
	"github.com/scrypster/unilook/internal/ucd"
)

const version = "0.1.0"

// newRootCmd builds the command tree. Each invocation constructs a fresh
// tree so tests can execute commands in isolation.
func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "unilook [character|U+XXXX]...",
		Short: "Look up Unicode character properties",
		Long: `unilook resolves characters or code points into property records:
canonical name, category, script, block, mnemonic, compose sequences,
entity names, numeric value, aliases and names-list annotations.

Arguments that look like code points (U+XXXX, 0xXXXX, or four or more hex
digits) are resolved as code points; anything else is taken as literal
characters.`,
		Version:       version,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(configPath)
			if err != nil {
				return err
			}
			var runes []rune
			for _, arg := range args {
				rs, err := parseArg(arg)
				if err != nil {
					return err
				}
				runes = append(runes, rs...)
			}
			for i, r := range runes {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				rec, err := svc.Resolve(r)
				if err != nil {
					return err
				}
				renderRecord(cmd.OutOrStdout(), rec)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	root.AddCommand(newSearchCmd(&configPath))
	return root
}

func newSearchCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "search PATTERN",
		Short: "Search canonical character names with a glob pattern",
		Long: `search scans the assigned codespace for characters whose canonical name
matches the glob pattern (?, *, [...]), case-insensitively. Aliases and
synthesized labels are not searched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(*configPath)
			if err != nil {
				return err
			}
			matches, err := svc.Search(args[0])
			if err != nil {
				return err
			}
			if len(matches) == 0 {
				return fmt.Errorf("no character name matches %q", args[0])
			}
			for _, r := range matches {
				rec, err := svc.Resolve(r)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "U+%04X %s\n", r, rec.Name)
			}
			return nil
		},
	}
}

// newService wires the lookup service from configuration: the
// classification provider loads its tables now (missing data files are a
// startup error), the four source-table providers build lazily on first
// lookup.
func newService(configPath string) (*lookup.Service, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadConfigFile(configPath)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return nil, err
	}

	classifier, err := ucd.NewFromFiles(cfg.Data.UnicodeData, cfg.Data.Blocks)
	if err != nil {
		return nil, err
	}

	return lookup.New(lookup.Options{
		Classifier:  classifier,
		Mnemonics:   tables.NewMnemonics(tables.FileSource{Path: cfg.Data.Mnemonics}),
		Sequences:   tables.NewCompose(tables.FileSource{Path: cfg.Data.Compose}),
		Entities:    tables.NewEntities(tables.FileSource{Path: cfg.Data.Entities}),
		Aliases:     tables.NewAliases(tables.FileSource{Path: cfg.Data.Aliases}),
		Annotations: annotations.NewFileSource(cfg.Data.NamesList),
		Sink:        diag.Logger{},
		ScanLimit:   rune(cfg.Search.ScanLimit),
	}), nil
}

// parseArg decodes one command-line argument into the runes to resolve.
// Code-point syntax (U+XXXX, 0xXXXX, or a bare run of four or more hex
// digits) yields one rune; anything else is taken literally.
func parseArg(arg string) ([]rune, error) {
	hex := arg
	explicit := false
	switch {
	case strings.HasPrefix(arg, "U+"), strings.HasPrefix(arg, "u+"):
		hex, explicit = arg[2:], true
	case strings.HasPrefix(arg, "0x"), strings.HasPrefix(arg, "0X"):
		hex, explicit = arg[2:], true
	}
	if explicit || isHexRun(hex) {
		v, err := strconv.ParseUint(hex, 16, 64)
		if err != nil {
			if explicit {
				return nil, fmt.Errorf("invalid code point %q", arg)
			}
			return []rune(arg), nil
		}
		if v > 0x10FFFF {
			return nil, fmt.Errorf("code point %q out of range", arg)
		}
		return []rune{rune(v)}, nil
	}
	if arg == "" {
		return nil, fmt.Errorf("empty argument")
	}
	return []rune(arg), nil
}

// isHexRun reports whether s is four or more hex digits — the bare
// code-point form.
func isHexRun(s string) bool {
	if len(s) < 4 {
		return false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
