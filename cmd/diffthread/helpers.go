package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mfields/diffthread/internal/catalog"
	"github.com/mfields/diffthread/internal/common"
	"github.com/mfields/diffthread/internal/generator"
	"github.com/mfields/diffthread/internal/model"
)

// loadCatalog returns the thread table: the catalog file from config when one
// is set, otherwise the built-in table. Malformed catalogs are fatal here.
func loadCatalog() ([]model.Thread, error) {
	path := viper.GetString("catalog.path")
	if path == "" {
		return catalog.Load()
	}

	threads, err := catalog.LoadFile(expandPath(path))
	if err != nil {
		return nil, common.NewUserError("failed to load thread catalog", err)
	}

	common.LogDebug("loaded catalog file", common.Fields{"path": path, "threads": len(threads)})
	return threads, nil
}

// pairFlags registers the filter flags shared by the pairs and export
// commands.
func pairFlags(cmd *cobra.Command) {
	cmd.Flags().String("standard", "", "restrict to one thread standard (uts, iso)")
	cmd.Flags().Bool("same-diameter", false, "only pair threads sharing a nominal diameter")
	cmd.Flags().Bool("nested-only", false, "only pairs whose threads can physically nest")
	cmd.Flags().Float64("min-diameter", 0, "minimum major diameter in inches")
	cmd.Flags().Float64("max-diameter", 0, "maximum major diameter in inches")
}

// buildOptions translates the shared filter flags into generator options.
func buildOptions(cmd *cobra.Command) (generator.Options, error) {
	var opts generator.Options

	standard, err := cmd.Flags().GetString("standard")
	if err != nil {
		return opts, err
	}
	switch strings.ToUpper(standard) {
	case "":
	case string(model.StandardUTS):
		opts.Standard = model.StandardUTS
	case string(model.StandardISO):
		opts.Standard = model.StandardISO
	default:
		return opts, fmt.Errorf("invalid standard %q (expected uts or iso)", standard)
	}

	if opts.SameDiameter, err = cmd.Flags().GetBool("same-diameter"); err != nil {
		return opts, err
	}
	if opts.NestedOnly, err = cmd.Flags().GetBool("nested-only"); err != nil {
		return opts, err
	}
	if opts.MinDiameterIn, err = cmd.Flags().GetFloat64("min-diameter"); err != nil {
		return opts, err
	}
	if opts.MaxDiameterIn, err = cmd.Flags().GetFloat64("max-diameter"); err != nil {
		return opts, err
	}

	return opts, nil
}

// stringSetting reads a flag value, falling back to a viper key when the flag
// was not set on the command line.
func stringSetting(cmd *cobra.Command, flag, viperKey string) (string, error) {
	value, err := cmd.Flags().GetString(flag)
	if err != nil {
		return "", err
	}
	if !cmd.Flags().Changed(flag) {
		if v := viper.GetString(viperKey); v != "" {
			value = v
		}
	}
	return value, nil
}

// expandPath expands ~ and environment variables in a file path.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	}
	return os.ExpandEnv(path)
}
