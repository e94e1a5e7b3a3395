package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/depsort/pkg/depsort"
)

// config is the TOML shape of a depsort config file:
//
//	id_field = "name"
//	weight_field = "priority"
//	depends_field = "after"
//	default_weight = 0.0
//
// All keys are optional; unset keys fall back to the library defaults.
type config struct {
	IDField       string  `toml:"id_field"`
	WeightField   string  `toml:"weight_field"`
	DependsField  string  `toml:"depends_field"`
	DefaultWeight float64 `toml:"default_weight"`
}

func loadConfig(path string) (config, error) {
	var cfg config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c config) sorterOptions() depsort.Options {
	return depsort.Options{
		IDField:       c.IDField,
		WeightField:   c.WeightField,
		DependsField:  c.DependsField,
		DefaultWeight: c.DefaultWeight,
	}
}

// fieldFlags holds the field-selection flags shared by the sort, graph and
// inspect commands. Explicitly set flags override config file values.
type fieldFlags struct {
	configPath    string
	idField       string
	weightField   string
	dependsField  string
	defaultWeight float64
}

func (f *fieldFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configPath, "config", "", "TOML config file with field options")
	cmd.Flags().StringVar(&f.idField, "id-field", depsort.DefaultIDField, "record field holding the id")
	cmd.Flags().StringVar(&f.weightField, "weight-field", depsort.DefaultWeightField, "record field holding the weight")
	cmd.Flags().StringVar(&f.dependsField, "depends-field", depsort.DefaultDependsField, "record field holding the dependency list")
	cmd.Flags().Float64Var(&f.defaultWeight, "default-weight", 0, "weight for records without a numeric weight field")
}

// sorterOptions merges the config file (if any) with explicitly set flags.
func (f *fieldFlags) sorterOptions(cmd *cobra.Command) (depsort.Options, error) {
	var opts depsort.Options
	if f.configPath != "" {
		cfg, err := loadConfig(f.configPath)
		if err != nil {
			return depsort.Options{}, err
		}
		opts = cfg.sorterOptions()
	}

	flags := cmd.Flags()
	if flags.Changed("id-field") {
		opts.IDField = f.idField
	}
	if flags.Changed("weight-field") {
		opts.WeightField = f.weightField
	}
	if flags.Changed("depends-field") {
		opts.DependsField = f.dependsField
	}
	if flags.Changed("default-weight") {
		opts.DefaultWeight = f.defaultWeight
	}
	return opts, nil
}
