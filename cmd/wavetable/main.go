// Command wavetable renders the patches in a config file to single-cycle WAV files.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/spf13/viper"
	"github.com/synaptecltd/wavetable"
	"github.com/synaptecltd/wavetable/export"
	"github.com/synaptecltd/wavetable/patch"
)

var (
	configPath = flag.String("config", "patches.yaml", "patch file to render")
	outDir     = flag.String("out", ".", "directory for the rendered wav files")
)

func main() {
	flag.Parse()
	defer glog.Flush()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		glog.Exitf("could not load %s: %v", *configPath, err)
	}

	if err := run(cfg, *outDir); err != nil {
		glog.Exit(err)
	}
}

func loadConfig(path string) (*viper.Viper, error) {
	cfg := viper.New()
	defaults := export.DefaultParams()
	cfg.SetDefault("export.samplerate", defaults.SampleRate)
	cfg.SetDefault("export.cycles", defaults.Cycles)
	cfg.SetDefault("export.precision", defaults.Precision)

	cfg.SetConfigFile(path)
	if err := cfg.ReadInConfig(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cfg *viper.Viper, outDir string) error {
	var patches patch.Container
	if err := cfg.UnmarshalKey("patches", &patches, viper.DecodeHook(patch.GetDecodeHook())); err != nil {
		return fmt.Errorf("decoding patches: %w", err)
	}
	if len(patches) == 0 {
		return errors.New("no patches defined")
	}
	// patch names become file names in outDir
	for key := range patches {
		if key == "" || filepath.Base(key) != key {
			return fmt.Errorf("patch name %q cannot be used as a file name", key)
		}
	}

	// read per key so that defaults fill any missing fields
	params := export.Params{
		SampleRate: cfg.GetInt("export.samplerate"),
		Cycles:     cfg.GetInt("export.cycles"),
		Precision:  cfg.GetInt("export.precision"),
	}
	if err := params.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	bank := patch.Render(patches)
	glog.Infof("rendered %d of %d patches", len(bank), len(patches))

	for _, key := range patches.Keys() {
		r, ok := bank[key]
		if !ok {
			continue
		}
		path := filepath.Join(outDir, key+".wav")
		if err := writeTable(path, &r.Table, params); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		glog.Infof("wrote %s: %s, volume scale %.0f", path, r.Patch.Name(), r.Patch.VolumeScale())
	}
	return nil
}

func writeTable(path string, table *wavetable.Table, params export.Params) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.WriteWAV(f, table, params); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
