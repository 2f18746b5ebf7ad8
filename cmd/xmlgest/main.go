// Command xmlgest reads an XML document, applies a transform preset and
// pretty-prints the result. With no flags it runs the built-in demo preset
// against stdin.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dgallion1/xmlgest/internal/config"
	"github.com/dgallion1/xmlgest/internal/pipeline"
	"github.com/dgallion1/xmlgest/internal/render"
)

func main() {
	var (
		inPath     = flag.String("f", "", "XML input file (default stdin)")
		presetPath = flag.String("presets", "", "YAML preset file")
		presetName = flag.String("preset", "demo", "preset name to apply")
	)
	flag.Parse()

	if err := run(*inPath, *presetPath, *presetName); err != nil {
		fmt.Fprintln(os.Stderr, "xmlgest:", err)
		os.Exit(1)
	}
}

func run(inPath, presetPath, presetName string) error {
	presets := map[string]config.Preset{"demo": config.DemoPreset()}
	if presetPath != "" {
		loaded, err := config.LoadPresets(presetPath)
		if err != nil {
			return err
		}
		for name, preset := range loaded {
			presets[name] = preset
		}
	}
	preset, ok := presets[presetName]
	if !ok {
		return fmt.Errorf("unknown preset %q", presetName)
	}

	var in io.Reader = os.Stdin
	if inPath != "" {
		f, err := os.Open(inPath)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	data, err := pipeline.Run(in, preset)
	if err != nil {
		return err
	}
	render.Text(os.Stdout, data)
	return nil
}
