package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"

	"github.com/diwise/lightspark-go/internal/pkg/application/catalog"
	"github.com/diwise/lightspark-go/pkg/lightspark/objects"
)

const (
	appName string = "lsgql"
)

const usage string = `usage:
  lsgql compile <operation> [name=value ...]
  lsgql decode <type> <file> [key ...]
`

func main() {
	appVersion := buildinfo.SourceVersion()

	ctx, log, cleanup := o11y.Init(context.Background(), appName, appVersion, "json")
	defer cleanup()

	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 {
		flag.Usage()
		os.Exit(2)
	}

	cat, err := loadCatalog(ctx, env.GetVariableOrDefault(ctx, "LSGQL_CATALOG", ""))
	if err != nil {
		log.Error("failed to load catalog", "err", err.Error())
		os.Exit(1)
	}

	switch args[0] {
	case "compile":
		err = compile(os.Stdout, cat, args[1], args[2:])
	case "decode":
		if len(args) < 3 {
			flag.Usage()
			os.Exit(2)
		}
		err = decodeFile(ctx, os.Stdout, args[1], args[2], args[3:])
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		log.Error("command failed", slog.String("command", args[0]), "err", err.Error())
		os.Exit(1)
	}
}

func loadCatalog(ctx context.Context, path string) (catalog.Catalog, error) {
	cfg := &catalog.Config{}

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		cfg, err = catalog.LoadConfiguration(f)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	return catalog.New(cfg, objects.Fragments)
}

// parseVariables turns name=value arguments into operation variables. Values
// that are valid json are decoded, everything else is kept as a string.
func parseVariables(args []string) (map[string]any, error) {
	variables := map[string]any{}

	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("malformed variable %q, expected name=value", arg)
		}

		var v any
		if err := json.Unmarshal([]byte(value), &v); err != nil {
			v = value
		}

		variables[name] = v
	}

	return variables, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
