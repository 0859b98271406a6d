package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/specialistvlad/treegridgo/internal/app"
	"github.com/specialistvlad/treegridgo/internal/mapping"
	"github.com/specialistvlad/treegridgo/internal/source/neo4jsource"
	"github.com/spf13/pflag"
)

// PasswordEnv names the environment variable holding the Neo4j password.
const PasswordEnv = "TREEGRIDGO_NEO4J_PASSWORD"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := pflag.NewFlagSet("treegridgo", pflag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.SortFlags = false

	flagSet.Usage = func() {
		fmt.Fprintf(output, `
TreeGridGo - builds ordered trees from flat parent-pointer records.

Usage:
  treegridgo [options] [RECORDS_PATH...]
  treegridgo --neo4j-uri neo4j://host:7687 [options]
  treegridgo --action serve --listen :8080 [RECORDS_PATH...]

Arguments:
  RECORDS_PATH
    A .json, .yaml, .yml or .hcl file, or a directory containing them.

Environment:
  %s
    Password for the Neo4j source.

Options:
`, PasswordEnv)
		flagSet.PrintDefaults()
	}

	actionFlag := flagSet.StringP("action", "a", app.ActionTree, fmt.Sprintf("Action to run. Options: %s.", strings.Join(app.Actions, ", ")))
	idFlag := flagSet.String("id", "", "Node id looked up by 'find' or excluded by 'options'.")
	presetFlag := flagSet.StringP("preset", "p", mapping.DefaultPreset, fmt.Sprintf("Field mapping for JSON and YAML rows. Options: %s.", strings.Join(mapping.PresetNames(), ", ")))
	orphansFlag := flagSet.String("orphans", "promote-to-root", "Orphan policy. Options: 'promote-to-root' or 'reject'.")
	outputFlag := flagSet.StringP("output", "o", "text", "Output format. Options: 'text', 'json' or 'yaml'.")
	listenFlag := flagSet.String("listen", ":8080", "Listen address for the 'serve' action.")
	forestNameFlag := flagSet.String("forest-name", app.DefaultForestName, "Name the 'serve' action stores the source forest under.")

	neo4jURIFlag := flagSet.String("neo4j-uri", "", "Read records from this Neo4j instance instead of files.")
	neo4jUserFlag := flagSet.String("neo4j-user", "neo4j", "Neo4j username.")
	neo4jDatabaseFlag := flagSet.String("neo4j-database", "", "Neo4j database. Empty uses the server default.")
	neo4jLabelFlag := flagSet.String("neo4j-label", neo4jsource.DefaultLabel, "Node label of the hierarchical records.")
	neo4jLabelPropFlag := flagSet.String("neo4j-label-property", neo4jsource.DefaultLabelProperty, "Node property used as the display label.")
	neo4jOrderPropFlag := flagSet.String("neo4j-order-property", neo4jsource.DefaultOrderProperty, "Node property used as the sibling order.")

	healthPortFlag := flagSet.Int("healthcheck-port", 0, "Port for the HTTP health check server. 0 is disabled.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, usageError("%s", err.Error())
	}
	slog.Debug("Arguments parsed successfully.")

	action := strings.ToLower(*actionFlag)
	paths := flagSet.Args()
	if len(paths) == 0 && *neo4jURIFlag == "" && action != app.ActionServe {
		slog.Debug("No records source provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		SourcePaths: paths,
		Neo4j: neo4jsource.Config{
			URI:           *neo4jURIFlag,
			Username:      *neo4jUserFlag,
			Password:      os.Getenv(PasswordEnv),
			Database:      *neo4jDatabaseFlag,
			Label:         *neo4jLabelFlag,
			LabelProperty: *neo4jLabelPropFlag,
			OrderProperty: *neo4jOrderPropFlag,
		},
		Preset:          strings.ToLower(*presetFlag),
		OrphanPolicy:    strings.ToLower(*orphansFlag),
		Action:          action,
		TargetID:        *idFlag,
		OutputFormat:    *outputFlag,
		ListenAddr:      *listenFlag,
		ForestName:      *forestNameFlag,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
		HealthcheckPort: *healthPortFlag,
	})
	if err != nil {
		return nil, false, usageError("%s", err.Error())
	}

	slog.Debug("CLI parser finished successfully.", "action", config.Action)
	return config, false, nil
}
