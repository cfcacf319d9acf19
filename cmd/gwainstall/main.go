// cmd/gwainstall/main.go

package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/gwatoolbox/gwa-installer/pkg/config"
	"github.com/gwatoolbox/gwa-installer/pkg/logging"
	"github.com/gwatoolbox/gwa-installer/pkg/prompts"
	"github.com/gwatoolbox/gwa-installer/pkg/settings"
	"github.com/gwatoolbox/gwa-installer/pkg/steps"
	"github.com/gwatoolbox/gwa-installer/pkg/sysinfo"
	"github.com/gwatoolbox/gwa-installer/pkg/version"
	"github.com/gwatoolbox/gwa-installer/pkg/wizard"
)

func main() {
	// Define command-line flags.
	showConfig := pflag.Bool("show-config", false, "Display the current configuration and exit.")
	configPath := pflag.String("config", "", "Path to the configuration file.")
	profileName := pflag.String("profile", "", "Target toolbox generation (overrides the configuration).")
	versionFlag := pflag.Bool("version", false, "Print the version and exit.")

	// Count the number of -v flags.
	var verbosity int
	pflag.CountVarP(&verbosity, "verbose", "v", "Increase verbosity (e.g. -v, -vv)")
	pflag.Parse()

	if *versionFlag {
		version.Print()
		os.Exit(0)
	}

	// Load configuration (only once).
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Dynamically override LogLevel based on the number of -v flags.
	// 0 => configured level, 1 => INFO, 2+ => DEBUG
	switch verbosity {
	case 0:
	case 1:
		cfg.LogLevel = "INFO"
	default:
		cfg.LogLevel = "DEBUG"
	}

	if err := logging.Init(logging.Options{
		Level:         logging.ParseLevel(cfg.LogLevel),
		EnableConsole: verbosity > 0,
		EnableJSON:    cfg.Debug,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logging.Close()

	if *showConfig {
		data, err := yaml.Marshal(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to serialize configuration: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Current configuration:\n%s\n", data)
		os.Exit(0)
	}

	// Handle Ctrl-C and termination: close the log cleanly, exit as a
	// normal cancellation.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logging.Info("Installation interrupted by signal")
		logging.Close()
		os.Exit(0)
	}()

	logging.Info("Starting GWA Toolbox installation",
		"version", version.Version().Version,
		"os", sysinfo.OSDescription(),
		"log", logging.LogPath())

	name := *profileName
	if name == "" {
		name = cfg.TargetProfile
	}
	if name == "" {
		name = steps.DefaultProfileName
	}
	profile, ok := steps.Profiles()[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown target profile %q\n", name)
		os.Exit(1)
	}
	logging.Info("Target profile selected", "profile", profile.Name)

	store, err := settings.NewIniStore(cfg.SettingsPath)
	if err != nil {
		logging.Error("Could not open the QGIS settings file", "path", cfg.SettingsPath, "error", err)
		fmt.Fprintf(os.Stderr, "Could not open the QGIS settings file %s: %v\n", cfg.SettingsPath, err)
		os.Exit(1)
	}

	presenter := prompts.New()
	builder := &steps.Builder{
		Cfg:     cfg,
		Store:   store,
		Profile: profile,
		UI:      presenter,
	}

	sequence, defaults := builder.Sequence()
	if err := wizard.NewSequencer(presenter).Execute(sequence, defaults); err != nil {
		if errors.Is(err, wizard.ErrUnknownOutcome) {
			os.Exit(1)
		}
		logging.Error("Installation run failed", "error", err)
		os.Exit(1)
	}

	logging.Info("Installation run finished", "log", logging.LogPath())
}
