// Command frostlux controls IKEA Trådfri lights from the terminal.
//
// Usage:
//
//	frostlux [flags]
//
// Flags:
//
//	-config string     Configuration file path (default ~/.config/frostlux/config.yaml)
//	-demo              Run against built-in demo lights instead of a gateway
//	-scene string      Apply a scene and exit (alias -s)
//	-discover          List gateways found on the local network and exit
//	-log-level string  Override the configured log level
//
// Examples:
//
//	# Start the interface
//	frostlux
//
//	# Dim everything for a movie without opening the interface
//	frostlux -s movie
//
//	# Find the gateway address
//	frostlux -discover
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/angristan/frostlux/internal/api"
	"github.com/angristan/frostlux/internal/config"
	"github.com/angristan/frostlux/internal/gateway"
	"github.com/angristan/frostlux/internal/logging"
	"github.com/angristan/frostlux/internal/models"
	"github.com/angristan/frostlux/internal/tui"
	"github.com/angristan/frostlux/internal/tui/styles"
)

const discoverTimeout = 3 * time.Second

// options holds the parsed command line
type options struct {
	ConfigFile string
	Demo       bool
	Scene      string
	Discover   bool
	LogLevel   string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("frostlux", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.ConfigFile, "config", "", "Configuration file path")
	fs.BoolVar(&opts.Demo, "demo", false, "Run against built-in demo lights instead of a gateway")
	fs.StringVar(&opts.Scene, "scene", "", "Apply a scene and exit")
	fs.StringVar(&opts.Scene, "s", "", "Shorthand for -scene")
	fs.BoolVar(&opts.Discover, "discover", false, "List gateways found on the local network and exit")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: frostlux [flags]\n\nFlags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nScenes: %s\n", sceneKeys())
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	return opts, nil
}

func sceneKeys() string {
	keys := make([]string, 0, len(models.AllScenes()))
	for _, s := range models.AllScenes() {
		keys = append(keys, s.Key())
	}
	return strings.Join(keys, ", ")
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "frostlux: %v\n", err)
		os.Exit(2)
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "frostlux: %v\n", err)
		var cerr *gateway.ConnectError
		if errors.As(err, &cerr) {
			fmt.Fprintln(os.Stderr, "hint: check gateway host, identity and psk in the config file")
		}
		os.Exit(1)
	}
}

func run(opts options) error {
	if opts.Discover {
		return discover()
	}

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfg.Generated {
		fmt.Fprintf(os.Stderr, "Generated default config at: %s\n", cfg.Path)
	}
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer logger.Close()

	if opts.Scene != "" {
		return applyScene(cfg, logger, opts)
	}

	// Must run before Bubble Tea owns the terminal
	styles.Apply(styles.ResolveTheme(cfg.UI.Theme))

	client, err := connect(context.Background(), cfg, logger, opts.Demo)
	if err != nil {
		return err
	}
	defer client.Close()

	logger.Info("starting interface", "host", client.Host(), "demo", opts.Demo)

	p := tea.NewProgram(
		tui.NewModel(client, cfg, logger.Logger),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running interface: %w", err)
	}
	return nil
}

func connect(ctx context.Context, cfg *config.Config, logger *logging.Logger, demo bool) (api.GatewayClient, error) {
	if demo {
		return api.NewDemoGateway(), nil
	}
	if err := cfg.Gateway.Validate(); err != nil {
		return nil, fmt.Errorf("%w (set them in %s)", err, cfg.Path)
	}
	return api.NewTradfriClient(ctx, cfg.Gateway.Host, cfg.Gateway.Identity, cfg.Gateway.PSK, logger.Logger)
}

// applyScene runs one scene without the interface
func applyScene(cfg *config.Config, logger *logging.Logger, opts options) error {
	scene, ok := models.ParseScene(opts.Scene)
	if !ok {
		return fmt.Errorf("unknown scene %q, available: %s", opts.Scene, sceneKeys())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := connect(ctx, cfg, logger, opts.Demo)
	if err != nil {
		return err
	}
	defer client.Close()

	lights, err := client.ListLights(ctx)
	if err != nil {
		return fmt.Errorf("listing lights: %w", err)
	}

	n, err := api.ApplyScene(ctx, client, lights, scene, cfg.Scenes.IsExcluded, logger.Logger)
	if err != nil {
		return fmt.Errorf("scene %s applied to %d lights, failures:\n%w", scene.Name(), n, err)
	}

	fmt.Printf("frostlux: %s applied to %d lights\n", scene.Name(), n)
	return nil
}

func discover() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(os.Stderr, "Searching for gateways (%s)...\n", discoverTimeout)
	gateways, err := api.DiscoverGateways(ctx, discoverTimeout)
	if err != nil {
		return err
	}
	if len(gateways) == 0 {
		fmt.Println("No gateways found")
		return nil
	}

	for _, gw := range gateways {
		kind := "coap"
		if gw.IsTradfri() {
			kind = "tradfri"
		}
		fmt.Printf("%-16s %-5d %-8s %s\n", gw.Host, gw.Port, kind, gw.Name)
	}
	return nil
}
