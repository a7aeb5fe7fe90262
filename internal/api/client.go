package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/angristan/frostlux/internal/gateway"
	"github.com/angristan/frostlux/internal/models"
)

// TradfriClient is a connection to a Trådfri gateway that is safe to share
// between goroutines. Every operation holds the client's lock for its
// whole duration, so exactly one exchange is in flight at a time.
//
// Copy the pointer to hand the client to another goroutine; all copies
// share the same session.
type TradfriClient struct {
	host      string
	messenger *gateway.Messenger
	registry  *Registry
	logger    *slog.Logger

	mu sync.Mutex
}

// NewTradfriClient connects to the gateway at host. A failed handshake is
// returned as a *gateway.ConnectError.
func NewTradfriClient(ctx context.Context, host, identity, psk string, logger *slog.Logger) (*TradfriClient, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "tradfri")
	return newTradfriClient(ctx, host, gateway.NewDialer(host, identity, psk, logger), logger)
}

func newTradfriClient(ctx context.Context, host string, dial gateway.Dialer, logger *slog.Logger) (*TradfriClient, error) {
	if logger == nil {
		logger = slog.Default()
	}
	m := gateway.NewMessenger(dial, gateway.WithLogger(logger))
	if err := m.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to gateway: %w", err)
	}

	return &TradfriClient{
		host:      host,
		messenger: m,
		registry:  NewRegistry(m, logger),
		logger:    logger,
	}, nil
}

// Host returns the gateway host
func (c *TradfriClient) Host() string {
	return c.host
}

// ListLights retrieves all lights from the gateway
func (c *TradfriClient) ListLights(ctx context.Context) ([]*models.Light, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.registry.ListLights(ctx)
}

// SetPower turns a light on or off
func (c *TradfriClient) SetPower(ctx context.Context, id uint64, on bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.registry.SetPower(ctx, id, on)
}

// SetBrightness sets a light's brightness (0-254)
func (c *TradfriClient) SetBrightness(ctx context.Context, id uint64, brightness uint8) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.registry.SetBrightness(ctx, id, brightness)
}

// SetColor sets a light's color temperature by hex value
func (c *TradfriClient) SetColor(ctx context.Context, id uint64, hex string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.registry.SetColor(ctx, id, hex)
}

// ApplySceneToLight sets power, brightness and color of one light
func (c *TradfriClient) ApplySceneToLight(ctx context.Context, id uint64, on bool, brightness uint8, hex string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.registry.ApplySceneToLight(ctx, id, on, brightness, hex)
}

// Close drops the gateway session
func (c *TradfriClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.messenger.Close()
}

// SceneFilter reports whether a light should be left out of a scene
type SceneFilter func(scene models.Scene, lightName string) bool

// ApplyScene applies scene to every light not rejected by skip. A failing
// light does not stop the rest; all failures are returned joined together.
// It returns the number of lights that were updated.
func ApplyScene(ctx context.Context, client GatewayClient, lights []*models.Light, scene models.Scene, skip SceneFilter, logger *slog.Logger) (int, error) {
	if logger == nil {
		logger = slog.Default()
	}
	settings := scene.Settings()

	var errs []error
	applied := 0
	for _, light := range lights {
		if skip != nil && skip(scene, light.Name) {
			continue
		}
		err := client.ApplySceneToLight(ctx, light.ID, settings.On, settings.Brightness, settings.Color)
		if err != nil {
			logger.Warn("scene not applied to light", "scene", scene.Key(), "light", light.Name, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", light.Name, err))
			continue
		}
		applied++
	}

	return applied, errors.Join(errs...)
}
