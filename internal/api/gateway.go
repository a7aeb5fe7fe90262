package api

import (
	"context"

	"github.com/angristan/frostlux/internal/models"
)

// GatewayClient defines the interface for controlling lights behind a
// gateway. This abstraction allows for both real gateway connections and
// demo mode.
type GatewayClient interface {
	// ListLights returns a fresh snapshot of every light
	ListLights(ctx context.Context) ([]*models.Light, error)

	// Light control methods
	SetPower(ctx context.Context, id uint64, on bool) error
	SetBrightness(ctx context.Context, id uint64, brightness uint8) error
	SetColor(ctx context.Context, id uint64, hex string) error
	ApplySceneToLight(ctx context.Context, id uint64, on bool, brightness uint8, hex string) error

	// Metadata
	Host() string

	Close() error
}

// Compile-time checks
var (
	_ GatewayClient = (*TradfriClient)(nil)
	_ GatewayClient = (*DemoGateway)(nil)
)
