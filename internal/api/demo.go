package api

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/angristan/frostlux/internal/models"
)

// DemoGateway implements GatewayClient for demo mode without a real gateway.
// All state changes are maintained in memory.
type DemoGateway struct {
	// Delay simulates network latency on every call
	Delay time.Duration

	lights map[uint64]*models.Light
	mu     sync.RWMutex
}

// NewDemoGateway creates a demo gateway with sample data
func NewDemoGateway() *DemoGateway {
	d := &DemoGateway{
		Delay:  150 * time.Millisecond,
		lights: make(map[uint64]*models.Light),
	}
	for _, l := range demoLights {
		d.lights[l.ID] = l.Clone()
	}
	return d
}

var demoLights = []*models.Light{
	{ID: 65537, Name: "Kitchen", On: true, Brightness: 200, Color: models.ColorNeutral.Hex, Reachable: true},
	{ID: 65538, Name: "Living Room Floor", On: true, Brightness: 127, Color: models.ColorWarm.Hex, Reachable: true},
	{ID: 65539, Name: "Living Room Ceiling", On: false, Brightness: 254, Color: models.ColorCold.Hex, Reachable: true},
	{ID: 65540, Name: "TV Lamp", On: true, Brightness: 30, Color: models.ColorWarm.Hex, Reachable: true},
	{ID: 65541, Name: "Bedroom", On: false, Brightness: 80, Color: models.ColorNeutral.Hex, Reachable: true},
	{ID: 65542, Name: "Hallway", On: false, Brightness: 0, Color: models.ColorCold.Hex, Reachable: false},
}

// Host returns the demo gateway host
func (d *DemoGateway) Host() string {
	return "demo-gateway.local"
}

func (d *DemoGateway) sleep(ctx context.Context) error {
	if d.Delay <= 0 {
		return nil
	}
	select {
	case <-time.After(d.Delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ListLights returns copies of the demo lights
func (d *DemoGateway) ListLights(ctx context.Context) ([]*models.Light, error) {
	if err := d.sleep(ctx); err != nil {
		return nil, err
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	lights := make([]*models.Light, 0, len(d.lights))
	for _, l := range d.lights {
		lights = append(lights, l.Clone())
	}
	return lights, nil
}

// withLight runs fn on the demo light with the given id
func (d *DemoGateway) withLight(ctx context.Context, id uint64, fn func(l *models.Light)) error {
	if err := d.sleep(ctx); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	light, ok := d.lights[id]
	if !ok {
		return fmt.Errorf("demo light %d not found", id)
	}
	fn(light)
	return nil
}

// SetPower turns a demo light on or off
func (d *DemoGateway) SetPower(ctx context.Context, id uint64, on bool) error {
	return d.withLight(ctx, id, func(l *models.Light) {
		l.On = on
	})
}

// SetBrightness sets a demo light's brightness, switching it on or off
func (d *DemoGateway) SetBrightness(ctx context.Context, id uint64, brightness uint8) error {
	return d.withLight(ctx, id, func(l *models.Light) {
		l.Brightness = models.ClampBrightness(int(brightness))
		l.On = l.Brightness > 0
	})
}

// SetColor sets a demo light's color temperature
func (d *DemoGateway) SetColor(ctx context.Context, id uint64, hex string) error {
	return d.withLight(ctx, id, func(l *models.Light) {
		l.Color = hex
	})
}

// ApplySceneToLight sets all three values on a demo light
func (d *DemoGateway) ApplySceneToLight(ctx context.Context, id uint64, on bool, brightness uint8, hex string) error {
	return d.withLight(ctx, id, func(l *models.Light) {
		l.On = on
		l.Brightness = models.ClampBrightness(int(brightness))
		l.Color = hex
	})
}

// Close is a no-op for the demo gateway
func (d *DemoGateway) Close() error {
	return nil
}
