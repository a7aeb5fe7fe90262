package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/angristan/frostlux/internal/models"
)

// resourceTransport is what the registry needs from the protocol layer
type resourceTransport interface {
	Get(ctx context.Context, path string) ([]byte, error)
	Put(ctx context.Context, path string, payload []byte) error
}

// Registry translates between gateway resources and Light models. All
// knowledge of the gateway's numeric resource keys stays in this package.
type Registry struct {
	rt     resourceTransport
	logger *slog.Logger
}

// NewRegistry creates a registry on top of rt
func NewRegistry(rt resourceTransport, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{rt: rt, logger: logger}
}

// ListLights fetches every device and returns the ones that are lights.
// Devices that cannot be fetched or decoded are skipped; only a failure to
// read the device list itself is returned. Order is not guaranteed.
func (r *Registry) ListLights(ctx context.Context) ([]*models.Light, error) {
	payload, err := r.rt.Get(ctx, pathDevices)
	if err != nil {
		return nil, fmt.Errorf("failed to get devices: %w", err)
	}

	ids, err := decodeDeviceIDs(payload)
	if err != nil {
		return nil, err
	}

	lights := make([]*models.Light, 0, len(ids))
	for _, id := range ids {
		light, err := r.getLight(ctx, id)
		if err != nil {
			if errors.Is(err, ErrNotALight) {
				r.logger.Debug("skipping device", "id", id, "reason", err)
			} else {
				r.logger.Warn("skipping device", "id", id, "error", err)
			}
			continue
		}
		lights = append(lights, light)
	}

	return lights, nil
}

func (r *Registry) getLight(ctx context.Context, id uint64) (*models.Light, error) {
	payload, err := r.rt.Get(ctx, devicePath(id))
	if err != nil {
		return nil, err
	}
	return decodeDevice(payload)
}

// SetPower turns a light on or off
func (r *Registry) SetPower(ctx context.Context, id uint64, on bool) error {
	return r.update(ctx, id, lightControl{On: onOff(on)})
}

// SetBrightness sets brightness (0-254). A non-zero level also turns the
// light on, zero turns it off.
func (r *Registry) SetBrightness(ctx context.Context, id uint64, brightness uint8) error {
	b := models.ClampBrightness(int(brightness))
	return r.update(ctx, id, lightControl{
		Brightness: intPtr(int(b)),
		On:         onOff(b > 0),
	})
}

// SetColor sets the color temperature by hex value
func (r *Registry) SetColor(ctx context.Context, id uint64, hex string) error {
	return r.update(ctx, id, lightControl{Color: strPtr(hex)})
}

// ApplySceneToLight writes power, brightness and color in one update
func (r *Registry) ApplySceneToLight(ctx context.Context, id uint64, on bool, brightness uint8, hex string) error {
	return r.update(ctx, id, lightControl{
		On:         onOff(on),
		Brightness: intPtr(int(models.ClampBrightness(int(brightness)))),
		Color:      strPtr(hex),
	})
}

func (r *Registry) update(ctx context.Context, id uint64, lc lightControl) error {
	payload, err := newLightUpdate(lc)
	if err != nil {
		return fmt.Errorf("failed to encode update: %w", err)
	}
	if err := r.rt.Put(ctx, devicePath(id), payload); err != nil {
		return fmt.Errorf("failed to update light %d: %w", id, err)
	}
	return nil
}
