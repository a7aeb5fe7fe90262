package api

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angristan/frostlux/internal/models"
)

func newTestDemo() *DemoGateway {
	d := NewDemoGateway()
	d.Delay = 0
	return d
}

func TestDemoGatewayData(t *testing.T) {
	d := newTestDemo()
	lights, err := d.ListLights(context.Background())
	require.NoError(t, err)

	t.Logf("Lights: %d", len(lights))
	assert.Len(t, lights, len(demoLights))

	for _, l := range lights {
		assert.NotEmpty(t, l.Name)
		assert.LessOrEqual(t, int(l.Brightness), models.MaxBrightness)
	}
}

func TestDemoGatewayReturnsCopies(t *testing.T) {
	d := newTestDemo()
	ctx := context.Background()

	lights, err := d.ListLights(ctx)
	require.NoError(t, err)
	for _, l := range lights {
		l.Name = "mutated"
	}

	again, err := d.ListLights(ctx)
	require.NoError(t, err)
	for _, l := range again {
		assert.NotEqual(t, "mutated", l.Name)
	}
}

func findLight(t *testing.T, d *DemoGateway, id uint64) *models.Light {
	t.Helper()
	lights, err := d.ListLights(context.Background())
	require.NoError(t, err)
	for _, l := range lights {
		if l.ID == id {
			return l
		}
	}
	t.Fatalf("light %d not found", id)
	return nil
}

func TestDemoGatewaySetBrightness(t *testing.T) {
	d := newTestDemo()
	ctx := context.Background()

	require.NoError(t, d.SetBrightness(ctx, 65537, 0))
	l := findLight(t, d, 65537)
	assert.False(t, l.On)
	assert.Equal(t, uint8(0), l.Brightness)

	require.NoError(t, d.SetBrightness(ctx, 65537, 200))
	l = findLight(t, d, 65537)
	assert.True(t, l.On)
	assert.Equal(t, uint8(200), l.Brightness)

	require.NoError(t, d.SetBrightness(ctx, 65537, 255))
	assert.Equal(t, uint8(models.MaxBrightness), findLight(t, d, 65537).Brightness)
}

func TestDemoGatewayPowerAndColor(t *testing.T) {
	d := newTestDemo()
	ctx := context.Background()

	require.NoError(t, d.SetPower(ctx, 65539, true))
	require.NoError(t, d.SetColor(ctx, 65539, models.ColorWarm.Hex))

	l := findLight(t, d, 65539)
	assert.True(t, l.On)
	assert.Equal(t, models.ColorWarm.Hex, l.Color)
}

func TestDemoGatewayUnknownLight(t *testing.T) {
	d := newTestDemo()
	err := d.SetPower(context.Background(), 1, true)
	assert.Error(t, err)
}

func TestDemoGatewayCancelledContext(t *testing.T) {
	d := NewDemoGateway()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := d.ListLights(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
