package api

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angristan/frostlux/internal/models"
)

type put struct {
	path    string
	payload string
}

// fakeTransport serves canned payloads and records writes. A device stored
// in it echoes back the last write it received.
type fakeTransport struct {
	mu        sync.Mutex
	resources map[string]string
	failures  map[string]error
	puts      []put
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{
		resources: make(map[string]string),
		failures:  make(map[string]error),
	}
}

func (f *fakeTransport) Get(_ context.Context, path string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failures[path]; err != nil {
		return nil, err
	}
	body, ok := f.resources[path]
	if !ok {
		return nil, errors.New("not found")
	}
	return []byte(body), nil
}

func (f *fakeTransport) Put(_ context.Context, path string, payload []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failures[path]; err != nil {
		return err
	}
	f.puts = append(f.puts, put{path: path, payload: string(payload)})
	return nil
}

const (
	kitchenDevice = `{"3":{"0":"IKEA of Sweden"},"3311":[{"5706":"f1e0b5","5850":1,"5851":200,"9003":0}],"5750":2,"9001":"Kitchen","9003":1,"9019":1}`
	remoteDevice  = `{"3":{"0":"IKEA of Sweden"},"5750":0,"9001":"Remote","9003":2,"9019":1}`
)

func TestListLights_SkipsNonLights(t *testing.T) {
	rt := newFakeTransport()
	rt.resources["15001"] = `[1,2]`
	rt.resources["15001/1"] = kitchenDevice
	rt.resources["15001/2"] = remoteDevice

	lights, err := NewRegistry(rt, nil).ListLights(context.Background())
	require.NoError(t, err)
	require.Len(t, lights, 1)

	assert.Equal(t, models.Light{
		ID:         1,
		Name:       "Kitchen",
		On:         true,
		Brightness: 200,
		Color:      "f1e0b5",
		Reachable:  true,
	}, *lights[0])
}

func TestListLights_SkipsFailingDevices(t *testing.T) {
	rt := newFakeTransport()
	rt.resources["15001"] = `[1,2,3]`
	rt.resources["15001/1"] = kitchenDevice
	rt.failures["15001/2"] = errors.New("timeout")
	rt.resources["15001/3"] = `not json`

	lights, err := NewRegistry(rt, nil).ListLights(context.Background())
	require.NoError(t, err)
	require.Len(t, lights, 1)
	assert.Equal(t, "Kitchen", lights[0].Name)
}

func TestListLights_ListFailure(t *testing.T) {
	rt := newFakeTransport()
	boom := errors.New("gateway gone")
	rt.failures["15001"] = boom

	_, err := NewRegistry(rt, nil).ListLights(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestListLights_Empty(t *testing.T) {
	rt := newFakeTransport()
	rt.resources["15001"] = `[]`

	lights, err := NewRegistry(rt, nil).ListLights(context.Background())
	require.NoError(t, err)
	assert.Empty(t, lights)
}

func TestDecodeDevice(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    *models.Light
		wantErr error
	}{
		{
			name: "unreachable",
			body: `{"3311":[{"5850":0,"5851":10,"5706":"f5faf6"}],"9001":"Desk","9003":65540,"9019":0}`,
			want: &models.Light{ID: 65540, Name: "Desk", Brightness: 10, Color: "f5faf6"},
		},
		{
			name: "missing reachability and color",
			body: `{"3311":[{"5850":1,"5851":254}],"9001":"Hall","9003":7}`,
			want: &models.Light{ID: 7, Name: "Hall", On: true, Brightness: 254},
		},
		{
			name: "brightness clamped",
			body: `{"3311":[{"5850":1,"5851":300}],"9001":"Hot","9003":8,"9019":1}`,
			want: &models.Light{ID: 8, Name: "Hot", On: true, Brightness: 254, Reachable: true},
		},
		{
			name: "first control wins",
			body: `{"3311":[{"5850":1,"5851":50},{"5850":0,"5851":100}],"9001":"Multi","9003":9,"9019":1}`,
			want: &models.Light{ID: 9, Name: "Multi", On: true, Brightness: 50, Reachable: true},
		},
		{
			name:    "not a light",
			body:    remoteDevice,
			wantErr: ErrNotALight,
		},
		{
			name:    "empty control list",
			body:    `{"3311":[],"9001":"Plug","9003":10}`,
			wantErr: ErrNotALight,
		},
		{
			name:    "no instance id",
			body:    `{"3311":[{"5850":1}],"9001":"Ghost"}`,
			wantErr: errMissingInstanceID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeDevice([]byte(tt.body))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetPower_Payload(t *testing.T) {
	rt := newFakeTransport()
	r := NewRegistry(rt, nil)

	require.NoError(t, r.SetPower(context.Background(), 1, false))
	require.Len(t, rt.puts, 1)
	assert.Equal(t, "15001/1", rt.puts[0].path)
	assert.Equal(t, `{"3311":[{"5850":0}]}`, rt.puts[0].payload)
}

func TestSetBrightness_Payload(t *testing.T) {
	tests := []struct {
		brightness uint8
		want       string
	}{
		{0, `{"3311":[{"5850":0,"5851":0}]}`},
		{200, `{"3311":[{"5850":1,"5851":200}]}`},
		{255, `{"3311":[{"5850":1,"5851":254}]}`},
	}

	for _, tt := range tests {
		rt := newFakeTransport()
		require.NoError(t, NewRegistry(rt, nil).SetBrightness(context.Background(), 65537, tt.brightness))
		require.Len(t, rt.puts, 1)
		assert.Equal(t, "15001/65537", rt.puts[0].path)
		assert.JSONEq(t, tt.want, rt.puts[0].payload)
	}
}

func TestSetColor_Payload(t *testing.T) {
	rt := newFakeTransport()
	require.NoError(t, NewRegistry(rt, nil).SetColor(context.Background(), 3, "efd275"))
	require.Len(t, rt.puts, 1)
	assert.Equal(t, `{"3311":[{"5706":"efd275"}]}`, rt.puts[0].payload)
}

func TestApplySceneToLight_Payload(t *testing.T) {
	rt := newFakeTransport()
	require.NoError(t, NewRegistry(rt, nil).ApplySceneToLight(context.Background(), 4, true, 30, "f1e0b5"))
	require.Len(t, rt.puts, 1)
	assert.JSONEq(t, `{"3311":[{"5850":1,"5851":30,"5706":"f1e0b5"}]}`, rt.puts[0].payload)
}

func TestUpdate_WrapsError(t *testing.T) {
	rt := newFakeTransport()
	boom := errors.New("rejected")
	rt.failures["15001/5"] = boom

	err := NewRegistry(rt, nil).SetPower(context.Background(), 5, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failed to update light 5")
}
