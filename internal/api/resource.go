package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/angristan/frostlux/internal/models"
)

// Resource paths on the gateway
const (
	pathDevices = "15001"
)

// devicePath returns the resource path of a single device
func devicePath(id uint64) string {
	return pathDevices + "/" + strconv.FormatUint(id, 10)
}

var (
	// ErrNotALight is returned when a device has no light control block
	ErrNotALight = errors.New("device is not a light")

	errMissingInstanceID = errors.New("device has no instance id")
)

// deviceResource is the gateway's representation of one device. Keys are
// the gateway's numeric resource identifiers:
//
//	3     device info (unused)
//	3311  light control list
//	5750  device type
//	9001  name
//	9003  instance id
//	9019  reachability (1/0)
type deviceResource struct {
	Info       json.RawMessage `json:"3,omitempty"`
	Lights     []lightControl  `json:"3311,omitempty"`
	DeviceType int             `json:"5750"`
	Name       string          `json:"9001"`
	InstanceID *uint64         `json:"9003"`
	Reachable  *int            `json:"9019,omitempty"`
}

// lightControl is one entry of the 3311 list. Only non-nil fields are
// written when used as an update.
//
//	5706  color (hex triplet)
//	5850  on/off (1/0)
//	5851  brightness (0-254)
type lightControl struct {
	Color      *string `json:"5706,omitempty"`
	On         *int    `json:"5850,omitempty"`
	Brightness *int    `json:"5851,omitempty"`
}

// decodeDevice parses a device payload into a Light. Devices without a
// light control block yield ErrNotALight.
func decodeDevice(data []byte) (*models.Light, error) {
	var raw deviceResource
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse device: %w", err)
	}
	return raw.toModel()
}

func (r *deviceResource) toModel() (*models.Light, error) {
	if r.InstanceID == nil {
		return nil, errMissingInstanceID
	}
	if len(r.Lights) == 0 {
		return nil, ErrNotALight
	}

	// The first light control is authoritative
	lc := r.Lights[0]
	light := &models.Light{
		ID:        *r.InstanceID,
		Name:      r.Name,
		On:        lc.On != nil && *lc.On == 1,
		Reachable: r.Reachable != nil && *r.Reachable == 1,
	}
	if lc.Brightness != nil {
		light.Brightness = models.ClampBrightness(*lc.Brightness)
	}
	if lc.Color != nil {
		light.Color = *lc.Color
	}
	return light, nil
}

// decodeDeviceIDs parses the device list resource
func decodeDeviceIDs(data []byte) ([]uint64, error) {
	var ids []uint64
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("failed to parse device id list: %w", err)
	}
	return ids, nil
}

// lightUpdate is the body of a PUT to a device
type lightUpdate struct {
	Lights []lightControl `json:"3311"`
}

func newLightUpdate(lc lightControl) ([]byte, error) {
	return json.Marshal(lightUpdate{Lights: []lightControl{lc}})
}

func onOff(on bool) *int {
	v := 0
	if on {
		v = 1
	}
	return &v
}

func intPtr(v int) *int { return &v }

func strPtr(s string) *string { return &s }
