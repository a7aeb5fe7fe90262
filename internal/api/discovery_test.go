package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscoveredGatewayIsTradfri(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"gw-b8d7af2a3c4e._coap._udp.local.", true},
		{"GW-B8D7AF2A3C4E", true},
		{"TRADFRI gateway", true},
		{"tradfri-hub.local", true},
		{"shelly-plug._coap._udp.local.", false},
		{"my-gw-box", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := DiscoveredGateway{Host: "192.168.0.131", Port: 5684, Name: tt.name}
			assert.Equal(t, tt.want, gw.IsTradfri())
		})
	}
}
