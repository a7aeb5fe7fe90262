package api

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/mdns"
)

// coapService is the mDNS service Trådfri gateways advertise
const coapService = "_coap._udp"

// DiscoveredGateway represents a gateway found during discovery
type DiscoveredGateway struct {
	// IP address of the gateway
	Host string
	// Port the gateway advertised
	Port int
	// Name from mDNS
	Name string
}

// IsTradfri reports whether the advertised name looks like an IKEA gateway
func (g DiscoveredGateway) IsTradfri() bool {
	name := strings.ToLower(g.Name)
	return strings.Contains(name, "tradfri") || strings.HasPrefix(name, "gw-")
}

// DiscoverGateways looks for CoAP gateways on the local network using mDNS
func DiscoverGateways(ctx context.Context, timeout time.Duration) ([]DiscoveredGateway, error) {
	var gateways []DiscoveredGateway
	var mu sync.Mutex

	entriesCh := make(chan *mdns.ServiceEntry, 10)
	done := make(chan struct{})

	go func() {
		defer close(done)
		seen := make(map[string]bool)
		for entry := range entriesCh {
			if entry.AddrV4 == nil {
				continue
			}
			gw := DiscoveredGateway{
				Host: entry.AddrV4.String(),
				Port: entry.Port,
				Name: entry.Name,
			}
			if gw.Name == "" && entry.Host != "" {
				gw.Name = strings.TrimSuffix(entry.Host, ".")
			}

			mu.Lock()
			if !seen[gw.Host] {
				seen[gw.Host] = true
				gateways = append(gateways, gw)
			}
			mu.Unlock()
		}
	}()

	params := mdns.DefaultParams(coapService)
	params.Entries = entriesCh
	params.Timeout = timeout
	params.DisableIPv6 = true

	err := mdns.QueryContext(ctx, params)
	close(entriesCh)
	<-done

	if err != nil {
		return gateways, fmt.Errorf("mDNS query failed: %w", err)
	}

	return gateways, nil
}
