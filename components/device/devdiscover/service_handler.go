package devdiscover

import (
	"fmt"
	"strings"

	"github.com/open-control-systems/cast-hub/components/device"
	"github.com/open-control-systems/cast-hub/components/system/sysmdns"
)

// ServiceHandler converts Google Cast mDNS services into discovered devices.
type ServiceHandler struct {
	handler device.DiscoveryHandler
}

// NewServiceHandler is an initialization of ServiceHandler.
//
// Parameters:
//   - handler to receive discovered devices.
func NewServiceHandler(handler device.DiscoveryHandler) *ServiceHandler {
	return &ServiceHandler{handler: handler}
}

// HandleService handles mDNS service discovered over local network.
func (h *ServiceHandler) HandleService(service sysmdns.Service) error {
	d, err := makeDiscoveredDevice(service)
	if err != nil {
		return err
	}

	h.handler.HandleDiscovered(d)

	return nil
}

// makeDiscoveredDevice builds the device from the Google Cast TXT records.
func makeDiscoveredDevice(service sysmdns.Service) (device.DiscoveredDevice, error) {
	txt := parseTxtRecords(service.TxtRecords())

	id := txt["id"]
	if id == "" {
		id = service.Instance()
	}
	if id == "" {
		return device.DiscoveredDevice{}, fmt.Errorf("ignore service: hostname=%s:"+
			" neither id nor instance name found", service.Hostname())
	}

	addrs := make([]string, 0, len(service.Addrs()))
	for _, addr := range service.Addrs() {
		addrs = append(addrs, addr.String())
	}

	fullname := strings.Join([]string{service.Instance(), service.Name(), service.Domain()}, ".")

	return device.DiscoveredDevice{
		ID:                   id,
		Host:                 service.Hostname(),
		Addresses:            addrs,
		Port:                 service.Port(),
		Fullname:             fullname,
		Version:              txt["ve"],
		Model:                txt["md"],
		IconPath:             txt["ic"],
		FriendlyName:         txt["fn"],
		CertificateAuthority: txt["ca"],
		Streaming:            txt["st"],
		AppName:              txt["rs"],
	}, nil
}

func parseTxtRecords(records []string) map[string]string {
	txt := make(map[string]string, len(records))

	for _, record := range records {
		key, value, _ := strings.Cut(record, "=")
		if key == "" {
			continue
		}

		if _, ok := txt[key]; !ok {
			txt[key] = value
		}
	}

	return txt
}
