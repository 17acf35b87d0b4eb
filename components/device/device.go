package device

// Device is a named media receiver curated by the user.
type Device struct {
	// Address is how the device can be reached, host name or IP address.
	//
	// Remarks:
	//   - Address should be unique within the registry.
	Address string `json:"address"`

	// FriendlyName is the human readable device label.
	FriendlyName string `json:"friendlyName"`
}

// DiscoveredDevice is a media receiver found on the local network.
type DiscoveredDevice struct {
	ID                   string   `json:"id"`
	Host                 string   `json:"host"`
	Addresses            []string `json:"addresses"`
	Port                 int      `json:"port"`
	Fullname             string   `json:"fullname"`
	Version              string   `json:"version"`
	Model                string   `json:"model"`
	IconPath             string   `json:"iconPath"`
	FriendlyName         string   `json:"friendlyName"`
	CertificateAuthority string   `json:"certificateAuthority"`
	Streaming            string   `json:"streaming"`
	AppName              string   `json:"appName"`
}

// Clone returns a deep copy of the discovered device.
func (d DiscoveredDevice) Clone() DiscoveredDevice {
	if d.Addresses != nil {
		d.Addresses = append([]string(nil), d.Addresses...)
	}

	return d
}
