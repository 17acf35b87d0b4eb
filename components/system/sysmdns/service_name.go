package sysmdns

import "strings"

// ServiceType represents known mDNS service types.
//
// References:
//   - See common services: http://www.dns-sd.org/serviceTypes.html
//   - https://datatracker.ietf.org/doc/html/rfc6335
//   - https://www.ietf.org/rfc/rfc6763.txt
type ServiceType int

const (
	// ServiceTypeGooglecast is used for Google Cast receivers.
	ServiceTypeGooglecast ServiceType = iota
)

// String returns string representation of the mDNS service type.
func (s ServiceType) String() string {
	switch s {
	case ServiceTypeGooglecast:
		return "_googlecast"
	default:
		return "<none>"
	}
}

// Proto represents known transport protocols.
type Proto int

const (
	// ProtoTCP is used for application protocols that run over TCP.
	ProtoTCP Proto = iota
)

// String returns string representation of the mDNS protocol.
func (p Proto) String() string {
	switch p {
	case ProtoTCP:
		return "_tcp"
	default:
		return "<none>"
	}
}

// ServiceName makes mDNS service name from the provided mDNS service type and protocol.
//
// Examples:
//   - _googlecast._tcp - Google Cast receiver over TCP protocol.
func ServiceName(serviceType ServiceType, proto Proto) string {
	return strings.Join([]string{serviceType.String(), proto.String()}, ".")
}
