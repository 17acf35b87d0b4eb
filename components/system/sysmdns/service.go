package sysmdns

import "net"

// Service is a single mDNS service discovered on the local network.
type Service interface {
	// Instance returns mDNS service instance name, e.g. "Chromecast-Ultra-5a1c0f".
	Instance() string

	// Name returns mDNS service name, e.g. "_googlecast._tcp".
	Name() string

	// Domain returns mDNS domain, e.g. "local".
	Domain() string

	// Hostname returns host machine DNS name, e.g. "5a1c0f.local".
	Hostname() string

	// Port returns service port, e.g. 8009.
	Port() int

	// TxtRecords returns service txt records, e.g. ["id=5a1c0f", "fn=Living Room"].
	TxtRecords() []string

	// Addrs returns host machine IP addresses, IPv4 first.
	Addrs() []net.IP
}

type service struct {
	instance   string
	name       string
	domain     string
	hostname   string
	port       int
	txtRecords []string
	addrs      []net.IP
}

func (s *service) Instance() string {
	return s.instance
}

func (s *service) Name() string {
	return s.name
}

func (s *service) Domain() string {
	return s.domain
}

func (s *service) Hostname() string {
	return s.hostname
}

func (s *service) Port() int {
	return s.port
}

func (s *service) TxtRecords() []string {
	return s.txtRecords
}

func (s *service) Addrs() []net.IP {
	return s.addrs
}
