package sysmdns

import (
	"context"
	"net"
	"strings"
	"time"

	"github.com/open-control-systems/zeroconf"

	"github.com/open-control-systems/cast-hub/components/core"
)

// BrowserParams represents various options for mDNS browsers.
type BrowserParams struct {
	// Service is a mDNS service to lookup for.
	//
	// Examples:
	//  - Lookup for all Google Cast receivers: "_googlecast._tcp".
	Service string

	// Domain is a mDNS domain.
	//
	// Examples:
	//  - Local domain: "local".
	Domain string

	// Timeout is a single browsing operation timeout.
	Timeout time.Duration
}

// ZeroconfBrowser browses the local network for the mDNS services.
//
// References:
//   - https://github.com/grandcat/zeroconf
type ZeroconfBrowser struct {
	params   BrowserParams
	ctx      context.Context
	handler  ServiceHandler
	resolver *zeroconf.Resolver
}

// NewZeroconfBrowser is an initialization of ZeroconfBrowser.
func NewZeroconfBrowser(
	ctx context.Context,
	handler ServiceHandler,
	params BrowserParams,
) (*ZeroconfBrowser, error) {
	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, err
	}

	return &ZeroconfBrowser{
		params:   params,
		ctx:      ctx,
		handler:  handler,
		resolver: resolver,
	}, nil
}

// Run executes a single mDNS lookup operation.
func (b *ZeroconfBrowser) Run() error {
	ctx, cancel := context.WithTimeout(b.ctx, b.params.Timeout)
	defer cancel()

	entries := make(chan *zeroconf.ServiceEntry)

	if err := b.resolver.Browse(ctx, b.params.Service, b.params.Domain, entries); err != nil {
		return err
	}

	for {
		select {
		case entry, ok := <-entries:
			if !ok {
				return nil
			}

			b.handleEntry(entry)

		case <-ctx.Done():
			return nil
		}
	}
}

// Close closes the browser resources.
func (*ZeroconfBrowser) Close() error {
	return nil
}

// HandleError handles browsing errors.
func (b *ZeroconfBrowser) HandleError(err error) {
	core.LogErr.Printf("mdns-zeroconf-browser: browsing failed: service=%s domain=%s: %v\n",
		b.params.Service, b.params.Domain, err)
}

func (b *ZeroconfBrowser) handleEntry(entry *zeroconf.ServiceEntry) {
	if entry == nil {
		return
	}

	addrs := make([]net.IP, 0, len(entry.AddrIPv4)+len(entry.AddrIPv6))
	addrs = append(addrs, entry.AddrIPv4...)
	addrs = append(addrs, entry.AddrIPv6...)

	if len(addrs) < 1 {
		core.LogWrn.Printf("mdns-zeroconf-browser: ignore entry: instance=%s service=%s:"+
			" IP address not found\n", entry.Instance, b.params.Service)

		return
	}

	if err := b.handler.HandleService(&service{
		instance:   entry.Instance,
		name:       entry.Service,
		domain:     strings.TrimSuffix(entry.Domain, "."),
		hostname:   strings.TrimSuffix(entry.HostName, "."),
		port:       entry.Port,
		txtRecords: entry.Text,
		addrs:      addrs,
	}); err != nil {
		core.LogErr.Printf("mdns-zeroconf-browser: failed to handle entry: instance=%s err=%v\n",
			entry.Instance, err)
	}
}
