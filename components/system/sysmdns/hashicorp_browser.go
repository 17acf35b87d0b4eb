package sysmdns

import (
	"context"
	"io"
	"log"
	"net"
	"strings"

	"github.com/hashicorp/mdns"

	"github.com/open-control-systems/cast-hub/components/core"
)

// HashicorpBrowser browses the local network for the mDNS services.
//
// References:
//   - https://github.com/hashicorp/mdns
type HashicorpBrowser struct {
	params  BrowserParams
	ctx     context.Context
	handler ServiceHandler
	query   func(*mdns.QueryParam) error
}

// NewHashicorpBrowser is an initialization of HashicorpBrowser.
func NewHashicorpBrowser(
	ctx context.Context,
	handler ServiceHandler,
	params BrowserParams,
) *HashicorpBrowser {
	return &HashicorpBrowser{
		params:  params,
		ctx:     ctx,
		handler: handler,
		query:   mdns.Query,
	}
}

// Run executes a single mDNS lookup operation.
func (b *HashicorpBrowser) Run() error {
	if err := b.ctx.Err(); err != nil {
		return nil
	}

	entries := make(chan *mdns.ServiceEntry, 64)
	doneCh := make(chan struct{})

	go func() {
		defer close(doneCh)

		for entry := range entries {
			b.handleEntry(entry)
		}
	}()

	params := mdns.DefaultParams(b.params.Service)
	params.Domain = b.params.Domain
	params.Entries = entries
	params.Timeout = b.params.Timeout
	params.WantUnicastResponse = true
	params.Logger = log.New(io.Discard, "", 0)

	err := b.query(params)

	close(entries)
	<-doneCh

	return err
}

// Close closes the browser resources.
func (*HashicorpBrowser) Close() error {
	return nil
}

// HandleError handles browsing errors.
func (b *HashicorpBrowser) HandleError(err error) {
	core.LogErr.Printf("mdns-hashicorp-browser: browsing failed: service=%s domain=%s: %v\n",
		b.params.Service, b.params.Domain, err)
}

func (b *HashicorpBrowser) handleEntry(entry *mdns.ServiceEntry) {
	if entry == nil {
		return
	}

	// Responses to other queries may arrive on the same socket.
	suffix := "." + b.params.Service + "." + b.params.Domain + "."
	if !strings.HasSuffix(entry.Name, suffix) {
		return
	}

	var addrs []net.IP
	if entry.AddrV4 != nil {
		addrs = append(addrs, entry.AddrV4)
	}
	if entry.AddrV6 != nil {
		addrs = append(addrs, entry.AddrV6)
	}

	if len(addrs) < 1 {
		core.LogWrn.Printf("mdns-hashicorp-browser: ignore entry: name=%s:"+
			" IP address not found\n", entry.Name)

		return
	}

	instance := strings.ReplaceAll(strings.TrimSuffix(entry.Name, suffix), `\ `, " ")

	if err := b.handler.HandleService(&service{
		instance:   instance,
		name:       b.params.Service,
		domain:     b.params.Domain,
		hostname:   strings.TrimSuffix(entry.Host, "."),
		port:       entry.Port,
		txtRecords: entry.InfoFields,
		addrs:      addrs,
	}); err != nil {
		core.LogErr.Printf("mdns-hashicorp-browser: failed to handle entry: name=%s err=%v\n",
			entry.Name, err)
	}
}
