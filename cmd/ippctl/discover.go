/* ippctl - IPP printer and job control
 *
 * Copyright (C) 2026 and up by the ippctl authors
 * See LICENSE for license terms and conditions
 *
 * DNS-SD printer discovery
 */

package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/grandcat/zeroconf"
)

// discoverWait is how long the browser collects answers
const discoverWait = 3 * time.Second

// found is one discovered print service
type found struct {
	instance string // Service instance name
	host     string // Host name
	port     int    // TCP port
	path     string // IPP endpoint path, from the rp TXT record
	tls      bool   // Found via _ipps rather than _ipp
}

// discover browses DNS-SD for IPP printers on the local network and
// prints a connection line for each, ready to paste into -host/-port/
// -path options. Both the plain and the TLS service types are browsed;
// a printer advertising both is reported once, as TLS.
func discover() {
	services := map[string]bool{
		"_ipp._tcp":  false,
		"_ipps._tcp": true,
	}

	results := map[string]found{}

	for service, tls := range services {
		entries, err := browse(service)
		if err != nil {
			Log.Exit("discover: %s", err)
		}

		for _, entry := range entries {
			f := found{
				instance: entry.Instance,
				host:     strings.TrimSuffix(entry.HostName, "."),
				port:     entry.Port,
				path:     txtPath(entry.Text),
				tls:      tls,
			}

			if prev, ok := results[f.instance]; !ok || !prev.tls {
				results[f.instance] = f
			}
		}
	}

	if len(results) == 0 {
		fmt.Printf("No IPP printers found\n")
		return
	}

	for _, f := range results {
		opts := fmt.Sprintf("-host %s -port %d -path %s",
			f.host, f.port, f.path)
		if f.tls {
			opts += " -tls"
		}

		fmt.Printf("%s\n    %s\n", f.instance, opts)
	}
}

// browse collects DNS-SD answers for one service type
func browse(service string) ([]*zeroconf.ServiceEntry, error) {
	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(),
		discoverWait)
	defer cancel()

	ch := make(chan *zeroconf.ServiceEntry)
	var entries []*zeroconf.ServiceEntry

	done := make(chan struct{})
	go func() {
		for entry := range ch {
			Log.Debug("discover: %s at %s:%d",
				entry.Instance, entry.HostName, entry.Port)
			entries = append(entries, entry)
		}
		close(done)
	}()

	err = resolver.Browse(ctx, service, "local.", ch)
	if err != nil {
		return nil, err
	}

	<-ctx.Done()
	<-done

	return entries, nil
}

// txtPath extracts the IPP endpoint path from the rp TXT record
func txtPath(txt []string) string {
	for _, t := range txt {
		if strings.HasPrefix(t, "rp=") {
			return "/" + strings.TrimPrefix(t, "rp=")
		}
	}

	return "/ipp/print"
}
