// Package network drives the wireless interface through the device's
// command-line tools and parses their output.
//
// The Backend interface is what the UI consumes. ShellBackend implements it
// by running ip, iw, ifup/ifdown and the vendor wlan-scan and ap helpers
// through a Runner; Fake implements it with scripted results for tests and
// for running the UI on a machine without a wireless card.
//
// # Interface Status
//
// Status is derived the same way on every call:
//
//  1. Broadcasting if "ap --status" prints "ap is running"
//  2. Off if <sysfs>/<iface>/dormant cannot be read
//  3. Associated if "iw dev <iface> link" reports an SSID
//  4. Connected if additionally "ip -4 a show <iface>" has a routable address
//  5. Up otherwise
//
// # Scanning
//
// Scan enables the interface for the duration of the scan when it was off.
// Results with an empty SSID are dropped, duplicates are collapsed to the
// strongest entry, and the list is sorted by signal quality. An empty result
// is reported as ErrNoNetworks.
package network
