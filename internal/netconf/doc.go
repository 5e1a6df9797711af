// Package netconf stores one credentials record per saved WiFi network.
//
// Each network lives in its own file under the networks directory. The file
// name is the query-escaped SSID plus ".conf", so SSIDs containing path
// separators or other awkward characters map to a single safe name:
//
//	My Network  ->  My+Network.conf
//	a/b         ->  a%2Fb.conf
//
// # Record Format
//
// Records are line-oriented KEY="value" pairs as consumed by the device's
// network scripts:
//
//	WLAN_ESSID="My Network"
//	WLAN_PASSPHRASE="secret123"
//	WLAN_ENCRYPTION="wpa2"
//	WLAN_DHCP_RETRIES=20
//
// An absent WLAN_PASSPHRASE line marks an open network. Values are
// double-quoted with backslash, double quote, dollar and backtick escaped.
//
// # Activation
//
// Connecting copies a record to <system>/config-<iface>.conf, the path the
// interface scripts read, before the interface is brought up.
package netconf
