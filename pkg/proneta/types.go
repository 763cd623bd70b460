// Package proneta reads Siemens PRONETA topology exports.
//
// An export is a single XML document listing every station the
// discovery scan found, together with the per-port neighbor each
// station reported. The decoder maps the document onto plain structs
// and leaves interpretation (display names, link policy) to the
// packages that consume them.
package proneta

import "encoding/xml"

// Export is the root document of a PRONETA topology export. The root
// element name varies between PRONETA builds, so it is left unmatched
// and only the DeviceCollection child is bound.
type Export struct {
	XMLName          xml.Name
	DeviceCollection DeviceCollection `xml:"DeviceCollection"`
}

// DeviceCollection holds every device record found by the scan.
type DeviceCollection struct {
	Devices []Device `xml:"Device"`
}

// Device is one station discovered in the topology.
type Device struct {
	NameOfStation    string     `xml:"NameOfStation"`
	IPAddress        string     `xml:"IpAddress"`
	NetworkMask      string     `xml:"NetworkMask"`
	DeviceType       string     `xml:"DeviceType"`
	MAC              string     `xml:"MAC"`
	ManufacturerName string     `xml:"ManufacturerName"`
	Interfaces       Interfaces `xml:"Interfaces"`
}

// Interfaces wraps the PROFINET interface container element.
type Interfaces struct {
	PnInterface PnInterface `xml:"PnInterface"`
}

// PnInterface carries the port list of the device's PROFINET interface.
type PnInterface struct {
	PortList PortList `xml:"PortList"`
}

// PortList holds the device's ports in document order.
type PortList struct {
	Ports []Port `xml:"Port"`
}

// Port is one physical port of a device. The Remote* fields describe
// the neighbor seen on the other end of the cable; a port without a
// RemoteNameOfStation is unconnected.
type Port struct {
	PortGlobalIndex     string `xml:"PortGlobalIndex"`
	PortIfIndex         string `xml:"PortIfIndex"`
	PortDesc            string `xml:"PortDesc"`
	PortID              string `xml:"PortID"`
	MAC                 string `xml:"MAC"`
	RemotePortID        string `xml:"RemotePortID"`
	RemoteNameOfStation string `xml:"RemoteNameOfStation"`
	RemoteMAC           string `xml:"RemoteMAC"`
}

// Ports returns the device's port records in document order.
func (d *Device) Ports() []Port {
	return d.Interfaces.PnInterface.PortList.Ports
}

// Key returns the identifier other stations use to reference this
// device: the raw station name, or a synthesized <DeviceType>_<IP>
// fallback when the scan did not capture one.
func (d *Device) Key() string {
	if d.NameOfStation != "" {
		return d.NameOfStation
	}
	return d.DeviceType + "_" + d.IPAddress
}

// Connected reports whether the port saw a neighbor station.
func (p *Port) Connected() bool {
	return p.RemoteNameOfStation != ""
}
