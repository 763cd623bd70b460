package proneta

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrNoDevices is returned when the export parses but carries no
// device records, typically a scan that was saved before it finished.
var ErrNoDevices = errors.New("export contains no devices")

// Decode parses a PRONETA XML export from r.
func Decode(r io.Reader) (*Export, error) {
	var export Export
	if err := xml.NewDecoder(r).Decode(&export); err != nil {
		return nil, fmt.Errorf("parse proneta export: %w", err)
	}
	export.trimSpace()
	if len(export.DeviceCollection.Devices) == 0 {
		return nil, ErrNoDevices
	}
	return &export, nil
}

// DecodeFile parses the PRONETA XML export at path.
func DecodeFile(path string) (*Export, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open export: %w", err)
	}
	defer f.Close()

	export, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return export, nil
}

// Devices returns the decoded device records in document order.
func (e *Export) Devices() []Device {
	return e.DeviceCollection.Devices
}

// trimSpace strips surrounding whitespace from every text field. The
// discovery tool pads element content with newlines and indentation,
// so raw values are unusable without this pass.
func (e *Export) trimSpace() {
	devices := e.DeviceCollection.Devices
	for i := range devices {
		d := &devices[i]
		d.NameOfStation = strings.TrimSpace(d.NameOfStation)
		d.IPAddress = strings.TrimSpace(d.IPAddress)
		d.NetworkMask = strings.TrimSpace(d.NetworkMask)
		d.DeviceType = strings.TrimSpace(d.DeviceType)
		d.MAC = strings.TrimSpace(d.MAC)
		d.ManufacturerName = strings.TrimSpace(d.ManufacturerName)

		ports := d.Interfaces.PnInterface.PortList.Ports
		for j := range ports {
			p := &ports[j]
			p.PortGlobalIndex = strings.TrimSpace(p.PortGlobalIndex)
			p.PortIfIndex = strings.TrimSpace(p.PortIfIndex)
			p.PortDesc = strings.TrimSpace(p.PortDesc)
			p.PortID = strings.TrimSpace(p.PortID)
			p.MAC = strings.TrimSpace(p.MAC)
			p.RemotePortID = strings.TrimSpace(p.RemotePortID)
			p.RemoteNameOfStation = strings.TrimSpace(p.RemoteNameOfStation)
			p.RemoteMAC = strings.TrimSpace(p.RemoteMAC)
		}
	}
}
