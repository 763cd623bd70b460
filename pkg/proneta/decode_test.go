package proneta

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleExport = `<?xml version="1.0" encoding="utf-8"?>
<ProjectData>
  <DeviceCollection>
    <Device>
      <NameOfStation>
        plcxd17-line
      </NameOfStation>
      <IpAddress>192.168.0.10</IpAddress>
      <NetworkMask>255.255.255.0</NetworkMask>
      <DeviceType>S7-1500</DeviceType>
      <MAC>00:1B:1B:10:00:01</MAC>
      <ManufacturerName>SIEMENS AG</ManufacturerName>
      <Interfaces>
        <PnInterface>
          <PortList>
            <Port>
              <PortGlobalIndex>1</PortGlobalIndex>
              <PortIfIndex>1</PortIfIndex>
              <PortDesc>Port 1 copper</PortDesc>
              <PortID>port-001</PortID>
              <MAC>00:1B:1B:10:00:02</MAC>
              <RemotePortID>port-002</RemotePortID>
              <RemoteNameOfStation>  switch-hall-3  </RemoteNameOfStation>
              <RemoteMAC>00:1B:1B:20:00:01</RemoteMAC>
            </Port>
            <Port>
              <PortGlobalIndex>2</PortGlobalIndex>
              <PortIfIndex>2</PortIfIndex>
              <PortID>port-002</PortID>
              <MAC>00:1B:1B:10:00:03</MAC>
            </Port>
          </PortList>
        </PnInterface>
      </Interfaces>
    </Device>
    <Device>
      <IpAddress>192.168.0.99</IpAddress>
      <DeviceType>Unmanaged Switch</DeviceType>
      <MAC>00:1B:1B:30:00:01</MAC>
    </Device>
  </DeviceCollection>
</ProjectData>`

func TestDecode(t *testing.T) {
	export, err := Decode(strings.NewReader(sampleExport))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	devices := export.Devices()
	if len(devices) != 2 {
		t.Fatalf("expected 2 devices, got %d", len(devices))
	}

	plc := devices[0]
	if plc.NameOfStation != "plcxd17-line" {
		t.Errorf("expected trimmed station name %q, got %q", "plcxd17-line", plc.NameOfStation)
	}
	if plc.IPAddress != "192.168.0.10" {
		t.Errorf("unexpected IP address %q", plc.IPAddress)
	}
	if plc.ManufacturerName != "SIEMENS AG" {
		t.Errorf("unexpected manufacturer %q", plc.ManufacturerName)
	}

	ports := plc.Ports()
	if len(ports) != 2 {
		t.Fatalf("expected 2 ports, got %d", len(ports))
	}
	if ports[0].RemoteNameOfStation != "switch-hall-3" {
		t.Errorf("expected trimmed remote station %q, got %q", "switch-hall-3", ports[0].RemoteNameOfStation)
	}
	if !ports[0].Connected() {
		t.Error("port with remote station should report connected")
	}
	if ports[1].Connected() {
		t.Error("port without remote station should report unconnected")
	}
}

func TestDecodeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.xml")
	if err := os.WriteFile(path, []byte(sampleExport), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	export, err := DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile failed: %v", err)
	}
	if got := len(export.Devices()); got != 2 {
		t.Errorf("expected 2 devices, got %d", got)
	}

	if _, err := DecodeFile(filepath.Join(t.TempDir(), "missing.xml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{
			name:  "empty device collection",
			input: `<ProjectData><DeviceCollection></DeviceCollection></ProjectData>`,
			want:  ErrNoDevices,
		},
		{
			name:  "missing device collection",
			input: `<ProjectData></ProjectData>`,
			want:  ErrNoDevices,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}

	t.Run("malformed xml", func(t *testing.T) {
		_, err := Decode(strings.NewReader(`<ProjectData><DeviceCollection>`))
		if err == nil {
			t.Error("expected parse error for truncated document")
		}
	})
}

func TestDeviceKey(t *testing.T) {
	tests := []struct {
		name   string
		device Device
		want   string
	}{
		{
			name:   "station name present",
			device: Device{NameOfStation: "plc-line-4", DeviceType: "S7-1500", IPAddress: "192.168.0.10"},
			want:   "plc-line-4",
		},
		{
			name:   "fallback to type and address",
			device: Device{DeviceType: "Unmanaged Switch", IPAddress: "192.168.0.99"},
			want:   "Unmanaged Switch_192.168.0.99",
		},
		{
			name:   "fallback with empty fields",
			device: Device{},
			want:   "_",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.device.Key(); got != tt.want {
				t.Errorf("Key() = %q, want %q", got, tt.want)
			}
		})
	}
}
