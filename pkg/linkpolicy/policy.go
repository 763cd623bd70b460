// Package linkpolicy decides whether a neighbor reference in a device
// note becomes a cross-reference link or stays inert text.
//
// PRONETA reports the far end of every cable, so a station hanging off
// a switch shows up once on the switch's page and again on every peer
// that can see it through the switch. The policy keeps the switch's
// page as the canonical home for those edges and demotes the restated
// mentions to plain text, which keeps the vault's graph view close to
// the physical wiring.
package linkpolicy

import (
	"strings"

	"github.com/SemonoffArt/proneta2obsidian/pkg/proneta"
)

// Role is the coarse device classification the suppression rules key
// on.
type Role int

const (
	RoleOrdinary Role = iota
	RoleUnmanaged
	RoleScalance
)

// String returns the role name used in reports and logs.
func (r Role) String() string {
	switch r {
	case RoleUnmanaged:
		return "unmanaged"
	case RoleScalance:
		return "scalance"
	default:
		return "ordinary"
	}
}

// Type-text fragments that assign switch roles. The DeviceType field
// is free text, so matching is a case-insensitive substring test;
// ClassifyRole is the single place to change should the field ever
// move to an exact scheme.
const (
	unmanagedTypeFragment = "unmanaged switch"
	scalanceTypeFragment  = "scalance"
)

// ClassifyRole maps a free-text device type to its role. SCALANCE wins
// when a type string carries both fragments.
func ClassifyRole(deviceType string) Role {
	t := strings.ToLower(deviceType)
	if strings.Contains(t, scalanceTypeFragment) {
		return RoleScalance
	}
	if strings.Contains(t, unmanagedTypeFragment) {
		return RoleUnmanaged
	}
	return RoleOrdinary
}

// SuppressionContext holds the dataset-wide station sets the decision
// rules consult. Build it from the complete device list before
// rendering any note; decisions must not depend on render order.
type SuppressionContext struct {
	referencedByUnmanaged map[string]struct{}
	referencedByScalance  map[string]struct{}
}

// BuildSuppressionContext collects the raw remote-station identifiers
// seen on the connected ports of every unmanaged switch and every
// SCALANCE device.
func BuildSuppressionContext(devices []proneta.Device) *SuppressionContext {
	ctx := &SuppressionContext{
		referencedByUnmanaged: make(map[string]struct{}),
		referencedByScalance:  make(map[string]struct{}),
	}
	for i := range devices {
		d := &devices[i]
		role := ClassifyRole(d.DeviceType)
		if role == RoleOrdinary {
			continue
		}
		for _, p := range d.Ports() {
			if !p.Connected() {
				continue
			}
			switch role {
			case RoleUnmanaged:
				ctx.referencedByUnmanaged[p.RemoteNameOfStation] = struct{}{}
			case RoleScalance:
				ctx.referencedByScalance[p.RemoteNameOfStation] = struct{}{}
			}
		}
	}
	return ctx
}

// ShouldSuppress reports whether the reference from subject to the raw
// remote station identifier must be rendered as plain text.
//
// An ordinary device pointing at a station any switch already claims
// restates topology the switch's page documents, so the link is
// dropped. A SCALANCE device drops links only to stations an unmanaged
// switch also claims, deferring to the unmanaged switch's page.
// Unmanaged switches keep all their links.
func (c *SuppressionContext) ShouldSuppress(subject *proneta.Device, rawRemote string) bool {
	switch ClassifyRole(subject.DeviceType) {
	case RoleOrdinary:
		return c.claimedByAnySwitch(rawRemote)
	case RoleScalance:
		return c.claimedByBoth(rawRemote)
	default:
		return false
	}
}

// UnmanagedReferenced returns the number of distinct stations claimed
// by unmanaged switches.
func (c *SuppressionContext) UnmanagedReferenced() int {
	return len(c.referencedByUnmanaged)
}

// ScalanceReferenced returns the number of distinct stations claimed
// by SCALANCE devices.
func (c *SuppressionContext) ScalanceReferenced() int {
	return len(c.referencedByScalance)
}

func (c *SuppressionContext) claimedByAnySwitch(station string) bool {
	if _, ok := c.referencedByUnmanaged[station]; ok {
		return true
	}
	_, ok := c.referencedByScalance[station]
	return ok
}

func (c *SuppressionContext) claimedByBoth(station string) bool {
	if _, ok := c.referencedByUnmanaged[station]; !ok {
		return false
	}
	_, ok := c.referencedByScalance[station]
	return ok
}
