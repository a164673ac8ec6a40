// internal/defs/upgrades.go
package defs

// UpgradeKind names one of the four purchasable upgrades.
type UpgradeKind int

const (
	UpgradeHP UpgradeKind = iota
	UpgradeSpeed
	UpgradeBullet
	UpgradeFire

	UpgradeKindCount = 4
)

// UpgradeDefinition holds the static data shown for an upgrade.
type UpgradeDefinition struct {
	Kind  UpgradeKind
	Label string // short HUD label
	Key   string // keyboard shortcut shown next to the label
}

// UpgradeDefs lists every upgrade in HUD order.
var UpgradeDefs = []UpgradeDefinition{
	{Kind: UpgradeHP, Label: "HP", Key: "1"},
	{Kind: UpgradeSpeed, Label: "SPD", Key: "2"},
	{Kind: UpgradeBullet, Label: "BUL", Key: "3"},
	{Kind: UpgradeFire, Label: "FIR", Key: "4"},
}

func (k UpgradeKind) String() string {
	for _, d := range UpgradeDefs {
		if d.Kind == k {
			return d.Label
		}
	}
	return "?"
}
