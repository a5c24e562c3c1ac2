package catalog

// defaultItems is the static loot catalog used for autocomplete. Names only;
// the webhook owns all other item data. Some names appear in more than one
// group, matching the in-game lists.
var defaultItems = []string{
	// Quests
	"Leaper Pulse Unit",
	"Power Rod",
	"Rocketeer Driver",
	"Surveyor Vault",
	"Antiseptic",
	"Hornet Driver",
	"Syringe",
	"Wasp Driver",
	"Water Pump",
	"Snitch Scanner",

	// Projects
	"Leaper Pulse Unit",
	"Magnetic Accelerator",
	"Exodus Modules",
	"Adv. Electrical Components",
	"Humidifier",
	"Sensors",
	"Cooling Fan",
	"Wires",
	"Durable Cloth",
	"Steel Spring",
	"Scrap Alloy",
	"Rubber Parts",
	"Metal Parts",
	"Battery",
	"Light Bulb",
	"Electrical Components",

	// Recycle
	"Accordion",
	"Alarm Clock",
	"ARC Coolant",
	"ARC Flex Rubber",
	"ARC Performance Steel",
	"ARC Synthetic Resin",
	"ARC Thermo Lining",
	"Bicycle Pump",
	"Broken Flashlight",
	"Broken Guidance System",
	"Broken Handcuffs",
	"Broken Handheld Radio",
	"Broken Taser",
	"Burned-out ARC Circuitry",
	"Camera Lens",
	"Candle Holder",
	"Coolant",
	"Cooling Coil",
	"Crumpled Plastic Bottle",
	"Damaged ARC Motion Core",
	"Damaged ARC Powercell",
	"Deflated Football",
	"Diving Goggles",
	"Dried-out ARC Resin",
	"Expired Respirator",
	"Flute",
	"Frying Pan",
	"Garlic Press",
	"Headphones",
	"Ice Cream Scooper",
	"Household Cleaner",
	"Impure ARC Coolant",
	"Industrial Charger",
	"Industrial Magnet",
	"Metal Brackets",
	"Number Plate",
	"Polluted Air Filter",
	"Radio",
	"Remote Control",
	"Ripped Safety Vest",
	"Rubber Pad",
	"Ruined Accordion",
	"Ruined Baton",
	"Ruined Handcuffs",
	"Ruined Parachute",
	"Ruined Riot Shield",
	"Ruined Tactical Vest",
	"Rusted Bolts",
	"Rusty ARC Steel",
	"Spotter Relay",
	"Spring Cushion",
	"Tattered ARC Lining",
	"Tattered Clothes",
	"Thermostat",
	"Torn Blanket",
	"Turbo Pump",
	"Water Filter",
}

// DefaultItems returns a copy of the built-in loot catalog
func DefaultItems() []string {
	items := make([]string, len(defaultItems))
	copy(items, defaultItems)
	return items
}
