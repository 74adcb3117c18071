package seeders

type equipmentTypeSeed struct {
	Name     string
	Category string
	Unit     string
}

// Dictionary of boom sections, jibs and counterweights the fleet carries.
var equipmentTypesData = []equipmentTypeSeed{
	{Name: "Main Boom Section 12m", Category: "BOOM", Unit: "pcs"},
	{Name: "Main Boom Section 6m", Category: "BOOM", Unit: "pcs"},
	{Name: "Main Boom Section 3m", Category: "BOOM", Unit: "pcs"},
	{Name: "Lattice Jib 18m", Category: "JIB", Unit: "pcs"},
	{Name: "Lattice Jib 9m", Category: "JIB", Unit: "pcs"},
	{Name: "Luffing Jib 24m", Category: "JIB", Unit: "pcs"},
	{Name: "Counterweight 10t", Category: "COUNTERWEIGHT", Unit: "pcs"},
	{Name: "Counterweight 5t", Category: "COUNTERWEIGHT", Unit: "pcs"},
	{Name: "Counterweight 2.5t", Category: "COUNTERWEIGHT", Unit: "pcs"},
	{Name: "Hook Block 100t", Category: "OTHER", Unit: "pcs"},
	{Name: "Hook Block 50t", Category: "OTHER", Unit: "pcs"},
	{Name: "Outrigger Pad", Category: "OTHER", Unit: "pcs"},
}

type locationSeed struct {
	Name string
	Type string
	City string
}

var locationsData = []locationSeed{
	{Name: "Central Garage", Type: "GARAGE", City: "Istanbul"},
	{Name: "Equipment Depot A", Type: "DEPOT", City: "Istanbul"},
	{Name: "Equipment Depot B", Type: "DEPOT", City: "Ankara"},
	{Name: "Service Yard", Type: "OTHER", City: "Istanbul"},
}
