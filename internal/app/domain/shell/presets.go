package shell

// Preset is a quick link that fills in a canned query.
type Preset struct {
	ID    string
	Label string
	Icon  string
	Query string
}

// Presets are the quick links shown under the search box.
var Presets = []Preset{
	{ID: "pg", Label: "Cheap PGs", Icon: "home", Query: "affordable and safe PG accommodations"},
	{ID: "hotels", Label: "Budget Hotels", Icon: "coffee", Query: "budget hotels for a short stay"},
	{ID: "food", Label: "Local Food", Icon: "utensils", Query: "cheap and authentic local restaurants or darshinis"},
	{ID: "transport", Label: "Transport Hubs", Icon: "navigation", Query: "nearest metro stations or bus stops"},
}

// PresetByID finds a preset by its ID.
func PresetByID(id string) (Preset, bool) {
	for _, p := range Presets {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}
