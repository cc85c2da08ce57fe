package decks

import "github.com/mcoot/decklist-exporter/internal/model"

// SampleCode is the decklist code seeded into every catalogue
const SampleCode = "xjWavy-BLGRUg-alyCYf"

// sampleDecklist is a trimmed Charizard ex list used for local development
func sampleDecklist() []model.Card {
	return []model.Card{
		{Count: 3, Name: "Charmander", Expansion: "MEW", Number: "4", Image: "https://images.pokemontcg.io/sv3pt5/4.png"},
		{Count: 1, Name: "Charmeleon", Expansion: "PAF", Number: "8", Image: "https://images.pokemontcg.io/sv4pt5/8.png"},
		{Count: 2, Name: "Charizard ex", Expansion: "OBF", Number: "125", Image: "https://images.pokemontcg.io/sv3/125.png"},
		{Count: 2, Name: "Pidgey", Expansion: "OBF", Number: "162", Image: "https://images.pokemontcg.io/sv3/162.png"},
		{Count: 2, Name: "Pidgeot ex", Expansion: "OBF", Number: "164", Image: "https://images.pokemontcg.io/sv3/164.png"},
		{Count: 4, Name: "Rare Candy", Expansion: "SVI", Number: "191", Image: "https://images.pokemontcg.io/sv1/191.png"},
		{Count: 4, Name: "Ultra Ball", Expansion: "SVI", Number: "196", Image: "https://images.pokemontcg.io/sv1/196.png"},
		{Count: 4, Name: "Arven", Expansion: "SVI", Number: "166", Image: "https://images.pokemontcg.io/sv1/166.png"},
		{Count: 6, Name: "Basic Fire Energy", Expansion: "SVE", Number: "2", Image: "https://images.pokemontcg.io/sve/2.png"},
	}
}
