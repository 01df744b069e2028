package catalog

import (
	"fmt"
	"slices"
)

// Body is a major solar-system body whose elements are fetched from Horizons.
// Horizons does not report masses, so every entry carries a catalog mass.
type Body struct {
	Command     string     // Horizons COMMAND value
	Name        string     // display name written to the dataset
	Class       OrbitClass // PLA, DWA or SAT
	CentralBody string     // body the elements are relative to
	Mass        float64    // kg
	Designation string     // SBDB primary designation, set for dwarf planets the SBDB also lists
}

// HorizonsCenter returns the Horizons CENTER value for the body: the Sun for
// heliocentric bodies, the geocenter for the Moon and the parent system
// barycenter for every other moon.
func (b Body) HorizonsCenter() (string, error) {
	code, ok := centerCodes[b.CentralBody]
	if !ok {
		return "", fmt.Errorf("no Horizons center known for central body %q of %s", b.CentralBody, b.Name)
	}
	return "500@" + code, nil
}

var centerCodes = map[string]string{
	"Sun":     "10",
	"Earth":   "399",
	"Mars":    "4",
	"Jupiter": "5",
	"Saturn":  "6",
	"Uranus":  "7",
	"Neptune": "8",
	"Pluto":   "9",
}

// majorBodies is ordered planets, dwarf planets, then moons by parent.
// The order is the order of rows in the dataset.
var majorBodies = []Body{
	// Planets
	{Command: "199", Name: "Mercury", Class: ClassPlanet, CentralBody: "Sun", Mass: 3.301011e23},
	{Command: "299", Name: "Venus", Class: ClassPlanet, CentralBody: "Sun", Mass: 4.86732e24},
	{Command: "399", Name: "Earth", Class: ClassPlanet, CentralBody: "Sun", Mass: 5.972186e24},
	{Command: "499", Name: "Mars", Class: ClassPlanet, CentralBody: "Sun", Mass: 6.416928e23},
	{Command: "599", Name: "Jupiter", Class: ClassPlanet, CentralBody: "Sun", Mass: 1.89813e27},
	{Command: "699", Name: "Saturn", Class: ClassPlanet, CentralBody: "Sun", Mass: 5.683191e26},
	{Command: "799", Name: "Uranus", Class: ClassPlanet, CentralBody: "Sun", Mass: 8.681013e25},
	{Command: "899", Name: "Neptune", Class: ClassPlanet, CentralBody: "Sun", Mass: 1.024096e26},

	// Dwarf planets
	{Command: "1;", Name: "Ceres", Class: ClassDwarfPlanet, CentralBody: "Sun", Mass: 9.47e20, Designation: "1"},
	{Command: "999", Name: "Pluto", Class: ClassDwarfPlanet, CentralBody: "Sun", Mass: 1.302933e22, Designation: "134340"},
	{Command: "136199;", Name: "Eris", Class: ClassDwarfPlanet, CentralBody: "Sun", Mass: 1.6716e22, Designation: "136199"},
	{Command: "136108;", Name: "Haumea", Class: ClassDwarfPlanet, CentralBody: "Sun", Mass: 4.006e21, Designation: "136108"},
	{Command: "136472;", Name: "Makemake", Class: ClassDwarfPlanet, CentralBody: "Sun", Mass: 3.1e21, Designation: "136472"},
	{Command: "225088;", Name: "Gonggong", Class: ClassDwarfPlanet, CentralBody: "Sun", Mass: 1.75e21, Designation: "225088"},
	{Command: "50000;", Name: "Quaoar", Class: ClassDwarfPlanet, CentralBody: "Sun", Mass: 1.4e21, Designation: "50000"},
	{Command: "90377;", Name: "Sedna", Class: ClassDwarfPlanet, CentralBody: "Sun", Mass: 1.194e21, Designation: "90377"},
	{Command: "90482;", Name: "Orcus", Class: ClassDwarfPlanet, CentralBody: "Sun", Mass: 6.348e20, Designation: "90482"},
	{Command: "120347;", Name: "Salacia", Class: ClassDwarfPlanet, CentralBody: "Sun", Mass: 4.922e20, Designation: "120347"},

	// Earth moon
	{Command: "301", Name: "Luna", Class: ClassMoon, CentralBody: "Earth", Mass: 7.345811e22},

	// Mars moons
	{Command: "401", Name: "Phobos", Class: ClassMoon, CentralBody: "Mars", Mass: 1.061919e16},
	{Command: "402", Name: "Deimos", Class: ClassMoon, CentralBody: "Mars", Mass: 1.44069e15},

	// Jupiter moons
	{Command: "501", Name: "Io", Class: ClassMoon, CentralBody: "Jupiter", Mass: 8.929676e22},
	{Command: "502", Name: "Europa", Class: ClassMoon, CentralBody: "Jupiter", Mass: 4.798588e22},
	{Command: "503", Name: "Ganymede", Class: ClassMoon, CentralBody: "Jupiter", Mass: 1.481483e23},
	{Command: "504", Name: "Callisto", Class: ClassMoon, CentralBody: "Jupiter", Mass: 1.075664e23},
	{Command: "505", Name: "Amalthea", Class: ClassMoon, CentralBody: "Jupiter", Mass: 2.465636e18},
	{Command: "506", Name: "Himalia", Class: ClassMoon, CentralBody: "Jupiter", Mass: 2.270693e18},
	{Command: "507", Name: "Elara", Class: ClassMoon, CentralBody: "Jupiter", Mass: 8.692277e17},
	{Command: "508", Name: "Pasiphae", Class: ClassMoon, CentralBody: "Jupiter", Mass: 2.997337e17},
	{Command: "509", Name: "Sinope", Class: ClassMoon, CentralBody: "Jupiter", Mass: 7.493342e16},
	{Command: "510", Name: "Lysithea", Class: ClassMoon, CentralBody: "Jupiter", Mass: 6.294407e16},
	{Command: "511", Name: "Carme", Class: ClassMoon, CentralBody: "Jupiter", Mass: 1.318828e17},
	{Command: "512", Name: "Ananke", Class: ClassMoon, CentralBody: "Jupiter", Mass: 2.997337e16},
	{Command: "513", Name: "Leda", Class: ClassMoon, CentralBody: "Jupiter", Mass: 1.094028e16},
	{Command: "514", Name: "Thebe", Class: ClassMoon, CentralBody: "Jupiter", Mass: 4.517042e17},
	{Command: "515", Name: "Adrastea", Class: ClassMoon, CentralBody: "Jupiter", Mass: 2.082622e15},
	{Command: "516", Name: "Metis", Class: ClassMoon, CentralBody: "Jupiter", Mass: 3.747221e16},
	{Command: "517", Name: "Callirrhoe", Class: ClassMoon, CentralBody: "Jupiter", Mass: 8.692277e14},
	{Command: "518", Name: "Themisto", Class: ClassMoon, CentralBody: "Jupiter", Mass: 6.893875e14},
	{Command: "519", Name: "Megaclite", Class: ClassMoon, CentralBody: "Jupiter", Mass: 2.098136e14},
	{Command: "520", Name: "Taygete", Class: ClassMoon, CentralBody: "Jupiter", Mass: 1.648535e14},
	{Command: "521", Name: "Chaldene", Class: ClassMoon, CentralBody: "Jupiter", Mass: 7.493342e13},
	{Command: "522", Name: "Harpalyke", Class: ClassMoon, CentralBody: "Jupiter", Mass: 1.198935e14},
	{Command: "523", Name: "Kalyke", Class: ClassMoon, CentralBody: "Jupiter", Mass: 1.948269e14},
	{Command: "524", Name: "Iocaste", Class: ClassMoon, CentralBody: "Jupiter", Mass: 1.948269e14},
	{Command: "525", Name: "Erinome", Class: ClassMoon, CentralBody: "Jupiter", Mass: 4.496005e13},
	{Command: "526", Name: "Isonoe", Class: ClassMoon, CentralBody: "Jupiter", Mass: 7.493342e13},
	{Command: "527", Name: "Praxidike", Class: ClassMoon, CentralBody: "Jupiter", Mass: 4.346138e14},
	{Command: "528", Name: "Autonoe", Class: ClassMoon, CentralBody: "Jupiter", Mass: 8.992011e13},
	{Command: "529", Name: "Thyone", Class: ClassMoon, CentralBody: "Jupiter", Mass: 8.992011e13},
	{Command: "530", Name: "Hermippe", Class: ClassMoon, CentralBody: "Jupiter", Mass: 8.992011e13},
	{Command: "531", Name: "Aitne", Class: ClassMoon, CentralBody: "Jupiter", Mass: 4.496005e13},
	{Command: "532", Name: "Eurydome", Class: ClassMoon, CentralBody: "Jupiter", Mass: 4.496005e13},
	{Command: "533", Name: "Euanthe", Class: ClassMoon, CentralBody: "Jupiter", Mass: 4.496005e13},
	{Command: "534", Name: "Euporie", Class: ClassMoon, CentralBody: "Jupiter", Mass: 1.498668e13},
	{Command: "535", Name: "Orthosie", Class: ClassMoon, CentralBody: "Jupiter", Mass: 1.498668e13},
	{Command: "536", Name: "Sponde", Class: ClassMoon, CentralBody: "Jupiter", Mass: 1.498668e13},
	{Command: "537", Name: "Kale", Class: ClassMoon, CentralBody: "Jupiter", Mass: 1.498668e13},
	{Command: "538", Name: "Pasithee", Class: ClassMoon, CentralBody: "Jupiter", Mass: 1.498668e13},
	{Command: "539", Name: "Hegemone", Class: ClassMoon, CentralBody: "Jupiter", Mass: 4.496005e13},
	{Command: "540", Name: "Mneme", Class: ClassMoon, CentralBody: "Jupiter", Mass: 1.498668e13},
	{Command: "541", Name: "Aoede", Class: ClassMoon, CentralBody: "Jupiter", Mass: 8.992011e13},
	{Command: "542", Name: "Thelxinoe", Class: ClassMoon, CentralBody: "Jupiter", Mass: 1.498668e13},
	{Command: "543", Name: "Arche", Class: ClassMoon, CentralBody: "Jupiter", Mass: 4.496005e13},
	{Command: "544", Name: "Kallichore", Class: ClassMoon, CentralBody: "Jupiter", Mass: 1.498668e13},
	{Command: "545", Name: "Helike", Class: ClassMoon, CentralBody: "Jupiter", Mass: 8.992011e13},
	{Command: "546", Name: "Carpo", Class: ClassMoon, CentralBody: "Jupiter", Mass: 4.496005e13},
	{Command: "547", Name: "Eukelade", Class: ClassMoon, CentralBody: "Jupiter", Mass: 8.992011e13},
	{Command: "548", Name: "Cyllene", Class: ClassMoon, CentralBody: "Jupiter", Mass: 1.498668e13},
	{Command: "549", Name: "Kore", Class: ClassMoon, CentralBody: "Jupiter", Mass: 1.498668e13},
	{Command: "550", Name: "Herse", Class: ClassMoon, CentralBody: "Jupiter", Mass: 1.498668e13},
	{Command: "553", Name: "Dia", Class: ClassMoon, CentralBody: "Jupiter", Mass: 5.52e12},
	{Command: "557", Name: "Eirene", Class: ClassMoon, CentralBody: "Jupiter", Mass: 5.52e12},
	{Command: "558", Name: "Philophrosyne", Class: ClassMoon, CentralBody: "Jupiter", Mass: 2.76e12},
	{Command: "560", Name: "Eupheme", Class: ClassMoon, CentralBody: "Jupiter", Mass: 2.76e12},
	{Command: "562", Name: "Valetudo", Class: ClassMoon, CentralBody: "Jupiter", Mass: 1.38e12},
	{Command: "565", Name: "Pandia", Class: ClassMoon, CentralBody: "Jupiter", Mass: 4.14e12},
	{Command: "571", Name: "Ersa", Class: ClassMoon, CentralBody: "Jupiter", Mass: 4.14e12},

	// Saturn moons
	{Command: "601", Name: "Mimas", Class: ClassMoon, CentralBody: "Saturn", Mass: 3.75095e19},
	{Command: "602", Name: "Enceladus", Class: ClassMoon, CentralBody: "Saturn", Mass: 1.080321e20},
	{Command: "603", Name: "Tethys", Class: ClassMoon, CentralBody: "Saturn", Mass: 6.174978e20},
	{Command: "604", Name: "Dione", Class: ClassMoon, CentralBody: "Saturn", Mass: 1.09549e21},
	{Command: "605", Name: "Rhea", Class: ClassMoon, CentralBody: "Saturn", Mass: 2.306492e21},
	{Command: "606", Name: "Titan", Class: ClassMoon, CentralBody: "Saturn", Mass: 1.345184e23},
	{Command: "607", Name: "Hyperion", Class: ClassMoon, CentralBody: "Saturn", Mass: 5.551031e18},
	{Command: "608", Name: "Iapetus", Class: ClassMoon, CentralBody: "Saturn", Mass: 1.805665e21},
	{Command: "609", Name: "Phoebe", Class: ClassMoon, CentralBody: "Saturn", Mass: 8.312297e18},
	{Command: "610", Name: "Janus", Class: ClassMoon, CentralBody: "Saturn", Mass: 1.896482e18},
	{Command: "611", Name: "Epimetheus", Class: ClassMoon, CentralBody: "Saturn", Mass: 5.26249e17},
	{Command: "612", Name: "Helene", Class: ClassMoon, CentralBody: "Saturn", Mass: 7.127989e15},
	{Command: "613", Name: "Telesto", Class: ClassMoon, CentralBody: "Saturn", Mass: 4.046405e15},
	{Command: "614", Name: "Calypso", Class: ClassMoon, CentralBody: "Saturn", Mass: 2.547736e15},
	{Command: "615", Name: "Atlas", Class: ClassMoon, CentralBody: "Saturn", Mass: 5.571944e15},
	{Command: "616", Name: "Prometheus", Class: ClassMoon, CentralBody: "Saturn", Mass: 1.610972e17},
	{Command: "617", Name: "Pandora", Class: ClassMoon, CentralBody: "Saturn", Mass: 1.391959e17},
	{Command: "618", Name: "Pan", Class: ClassMoon, CentralBody: "Saturn", Mass: 4.945606e15},
	{Command: "619", Name: "Ymir", Class: ClassMoon, CentralBody: "Saturn", Mass: 4.945606e15},
	{Command: "620", Name: "Paaliaq", Class: ClassMoon, CentralBody: "Saturn", Mass: 8.242676e15},
	{Command: "621", Name: "Tarvos", Class: ClassMoon, CentralBody: "Saturn", Mass: 2.697603e15},
	{Command: "622", Name: "Ijiraq", Class: ClassMoon, CentralBody: "Saturn", Mass: 1.198935e15},
	{Command: "623", Name: "Suttungr", Class: ClassMoon, CentralBody: "Saturn", Mass: 2.098136e14},
	{Command: "624", Name: "Kiviuq", Class: ClassMoon, CentralBody: "Saturn", Mass: 3.297071e15},
	{Command: "625", Name: "Mundilfari", Class: ClassMoon, CentralBody: "Saturn", Mass: 2.098136e14},
	{Command: "626", Name: "Albiorix", Class: ClassMoon, CentralBody: "Saturn", Mass: 2.098136e16},
	{Command: "627", Name: "Skathi", Class: ClassMoon, CentralBody: "Saturn", Mass: 3.147204e14},
	{Command: "628", Name: "Erriapus", Class: ClassMoon, CentralBody: "Saturn", Mass: 7.643209e14},
	{Command: "629", Name: "Siarnaq", Class: ClassMoon, CentralBody: "Saturn", Mass: 3.896538e16},
	{Command: "630", Name: "Thrymr", Class: ClassMoon, CentralBody: "Saturn", Mass: 2.098136e14},
	{Command: "631", Name: "Narvi", Class: ClassMoon, CentralBody: "Saturn", Mass: 3.446937e14},
	{Command: "632", Name: "Methone", Class: ClassMoon, CentralBody: "Saturn", Mass: 8.992011e12},
	{Command: "633", Name: "Pallene", Class: ClassMoon, CentralBody: "Saturn", Mass: 3.297071e13},
	{Command: "634", Name: "Polydeuces", Class: ClassMoon, CentralBody: "Saturn", Mass: 4.496005e12},
	{Command: "635", Name: "Daphnis", Class: ClassMoon, CentralBody: "Saturn", Mass: 7.793076e13},
	{Command: "636", Name: "Aegir", Class: ClassMoon, CentralBody: "Saturn", Mass: 2.599e14},
	{Command: "637", Name: "Bebhionn", Class: ClassMoon, CentralBody: "Saturn", Mass: 2.599e14},
	{Command: "638", Name: "Bergelmir", Class: ClassMoon, CentralBody: "Saturn", Mass: 2.599e14},
	{Command: "639", Name: "Bestla", Class: ClassMoon, CentralBody: "Saturn", Mass: 4.14e14},
	{Command: "640", Name: "Farbauti", Class: ClassMoon, CentralBody: "Saturn", Mass: 1.495e14},
	{Command: "641", Name: "Fenrir", Class: ClassMoon, CentralBody: "Saturn", Mass: 7.82e13},
	{Command: "642", Name: "Fornjot", Class: ClassMoon, CentralBody: "Saturn", Mass: 8.28e12},
	{Command: "643", Name: "Hati", Class: ClassMoon, CentralBody: "Saturn", Mass: 2.599e14},
	{Command: "644", Name: "Hyrrokkin", Class: ClassMoon, CentralBody: "Saturn", Mass: 2.599e14},
	{Command: "645", Name: "Kari", Class: ClassMoon, CentralBody: "Saturn", Mass: 2.599e14},
	{Command: "646", Name: "Loge", Class: ClassMoon, CentralBody: "Saturn", Mass: 2.599e14},
	{Command: "647", Name: "Skoll", Class: ClassMoon, CentralBody: "Saturn", Mass: 2.599e14},
	{Command: "648", Name: "Surtur", Class: ClassMoon, CentralBody: "Saturn", Mass: 2.599e14},
	{Command: "649", Name: "Anthe", Class: ClassMoon, CentralBody: "Saturn", Mass: 1.498668e12},
	{Command: "650", Name: "Jarnsaxa", Class: ClassMoon, CentralBody: "Saturn", Mass: 2.599e14},
	{Command: "651", Name: "Greip", Class: ClassMoon, CentralBody: "Saturn", Mass: 2.599e14},
	{Command: "652", Name: "Tarqeq", Class: ClassMoon, CentralBody: "Saturn", Mass: 2.599e14},
	{Command: "653", Name: "Aegaeon", Class: ClassMoon, CentralBody: "Saturn", Mass: 5.994674e10},

	// Uranus moons
	{Command: "701", Name: "Ariel", Class: ClassMoon, CentralBody: "Uranus", Mass: 1.250524e21},
	{Command: "702", Name: "Umbriel", Class: ClassMoon, CentralBody: "Uranus", Mass: 1.274945e21},
	{Command: "703", Name: "Titania", Class: ClassMoon, CentralBody: "Uranus", Mass: 3.400272e21},
	{Command: "704", Name: "Oberon", Class: ClassMoon, CentralBody: "Uranus", Mass: 3.076338e21},
	{Command: "705", Name: "Miranda", Class: ClassMoon, CentralBody: "Uranus", Mass: 6.471884e19},
	{Command: "706", Name: "Cordelia", Class: ClassMoon, CentralBody: "Uranus", Mass: 4.496005e16},
	{Command: "707", Name: "Ophelia", Class: ClassMoon, CentralBody: "Uranus", Mass: 5.395206e16},
	{Command: "708", Name: "Bianca", Class: ClassMoon, CentralBody: "Uranus", Mass: 9.291744e16},
	{Command: "709", Name: "Cressida", Class: ClassMoon, CentralBody: "Uranus", Mass: 3.431951e17},
	{Command: "710", Name: "Desdemona", Class: ClassMoon, CentralBody: "Uranus", Mass: 1.783415e17},
	{Command: "711", Name: "Juliet", Class: ClassMoon, CentralBody: "Uranus", Mass: 5.575047e17},
	{Command: "712", Name: "Portia", Class: ClassMoon, CentralBody: "Uranus", Mass: 1.681506e18},
	{Command: "713", Name: "Rosalind", Class: ClassMoon, CentralBody: "Uranus", Mass: 2.547736e17},
	{Command: "714", Name: "Belinda", Class: ClassMoon, CentralBody: "Uranus", Mass: 3.566831e17},
	{Command: "715", Name: "Puck", Class: ClassMoon, CentralBody: "Uranus", Mass: 2.893929e18},
	{Command: "716", Name: "Caliban", Class: ClassMoon, CentralBody: "Uranus", Mass: 2.997337e17},
	{Command: "717", Name: "Sycorax", Class: ClassMoon, CentralBody: "Uranus", Mass: 2.697603e18},
	{Command: "718", Name: "Prospero", Class: ClassMoon, CentralBody: "Uranus", Mass: 9.891212e16},
	{Command: "719", Name: "Setebos", Class: ClassMoon, CentralBody: "Uranus", Mass: 8.692277e16},
	{Command: "720", Name: "Stephano", Class: ClassMoon, CentralBody: "Uranus", Mass: 2.547736e16},
	{Command: "721", Name: "Trinculo", Class: ClassMoon, CentralBody: "Uranus", Mass: 4.645872e15},
	{Command: "722", Name: "Francisco", Class: ClassMoon, CentralBody: "Uranus", Mass: 8.392543e15},
	{Command: "723", Name: "Margaret", Class: ClassMoon, CentralBody: "Uranus", Mass: 6.294407e15},
	{Command: "724", Name: "Ferdinand", Class: ClassMoon, CentralBody: "Uranus", Mass: 6.294407e15},
	{Command: "725", Name: "Perdita", Class: ClassMoon, CentralBody: "Uranus", Mass: 1.8e16},
	{Command: "726", Name: "Mab", Class: ClassMoon, CentralBody: "Uranus", Mass: 1e15},
	{Command: "727", Name: "Cupid", Class: ClassMoon, CentralBody: "Uranus", Mass: 3.8e15},

	// Neptune moons
	{Command: "801", Name: "Triton", Class: ClassMoon, CentralBody: "Neptune", Mass: 2.140299e22},
	{Command: "802", Name: "Nereid", Class: ClassMoon, CentralBody: "Neptune", Mass: 3.087257e19},
	{Command: "803", Name: "Naiad", Class: ClassMoon, CentralBody: "Neptune", Mass: 1.278083e17},
	{Command: "804", Name: "Thalassa", Class: ClassMoon, CentralBody: "Neptune", Mass: 3.534274e17},
	{Command: "805", Name: "Despina", Class: ClassMoon, CentralBody: "Neptune", Mass: 1.74898e18},
	{Command: "806", Name: "Galatea", Class: ClassMoon, CentralBody: "Neptune", Mass: 2.845228e18},
	{Command: "807", Name: "Larissa", Class: ClassMoon, CentralBody: "Neptune", Mass: 3.818296e18},
	{Command: "808", Name: "Proteus", Class: ClassMoon, CentralBody: "Neptune", Mass: 3.870713e19},
	{Command: "809", Name: "Halimede", Class: ClassMoon, CentralBody: "Neptune", Mass: 8.992011e16},
	{Command: "810", Name: "Psamathe", Class: ClassMoon, CentralBody: "Neptune", Mass: 1.498668e16},
	{Command: "811", Name: "Sao", Class: ClassMoon, CentralBody: "Neptune", Mass: 8.992011e16},
	{Command: "812", Name: "Laomedeia", Class: ClassMoon, CentralBody: "Neptune", Mass: 8.992011e16},
	{Command: "813", Name: "Neso", Class: ClassMoon, CentralBody: "Neptune", Mass: 1.648535e17},
	{Command: "814", Name: "Hippocamp", Class: ClassMoon, CentralBody: "Neptune", Mass: 1.5e16},

	// Pluto moons
	{Command: "901", Name: "Charon", Class: ClassMoon, CentralBody: "Pluto", Mass: 1.586388e21},
	{Command: "902", Name: "Nix", Class: ClassMoon, CentralBody: "Pluto", Mass: 4.567048e16},
	{Command: "903", Name: "Hydra", Class: ClassMoon, CentralBody: "Pluto", Mass: 4.811065e16},
	{Command: "904", Name: "Kerberos", Class: ClassMoon, CentralBody: "Pluto", Mass: 1.663162e16},
	{Command: "905", Name: "Styx", Class: ClassMoon, CentralBody: "Pluto", Mass: 7.5e15},
}

// MajorBodies returns a copy of the major-body catalog in dataset order.
func MajorBodies() []Body {
	return slices.Clone(majorBodies)
}

// MajorBodyCount is the number of catalog bodies emitted by every scenario.
func MajorBodyCount() int {
	return len(majorBodies)
}

// Lookup returns the catalog body with the given name.
func Lookup(name string) (Body, bool) {
	i := slices.IndexFunc(majorBodies, func(b Body) bool { return b.Name == name })
	if i < 0 {
		return Body{}, false
	}
	return majorBodies[i], true
}

// DuplicateDesignations returns the SBDB primary designations of catalog
// bodies that the small-body database also lists as asteroids.
func DuplicateDesignations() map[string]string {
	dups := make(map[string]string)
	for _, b := range majorBodies {
		if b.Designation != "" {
			dups[b.Designation] = b.Name
		}
	}
	return dups
}
