package app

var importantFeatures = []string{
	"Proximity of public K-12 schools",
	"Proximity of child-friendly parks",
	"Proximity of grocery shopping",
	"Proximity of fast food",
	"Proximity of fine dining",
	"Neighborhood walkability",
	"Availability of public transit",
	"Proximity of hospital and medical services",
	"Level of traffic noise",
	"Access to major highways",
}

var availableUpgrades = []string{
	"Leather seats",
	"Front seat warmers",
	"Rear bucket seats",
	"Rear seat warmers",
	"Front sun roof",
	"Rear sun roof",
	"Cloaking capability",
	"Food synthesizer",
	"Advanced waste recycling system",
	"Turbo vertical take-off capability",
}
