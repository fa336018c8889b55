package offsets

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownProject is returned by ProjectByID.
var ErrUnknownProject = errors.New("unknown offset project")

// Project is a verified offset project in the marketplace.
type Project struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Location    string  `json:"location"`
	PricePerTon float64 `json:"pricePerTon"`
	Rating      float64 `json:"rating"`
	Description string  `json:"description"`
	Verified    bool    `json:"verified"`
	Impact      string  `json:"impact"`
}

// Projects returns the marketplace catalog.
func Projects() []Project {
	return []Project{
		{
			ID: "1", Name: "Amazon Rainforest Conservation", Type: "Forest Conservation", Location: "Brazil",
			PricePerTon: 15, Rating: 4.8, Verified: true,
			Description: "Protecting 10,000 hectares of pristine Amazon rainforest",
			Impact:      "Prevents deforestation and protects biodiversity",
		},
		{
			ID: "2", Name: "Solar Energy Project", Type: "Renewable Energy", Location: "India",
			PricePerTon: 12, Rating: 4.6, Verified: true,
			Description: "Large-scale solar installation providing clean energy",
			Impact:      "Replaces coal-fired electricity generation",
		},
		{
			ID: "3", Name: "Community Cookstoves", Type: "Energy Efficiency", Location: "Kenya",
			PricePerTon: 18, Rating: 4.9, Verified: true,
			Description: "Efficient cookstoves reducing wood consumption",
			Impact:      "Reduces deforestation and improves health",
		},
		{
			ID: "4", Name: "Methane Capture Project", Type: "Waste Management", Location: "USA",
			PricePerTon: 22, Rating: 4.7, Verified: true,
			Description: "Capturing methane from landfills for energy",
			Impact:      "Prevents methane emissions and generates clean energy",
		},
	}
}

// ProjectByID finds a project by id or name, ignoring case.
func ProjectByID(id string) (Project, error) {
	key := strings.TrimSpace(id)
	for _, p := range Projects() {
		if p.ID == key || strings.EqualFold(p.Name, key) {
			return p, nil
		}
	}
	return Project{}, fmt.Errorf("%w: %q", ErrUnknownProject, id)
}
