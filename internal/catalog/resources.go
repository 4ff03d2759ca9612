// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

package catalog

// Resource is a campus or local facility that helps with one or more actions.
type Resource struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Type         string   `json:"type"`
	Location     string   `json:"location"`
	Availability string   `json:"availability"`
	Cost         string   `json:"cost"`
	Actions      []string `json:"related_actions"`
	Tags         []string `json:"tags,omitempty"`
}

func (r Resource) clone() Resource {
	r.Actions = append([]string(nil), r.Actions...)
	r.Tags = append([]string(nil), r.Tags...)
	return r
}

// Resources returns the campus resources in a stable order.
func Resources() []Resource {
	out := make([]Resource, len(seedResources))
	for i, r := range seedResources {
		out[i] = r.clone()
	}
	return out
}

// ResourcesFor returns the resources that support actionID.
func ResourcesFor(actionID string) []Resource {
	var out []Resource
	for _, r := range seedResources {
		for _, id := range r.Actions {
			if id == actionID {
				out = append(out, r.clone())
				break
			}
		}
	}
	return out
}

var seedResources = []Resource{
	{
		ID:           "clothing_swap_shop",
		Name:         "Student Clothing Exchange",
		Description:  "Drop off unwanted clothes, take what you need",
		Type:         "swap_shop",
		Location:     "Campus Sustainability Center",
		Availability: "Mon-Fri 9am-5pm",
		Cost:         "free",
		Actions:      []string{"a1"},
		Tags:         []string{"clothing", "free", "exchange"},
	},
	{
		ID:           "campus_repair_cafe",
		Name:         "Campus Repair Café",
		Description:  "Free repair services for electronics, clothing, and bikes",
		Type:         "repair_cafe",
		Location:     "Student Union Building",
		Availability: "Saturdays 10am-4pm",
		Cost:         "free",
		Actions:      []string{"a2"},
		Tags:         []string{"repair", "free", "community", "skills"},
	},
	{
		ID:           "campus_garden",
		Name:         "Campus Community Garden",
		Description:  "Plot rental and workshops for growing your own food",
		Type:         "community_garden",
		Location:     "Behind Environmental Science Building",
		Availability: "Daily dawn-dusk",
		Cost:         "low",
		Actions:      []string{"a3"},
		Tags:         []string{"gardening", "education", "food", "community"},
	},
	{
		ID:           "bike_share",
		Name:         "Campus Bike Share",
		Description:  "Short-term bike rental for campus and local trips",
		Type:         "bike_share",
		Location:     "Multiple campus locations",
		Availability: "24/7",
		Cost:         "low",
		Actions:      []string{"a4"},
		Tags:         []string{"transport", "bike", "convenient"},
	},
	{
		ID:           "sustainability_workshops",
		Name:         "Sustainability Skill Workshops",
		Description:  "Monthly workshops on repair, cooking, and sustainable living",
		Type:         "workshop",
		Location:     "Various campus locations",
		Availability: "Monthly events",
		Cost:         "free",
		Actions:      []string{"a2", "a3"},
		Tags:         []string{"education", "skills", "community", "free"},
	},
}
