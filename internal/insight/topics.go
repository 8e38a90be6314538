package insight

import "strings"

// Topic is one entry in the fixed classification taxonomy: a name, the
// keywords that map question text onto it, and a canned improvement
// plan. Classification is non-exclusive: a question counts toward
// every topic it matches.
type Topic struct {
	Name     string
	Keywords []string
	Plan     string
}

// Topics is the static taxonomy. Order matters: it is the tie-break
// order for equally severe weak areas.
var Topics = []Topic{
	{
		Name:     "Speed Limits",
		Keywords: []string{"speed", "mph", "limit", "maximum", "minimum", "faster", "slower"},
		Plan:     "Review speed limit rules for different areas (residential, school zones, highways). Practice identifying when limits change.",
	},
	{
		Name:     "Traffic Signs",
		Keywords: []string{"sign", "octagon", "triangle", "diamond", "circular", "rectangular", "pentagon"},
		Plan:     "Study the shapes and colors of signs. Practice matching signs to their meanings.",
	},
	{
		Name:     "Right of Way",
		Keywords: []string{"yield", "right of way", "priority", "intersection", "pedestrian", "crosswalk"},
		Plan:     "Focus on intersection rules and pedestrian priority. Review who goes first in different scenarios.",
	},
	{
		Name:     "Parking",
		Keywords: []string{"park", "parking", "curb", "distance", "feet", "inches", "stop sign", "fire hydrant"},
		Plan:     "Memorize parking distance rules (fire hydrants, crosswalks, stop signs). Practice identifying legal parking spots.",
	},
	{
		Name:     "Lane Usage",
		Keywords: []string{"lane", "passing", "overtake", "left lane", "right lane", "center lane", "merge"},
		Plan:     "Review proper lane usage for passing, turning, and highway driving. Study merge techniques.",
	},
	{
		Name:     "Turning",
		Keywords: []string{"turn", "left turn", "right turn", "u-turn", "signal", "blinker", "indicator"},
		Plan:     "Practice proper turn signal timing and lane positioning. Review rules for different turn types.",
	},
	{
		Name:     "Alcohol & Drugs",
		Keywords: []string{"alcohol", "drug", "bac", "blood", "dui", "dwi", "intoxicated", "impaired"},
		Plan:     "Study BAC limits and impairment signs. Review consequences of driving under influence.",
	},
	{
		Name:     "Weather Conditions",
		Keywords: []string{"rain", "snow", "fog", "ice", "wet", "slippery", "visibility", "weather"},
		Plan:     "Learn proper driving techniques for rain, snow, and fog. Review visibility rules.",
	},
	{
		Name:     "Vehicle Equipment",
		Keywords: []string{"brake", "tire", "headlight", "mirror", "windshield", "horn", "seatbelt"},
		Plan:     "Study required vehicle equipment and maintenance. Review safety check procedures.",
	},
	{
		Name:     "Following Distance",
		Keywords: []string{"follow", "distance", "seconds", "space", "cushion", "tailgating"},
		Plan:     "Memorize the 3-second rule and safe following distances. Practice distance estimation.",
	},
	{
		Name:     "Emergency Vehicles",
		Keywords: []string{"emergency", "ambulance", "fire truck", "police", "siren", "flashing"},
		Plan:     "Review proper procedures when emergency vehicles approach. Study right-of-way rules.",
	},
	{
		Name:     "School Zones",
		Keywords: []string{"school", "children", "playground", "bus", "crossing guard"},
		Plan:     "Memorize school zone speed limits and times. Review safety procedures near schools.",
	},
	{
		Name:     "Highway Driving",
		Keywords: []string{"highway", "freeway", "expressway", "entrance ramp", "exit ramp", "merge"},
		Plan:     "Study proper merging and exit techniques. Review highway speed rules and lane discipline.",
	},
	{
		Name:     "Pedestrians",
		Keywords: []string{"pedestrian", "crosswalk", "sidewalk", "walking", "crossing"},
		Plan:     "Review pedestrian right-of-way rules. Study crosswalk and sidewalk regulations.",
	},
	{
		Name:     "Motorcycles",
		Keywords: []string{"motorcycle", "motorbike", "bike", "cyclist", "bicycle"},
		Plan:     "Learn how to safely share the road with motorcycles. Review blind spot awareness.",
	},
	{
		Name:     "License & Documentation",
		Keywords: []string{"license", "registration", "insurance", "permit", "identification"},
		Plan:     "Study license requirements and renewal procedures. Review required documents for driving.",
	},
}

// genericPlan is used for topics without a mapped improvement plan.
const genericPlan = "Review questions in this category and study related materials."

// Matches reports whether the question text falls under the topic.
// Case-insensitive substring match against any keyword.
func (t Topic) Matches(prompt string) bool {
	lower := strings.ToLower(prompt)
	for _, kw := range t.Keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// ImprovementPlan returns the canned plan for a topic name.
func ImprovementPlan(name string) string {
	for _, t := range Topics {
		if t.Name == name {
			return t.Plan
		}
	}
	return genericPlan
}
