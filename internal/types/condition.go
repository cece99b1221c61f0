package types

import (
	"strconv"
	"strings"
)

// Category is the coarse condition bucket a WMO weather code falls into
type Category string

const (
	CategoryClear        Category = "Clear"
	CategoryClouds       Category = "Clouds"
	CategoryFog          Category = "Fog"
	CategoryDrizzle      Category = "Drizzle"
	CategoryRain         Category = "Rain"
	CategorySnow         Category = "Snow"
	CategoryThunderstorm Category = "Thunderstorm"
)

// Lower returns the lower-cased category name used by the chart series
func (c Category) Lower() string {
	return strings.ToLower(string(c))
}

// Condition represents a classified weather code
type Condition struct {
	Category    Category `json:"condition"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
}

// conditionRange maps an inclusive upper bound to a condition, checked in order
type conditionRange struct {
	max         int
	category    Category
	description string
}

var conditionRanges = []conditionRange{
	{0, CategoryClear, "Clear sky"},
	{3, CategoryClouds, "Partly cloudy"},
	{48, CategoryFog, "Foggy"},
	{57, CategoryDrizzle, "Light drizzle"},
	{67, CategoryRain, "Rainy"},
	{77, CategorySnow, "Snowy"},
	{82, CategoryRain, "Heavy rain"},
	{99, CategoryThunderstorm, "Thunderstorm"},
}

// Classify maps a WMO weather code to its condition. Codes outside 0..99 are Clear.
func Classify(code int) Condition {
	icon := strconv.Itoa(code)
	if code >= 0 {
		for _, r := range conditionRanges {
			if code <= r.max {
				return Condition{Category: r.category, Description: r.description, Icon: icon}
			}
		}
	}
	return Condition{Category: CategoryClear, Description: "Clear", Icon: icon}
}
