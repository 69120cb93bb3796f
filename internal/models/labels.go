// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

package models

// Companion labels.
const (
	CompanionAlone   = "Alone"
	CompanionPartner = "Partner"
	CompanionFriends = "Friends"
	CompanionFamily  = "Family"
	CompanionGroup   = "Group"
)

// Season labels.
const (
	SeasonWinter = "Winter"
	SeasonSpring = "Spring"
	SeasonSummer = "Summer"
	SeasonAutumn = "Autumn"
)

// Time-of-day labels.
const (
	TimeMorning   = "Morning"
	TimeAfternoon = "Afternoon"
	TimeEvening   = "Evening"
	TimeNight     = "Night"
	TimeLateNight = "Late Night"
)

// Location labels.
const (
	LocationHome            = "Home"
	LocationOutside         = "Outside"
	LocationCinema          = "Cinema"
	LocationPublicTransit   = "Public transportation"
	LocationWorkplace       = "Workplace"
	LocationCommunityCenter = "Community Center"
)

// Mood labels.
const (
	MoodHappy   = "Happy"
	MoodNeutral = "Neutral"
	MoodSad     = "Sad"
)

// Companions lists companion labels in canonical order.
func Companions() []string {
	return []string{CompanionAlone, CompanionPartner, CompanionFriends, CompanionFamily, CompanionGroup}
}

// Seasons lists season labels in canonical order.
func Seasons() []string {
	return []string{SeasonWinter, SeasonSpring, SeasonSummer, SeasonAutumn}
}

// DaysOfWeek lists weekday labels starting on Monday.
func DaysOfWeek() []string {
	return []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
}

// TimesOfDay lists time-of-day labels in canonical order.
func TimesOfDay() []string {
	return []string{TimeMorning, TimeAfternoon, TimeEvening, TimeNight, TimeLateNight}
}

// Locations lists location labels in canonical order.
func Locations() []string {
	return []string{
		LocationHome, LocationOutside, LocationCinema,
		LocationPublicTransit, LocationWorkplace, LocationCommunityCenter,
	}
}

// Moods lists mood labels. The simulator draws uniformly from this slice.
func Moods() []string {
	return []string{MoodHappy, MoodNeutral, MoodSad}
}
