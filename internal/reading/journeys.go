package reading

import (
	"errors"

	"github.com/epistleapp/epistle/internal/entities"
)

// ErrUnknownJourney reports a journey ID outside the fixed itinerary set.
var ErrUnknownJourney = errors.New("unknown journey")

// Journey is one of Paul's mission itineraries, used to caption the generated
// route maps.
type Journey struct {
	ID     int
	Title  entities.LocalizedText
	Cities []entities.LocalizedText
}

// MissionJourneys lists the three mission journeys plus the voyage to Rome.
var MissionJourneys = []Journey{
	{
		ID:    1,
		Title: entities.LocalizedText{Ko: "제1차 선교 여행", En: "1st Mission Journey"},
		Cities: []entities.LocalizedText{
			{Ko: "수리아 안디옥", En: "Syrian Antioch"},
			{Ko: "실루기아", En: "Seleucia"},
			{Ko: "구브로", En: "Cyprus"},
			{Ko: "밤빌리아 버가", En: "Perga in Pamphylia"},
			{Ko: "비시디아 안디옥", En: "Pisidian Antioch"},
			{Ko: "이고니온", En: "Iconium"},
			{Ko: "루스드라", En: "Lystra"},
			{Ko: "더베", En: "Derbe"},
		},
	},
	{
		ID:    2,
		Title: entities.LocalizedText{Ko: "제2차 선교 여행", En: "2nd Mission Journey"},
		Cities: []entities.LocalizedText{
			{Ko: "안디옥", En: "Antioch"},
			{Ko: "다소", En: "Tarsus"},
			{Ko: "루스드라", En: "Lystra"},
			{Ko: "드로아", En: "Troas"},
			{Ko: "빌립보", En: "Philippi"},
			{Ko: "데살로니가", En: "Thessalonica"},
			{Ko: "베뢰아", En: "Berea"},
			{Ko: "아덴", En: "Athens"},
			{Ko: "고린도", En: "Corinth"},
		},
	},
	{
		ID:    3,
		Title: entities.LocalizedText{Ko: "제3차 선교 여행", En: "3rd Mission Journey"},
		Cities: []entities.LocalizedText{
			{Ko: "안디옥", En: "Antioch"},
			{Ko: "에베소", En: "Ephesus"},
			{Ko: "마게도냐", En: "Macedonia"},
			{Ko: "밀레도", En: "Miletus"},
			{Ko: "두로", En: "Tyre"},
			{Ko: "가이사랴", En: "Caesarea"},
			{Ko: "예루살렘", En: "Jerusalem"},
		},
	},
	{
		ID:    4,
		Title: entities.LocalizedText{Ko: "로마 여정", En: "Journey to Rome"},
		Cities: []entities.LocalizedText{
			{Ko: "가이사랴", En: "Caesarea"},
			{Ko: "미항", En: "Fair Havens"},
			{Ko: "멜리데", En: "Malta"},
			{Ko: "보디올", En: "Puteoli"},
			{Ko: "로마", En: "Rome"},
		},
	},
}

// JourneyByID returns the journey with the given ID, or nil.
func JourneyByID(id int) *Journey {
	for i := range MissionJourneys {
		if MissionJourneys[i].ID == id {
			return &MissionJourneys[i]
		}
	}
	return nil
}
