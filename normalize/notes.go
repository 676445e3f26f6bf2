package normalize

import (
	"strings"

	"github.com/GS-Software-Solutions/TeddyServer/siteinfo"
	"github.com/GS-Software-Solutions/TeddyServer/teddy"
)

// Party selects which side of the dialog a note describes, matching the
// vendor's type discriminator.
type Party int

const (
	PartyCustomer  Party = 0
	PartyModerator Party = 1
)

type notesField int

const (
	fieldName notesField = iota
	fieldAge
	fieldRelationshipStatus
	fieldCity
	fieldOccupation
	fieldLookingFor
	fieldHobbies
	fieldChildren
	fieldFamily
	fieldSiblings
	fieldPreferences
	fieldTaboos
	fieldPets
	fieldZodiac
	fieldBirthdate
	fieldHeight
	fieldEyeColor
	fieldHasTattoo
	fieldPiercings
	fieldMusic
	fieldMovies
	fieldFood
	fieldDrinks
	fieldSmoking
	fieldOldNotes
	fieldWorkingHours
	fieldLoveLife
	fieldPhone
)

// Note topics arrive as an inconsistent mix of canonical "default_*" keys and
// free-form German synonyms. The table maps every recognized spelling to one
// structured field; lookups are case-folded. Topics not listed here reach
// only the raw-text trail.
var topicFields = buildTopicFields(map[notesField][]string{
	fieldName:               {"default_name"},
	fieldOccupation:         {"default_job", "beruf"},
	fieldRelationshipStatus: {"default_status"},
	fieldCity:               {"default_place", "ort"},
	fieldHobbies:            {"default_hobbys", "hobbies"},
	fieldPreferences:        {"default_sexpreferences", "sexvorlieben"},
	fieldTaboos:             {"default_sextaboos", "sex_tabuu"},
	fieldSiblings:           {"default_siblings", "geschwister"},
	fieldChildren:           {"default_children", "kinder"},
	fieldPets:               {"default_pets", "tiere"},
	fieldZodiac:             {"default_zodiac", "sternzeichen"},
	fieldHeight:             {"default_height", "groesse", "größe"},
	fieldEyeColor:           {"default_eyecolor", "augenfarbe"},
	fieldHasTattoo:          {"default_tattoos", "tattoos"},
	fieldPiercings:          {"default_piercings", "piercings"},
	fieldMusic:              {"default_music", "musik"},
	fieldMovies:             {"default_movies", "filme"},
	fieldFood:               {"default_food", "essen"},
	fieldDrinks:             {"default_drinks", "trinken"},
	fieldSmoking:            {"default_smoking", "rauchen"},
	fieldLookingFor:         {"default_lookingfor", "suche"},
	fieldAge:                {"default_age", "alter"},
	fieldBirthdate:          {"default_birthdate", "geburtsdatum"},
	fieldFamily:             {"default_family", "familie"},
	fieldPhone:              {"default_phone", "telefon"},
	fieldWorkingHours:       {"default_workinghours", "arbeitszeiten"},
	fieldLoveLife:           {"default_lovelife", "liebesleben"},
	fieldOldNotes:           {"default_oldnotes", "alte_notizen"},
})

func buildTopicFields(aliases map[notesField][]string) map[string]notesField {
	out := make(map[string]notesField, len(aliases)*2)
	for field, topics := range aliases {
		for _, topic := range topics {
			out[strings.ToLower(topic)] = field
		}
	}
	return out
}

// ExtractNotes filters the dialog's note bag down to one party and builds its
// UserNotes. Every note contributes a "topic: note" line to RawText in
// encounter order. Recognized topics additionally populate a structured
// field, later notes overwriting earlier ones. The old-notes topic is the
// single dual write: it fills OldNotes and accumulates into Miscellaneous.
func ExtractNotes(notes []teddy.DialogNote, party Party) siteinfo.UserNotes {
	var out siteinfo.UserNotes
	var rawLines []string

	for _, note := range notes {
		if Party(note.Type) != party {
			continue
		}
		rawLines = append(rawLines, note.Topic+": "+note.Note)

		field, ok := topicFields[strings.ToLower(note.Topic)]
		if !ok {
			continue
		}
		setNotesField(&out, field, note.Note)
		if field == fieldOldNotes {
			line := note.Topic + ": " + note.Note
			if out.Miscellaneous != "" {
				out.Miscellaneous += "\n" + line
			} else {
				out.Miscellaneous = line
			}
		}
	}

	out.RawText = strings.Join(rawLines, "\n")
	return out
}

func setNotesField(n *siteinfo.UserNotes, field notesField, value string) {
	switch field {
	case fieldName:
		n.Name = value
	case fieldAge:
		n.Age = value
	case fieldRelationshipStatus:
		n.RelationshipStatus = value
	case fieldCity:
		n.City = value
	case fieldOccupation:
		n.Occupation = value
	case fieldLookingFor:
		n.LookingFor = value
	case fieldHobbies:
		n.Hobbies = value
	case fieldChildren:
		n.Children = value
	case fieldFamily:
		n.Family = value
	case fieldSiblings:
		n.Siblings = value
	case fieldPreferences:
		n.Preferences = value
	case fieldTaboos:
		n.Taboos = value
	case fieldPets:
		n.Pets = value
	case fieldZodiac:
		n.Zodiac = value
	case fieldBirthdate:
		n.Birthdate = value
	case fieldHeight:
		n.Height = value
	case fieldEyeColor:
		n.EyeColor = value
	case fieldHasTattoo:
		n.HasTattoo = value
	case fieldPiercings:
		n.Piercings = value
	case fieldMusic:
		n.Music = value
	case fieldMovies:
		n.Movies = value
	case fieldFood:
		n.Food = value
	case fieldDrinks:
		n.Drinks = value
	case fieldSmoking:
		n.Smoking = value
	case fieldOldNotes:
		n.OldNotes = value
	case fieldWorkingHours:
		n.WorkingHours = value
	case fieldLoveLife:
		n.LoveLife = value
	case fieldPhone:
		n.Phone = value
	}
}
