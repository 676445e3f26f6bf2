// Package siteinfo defines the platform-neutral conversation model handed to
// the completion service. JSON field names are part of that contract and must
// stay stable.
package siteinfo

import "time"

const OriginTeddy = "teddy"

// Message classification relative to the moderator persona: messages the
// moderator wrote are "sent", messages from the customer are "received",
// anything else is "system".
const (
	TypeSent     = "sent"
	TypeReceived = "received"
	TypeSystem   = "system"
)

const (
	MessageTypeText  = "text"
	MessageTypeImage = "image"
)

type Message struct {
	Text        string     `json:"text"`
	Type        string     `json:"type"`
	MessageType string     `json:"messageType"`
	Timestamp   *time.Time `json:"timestamp,omitempty"`
	ImageSrc    string     `json:"imageSrc,omitempty"`
}

type BirthDate struct {
	Age  int        `json:"age,omitempty"`
	Date *time.Time `json:"date,omitempty"`
}

type UserInfo struct {
	Name               string    `json:"name,omitempty"`
	Gender             string    `json:"gender"`
	Username           string    `json:"username,omitempty"`
	City               string    `json:"city,omitempty"`
	PostalCode         string    `json:"postalCode,omitempty"`
	Country            string    `json:"country,omitempty"`
	Occupation         string    `json:"occupation,omitempty"`
	BirthDate          BirthDate `json:"birthDate"`
	Hobbies            string    `json:"hobbies,omitempty"`
	Music              string    `json:"music,omitempty"`
	Movies             string    `json:"movies,omitempty"`
	RelationshipStatus string    `json:"relationshipStatus,omitempty"`
	LookingFor         string    `json:"lookingFor,omitempty"`
	HasProfilePic      bool      `json:"hasProfilePic"`
	HasPictures        bool      `json:"hasPictures"`
	ProfileText        string    `json:"profileText,omitempty"`
	EyeColor           string    `json:"eyeColor,omitempty"`
	HairColor          string    `json:"hairColor,omitempty"`
	BodyType           string    `json:"bodyType,omitempty"`
	Smoking            string    `json:"smoking,omitempty"`
	HasTattoo          bool      `json:"hasTattoo,omitempty"`
	Housing            string    `json:"housing,omitempty"`
}

// UserNotes carries everything the operators have written down about one
// party. RawText always preserves every note line in encounter order; the
// structured fields only hold topics the alias table recognizes.
type UserNotes struct {
	RawText            string `json:"rawText,omitempty"`
	Name               string `json:"name,omitempty"`
	Age                string `json:"age,omitempty"`
	RelationshipStatus string `json:"relationshipStatus,omitempty"`
	City               string `json:"city,omitempty"`
	PostalCode         string `json:"postalCode,omitempty"`
	Country            string `json:"country,omitempty"`
	Occupation         string `json:"occupation,omitempty"`
	LookingFor         string `json:"lookingFor,omitempty"`
	Hobbies            string `json:"hobbies,omitempty"`
	Children           string `json:"children,omitempty"`
	Family             string `json:"family,omitempty"`
	Siblings           string `json:"siblings,omitempty"`
	Preferences        string `json:"preferences,omitempty"`
	Taboos             string `json:"taboos,omitempty"`
	Pets               string `json:"pets,omitempty"`
	Zodiac             string `json:"zodiac,omitempty"`
	Birthdate          string `json:"birthdate,omitempty"`
	Miscellaneous      string `json:"miscellaneous,omitempty"`
	Height             string `json:"height,omitempty"`
	EyeColor           string `json:"eyeColor,omitempty"`
	HasTattoo          string `json:"hasTattoo,omitempty"`
	Piercings          string `json:"piercings,omitempty"`
	Music              string `json:"music,omitempty"`
	Movies             string `json:"movies,omitempty"`
	Food               string `json:"food,omitempty"`
	Drinks             string `json:"drinks,omitempty"`
	Smoking            string `json:"smoking,omitempty"`
	OldNotes           string `json:"oldNotes,omitempty"`
	WorkingHours       string `json:"workingHours,omitempty"`
	LoveLife           string `json:"loveLife,omitempty"`
	Phone              string `json:"phone,omitempty"`
}

type MetaData struct {
	ModeratorInfo       UserInfo   `json:"moderatorInfo"`
	CustomerInfo        UserInfo   `json:"customerInfo"`
	ModeratorID         string     `json:"moderatorId,omitempty"`
	CustomerID          string     `json:"customerId,omitempty"`
	ModeratorNotes      *UserNotes `json:"moderatorNotes,omitempty"`
	CustomerNotes       *UserNotes `json:"customerNotes,omitempty"`
	SessionStart        *time.Time `json:"sessionStart,omitempty"`
	MinLength           int        `json:"minLength,omitempty"`
	CustomerProfilePic  string     `json:"customerProfilePic,omitempty"`
	ModeratorProfilePic string     `json:"moderatorProfilePic,omitempty"`
	CustomerGallery     []string   `json:"customerGallery,omitempty"`
	ModeratorGallery    []string   `json:"moderatorGallery,omitempty"`
}

type SiteInfos struct {
	Origin    string    `json:"origin"`
	Messages  []Message `json:"messages"`
	AccountID string    `json:"accountId,omitempty"`
	HTML      string    `json:"html"`
	MetaData  MetaData  `json:"metaData"`
}
