// Package normalize maps the vendor's loosely-typed message-check payload
// into the canonical conversation model. It is a pure transformation: no
// network, no storage, no hidden state.
package normalize

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/GS-Software-Solutions/TeddyServer/siteinfo"
	"github.com/GS-Software-Solutions/TeddyServer/teddy"
)

// ErrIncompleteSnapshot is the normalizer's only failure mode: the snapshot
// is missing dialog, customer, or writer. There is no partial output.
var ErrIncompleteSnapshot = fmt.Errorf("normalize: incomplete snapshot")

// Normalize converts one message-check snapshot into the conversation model
// consumed by the completion service.
func Normalize(snapshot *teddy.CheckMessagesResponse) (*siteinfo.SiteInfos, error) {
	if snapshot == nil || snapshot.Dialog == nil || snapshot.User == nil || snapshot.Writer == nil {
		return nil, ErrIncompleteSnapshot
	}

	messages := ConvertMessages(snapshot.Dialog.Messages, snapshot.User.ID, snapshot.Writer.ID)
	customerInfo := ConvertUser(snapshot.User)
	moderatorInfo := ConvertUser(snapshot.Writer)
	customerNotes := ExtractNotes(snapshot.DialogInformations, PartyCustomer)
	moderatorNotes := ExtractNotes(snapshot.DialogInformations, PartyModerator)

	return &siteinfo.SiteInfos{
		Origin:   siteinfo.OriginTeddy,
		Messages: messages,
		HTML:     "",
		MetaData: siteinfo.MetaData{
			ModeratorInfo:       moderatorInfo,
			CustomerInfo:        customerInfo,
			ModeratorID:         strconv.FormatInt(snapshot.Writer.ID, 10),
			CustomerID:          strconv.FormatInt(snapshot.User.ID, 10),
			ModeratorNotes:      &moderatorNotes,
			CustomerNotes:       &customerNotes,
			SessionStart:        parseTimestamp(snapshot.Dialog.CreatedAt),
			MinLength:           snapshot.MinCharCount,
			CustomerProfilePic:  primaryImageURL(snapshot.User),
			ModeratorProfilePic: primaryImageURL(snapshot.Writer),
			CustomerGallery:     galleryURLs(snapshot.User),
			ModeratorGallery:    galleryURLs(snapshot.Writer),
		},
	}, nil
}

// ConvertMessages classifies each raw message against the two dialog
// parties. A from_id matching the writer is "sent", matching the customer is
// "received"; anything else falls back to "system". The three outcomes
// partition the message set. Attachment discrimination is not implemented;
// every message is typed as text.
func ConvertMessages(messages []teddy.Message, customerID, writerID int64) []siteinfo.Message {
	out := make([]siteinfo.Message, 0, len(messages))
	for _, msg := range messages {
		msgType := siteinfo.TypeSystem
		switch msg.FromID {
		case writerID:
			msgType = siteinfo.TypeSent
		case customerID:
			msgType = siteinfo.TypeReceived
		}
		out = append(out, siteinfo.Message{
			Text:        msg.Message,
			Type:        msgType,
			MessageType: siteinfo.MessageTypeText,
			Timestamp:   parseTimestamp(msg.CreatedAt),
		})
	}
	return out
}

// ConvertUser maps a raw vendor profile to the canonical UserInfo. Gender
// code 1 is male, every other code collapses to female. Field-level mapping
// failures degrade to unset values.
func ConvertUser(user *teddy.User) siteinfo.UserInfo {
	gender := "female"
	if user.Gender == 1 {
		gender = "male"
	}

	info := siteinfo.UserInfo{
		Name:          user.Name,
		Gender:        gender,
		BirthDate:     siteinfo.BirthDate{Age: user.Age},
		HasProfilePic: primaryImageURL(user) != "",
		HasPictures:   len(user.ImageProfile) > 0,
	}
	if user.Coordinates != nil {
		info.City = user.Coordinates.City
		info.Country = user.Coordinates.Country
		if user.Coordinates.Postcode != 0 {
			info.PostalCode = strconv.Itoa(user.Coordinates.Postcode)
		}
	}
	if user.Usertext != nil {
		info.ProfileText = user.Usertext.Usertext
	}
	applyUserConfig(&info, user.Config)
	return info
}

// The vendor exposes some profile attributes only through its configurable
// category lists, keyed by exact (German) category names. A renamed category
// silently drops the field; absence means "tag not found", not "user has no
// value".
func applyUserConfig(info *siteinfo.UserInfo, configs []teddy.UserConfig) {
	for _, cfg := range configs {
		switch cfg.Name {
		case "Beziehung":
			info.RelationshipStatus = joinConfigValues(cfg)
		case "Ich Suche":
			info.LookingFor = joinConfigValues(cfg)
		case "Musik":
			info.Music = joinConfigValues(cfg)
		case "Filme & Serien":
			info.Movies = joinConfigValues(cfg)
		case "Rauchen":
			info.Smoking = firstConfigValue(cfg)
		case "Körper":
			info.BodyType = firstConfigValue(cfg)
		case "Augenfarbe":
			info.EyeColor = firstConfigValue(cfg)
		case "Haarfarbe":
			info.HairColor = firstConfigValue(cfg)
		case "Tattoo":
			info.HasTattoo = strings.Contains(firstConfigValue(cfg), "Ja")
		case "Lebe":
			info.Housing = firstConfigValue(cfg)
		}
	}
}

func joinConfigValues(cfg teddy.UserConfig) string {
	names := make([]string, 0, len(cfg.ConfigValues))
	for _, v := range cfg.ConfigValues {
		names = append(names, v.Name)
	}
	return strings.Join(names, ", ")
}

func firstConfigValue(cfg teddy.UserConfig) string {
	if len(cfg.ConfigValues) == 0 {
		return ""
	}
	return cfg.ConfigValues[0].Name
}

func primaryImageURL(user *teddy.User) string {
	if user.ImagePrimary == nil {
		return ""
	}
	return user.ImagePrimary.Name
}

func galleryURLs(user *teddy.User) []string {
	if len(user.ImageProfile) == 0 {
		return nil
	}
	urls := make([]string, 0, len(user.ImageProfile))
	for _, img := range user.ImageProfile {
		urls = append(urls, img.Name)
	}
	return urls
}

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
}

func parseTimestamp(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return &ts
		}
	}
	return nil
}
