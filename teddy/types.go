package teddy

// Wire types for the Teddy moderation API. Field names follow the vendor's
// JSON payloads verbatim; everything here is a read-only snapshot fetched per
// poll cycle and never cached across cycles.

type Credentials struct {
	Username string
	Password string
}

type Message struct {
	ID           int64  `json:"id"`
	DialogID     int64  `json:"dialog_id"`
	FromID       int64  `json:"from_id"`
	ToID         int64  `json:"to_id"`
	Type         int    `json:"type"`
	AttachmentID int64  `json:"attachment_id"`
	Message      string `json:"message"`
	Read         int    `json:"read"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// DialogNote is a free-text annotation attached to a dialog, keyed by a topic
// label. Type 0 notes describe the customer, type 1 notes the moderator.
type DialogNote struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	WebsiteID int64  `json:"website_id"`
	DialogID  int64  `json:"dialog_id"`
	Type      int    `json:"type"`
	Topic     string `json:"topic"`
	Note      string `json:"note"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type UserConfigValue struct {
	ID       int64  `json:"id"`
	ConfigID int64  `json:"config_id"`
	Name     string `json:"name"`
}

type UserConfig struct {
	ID           int64             `json:"id"`
	Name         string            `json:"name"`
	Type         int               `json:"type"`
	Position     int               `json:"position"`
	Important    int               `json:"important"`
	Searchable   int               `json:"searchable"`
	Min          int               `json:"min"`
	Max          int               `json:"max"`
	Icon         string            `json:"icon"`
	ConfigValues []UserConfigValue `json:"config_values"`
}

type UserImage struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"user_id"`
	Verified int    `json:"verified"`
	Primary  int    `json:"primary"`
	Name     string `json:"name"`
}

type UserCoordinates struct {
	ID       int64  `json:"id"`
	Postcode int    `json:"postcode"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Priority int    `json:"priority"`
	Distance int    `json:"distance,omitempty"`
}

type UserText struct {
	ID       int64  `json:"id"`
	Usertext string `json:"usertext"`
	Verified int    `json:"verified"`
}

type User struct {
	ID           int64            `json:"id"`
	Name         string           `json:"name"`
	Gender       int              `json:"gender"`
	Preference   int              `json:"preference"`
	Age          int              `json:"age"`
	Config       []UserConfig     `json:"config"`
	ImagePrimary *UserImage       `json:"image_primary"`
	ImageProfile []UserImage      `json:"image_profile"`
	ImagePrivate []UserImage      `json:"image_private"`
	ImageSpecial []UserImage      `json:"image_special,omitempty"`
	Coordinates  *UserCoordinates `json:"coordinates"`
	Usertext     *UserText        `json:"usertext,omitempty"`
	Notes        []DialogNote     `json:"notes"`
}

type Dialog struct {
	ID           int64        `json:"id"`
	FromID       int64        `json:"from_id"`
	ToID         int64        `json:"to_id"`
	MessageCount int          `json:"message_count"`
	Blocked      int          `json:"blocked"`
	CreatedAt    string       `json:"created_at"`
	UpdatedAt    string       `json:"updated_at"`
	Messages     []Message    `json:"messages"`
	Notes        []DialogNote `json:"notes"`
}

type Website struct {
	ID         int64  `json:"id"`
	FQDN       string `json:"fqdn"`
	Foldername string `json:"foldername"`
	Rule       string `json:"rule,omitempty"`
}

// CheckMessagesResponse is one point-in-time poll result from the vendor's
// message-check endpoint. Dialog, User (the customer) and Writer (the
// moderator persona) must all be present before the snapshot is usable.
type CheckMessagesResponse struct {
	Status             bool         `json:"status"`
	Error              string       `json:"error,omitempty"`
	Dialog             *Dialog      `json:"dialog,omitempty"`
	User               *User        `json:"user,omitempty"`
	Writer             *User        `json:"writer,omitempty"`
	DialogInformations []DialogNote `json:"dialogInformations,omitempty"`
	Website            *Website     `json:"website,omitempty"`
	MessagePrice       int          `json:"messagePrice,omitempty"`
	MinCharCount       int          `json:"minCharCount,omitempty"`
	LogoutTime         int64        `json:"logoutTime,omitempty"`
}

type LoginResponse struct {
	Token  string `json:"token"`
	Status int    `json:"status"`
}

type statusResponse struct {
	Status bool   `json:"status"`
	Error  string `json:"error,omitempty"`
}

type activeResponse struct {
	Status bool   `json:"status"`
	Active bool   `json:"active"`
	Error  string `json:"error,omitempty"`
}
